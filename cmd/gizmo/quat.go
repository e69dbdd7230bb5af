package main

import (
	"fmt"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"

	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
)

var quatFromEuler orientationFlags

var quatCmd = &cobra.Command{
	Use:   "quat [x y z w]",
	Short: "Convert between quaternions and yaw/pitch/roll",
	Long: `With four arguments, convert a rotation quaternion into yaw/pitch/roll degrees.
Without arguments, convert --yaw/--pitch/--roll (or --view) into a quaternion.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 4 {
			return fmt.Errorf("expected 0 or 4 arguments, got %d", len(args))
		}
		return nil
	},
	RunE: runQuat,
}

func init() {
	rootCmd.AddCommand(quatCmd)
	quatFromEuler.register(quatCmd)
}

func runQuat(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		cfg, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		o, err := quatFromEuler.resolve(upAxisOf(cfg))
		if err != nil {
			return err
		}
		q := gizmo.QuaternionFromEuler(o)
		fmt.Printf("x=%.6f y=%.6f z=%.6f w=%.6f\n", q.Imag, q.Jmag, q.Kmag, q.Real)
		return nil
	}

	var c [4]float64
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("invalid component %q: %w", a, err)
		}
		c[i] = v
	}

	q := mgl64.Quat{W: c[3], V: mgl64.Vec3{c[0], c[1], c[2]}}
	if q.Len() == 0 {
		return fmt.Errorf("zero quaternion has no rotation")
	}
	o := gizmo.FromQuat64(q)
	fmt.Println(o)

	forward := q.Normalize().Rotate(mgl64.Vec3{0, 0, 1})
	fmt.Printf("Camera forward: (%.4f, %.4f, %.4f)\n", forward[0], forward[1], forward[2])
	return nil
}
