package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/philipparndt/orbitgizmo/internal/logging"
	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
	"github.com/philipparndt/orbitgizmo/pkg/interaction"
)

// replayPointer is the pointer id used for every scripted pointer event
const replayPointer = 1

var replayOrientation orientationFlags

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Feed an input script through the interaction engine",
	Long: `Replay pointer and keyboard input against the interaction engine, acting as the
host: orbit deltas and snaps are applied to the orientation and every engine
output is printed. Use "-" to read the script from stdin.

Script lines (blank lines and # comments are ignored):
  down X Y [primary|secondary|middle]
  move X Y
  up X Y
  cancel
  leave
  key NAME [shift] [ctrl]      NAME is ArrowLeft, ArrowRight, ArrowUp, ArrowDown, Home, 1, 3, 5 or 7
  orient YAW PITCH [ROLL]
  view NAME
  disable on|off`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayOrientation.register(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	o, err := replayOrientation.resolve(upAxisOf(cfg))
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	steps, err := parseScript(in)
	if err != nil {
		return err
	}

	final, err := replay(steps, cfg.ToEngine(), o, os.Stdout, newLogger())
	if err != nil {
		return err
	}
	fmt.Printf("final %s\n", final)
	return nil
}

type replayStep struct {
	line int
	op   string
	args []string
}

var replayArity = map[string][2]int{
	"down":    {2, 3},
	"move":    {2, 2},
	"up":      {2, 2},
	"cancel":  {0, 0},
	"leave":   {0, 0},
	"key":     {1, 3},
	"orient":  {2, 3},
	"view":    {1, 1},
	"disable": {1, 1},
}

// parseScript reads and checks a replay script without running it
func parseScript(r io.Reader) ([]replayStep, error) {
	var steps []replayStep
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.Index(text, "#"); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		op := strings.ToLower(fields[0])
		arity, ok := replayArity[op]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown command %q", line, fields[0])
		}
		if n := len(fields) - 1; n < arity[0] || n > arity[1] {
			return nil, fmt.Errorf("line %d: %s takes %d to %d arguments, got %d", line, op, arity[0], arity[1], n)
		}
		steps = append(steps, replayStep{line: line, op: op, args: fields[1:]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return steps, nil
}

// replay runs the steps, acting as the host, and returns the final orientation
func replay(steps []replayStep, cfg interaction.Config, start gizmo.Orientation, out io.Writer, logger logging.Logger) (gizmo.Orientation, error) {
	o := start
	var engine *interaction.Engine
	engine = interaction.New(cfg, interaction.Callbacks{
		OnOrbit: func(d interaction.OrbitDelta) {
			o.Yaw += d.DeltaYaw
			o.Pitch += d.DeltaPitch
			engine.SetOrientation(o)
			fmt.Fprintf(out, "orbit %s\n", d)
		},
		OnOrbitEnd: func(end gizmo.Orientation) {
			fmt.Fprintf(out, "orbit-end %s\n", end)
		},
		OnSnapToView: func(v gizmo.PresetView) {
			o = gizmo.PresetViewToOrientation(v, engine.Config().UpAxis)
			engine.SetOrientation(o)
			fmt.Fprintf(out, "snap %s\n", v)
		},
		OnAxisClick: func(axis gizmo.Axis, positive bool) {
			sign := "+"
			if !positive {
				sign = "-"
			}
			fmt.Fprintf(out, "axis %s%s\n", sign, axis)
		},
		OnOriginClick: func() {
			fmt.Fprintln(out, "origin")
		},
	}, interaction.WithLogger(logger))
	engine.SetOrientation(o)

	for _, s := range steps {
		if err := applyStep(engine, s, &o); err != nil {
			return o, fmt.Errorf("line %d: %w", s.line, err)
		}
	}
	return o, nil
}

func applyStep(engine *interaction.Engine, s replayStep, o *gizmo.Orientation) error {
	switch s.op {
	case "down", "move", "up":
		nums, err := parseFloats(s.args[:2])
		if err != nil {
			return err
		}
		ev := interaction.PointerEvent{PointerID: replayPointer, X: nums[0], Y: nums[1]}
		switch s.op {
		case "down":
			if len(s.args) == 3 {
				b, err := parseButton(s.args[2])
				if err != nil {
					return err
				}
				ev.Button = b
			}
			engine.PointerDown(ev)
		case "move":
			engine.PointerMove(ev)
		case "up":
			engine.PointerUp(ev)
		}

	case "cancel":
		engine.PointerCancel(interaction.PointerEvent{PointerID: replayPointer})

	case "leave":
		engine.PointerLeave()

	case "key":
		ev := interaction.KeyEvent{Key: interaction.Key(s.args[0])}
		for _, mod := range s.args[1:] {
			switch strings.ToLower(mod) {
			case "shift":
				ev.Shift = true
			case "ctrl":
				ev.Ctrl = true
			default:
				return fmt.Errorf("unknown modifier %q", mod)
			}
		}
		engine.KeyDown(ev)

	case "orient":
		nums, err := parseFloats(s.args)
		if err != nil {
			return err
		}
		*o = gizmo.Orientation{Yaw: nums[0], Pitch: nums[1]}
		if len(nums) == 3 {
			o.Roll = nums[2]
		}
		engine.SetOrientation(*o)

	case "view":
		v, err := gizmo.ParsePresetView(s.args[0])
		if err != nil {
			return err
		}
		*o = gizmo.PresetViewToOrientation(v, engine.Config().UpAxis)
		engine.SetOrientation(*o)

	case "disable":
		switch strings.ToLower(s.args[0]) {
		case "on":
			engine.SetDisabled(true)
		case "off":
			engine.SetDisabled(false)
		default:
			return fmt.Errorf("disable expects on or off, got %q", s.args[0])
		}
	}
	return nil
}

func parseFloats(args []string) ([]float64, error) {
	nums := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		nums[i] = v
	}
	return nums, nil
}

func parseButton(s string) (interaction.Button, error) {
	switch strings.ToLower(s) {
	case "primary", "left":
		return interaction.ButtonPrimary, nil
	case "secondary", "right":
		return interaction.ButtonSecondary, nil
	case "middle":
		return interaction.ButtonMiddle, nil
	}
	return 0, fmt.Errorf("unknown button %q", s)
}
