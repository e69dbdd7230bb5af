package main

import (
	"fmt"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/cobra"

	"github.com/philipparndt/orbitgizmo/internal/logging"
	"github.com/philipparndt/orbitgizmo/pkg/config"
	"github.com/philipparndt/orbitgizmo/pkg/geometry"
	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
	"github.com/philipparndt/orbitgizmo/pkg/interaction"
	"github.com/philipparndt/orbitgizmo/pkg/viewer"
	"github.com/philipparndt/orbitgizmo/pkg/watcher"
	"github.com/philipparndt/orbitgizmo/version"
)

const frameInterval = time.Second / 60

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:     "gizmo-gui",
	Short:   "Orientation gizmo demo (fyne)",
	Version: version.GetFullVersion(),
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the gizmo config file (reloaded on change)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// App wires the scene camera, the gizmo widget and the config file together.
// All fields are owned by the fyne main goroutine.
type App struct {
	window  fyne.Window
	logger  logging.Logger
	cfg     config.Config
	camera  *viewer.OrbitCamera
	scene   *viewer.SceneView
	gizmo   *viewer.GizmoWidget
	status  *widget.Label
	watcher *watcher.ConfigWatcher

	animating bool
}

func run() error {
	logger := logging.New("gizmo-gui", debug)
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	a := app.NewWithID("io.github.philipparndt.orbitgizmo")
	w := a.NewWindow("Orbit Gizmo")

	appInstance := &App{
		window: w,
		logger: logger,
		cfg:    cfg,
		camera: viewer.NewOrbitCamera(geometry.Vector3{}, 4),
		status: widget.NewLabel(""),
	}
	appInstance.camera.SetOrientation(cfg.StartOrientation())
	appInstance.setupMainUI()
	appInstance.watchConfig()

	w.SetOnClosed(func() {
		if appInstance.watcher != nil {
			appInstance.watcher.Close()
		}
	})
	w.Resize(fyne.NewSize(1000, 700))
	w.ShowAndRun()
	return nil
}

func (a *App) setupMainUI() {
	a.scene = viewer.NewSceneView(a.camera, viewer.CubeWireframe(1.5))
	a.scene.SetOnOrbit(func(interaction.OrbitDelta) {
		a.sync()
	})

	a.gizmo = viewer.NewGizmoWidget(a.cfg.ToEngine(), interaction.Callbacks{
		OnOrbit: func(d interaction.OrbitDelta) {
			a.camera.ApplyOrbit(d, a.cfg.ConstrainPitch)
			a.sync()
		},
		OnOrbitEnd: func(o gizmo.Orientation) {
			a.logger.Debugf("orbit ended at %s", o)
		},
		OnSnapToView: func(v gizmo.PresetView) {
			a.snapTo(v)
		},
		OnAxisClick: func(axis gizmo.Axis, positive bool) {
			a.logger.Debugf("axis %s clicked (positive=%v)", axis, positive)
		},
		OnOriginClick: func() {
			a.camera.SnapTo(a.cfg.StartOrientation())
			a.startAnimation()
		},
	}, viewer.WithGizmoLogger(a.logger))

	viewButtons := container.NewHBox()
	for _, v := range gizmo.PresetViews {
		view := v
		viewButtons.Add(widget.NewButton(string(view), func() {
			a.snapTo(view)
		}))
	}

	overlay := container.NewVBox(
		container.NewHBox(layout.NewSpacer(), a.gizmo),
		layout.NewSpacer(),
	)

	content := container.NewBorder(
		viewButtons, // top
		a.status,    // bottom
		nil,         // left
		nil,         // right
		container.NewStack(a.scene, overlay),
	)
	a.window.SetContent(content)
	a.sync()
}

func (a *App) snapTo(v gizmo.PresetView) {
	up, _ := gizmo.ParseUpAxis(a.cfg.UpAxis)
	a.camera.SnapTo(gizmo.PresetViewToOrientation(v, up))
	a.startAnimation()
}

// sync pushes the camera orientation to everything that displays it
func (a *App) sync() {
	o := a.camera.Orientation()
	a.scene.Redraw()
	a.gizmo.SetOrientation(o)
	a.status.SetText(fmt.Sprintf("%s | %s | %s", o, a.cfg.UpAxis, a.cfg.InteractionMode))
}

// startAnimation ticks the camera spring from a goroutine, stepping it on
// the main goroutine until the snap settles
func (a *App) startAnimation() {
	if a.animating {
		return
	}
	a.animating = true

	go func() {
		ticker := time.NewTicker(frameInterval)
		defer ticker.Stop()

		last := time.Now()
		for now := range ticker.C {
			dt := now.Sub(last).Seconds()
			last = now

			running := false
			fyne.DoAndWait(func() {
				if a.camera.Update(dt) {
					a.sync()
				}
				running = a.camera.Animating()
				a.animating = running
			})
			if !running {
				return
			}
		}
	}()
}

func (a *App) watchConfig() {
	w, err := watcher.NewConfigWatcher(configPath, watcher.DefaultDebounce, a.logger, func(c config.Config) {
		fyne.Do(func() {
			a.applyConfig(c)
		})
	})
	if err != nil {
		a.logger.Warnf("config hot reload disabled: %v", err)
		return
	}
	a.watcher = w
	a.logger.Infof("watching %s for changes", w.Path())
}

func (a *App) applyConfig(c config.Config) {
	a.cfg = c
	a.gizmo.Reconfigure(c.ToEngine())
	a.sync()
	a.logger.Infof("config reloaded: %s, %s, diameter %.0f", c.UpAxis, c.InteractionMode, c.Diameter)
}
