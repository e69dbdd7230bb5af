package main

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"

	"github.com/philipparndt/orbitgizmo/internal/logging"
	"github.com/philipparndt/orbitgizmo/pkg/config"
	"github.com/philipparndt/orbitgizmo/pkg/geometry"
	"github.com/philipparndt/orbitgizmo/pkg/gizmo"
	"github.com/philipparndt/orbitgizmo/pkg/interaction"
	"github.com/philipparndt/orbitgizmo/pkg/render"
	"github.com/philipparndt/orbitgizmo/pkg/viewer"
	"github.com/philipparndt/orbitgizmo/pkg/watcher"
	"github.com/philipparndt/orbitgizmo/version"
)

// gizmoMargin is the distance of the gizmo from the top-right window corner
const gizmoMargin = 20

var (
	configPath string
	debug      bool
)

var rootCmd = &cobra.Command{
	Use:     "gizmo-raylib",
	Short:   "Orientation gizmo demo (raylib)",
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

type App struct {
	logger  logging.Logger
	cfg     config.Config
	camera  *viewer.OrbitCamera
	engine  *interaction.Engine
	loop    *render.Loop
	frames  *frameQueue
	painter *raylibPainter
	reloads chan config.Config

	mouseDownInGizmo bool
	sceneDragging    bool
	scenePanning     bool
}

func run() error {
	logger := logging.New("gizmo-raylib", debug)
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}

	// Initialize window
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(1200, 800, "Orbit Gizmo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	app := &App{
		logger:  logger,
		cfg:     cfg,
		camera:  viewer.NewOrbitCamera(geometry.Vector3{}, 4),
		frames:  &frameQueue{},
		painter: &raylibPainter{},
		reloads: make(chan config.Config, 1),
	}
	app.camera.SetOrientation(cfg.StartOrientation())
	app.loop = render.NewLoop(app.frames, app.state, app.painter, logger)
	app.buildEngine()

	w, err := watcher.NewConfigWatcher(configPath, watcher.DefaultDebounce, logger, func(c config.Config) {
		// keep only the newest pending config
		select {
		case <-app.reloads:
		default:
		}
		app.reloads <- c
	})
	if err != nil {
		logger.Warnf("config hot reload disabled: %v", err)
	} else {
		defer w.Close()
	}

	// Main loop
	for !rl.WindowShouldClose() {
		app.applyReloads()
		app.loop.SetPaused(rl.IsWindowMinimized())

		// Update
		app.handleInput()
		if app.camera.Update(float64(rl.GetFrameTime())) {
			app.syncOrientation()
		}

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.camera3D())
		rl.DrawCubeWires(rl.Vector3{}, 1.5, 1.5, 1.5, rl.LightGray)
		rl.DrawGrid(10, 0.5)
		rl.EndMode3D()

		app.frames.flush()
		app.painter.draw(app.gizmoOrigin())
		app.drawUI()

		rl.EndDrawing()
	}
	return nil
}

// buildEngine creates the interaction engine for the current config
func (app *App) buildEngine() {
	app.engine = interaction.New(app.cfg.ToEngine(), interaction.Callbacks{
		OnOrbit: func(d interaction.OrbitDelta) {
			app.camera.ApplyOrbit(d, app.cfg.ConstrainPitch)
			app.syncOrientation()
		},
		OnOrbitEnd: func(o gizmo.Orientation) {
			app.logger.Debugf("orbit ended at %s", o)
		},
		OnSnapToView: func(v gizmo.PresetView) {
			app.camera.SnapTo(gizmo.PresetViewToOrientation(v, app.engine.Config().UpAxis))
		},
		OnOriginClick: func() {
			app.camera.SnapTo(app.cfg.StartOrientation())
		},
	}, interaction.WithLogger(app.logger))
	app.syncOrientation()
}

func (app *App) applyReloads() {
	select {
	case c := <-app.reloads:
		app.engine.SetDisabled(true)
		app.cfg = c
		app.buildEngine()
		app.logger.Infof("config reloaded: %s, %s, diameter %.0f", c.UpAxis, c.InteractionMode, c.Diameter)
	default:
	}
}

func (app *App) syncOrientation() {
	app.engine.SetOrientation(app.camera.Orientation())
	app.loop.Invalidate()
}

func (app *App) state() render.State {
	return render.State{
		Orientation: app.engine.Orientation(),
		Layout:      app.engine.Layout(),
		Hover:       app.engine.Hover(),
		Dragging:    app.engine.Dragging(),
		Style:       render.DefaultStyle(),
	}
}

// gizmoOrigin is the window position of the gizmo's top-left corner
func (app *App) gizmoOrigin() rl.Vector2 {
	d := float32(app.cfg.Diameter)
	return rl.Vector2{X: float32(rl.GetScreenWidth()) - d - gizmoMargin, Y: gizmoMargin}
}

// camera3D converts the orbit camera into a raylib camera
func (app *App) camera3D() rl.Camera3D {
	pos := app.camera.Position()
	up := app.camera.Orientation().Basis().Up
	return rl.Camera3D{
		Position:   rl.Vector3{X: float32(pos.X), Y: float32(pos.Y), Z: float32(pos.Z)},
		Target:     rl.Vector3{X: float32(app.camera.Target.X), Y: float32(app.camera.Target.Y), Z: float32(app.camera.Target.Z)},
		Up:         rl.Vector3{X: float32(up.X), Y: float32(up.Y), Z: float32(up.Z)},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}
}

func (app *App) drawUI() {
	o := app.camera.Orientation()
	rl.DrawText(o.String(), 10, 10, 20, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("%s | %s", app.cfg.UpAxis, app.cfg.InteractionMode), 10, 36, 16, rl.Gray)
	rl.DrawText("Drag the gizmo or the scene to orbit, click an axis to snap, 1/3/7 (+Ctrl) for views, right-drag to pan, scroll to zoom",
		10, int32(rl.GetScreenHeight())-56, 16, rl.Gray)
	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10, int32(rl.GetScreenHeight())-30, 20, rl.Lime)
}
