package gui

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/trajviz/internal/dynamo"
	"github.com/san-kum/trajviz/internal/kinematics"
	"github.com/san-kum/trajviz/internal/playback"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	ColLink0   = rl.NewColor(180, 180, 180, 255) // Soft White
	ColLink1   = rl.NewColor(0, 200, 220, 255)
	ColJoint   = rl.NewColor(255, 255, 255, 255)
	ColTrail   = rl.NewColor(0, 200, 220, 90)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)
	ColAxes    = rl.NewColor(70, 70, 70, 255)
)

const (
	linkWidth  = 0.035
	jointSize  = 0.06
	minZoom    = 0.2
	maxZoom    = 20.0
	wheelScale = 0.1
)

type Options struct {
	Title         string
	Width, Height int
	Interval      time.Duration
	Bounds        float64
	Trail         int
}

// Window plays a trajectory in a raylib window. The pendulum plane is mapped
// through a 2D camera so wheel zoom and drag pan come for free.
type Window struct {
	traj     *kinematics.Trajectory
	player   *playback.Player
	opts     Options
	camera   rl.Camera2D
	userZoom float32
}

func newWindow(tr *kinematics.Trajectory, opts Options) *Window {
	w := &Window{
		traj:   tr,
		player: playback.New(tr.Len(), opts.Interval),
		opts:   opts,
	}
	w.resetView()
	return w
}

// Run opens the window and blocks until it is closed.
func Run(tr *kinematics.Trajectory, opts Options) error {
	if opts.Bounds <= 0 {
		opts.Bounds = 2.5
	}
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("gui: could not open window")
	}
	rl.SetTargetFPS(60)

	w := newWindow(tr, opts)
	return w.RunLoop()
}

func (w *Window) RunLoop() error {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return nil
		}
		w.Update()
		if err := w.Draw(); err != nil {
			return err
		}
	}
	return nil
}

// pixelsPerUnit fits [-Bounds, Bounds] into the shorter screen side.
func (w *Window) pixelsPerUnit() float32 {
	side := rl.GetScreenWidth()
	if h := rl.GetScreenHeight(); h < side {
		side = h
	}
	if side <= 0 {
		side = w.opts.Height
	}
	return float32(float64(side) * 0.9 / (2 * w.opts.Bounds))
}

func (w *Window) resetView() {
	w.userZoom = 1
	w.camera = rl.NewCamera2D(
		rl.NewVector2(float32(w.opts.Width)/2, float32(w.opts.Height)/2),
		rl.NewVector2(0, 0),
		0, 1,
	)
}

func (w *Window) Update() {
	w.player.Advance(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))

	if rl.IsWindowResized() || rl.IsKeyPressed(rl.KeyR) {
		w.opts.Width, w.opts.Height = rl.GetScreenWidth(), rl.GetScreenHeight()
		w.resetView()
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		w.camera.Target.X -= delta.X / w.camera.Zoom
		w.camera.Target.Y -= delta.Y / w.camera.Zoom
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		mouse := rl.GetMousePosition()
		anchor := rl.GetScreenToWorld2D(mouse, w.camera)
		w.camera.Offset = mouse
		w.camera.Target = anchor
		scale := float32(1 + wheelScale*math.Abs(float64(wheel)))
		if wheel < 0 {
			scale = 1 / scale
		}
		w.userZoom = clamp(w.userZoom*scale, minZoom, maxZoom)
	}

	w.camera.Zoom = w.pixelsPerUnit() * w.userZoom
}

func (w *Window) Draw() error {
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode2D(w.camera)
	w.drawAxes()
	var err error
	if w.traj.Len() > 0 {
		err = w.drawFigure()
	}
	rl.EndMode2D()

	w.drawLabel()
	w.DrawHUD()
	return err
}

// vec flips y so the pendulum plane points up on screen.
func vec(p dynamo.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(-p.Y))
}

func (w *Window) drawAxes() {
	b := float32(w.opts.Bounds)
	for v := -b; v <= b+1e-3; v += 0.5 {
		rl.DrawLineEx(rl.NewVector2(v, -b), rl.NewVector2(v, b), 0.005, ColGrid)
		rl.DrawLineEx(rl.NewVector2(-b, v), rl.NewVector2(b, v), 0.005, ColGrid)
	}
	rl.DrawRectangleLinesEx(rl.NewRectangle(-b, -b, 2*b, 2*b), 0.01, ColAxes)
}

func (w *Window) drawFigure() error {
	sc, err := w.traj.Scene(w.player.Cursor())
	if err != nil {
		return err
	}

	if trail := w.traj.Trail(sc.Index, w.opts.Trail); len(trail) > 1 {
		pts := make([]rl.Vector2, len(trail))
		for i, p := range trail {
			pts[i] = vec(p)
		}
		rl.DrawLineStrip(pts, ColTrail)
	}

	rl.DrawLineEx(vec(sc.Link0.From), vec(sc.Link0.To), linkWidth, ColLink0)
	rl.DrawLineEx(vec(sc.Link1.From), vec(sc.Link1.To), linkWidth, ColLink1)
	rl.DrawCircleV(vec(sc.Link0.From), jointSize*0.6, ColTextDim)
	rl.DrawCircleV(vec(sc.Link0.To), jointSize, ColJoint)
	rl.DrawCircleV(vec(sc.Link1.To), jointSize, ColJoint)
	return nil
}

// drawLabel writes the frame index next to the pivot in screen space.
func (w *Window) drawLabel() {
	pivot := rl.GetWorldToScreen2D(rl.NewVector2(0, 0), w.camera)
	rl.DrawText(w.player.Label(), int32(pivot.X)+8, int32(pivot.Y)+8, 20, ColJoint)
}

func (w *Window) DrawHUD() {
	rl.DrawText(w.opts.Title, 20, 20, 20, ColJoint)

	status := "PLAYING"
	if w.traj.Len() == 0 {
		status = "NO FRAMES"
	} else if w.player.Done() {
		status = "FINISHED"
	}
	rl.DrawText(fmt.Sprintf("%s  frame %s / %d", status, w.player.Label(), max(w.traj.Len()-1, 0)), 20, 48, 16, ColText)
	rl.DrawText(fmt.Sprintf("%.1fx  %d FPS", w.userZoom, rl.GetFPS()), 20, 70, 14, ColTextDim)

	rl.DrawText("[WHEEL] ZOOM  [DRAG] PAN  [R] RESET  [ESC] QUIT", 20, int32(rl.GetScreenHeight())-30, 14, ColTextDim)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
