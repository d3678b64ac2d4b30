package viz

import (
	"math"

	"github.com/san-kum/trajviz/internal/dynamo"
	"github.com/san-kum/trajviz/internal/kinematics"
)

const (
	minZoom  = 0.25
	maxZoom  = 16
	zoomStep = 1.25
	panStep  = 0.1 // fraction of the visible extent
)

// Viewport maps the pendulum plane onto canvas dots. With zoom 1 and no pan
// it shows exactly [-Bounds, Bounds] on both axes.
type Viewport struct {
	Bounds  float64
	Zoom    float64
	CenterX float64
	CenterY float64
}

func NewViewport(bounds float64) Viewport {
	return Viewport{Bounds: bounds, Zoom: 1}
}

// Project returns the dot position of p on a w x h dot canvas. The square
// plot area is centred and y grows upward.
func (v Viewport) Project(p dynamo.Point, w, h int) (int, int) {
	side := w
	if h < side {
		side = h
	}
	scale := float64(side-1) / (2 * v.Bounds / v.Zoom)
	x := float64(w-1)/2 + (p.X-v.CenterX)*scale
	y := float64(h-1)/2 - (p.Y-v.CenterY)*scale
	return int(math.Round(x)), int(math.Round(y))
}

func (v *Viewport) ZoomIn() {
	v.Zoom = math.Min(v.Zoom*zoomStep, maxZoom)
}

func (v *Viewport) ZoomOut() {
	v.Zoom = math.Max(v.Zoom/zoomStep, minZoom)
}

// Pan shifts the view by a fraction of the visible half-extent.
func (v *Viewport) Pan(dx, dy float64) {
	extent := v.Bounds / v.Zoom
	v.CenterX += dx * extent * panStep * 2
	v.CenterY += dy * extent * panStep * 2
}

func (v *Viewport) Reset() {
	v.Zoom, v.CenterX, v.CenterY = 1, 0, 0
}

// DrawScene renders both links, the joints, the frame label at the pivot and
// an optional joint1 trail.
func DrawScene(c *Canvas, v Viewport, sc dynamo.Scene, trail []dynamo.Point) {
	w, h := c.Dots()
	for _, pt := range trail {
		if pt.IsFinite() {
			c.Set(v.Project(pt, w, h))
		}
	}

	px, py := v.Project(sc.Link0.From, w, h)
	c.Dot(px, py, 1)
	c.Text(px/2+2, py/4, sc.Label)

	// rows with NaN angles have no pose to draw
	if !sc.Link0.To.IsFinite() || !sc.Link1.To.IsFinite() {
		return
	}
	j0x, j0y := v.Project(sc.Link0.To, w, h)
	j1x, j1y := v.Project(sc.Link1.To, w, h)

	c.DrawLine(px, py, j0x, j0y)
	c.DrawLine(j0x, j0y, j1x, j1y)
	c.Dot(j0x, j0y, 1)
	c.Dot(j1x, j1y, 2)
}


// RenderFrame clears c and draws frame i of tr.
func RenderFrame(c *Canvas, v Viewport, tr *kinematics.Trajectory, i, trail int) error {
	c.Clear()
	sc, err := tr.Scene(i)
	if err != nil {
		return err
	}
	DrawScene(c, v, sc, tr.Trail(i, trail))
	return nil
}
