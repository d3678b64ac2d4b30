package viz

import (
	"math"
	"testing"

	"github.com/san-kum/trajviz/internal/dynamo"
	"github.com/san-kum/trajviz/internal/kinematics"
)

func TestViewport_Project(t *testing.T) {
	v := NewViewport(2.5)

	tests := []struct {
		p    dynamo.Point
		x, y int
	}{
		{dynamo.Point{X: 0, Y: 0}, 50, 50},
		{dynamo.Point{X: -2.5, Y: 2.5}, 0, 0},
		{dynamo.Point{X: 2.5, Y: -2.5}, 100, 100},
		{dynamo.Point{X: 1, Y: 0}, 70, 50},
	}

	for _, tt := range tests {
		x, y := v.Project(tt.p, 101, 101)
		if x != tt.x || y != tt.y {
			t.Errorf("Project(%v) = (%d,%d), want (%d,%d)", tt.p, x, y, tt.x, tt.y)
		}
	}
}

func TestViewport_NonSquare(t *testing.T) {
	v := NewViewport(2.5)
	// the plot area stays square and centred
	x0, _ := v.Project(dynamo.Point{X: -2.5}, 201, 101)
	x1, _ := v.Project(dynamo.Point{X: 2.5}, 201, 101)
	if x1-x0 != 100 || x0 != 50 {
		t.Errorf("expected square centred area, got x in [%d,%d]", x0, x1)
	}
}

func TestViewport_ZoomPan(t *testing.T) {
	v := NewViewport(2.5)
	v.ZoomIn()
	if v.Zoom <= 1 {
		t.Errorf("expected zoom > 1, got %f", v.Zoom)
	}
	for i := 0; i < 100; i++ {
		v.ZoomIn()
	}
	if v.Zoom != maxZoom {
		t.Errorf("expected zoom clamped to %v, got %f", maxZoom, v.Zoom)
	}

	v.Reset()
	v.Pan(1, 0)
	if math.Abs(v.CenterX-0.5) > 1e-12 {
		t.Errorf("expected pan by 0.5, got %f", v.CenterX)
	}
	x, _ := v.Project(dynamo.Point{X: 0.5}, 101, 101)
	if x != 50 {
		t.Errorf("expected panned centre at 50, got %d", x)
	}

	v.Reset()
	if v.Zoom != 1 || v.CenterX != 0 || v.CenterY != 0 {
		t.Errorf("reset failed: %+v", v)
	}
}

func TestRenderFrame(t *testing.T) {
	tr, err := kinematics.Compute(&dynamo.Table{
		Columns: []string{"state0", "state1"},
		Rows:    []dynamo.State{{0, 0}, {math.Pi / 2, 0}},
	})
	if err != nil {
		t.Fatal(err)
	}

	c := NewCanvas(50, 25)
	v := NewViewport(2.5)
	if err := RenderFrame(c, v, tr, 0, 0); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	w, h := c.Dots()
	tipX, tipY := v.Project(dynamo.Point{X: 2, Y: 0}, w, h)
	if !c.IsSet(tipX, tipY) {
		t.Error("expected joint1 to be drawn")
	}
	midX, midY := v.Project(dynamo.Point{X: 1.5, Y: 0}, w, h)
	if !c.IsSet(midX, midY) {
		t.Error("expected link1 to be drawn")
	}

	if err := RenderFrame(c, v, tr, 2, 0); err == nil {
		t.Error("expected out of range error")
	}
}

func TestDrawScene_NaNPose(t *testing.T) {
	nan := math.NaN()
	sc := dynamo.Scene{
		Link0: dynamo.Segment{To: dynamo.Point{X: nan, Y: nan}},
		Link1: dynamo.Segment{From: dynamo.Point{X: nan, Y: nan}, To: dynamo.Point{X: nan, Y: nan}},
		Label: "7",
	}
	c := NewCanvas(20, 10)
	DrawScene(c, NewViewport(2.5), sc, []dynamo.Point{{X: nan, Y: 0}})

	if !c.IsSet(19, 19) {
		t.Error("expected the pivot to be drawn")
	}
	if c.IsSet(0, 0) {
		t.Error("expected no line for a NaN pose")
	}
}
