package kinematics

import (
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/trajviz/internal/dynamo"
)

const (
	DefaultColumn0 = "state0"
	DefaultColumn1 = "state1"
)

// Joints returns the two joint positions of a unit-length double pendulum.
// q0 is the absolute angle of the first link, q1 the angle of the second
// link relative to the first. The pivot sits at the origin.
func Joints(q0, q1 float64) (joint0, joint1 dynamo.Point) {
	s0, c0 := math.Sincos(q0)
	s01, c01 := math.Sincos(q0 + q1)
	joint0 = dynamo.Point{X: c0, Y: s0}
	joint1 = joint0.Add(dynamo.Point{X: c01, Y: s01})
	return joint0, joint1
}

// Trajectory holds the derived joint coordinates for every frame as four
// parallel sequences. Index i addresses the same time step in all of them.
type Trajectory struct {
	X0, Y0 []float64
	X1, Y1 []float64
}

// Compute derives joint positions for the whole table using the default
// angle columns.
func Compute(t *dynamo.Table) (*Trajectory, error) {
	return ComputeColumns(t, DefaultColumn0, DefaultColumn1)
}

// ComputeColumns derives joint positions from two named angle columns.
func ComputeColumns(t *dynamo.Table, col0, col1 string) (*Trajectory, error) {
	q0, err := t.Column(col0)
	if err != nil {
		return nil, err
	}
	q1, err := t.Column(col1)
	if err != nil {
		return nil, err
	}

	n := len(q0)
	tr := &Trajectory{
		X0: make([]float64, n),
		Y0: make([]float64, n),
		X1: make([]float64, n),
		Y1: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		j0, j1 := Joints(q0[i], q1[i])
		tr.X0[i], tr.Y0[i] = j0.X, j0.Y
		tr.X1[i], tr.Y1[i] = j1.X, j1.Y
	}
	return tr, nil
}

func (tr *Trajectory) Len() int {
	if tr == nil {
		return 0
	}
	return len(tr.X0)
}

// Joint0 and Joint1 return the derived positions at frame i.
func (tr *Trajectory) Joint0(i int) dynamo.Point { return dynamo.Point{X: tr.X0[i], Y: tr.Y0[i]} }
func (tr *Trajectory) Joint1(i int) dynamo.Point { return dynamo.Point{X: tr.X1[i], Y: tr.Y1[i]} }

// Scene returns both links and the frame label for frame i.
func (tr *Trajectory) Scene(i int) (dynamo.Scene, error) {
	if i < 0 || i >= tr.Len() {
		return dynamo.Scene{}, fmt.Errorf("%w: %d not in [0,%d)", dynamo.ErrFrameRange, i, tr.Len())
	}
	j0, j1 := tr.Joint0(i), tr.Joint1(i)
	return dynamo.Scene{
		Index: i,
		Link0: dynamo.Segment{From: dynamo.Point{}, To: j0},
		Link1: dynamo.Segment{From: j0, To: j1},
		Label: strconv.Itoa(i),
	}, nil
}

// Trail returns up to n joint1 positions ending at frame i, oldest first.
func (tr *Trajectory) Trail(i, n int) []dynamo.Point {
	if n <= 0 || i < 0 || i >= tr.Len() {
		return nil
	}
	start := i - n + 1
	if start < 0 {
		start = 0
	}
	pts := make([]dynamo.Point, 0, i-start+1)
	for k := start; k <= i; k++ {
		pts = append(pts, tr.Joint1(k))
	}
	return pts
}

// Path returns joint1 positions for every frame.
func (tr *Trajectory) Path() []dynamo.Point {
	return tr.Trail(tr.Len()-1, tr.Len())
}

// Table returns the derived sequences as a frame table with the columns
// index, x0, y0, x1, y1.
func (tr *Trajectory) Table() *dynamo.Table {
	t := dynamo.NewTable([]string{"index", "x0", "y0", "x1", "y1"})
	for i := 0; i < tr.Len(); i++ {
		t.Rows = append(t.Rows, dynamo.State{float64(i), tr.X0[i], tr.Y0[i], tr.X1[i], tr.Y1[i]})
	}
	return t
}
