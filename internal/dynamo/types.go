package dynamo

import (
	"fmt"
	"math"
	"strings"
)

// State is one row of the frame table: the values of every column at a
// single time step.
type State []float64

// IsValid reports whether every value is finite.
func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Table is the frame table: an ordered, header-named sequence of states.
// It is built once by the loader and treated as read-only afterwards.
type Table struct {
	Columns []string
	Rows    []State
}

func NewTable(columns []string) *Table {
	return &Table{Columns: columns, Rows: make([]State, 0)}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Index returns the position of the named column, or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column copies one named column out of the table.
func (t *Table) Column(name string) ([]float64, error) {
	idx := t.Index(name)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrMissingColumn, name, strings.Join(t.Columns, ","))
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		if idx < len(row) {
			out[i] = row[idx]
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}

// Point is a position in the pendulum plane, y pointing up.
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// IsFinite reports whether both coordinates are finite. Angles read as NaN
// produce non-finite points.
func (p Point) IsFinite() bool { return State{p.X, p.Y}.IsValid() }

func (p Point) String() string { return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y) }

// Segment is a straight link drawn between two points.
type Segment struct {
	From, To Point
}

// Scene is everything a renderer needs to draw one frame.
type Scene struct {
	Index int
	Link0 Segment
	Link1 Segment
	Label string
}
