package kinematics_test

import (
	"math"
	"strconv"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/trajviz/internal/dynamo"
	"github.com/san-kum/trajviz/internal/kinematics"
)

func table(rows ...dynamo.State) *dynamo.Table {
	return &dynamo.Table{Columns: []string{"time", "state0", "state1"}, Rows: rows}
}

var _ = Describe("Joints", func() {
	It("stretches along +x when both angles are zero", func() {
		j0, j1 := kinematics.Joints(0, 0)
		Expect(j0).To(Equal(dynamo.Point{X: 1, Y: 0}))
		Expect(j1).To(Equal(dynamo.Point{X: 2, Y: 0}))
	})

	It("points up and back at a quarter turn", func() {
		j0, j1 := kinematics.Joints(math.Pi/2, 0)
		Expect(j0.X).To(BeNumerically("~", 0, 1e-12))
		Expect(j0.Y).To(BeNumerically("~", 1, 1e-12))
		Expect(j1.X).To(BeNumerically("~", 0, 1e-12))
		Expect(j1.Y).To(BeNumerically("~", 2, 1e-12))
	})

	It("folds the second link back with a relative half turn", func() {
		j0, j1 := kinematics.Joints(math.Pi/2, math.Pi/2)
		Expect(j0.Y).To(BeNumerically("~", 1, 1e-12))
		Expect(j1.X).To(BeNumerically("~", -1, 1e-12))
		Expect(j1.Y).To(BeNumerically("~", 1, 1e-12))
	})

	It("keeps both links at unit length", func() {
		for _, q := range [][2]float64{{0.3, -1.2}, {2.5, 0.7}, {-3, 3}} {
			j0, j1 := kinematics.Joints(q[0], q[1])
			Expect(math.Hypot(j0.X, j0.Y)).To(BeNumerically("~", 1, 1e-12))
			Expect(math.Hypot(j1.X-j0.X, j1.Y-j0.Y)).To(BeNumerically("~", 1, 1e-12))
		}
	})
})

var _ = Describe("Compute", func() {
	DescribeTable("derived sequences match the table length",
		func(n int) {
			rows := make([]dynamo.State, n)
			for i := range rows {
				rows[i] = dynamo.State{float64(i) * 0.01, float64(i) * 0.1, -float64(i) * 0.05}
			}
			tr, err := kinematics.Compute(table(rows...))
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Len()).To(Equal(n))
			Expect(tr.X0).To(HaveLen(n))
			Expect(tr.Y0).To(HaveLen(n))
			Expect(tr.X1).To(HaveLen(n))
			Expect(tr.Y1).To(HaveLen(n))
		},
		Entry("empty", 0),
		Entry("single row", 1),
		Entry("many rows", 250),
	)

	It("aligns every sequence on the same frame", func() {
		tr, err := kinematics.Compute(table(
			dynamo.State{0, 0, 0},
			dynamo.State{0.1, math.Pi / 2, 0},
		))
		Expect(err).NotTo(HaveOccurred())
		Expect(tr.X1[0]).To(Equal(2.0))
		Expect(tr.Y0[1]).To(BeNumerically("~", 1, 1e-12))
		Expect(tr.Y1[1]).To(BeNumerically("~", 2, 1e-12))
	})

	It("ignores extra columns and honours custom column names", func() {
		t := &dynamo.Table{
			Columns: []string{"q1", "q0", "energy"},
			Rows:    []dynamo.State{{0, math.Pi, 9.81}},
		}
		tr, err := kinematics.ComputeColumns(t, "q0", "q1")
		Expect(err).NotTo(HaveOccurred())
		Expect(tr.X0[0]).To(BeNumerically("~", -1, 1e-12))
		Expect(tr.X1[0]).To(BeNumerically("~", -2, 1e-12))
	})

	It("fails when a required column is absent", func() {
		t := &dynamo.Table{Columns: []string{"time", "state0"}, Rows: []dynamo.State{{0, 0}}}
		_, err := kinematics.Compute(t)
		Expect(err).To(MatchError(dynamo.ErrMissingColumn))
	})
})

var _ = Describe("Trajectory", func() {
	var tr *kinematics.Trajectory

	BeforeEach(func() {
		rows := make([]dynamo.State, 5)
		for i := range rows {
			rows[i] = dynamo.State{float64(i), 0, 0}
		}
		var err error
		tr, err = kinematics.Compute(table(rows...))
		Expect(err).NotTo(HaveOccurred())
	})

	It("builds scenes anchored at the pivot", func() {
		for i := 0; i < tr.Len(); i++ {
			sc, err := tr.Scene(i)
			Expect(err).NotTo(HaveOccurred())
			Expect(sc.Index).To(Equal(i))
			Expect(sc.Label).To(Equal(strconv.Itoa(i)))
			Expect(sc.Link0.From).To(Equal(dynamo.Point{}))
			Expect(sc.Link0.To).To(Equal(sc.Link1.From))
			Expect(sc.Link1.To).To(Equal(dynamo.Point{X: 2, Y: 0}))
		}
	})

	It("rejects frames outside the table", func() {
		_, err := tr.Scene(5)
		Expect(err).To(MatchError(dynamo.ErrFrameRange))
		_, err = tr.Scene(-1)
		Expect(err).To(MatchError(dynamo.ErrFrameRange))
	})

	It("returns bounded trails oldest first", func() {
		Expect(tr.Trail(3, 2)).To(HaveLen(2))
		Expect(tr.Trail(1, 10)).To(HaveLen(2))
		Expect(tr.Trail(3, 0)).To(BeEmpty())
		Expect(tr.Path()).To(HaveLen(5))
	})

	It("exports the derived sequences as a table", func() {
		out := tr.Table()
		Expect(out.Columns).To(Equal([]string{"index", "x0", "y0", "x1", "y1"}))
		Expect(out.Len()).To(Equal(5))
		Expect(out.Rows[4][0]).To(Equal(4.0))
		Expect(out.Rows[4][3]).To(Equal(2.0))
	})
})
