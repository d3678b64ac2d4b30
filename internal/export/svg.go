package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/trajviz/internal/dynamo"
	"github.com/san-kum/trajviz/internal/kinematics"
)

type SVGOptions struct {
	Bounds float64
	Size   int
	Trail  int
	// Stroke colours the path drawn by PathSVG.
	Stroke string
}

func (o *SVGOptions) defaults() {
	if o.Bounds <= 0 {
		o.Bounds = 2.5
	}
	if o.Size <= 0 {
		o.Size = 600
	}
	if o.Stroke == "" {
		o.Stroke = "#ff00ff"
	}
}

// FrameSVG draws frame i of tr as a vector image of the fixed plot area.
// A frame with non-finite joints shows only the pivot and the label.
func FrameSVG(tr *kinematics.Trajectory, i int, opts SVGOptions) (string, error) {
	sc, err := tr.Scene(i)
	if err != nil {
		return "", err
	}
	opts.defaults()

	var sb strings.Builder
	openPlot(&sb, opts)

	if d, n := pathData(tr.Trail(i, opts.Trail)); n > 0 {
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-opacity="0.5" stroke-width="0.015" d="%s"/>
`, opts.Stroke, d)
	}

	if sc.Link0.To.IsFinite() && sc.Link1.To.IsFinite() {
		for _, seg := range []dynamo.Segment{sc.Link0, sc.Link1} {
			fmt.Fprintf(&sb, `<line x1="%.4f" y1="%.4f" x2="%.4f" y2="%.4f" stroke="#00ffff" stroke-width="0.04"/>
`, seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
		}
		for _, p := range []dynamo.Point{sc.Link0.To, sc.Link1.To} {
			fmt.Fprintf(&sb, `<circle cx="%.4f" cy="%.4f" r="0.06" fill="#ffffff"/>
`, p.X, p.Y)
		}
	}
	sb.WriteString(`<circle cx="0" cy="0" r="0.035" fill="#666688"/>
</g>
`)

	fmt.Fprintf(&sb, `<text x="0.08" y="0.2" font-family="monospace" font-size="0.2" fill="#ffff00">%s</text>
</svg>`, sc.Label)
	return sb.String(), nil
}

// PathSVG draws the joint1 path in the same fixed plot area as FrameSVG.
// Non-finite points break the path. It returns "" when no segment can be
// drawn.
func PathSVG(points []dynamo.Point, opts SVGOptions) string {
	d, n := pathData(points)
	if n == 0 {
		return ""
	}
	opts.defaults()

	var sb strings.Builder
	openPlot(&sb, opts)
	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="0.015" d="%s"/>
</g>
</svg>`, opts.Stroke, d)
	return sb.String()
}

// openPlot writes the document header, the plot frame and opens the group
// that flips y upward.
func openPlot(sb *strings.Builder, opts SVGOptions) {
	b := opts.Bounds
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%g %g %g %g">
<rect x="%g" y="%g" width="%g" height="%g" fill="#0a0a0a" stroke="#444466" stroke-width="0.01"/>
<g transform="scale(1,-1)" stroke-linecap="round" stroke-linejoin="round">
`, opts.Size, opts.Size, -b, -b, 2*b, 2*b, -b, -b, 2*b, 2*b)
}

// pathData builds SVG path data through points, starting a new subpath
// after every non-finite point. n is the number of line segments.
func pathData(points []dynamo.Point) (d string, n int) {
	var sb strings.Builder
	penUp := true
	for _, p := range points {
		if !p.IsFinite() {
			penUp = true
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		if penUp {
			fmt.Fprintf(&sb, "M%.4f,%.4f", p.X, p.Y)
			penUp = false
		} else {
			fmt.Fprintf(&sb, "L%.4f,%.4f", p.X, p.Y)
			n++
		}
	}
	return sb.String(), n
}
