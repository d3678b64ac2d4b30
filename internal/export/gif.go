package export

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"
	"time"

	"github.com/san-kum/trajviz/internal/kinematics"
	"github.com/san-kum/trajviz/internal/viz"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var ErrNoFrames = errors.New("export: trajectory has no frames")

var palette = color.Palette{
	color.RGBA{10, 10, 10, 255},
	color.RGBA{0, 255, 255, 255},
	color.RGBA{255, 255, 0, 255},
}

const (
	idxBg = iota
	idxFigure
	idxLabel
)

type GIFOptions struct {
	Interval time.Duration
	Bounds   float64
	Trail    int
	// Dots is the side of the square plot in braille sub-pixels.
	Dots int
	// Scale is the number of image pixels per sub-pixel.
	Scale int
}

func (o *GIFOptions) defaults() {
	if o.Interval <= 0 {
		o.Interval = 100 * time.Millisecond
	}
	if o.Bounds <= 0 {
		o.Bounds = 2.5
	}
	if o.Dots < 8 {
		o.Dots = 160
	}
	if o.Scale < 1 {
		o.Scale = 3
	}
}

// GIF renders every frame of tr, frame 0 first, as an animation that plays
// once and stops on the last frame.
func GIF(tr *kinematics.Trajectory, opts GIFOptions) (*gif.GIF, error) {
	if tr.Len() == 0 {
		return nil, ErrNoFrames
	}
	opts.defaults()

	delay := int(opts.Interval / (10 * time.Millisecond))
	if delay < 1 {
		delay = 1
	}

	canvas := viz.NewCanvas(opts.Dots/2, opts.Dots/4)
	view := viz.NewViewport(opts.Bounds)
	anim := &gif.GIF{LoopCount: -1}

	for i := 0; i < tr.Len(); i++ {
		sc, err := tr.Scene(i)
		if err != nil {
			return nil, err
		}
		label := sc.Label
		sc.Label = ""

		canvas.Clear()
		viz.DrawScene(canvas, view, sc, tr.Trail(i, opts.Trail))
		img := rasterize(canvas, opts.Scale)

		w, h := canvas.Dots()
		px, py := view.Project(sc.Link0.From, w, h)
		drawLabel(img, label, (px+4)*opts.Scale, (py+4)*opts.Scale+basicfont.Face7x13.Ascent)

		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, delay)
	}
	return anim, nil
}

// WriteGIF encodes the animation of tr to w.
func WriteGIF(w io.Writer, tr *kinematics.Trajectory, opts GIFOptions) error {
	anim, err := GIF(tr, opts)
	if err != nil {
		return err
	}
	return gif.EncodeAll(w, anim)
}

func rasterize(c *viz.Canvas, scale int) *image.Paletted {
	w, h := c.Dots()
	img := image.NewPaletted(image.Rect(0, 0, w*scale, h*scale), palette)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !c.IsSet(x, y) {
				continue
			}
			for py := 0; py < scale; py++ {
				for px := 0; px < scale; px++ {
					img.SetColorIndex(x*scale+px, y*scale+py, idxFigure)
				}
			}
		}
	}
	return img
}

func drawLabel(img *image.Paletted, s string, x, y int) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(palette[idxLabel]),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
