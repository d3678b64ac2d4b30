package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/trajviz/internal/analysis"
	"github.com/san-kum/trajviz/internal/config"
	"github.com/san-kum/trajviz/internal/dynamo"
	"github.com/san-kum/trajviz/internal/export"
	"github.com/san-kum/trajviz/internal/kinematics"
	"github.com/san-kum/trajviz/internal/playback"
	"github.com/san-kum/trajviz/internal/storage"
	"github.com/san-kum/trajviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func newInfoCmd(a *app) *cobra.Command {
	var noPlot bool
	cmd := &cobra.Command{
		Use:   "info <file.csv>",
		Short: "summarize a trajectory file",
		Args:  exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.settings(cmd)
			if err != nil {
				return err
			}
			tbl, tr, err := a.load(args[0], cfg)
			if err != nil {
				return err
			}
			return writeInfo(cmd.OutOrStdout(), args[0], tbl, tr, cfg, !noPlot)
		},
	}
	cmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the angle plots")
	return cmd
}

func writeInfo(out io.Writer, path string, tbl *dynamo.Table, tr *kinematics.Trajectory, cfg *config.Config, plot bool) error {
	fmt.Fprintln(out, titleStyle.Render(path))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "frames\t%d\n", tbl.Len())
	fmt.Fprintf(w, "columns\t%s\n", strings.Join(tbl.Columns, ", "))
	if tbl.Len() < 2 {
		fmt.Fprintln(w, "animated\tnone")
	} else {
		fmt.Fprintf(w, "animated\t1..%d\n", tbl.Len()-1)
	}
	fmt.Fprintf(w, "interval\t%v\n", cfg.Interval)
	fmt.Fprintf(w, "playback\t%v\n", playback.Duration(tbl.Len(), cfg.Interval))

	for _, name := range []string{cfg.Columns.State0, cfg.Columns.State1} {
		col, err := tbl.Column(name)
		if err != nil {
			return err
		}
		lo, hi, nan := columnRange(col)
		fmt.Fprintf(w, "%s\t[%.4f, %.4f]\tNaN: %d\n", name, lo, hi, nan)
		if period, ok := analysis.DominantPeriod(col); ok {
			fmt.Fprintf(w, "%s period\t%.1f frames\t%v\n", name, period,
				time.Duration(period*float64(cfg.Interval)).Round(time.Millisecond))
		}
	}

	if tr.Len() > 0 {
		reach := 0.0
		for i := 0; i < tr.Len(); i++ {
			if r := math.Hypot(tr.X1[i], tr.Y1[i]); r > reach {
				reach = r
			}
		}
		fmt.Fprintf(w, "max reach\t%.4f\t(bounds %.2f)\n", reach, cfg.Bounds)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if !plot || tbl.Len() < 2 {
		return nil
	}
	for _, name := range []string{cfg.Columns.State0, cfg.Columns.State1} {
		col, _ := tbl.Column(name)
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(col,
			asciigraph.Height(8),
			asciigraph.Width(72),
			asciigraph.Caption(name+" vs frame"),
		))
	}
	return nil
}

func columnRange(col []float64) (lo, hi float64, nan int) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range col {
		if math.IsNaN(v) {
			nan++
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if nan == len(col) {
		lo, hi = math.NaN(), math.NaN()
	}
	return lo, hi, nan
}

// writeOutput runs write against path, or stdout for "-". A file that fails
// to be written completely is removed.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func newExportGIFCmd(a *app) *cobra.Command {
	var out string
	var dots, scale int
	cmd := &cobra.Command{
		Use:   "export-gif <file.csv>",
		Short: "render the animation to a GIF that plays once",
		Args:  exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.settings(cmd)
			if err != nil {
				return err
			}
			_, tr, err := a.load(args[0], cfg)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("scale") {
				scale = cfg.Export.Scale
			}

			opts := export.GIFOptions{
				Interval: cfg.Interval,
				Bounds:   cfg.Bounds,
				Trail:    cfg.Trail,
				Dots:     dots,
				Scale:    scale,
			}
			err = writeOutput(cmd, out, func(w io.Writer) error {
				return export.WriteGIF(w, tr, opts)
			})
			if err != nil {
				return err
			}
			a.log.Info("wrote gif", "path", out, "frames", tr.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "trajectory.gif", "output path (- for stdout)")
	cmd.Flags().IntVar(&dots, "dots", 160, "plot side in canvas dots")
	cmd.Flags().IntVar(&scale, "scale", config.DefaultGIFScale, "pixels per dot")
	return cmd
}

func newExportSVGCmd(a *app) *cobra.Command {
	var out string
	var frame, size int
	var path bool
	cmd := &cobra.Command{
		Use:   "export-svg <file.csv>",
		Short: "write one frame, or the whole joint1 path, as SVG",
		Args:  exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.settings(cmd)
			if err != nil {
				return err
			}
			_, tr, err := a.load(args[0], cfg)
			if err != nil {
				return err
			}

			var svg string
			if path {
				svg = export.PathSVG(tr.Path(), export.SVGOptions{Bounds: cfg.Bounds, Size: size})
				if svg == "" {
					return fmt.Errorf("need at least two frames for a path")
				}
			} else {
				svg, err = export.FrameSVG(tr, frame, export.SVGOptions{Bounds: cfg.Bounds, Size: size, Trail: cfg.Trail})
				if err != nil {
					return err
				}
			}

			return writeOutput(cmd, out, func(w io.Writer) error {
				_, err := io.WriteString(w, svg)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "frame.svg", "output path (- for stdout)")
	cmd.Flags().IntVar(&frame, "frame", 0, "frame index to draw")
	cmd.Flags().IntVar(&size, "size", 600, "image side in pixels")
	cmd.Flags().BoolVar(&path, "path", false, "draw the joint1 path instead of a frame")
	return cmd
}

func newExportCSVCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export-csv <file.csv>",
		Short: "write derived joint coordinates as CSV",
		Args:  exactlyOneFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.settings(cmd)
			if err != nil {
				return err
			}
			_, tr, err := a.load(args[0], cfg)
			if err != nil {
				return err
			}

			return writeOutput(cmd, out, func(w io.Writer) error {
				return storage.WriteTable(w, tr.Table())
			})
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "-", "output path (- for stdout)")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list available playback presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%v\t%s\ttrail %d\n", name, p.Interval, p.Renderer, p.Trail)
			}
			return w.Flush()
		},
	}
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "list terminal color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				t := viz.GetTheme(name)
				swatch := lipgloss.NewStyle().Foreground(t.Figure).Render("██") +
					lipgloss.NewStyle().Foreground(t.Accent).Render("██") +
					lipgloss.NewStyle().Foreground(t.Label).Render("██")
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s %s\n", name, swatch, dimStyle.Render(string(t.Figure)))
			}
		},
	}
}

func newSaveConfigCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "save-config",
		Short: "write the effective settings (preset, config file and flags) as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.settings(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(out, cfg); err != nil {
				return err
			}
			a.log.Info("wrote config", "path", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "trajviz.yaml", "output path")
	return cmd
}
