package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/san-kum/trajviz/internal/config"
	"github.com/san-kum/trajviz/internal/dynamo"
	"github.com/san-kum/trajviz/internal/gui"
	"github.com/san-kum/trajviz/internal/kinematics"
	"github.com/san-kum/trajviz/internal/logging"
	"github.com/san-kum/trajviz/internal/storage"
	"github.com/san-kum/trajviz/internal/viz"
	"github.com/spf13/cobra"
)

// renderFunc plays a trajectory and blocks until the display is closed.
type renderFunc func(tr *kinematics.Trajectory, cfg *config.Config, title string) error

type app struct {
	configFile string
	preset     string
	logLevel   string
	interval   time.Duration
	bounds     float64
	trail      int
	strict     bool
	renderer   string
	theme      string
	col0, col1 string

	log       *slog.Logger
	renderers map[string]renderFunc
}

func newApp() *app {
	return &app{
		log: logging.NewNop(),
		renderers: map[string]renderFunc{
			config.RendererWindow: renderWindow,
			config.RendererTUI:    renderTerminal,
		},
	}
}

// exactlyOneFile rejects any argument count other than one input path.
func exactlyOneFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return dynamo.ErrUsage
	}
	return nil
}

// main builds the trajviz command tree and exits with status 1 on error.
func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "trajviz <file.csv>",
		Short:        "play back double pendulum trajectories",
		Long:         "Reads a comma-delimited table with state0 and state1 angle columns and animates the two-link pendulum, one frame per interval.",
		Args:         exactlyOneFile,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log = logging.New(level)
			return nil
		},
		RunE: a.play,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&a.preset, "preset", "", "use preset configuration")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	pf.DurationVar(&a.interval, "interval", config.DefaultInterval, "time between frames")
	pf.Float64Var(&a.bounds, "bounds", config.DefaultBounds, "half extent of both plot axes")
	pf.IntVar(&a.trail, "trail", 0, "number of past joint1 positions to draw")
	pf.BoolVar(&a.strict, "strict", false, "fail on non-numeric cells instead of reading NaN")
	pf.StringVar(&a.col0, "state0", config.DefaultColumn0, "column holding the first joint angle")
	pf.StringVar(&a.col1, "state1", config.DefaultColumn1, "column holding the relative second joint angle")

	rootCmd.Flags().StringVar(&a.renderer, "renderer", config.DefaultRenderer, "display (window|tui)")
	rootCmd.Flags().StringVar(&a.theme, "theme", config.DefaultTheme, "terminal color theme")

	rootCmd.AddCommand(
		newInfoCmd(a),
		newExportGIFCmd(a),
		newExportSVGCmd(a),
		newExportCSVCmd(a),
		newPresetsCmd(),
		newThemesCmd(),
		newSaveConfigCmd(a),
	)
	return rootCmd
}

// settings layers the preset over the defaults, the config file over the
// preset and explicitly set flags over both.
func (a *app) settings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if a.preset != "" {
		cfg = config.GetPreset(a.preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", a.preset, config.ListPresets())
		}
	}

	if a.configFile != "" {
		loaded, err := config.LoadOver(a.configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("interval") {
		cfg.Interval = a.interval
	}
	if flags.Changed("bounds") {
		cfg.Bounds = a.bounds
	}
	if flags.Changed("trail") {
		cfg.Trail = a.trail
	}
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}
	if flags.Changed("state0") {
		cfg.Columns.State0 = a.col0
	}
	if flags.Changed("state1") {
		cfg.Columns.State1 = a.col1
	}
	if flags.Changed("renderer") {
		cfg.Renderer = a.renderer
	}
	if flags.Changed("theme") {
		cfg.Theme = a.theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// load reads the table at path and derives the joint trajectory.
func (a *app) load(path string, cfg *config.Config) (*dynamo.Table, *kinematics.Trajectory, error) {
	tbl, err := storage.Load(path, storage.Options{Strict: cfg.Strict, Logger: a.log})
	if err != nil {
		return nil, nil, err
	}
	tr, err := kinematics.ComputeColumns(tbl, cfg.Columns.State0, cfg.Columns.State1)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, tr, nil
}

func (a *app) play(cmd *cobra.Command, args []string) error {
	cfg, err := a.settings(cmd)
	if err != nil {
		return err
	}
	_, tr, err := a.load(args[0], cfg)
	if err != nil {
		return err
	}
	if tr.Len() == 0 {
		a.log.Warn("trajectory has no frames", "path", args[0])
	}

	render, ok := a.renderers[cfg.Renderer]
	if !ok {
		return fmt.Errorf("unknown renderer: %s", cfg.Renderer)
	}
	a.log.Debug("starting playback", "frames", tr.Len(), "renderer", cfg.Renderer, "interval", cfg.Interval)
	return render(tr, cfg, args[0])
}

func renderWindow(tr *kinematics.Trajectory, cfg *config.Config, title string) error {
	return gui.Run(tr, gui.Options{
		Title:    title,
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Interval: cfg.Interval,
		Bounds:   cfg.Bounds,
		Trail:    cfg.Trail,
	})
}

func renderTerminal(tr *kinematics.Trajectory, cfg *config.Config, title string) error {
	viz.SetTheme(cfg.Theme)
	return viz.Run(tr, viz.Options{
		Title:    title,
		Interval: cfg.Interval,
		Bounds:   cfg.Bounds,
		Trail:    cfg.Trail,
		Theme:    viz.CurrentTheme,
	})
}
