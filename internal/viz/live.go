package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/trajviz/internal/kinematics"
	"github.com/san-kum/trajviz/internal/playback"
)

const (
	width       = 60
	height      = 28
	panelWidth  = 40
	graphWindow = 120
)

type TickMsg time.Time

// Options configures the terminal player.
type Options struct {
	Title    string
	Interval time.Duration
	Bounds   float64
	Trail    int
	Theme    Theme
}

// Model plays a precomputed trajectory on a braille canvas.
type Model struct {
	traj          *kinematics.Trajectory
	player        *playback.Player
	view          Viewport
	canvas        *Canvas
	trail         int
	title         string
	styles        styles
	width, height int
}

// NewModel builds the player model. Frame 0 is shown until the first tick.
func NewModel(tr *kinematics.Trajectory, opts Options) Model {
	if opts.Bounds <= 0 {
		opts.Bounds = 2.5
	}
	if opts.Theme.Name == "" {
		opts.Theme = CurrentTheme
	}
	return Model{
		traj:   tr,
		player: playback.New(tr.Len(), opts.Interval),
		view:   NewViewport(opts.Bounds),
		canvas: NewCanvas(width, height),
		trail:  opts.Trail,
		title:  opts.Title,
		styles: newStyles(opts.Theme),
		width:  width + panelWidth + 6,
		height: height + 2,
	}
}

func (m Model) Cursor() int { return m.player.Cursor() }

func (m Model) tick() tea.Cmd {
	if m.player.Done() {
		return nil
	}
	return tea.Tick(m.player.Interval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update advances playback on ticks and handles quit, pan and zoom keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "+", "=":
			m.view.ZoomIn()
		case "-", "_":
			m.view.ZoomOut()
		case "left", "h":
			m.view.Pan(-1, 0)
		case "right", "l":
			m.view.Pan(1, 0)
		case "up", "k":
			m.view.Pan(0, 1)
		case "down", "j":
			m.view.Pan(0, -1)
		case "0":
			m.view.Reset()
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		m.player.Step()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	cw, ch := w-panelWidth-8, h-4
	if cw < 10 {
		cw = 10
	}
	if ch < 5 {
		ch = 5
	}
	m.canvas = NewCanvas(cw, ch)
}

// draw renders the current frame onto the canvas.
func (m *Model) draw() error {
	m.canvas.Clear()
	if m.traj.Len() == 0 {
		return nil
	}
	return RenderFrame(m.canvas, m.view, m.traj, m.player.Cursor(), m.trail)
}

// View renders the canvas and the side panel.
func (m Model) View() string {
	drawErr := m.draw()
	canvasView := m.styles.figure.Render(m.canvas.String())

	i := m.player.Cursor()
	var s strings.Builder
	s.WriteString(m.styles.header.Render(strings.ToUpper(m.title)) + "\n")

	status := "PLAYING"
	if m.traj.Len() == 0 {
		status = "NO FRAMES"
	} else if m.player.Done() {
		status = m.styles.done.Render("FINISHED")
	}
	if drawErr != nil {
		status = m.styles.done.Render("ERROR " + drawErr.Error())
	}
	s.WriteString(status + "\n\n")

	s.WriteString(m.styles.label.Render("Frame") + m.styles.frame.Render(m.player.Label()) +
		m.styles.value.Render(fmt.Sprintf(" / %d", max(m.traj.Len()-1, 0))) + "\n")
	s.WriteString(ProgressBar(m.player.Progress(), panelWidth-6, m.styles.frame) + "\n")
	s.WriteString(m.styles.label.Render("Left") + m.styles.value.Render(m.player.Remaining().Round(time.Millisecond).String()) + "\n")
	s.WriteString(m.styles.label.Render("Zoom") + m.styles.value.Render(fmt.Sprintf("%.2fx", m.view.Zoom)) + "\n\n")

	if i < m.traj.Len() {
		s.WriteString(m.styles.label.Render("joint0") + m.styles.value.Render(m.traj.Joint0(i).String()) + "\n")
		s.WriteString(m.styles.label.Render("joint1") + m.styles.value.Render(m.traj.Joint1(i).String()) + "\n\n")
	}

	if chart := m.chart(i); chart != "" {
		s.WriteString(m.styles.graph.Render(chart) + "\n")
	}

	s.WriteString(Separator(panelWidth-6, m.styles.label.UnsetWidth()) + "\n")
	s.WriteString(m.styles.hint.Render("Q:Quit  +/-:Zoom  ←↑↓→:Pan  0:Reset"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, m.styles.panel.Render(s.String()))
}

// chart plots the tip coordinates over the frames shown so far.
func (m Model) chart(i int) string {
	if i < 1 || i >= m.traj.Len() {
		return ""
	}
	start := i + 1 - graphWindow
	if start < 0 {
		start = 0
	}
	xs, ys := m.traj.X1[start:i+1], m.traj.Y1[start:i+1]
	return asciigraph.PlotMany([][]float64{xs, ys},
		asciigraph.Height(5),
		asciigraph.Width(panelWidth-12),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Magenta),
		asciigraph.Caption("joint1 x (cyan) / y (magenta)"),
	)
}

// Run plays tr in the terminal and blocks until the user quits.
func Run(tr *kinematics.Trajectory, opts Options) error {
	p := tea.NewProgram(NewModel(tr, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
