package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/trajviz/internal/dynamo"
	"github.com/san-kum/trajviz/internal/kinematics"
)

func newTestModel(t *testing.T, rows int) Model {
	t.Helper()
	tbl := dynamo.NewTable([]string{"time", "state0", "state1"})
	for i := 0; i < rows; i++ {
		tbl.Rows = append(tbl.Rows, dynamo.State{float64(i) * 0.01, float64(i) * 0.1, 0.2})
	}
	tr, err := kinematics.Compute(tbl)
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(tr, Options{Title: "test", Interval: 100 * time.Millisecond, Trail: 10})
}

func TestModel_TicksThroughFrames(t *testing.T) {
	m := newTestModel(t, 4)

	if m.Init() == nil {
		t.Fatal("expected a tick command")
	}
	if m.Cursor() != 0 {
		t.Fatalf("expected initial frame 0, got %d", m.Cursor())
	}

	var cmd tea.Cmd
	var next tea.Model = m
	for want := 1; want <= 3; want++ {
		next, cmd = next.Update(TickMsg(time.Now()))
		if got := next.(Model).Cursor(); got != want {
			t.Fatalf("expected frame %d, got %d", want, got)
		}
	}
	if cmd != nil {
		t.Error("expected ticking to stop after the last frame")
	}

	next, _ = next.Update(TickMsg(time.Now()))
	if got := next.(Model).Cursor(); got != 3 {
		t.Errorf("playback must not repeat, got frame %d", got)
	}
}

func TestModel_NoTickForSingleFrame(t *testing.T) {
	for _, rows := range []int{0, 1} {
		m := newTestModel(t, rows)
		if m.Init() != nil {
			t.Errorf("rows %d: expected no tick", rows)
		}
		if v := m.View(); v == "" {
			t.Errorf("rows %d: expected a view", rows)
		}
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, 3)
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected QuitMsg", key)
		}
	}
}

func TestModel_ZoomKeys(t *testing.T) {
	m := newTestModel(t, 3)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if next.(Model).view.Zoom <= 1 {
		t.Error("expected zoom in")
	}
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'0'}})
	if next.(Model).view.Zoom != 1 {
		t.Error("expected reset zoom")
	}
}

func TestModel_ViewShowsFrameLabel(t *testing.T) {
	m := newTestModel(t, 5)
	next, _ := m.Update(TickMsg(time.Now()))
	next, _ = next.Update(TickMsg(time.Now()))

	view := next.View()
	if !strings.Contains(view, "Frame") {
		t.Error("expected frame row in view")
	}
	if !strings.Contains(view, "2") {
		t.Error("expected frame label 2 in view")
	}
}

func TestModel_Resize(t *testing.T) {
	m := newTestModel(t, 3)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	mm := next.(Model)
	if mm.canvas.Width != 140-panelWidth-8 || mm.canvas.Height != 36 {
		t.Errorf("unexpected canvas size %dx%d", mm.canvas.Width, mm.canvas.Height)
	}
}

func TestModel_ViewReportsDrawError(t *testing.T) {
	m := newTestModel(t, 3)
	m.player.Step()
	m.player.Step()
	m.traj = newTestModel(t, 1).traj

	if view := m.View(); !strings.Contains(view, "ERROR") {
		t.Errorf("expected the draw error in the panel:\n%s", view)
	}
}
