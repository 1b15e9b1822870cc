package viz

import (
	"context"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/trajsim/internal/projectile"
)

func TestCanvasSetAndIsSet(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(3, 5)
	if !c.IsSet(3, 5) {
		t.Error("expected pixel to be set")
	}
	if c.IsSet(2, 5) || c.IsSet(-1, 0) || c.IsSet(100, 100) {
		t.Error("unexpected pixel set")
	}
	c.Unset(3, 5)
	if c.IsSet(3, 5) {
		t.Error("expected pixel to be cleared")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(lines))
	}
	for _, l := range lines {
		if l != "⠀⠀⠀" {
			t.Errorf("expected blank braille row, got %q", l)
		}
	}
}

func TestCanvasPlotCorners(t *testing.T) {
	c := NewCanvas(10, 5)
	b := Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 5}

	x, y := c.Project(b, projectile.Vec2{X: 0, Y: 0})
	if x != 0 || y != c.Height*4-1 {
		t.Errorf("origin projected to (%d, %d)", x, y)
	}
	x, y = c.Project(b, projectile.Vec2{X: 10, Y: 5})
	if x != c.Width*2-1 || y != 0 {
		t.Errorf("far corner projected to (%d, %d)", x, y)
	}

	c.Plot(b, []projectile.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}})
	for px := 0; px < c.Width*2; px++ {
		if !c.IsSet(px, c.Height*4-1) {
			t.Fatalf("ground line missing at x=%d", px)
		}
	}
}

func TestBounds(t *testing.T) {
	b := BoundsOf([]projectile.Vec2{{X: 2, Y: 3}, {X: 8, Y: -1}})
	if b.MinX != 0 || b.MaxX != 8 || b.MinY != -1 || b.MaxY != 3 {
		t.Errorf("unexpected bounds %+v", b)
	}
	p := b.Pad(0.5)
	if p.MinX != -4 || p.MaxX != 12 {
		t.Errorf("unexpected padding %+v", p)
	}
	if (Bounds{}).Width() != 1 || (Bounds{}).Height() != 1 {
		t.Error("degenerate bounds should report unit span")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nonexistent").Name != "night" {
		t.Error("unknown theme should fall back to night")
	}
	seen := map[string]bool{}
	th := Themes[0]
	for range Themes {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	if len(seen) != len(Themes) || th.Name != Themes[0].Name {
		t.Errorf("NextTheme did not cycle through all themes: %v", seen)
	}
}

func ballTrace(t *testing.T) *projectile.Trace {
	t.Helper()
	cfg := projectile.Config{
		Mass: 1, Speed: 30, Angle: math.Pi / 4,
		Density: 1.225, DragCoefficient: 0.5, Area: 0.05,
		Dt: 0.05, Gravity: 9.8,
	}
	trace, err := projectile.New(projectile.NewEuler()).Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	return trace
}

func send(m Replay, msgs ...tea.Msg) Replay {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Replay)
	}
	return m
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestReplayPlaysToEnd(t *testing.T) {
	trace := ballTrace(t)
	m := NewReplay(trace, ThemeNight)

	for i := 0; i < trace.Len()+5; i++ {
		m = send(m, TickMsg{})
	}
	if !m.Done() || m.Running() {
		t.Fatalf("expected finished, stopped replay: head=%d running=%v", m.Head(), m.Running())
	}
	if m.Head() != trace.Len()-1 {
		t.Errorf("head = %d, want %d", m.Head(), trace.Len()-1)
	}
	if !strings.Contains(m.View(), "LANDED") {
		t.Error("expected landed status")
	}
}

func TestReplayControls(t *testing.T) {
	m := NewReplay(ballTrace(t), ThemeNight)

	m = send(m, key(" "))
	if m.Running() {
		t.Fatal("space should pause")
	}
	m = send(m, TickMsg{})
	if m.Head() != 0 {
		t.Error("paused replay must not advance")
	}

	m = send(m, key("]"), key("]"), key("["))
	if m.Head() != 1 {
		t.Errorf("head = %d after stepping, want 1", m.Head())
	}
	m = send(m, key("["), key("["))
	if m.Head() != 0 {
		t.Error("head must not go below zero")
	}

	m = send(m, key("+"), key("+"))
	if m.Stride() != 4 {
		t.Errorf("stride = %d, want 4", m.Stride())
	}
	m = send(m, key("-"), key("-"), key("-"))
	if m.Stride() != 1 {
		t.Errorf("stride = %d, want 1", m.Stride())
	}

	m = send(m, key("t"))
	if m.theme.Name != "phosphor" {
		t.Errorf("theme = %s, want phosphor", m.theme.Name)
	}

	m = send(m, key("]"), key("r"))
	if m.Head() != 0 || !m.Running() {
		t.Error("restart should rewind and play")
	}

	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Error("q should return a quit command")
	}
}

func TestReplayView(t *testing.T) {
	m := NewReplay(ballTrace(t), ThemeNight)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40}, TickMsg{}, TickMsg{}, TickMsg{})

	view := m.View()
	for _, want := range []string{"EULER", "PLAYING", "speed", "angle", "ay"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if m.canvas.Width != 120-statsWidth-6 {
		t.Errorf("canvas width = %d", m.canvas.Width)
	}
}
