package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/trajsim/internal/projectile"
)

const (
	replayWidth  = 60
	replayHeight = 20
	statsWidth   = 44
	frameRate    = time.Second / 60
	maxStride    = 64
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Replay plays a finished trace back on a braille canvas. The whole path is
// scaled once so the view does not jump while playing.
type Replay struct {
	trace    *projectile.Trace
	points   []projectile.Vec2
	bounds   Bounds
	canvas   *Canvas
	head     int
	stride   int
	running  bool
	showHelp bool
	theme    Theme
	styles   Styles
}

func NewReplay(trace *projectile.Trace, theme Theme) Replay {
	pts := trace.Points()
	return Replay{
		trace:   trace,
		points:  pts,
		bounds:  BoundsOf(pts).Pad(0.05),
		canvas:  NewCanvas(replayWidth, replayHeight),
		stride:  1,
		running: true,
		theme:   theme,
		styles:  NewStyles(theme),
	}
}

func (m Replay) Init() tea.Cmd {
	return tick()
}

func (m Replay) Head() int     { return m.head }
func (m Replay) Stride() int   { return m.stride }
func (m Replay) Running() bool { return m.running }

// Done reports whether the playhead reached the last recorded state.
func (m Replay) Done() bool { return m.head >= m.last() }

func (m Replay) last() int {
	if n := len(m.points); n > 0 {
		return n - 1
	}
	return 0
}

func (m Replay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			if m.Done() {
				m.head = 0
			}
			m.running = !m.running
		case "r":
			m.head = 0
			m.running = true
		case "[":
			m.running = false
			m.seek(-m.stride)
		case "]":
			m.running = false
			m.seek(m.stride)
		case "+", "=":
			if m.stride < maxStride {
				m.stride *= 2
			}
		case "-", "_":
			if m.stride > 1 {
				m.stride /= 2
			}
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = NewStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		w := msg.Width - statsWidth - 6
		h := msg.Height - 6
		if w < 20 {
			w = 20
		}
		if h < 8 {
			h = 8
		}
		m.canvas = NewCanvas(w, h)
	case TickMsg:
		if m.running {
			m.seek(m.stride)
			if m.Done() {
				m.running = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Replay) seek(delta int) {
	m.head += delta
	if m.head < 0 {
		m.head = 0
	}
	if m.head > m.last() {
		m.head = m.last()
	}
}

func (m Replay) status() string {
	switch {
	case m.Done() && m.trace.Complete:
		return m.styles.Landed.Render("LANDED")
	case m.Done():
		return m.styles.Failed.Render("INCOMPLETE")
	case m.running:
		return m.styles.Running.Render(fmt.Sprintf("PLAYING x%d", m.stride))
	default:
		return m.styles.Paused.Render("PAUSED")
	}
}

func (m Replay) View() string {
	if len(m.points) == 0 {
		return "empty trace\n"
	}

	m.canvas.Clear()
	m.canvas.Plot(m.bounds, m.points[:m.head+1])
	m.canvas.Marker(m.bounds, m.points[m.head])
	canvasView := m.styles.Path.Render(m.canvas.String())

	s := m.trace.At(m.head)
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(strings.ToUpper(m.trace.Scheme)) + "\n")
	b.WriteString(m.status() + "\n\n")

	row := func(label, value string) {
		b.WriteString(m.styles.Label.Render(label) + m.styles.Value.Render(value) + "\n")
	}
	row("t", fmt.Sprintf("%.3f s", s.T))
	row("x", fmt.Sprintf("%.3f m", s.Pos.X))
	row("y", fmt.Sprintf("%.3f m", s.Pos.Y))
	row("vx", fmt.Sprintf("%.3f m/s", s.Vel.X))
	row("vy", fmt.Sprintf("%.3f m/s", s.Vel.Y))
	row("speed", fmt.Sprintf("%.3f m/s", s.Speed()))
	row("angle", fmt.Sprintf("%.2f°", s.AngleDeg()))
	if m.trace.HasAcceleration {
		row("ax", fmt.Sprintf("%.3f m/s²", s.Acc.X))
		row("ay", fmt.Sprintf("%.3f m/s²", s.Acc.Y))
	}
	b.WriteString("\n" + m.styles.ProgressBar(float64(m.head)/float64(max(m.last(), 1)), statsWidth-8) + "\n")
	b.WriteString(m.styles.Sparkline(m.trace.Speed[:m.head+1], statsWidth-8) + "\n")

	if m.head > 1 {
		chart := asciigraph.Plot(m.trace.Y[:m.head+1], asciigraph.Height(5), asciigraph.Width(statsWidth-14), asciigraph.Caption("height"))
		b.WriteString("\n" + chart + "\n")
	}

	b.WriteString("\n" + m.styles.KeyHint.Render("SP:Pause R:Restart Q:Quit\n[ ]:Step +/-:Speed T:Theme"))
	statsView := m.styles.Panel.Width(statsWidth).Render(b.String())

	view := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpText + "\n\n" + view
	}
	return view
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  R        - Restart from launch      ║
║  Q        - Quit                     ║
║  [ / ]    - Step backward/forward    ║
║  + / -    - Faster/slower playback   ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

// RunReplay opens the replay in the alternate screen until the user quits.
func RunReplay(trace *projectile.Trace, theme string) error {
	_, err := tea.NewProgram(NewReplay(trace, GetTheme(theme)), tea.WithAltScreen()).Run()
	return err
}
