package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitsim/internal/engine"
	"github.com/san-kum/orbitsim/internal/gravity"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

const (
	frameInterval = 33 * time.Millisecond
	historyLen    = 120
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the live bubbletea view: each tick feeds real elapsed wall time to
// the engine, then redraws bodies and trails through the camera.
type Model struct {
	eng *engine.Engine
	cam *Camera

	lastFrame time.Time
	fps       float64
	history   []float64
	initialE  float64

	width  int
	height int
}

func NewModel(eng *engine.Engine) *Model {
	bound := eng.Settings().SpawnBound
	if bound <= 0 {
		for _, b := range eng.Bodies() {
			if l := b.Position.Length(); l > bound {
				bound = l
			}
		}
		if bound <= 0 {
			bound = 100
		}
	}
	return &Model{
		eng:      eng,
		cam:      NewCamera(3 * bound),
		history:  make([]float64, 0, historyLen),
		initialE: gravity.Energy(eng.Bodies()),
		width:    80,
		height:   24,
	}
}

func (m *Model) Init() tea.Cmd { return tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		now := time.Now()
		elapsed := frameInterval.Seconds()
		if !m.lastFrame.IsZero() {
			elapsed = now.Sub(m.lastFrame).Seconds()
			if elapsed > 0 {
				m.fps = 1.0 / elapsed
			}
		}
		m.lastFrame = now

		m.eng.Advance(elapsed)
		if !m.eng.Paused() {
			m.cam.AutoRotate(elapsed)
		}

		m.history = append(m.history, gravity.Energy(m.eng.Bodies()))
		if len(m.history) > historyLen {
			m.history = m.history[1:]
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "escape":
		return m, tea.Quit
	case " ", "p":
		m.eng.SetPaused(!m.eng.Paused())
	case "r":
		m.eng.Reset()
		m.history = m.history[:0]
		m.initialE = gravity.Energy(m.eng.Bodies())
		return m, tea.ClearScreen
	case "a":
		m.cam.Auto = !m.cam.Auto
	case "left", "h":
		m.cam.Yaw -= 0.1
	case "right", "l":
		m.cam.Yaw += 0.1
	case "up", "k":
		m.cam.Pitch -= 0.1
	case "down", "j":
		m.cam.Pitch += 0.1
	case "+", "=":
		m.cam.ZoomIn()
	case "-", "_":
		m.cam.ZoomOut()
	}
	return m, nil
}

func (m *Model) View() string {
	cw := m.width - 4
	ch := m.height - 9
	if cw < 40 {
		cw = 40
	}
	if ch < 10 {
		ch = 10
	}

	canvas := NewCanvas(cw, ch)
	dw, dh := cw*2, ch*4

	for i := 0; i < m.eng.NumBodies(); i++ {
		trail := m.eng.Trail(i)
		px, py := 0, 0
		have := false
		for _, p := range trail {
			x, y, ok := m.cam.Project(p, dw, dh)
			if ok && have {
				canvas.Line(px, py, x, y)
			}
			px, py, have = x, y, ok
		}
	}
	for _, b := range m.eng.Bodies() {
		x, y, ok := m.cam.Project(b.Position, dw, dh)
		if !ok {
			continue
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				canvas.Set(x+dx, y+dy)
			}
		}
	}

	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("running")
	if m.eng.Paused() {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n  %s %s  %s  %s\n",
		statusIcon, cyan.Render("orbitsim"), statusText,
		dim.Render(fmt.Sprintf("%.0ffps", m.fps))))

	b.WriteString(dimmer.Render("  "+strings.Repeat("─", cw)) + "\n")
	for _, line := range strings.Split(strings.TrimRight(canvas.String(), "\n"), "\n") {
		b.WriteString("  " + cyan.Render(line) + "\n")
	}
	b.WriteString(dimmer.Render("  "+strings.Repeat("─", cw)) + "\n")

	drift := 0.0
	if len(m.history) > 0 && m.initialE != 0 {
		e := m.history[len(m.history)-1]
		drift = (e - m.initialE) / m.initialE
		if drift < 0 {
			drift = -drift
		}
	}
	b.WriteString("  " +
		dim.Render("t=") + white.Render(fmt.Sprintf("%.1fs", m.eng.Elapsed())) + "  " +
		dim.Render("steps=") + white.Render(fmt.Sprintf("%d", m.eng.Steps())) + "  " +
		dim.Render("bodies=") + white.Render(fmt.Sprintf("%d", m.eng.NumBodies())) + "  " +
		dim.Render(m.eng.Integrator()) + "  " +
		dim.Render("ΔE/E=") + white.Render(fmt.Sprintf("%.2e", drift)) + "\n")

	if len(m.history) > 1 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(3),
			asciigraph.Width(cw-12),
			asciigraph.Caption("total energy"),
		)
		for _, line := range strings.Split(graph, "\n") {
			b.WriteString("  " + dim.Render(line) + "\n")
		}
	}

	b.WriteString(dim.Render("  space pause  r reset  a auto-rotate  ←→↑↓ rotate  ± zoom  q quit") + "\n")

	return b.String()
}

// Run starts the live view in the alternate screen.
func Run(eng *engine.Engine) error {
	p := tea.NewProgram(NewModel(eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
