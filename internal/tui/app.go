package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orrery/internal/body"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/engine"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type model struct {
	cfg   *config.Config
	world *engine.World

	positions []engine.Position
	paused    bool
	tickErr   string

	lastFrame time.Time
	fps       float64

	width  int
	height int
}

type tickMsg time.Time

func NewApp(cfg *config.Config, seed int64) (*model, error) {
	world, err := engine.NewWorld(cfg, seed)
	if err != nil {
		return nil, err
	}
	return &model{
		cfg:       cfg,
		world:     world,
		positions: world.Producer.Positions(),
		width:     80,
		height:    24,
	}, nil
}

func (m *model) frameInterval() time.Duration {
	return time.Second / time.Duration(m.cfg.FrameRate)
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Init() tea.Cmd { return m.tick() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if !m.paused {
			now := time.Now()
			if !m.lastFrame.IsZero() {
				if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
					m.fps = 1.0 / dt
				}
			}
			m.lastFrame = now

			positions, err := m.world.Producer.Tick()
			if err != nil {
				// Recoverable: this frame keeps the previous positions.
				m.tickErr = err.Error()
			} else {
				m.tickErr = ""
				m.positions = positions
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	clock := m.world.Clock
	viewport := m.world.Viewport

	switch msg.String() {
	case "q", "ctrl+c", "escape":
		return m, tea.Quit
	case " ", "p":
		m.paused = !m.paused
		m.lastFrame = time.Time{}
	case "+", "=", "right", "l":
		clock.Set(clock.Days() + clock.Step())
	case "-", "_", "left", "h":
		clock.Set(clock.Days() - clock.Step())
	case "0":
		clock.Set(m.cfg.TimeScale.Initial)
	case "]", "up", "k":
		viewport.Set(viewport.Zoom() + viewport.Step())
	case "[", "down", "j":
		viewport.Set(viewport.Zoom() - viewport.Step())
	case "r":
		world, err := engine.NewWorld(m.cfg, time.Now().UnixNano())
		if err == nil {
			m.world = world
			m.positions = world.Producer.Positions()
		}
	}
	return m, nil
}

func (m *model) View() string {
	cw := m.width - 4
	ch := m.height - 7
	if cw < 40 {
		cw = 40
	}
	if ch < 12 {
		ch = 12
	}

	canvas := make([][]rune, ch)
	for i := range canvas {
		canvas[i] = make([]rune, cw)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	m.plot(canvas, cw, ch)

	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("running")
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}

	clock := m.world.Clock
	viewport := m.world.Viewport

	b.WriteString(fmt.Sprintf("\n  %s %s  %s   %s\n",
		statusIcon, cyan.Render("orrery"), statusText,
		dim.Render(fmt.Sprintf("%.0ffps", m.fps))))

	b.WriteString(fmt.Sprintf("  %s %s   %s %s   %s %s\n",
		dim.Render("scale"),
		white.Render(fmt.Sprintf("%.2f d/frame (%.0f s)", clock.Days(), clock.ElapsedSeconds())),
		dim.Render("zoom"),
		white.Render(fmt.Sprintf("%.2f (±%.1f AU)", viewport.Zoom(), viewport.HalfExtent()/body.AU)),
		dim.Render("elapsed"),
		white.Render(fmt.Sprintf("%.1f d", m.world.Producer.Elapsed()/body.SecondsPerDay))))

	if m.tickErr != "" {
		b.WriteString("  " + red.Render(m.tickErr) + "\n")
	} else {
		b.WriteString("\n")
	}

	for _, row := range canvas {
		b.WriteString("  " + string(row) + "\n")
	}

	b.WriteString("\n" + dim.Render("  space pause  +/- time scale  [/] zoom  0 reset scale  r reshuffle belt  q quit") + "\n")

	return b.String()
}

// plot projects body positions onto the rune canvas. Stretching the square
// viewport across the full canvas roughly cancels the 1:2 cell aspect, so
// orbits read as circles on screen.
func (m *model) plot(canvas [][]rune, w, h int) {
	half := m.world.Viewport.HalfExtent()
	if half <= 0 {
		return
	}
	cx, cy := w/2, h/2
	sx := float64(w)/2 - 1
	sy := float64(h)/2 - 1

	for i, p := range m.positions {
		px := cx + int(p.X/half*sx)
		py := cy - int(p.Y/half*sy)
		if px < 0 || px >= w || py < 0 || py >= h {
			continue
		}
		if i < m.world.MajorCount {
			canvas[py][px] = '●'
		} else if canvas[py][px] == ' ' {
			canvas[py][px] = '·'
		}
	}

	canvas[cy][cx] = '☀'
}

// Run starts the interactive view and blocks until the user quits.
func Run(cfg *config.Config, seed int64) error {
	app, err := NewApp(cfg, seed)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
