package viz

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/autochess/internal/config"
	"github.com/san-kum/autochess/internal/engine"
	"github.com/san-kum/autochess/internal/playback"
)

const materialWindow = 120

// Model is the playback screen: board, status panel and controls.
type Model struct {
	ctrl   *playback.Controller
	game   *engine.Game
	sched  *teaScheduler
	canvas *Canvas
	logger *slog.Logger

	white, black *engine.Selection
	status, info string

	theme    Theme
	styles   styles
	showHelp bool
	started  bool
	err      error
}

// NewModel builds the engine and controller for a playback session. The
// loop starts in Init.
func NewModel(cfg *config.Config, lib *engine.Library, logger *slog.Logger) (*Model, error) {
	if logger == nil {
		logger = slog.Default()
	}
	theme := GetTheme(cfg.Theme)
	m := &Model{
		sched:  newTeaScheduler(),
		canvas: NewCanvas(),
		logger: logger,
		white:  engine.NewSelection(lib.PlayerNames(), cfg.White),
		black:  engine.NewSelection(lib.PlayerNames(), cfg.Black),
		theme:  theme,
		styles: newStyles(theme),
	}
	game, err := engine.New(m.canvas,
		engine.TextFunc(func(s string) { m.status = s }),
		m.white, m.black,
		engine.TextFunc(func(s string) { m.info = s }),
		lib, engine.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	m.game = game
	m.ctrl = playback.New(game, m.sched, cfg.Rate, playback.WithLogger(logger))
	return m, nil
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	m.start()
	return m.sched.flush()
}

func (m *Model) start() {
	if m.started {
		return
	}
	m.started = true
	m.ctrl.Start()
}

// Update handles input events and scheduled ticks.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if quit := m.handleKey(msg.String()); quit {
			return m, tea.Quit
		}
	case TickMsg:
		if err := m.sched.fire(msg.ID); err != nil {
			m.err = err
			return m, tea.Quit
		}
	}
	return m, m.sched.flush()
}

// handleKey applies a key press and reports whether the program should
// exit.
func (m *Model) handleKey(key string) bool {
	switch key {
	case "q", "ctrl+c":
		return true
	case " ", "p":
		m.ctrl.Toggle()
	case "r", "R":
		if err := m.ctrl.Reset(); err != nil {
			m.err = err
			return true
		}
	case "+", "=", "right", "l":
		m.nudgeRate(1)
	case "-", "_", "left", "h":
		m.nudgeRate(-1)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.ctrl.SetRate(float64(key[0] - '0'))
	case "0":
		m.ctrl.SetRate(config.MaxRate)
	case "w":
		m.white.Next()
	case "W":
		m.white.Prev()
	case "b":
		m.black.Next()
	case "B":
		m.black.Prev()
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
	case "?":
		m.showHelp = !m.showHelp
	}
	return false
}

// nudgeRate moves the speed slider one notch, keeping it within the
// slider's range. A NaN rate restarts from the bottom of the range.
func (m *Model) nudgeRate(dir float64) {
	rate := m.ctrl.Rate()
	if math.IsNaN(rate) {
		rate = config.MinRate
	}
	rate += dir
	if rate < config.MinRate {
		rate = config.MinRate
	}
	if rate > config.MaxRate {
		rate = config.MaxRate
	}
	m.ctrl.SetRate(rate)
}

// Err returns the engine error that ended the program, if any.
func (m *Model) Err() error { return m.err }

func (m *Model) Controller() *playback.Controller { return m.ctrl }
func (m *Model) Game() *engine.Game               { return m.game }

// View renders the TUI interface.
func (m *Model) View() string {
	st := m.styles
	rec := m.game.Record()

	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(rec.Name)) + "\n")

	state := m.ctrl.State()
	if state == playback.Running {
		s.WriteString(st.running.Render(state.String()))
	} else {
		s.WriteString(st.paused.Render(state.String()))
	}
	s.WriteString("  " + st.status.Render(m.status) + "\n\n")

	s.WriteString(st.label.Render("White") + st.value.Render(rec.White) + "\n")
	s.WriteString(st.label.Render("Black") + st.value.Render(rec.Black) + "\n")
	s.WriteString(st.label.Render("Ply") + st.value.Render(fmt.Sprintf("%d / %d", m.game.Ply(), len(rec.Moves))) + "\n")
	if last := m.game.Frame().Last; last != nil {
		s.WriteString(st.label.Render("Last") + st.value.Render(last.String()) + "\n")
	}
	rate := m.ctrl.Rate()
	s.WriteString(st.label.Render("Speed") + st.value.Render(fmt.Sprintf("%s %.1f/s", SliderBar(rate, config.MinRate, config.MaxRate, 12), rate)) + "\n")

	if m.white.Value() != rec.White || m.black.Value() != rec.Black {
		s.WriteString(st.pending.Render(fmt.Sprintf("next: %s vs %s (R to apply)", m.white.Value(), m.black.Value())) + "\n")
	}

	if hist := m.game.MaterialHistory(); len(hist) > 1 {
		if len(hist) > materialWindow {
			hist = hist[len(hist)-materialWindow:]
		}
		chart := asciigraph.Plot(hist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Material"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	s.WriteString("\n" + st.value.Render(m.info))
	s.WriteString(st.help.Render("─────────────────────\nSP:Play/Stop R:Reset Q:Quit\n+/-:Speed W/B:Players ?:Help"))
	if m.err != nil {
		s.WriteString("\n" + st.errStyle.Render(m.err.Error()))
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, st.board.Render(m.canvas.Render(m.theme)), st.panel.Render(s.String()))
	if m.showHelp {
		return helpText + "\n\n" + main
	}
	return main
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space/P  - Play/Stop                ║
║  R        - Reset with selections    ║
║  + / -    - Speed up / slow down     ║
║  1-9, 0   - Speed 1-9, max           ║
║  W / B    - Cycle white/black player ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Play selects the given pairing, resets the engine onto it and makes sure
// the tick loop is running.
func (m *Model) Play(white, black string) tea.Cmd {
	m.white.Set(white)
	m.black.Set(black)
	if err := m.ctrl.Reset(); err != nil {
		m.err = err
		return tea.Quit
	}
	m.start()
	return m.sched.flush()
}
