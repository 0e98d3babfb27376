package viz

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/autochess/internal/config"
	"github.com/san-kum/autochess/internal/engine"
)

const (
	stateMenu = iota
	stateSim
)

// App puts a game picker in front of the playback screen.
type App struct {
	state  int
	cursor int
	games  []engine.Record
	live   *Model
}

// NewApp builds the picker and the playback screen behind it. When
// skipMenu is set the app opens straight onto playback.
func NewApp(cfg *config.Config, lib *engine.Library, logger *slog.Logger, skipMenu bool) (*App, error) {
	live, err := NewModel(cfg, lib, logger)
	if err != nil {
		return nil, err
	}
	a := &App{state: stateMenu, games: lib.Games, live: live}
	if skipMenu {
		a.state = stateSim
	}
	return a, nil
}

func (a *App) Init() tea.Cmd {
	if a.state == stateSim {
		return a.live.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.state == stateMenu {
			return a.menuKey(msg)
		}
		switch msg.String() {
		case "m", "esc":
			a.state = stateMenu
			return a, nil
		}
	}
	// ticks keep flowing to playback while the menu is open
	_, cmd := a.live.Update(msg)
	return a, cmd
}

func (a *App) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.games)-1 {
			a.cursor++
		}
	case "enter", " ":
		g := a.games[a.cursor]
		a.state = stateSim
		return a, a.live.Play(g.White, g.Black)
	case "esc":
		if a.live.started {
			a.state = stateSim
		}
	}
	return a, nil
}

// Err returns the engine error that ended playback, if any.
func (a *App) Err() error { return a.live.Err() }

func (a *App) View() string {
	if a.state == stateSim {
		return a.live.View()
	}
	return a.viewMenu()
}

func (a *App) viewMenu() string {
	t := a.live.theme
	var b strings.Builder
	h, sub := lipgloss.NewStyle().Foreground(t.Primary).Bold(true), lipgloss.NewStyle().Foreground(t.Muted)
	b.WriteString("\n\n    " + h.Render("AUTOCHESS") + "\n    " + sub.Render("recorded game playback") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, g := range a.games {
		pairing := fmt.Sprintf("%s vs %s  %s", g.White, g.Black, g.Result)
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render("▸"), lipgloss.NewStyle().Foreground(t.Text).Bold(true).Render(fmt.Sprintf("%-18s", g.Name)), lipgloss.NewStyle().Foreground(t.Accent).Render(pairing)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", sub.Render(fmt.Sprintf("  %-18s", g.Name)), sub.Render(pairing)))
		}
	}
	key := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	b.WriteString("\n    " + key.Render("j/k") + sub.Render(" navigate  ") + key.Render("enter") + sub.Render(" play  ") + key.Render("q") + sub.Render(" quit") + "\n")
	return b.String()
}

// RunInteractive runs the TUI until the user quits or the engine fails.
func RunInteractive(cfg *config.Config, lib *engine.Library, logger *slog.Logger, skipMenu bool) error {
	app, err := NewApp(cfg, lib, logger, skipMenu)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return app.Err()
}
