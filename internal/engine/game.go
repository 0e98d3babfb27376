package engine

import (
	"fmt"
	"log/slog"
	"strings"
)

// Outcome is the state of a game after a ply.
type Outcome int

const (
	Playing Outcome = iota
	Draw
	WhiteWins
	BlackWins
)

// Status returns the status line shown for the outcome.
func (o Outcome) Status() string {
	switch o {
	case Draw:
		return "Game over: Draw"
	case WhiteWins:
		return "White wins"
	case BlackWins:
		return "Black wins"
	default:
		return ""
	}
}

func turnStatus(c Color) string {
	return c.String() + "'s turn"
}

// Game replays library records onto a surface. It implements the engine
// side of the playback controller.
type Game struct {
	surface      Surface
	status, info TextSink
	white, black Selector
	lib          *Library
	logger       *slog.Logger

	record   *Record
	board    Board
	turn     Color
	ply      int
	last     *Move
	material []float64
	outcome  Outcome
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for replay events.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// New binds a game to its UI elements and loads the record for the
// current selections. The board is drawn once.
func New(surface Surface, status TextSink, white, black Selector, info TextSink, lib *Library, opts ...Option) (*Game, error) {
	if lib == nil || len(lib.Games) == 0 {
		return nil, ErrNoGames
	}
	g := &Game{
		surface: surface,
		status:  status,
		info:    info,
		white:   white,
		black:   black,
		lib:     lib,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.load()
	if err := g.Render(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset rereads the player selections, picks the matching record and
// restarts it from the start position.
func (g *Game) Reset() error {
	g.load()
	return g.Render()
}

func (g *Game) load() {
	g.record = g.lib.Pick(g.white.Value(), g.black.Value())
	g.board = NewBoard()
	g.turn = White
	g.ply = 0
	g.last = nil
	g.outcome = Playing
	g.material = append(g.material[:0], float64(g.board.Material()))
	g.status.SetText(turnStatus(g.turn))
	g.info.SetText(g.describe())
	g.logger.Debug("game loaded", "game", g.record.Name, "white", g.record.White, "black", g.record.Black)
}

// Step plays the next recorded ply and reports whether the game is over.
func (g *Game) Step() (bool, error) {
	if g.ply >= len(g.record.Moves) {
		g.finish()
		return true, nil
	}
	text := g.record.Moves[g.ply]
	mv, err := ParseMove(text)
	if err != nil {
		return false, &MoveError{Game: g.record.Name, Ply: g.ply, Move: text, Wrapped: err}
	}
	if _, err := g.board.Apply(mv); err != nil {
		return false, &MoveError{Game: g.record.Name, Ply: g.ply, Move: text, Wrapped: err}
	}
	g.ply++
	g.turn = g.turn.Opponent()
	g.last = &mv
	g.material = append(g.material, float64(g.board.Material()))

	if err := g.Render(); err != nil {
		return false, err
	}
	if g.ply >= len(g.record.Moves) {
		g.finish()
		return true, nil
	}
	g.status.SetText(turnStatus(g.turn))
	return false, nil
}

func (g *Game) finish() {
	g.outcome = g.record.Outcome()
	g.status.SetText(g.outcome.Status())
	g.logger.Debug("game over", "game", g.record.Name, "outcome", g.outcome.Status(), "plies", g.ply)
}

// Render draws the current position without advancing it.
func (g *Game) Render() error {
	return g.surface.Draw(g.Frame())
}

// Frame snapshots the current position.
func (g *Game) Frame() Frame {
	return Frame{Board: g.board, Last: g.last, Turn: g.turn, Ply: g.ply}
}

func (g *Game) Record() *Record   { return g.record }
func (g *Game) Ply() int          { return g.ply }
func (g *Game) Turn() Color       { return g.turn }
func (g *Game) Outcome() Outcome  { return g.outcome }
func (g *Game) Library() *Library { return g.lib }

// MaterialHistory returns the material balance after each ply, starting
// with the start position.
func (g *Game) MaterialHistory() []float64 { return g.material }

func (g *Game) describe() string {
	var s strings.Builder
	fmt.Fprintf(&s, "%s: %s vs %s (%d plies)\n\n", g.record.Name, g.record.White, g.record.Black, len(g.record.Moves))
	for _, p := range g.lib.Players {
		fmt.Fprintf(&s, "%-10s %s\n", p.Name, p.Description)
	}
	return s.String()
}
