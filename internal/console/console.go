// Package console runs playback headless, driven by typed commands.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/san-kum/autochess/internal/config"
	"github.com/san-kum/autochess/internal/engine"
	"github.com/san-kum/autochess/internal/export"
	"github.com/san-kum/autochess/internal/playback"
)

var errQuit = errors.New("console: quit")

const helpText = `commands:
  toggle, p        play/stop
  reset, r         restart with the current player selections
  speed N          steps per second (taken as is)
  white NAME       select the white player for the next reset
  black NAME       select the black player for the next reset
  board            print the current position
  svg PATH         save the current position as svg
  chart PATH       save the material curve as svg
  players          list the roster
  status           show playback state
  help             this text
  quit             exit`

// Console owns one playback session and its command interpreter. Exec
// and the engine callbacks must run on the loop goroutine.
type Console struct {
	loop         *playback.Loop
	ctrl         *playback.Controller
	game         *engine.Game
	white, black *engine.Selection
	frame        engine.Frame
	status, info string
	out          io.Writer
}

// New builds the engine, controller and loop. Output goes to out.
func New(cfg *config.Config, lib *engine.Library, logger *slog.Logger, out io.Writer) (*Console, error) {
	c := &Console{
		loop:  playback.NewLoop(cfg.RefreshRate),
		white: engine.NewSelection(lib.PlayerNames(), cfg.White),
		black: engine.NewSelection(lib.PlayerNames(), cfg.Black),
		out:   out,
	}
	game, err := engine.New(c, engine.TextFunc(c.onStatus), c.white, c.black,
		engine.TextFunc(func(s string) { c.info = s }), lib, engine.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	c.game = game
	c.ctrl = playback.New(game, c.loop, cfg.Rate, playback.WithLogger(logger))
	return c, nil
}

// Draw keeps the latest frame for the board command.
func (c *Console) Draw(f engine.Frame) error {
	c.frame = f
	return nil
}

func (c *Console) onStatus(s string) {
	c.status = s
	if c.game == nil {
		return
	}
	f := c.game.Frame()
	move := "-"
	if f.Last != nil {
		move = f.Last.String()
	}
	fmt.Fprintf(c.out, "%3d  %-6s %s\n", f.Ply, move, s)
}

// Exec runs one command line. It reports whether the console should exit;
// an error means the engine failed and playback cannot continue.
func (c *Console) Exec(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	switch cmd, args := strings.ToLower(fields[0]), fields[1:]; cmd {
	case "quit", "exit", "q":
		return true, nil
	case "toggle", "p", "play", "stop":
		c.ctrl.Toggle()
		fmt.Fprintln(c.out, c.ctrl.State())
	case "reset", "r":
		if err := c.ctrl.Reset(); err != nil {
			return false, err
		}
		fmt.Fprintf(c.out, "reset: %s\n", c.game.Record().Name)
	case "speed":
		if len(args) != 1 {
			fmt.Fprintf(c.out, "speed: %.2f/s\n", c.ctrl.Rate())
			break
		}
		rate, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			fmt.Fprintf(c.out, "speed: %v\n", err)
			break
		}
		c.ctrl.SetRate(rate)
	case "white", "black":
		sel := c.white
		if cmd == "black" {
			sel = c.black
		}
		name := strings.Join(args, " ")
		if !sel.Set(name) {
			fmt.Fprintf(c.out, "unknown player %q (players: %s)\n", name, strings.Join(sel.Options(), ", "))
			break
		}
		fmt.Fprintf(c.out, "%s: %s (applies on reset)\n", cmd, name)
	case "board":
		fmt.Fprint(c.out, c.frame.Board.String())
	case "svg", "chart":
		if len(args) != 1 {
			fmt.Fprintf(c.out, "usage: %s PATH\n", cmd)
			break
		}
		doc := export.BoardSVG(c.game.Frame(), export.DefaultPalette, 48)
		if cmd == "chart" {
			doc = export.MaterialSVG(c.game.MaterialHistory(), 480, 160, export.DefaultPalette)
			if doc == "" {
				fmt.Fprintln(c.out, "chart: no moves played yet")
				break
			}
		}
		if err := os.WriteFile(args[0], []byte(doc), 0644); err != nil {
			fmt.Fprintf(c.out, "%s: %v\n", cmd, err)
			break
		}
		fmt.Fprintf(c.out, "wrote %s\n", args[0])
	case "players":
		fmt.Fprint(c.out, c.info)
	case "status":
		fmt.Fprintf(c.out, "%s  %s  ply %d  %.2f/s\n", c.ctrl.State(), c.status, c.game.Ply(), c.ctrl.Rate())
	case "help", "?":
		fmt.Fprintln(c.out, helpText)
	default:
		fmt.Fprintf(c.out, "unknown command %q, try help\n", cmd)
	}
	return false, nil
}

// LineReader yields one command line per call. *readline.Instance
// satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// Run starts playback and reads commands from rl until quit, end of input,
// ctx cancellation or an engine failure.
func (c *Console) Run(ctx context.Context, rl LineReader) error {
	c.loop.Post(func() error {
		c.ctrl.Start()
		return nil
	})

	go func() {
		for {
			line, err := rl.Readline()
			if err != nil {
				c.loop.Post(func() error { return errQuit })
				return
			}
			c.loop.Post(func() error {
				quit, err := c.Exec(line)
				if err != nil {
					return err
				}
				if quit {
					return errQuit
				}
				return nil
			})
		}
	}()

	err := c.loop.Run(ctx)
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Completer offers command and player name completion.
func Completer(players []string) *readline.PrefixCompleter {
	names := make([]readline.PrefixCompleterInterface, len(players))
	for i, p := range players {
		names[i] = readline.PcItem(p)
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("toggle"),
		readline.PcItem("reset"),
		readline.PcItem("speed"),
		readline.PcItem("white", names...),
		readline.PcItem("black", names...),
		readline.PcItem("board"),
		readline.PcItem("svg"),
		readline.PcItem("chart"),
		readline.PcItem("players"),
		readline.PcItem("status"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func (c *Console) Controller() *playback.Controller { return c.ctrl }
