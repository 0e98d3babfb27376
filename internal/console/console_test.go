package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/san-kum/autochess/internal/config"
	"github.com/san-kum/autochess/internal/engine"
	"github.com/san-kum/autochess/internal/playback"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestConsole(t *testing.T, white, black string) (*Console, *bytes.Buffer) {
	t.Helper()
	lib, err := engine.DefaultLibrary()
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.White, cfg.Black = white, black
	var out bytes.Buffer
	c, err := New(cfg, lib, quiet, &out)
	if err != nil {
		t.Fatal(err)
	}
	return c, &out
}

func exec(t *testing.T, c *Console, line string) {
	t.Helper()
	quit, err := c.Exec(line)
	if err != nil {
		t.Fatalf("%q: %v", line, err)
	}
	if quit {
		t.Fatalf("%q: unexpected quit", line)
	}
}

func TestExec_Toggle(t *testing.T) {
	c, out := newTestConsole(t, "Random", "Random")
	exec(t, c, "toggle")
	if c.Controller().State() != playback.Paused {
		t.Fatalf("state = %v, want PAUSED", c.Controller().State())
	}
	if !strings.Contains(out.String(), "PAUSED") {
		t.Errorf("output %q does not report the state", out.String())
	}
	exec(t, c, "p")
	if !c.Controller().Playing() {
		t.Error("second toggle did not resume")
	}
}

func TestExec_Speed(t *testing.T) {
	c, out := newTestConsole(t, "Random", "Random")

	exec(t, c, "speed fast")
	if c.Controller().Rate() != config.DefaultRate {
		t.Errorf("rate changed on a bad argument: %v", c.Controller().Rate())
	}
	if !strings.Contains(out.String(), "speed:") {
		t.Errorf("no parse error reported: %q", out.String())
	}

	for _, tc := range []struct {
		arg  string
		want float64
	}{
		{"10", 10},
		{"0.5", 0.5},
		{"0", 0},
		{"-2", -2},
	} {
		exec(t, c, "speed "+tc.arg)
		if got := c.Controller().Rate(); got != tc.want {
			t.Errorf("speed %s: rate = %v, want %v", tc.arg, got, tc.want)
		}
	}
}

func TestExec_PlayersApplyOnReset(t *testing.T) {
	c, out := newTestConsole(t, "Random", "Random")
	exec(t, c, "white Give up")
	exec(t, c, "black Swarm")
	if c.game.Record().Name != "Quiet opening" {
		t.Fatalf("selection applied before reset: %s", c.game.Record().Name)
	}
	c.Controller().Toggle()
	exec(t, c, "reset")
	if c.game.Record().Name != "Fool's mate" {
		t.Fatalf("record = %s, want Fool's mate", c.game.Record().Name)
	}
	if !c.Controller().Playing() {
		t.Error("reset did not force running")
	}
	if !strings.Contains(out.String(), "reset: Fool's mate") {
		t.Errorf("output %q", out.String())
	}
}

func TestExec_UnknownPlayer(t *testing.T) {
	c, out := newTestConsole(t, "Random", "Random")
	exec(t, c, "white Magnus")
	if c.white.Value() != "Random" {
		t.Errorf("white = %s", c.white.Value())
	}
	if !strings.Contains(out.String(), `unknown player "Magnus"`) {
		t.Errorf("output %q", out.String())
	}
}

func TestExec_Misc(t *testing.T) {
	c, out := newTestConsole(t, "Random", "Random")

	exec(t, c, "")
	if out.Len() != 0 {
		t.Errorf("empty line printed %q", out.String())
	}

	exec(t, c, "board")
	if lines := strings.Count(out.String(), "\n"); lines < 8 {
		t.Errorf("board printed %d lines", lines)
	}
	out.Reset()

	exec(t, c, "players")
	if !strings.Contains(out.String(), "Lawyer") {
		t.Errorf("roster missing: %q", out.String())
	}
	out.Reset()

	exec(t, c, "status")
	if !strings.Contains(out.String(), "RUNNING") || !strings.Contains(out.String(), "White's turn") {
		t.Errorf("status = %q", out.String())
	}
	out.Reset()

	exec(t, c, "dance")
	if !strings.Contains(out.String(), "unknown command") {
		t.Errorf("output %q", out.String())
	}

	for _, q := range []string{"quit", "exit", "Q"} {
		quit, err := c.Exec(q)
		if err != nil || !quit {
			t.Errorf("%s: quit=%v err=%v", q, quit, err)
		}
	}
}

func TestConsole_PrintsPlies(t *testing.T) {
	c, out := newTestConsole(t, "Give up", "Swarm")
	for i := 0; i < 4; i++ {
		if err := c.Controller().Tick(); err != nil {
			t.Fatal(err)
		}
	}
	got := out.String()
	if !strings.Contains(got, "f2f3") || !strings.Contains(got, "d8h4") {
		t.Errorf("moves missing from %q", got)
	}
	if !strings.Contains(got, "Black wins") {
		t.Errorf("result missing from %q", got)
	}
	if c.Controller().Playing() {
		t.Error("controller still running after the last ply")
	}
}

func TestExec_Export(t *testing.T) {
	c, out := newTestConsole(t, "Give up", "Swarm")
	dir := t.TempDir()

	exec(t, c, "chart "+filepath.Join(dir, "empty.svg"))
	if !strings.Contains(out.String(), "no moves") {
		t.Errorf("output %q", out.String())
	}

	for i := 0; i < 2; i++ {
		if err := c.Controller().Tick(); err != nil {
			t.Fatal(err)
		}
	}
	for _, cmd := range []string{"svg", "chart"} {
		path := filepath.Join(dir, cmd+".svg")
		exec(t, c, cmd+" "+path)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("%s: %v", cmd, err)
		}
		if !strings.HasSuffix(string(data), "</svg>") {
			t.Errorf("%s wrote %.40q", cmd, data)
		}
	}

	out.Reset()
	exec(t, c, "svg")
	if !strings.Contains(out.String(), "usage") {
		t.Errorf("output %q", out.String())
	}
}

type scriptReader struct {
	lines []string
}

func (r *scriptReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func runScript(t *testing.T, c *Console, lines ...string) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, &scriptReader{lines: lines}) }()
	select {
	case err := <-done:
		return err
	case <-time.After(10 * time.Second):
		t.Fatal("console did not exit")
		return nil
	}
}

func TestRun_Quit(t *testing.T) {
	c, out := newTestConsole(t, "Random", "Random")
	if err := runScript(t, c, "toggle", "speed 2", "quit", "toggle"); err != nil {
		t.Fatal(err)
	}
	if c.Controller().Playing() {
		t.Error("commands after quit were executed")
	}
	if c.Controller().Rate() != 2 {
		t.Errorf("rate = %v", c.Controller().Rate())
	}
	if !strings.Contains(out.String(), "PAUSED") {
		t.Errorf("output %q", out.String())
	}
}

func TestRun_EndOfInput(t *testing.T) {
	c, _ := newTestConsole(t, "Random", "Random")
	if err := runScript(t, c); err != nil {
		t.Fatal(err)
	}
	if c.Controller().Pending() == nil {
		t.Error("playback was not started")
	}
}

func TestCompleter(t *testing.T) {
	pc := Completer([]string{"Random", "Swarm"})
	if got := len(pc.GetChildren()); got != 12 {
		t.Errorf("completer has %d commands, want 12", got)
	}
}
