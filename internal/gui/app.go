// Package gui shows playback in a raylib window. The window's frame loop
// drives the tick chain: due ticks run at the start of a frame and their
// effects are painted in the same frame.
package gui

import (
	"fmt"
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/autochess/internal/config"
	"github.com/san-kum/autochess/internal/engine"
	"github.com/san-kum/autochess/internal/playback"
	"github.com/san-kum/autochess/internal/viz"
)

const (
	windowWidth  = 1100
	windowHeight = 720
	squareSize   = 72
	boardX       = 48
	boardY       = 64
	panelX       = boardX + 8*squareSize + 48
)

var ColBg = rl.NewColor(10, 10, 10, 255)

type App struct {
	ctrl  *playback.Controller
	game  *engine.Game
	queue *playback.FrameQueue
	board *Board

	white, black *engine.Selection
	status, info string

	theme   viz.Theme
	palette palette
	font    rl.Font
	logger  *slog.Logger
	quit    bool
	err     error
}

// NewApp builds the engine and controller on a frame queue. It makes no
// raylib calls, so it can run before the window exists.
func NewApp(cfg *config.Config, lib *engine.Library, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	theme := viz.GetTheme(cfg.Theme)
	a := &App{
		queue:   playback.NewFrameQueue(nil),
		board:   &Board{},
		white:   engine.NewSelection(lib.PlayerNames(), cfg.White),
		black:   engine.NewSelection(lib.PlayerNames(), cfg.Black),
		theme:   theme,
		palette: newPalette(theme),
		logger:  logger,
	}
	game, err := engine.New(a.board,
		engine.TextFunc(func(s string) { a.status = s }),
		a.white, a.black,
		engine.TextFunc(func(s string) { a.info = s }),
		lib, engine.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	a.game = game
	a.ctrl = playback.New(game, a.queue, cfg.Rate, playback.WithLogger(logger))
	return a, nil
}

// initWindow opens the window and syncs frames to the refresh rate.
func initWindow(refresh float64) {
	rl.InitWindow(windowWidth, windowHeight, "autochess")
	rl.SetTargetFPS(int32(math.Max(1, math.Round(refresh))))
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono, falling back to raylib's built-in font.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// Run opens the window and plays until it is closed or the engine fails.
func Run(cfg *config.Config, lib *engine.Library, logger *slog.Logger) error {
	app, err := NewApp(cfg, lib, logger)
	if err != nil {
		return err
	}
	initWindow(cfg.RefreshRate)
	defer rl.CloseWindow()
	app.font = loadFont()
	return app.RunLoop()
}

func (a *App) RunLoop() error {
	a.ctrl.Start()
	for !a.quit && !rl.WindowShouldClose() {
		a.Update()
		a.Step()
		a.Draw()
	}
	return a.err
}

// Step runs the ticks that came due since the last frame.
func (a *App) Step() {
	if a.err != nil {
		return
	}
	if err := a.queue.RunDue(); err != nil {
		a.err = err
		a.quit = true
	}
}

var watchedKeys = []int32{
	rl.KeyQ, rl.KeySpace, rl.KeyP, rl.KeyR, rl.KeyUp, rl.KeyDown, rl.KeyEqual, rl.KeyMinus,
	rl.KeyZero, rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive,
	rl.KeySix, rl.KeySeven, rl.KeyEight, rl.KeyNine,
	rl.KeyW, rl.KeyB, rl.KeyT,
}

// Update polls the keyboard.
func (a *App) Update() {
	shift := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	for _, k := range watchedKeys {
		if rl.IsKeyPressed(k) {
			a.handleKey(k, shift)
		}
	}
}

func (a *App) handleKey(key int32, shift bool) {
	switch key {
	case rl.KeyQ:
		a.quit = true
	case rl.KeySpace, rl.KeyP:
		a.ctrl.Toggle()
	case rl.KeyR:
		if err := a.ctrl.Reset(); err != nil {
			a.err = err
			a.quit = true
		}
	case rl.KeyUp, rl.KeyEqual:
		a.nudgeRate(1)
	case rl.KeyDown, rl.KeyMinus:
		a.nudgeRate(-1)
	case rl.KeyZero:
		a.ctrl.SetRate(config.MaxRate)
	case rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive,
		rl.KeySix, rl.KeySeven, rl.KeyEight, rl.KeyNine:
		a.ctrl.SetRate(float64(key - rl.KeyZero))
	case rl.KeyW:
		if shift {
			a.white.Prev()
		} else {
			a.white.Next()
		}
	case rl.KeyB:
		if shift {
			a.black.Prev()
		} else {
			a.black.Next()
		}
	case rl.KeyT:
		a.theme = viz.NextTheme(a.theme.Name)
		a.palette = newPalette(a.theme)
	}
}

// nudgeRate moves the speed one notch within the slider range. A rate
// outside the range, NaN included, restarts from the nearest bound.
func (a *App) nudgeRate(dir float64) {
	rate := a.ctrl.Rate()
	if math.IsNaN(rate) {
		rate = config.MinRate
	}
	rate = math.Min(config.MaxRate, math.Max(config.MinRate, rate+dir))
	a.ctrl.SetRate(rate)
}

func (a *App) Err() error                       { return a.err }
func (a *App) Controller() *playback.Controller { return a.ctrl }
func (a *App) Game() *engine.Game               { return a.game }

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)
	a.board.paint(boardX, boardY, squareSize, a.palette, a.font)
	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) drawHUD() {
	p := a.palette
	rec := a.game.Record()
	a.drawText("autochess", boardX, 20, 24, p.Primary)
	a.drawText(fmt.Sprintf(":: %s", rec.Name), boardX+150, 24, 16, p.Text)

	state := a.ctrl.State()
	col := p.Primary
	if state == playback.Paused {
		col = p.Dim
	}
	a.drawText(state.String(), panelX, boardY, 20, col)
	a.drawText(a.status, panelX, boardY+32, 20, p.Text)

	y := boardY + 84
	for _, line := range []string{
		fmt.Sprintf("White  %s", rec.White),
		fmt.Sprintf("Black  %s", rec.Black),
		fmt.Sprintf("Ply    %d / %d", a.game.Ply(), len(rec.Moves)),
		fmt.Sprintf("Speed  %s %.1f/s", viz.SliderBar(a.ctrl.Rate(), config.MinRate, config.MaxRate, 12), a.ctrl.Rate()),
	} {
		a.drawText(line, panelX, y, 16, p.Text)
		y += 24
	}
	if a.white.Value() != rec.White || a.black.Value() != rec.Black {
		a.drawText(fmt.Sprintf("next: %s vs %s (R to apply)", a.white.Value(), a.black.Value()), panelX, y, 16, p.Accent)
	}

	a.drawMaterial(panelX, boardY+300, 360, 80)

	a.drawText("[SPACE] PLAY/STOP  [R] RESET  [UP/DOWN] SPEED  [W/B] PLAYERS  [T] THEME  [Q] QUIT", boardX, windowHeight-40, 14, p.Dim)
	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), windowWidth-90, 20, 14, p.Dim)
	if a.err != nil {
		a.drawText(a.err.Error(), panelX, windowHeight-80, 16, rl.Red)
	}
}

// drawMaterial plots the material balance with zero on the midline.
func (a *App) drawMaterial(x, y, width, height int) {
	hist := a.game.MaterialHistory()
	if len(hist) < 2 {
		return
	}
	limit := 1.0
	for _, v := range hist {
		limit = math.Max(limit, math.Abs(v))
	}
	mid := float32(y + height/2)
	rl.DrawLine(int32(x), int32(mid), int32(x+width), int32(mid), a.palette.Dim)

	points := make([]rl.Vector2, len(hist))
	for i, v := range hist {
		px := float32(x) + float32(i)/float32(len(hist)-1)*float32(width)
		py := mid - float32(v/limit)*float32(height)/2
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, a.palette.Accent)
	a.drawText(fmt.Sprintf("material %+.0f", hist[len(hist)-1]), x, y+height+6, 14, a.palette.Text)
}
