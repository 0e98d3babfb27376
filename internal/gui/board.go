package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/autochess/internal/engine"
	"github.com/san-kum/autochess/internal/viz"
)

// palette is a viz.Theme converted to raylib colors.
type palette struct {
	Light, Dark, Highlight     rl.Color
	WhitePiece, BlackPiece     rl.Color
	Primary, Accent, Text, Dim rl.Color
}

func newPalette(t viz.Theme) palette {
	return palette{
		Light:      hexColor(string(t.Light)),
		Dark:       hexColor(string(t.Dark)),
		Highlight:  hexColor(string(t.Highlight)),
		WhitePiece: hexColor(string(t.WhitePiece)),
		BlackPiece: hexColor(string(t.BlackPiece)),
		Primary:    hexColor(string(t.Primary)),
		Accent:     hexColor(string(t.Accent)),
		Text:       hexColor(string(t.Text)),
		Dim:        hexColor(string(t.Muted)),
	}
}

// hexColor parses "#rrggbb". Anything else is gray.
func hexColor(s string) rl.Color {
	var r, g, b uint8
	if n, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil || n != 3 {
		return rl.NewColor(128, 128, 128, 255)
	}
	return rl.NewColor(r, g, b, 255)
}

// Board is the window's drawing surface. The engine hands it frames and
// the render loop paints the latest one.
type Board struct {
	frame engine.Frame
	draws int
}

func (b *Board) Draw(f engine.Frame) error {
	b.frame = f
	b.draws++
	return nil
}

func (b *Board) Frame() engine.Frame { return b.frame }
func (b *Board) Draws() int          { return b.draws }

// squareOrigin returns the top-left pixel of sq on a board drawn at
// (x, y), with rank 8 at the top.
func squareOrigin(sq engine.Square, x, y, size int32) (int32, int32) {
	return x + int32(sq.File)*size, y + int32(7-sq.Rank)*size
}

func (b *Board) paint(x, y, size int32, p palette, font rl.Font) {
	last := b.frame.Last
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := engine.Square{File: file, Rank: rank}
			sx, sy := squareOrigin(sq, x, y, size)

			col := p.Dark
			if (file+rank)%2 == 1 {
				col = p.Light
			}
			if last != nil && (last.From == sq || last.To == sq) {
				col = p.Highlight
			}
			rl.DrawRectangle(sx, sy, size, size, col)

			piece := b.frame.Board.At(sq)
			if piece.Empty() {
				continue
			}
			fill, ink := p.WhitePiece, p.BlackPiece
			if piece.Color == engine.Black {
				fill, ink = p.BlackPiece, p.WhitePiece
			}
			cx, cy := sx+size/2, sy+size/2
			rl.DrawCircle(cx, cy, float32(size)*0.38, ink)
			rl.DrawCircle(cx, cy, float32(size)*0.34, fill)

			letter := string(rune(piece.Letter()))
			fs := float32(size) * 0.45
			m := rl.MeasureTextEx(font, letter, fs, 1)
			rl.DrawTextEx(font, letter, rl.NewVector2(float32(cx)-m.X/2, float32(cy)-m.Y/2), fs, 1, ink)
		}
	}

	for i := 0; i < 8; i++ {
		file := string(rune('a' + i))
		rank := string(rune('1' + i))
		rl.DrawTextEx(font, file, rl.NewVector2(float32(x+int32(i)*size+size/2-4), float32(y+8*size+6)), 16, 1, p.Dim)
		rl.DrawTextEx(font, rank, rl.NewVector2(float32(x-18), float32(y+int32(7-i)*size+size/2-8)), 16, 1, p.Dim)
	}
}
