package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/autochess/internal/engine"
)

const squareWidth = 3

// Canvas is the board surface the engine draws onto. It keeps the last
// frame and turns it into styled terminal cells on demand.
type Canvas struct {
	frame engine.Frame
	draws int
}

func NewCanvas() *Canvas {
	return &Canvas{frame: engine.Frame{Board: engine.NewBoard()}}
}

// Draw stores the frame for the next render.
func (c *Canvas) Draw(f engine.Frame) error {
	c.frame = f
	c.draws++
	return nil
}

func (c *Canvas) Frame() engine.Frame { return c.frame }
func (c *Canvas) Draws() int          { return c.draws }

// Render paints the board, rank 8 on top, with the last move highlighted.
func (c *Canvas) Render(t Theme) string {
	var s strings.Builder
	for r := 7; r >= 0; r-- {
		s.WriteString(lipgloss.NewStyle().Foreground(t.Muted).Render(string(rune('1'+r))) + " ")
		for f := 0; f < 8; f++ {
			sq := engine.Square{File: f, Rank: r}
			bg := t.Dark
			if (r+f)%2 == 1 {
				bg = t.Light
			}
			if c.highlighted(sq) {
				bg = t.Highlight
			}
			p := c.frame.Board.At(sq)
			fg := t.WhitePiece
			if p.Color == engine.Black {
				fg = t.BlackPiece
			}
			cell := lipgloss.NewStyle().Background(bg).Foreground(fg).Width(squareWidth).Align(lipgloss.Center)
			s.WriteString(cell.Render(string(p.Glyph())))
		}
		s.WriteByte('\n')
	}
	s.WriteString("  ")
	for f := 0; f < 8; f++ {
		label := lipgloss.NewStyle().Foreground(t.Muted).Width(squareWidth).Align(lipgloss.Center)
		s.WriteString(label.Render(string(rune('a' + f))))
	}
	return s.String()
}

// Plain renders the board as piece letters without styling.
func (c *Canvas) Plain() string {
	return c.frame.Board.String()
}

func (c *Canvas) highlighted(sq engine.Square) bool {
	last := c.frame.Last
	return last != nil && (last.From == sq || last.To == sq)
}
