// Package export renders positions and material curves as SVG.
package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/autochess/internal/engine"
)

// Palette holds the SVG fill colors.
type Palette struct {
	Light, Dark, Highlight, Background, Stroke string
}

var DefaultPalette = Palette{
	Light:      "#f0d9b5",
	Dark:       "#b58863",
	Highlight:  "#cdd26a",
	Background: "#0a0a0a",
	Stroke:     "#00ff00",
}

// BoardSVG draws the frame's position with rank 8 at the top. scale is the
// side of one square in pixels; the last move's squares are highlighted.
func BoardSVG(f engine.Frame, p Palette, scale float64) string {
	if scale <= 0 {
		scale = 48
	}
	side := scale * 8

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
`, side, side, side, side))

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sq := engine.Square{File: file, Rank: rank}
			x := float64(file) * scale
			y := float64(7-rank) * scale

			fill := p.Dark
			if (file+rank)%2 == 1 {
				fill = p.Light
			}
			if f.Last != nil && (f.Last.From == sq || f.Last.To == sq) {
				fill = p.Highlight
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, scale, scale, fill))

			piece := f.Board.At(sq)
			if piece.Empty() {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" dominant-baseline="central">%s</text>
`, x+scale/2, y+scale/2, scale*0.8, html.EscapeString(string(piece.Glyph()))))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// MaterialSVG plots the material balance per ply. Zero sits on the
// horizontal midline.
func MaterialSVG(history []float64, width, height int, p Palette) string {
	if len(history) < 2 {
		return ""
	}

	limit := 1.0
	for _, v := range history {
		if v > limit {
			limit = v
		}
		if -v > limit {
			limit = -v
		}
	}
	limit *= 1.1

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444444"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, p.Background,
		float64(height)/2, width, float64(height)/2, p.Stroke))

	for i, v := range history {
		x := float64(i) / float64(len(history)-1) * float64(width)
		y := float64(height)/2 - v/limit*float64(height)/2
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
