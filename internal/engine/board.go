package engine

import (
	"fmt"
	"strings"
)

// Board holds pieces indexed by [rank][file].
type Board [8][8]Piece

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard start position.
func NewBoard() Board {
	var b Board
	for f := 0; f < 8; f++ {
		b[0][f] = Piece{Kind: backRank[f], Color: White}
		b[1][f] = Piece{Kind: Pawn, Color: White}
		b[6][f] = Piece{Kind: Pawn, Color: Black}
		b[7][f] = Piece{Kind: backRank[f], Color: Black}
	}
	return b
}

func (b *Board) At(s Square) Piece { return b[s.Rank][s.File] }

func (b *Board) Set(s Square, p Piece) { b[s.Rank][s.File] = p }

// Apply moves a piece and returns what it captured. Castling moves the
// rook alongside a king that travels two files; a pawn moving diagonally
// onto an empty square takes the pawn it passed. No legality is checked.
func (b *Board) Apply(m Move) (Piece, error) {
	p := b.At(m.From)
	if p.Empty() {
		return Piece{}, fmt.Errorf("%w: %s", ErrEmptySquare, m.From)
	}
	captured := b.At(m.To)

	switch {
	case p.Kind == Pawn && m.From.File != m.To.File && captured.Empty():
		passed := Square{File: m.To.File, Rank: m.From.Rank}
		captured = b.At(passed)
		b.Set(passed, Piece{})
	case p.Kind == King && abs(m.To.File-m.From.File) == 2:
		rookFrom, rookTo := Square{File: 7, Rank: m.From.Rank}, Square{File: 5, Rank: m.From.Rank}
		if m.To.File < m.From.File {
			rookFrom, rookTo = Square{File: 0, Rank: m.From.Rank}, Square{File: 3, Rank: m.From.Rank}
		}
		b.Set(rookTo, b.At(rookFrom))
		b.Set(rookFrom, Piece{})
	}

	if m.Promote != None {
		p.Kind = m.Promote
	}
	b.Set(m.To, p)
	b.Set(m.From, Piece{})
	return captured, nil
}

// Material returns white's material minus black's.
func (b *Board) Material() int {
	total := 0
	for r := range b {
		for _, p := range b[r] {
			if p.Color == White {
				total += p.Value()
			} else {
				total -= p.Value()
			}
		}
	}
	return total
}

// String renders the board as letters, rank 8 first.
func (b *Board) String() string {
	var s strings.Builder
	for r := 7; r >= 0; r-- {
		for f := 0; f < 8; f++ {
			s.WriteByte(b[r][f].Letter())
		}
		s.WriteByte('\n')
	}
	return s.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
