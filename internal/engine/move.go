package engine

import (
	"fmt"
	"strings"
)

// Square addresses the board by file (a=0) and rank (1=0).
type Square struct {
	File, Rank int
}

// ParseSquare reads algebraic square names such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Square{}, fmt.Errorf("%w: square %q", ErrBadMove, s)
	}
	return Square{File: int(s[0] - 'a'), Rank: int(s[1] - '1')}, nil
}

func (s Square) String() string {
	return string([]byte{byte('a' + s.File), byte('1' + s.Rank)})
}

// Move is a from/to pair with an optional promotion.
type Move struct {
	From, To Square
	Promote  Kind
}

// ParseMove reads coordinate notation: "e2e4", or "e7e8q" for promotion.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrBadMove, s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, err
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		k, ok := KindFromLetter(s[4])
		if !ok || k == Pawn || k == King {
			return Move{}, fmt.Errorf("%w: promotion %q", ErrBadMove, s)
		}
		m.Promote = k
	}
	if from == to {
		return Move{}, fmt.Errorf("%w: null move %q", ErrBadMove, s)
	}
	return m, nil
}

func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promote != None {
		s += string(kindLetters[m.Promote])
	}
	return s
}
