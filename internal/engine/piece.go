package engine

// Color is the side a piece belongs to.
type Color int

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Kind is the type of a piece. None marks an empty square.
type Kind int

const (
	None Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindLetters = map[Kind]byte{Pawn: 'p', Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q', King: 'k'}

var kindValues = map[Kind]int{Pawn: 1, Knight: 3, Bishop: 3, Rook: 5, Queen: 9}

// KindFromLetter maps a lowercase piece letter to its kind.
func KindFromLetter(c byte) (Kind, bool) {
	for k, l := range kindLetters {
		if l == c {
			return k, true
		}
	}
	return None, false
}

// Piece is the content of one square.
type Piece struct {
	Kind  Kind
	Color Color
}

func (p Piece) Empty() bool { return p.Kind == None }

// Value is the conventional material value; kings count zero.
func (p Piece) Value() int { return kindValues[p.Kind] }

var glyphs = [2][7]rune{
	{' ', '♙', '♘', '♗', '♖', '♕', '♔'},
	{' ', '♟', '♞', '♝', '♜', '♛', '♚'},
}

// Glyph returns the unicode chess symbol, or a space for an empty square.
func (p Piece) Glyph() rune {
	return glyphs[p.Color][p.Kind]
}

// Letter returns the piece letter, uppercase for white, '.' when empty.
func (p Piece) Letter() byte {
	if p.Empty() {
		return '.'
	}
	l := kindLetters[p.Kind]
	if p.Color == White {
		return l - 'a' + 'A'
	}
	return l
}
