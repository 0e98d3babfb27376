package engine

// Frame is what a surface draws: a board snapshot and the move that led
// to it.
type Frame struct {
	Board Board
	Last  *Move
	Turn  Color
	Ply   int
}

// Surface draws board frames.
type Surface interface {
	Draw(f Frame) error
}

// TextSink receives status and info text.
type TextSink interface {
	SetText(s string)
}

// TextFunc adapts a function to TextSink.
type TextFunc func(string)

func (f TextFunc) SetText(s string) { f(s) }

// Selector exposes the currently selected option of a choice control.
type Selector interface {
	Value() string
}

// Selection is a cycling choice over a fixed option list.
type Selection struct {
	options []string
	index   int
}

// NewSelection starts at initial, or at the first option when initial is
// not listed.
func NewSelection(options []string, initial string) *Selection {
	s := &Selection{options: options}
	s.Set(initial)
	return s
}

func (s *Selection) Value() string {
	if len(s.options) == 0 {
		return ""
	}
	return s.options[s.index]
}

// Set selects the named option and reports whether it exists.
func (s *Selection) Set(name string) bool {
	for i, o := range s.options {
		if o == name {
			s.index = i
			return true
		}
	}
	return false
}

func (s *Selection) Next() {
	if len(s.options) > 0 {
		s.index = (s.index + 1) % len(s.options)
	}
}

func (s *Selection) Prev() {
	if len(s.options) > 0 {
		s.index = (s.index - 1 + len(s.options)) % len(s.options)
	}
}

func (s *Selection) Options() []string { return s.options }
