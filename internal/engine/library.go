package engine

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed games.yaml
var defaultLibrary []byte

// Player is a named participant listed in the roster.
type Player struct {
	Name        string `yaml:"name" validate:"required"`
	Description string `yaml:"description"`
}

// Record is one recorded game in coordinate notation.
type Record struct {
	Name   string   `yaml:"name" validate:"required"`
	White  string   `yaml:"white" validate:"required"`
	Black  string   `yaml:"black" validate:"required"`
	Result string   `yaml:"result" validate:"required,oneof=1-0 0-1 1/2-1/2 *"`
	Moves  []string `yaml:"moves" validate:"dive,min=4,max=5"`
}

// Outcome reports how the recorded game ended. An unfinished record ("*")
// counts as a draw once its moves run out.
func (r *Record) Outcome() Outcome {
	switch r.Result {
	case "1-0":
		return WhiteWins
	case "0-1":
		return BlackWins
	default:
		return Draw
	}
}

// Library is a roster of players and the games they played.
type Library struct {
	Players []Player `yaml:"players" validate:"required,min=1,dive"`
	Games   []Record `yaml:"games" validate:"required,min=1,dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DefaultLibrary returns the built-in library.
func DefaultLibrary() (*Library, error) {
	return ParseLibrary(defaultLibrary)
}

// LoadLibrary reads and validates a library file.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseLibrary(data)
}

// ParseLibrary decodes and validates a YAML library.
func ParseLibrary(data []byte) (*Library, error) {
	lib := &Library{}
	if err := yaml.Unmarshal(data, lib); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLibrary, err)
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Validate checks field constraints, that every game names roster
// players, and that every move parses.
func (l *Library) Validate() error {
	if len(l.Games) == 0 {
		return ErrNoGames
	}
	if err := validate.Struct(l); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrInvalidLibrary, strings.Join(msgs, "; "))
	}
	for _, g := range l.Games {
		for _, name := range []string{g.White, g.Black} {
			if _, ok := l.Player(name); !ok {
				return fmt.Errorf("%w: %q in game %q", ErrUnknownPlayer, name, g.Name)
			}
		}
		for i, mv := range g.Moves {
			if _, err := ParseMove(mv); err != nil {
				return &MoveError{Game: g.Name, Ply: i, Move: mv, Wrapped: err}
			}
		}
	}
	return nil
}

// Player looks up a roster entry by name.
func (l *Library) Player(name string) (Player, bool) {
	for _, p := range l.Players {
		if p.Name == name {
			return p, true
		}
	}
	return Player{}, false
}

// PlayerNames lists the roster in file order.
func (l *Library) PlayerNames() []string {
	names := make([]string, len(l.Players))
	for i, p := range l.Players {
		names[i] = p.Name
	}
	return names
}

// Pick chooses the game for a pairing: an exact match first, then the
// first game with the requested white player, then the first game.
func (l *Library) Pick(white, black string) *Record {
	if len(l.Games) == 0 {
		return nil
	}
	for i := range l.Games {
		if l.Games[i].White == white && l.Games[i].Black == black {
			return &l.Games[i]
		}
	}
	for i := range l.Games {
		if l.Games[i].White == white {
			return &l.Games[i]
		}
	}
	return &l.Games[0]
}
