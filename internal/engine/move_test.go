package engine

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in      string
		want    Move
		wantErr bool
	}{
		{"e2e4", Move{From: Square{4, 1}, To: Square{4, 3}}, false},
		{"E7E8Q", Move{From: Square{4, 6}, To: Square{4, 7}, Promote: Queen}, false},
		{"b7b8n", Move{From: Square{1, 6}, To: Square{1, 7}, Promote: Knight}, false},
		{"e2", Move{}, true},
		{"i2i4", Move{}, true},
		{"e9e4", Move{}, true},
		{"e7e8k", Move{}, true},
		{"e7e8x", Move{}, true},
		{"e2e2", Move{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMove(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrBadMove) {
					t.Errorf("expected ErrBadMove, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMove_String(t *testing.T) {
	for _, s := range []string{"e2e4", "a7a8q", "h1h8"} {
		m, err := ParseMove(s)
		if err != nil {
			t.Fatal(err)
		}
		if m.String() != s {
			t.Errorf("expected %s, got %s", s, m.String())
		}
	}
}
