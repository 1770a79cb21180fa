package model

import (
	"fmt"
	"strings"
)

// Move is a from/to pair produced fresh for every request.
type Move struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

// ParseMove reads "e2e4". A single space or dash between the squares is
// also accepted ("e2 e4", "e2-e4").
func ParseMove(text string) (Move, error) {
	s := strings.TrimSpace(text)
	if len(s) == 5 && (s[2] == ' ' || s[2] == '-') {
		s = s[:2] + s[3:]
	}
	if len(s) != 4 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	from, ok := ParsePosition(s[:2])
	if !ok {
		return Move{}, fmt.Errorf("%w: bad from square %q", ErrInvalidFormat, s[:2])
	}
	to, ok := ParsePosition(s[2:])
	if !ok {
		return Move{}, fmt.Errorf("%w: bad to square %q", ErrInvalidFormat, s[2:])
	}
	return Move{From: from, To: to}, nil
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// WSMove is the move payload accepted from clients. Either Notation is set
// ("e2e4") or From/To are.
type WSMove struct {
	Notation string    `json:"move,omitempty"`
	From     *Position `json:"from,omitempty"`
	To       *Position `json:"to,omitempty"`
}

func (w WSMove) Move() (Move, error) {
	if w.Notation != "" {
		return ParseMove(w.Notation)
	}
	if w.From == nil || w.To == nil {
		return Move{}, fmt.Errorf("%w: move needs from and to", ErrInvalidFormat)
	}
	return Move{From: *w.From, To: *w.To}, nil
}
