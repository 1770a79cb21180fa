package model

import "fmt"

const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Position addresses one cell of the board. Row 0 is Black's back rank,
// row 7 is White's.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Index returns the linear cell index, col + row*8.
func (p Position) Index() int {
	return p.Col + p.Row*BoardSize
}

// PositionFromIndex is the inverse of Index. Indices outside [0,64) fail.
func PositionFromIndex(idx int) (Position, bool) {
	if idx < 0 || idx >= NumSquares {
		return Position{}, false
	}
	return Position{Row: idx / BoardSize, Col: idx % BoardSize}, true
}

// ParsePosition reads a square in "e2" form.
func ParsePosition(s string) (Position, bool) {
	if len(s) != 2 {
		return Position{}, false
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, false
	}
	return Position{Row: int('8' - rank), Col: int(file - 'a')}, true
}

func (p Position) String() string {
	if !p.Valid() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", p.Col+'a', BoardSize-p.Row)
}

func (p Position) getFileNotation() string {
	return fmt.Sprintf("%c", p.Col+'a')
}
