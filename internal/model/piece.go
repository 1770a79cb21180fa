package model

import "unicode"

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) Valid() bool {
	return c == White || c == Black
}

// homeRow is the row a side's pawns start on.
func (c Color) homeRow() int {
	if c == White {
		return 6
	}
	return 1
}

// forward is the row step that moves a piece toward the opposing back rank.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) letter() rune {
	switch p {
	case King:
		return 'k'
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	case Pawn:
		return 'p'
	}
	return ' '
}

func pieceTypeFromLetter(r rune) (PieceType, bool) {
	switch r {
	case 'k':
		return King, true
	case 'q':
		return Queen, true
	case 'r':
		return Rook, true
	case 'b':
		return Bishop, true
	case 'n':
		return Knight, true
	case 'p':
		return Pawn, true
	}
	return "", false
}

// Piece is a value stored in a board cell. The zero Piece is an empty cell.
type Piece struct {
	Type  PieceType `json:"type"`
	Color Color     `json:"color"`
}

func (p Piece) IsZero() bool {
	return p.Type == ""
}

// Rune returns the piece's glyph: upper case for White, lower case for Black.
func (p Piece) Rune() rune {
	if p.IsZero() {
		return ' '
	}
	ch := p.Type.letter()
	if p.Color == White {
		return unicode.ToUpper(ch)
	}
	return ch
}

func (p Piece) String() string {
	return string(p.Rune())
}

// PieceFromRune parses a glyph produced by Rune. The piece's position is not
// encoded in the glyph and has to come from the caller.
func PieceFromRune(r rune) (Piece, bool) {
	color := Black
	if r >= 'A' && r <= 'Z' {
		color = White
		r += 'a' - 'A'
	}
	t, ok := pieceTypeFromLetter(r)
	if !ok {
		return Piece{}, false
	}
	return Piece{Type: t, Color: color}, true
}
