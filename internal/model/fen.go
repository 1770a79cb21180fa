package model

import (
	"fmt"
	"strings"
)

// StartFEN is the starting position. Only the placement and side-to-move
// fields are read; castling, en passant and clocks are ignored.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

const maxPieces = 32

// ParseFEN builds a board from a FEN string. The side-to-move field is
// optional and defaults to White.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty FEN", ErrInvalidFormat)
	}

	turn := White
	if len(parts) > 1 {
		switch parts[1] {
		case "w":
			turn = White
		case "b":
			turn = Black
		default:
			return nil, fmt.Errorf("%w: invalid side to move %q", ErrInvalidFormat, parts[1])
		}
	}

	b := newEmptyBoard(turn)
	if err := parsePiecePlacement(b, parts[0]); err != nil {
		return nil, err
	}
	if n := b.PieceCount(); n > maxPieces {
		return nil, fmt.Errorf("%w: %d pieces on board", ErrInvalidFormat, n)
	}
	return b, nil
}

func parsePiecePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != BoardSize {
		return fmt.Errorf("%w: need %d ranks, got %d", ErrInvalidFormat, BoardSize, len(ranks))
	}
	for row, rank := range ranks {
		col := 0
		for _, ch := range rank {
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			p, ok := PieceFromRune(ch)
			if !ok {
				return fmt.Errorf("%w: invalid piece %q", ErrInvalidFormat, ch)
			}
			if col >= BoardSize {
				return fmt.Errorf("%w: rank %d too long", ErrInvalidFormat, BoardSize-row)
			}
			b.put(Position{Row: row, Col: col}, p)
			col++
		}
		if col != BoardSize {
			return fmt.Errorf("%w: rank %d has %d files", ErrInvalidFormat, BoardSize-row, col)
		}
	}
	return nil
}

// FEN returns the placement and side-to-move fields.
func (b *Board) FEN() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		empty := 0
		for col := 0; col < BoardSize; col++ {
			p, ok := b.At(Position{Row: row, Col: col})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(p.Rune())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row < BoardSize-1 {
			sb.WriteByte('/')
		}
	}
	if b.turn == Black {
		sb.WriteString(" b")
	} else {
		sb.WriteString(" w")
	}
	return sb.String()
}
