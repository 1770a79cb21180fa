package model

import (
	"errors"
	"strings"
	"testing"
)

func pos(t *testing.T, s string) Position {
	t.Helper()
	p, ok := ParsePosition(s)
	if !ok {
		t.Fatalf("invalid square %q", s)
	}
	return p
}

func mv(t *testing.T, s string) Move {
	t.Helper()
	m, err := ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	return m
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	if b.Turn() != White {
		t.Fatalf("turn = %s, want white", b.Turn())
	}
	if _, ok := b.Winner(); ok {
		t.Fatalf("new board has a winner")
	}
	if n := b.PieceCount(); n != 32 {
		t.Fatalf("piece count = %d, want 32", n)
	}

	checks := map[string]Piece{
		"a1": {Type: Rook, Color: White},
		"b1": {Type: Knight, Color: White},
		"c1": {Type: Bishop, Color: White},
		"d1": {Type: Queen, Color: White},
		"e1": {Type: King, Color: White},
		"h1": {Type: Rook, Color: White},
		"e2": {Type: Pawn, Color: White},
		"d8": {Type: Queen, Color: Black},
		"e8": {Type: King, Color: Black},
		"g8": {Type: Knight, Color: Black},
		"a7": {Type: Pawn, Color: Black},
	}
	for sq, want := range checks {
		got, ok := b.At(pos(t, sq))
		if !ok || got != want {
			t.Errorf("At(%s) = %+v, %v, want %+v", sq, got, ok, want)
		}
	}
	for _, sq := range []string{"a3", "e4", "h6"} {
		if _, ok := b.At(pos(t, sq)); ok {
			t.Errorf("At(%s) is occupied on a new board", sq)
		}
	}
	if _, ok := b.At(Position{Row: 8, Col: 0}); ok {
		t.Errorf("At off the board reported a piece")
	}
}

func TestApplyOpeningPawnMove(t *testing.T) {
	b := NewBoard()
	if !b.Apply(mv(t, "e2e4")) {
		t.Fatalf("e2e4 rejected on the starting board")
	}
	if b.Turn() != Black {
		t.Fatalf("turn = %s after white's move, want black", b.Turn())
	}
	if _, ok := b.At(pos(t, "e2")); ok {
		t.Fatalf("e2 still occupied")
	}
	if p, ok := b.At(pos(t, "e4")); !ok || p != (Piece{Type: Pawn, Color: White}) {
		t.Fatalf("e4 = %+v, %v", p, ok)
	}
	if n := b.PieceCount(); n != 32 {
		t.Fatalf("piece count = %d", n)
	}
}

func TestApplyWrongSide(t *testing.T) {
	b := mustFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b")
	if err := b.Play(mv(t, "e2e4")); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("Play(e2e4) with black to move = %v, want ErrNotYourTurn", err)
	}
	if b.Turn() != Black {
		t.Fatalf("turn changed on a rejected move")
	}
}

func TestPlayRejections(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move Move
		want error
	}{
		{"EmptySource", StartFEN, Move{From: Position{Row: 4, Col: 4}, To: Position{Row: 3, Col: 4}}, ErrNoPiece},
		{"OffBoardFrom", StartFEN, Move{From: Position{Row: -1, Col: 0}, To: Position{Row: 0, Col: 0}}, ErrOutOfBounds},
		{"OffBoardTo", StartFEN, Move{From: Position{Row: 6, Col: 4}, To: Position{Row: 6, Col: 9}}, ErrOutOfBounds},
		{"SameSquare", StartFEN, Move{From: Position{Row: 6, Col: 4}, To: Position{Row: 6, Col: 4}}, ErrOwnPiece},
		{"RookBlockedByOwnPawn", StartFEN, Move{From: Position{Row: 7, Col: 0}, To: Position{Row: 0, Col: 0}}, ErrIllegalMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			before := b.FEN()
			if err := b.Play(tt.move); !errors.Is(err, tt.want) {
				t.Fatalf("Play(%+v) = %v, want %v", tt.move, err, tt.want)
			}
			if after := b.FEN(); after != before {
				t.Fatalf("rejected move mutated the board: %q -> %q", before, after)
			}
			if b.Apply(tt.move) {
				t.Fatalf("Apply accepted a move Play rejected")
			}
		})
	}
}

func TestApplyNeverCapturesOwnPiece(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
	}{
		{"Rook", "4k3/8/8/8/2P5/1P1P4/1N1B4/R2QKP2 w", "a1d1"},
		{"Knight", "4k3/8/8/8/2P5/1P1P4/1N1B4/R2QKP2 w", "b2d3"},
		{"Bishop", "4k3/8/8/8/2P5/1P1P4/1N1B4/R2QKP2 w", "d2e1"},
		{"Queen", "4k3/8/8/8/2P5/1P1P4/1N1B4/R2QKP2 w", "d1d2"},
		{"King", "4k3/8/8/8/2P5/1P1P4/1N1B4/R2QKP2 w", "e1f1"},
		{"PawnDiagonal", "4k3/8/8/8/2P5/1P1P4/1N1B4/R2QKP2 w", "b3c4"},
		{"PawnStraight", "4k3/8/8/8/2P5/2P5/8/4K3 w", "c3c4"},
		{"BlackRook", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b", "a8a7"},
		{"BlackKnight", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b", "b8d7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			m := mv(t, tt.move)
			target, ok := b.At(m.To)
			if !ok || target.Color != b.Turn() {
				t.Fatalf("fixture: %s does not target an own piece", tt.move)
			}
			before := b.FEN()
			if err := b.Play(m); !errors.Is(err, ErrOwnPiece) {
				t.Fatalf("Play(%s) = %v, want ErrOwnPiece", tt.move, err)
			}
			if b.FEN() != before {
				t.Fatalf("rejected %s mutated the board", tt.move)
			}
		})
	}
}

func TestRookFileOpensAfterPawnMoves(t *testing.T) {
	b := NewBoard()
	if b.Apply(mv(t, "a1a8")) {
		t.Fatalf("a1a8 accepted through own pawn")
	}

	b = mustFEN(t, "rnbqkbnr/1ppppppp/8/8/8/8/1PPPPPPP/RNBQKBNR w")
	if err := b.Play(mv(t, "a1a8")); err != nil {
		t.Fatalf("a1a8 on an open file: %v", err)
	}
	if p, _ := b.At(pos(t, "a8")); p != (Piece{Type: Rook, Color: White}) {
		t.Fatalf("a8 = %+v, want white rook", p)
	}
	if n := b.PieceCount(); n != 29 {
		t.Fatalf("piece count = %d after capture, want 29", n)
	}

	b = mustFEN(t, "rnbqkbnr/1ppppppp/8/8/8/8/1PPPPPPP/RNBQKBNR w")
	if err := b.Play(mv(t, "a1a5")); err != nil {
		t.Fatalf("a1a5 to an empty square: %v", err)
	}
}

func TestGameSequence(t *testing.T) {
	b := NewBoard()
	seq := []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "d7d6", "f3g5", "c8g4", "c4f7", "g4d1", "f7e8", "d1c2", "e1e2"}
	count := b.PieceCount()
	for i, s := range seq {
		_, capture := b.At(mv(t, s).To)
		if err := b.Play(mv(t, s)); err != nil {
			t.Fatalf("move %d %s: %v", i, s, err)
		}
		if capture {
			count--
		}
		if got := b.PieceCount(); got != count {
			t.Fatalf("after %s piece count = %d, want %d", s, got, count)
		}
	}
	if b.Turn() != Black {
		t.Fatalf("turn = %s after %d moves", b.Turn(), len(seq))
	}
	if _, ok := b.Winner(); ok {
		t.Fatalf("rules must never set a winner")
	}
}

func TestRender(t *testing.T) {
	out := NewBoard().Render()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("render has %d lines, want 10:\n%s", len(lines), out)
	}
	header := "   a  b  c  d  e  f  g  h"
	if lines[0] != header || lines[9] != header {
		t.Fatalf("header/footer = %q / %q", lines[0], lines[9])
	}
	if lines[1] != "8 [r][n][b][q][k][b][n][r] 8" {
		t.Fatalf("rank 8 = %q", lines[1])
	}
	if lines[4] != "5 [ ][ ][ ][ ][ ][ ][ ][ ] 5" {
		t.Fatalf("rank 5 = %q", lines[4])
	}
	if lines[8] != "1 [R][N][B][Q][K][B][N][R] 1" {
		t.Fatalf("rank 1 = %q", lines[8])
	}
}

func TestSnapshot(t *testing.T) {
	b := NewBoard()
	b.Apply(mv(t, "g1f3"))
	s := b.Snapshot()
	if s.ToMove != Black || s.Winner != nil {
		t.Fatalf("snapshot toMove=%s winner=%v", s.ToMove, s.Winner)
	}
	if s.Board[5][5] == nil || *s.Board[5][5] != (Piece{Type: Knight, Color: White}) {
		t.Fatalf("f3 in snapshot = %v", s.Board[5][5])
	}
	if s.Board[7][6] != nil {
		t.Fatalf("g1 in snapshot should be empty")
	}

	// The snapshot is a copy.
	s.Board[5][5].Type = Queen
	if p, _ := b.At(pos(t, "f3")); p.Type != Knight {
		t.Fatalf("snapshot aliased the board")
	}

	b.SetWinner(White)
	if s := b.Snapshot(); s.Winner == nil || *s.Winner != White {
		t.Fatalf("winner not in snapshot")
	}
}
