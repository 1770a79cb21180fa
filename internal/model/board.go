package model

import "strings"

var backRank = [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is the 64-cell occupancy grid plus whose turn it is. It is not safe
// for concurrent use; Game serializes access.
type Board struct {
	cells  [NumSquares]Piece
	turn   Color
	winner Color
}

// BoardState is a read-only copy of the grid for clients. Empty cells are nil.
type BoardState struct {
	Board  [][]*Piece `json:"board"`
	ToMove Color      `json:"toMove"`
	Winner *Color     `json:"winner"`
	FEN    string     `json:"fen"`
}

func newEmptyBoard(turn Color) *Board {
	return &Board{turn: turn}
}

// NewBoard returns the standard starting position with White to move.
func NewBoard() *Board {
	b := newEmptyBoard(White)
	for col := 0; col < BoardSize; col++ {
		b.put(Position{Row: 1, Col: col}, Piece{Type: Pawn, Color: Black})
		b.put(Position{Row: 6, Col: col}, Piece{Type: Pawn, Color: White})
		b.put(Position{Row: 0, Col: col}, Piece{Type: backRank[col], Color: Black})
		b.put(Position{Row: 7, Col: col}, Piece{Type: backRank[col], Color: White})
	}
	return b
}

func (b *Board) put(pos Position, p Piece) {
	b.cells[pos.Index()] = p
}

// At returns the piece on pos, or false when the cell is empty or pos is off
// the board.
func (b *Board) At(pos Position) (Piece, bool) {
	if !pos.Valid() {
		return Piece{}, false
	}
	p := b.cells[pos.Index()]
	return p, !p.IsZero()
}

func (b *Board) isEmpty(pos Position) bool {
	_, ok := b.At(pos)
	return !ok
}

func (b *Board) Turn() Color {
	return b.turn
}

// Winner is only ever set by SetWinner; the move rules never decide a game.
func (b *Board) Winner() (Color, bool) {
	return b.winner, b.winner != ""
}

func (b *Board) SetWinner(c Color) {
	b.winner = c
}

func (b *Board) PieceCount() int {
	n := 0
	for _, p := range b.cells {
		if !p.IsZero() {
			n++
		}
	}
	return n
}

// Play validates m against the side to move and the piece's movement rule and
// applies it. It is the only code that writes cells or turn.
func (b *Board) Play(m Move) error {
	if !m.From.Valid() || !m.To.Valid() {
		return ErrOutOfBounds
	}
	piece, ok := b.At(m.From)
	if !ok {
		return ErrNoPiece
	}
	if piece.Color != b.turn {
		return ErrNotYourTurn
	}
	// Also rejects From == To, so the rules never see a zero-length move.
	if target, ok := b.At(m.To); ok && target.Color == b.turn {
		return ErrOwnPiece
	}
	if !IsLegal(piece, m, b) {
		return ErrIllegalMove
	}

	b.cells[m.To.Index()] = piece
	b.cells[m.From.Index()] = Piece{}
	b.turn = b.turn.Opponent()
	return nil
}

// Apply plays m and reports whether it was accepted. A rejected move leaves
// the board untouched.
func (b *Board) Apply(m Move) bool {
	return b.Play(m) == nil
}

// Render draws the grid with rank labels 8..1 and file letters above and below.
func (b *Board) Render() string {
	var sb strings.Builder
	files := fileHeader()
	sb.WriteString(files)
	for row := 0; row < BoardSize; row++ {
		label := string(rune('0' + BoardSize - row))
		sb.WriteString(label)
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte('[')
			sb.WriteRune(b.cells[Position{Row: row, Col: col}.Index()].Rune())
			sb.WriteByte(']')
		}
		sb.WriteByte(' ')
		sb.WriteString(label)
		sb.WriteByte('\n')
	}
	sb.WriteString(files)
	return sb.String()
}

func fileHeader() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < BoardSize; col++ {
		sb.WriteByte(' ')
		sb.WriteString(Position{Col: col}.getFileNotation())
		sb.WriteByte(' ')
	}
	return strings.TrimRight(sb.String(), " ") + "\n"
}

// Snapshot copies the grid into a BoardState.
func (b *Board) Snapshot() BoardState {
	state := BoardState{
		Board:  make([][]*Piece, BoardSize),
		ToMove: b.turn,
		FEN:    b.FEN(),
	}
	for row := 0; row < BoardSize; row++ {
		state.Board[row] = make([]*Piece, BoardSize)
		for col := 0; col < BoardSize; col++ {
			if p, ok := b.At(Position{Row: row, Col: col}); ok {
				state.Board[row][col] = &p
			}
		}
	}
	if w, ok := b.Winner(); ok {
		state.Winner = &w
	}
	return state
}
