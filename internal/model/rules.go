package model

// IsLegal reports whether piece may make move m on b, judged only by the
// piece's movement pattern and the cells it passes over. Ownership of the
// source and the own-piece destination check are done once in Board.Play.
// IsLegal never mutates b.
func IsLegal(piece Piece, m Move, b *Board) bool {
	if !m.From.Valid() || !m.To.Valid() || m.From == m.To {
		return false
	}
	switch piece.Type {
	case Pawn:
		return isLegalPawnMove(piece.Color, m, b)
	case Knight:
		return isLegalKnightMove(m)
	case Bishop:
		return isLegalBishopMove(m, b)
	case Rook:
		return isLegalRookMove(m, b)
	case Queen:
		return isLegalRookMove(m, b) || isLegalBishopMove(m, b)
	case King:
		return isLegalKingMove(m)
	}
	return false
}

// deltas returns from minus to, as signed row and column distances.
func deltas(m Move) (rowDelta, colDelta int) {
	return m.From.Row - m.To.Row, m.From.Col - m.To.Col
}

func isLegalPawnMove(color Color, m Move, b *Board) bool {
	rowDelta, colDelta := deltas(m)
	// advance is positive when the pawn moves toward the opposing back rank.
	advance := -rowDelta * color.forward()
	if advance <= 0 {
		return false
	}

	switch abs(colDelta) {
	case 0:
		maxAdvance := 1
		if m.From.Row == color.homeRow() {
			maxAdvance = 2
		}
		if advance > maxAdvance {
			return false
		}
		// Straight advances never capture.
		return b.isPathClear(m.From, m.To) && b.isEmpty(m.To)
	case 1:
		if advance != 1 {
			return false
		}
		target, ok := b.At(m.To)
		return ok && target.Color != color
	}
	return false
}

func isLegalKnightMove(m Move) bool {
	rowDelta, colDelta := deltas(m)
	r, c := abs(rowDelta), abs(colDelta)
	return (r == 1 && c == 2) || (r == 2 && c == 1)
}

func isLegalBishopMove(m Move, b *Board) bool {
	rowDelta, colDelta := deltas(m)
	if rowDelta == 0 || abs(rowDelta) != abs(colDelta) {
		return false
	}
	return b.isPathClear(m.From, m.To)
}

func isLegalRookMove(m Move, b *Board) bool {
	rowDelta, colDelta := deltas(m)
	if (rowDelta == 0) == (colDelta == 0) {
		return false
	}
	return b.isPathClear(m.From, m.To)
}

func isLegalKingMove(m Move) bool {
	rowDelta, colDelta := deltas(m)
	return abs(rowDelta) <= 1 && abs(colDelta) <= 1
}

// isPathClear reports whether every cell strictly between from and to is
// empty. from and to must share a row, a column or a diagonal.
func (b *Board) isPathClear(from, to Position) bool {
	rowStep := sign(to.Row - from.Row)
	colStep := sign(to.Col - from.Col)
	pos := Position{Row: from.Row + rowStep, Col: from.Col + colStep}
	for pos != to {
		if !pos.Valid() || !b.isEmpty(pos) {
			return false
		}
		pos = Position{Row: pos.Row + rowStep, Col: pos.Col + colStep}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
