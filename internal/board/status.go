package board

// GameStatus summarizes the situation of the side to move.
type GameStatus uint8

const (
	Ongoing GameStatus = iota
	Check
	Checkmate
	Stalemate
)

// String returns the status name.
func (s GameStatus) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "ongoing"
	}
}

// KingSquare returns the square of c's king, or NoSquare if it has none.
func (b Board) KingSquare(c Color) Square {
	king := NewPiece(King, c)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if b.cells[row][col] == king {
				return Sq(row, col)
			}
		}
	}
	return NoSquare
}

// InCheck returns true if any enemy piece has a pseudo-legal move onto c's
// king. A side without a king is never in check.
func (b Board) InCheck(c Color) bool {
	king := b.KingSquare(c)
	if king == NoSquare {
		return false
	}
	return b.IsSquareAttacked(king, c.Other())
}

// IsSquareAttacked returns true if a piece of color by could move to sq
// following its movement pattern.
func (b Board) IsSquareAttacked(sq Square, by Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.cells[row][col]
			if p == NoPiece || p.Color() != by {
				continue
			}
			for _, to := range b.pseudoLegalTargets(Sq(row, col), nil) {
				if to == sq {
					return true
				}
			}
		}
	}
	return false
}

// IsCheckmate returns true if c is in check and has no legal move.
func (b Board) IsCheckmate(c Color) bool {
	return b.InCheck(c) && !b.HasLegalMoves(c)
}

// IsStalemate returns true if c is not in check and has no legal move.
func (b Board) IsStalemate(c Color) bool {
	return !b.InCheck(c) && !b.HasLegalMoves(c)
}

// Status classifies the position for c to move.
func (b Board) Status(c Color) GameStatus {
	inCheck := b.InCheck(c)
	hasMoves := b.HasLegalMoves(c)
	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case inCheck:
		return Check
	default:
		return Ongoing
	}
}
