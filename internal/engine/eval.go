// Package engine implements the computer opponent: a static evaluator and a
// fixed-depth minimax search with alpha-beta pruning.
package engine

import (
	"github.com/pranavtiwari1/chess-master/internal/board"
)

// Positional weights in centipawns.
const (
	pawnAdvanceBonus = 10 // per row advanced from the start rank
	centerBonus      = 10 // per step of center proximity (knights, bishops)
)

// Evaluate scores b from perspective's point of view: material plus a small
// positional bonus, added for perspective's pieces and subtracted for the
// opponent's.
func Evaluate(b board.Board, perspective board.Color) int {
	score := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.PieceAt(board.Sq(row, col))
			if p == board.NoPiece {
				continue
			}
			v := p.Value() + positionalBonus(p, row, col)
			if p.Color() == perspective {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}

// positionalBonus returns the placement term for p on (row, col).
func positionalBonus(p board.Piece, row, col int) int {
	switch p.Type() {
	case board.Pawn:
		if p.Color() == board.White {
			return pawnAdvanceBonus * (6 - row)
		}
		return pawnAdvanceBonus * (row - 1)
	case board.Knight, board.Bishop:
		return centerBonus * centerProximity(row, col)
	default:
		return 0
	}
}

// centerProximity is max(0, 3 - |3.5-row| - |3.5-col|). Both distances are
// odd halves, so the sum is whole and the math stays in integers.
func centerProximity(row, col int) int {
	dist := (absInt(7-2*row) + absInt(7-2*col)) / 2
	return max(0, 3-dist)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
