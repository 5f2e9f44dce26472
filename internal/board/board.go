package board

import (
	"fmt"
	"strings"
)

// backRank is the piece order of both back ranks from the a-file.
var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is an 8x8 grid of pieces indexed [row][col].
//
// Board is a value: assigning or passing it copies every cell, and Apply
// returns a fresh Board. Search code relies on this to explore hypothetical
// lines without touching the board the caller holds. The side to move is
// not part of the board.
type Board struct {
	cells [8][8]Piece
}

// EmptyBoard returns a board with no pieces. It is the zero Board.
func EmptyBoard() Board {
	return Board{}
}

// NewBoard returns the standard starting position.
func NewBoard() Board {
	b := EmptyBoard()
	for col := 0; col < 8; col++ {
		b.cells[0][col] = NewPiece(backRank[col], Black)
		b.cells[1][col] = BlackPawn
		b.cells[6][col] = WhitePawn
		b.cells[7][col] = NewPiece(backRank[col], White)
	}
	return b
}

// PieceAt returns the piece at the given square, or NoPiece if the square
// is empty or off the board.
func (b Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.cells[sq.Row][sq.Col]
}

// IsEmpty returns true if the square is on the board and holds no piece.
func (b Board) IsEmpty(sq Square) bool {
	return sq.Valid() && b.cells[sq.Row][sq.Col] == NoPiece
}

// With returns a copy of b with p placed on sq. Placing NoPiece clears the
// square. Off-board squares leave the copy unchanged.
func (b Board) With(sq Square, p Piece) Board {
	if sq.Valid() {
		b.cells[sq.Row][sq.Col] = p
	}
	return b
}

// Apply returns a new board with the piece on from moved to to, replacing
// whatever stood there. No legality check is made; callers validate with
// LegalMoves first. En passant victims are not removed, rooks do not follow
// the king and pawns are not promoted.
func (b Board) Apply(from, to Square) Board {
	if !from.Valid() || !to.Valid() {
		return b
	}
	b.cells[to.Row][to.Col] = b.cells[from.Row][from.Col]
	b.cells[from.Row][from.Col] = NoPiece
	return b
}

// ApplyMove is Apply(m.From, m.To).
func (b Board) ApplyMove(m Move) Board {
	return b.Apply(m.From, m.To)
}

// Count returns the number of pieces of the given color (NoColor counts both).
func (b Board) Count(c Color) int {
	n := 0
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.cells[row][col]
			if p != NoPiece && (c == NoColor || p.Color() == c) {
				n++
			}
		}
	}
	return n
}

// String returns a visual representation of the board, rank 8 on top.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	for row := 0; row < 8; row++ {
		fmt.Fprintf(&sb, "%d  ", 8-row)
		for col := 0; col < 8; col++ {
			p := b.cells[row][col]
			if p == NoPiece {
				sb.WriteString(". ")
			} else {
				sb.WriteString(p.String() + " ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n   a b c d e f g h\n")
	return sb.String()
}
