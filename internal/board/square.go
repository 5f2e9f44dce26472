// Package board implements the chess rules: an 8x8 value-type board, legal
// move generation and check, checkmate and stalemate detection.
package board

import "fmt"

// Square addresses one board cell.
// Row 0 is black's back rank (rank 8), row 7 is white's back rank (rank 1).
// Col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// NoSquare is returned where no cell applies (for example a missing king).
var NoSquare = Square{Row: -1, Col: -1}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool {
	return sq.Row >= 0 && sq.Row < 8 && sq.Col >= 0 && sq.Col < 8
}

// Offset returns the square dr rows and dc columns away. The result may be
// off the board.
func (sq Square) Offset(dr, dc int) Square {
	return Square{Row: sq.Row + dr, Col: sq.Col + dc}
}

// String returns the algebraic name of the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.Col, '8'-sq.Row)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	col := int(s[0]) - 'a'
	row := '8' - int(s[1])

	sq := Sq(row, col)
	if !sq.Valid() {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return sq, nil
}
