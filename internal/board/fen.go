package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN reads the piece placement and side to move of a FEN string.
// Castling, en passant and clock fields may be present but are ignored.
func ParseFEN(fen string) (Board, Color, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return Board{}, NoColor, fmt.Errorf("invalid FEN: need at least 2 fields, got %d", len(parts))
	}

	b, err := parsePlacement(parts[0])
	if err != nil {
		return Board{}, NoColor, err
	}

	switch parts[1] {
	case "w":
		return b, White, nil
	case "b":
		return b, Black, nil
	default:
		return Board{}, NoColor, fmt.Errorf("invalid side to move: %s", parts[1])
	}
}

// parsePlacement parses the piece placement section of a FEN string.
// FEN lists rank 8 first, which is row 0.
func parsePlacement(placement string) (Board, error) {
	var b Board

	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return b, fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(rows))
	}

	for row, rowStr := range rows {
		col := 0
		for _, c := range rowStr {
			if col > 7 {
				return b, fmt.Errorf("too many squares in rank %d", 8-row)
			}

			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}

			piece := PieceFromChar(byte(c))
			if piece == NoPiece {
				return b, fmt.Errorf("invalid piece character: %c", c)
			}
			b.cells[row][col] = piece
			col++
		}

		if col != 8 {
			return b, fmt.Errorf("invalid number of squares in rank %d: got %d", 8-row, col)
		}
	}

	return b, nil
}

// FEN returns a FEN string for the board with c to move. Castling and en
// passant are always "-" since the board does not track them.
func (b Board) FEN(c Color) string {
	var sb strings.Builder

	for row := 0; row < 8; row++ {
		empty := 0
		for col := 0; col < 8; col++ {
			piece := b.cells[row][col]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row < 7 {
			sb.WriteByte('/')
		}
	}

	if c == Black {
		sb.WriteString(" b")
	} else {
		sb.WriteString(" w")
	}
	sb.WriteString(" - - 0 1")

	return sb.String()
}
