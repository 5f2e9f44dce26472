package board

import "strings"

// pieceChars lists FEN letters in Piece encoding order.
const pieceChars = "PNBRQKpnbrqk"

// Color represents the color of a piece or player.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// forward is the row delta of a pawn push for this color.
// White advances toward row 0, black toward row 7.
func (c Color) forward() int {
	if c == White {
		return -1
	}
	return 1
}

// pawnRow is the row pawns of this color start on.
func (c Color) pawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

// PieceType represents the type of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// PieceValue is the material value of each piece type in centipawns.
var PieceValue = [7]int{100, 320, 330, 500, 900, 20000, 0}

// Piece combines PieceType and Color into a single value.
// Encoded as: 1 + pieceType + color*6, leaving 0 for an empty cell.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1 + Piece(Pawn) + Piece(White)*6
	WhiteKnight Piece = 1 + Piece(Knight) + Piece(White)*6
	WhiteBishop Piece = 1 + Piece(Bishop) + Piece(White)*6
	WhiteRook   Piece = 1 + Piece(Rook) + Piece(White)*6
	WhiteQueen  Piece = 1 + Piece(Queen) + Piece(White)*6
	WhiteKing   Piece = 1 + Piece(King) + Piece(White)*6
	BlackPawn   Piece = 1 + Piece(Pawn) + Piece(Black)*6
	BlackKnight Piece = 1 + Piece(Knight) + Piece(Black)*6
	BlackBishop Piece = 1 + Piece(Bishop) + Piece(Black)*6
	BlackRook   Piece = 1 + Piece(Rook) + Piece(Black)*6
	BlackQueen  Piece = 1 + Piece(Queen) + Piece(Black)*6
	BlackKing   Piece = 1 + Piece(King) + Piece(Black)*6
)

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return 1 + Piece(pt) + Piece(c)*6
}

// Type returns the PieceType of the piece.
func (p Piece) Type() PieceType {
	if p == NoPiece || p > BlackKing {
		return NoPieceType
	}
	return PieceType((p - 1) % 6)
}

// Color returns the Color of the piece.
func (p Piece) Color() Color {
	if p == NoPiece || p > BlackKing {
		return NoColor
	}
	return Color((p - 1) / 6)
}

// String returns the FEN character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) String() string {
	if p == NoPiece || p > BlackKing {
		return " "
	}
	return string(pieceChars[p-1])
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	i := strings.IndexByte(pieceChars, c)
	if i < 0 {
		return NoPiece
	}
	return Piece(i + 1)
}

// Value returns the material value of the piece in centipawns.
func (p Piece) Value() int {
	return PieceValue[p.Type()]
}
