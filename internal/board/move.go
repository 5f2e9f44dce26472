package board

// Move records a piece relocation.
//
// Only From, To and Piece are filled in by move generation. Captured,
// EnPassant, Castling and Promotion are carried for callers that want to
// annotate a move but nothing in this package sets or reads them.
type Move struct {
	From      Square
	To        Square
	Piece     Piece
	Captured  Piece
	EnPassant bool
	Castling  bool
	Promotion PieceType
}

// NewMove creates a move of piece from one square to another.
func NewMove(from, to Square, piece Piece) Move {
	return Move{
		From:      from,
		To:        to,
		Piece:     piece,
		Captured:  NoPiece,
		Promotion: NoPieceType,
	}
}

// IsZero reports whether m is the zero Move, used as "no move".
func (m Move) IsZero() bool {
	return m == Move{}
}

// IsCapture returns true if the destination holds a piece on b.
func (m Move) IsCapture(b Board) bool {
	return b.PieceAt(m.To) != NoPiece
}

// String returns the coordinate form of the move (e.g., "e2e4").
func (m Move) String() string {
	if m.IsZero() {
		return "0000"
	}
	return m.From.String() + m.To.String()
}
