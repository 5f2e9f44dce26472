package board

// Direction tables as (row, col) deltas.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	bishopDirs    = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	rookDirs      = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// LegalMoves returns the squares the piece on sq may move to without
// leaving its own king in check. last is the move played just before, or
// nil; it is only consulted for en passant. The result is empty when sq is
// empty or off the board.
func (b Board) LegalMoves(sq Square, last *Move) []Square {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return nil
	}
	return b.filterLegal(sq, p.Color(), b.pseudoLegalTargets(sq, last))
}

// LegalMovesFor returns every legal move of color c, in board scan order
// (row 0 to 7, col 0 to 7) and per-piece generation order within a square.
func (b Board) LegalMovesFor(c Color, last *Move) []Move {
	var moves []Move
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.cells[row][col]
			if p == NoPiece || p.Color() != c {
				continue
			}
			from := Sq(row, col)
			for _, to := range b.LegalMoves(from, last) {
				moves = append(moves, NewMove(from, to, p))
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if color c has at least one legal move.
func (b Board) HasLegalMoves(c Color) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.cells[row][col]
			if p == NoPiece || p.Color() != c {
				continue
			}
			if len(b.LegalMoves(Sq(row, col), nil)) > 0 {
				return true
			}
		}
	}
	return false
}

// PseudoLegalMoves returns the targets of the piece on sq following its
// movement pattern, including moves that leave its own king in check.
func (b Board) PseudoLegalMoves(sq Square, last *Move) []Square {
	return b.pseudoLegalTargets(sq, last)
}

// filterLegal drops every target that would leave us in check.
func (b Board) filterLegal(from Square, us Color, targets []Square) []Square {
	var legal []Square
	for _, to := range targets {
		if !b.Apply(from, to).InCheck(us) {
			legal = append(legal, to)
		}
	}
	return legal
}

// pseudoLegalTargets dispatches on piece type. It never consults check
// detection, so InCheck can be built on it without recursion.
func (b Board) pseudoLegalTargets(sq Square, last *Move) []Square {
	p := b.PieceAt(sq)
	us := p.Color()

	switch p.Type() {
	case Pawn:
		return b.pawnTargets(sq, us, last)
	case Knight:
		return b.stepTargets(sq, us, knightOffsets[:])
	case Bishop:
		return b.rayTargets(sq, us, bishopDirs[:])
	case Rook:
		return b.rayTargets(sq, us, rookDirs[:])
	case Queen:
		return append(b.rayTargets(sq, us, rookDirs[:]), b.rayTargets(sq, us, bishopDirs[:])...)
	case King:
		// No castling.
		return b.stepTargets(sq, us, kingOffsets[:])
	default:
		return nil
	}
}

// pawnTargets generates pushes, diagonal captures and en passant.
// Pawns reaching the last rank stay pawns.
func (b Board) pawnTargets(sq Square, us Color, last *Move) []Square {
	var targets []Square
	dir := us.forward()

	one := sq.Offset(dir, 0)
	if b.IsEmpty(one) {
		targets = append(targets, one)

		two := sq.Offset(2*dir, 0)
		if sq.Row == us.pawnRow() && b.IsEmpty(two) {
			targets = append(targets, two)
		}
	}

	for _, dc := range [2]int{-1, 1} {
		diag := sq.Offset(dir, dc)
		if !diag.Valid() {
			continue
		}
		if victim := b.PieceAt(diag); victim != NoPiece {
			if victim.Color() != us {
				targets = append(targets, diag)
			}
			continue
		}
		if b.enPassantAllowed(sq, diag, us, last) {
			targets = append(targets, diag)
		}
	}

	return targets
}

// enPassantAllowed reports whether the pawn on from may capture onto the
// empty square diag because last was an enemy pawn double push that ended
// beside it on diag's file.
func (b Board) enPassantAllowed(from, diag Square, us Color, last *Move) bool {
	if last == nil || abs(last.To.Row-last.From.Row) != 2 {
		return false
	}
	moved := b.PieceAt(last.To)
	if moved.Type() != Pawn || moved.Color() == us {
		return false
	}
	return last.To.Row == from.Row && last.To.Col == diag.Col
}

// stepTargets handles the single-step pieces (knight, king).
func (b Board) stepTargets(sq Square, us Color, offsets [][2]int) []Square {
	var targets []Square
	for _, d := range offsets {
		to := sq.Offset(d[0], d[1])
		if !to.Valid() {
			continue
		}
		if p := b.PieceAt(to); p == NoPiece || p.Color() != us {
			targets = append(targets, to)
		}
	}
	return targets
}

// rayTargets casts rays until the edge or the first occupied square, which
// is included only when it holds an enemy piece.
func (b Board) rayTargets(sq Square, us Color, dirs [][2]int) []Square {
	var targets []Square
	for _, d := range dirs {
		to := sq.Offset(d[0], d[1])
		for to.Valid() {
			p := b.PieceAt(to)
			if p != NoPiece {
				if p.Color() != us {
					targets = append(targets, to)
				}
				break
			}
			targets = append(targets, to)
			to = to.Offset(d[0], d[1])
		}
	}
	return targets
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
