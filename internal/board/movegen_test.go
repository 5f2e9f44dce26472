package board

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// perft counts leaf nodes at the given depth, threading the last move so
// en passant is generated as in play.
func perft(b Board, c Color, last *Move, depth int) int64 {
	moves := b.LegalMovesFor(c, last)
	if depth == 1 {
		return int64(len(moves))
	}

	var nodes int64
	for i := range moves {
		nodes += perft(b.ApplyMove(moves[i]), c.Other(), &moves[i], depth-1)
	}
	return nodes
}

// TestPerftStartingPosition checks node counts that involve neither
// castling nor promotion, so they match standard chess.
func TestPerftStartingPosition(t *testing.T) {
	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}

	for _, tc := range tests {
		if tc.depth > 3 && testing.Short() {
			continue
		}
		got := perft(NewBoard(), White, nil, tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

func TestInitialBoardMoveCounts(t *testing.T) {
	b := NewBoard()

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := Sq(row, col)
			p := b.PieceAt(sq)
			got := len(b.LegalMoves(sq, nil))

			want := 0
			switch p.Type() {
			case Pawn, Knight:
				want = 2
			}
			if got != want {
				t.Errorf("%s (%s): %d legal moves, want %d", sq, p, got, want)
			}
		}
	}
}

func TestPawnPushes(t *testing.T) {
	b := NewBoard()

	got := b.LegalMoves(Sq(6, 4), nil) // e2
	want := []Square{Sq(5, 4), Sq(4, 4)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("e2 pawn targets mismatch (-want +got):\n%s", diff)
	}

	got = b.LegalMoves(Sq(1, 3), nil) // d7
	want = []Square{Sq(2, 3), Sq(3, 3)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("d7 pawn targets mismatch (-want +got):\n%s", diff)
	}

	// A blocked pawn has no double push either.
	blocked := b.With(Sq(5, 4), BlackKnight)
	if got := blocked.LegalMoves(Sq(6, 4), nil); len(got) != 0 {
		t.Errorf("blocked e2 pawn has moves %v", got)
	}
}

func TestEnPassant(t *testing.T) {
	// White pawn e5, black just played d7d5.
	b, _, err := ParseFEN("4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	e5 := Sq(3, 4)
	last := NewMove(Sq(1, 3), Sq(3, 3), BlackPawn)

	got := b.LegalMoves(e5, &last)
	if !containsSquare(got, Sq(2, 3)) {
		t.Errorf("expected en passant onto d6, got %v", got)
	}

	if got := b.LegalMoves(e5, nil); containsSquare(got, Sq(2, 3)) {
		t.Errorf("en passant generated without a previous move: %v", got)
	}

	single := NewMove(Sq(2, 3), Sq(3, 3), BlackPawn)
	if got := b.LegalMoves(e5, &single); containsSquare(got, Sq(2, 3)) {
		t.Errorf("en passant generated after a single push: %v", got)
	}

	// Applying the capture only relocates the capturing pawn.
	after := b.Apply(e5, Sq(2, 3))
	if after.PieceAt(Sq(3, 3)) != BlackPawn {
		t.Error("en passant victim should stay on the board")
	}
}

func TestNoCastlingOrPromotion(t *testing.T) {
	b, _, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	for _, to := range b.LegalMoves(Sq(7, 4), nil) {
		if abs(to.Col-4) > 1 {
			t.Errorf("king generated castling-like move to %s", to)
		}
	}

	b, _, err = ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	after := b.Apply(Sq(1, 0), Sq(0, 0))
	if after.PieceAt(Sq(0, 0)) != WhitePawn {
		t.Errorf("pawn on the last rank became %s", after.PieceAt(Sq(0, 0)))
	}
	if got := after.LegalMoves(Sq(0, 0), nil); len(got) != 0 {
		t.Errorf("pawn on the last rank has moves %v", got)
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	b, _, err := ParseFEN("4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if got := b.LegalMoves(Sq(6, 4), nil); len(got) != 0 {
		t.Errorf("pinned bishop has moves %v", got)
	}
	if got := b.PseudoLegalMoves(Sq(6, 4), nil); len(got) == 0 {
		t.Error("pinned bishop should still have pseudo-legal moves")
	}
}

func TestEmptyAndOffBoardSquares(t *testing.T) {
	b := NewBoard()
	for _, sq := range []Square{Sq(4, 4), Sq(-1, 0), Sq(8, 8), NoSquare} {
		if got := b.LegalMoves(sq, nil); len(got) != 0 {
			t.Errorf("LegalMoves(%v) = %v, want none", sq, got)
		}
	}
}

func TestApplyRoundTrip(t *testing.T) {
	start := NewBoard()

	b := start.Apply(Sq(7, 6), Sq(5, 5)) // Ng1-f3
	if b == start {
		t.Fatal("Apply did not change the board")
	}
	if start.PieceAt(Sq(7, 6)) != WhiteKnight {
		t.Fatal("Apply mutated its receiver")
	}

	back := b.Apply(Sq(5, 5), Sq(7, 6))
	if back != start {
		t.Errorf("round trip did not restore placement:%s", back)
	}

	// Captures are destructive.
	captured := start.Apply(Sq(6, 0), Sq(1, 0))
	restored := captured.Apply(Sq(1, 0), Sq(6, 0))
	if restored.Count(Black) != start.Count(Black)-1 {
		t.Errorf("captured piece came back: black has %d pieces", restored.Count(Black))
	}
}

// TestLegalMovesNeverLeaveKingInCheck plays random games and checks every
// generated move on every visited board.
func TestLegalMovesNeverLeaveKingInCheck(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	games, plies := 12, 60
	if testing.Short() {
		games = 3
	}

	for g := 0; g < games; g++ {
		b := NewBoard()
		c := White
		var last *Move

		for ply := 0; ply < plies; ply++ {
			moves := b.LegalMovesFor(c, last)
			for _, m := range moves {
				if !m.To.Valid() {
					t.Fatalf("game %d ply %d: off-board move %v", g, ply, m)
				}
				if b.ApplyMove(m).InCheck(c) {
					t.Fatalf("game %d ply %d: %s leaves %s in check:%s", g, ply, m, c, b)
				}
			}
			if len(moves) == 0 {
				break
			}
			m := moves[rng.IntN(len(moves))]
			b = b.ApplyMove(m)
			last = &m
			c = c.Other()
		}
	}
}

func TestLegalMovesForOrder(t *testing.T) {
	moves := NewBoard().LegalMovesFor(Black, nil)
	if len(moves) != 20 {
		t.Fatalf("black has %d moves, want 20", len(moves))
	}
	// Scan order starts with the b8 knight.
	if moves[0].From != Sq(0, 1) {
		t.Errorf("first move from %s, want b8", moves[0].From)
	}
	for _, m := range moves {
		if m.Piece.Color() != Black {
			t.Errorf("move %s carries piece %s", m, m.Piece)
		}
	}
}

func TestRayStopsAtFirstPiece(t *testing.T) {
	b, _, err := ParseFEN("4k3/8/8/8/1p1R2P1/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	got := b.LegalMoves(Sq(4, 3), nil) // d4
	sortSquares(got)

	want := []Square{
		Sq(0, 3), Sq(1, 3), Sq(2, 3), Sq(3, 3), // up the d-file
		Sq(4, 1), Sq(4, 2), // c4, capture b4
		Sq(4, 4), Sq(4, 5), // e4, f4 (g4 is own pawn)
		Sq(5, 3), Sq(6, 3), Sq(7, 3),
	}
	sortSquares(want)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rook targets mismatch (-want +got):\n%s", diff)
	}
}

func sortSquares(s []Square) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Row != s[j].Row {
			return s[i].Row < s[j].Row
		}
		return s[i].Col < s[j].Col
	})
}
