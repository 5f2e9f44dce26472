package engine

import (
	"testing"

	"github.com/pranavtiwari1/chess-master/internal/board"
)

// plainMinimax is minimax without pruning, used as a reference.
func plainMinimax(b board.Board, depth int, maximizing bool, root board.Color) int {
	if depth == 0 {
		return Evaluate(b, root)
	}
	side := root
	if !maximizing {
		side = root.Other()
	}
	moves := b.LegalMovesFor(side, nil)
	if len(moves) == 0 {
		if b.InCheck(side) {
			if maximizing {
				return -MateScore
			}
			return MateScore
		}
		return 0
	}

	best := Infinity
	if maximizing {
		best = -Infinity
	}
	for _, m := range moves {
		v := plainMinimax(b.ApplyMove(m), depth-1, !maximizing, root)
		if maximizing {
			best = max(best, v)
		} else {
			best = min(best, v)
		}
	}
	return best
}

func plainBestMove(b board.Board, c board.Color, depth int) (board.Move, int) {
	var best board.Move
	bestScore := -Infinity
	for _, m := range b.LegalMovesFor(c, nil) {
		if v := plainMinimax(b.ApplyMove(m), depth-1, false, c); v > bestScore {
			best, bestScore = m, v
		}
	}
	return best, bestScore
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	positions := []string{
		board.StartFEN,
		"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
		"4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1",
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b - - 0 1",
		"4k3/8/3p4/2p1p3/2P1P3/3P4/8/4K3 w - - 0 1",
	}

	for _, fen := range positions {
		b, c := mustFEN(t, fen)
		for depth := 1; depth <= 3; depth++ {
			if depth == 3 && testing.Short() {
				continue
			}
			wantMove, wantScore := plainBestMove(b, c, depth)
			gotMove, gotScore, ok := NewEngine().SearchDepth(b, c, depth)
			if !ok {
				t.Fatalf("%s depth %d: no move", fen, depth)
			}
			if gotMove != wantMove || gotScore != wantScore {
				t.Errorf("%s depth %d: alpha-beta %s (%d), minimax %s (%d)",
					fen, depth, gotMove, gotScore, wantMove, wantScore)
			}
		}
	}
}

func TestPruningVisitsFewerNodes(t *testing.T) {
	b := board.NewBoard()

	var nodes uint64
	eng := NewEngine()
	eng.OnInfo = func(i SearchInfo) { nodes = i.Nodes }
	eng.SearchDepth(b, board.White, 3)

	// Unpruned: 20 + 400 interior nodes and 8902 leaves.
	full := uint64(20 + 400 + 8902)
	t.Logf("alpha-beta visited %d nodes (unpruned tree has %d)", nodes, full)
	if nodes == 0 || nodes >= full {
		t.Errorf("alpha-beta visited %d nodes, expected fewer than %d", nodes, full)
	}
}

func TestMateScoreSigns(t *testing.T) {
	// Black to move is mated.
	b, _ := mustFEN(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")

	s := newSearcher(board.White)
	if got := s.minimax(b, 1, -Infinity, Infinity, false); got != MateScore {
		t.Errorf("mated opponent scored %d, want %d", got, MateScore)
	}

	s = newSearcher(board.Black)
	if got := s.minimax(b, 1, -Infinity, Infinity, true); got != -MateScore {
		t.Errorf("mated root side scored %d, want %d", got, -MateScore)
	}
}

func TestStalemateScoresZero(t *testing.T) {
	b, _ := mustFEN(t, "k7/8/1QK5/8/8/8/8/8 b - - 0 1")

	s := newSearcher(board.White)
	if got := s.minimax(b, 2, -Infinity, Infinity, false); got != 0 {
		t.Errorf("stalemate scored %d, want 0", got)
	}
}
