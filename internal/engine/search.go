package engine

import (
	"sync/atomic"

	"github.com/pranavtiwari1/chess-master/internal/board"
)

// Search constants
const (
	Infinity  = 1_000_000_000
	MateScore = 999_999
)

// searcher holds the state of one BestMove call. The node counter is
// atomic so root children may be searched from several goroutines.
type searcher struct {
	root  board.Color
	nodes atomic.Uint64
}

func newSearcher(root board.Color) *searcher {
	return &searcher{root: root}
}

// Nodes returns the number of positions visited so far.
func (s *searcher) Nodes() uint64 {
	return s.nodes.Load()
}

// scoreRoot scores one root move: the child is searched with the opponent
// to move and a full window.
func (s *searcher) scoreRoot(b board.Board, m board.Move, depth int) int {
	return s.minimax(b.ApplyMove(m), depth-1, -Infinity, Infinity, false)
}

// searchRoot scores every root move in order and keeps the first move with
// the strictly greatest score.
func (s *searcher) searchRoot(b board.Board, moves []board.Move, depth int) (board.Move, int) {
	best := board.Move{}
	bestScore := -Infinity

	for _, m := range moves {
		score := s.scoreRoot(b, m, depth)
		if score > bestScore {
			best = m
			bestScore = score
		}
	}
	return best, bestScore
}

// minimax returns the value of b searched depth plies deep. Leaves are
// scored for the root side; maximizing is true when the root side moves.
func (s *searcher) minimax(b board.Board, depth, alpha, beta int, maximizing bool) int {
	s.nodes.Add(1)

	if depth == 0 {
		return Evaluate(b, s.root)
	}

	side := s.root
	if !maximizing {
		side = side.Other()
	}

	moves := b.LegalMovesFor(side, nil)
	if len(moves) == 0 {
		if b.InCheck(side) {
			if maximizing {
				return -MateScore
			}
			return MateScore
		}
		return 0 // stalemate
	}

	if maximizing {
		value := -Infinity
		for _, m := range moves {
			value = max(value, s.minimax(b.ApplyMove(m), depth-1, alpha, beta, false))
			alpha = max(alpha, value)
			if beta <= alpha {
				break
			}
		}
		return value
	}

	value := Infinity
	for _, m := range moves {
		value = min(value, s.minimax(b.ApplyMove(m), depth-1, alpha, beta, true))
		beta = min(beta, value)
		if beta <= alpha {
			break
		}
	}
	return value
}
