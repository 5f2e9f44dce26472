package engine

import (
	"golang.org/x/sync/errgroup"

	"github.com/pranavtiwari1/chess-master/internal/board"
)

// searchRootParallel scores root moves on up to workers goroutines. Each
// child gets its own full window, exactly as in searchRoot, and the
// reduction walks the scores in generation order, so the chosen move and
// score match the sequential search.
func (s *searcher) searchRootParallel(b board.Board, moves []board.Move, depth, workers int) (board.Move, int) {
	scores := make([]int, len(moves))

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range moves {
		g.Go(func() error {
			scores[i] = s.scoreRoot(b, moves[i], depth)
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	best := board.Move{}
	bestScore := -Infinity
	for i, score := range scores {
		if score > bestScore {
			best = moves[i]
			bestScore = score
		}
	}
	return best, bestScore
}
