package engine

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/pranavtiwari1/chess-master/internal/board"
)

// SearchInfo contains information about a finished search.
type SearchInfo struct {
	Depth int
	Score int
	Nodes uint64
	Time  time.Duration
	Move  board.Move
}

// Difficulty represents the AI difficulty level.
type Difficulty int

const (
	Easy   Difficulty = iota // 1 ply, half of the moves random
	Medium                   // 2 ply
	Hard                     // 3 ply
)

// difficultyDepth maps difficulty to search depth in plies.
var difficultyDepth = map[Difficulty]int{
	Easy:   1,
	Medium: 2,
	Hard:   3,
}

// Depth returns the search depth of d in plies.
func (d Difficulty) Depth() int {
	if depth, ok := difficultyDepth[d]; ok {
		return depth
	}
	return difficultyDepth[Medium]
}

// String returns the lowercase difficulty name.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty parses "easy", "medium" or "hard" (any case).
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	default:
		return Medium, fmt.Errorf("unknown difficulty %q", s)
	}
}

// Easy play skips the search this often and then prefers captures.
const (
	easyRandomRate  = 0.5
	easyCaptureRate = 0.7
)

// Engine is the chess AI engine.
type Engine struct {
	difficulty Difficulty
	workers    int

	mu  sync.Mutex // guards rng
	rng *rand.Rand

	// Callbacks
	OnInfo func(SearchInfo)
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source used by easy play.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
		}
	}
}

// WithParallelRoot searches root moves on n goroutines. n <= 1 keeps the
// sequential search.
func WithParallelRoot(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithDifficulty sets the difficulty used by Search.
func WithDifficulty(d Difficulty) Option {
	return func(e *Engine) {
		e.difficulty = d
	}
}

// NewEngine creates a new chess engine. Without options it plays at medium
// difficulty, searches sequentially and seeds its random source from the
// clock.
func NewEngine(opts ...Option) *Engine {
	seed := uint64(time.Now().UnixNano())
	e := &Engine{
		difficulty: Medium,
		rng:        rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetDifficulty sets the engine difficulty.
func (e *Engine) SetDifficulty(d Difficulty) {
	e.difficulty = d
}

// Difficulty returns the current difficulty.
func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// Search finds a move for c at the engine's difficulty.
func (e *Engine) Search(b board.Board, c board.Color) (board.Move, bool) {
	return e.BestMove(b, c, e.difficulty)
}

// BestMove picks a move for c on b. It returns false when c has no legal
// move. Medium and hard are deterministic; easy plays a random move half of
// the time.
func (e *Engine) BestMove(b board.Board, c board.Color, d Difficulty) (board.Move, bool) {
	moves := b.LegalMovesFor(c, nil)
	if len(moves) == 0 {
		return board.Move{}, false
	}

	if d == Easy && e.randFloat() < easyRandomRate {
		return e.randomMove(b, moves), true
	}

	move, _ := e.searchMoves(b, c, moves, d.Depth())
	return move, true
}

// SearchDepth runs the full search for c at an explicit depth and returns
// the chosen move and its score. It never takes the random path.
func (e *Engine) SearchDepth(b board.Board, c board.Color, depth int) (board.Move, int, bool) {
	if depth < 1 {
		depth = 1
	}
	moves := b.LegalMovesFor(c, nil)
	if len(moves) == 0 {
		return board.Move{}, 0, false
	}
	move, score := e.searchMoves(b, c, moves, depth)
	return move, score, true
}

// searchMoves runs minimax over the given root moves and reports the result.
func (e *Engine) searchMoves(b board.Board, c board.Color, moves []board.Move, depth int) (board.Move, int) {
	start := time.Now()
	s := newSearcher(c)

	var move board.Move
	var score int
	if e.workers > 1 {
		move, score = s.searchRootParallel(b, moves, depth, e.workers)
	} else {
		move, score = s.searchRoot(b, moves, depth)
	}

	if e.OnInfo != nil {
		e.OnInfo(SearchInfo{
			Depth: depth,
			Score: score,
			Nodes: s.Nodes(),
			Time:  time.Since(start),
			Move:  move,
		})
	}
	return move, score
}

// randomMove picks uniformly among captures with probability 0.7 when any
// capture exists, and uniformly among all moves otherwise.
func (e *Engine) randomMove(b board.Board, moves []board.Move) board.Move {
	var captures []board.Move
	for _, m := range moves {
		if m.IsCapture(b) {
			captures = append(captures, m)
		}
	}

	if len(captures) > 0 && e.randFloat() < easyCaptureRate {
		return captures[e.randIntN(len(captures))]
	}
	return moves[e.randIntN(len(moves))]
}

func (e *Engine) randFloat() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64()
}

func (e *Engine) randIntN(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.IntN(n)
}

// ScoreToString converts a score to a human-readable string.
func ScoreToString(score int) string {
	switch {
	case score >= MateScore:
		return "Mate"
	case score <= -MateScore:
		return "Mated"
	}

	sign := ""
	if score < 0 {
		sign = "-"
		score = -score
	}
	return fmt.Sprintf("%s%d.%02d", sign, score/100, score%100)
}
