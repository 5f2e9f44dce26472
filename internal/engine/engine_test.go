package engine

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/pranavtiwari1/chess-master/internal/board"
)

func mustFEN(t *testing.T, fen string) (board.Board, board.Color) {
	t.Helper()
	b, c, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b, c
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func TestSearchBasic(t *testing.T) {
	eng := NewEngine(WithRand(seeded(1)))

	for _, d := range []Difficulty{Easy, Medium, Hard} {
		move, ok := eng.BestMove(board.NewBoard(), board.White, d)
		if !ok {
			t.Fatalf("%s: no move for starting position", d)
		}
		if move.Piece.Color() != board.White {
			t.Errorf("%s: moved %s", d, move.Piece)
		}
		t.Logf("%s best move: %s", d, move)
	}
}

func TestNoMoveWhenStalemated(t *testing.T) {
	b, c := mustFEN(t, "k7/8/1QK5/8/8/8/8/8 b - - 0 1")
	eng := NewEngine()

	for _, d := range []Difficulty{Easy, Medium, Hard} {
		if move, ok := eng.BestMove(b, c, d); ok {
			t.Errorf("%s: got %s, want no move", d, move)
		}
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	b, c := mustFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w - - 0 1")

	for _, d := range []Difficulty{Medium, Hard} {
		first, _ := NewEngine(WithRand(seeded(1))).BestMove(b, c, d)
		second, _ := NewEngine(WithRand(seeded(99))).BestMove(b, c, d)
		if first != second {
			t.Errorf("%s: %s then %s", d, first, second)
		}
	}
}

func TestFindsMateInOne(t *testing.T) {
	b, c := mustFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	want := board.Sq(0, 0) // a8

	for _, d := range []Difficulty{Medium, Hard} {
		move, ok := NewEngine().BestMove(b, c, d)
		if !ok {
			t.Fatalf("%s: no move", d)
		}
		if move.To != want {
			t.Errorf("%s: played %s, want Ra8#", d, move)
		}
	}
}

func TestCapturesHangingQueen(t *testing.T) {
	b, c := mustFEN(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")

	var info SearchInfo
	eng := NewEngine()
	eng.OnInfo = func(i SearchInfo) { info = i }

	move, _, ok := eng.SearchDepth(b, c, 1)
	if !ok {
		t.Fatal("no move")
	}
	if move.To != board.Sq(3, 3) {
		t.Errorf("played %s, want Rxd5", move)
	}
	if info.Depth != 1 || info.Nodes == 0 || info.Move != move {
		t.Errorf("unexpected search info %+v", info)
	}
}

// TestEasyCaptureRate checks the random branch on its own: captures are
// preferred with probability 0.7, otherwise any move (captures included)
// is drawn uniformly.
func TestEasyCaptureRate(t *testing.T) {
	b, c := mustFEN(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	eng := NewEngine(WithRand(seeded(42)))

	moves := b.LegalMovesFor(c, nil)
	captures := 0
	for _, m := range moves {
		if m.IsCapture(b) {
			captures++
		}
	}
	if captures == 0 {
		t.Fatal("fixture has no capture")
	}

	const trials = 20000
	hits := 0
	for i := 0; i < trials; i++ {
		if eng.randomMove(b, moves).IsCapture(b) {
			hits++
		}
	}

	want := easyCaptureRate + (1-easyCaptureRate)*float64(captures)/float64(len(moves))
	got := float64(hits) / trials
	t.Logf("capture rate %.4f, expected %.4f (%d/%d moves capture)", got, want, captures, len(moves))
	if math.Abs(got-want) > 0.02 {
		t.Errorf("capture rate %.4f, want %.4f", got, want)
	}
}

// TestEasyMixesSearchAndRandom checks the outer coin: half the calls
// search (and always take the queen), half go random.
func TestEasyMixesSearchAndRandom(t *testing.T) {
	b, c := mustFEN(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
	eng := NewEngine(WithRand(seeded(2024)))
	n := len(b.LegalMovesFor(c, nil))

	const trials = 4000
	hits := 0
	for i := 0; i < trials; i++ {
		move, ok := eng.BestMove(b, c, Easy)
		if !ok {
			t.Fatal("no move")
		}
		if move.IsCapture(b) {
			hits++
		}
	}

	randomCapture := easyCaptureRate + (1-easyCaptureRate)/float64(n)
	want := (1 - easyRandomRate) + easyRandomRate*randomCapture
	got := float64(hits) / trials
	if math.Abs(got-want) > 0.03 {
		t.Errorf("easy capture rate %.4f, want %.4f", got, want)
	}
}

func TestParallelRootMatchesSequential(t *testing.T) {
	fens := []string{
		board.StartFEN,
		"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b - - 0 1",
	}
	seq := NewEngine()
	par := NewEngine(WithParallelRoot(4))

	for _, fen := range fens {
		b, c := mustFEN(t, fen)
		m1, s1, _ := seq.SearchDepth(b, c, 2)
		m2, s2, _ := par.SearchDepth(b, c, 2)
		if m1 != m2 || s1 != s2 {
			t.Errorf("%s: sequential %s (%d), parallel %s (%d)", fen, m1, s1, m2, s2)
		}
	}
}

func TestDifficulty(t *testing.T) {
	tests := []struct {
		in    string
		want  Difficulty
		depth int
	}{
		{"easy", Easy, 1},
		{"Medium", Medium, 2},
		{" HARD ", Hard, 3},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q): %v", tc.in, err)
		}
		if got != tc.want || got.Depth() != tc.depth {
			t.Errorf("ParseDifficulty(%q) = %s depth %d", tc.in, got, got.Depth())
		}
	}
	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Error("expected error for unknown difficulty")
	}

	eng := NewEngine(WithDifficulty(Hard))
	if eng.Difficulty() != Hard {
		t.Errorf("Difficulty() = %s", eng.Difficulty())
	}
}

func TestScoreToString(t *testing.T) {
	tests := map[int]string{
		0:          "0.00",
		125:        "1.25",
		-50:        "-0.50",
		MateScore:  "Mate",
		-MateScore: "Mated",
	}
	for score, want := range tests {
		if got := ScoreToString(score); got != want {
			t.Errorf("ScoreToString(%d) = %q, want %q", score, got, want)
		}
	}
}
