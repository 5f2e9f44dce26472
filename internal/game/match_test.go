package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pranavtiwari1/chess-master/internal/board"
	"github.com/pranavtiwari1/chess-master/internal/engine"
	"github.com/pranavtiwari1/chess-master/internal/storage"
)

func sq(t *testing.T, s string) board.Square {
	t.Helper()
	square, err := board.ParseSquare(s)
	if err != nil {
		t.Fatal(err)
	}
	return square
}

func playAll(t *testing.T, m *Match, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		if _, err := m.Play(sq(t, mv[:2]), sq(t, mv[2:])); err != nil {
			t.Fatalf("Play(%s): %v", mv, err)
		}
	}
}

func TestMatchFoolsMate(t *testing.T) {
	m := NewMatch()
	playAll(t, m, "f2f3", "e7e5", "g2g4", "d8h4")

	if !m.Over() {
		t.Fatal("expected the game to be over")
	}
	if got := m.Result(); got != BlackWins {
		t.Errorf("Result = %v, want BlackWins", got)
	}
	if _, err := m.Play(sq(t, "a2"), sq(t, "a3")); !errors.Is(err, ErrGameOver) {
		t.Errorf("Play after mate: err = %v, want ErrGameOver", err)
	}
	if targets := m.Targets(sq(t, "a2")); len(targets) != 0 {
		t.Errorf("Targets after mate = %v, want none", targets)
	}

	res := m.Outcome(board.Black, storage.ModeHumanVsComputer, engine.Hard)
	if !res.Won || res.Draw || res.Difficulty != engine.Hard {
		t.Errorf("Outcome for Black = %+v", res)
	}
	if res := m.Outcome(board.White, storage.ModeHumanVsComputer, engine.Hard); res.Won {
		t.Errorf("Outcome for White = %+v, want a loss", res)
	}
}

func TestMatchRejectsBadMoves(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     error
	}{
		{"empty square", "e4", "e5", ErrNotYourPiece},
		{"opponent piece", "e7", "e5", ErrNotYourPiece},
		{"illegal target", "e2", "e5", ErrIllegalMove},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMatch()
			_, err := m.Play(sq(t, tc.from), sq(t, tc.to))
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
			if m.Side() != board.White || len(m.History()) != 0 {
				t.Error("rejected move changed the match")
			}
		})
	}
}

func TestMatchEnPassantUsesLastMove(t *testing.T) {
	m := NewMatch()
	playAll(t, m, "e2e4", "a7a6", "e4e5", "d7d5")

	want := []board.Square{sq(t, "e6"), sq(t, "d6")}
	if diff := cmp.Diff(want, m.Targets(sq(t, "e5"))); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}

	// One move later the right is gone.
	playAll(t, m, "a2a3", "a6a5")
	want = []board.Square{sq(t, "e6")}
	if diff := cmp.Diff(want, m.Targets(sq(t, "e5"))); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}
}

func TestMatchRecordsCaptures(t *testing.T) {
	m := NewMatch()
	playAll(t, m, "e2e4", "d7d5")

	mv, err := m.Play(sq(t, "e4"), sq(t, "d5"))
	if err != nil {
		t.Fatal(err)
	}
	if mv.Captured != board.BlackPawn {
		t.Errorf("Captured = %v, want black pawn", mv.Captured)
	}
	if last := m.LastMove(); last == nil || *last != mv {
		t.Errorf("LastMove = %v, want %v", last, mv)
	}
	if m.Status() != board.Ongoing {
		t.Errorf("Status = %v, want ongoing", m.Status())
	}
}

func TestMatchStalemateIsDraw(t *testing.T) {
	b, side, err := board.ParseFEN("k7/8/1QK5/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	m := NewMatchFrom(b, side)
	if got := m.Result(); got != Draw {
		t.Errorf("Result = %v, want Draw", got)
	}
	res := m.Outcome(board.White, storage.ModeHumanVsHuman, engine.Medium)
	if !res.Draw || res.Won {
		t.Errorf("Outcome = %+v, want a draw", res)
	}
}
