package engine

import (
	"testing"

	"github.com/pranavtiwari1/chess-master/internal/board"
)

func TestEvaluateStartIsBalanced(t *testing.T) {
	b := board.NewBoard()
	if got := Evaluate(b, board.White); got != 0 {
		t.Errorf("Evaluate(start, White) = %d, want 0", got)
	}
	if got := Evaluate(b, board.Black); got != 0 {
		t.Errorf("Evaluate(start, Black) = %d, want 0", got)
	}
}

func TestEvaluateHandComputed(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int // from White's perspective
	}{
		// Kings cancel out in every case.
		{"central knight", "4k3/8/8/8/3N4/8/8/4K3 w - - 0 1", 320 + 20},
		{"corner knight", "4k3/8/8/8/8/8/8/N3K3 w - - 0 1", 320},
		{"bishop one step out", "4k3/8/8/8/2B5/8/8/4K3 w - - 0 1", 330 + 10},
		{"pawn two rows up", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", 100 + 20},
		{"black pawn three rows up", "4k3/8/8/8/3p4/8/8/4K3 w - - 0 1", -(100 + 30)},
		{"rook has no bonus", "4k3/8/8/8/3R4/8/8/4K3 w - - 0 1", 500},
		{"queen has no bonus", "4k3/8/8/3q4/8/8/8/4K3 w - - 0 1", -900},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := mustFEN(t, tc.fen)
			if got := Evaluate(b, board.White); got != tc.want {
				t.Errorf("Evaluate(White) = %d, want %d", got, tc.want)
			}
			if got := Evaluate(b, board.Black); got != -tc.want {
				t.Errorf("Evaluate(Black) = %d, want %d", got, -tc.want)
			}
		})
	}
}

func TestCenterProximity(t *testing.T) {
	tests := []struct {
		row, col, want int
	}{
		{3, 3, 2}, {4, 4, 2}, {3, 4, 2},
		{2, 3, 1}, {5, 3, 1}, {2, 2, 0}, // c6 sits three steps out
		{0, 0, 0}, {7, 7, 0}, {0, 3, 0},
	}
	for _, tc := range tests {
		if got := centerProximity(tc.row, tc.col); got != tc.want {
			t.Errorf("centerProximity(%d, %d) = %d, want %d", tc.row, tc.col, got, tc.want)
		}
	}
}
