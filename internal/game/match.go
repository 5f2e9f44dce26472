// Package game tracks a single game between two players and runs the
// computer's turns in the background.
package game

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/pranavtiwari1/chess-master/internal/board"
	"github.com/pranavtiwari1/chess-master/internal/engine"
	"github.com/pranavtiwari1/chess-master/internal/storage"
)

var (
	ErrGameOver     = errors.New("game is over")
	ErrNotYourPiece = errors.New("no piece of the side to move on that square")
	ErrIllegalMove  = errors.New("illegal move")
)

// Result is the outcome of a match.
type Result int

const (
	InProgress Result = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns a sentence describing the result.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return "White wins by checkmate!"
	case BlackWins:
		return "Black wins by checkmate!"
	case Draw:
		return "Draw by stalemate"
	default:
		return "In progress"
	}
}

// Match holds the state of one game: the board, the side to move and the
// moves played so far.
type Match struct {
	board   board.Board
	side    board.Color
	history []board.Move
	status  board.GameStatus
	started time.Time
}

// NewMatch starts a game from the initial position.
func NewMatch() *Match {
	return NewMatchFrom(board.NewBoard(), board.White)
}

// NewMatchFrom starts a game from an arbitrary position.
func NewMatchFrom(b board.Board, side board.Color) *Match {
	return &Match{
		board:   b,
		side:    side,
		status:  b.Status(side),
		started: time.Now(),
	}
}

// Board returns a copy of the current board.
func (m *Match) Board() board.Board { return m.board }

// Side returns the side to move.
func (m *Match) Side() board.Color { return m.side }

// Status returns the status of the side to move.
func (m *Match) Status() board.GameStatus { return m.status }

// History returns the moves played so far.
func (m *Match) History() []board.Move { return slices.Clone(m.history) }

// LastMove returns the most recent move, or nil before the first move.
func (m *Match) LastMove() *board.Move {
	if len(m.history) == 0 {
		return nil
	}
	last := m.history[len(m.history)-1]
	return &last
}

// Over reports whether the side to move is checkmated or stalemated.
func (m *Match) Over() bool {
	return m.status == board.Checkmate || m.status == board.Stalemate
}

// Result returns the outcome, InProgress while the game continues.
func (m *Match) Result() Result {
	switch m.status {
	case board.Checkmate:
		if m.side == board.White {
			return BlackWins
		}
		return WhiteWins
	case board.Stalemate:
		return Draw
	default:
		return InProgress
	}
}

// Elapsed returns the time since the match started.
func (m *Match) Elapsed() time.Duration {
	return time.Since(m.started)
}

// Targets returns the legal destinations of the piece on sq. It is empty
// when the square does not hold a piece of the side to move or the game is
// over.
func (m *Match) Targets(sq board.Square) []board.Square {
	if m.Over() {
		return nil
	}
	p := m.board.PieceAt(sq)
	if p == board.NoPiece || p.Color() != m.side {
		return nil
	}
	return m.board.LegalMoves(sq, m.LastMove())
}

// Play moves the piece on from to to for the side to move.
func (m *Match) Play(from, to board.Square) (board.Move, error) {
	if m.Over() {
		return board.Move{}, ErrGameOver
	}
	p := m.board.PieceAt(from)
	if p == board.NoPiece || p.Color() != m.side {
		return board.Move{}, fmt.Errorf("%s: %w", from, ErrNotYourPiece)
	}
	if !slices.Contains(m.board.LegalMoves(from, m.LastMove()), to) {
		return board.Move{}, fmt.Errorf("%s%s: %w", from, to, ErrIllegalMove)
	}

	mv := board.NewMove(from, to, p)
	mv.Captured = m.board.PieceAt(to)
	m.board = m.board.Apply(from, to)
	m.side = m.side.Other()
	m.history = append(m.history, mv)
	m.status = m.board.Status(m.side)
	return mv, nil
}

// Outcome describes a finished match for the statistics store, seen from
// the human player's side.
func (m *Match) Outcome(player board.Color, mode storage.GameMode, d engine.Difficulty) storage.GameResult {
	res := m.Result()
	return storage.GameResult{
		Won:        (res == WhiteWins && player == board.White) || (res == BlackWins && player == board.Black),
		Draw:       res == Draw,
		Mode:       mode,
		Difficulty: d,
		Duration:   m.Elapsed(),
	}
}
