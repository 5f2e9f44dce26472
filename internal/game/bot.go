package game

import (
	"context"
	"log"
	"time"

	"github.com/pranavtiwari1/chess-master/internal/board"
	"github.com/pranavtiwari1/chess-master/internal/engine"
)

// Reply is the computer's answer to one turn. OK is false when it had no
// legal move.
type Reply struct {
	Move board.Move
	OK   bool
}

// Bot plays the computer's turns. A search runs on a copy of the board in
// its own goroutine; the reply is held back until the thinking delay has
// passed. Bot itself is meant to be used from a single goroutine, such as
// the game loop.
type Bot struct {
	engine *engine.Engine
	delay  time.Duration

	pending chan Reply
}

// NewBot creates a bot that searches with eng.
func NewBot(eng *engine.Engine, delay time.Duration) *Bot {
	return &Bot{engine: eng, delay: max(delay, 0)}
}

// SetDelay changes the thinking delay for future turns.
func (b *Bot) SetDelay(d time.Duration) {
	b.delay = max(d, 0)
}

// Thinking reports whether a turn is in progress.
func (b *Bot) Thinking() bool {
	return b.pending != nil
}

// Start begins a turn for side c. A turn already in progress is abandoned.
func (b *Bot) Start(pos board.Board, c board.Color, d engine.Difficulty) {
	ch := make(chan Reply, 1)
	b.pending = ch

	log.Printf("[AI] Starting %s search for %v", d, c)
	eng, delay := b.engine, b.delay
	go func() {
		start := time.Now()
		move, ok := eng.BestMove(pos, c, d)
		if wait := delay - time.Since(start); wait > 0 {
			time.Sleep(wait)
		}
		ch <- Reply{Move: move, OK: ok}
	}()
}

// Poll returns the reply of the current turn if it is ready.
func (b *Bot) Poll() (Reply, bool) {
	if b.pending == nil {
		return Reply{}, false
	}
	select {
	case r := <-b.pending:
		b.pending = nil
		log.Printf("[AI] Received move from engine: %v", r.Move)
		return r, true
	default:
		return Reply{}, false
	}
}

// Wait blocks until the current turn finishes or ctx is done.
func (b *Bot) Wait(ctx context.Context) (Reply, error) {
	if b.pending == nil {
		return Reply{}, nil
	}
	select {
	case r := <-b.pending:
		b.pending = nil
		return r, nil
	case <-ctx.Done():
		return Reply{}, ctx.Err()
	}
}

// Cancel abandons the current turn. The search goroutine still runs to
// completion but its reply is dropped.
func (b *Bot) Cancel() {
	b.pending = nil
}
