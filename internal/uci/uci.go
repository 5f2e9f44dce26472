// Package uci implements a UCI-flavoured line protocol around the rules
// and search engines.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pranavtiwari1/chess-master/internal/board"
	"github.com/pranavtiwari1/chess-master/internal/engine"
)

// UCI is the protocol handler. It tracks the current position, the side to
// move and the last move played, which en passant needs.
type UCI struct {
	engine *engine.Engine
	out    io.Writer
	errOut io.Writer

	board board.Board
	side  board.Color
	last  *board.Move
}

// New creates a new protocol handler writing replies to out and
// diagnostics to errOut.
func New(eng *engine.Engine, out, errOut io.Writer) *UCI {
	u := &UCI{
		engine: eng,
		out:    out,
		errOut: errOut,
	}
	u.reset()
	return u
}

// Run reads commands from in until "quit" or end of input.
func (u *UCI) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !u.Execute(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

// Execute handles a single command line. It returns false after "quit".
func (u *UCI) Execute(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}
	cmd, args := parts[0], parts[1:]

	switch cmd {
	case "uci":
		u.handleUCI()
	case "isready":
		u.println("readyok")
	case "ucinewgame":
		u.reset()
	case "position":
		u.handlePosition(args)
	case "go":
		u.handleGo(args)
	case "moves":
		u.handleMoves(args)
	case "status":
		u.println("status " + u.board.Status(u.side).String())
	case "setoption":
		u.handleSetOption(args)
	case "d":
		u.printf("%s\nFen: %s\n", u.board, u.board.FEN(u.side))
	case "perft":
		u.handlePerft(args)
	case "quit":
		return false
	default:
		u.info("Unknown command: %s", cmd)
	}
	return true
}

// Position returns the current board and side to move.
func (u *UCI) Position() (board.Board, board.Color) {
	return u.board, u.side
}

func (u *UCI) reset() {
	u.board = board.NewBoard()
	u.side = board.White
	u.last = nil
}

// handleUCI responds to the "uci" command.
func (u *UCI) handleUCI() {
	u.println("id name ChessMaster")
	u.println("id author ChessMaster Team")
	u.println("")
	u.printf("option name Difficulty type combo default %s var easy var medium var hard\n", u.engine.Difficulty())
	u.println("uciok")
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	movesAt := slices.Index(args, "moves")
	setup := args
	var moves []string
	if movesAt >= 0 {
		setup, moves = args[:movesAt], args[movesAt+1:]
	}

	switch setup[0] {
	case "startpos":
		u.reset()
	case "fen":
		b, side, err := board.ParseFEN(strings.Join(setup[1:], " "))
		if err != nil {
			u.info("Invalid FEN: %v", err)
			return
		}
		u.board, u.side, u.last = b, side, nil
	default:
		return
	}

	for _, s := range moves {
		m, err := u.parseMove(s)
		if err != nil {
			u.info("Invalid move: %v", err)
			return
		}
		u.play(m)
	}
}

// parseMove turns a coordinate move such as "e2e4" into a move that is
// legal for the side to move in the current position.
func (u *UCI) parseMove(s string) (board.Move, error) {
	if len(s) != 4 {
		return board.Move{}, fmt.Errorf("%q: want a square pair like e2e4", s)
	}
	from, err := board.ParseSquare(s[:2])
	if err != nil {
		return board.Move{}, err
	}
	to, err := board.ParseSquare(s[2:])
	if err != nil {
		return board.Move{}, err
	}

	p := u.board.PieceAt(from)
	if p == board.NoPiece || p.Color() != u.side {
		return board.Move{}, fmt.Errorf("%s: no %s piece on %s", s, u.side, from)
	}
	if !slices.Contains(u.board.LegalMoves(from, u.last), to) {
		return board.Move{}, fmt.Errorf("%s: illegal move", s)
	}
	return board.NewMove(from, to, p), nil
}

func (u *UCI) play(m board.Move) {
	u.board = u.board.ApplyMove(m)
	u.side = u.side.Other()
	u.last = &m
}

// handleGo runs a search for the side to move and prints the best move.
// Formats:
//   - go
//   - go hard
//   - go depth 4
func (u *UCI) handleGo(args []string) {
	diff := u.engine.Difficulty()
	depth := 0

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			if i+1 < len(args) {
				n, err := strconv.Atoi(args[i+1])
				if err != nil || n < 1 {
					u.info("Invalid depth: %s", args[i+1])
					return
				}
				depth = n
				i++
			}
		default:
			d, err := engine.ParseDifficulty(args[i])
			if err != nil {
				u.info("Ignoring go argument: %s", args[i])
				continue
			}
			diff = d
		}
	}

	u.engine.OnInfo = u.sendInfo
	defer func() { u.engine.OnInfo = nil }()

	var move board.Move
	var ok bool
	if depth > 0 {
		move, _, ok = u.engine.SearchDepth(u.board, u.side, depth)
	} else {
		move, ok = u.engine.BestMove(u.board, u.side, diff)
	}

	if !ok {
		u.println("bestmove 0000")
		return
	}
	u.println("bestmove " + move.String())
}

// sendInfo outputs search info in UCI format.
func (u *UCI) sendInfo(info engine.SearchInfo) {
	parts := []string{
		fmt.Sprintf("depth %d", info.Depth),
		fmt.Sprintf("score cp %d", info.Score),
		fmt.Sprintf("nodes %d", info.Nodes),
		fmt.Sprintf("time %d", info.Time.Milliseconds()),
	}
	if info.Time > 0 {
		nps := uint64(float64(info.Nodes) / info.Time.Seconds())
		parts = append(parts, fmt.Sprintf("nps %d", nps))
	}
	if !info.Move.IsZero() {
		parts = append(parts, "pv "+info.Move.String())
	}
	u.println("info " + strings.Join(parts, " "))
}

// handleMoves lists the legal targets of the piece on a square.
func (u *UCI) handleMoves(args []string) {
	if len(args) != 1 {
		u.info("Usage: moves <square>")
		return
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		u.info("%v", err)
		return
	}

	targets := u.board.LegalMoves(sq, u.last)
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.String()
	}
	u.println(strings.TrimSpace("moves " + sq.String() + " " + strings.Join(names, " ")))
}

// handleSetOption processes "setoption" commands.
// Format: setoption name <name> value <value>
func (u *UCI) handleSetOption(args []string) {
	var name, value []string
	var cur *[]string
	for _, arg := range args {
		switch arg {
		case "name":
			cur = &name
		case "value":
			cur = &value
		default:
			if cur != nil {
				*cur = append(*cur, arg)
			}
		}
	}

	switch strings.ToLower(strings.Join(name, " ")) {
	case "difficulty":
		d, err := engine.ParseDifficulty(strings.Join(value, " "))
		if err != nil {
			u.info("%v", err)
			return
		}
		u.engine.SetDifficulty(d)
	default:
		u.info("Unknown option: %s", strings.Join(name, " "))
	}
}

// handlePerft counts leaf positions of the legal move tree.
func (u *UCI) handlePerft(args []string) {
	depth := 3
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			u.info("Invalid depth: %s", args[0])
			return
		}
		depth = n
	}

	start := time.Now()
	nodes := perft(u.board, u.side, u.last, depth)
	elapsed := time.Since(start)

	u.printf("Nodes: %d\n", nodes)
	u.printf("Time: %v\n", elapsed)
}

func perft(b board.Board, side board.Color, last *board.Move, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.LegalMovesFor(side, last) {
		nodes += perft(b.ApplyMove(m), side.Other(), &m, depth-1)
	}
	return nodes
}

func (u *UCI) println(s string) {
	fmt.Fprintln(u.out, s)
}

func (u *UCI) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

// info writes a diagnostic line to the error stream.
func (u *UCI) info(format string, args ...any) {
	fmt.Fprintf(u.errOut, "info string "+format+"\n", args...)
}
