// Package ui implements the chess game UI using Ebitengine.
package ui

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pranavtiwari1/chess-master/internal/board"
	"github.com/pranavtiwari1/chess-master/internal/engine"
	"github.com/pranavtiwari1/chess-master/internal/game"
	"github.com/pranavtiwari1/chess-master/internal/storage"
)

// UI Constants
const (
	ScreenWidth  = 880
	ScreenHeight = 640
	BoardSize    = 640
	SquareSize   = BoardSize / 8
	PanelWidth   = ScreenWidth - BoardSize
)

// Game implements ebiten.Game interface.
type Game struct {
	match *game.Match
	bot   *game.Bot

	// UI state
	selected board.Square
	targets  []board.Square

	// Settings
	prefs *storage.Preferences

	// Storage; nil when the database could not be opened
	storage  *storage.Storage
	stats    *storage.GameStats
	recorded bool

	// Components
	engine   *engine.Engine
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager
}

// NewGame creates a new chess game. store may be nil, in which case
// preferences fall back to defaults and nothing is persisted.
func NewGame(eng *engine.Engine, store *storage.Storage) *Game {
	g := &Game{
		match:    game.NewMatch(),
		selected: board.NoSquare,
		storage:  store,
		engine:   eng,
		renderer: NewRenderer(BoardSize, SquareSize),
		input:    NewInputHandler(),
		feedback: NewFeedbackManager(),
	}
	g.loadPreferences()
	g.bot = game.NewBot(eng, g.prefs.ThinkingDelay)
	g.panel = NewPanel(g)

	g.startBotIfNeeded()
	return g
}

// loadPreferences loads user preferences and statistics from storage.
func (g *Game) loadPreferences() {
	g.prefs = storage.DefaultPreferences()
	if g.storage == nil {
		return
	}

	prefs, err := g.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
	} else {
		g.prefs = prefs
	}

	stats, err := g.storage.LoadStats()
	if err != nil {
		log.Printf("Warning: Failed to load stats: %v", err)
	} else {
		g.stats = stats
	}

	g.engine.SetDifficulty(g.prefs.Difficulty)
	g.renderer.SetFlipped(g.prefs.PlayerColor == board.Black)
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// Update updates the game state.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	g.handleKeys()

	if g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil
	}

	g.handleBoardInput()
	g.checkAIMove()
	g.updateCursor()
	return nil
}

// handleKeys processes keyboard shortcuts.
func (g *Game) handleKeys() {
	switch {
	case IsKeyJustPressed(ebiten.KeyN):
		g.NewGameAction()
	case IsKeyJustPressed(ebiten.KeyDigit1):
		g.SetDifficulty(engine.Easy)
	case IsKeyJustPressed(ebiten.KeyDigit2):
		g.SetDifficulty(engine.Medium)
	case IsKeyJustPressed(ebiten.KeyDigit3):
		g.SetDifficulty(engine.Hard)
	case IsKeyJustPressed(ebiten.KeyM):
		g.ToggleModeAction()
	case IsKeyJustPressed(ebiten.KeyC):
		g.SetPlayerColor(g.prefs.PlayerColor.Other())
	}
}

// updateCursor sets the cursor shape based on what's being hovered.
func (g *Game) updateCursor() {
	if g.panel.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)

	b, side := g.match.Board(), g.match.Side()
	if st := g.match.Status(); st == board.Check || st == board.Checkmate {
		g.renderer.DrawCheck(screen, b.KingSquare(side))
	}

	g.renderer.DrawHighlights(screen, g.selected, g.targets, g.match.LastMove())
	g.renderer.DrawPieces(screen, b)

	g.feedback.Draw(screen)
	g.panel.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// humanToMove reports whether clicks on the board should be accepted.
func (g *Game) humanToMove() bool {
	if g.match.Over() || g.bot.Thinking() {
		return false
	}
	return g.prefs.GameMode == storage.ModeHumanVsHuman || g.match.Side() == g.prefs.PlayerColor
}

// handleBoardInput handles click-to-select and click-to-move.
func (g *Game) handleBoardInput() {
	if !g.input.IsLeftJustPressed() || !g.humanToMove() {
		return
	}

	sq := g.renderer.ScreenToSquare(g.input.MousePosition())
	if !sq.Valid() {
		g.clearSelection()
		return
	}

	// Clicking one of our own pieces (re)selects it
	if p := g.match.Board().PieceAt(sq); p != board.NoPiece && p.Color() == g.match.Side() {
		g.selected = sq
		g.targets = g.match.Targets(sq)
		return
	}

	if g.selected.Valid() {
		g.makeMove(g.selected, sq)
	}
}

// clearSelection clears the current selection.
func (g *Game) clearSelection() {
	g.selected = board.NoSquare
	g.targets = nil
}

// makeMove plays a move for the side to move.
func (g *Game) makeMove(from, to board.Square) {
	mv, err := g.match.Play(from, to)
	g.clearSelection()
	if err != nil {
		log.Printf("[MOVE] %v%v rejected: %v", from, to, err)
		if errors.Is(err, game.ErrIllegalMove) {
			g.feedback.OnInvalidMove("Illegal move")
		}
		return
	}

	log.Printf("[MOVE] %v %v", g.match.Side().Other(), mv)
	g.feedback.OnMoveMade(mv.Captured != board.NoPiece)
	g.checkGameEnd()
	g.startBotIfNeeded()
}

// checkGameEnd reports check and records finished games.
func (g *Game) checkGameEnd() {
	switch g.match.Status() {
	case board.Checkmate:
		g.feedback.OnCheckmate(g.match.Side().Other())
		g.recordGame()
	case board.Stalemate:
		g.feedback.OnStalemate()
		g.recordGame()
	case board.Check:
		g.feedback.OnCheck()
	}
}

// recordGame stores the result of a finished game once.
func (g *Game) recordGame() {
	if g.recorded || g.storage == nil {
		return
	}
	g.recorded = true

	result := g.match.Outcome(g.prefs.PlayerColor, g.prefs.GameMode, g.prefs.Difficulty)
	stats, err := g.storage.RecordGame(result)
	if err != nil {
		log.Printf("Warning: Failed to record game: %v", err)
		return
	}
	g.stats = stats
	log.Printf("[GAME] %s recorded (%d played)", g.match.Result(), stats.GamesPlayed)
}

// startBotIfNeeded starts the computer's turn when it is due.
func (g *Game) startBotIfNeeded() {
	if g.match.Over() || g.bot.Thinking() {
		return
	}
	if g.prefs.GameMode != storage.ModeHumanVsComputer || g.match.Side() == g.prefs.PlayerColor {
		return
	}
	g.bot.Start(g.match.Board(), g.match.Side(), g.prefs.Difficulty)
}

// checkAIMove plays the computer's move once it has arrived.
func (g *Game) checkAIMove() {
	reply, ready := g.bot.Poll()
	if !ready {
		return
	}
	if !reply.OK {
		// No legal move; the status already says mate or stalemate.
		g.checkGameEnd()
		return
	}
	g.makeMove(reply.Move.From, reply.Move.To)
}

// NewGameAction resets the game to the starting position.
func (g *Game) NewGameAction() {
	g.bot.Cancel()
	g.match = game.NewMatch()
	g.recorded = false
	g.clearSelection()
	g.feedback.Reset()

	log.Printf("[GAME] New game: %s, %s, human plays %v",
		g.prefs.GameMode, g.prefs.Difficulty, g.prefs.PlayerColor)

	// If the player chose Black, the computer moves first
	g.startBotIfNeeded()
}

// ToggleModeAction toggles between human vs human and human vs computer.
func (g *Game) ToggleModeAction() {
	if g.prefs.GameMode == storage.ModeHumanVsHuman {
		g.SetMode(storage.ModeHumanVsComputer)
	} else {
		g.SetMode(storage.ModeHumanVsHuman)
	}
}

// SetMode changes the game mode. Switching to human vs computer hands the
// turn to the computer if it is its side to move.
func (g *Game) SetMode(mode storage.GameMode) {
	if g.prefs.GameMode == mode {
		return
	}
	g.prefs.GameMode = mode
	g.savePreferences()

	if mode == storage.ModeHumanVsHuman {
		g.bot.Cancel()
		g.feedback.Notify("Human vs Human")
		return
	}
	g.feedback.Notify("Human vs Computer")
	g.startBotIfNeeded()
}

// SetDifficulty sets the computer's difficulty. A search in progress keeps
// its old difficulty.
func (g *Game) SetDifficulty(d engine.Difficulty) {
	if g.prefs.Difficulty == d {
		return
	}
	g.prefs.Difficulty = d
	g.engine.SetDifficulty(d)
	g.savePreferences()
	g.feedback.Notify("Difficulty: " + d.String())
}

// SetPlayerColor sets the human's color and starts a new game.
func (g *Game) SetPlayerColor(c board.Color) {
	if g.prefs.PlayerColor == c {
		return
	}
	g.prefs.PlayerColor = c
	g.renderer.SetFlipped(c == board.Black)
	g.savePreferences()
	g.NewGameAction()
}

// Mode returns the current game mode.
func (g *Game) Mode() storage.GameMode { return g.prefs.GameMode }

// Difficulty returns the current difficulty.
func (g *Game) Difficulty() engine.Difficulty { return g.prefs.Difficulty }

// PlayerColor returns the color the human plays.
func (g *Game) PlayerColor() board.Color { return g.prefs.PlayerColor }

// SideToMove returns the side to move.
func (g *Game) SideToMove() board.Color { return g.match.Side() }

// History returns the moves played so far.
func (g *Game) History() []board.Move { return g.match.History() }

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool { return g.match.Over() }

// GameResult describes how the game ended.
func (g *Game) GameResult() string { return g.match.Result().String() }

// IsAIThinking reports whether the computer is choosing a move.
func (g *Game) IsAIThinking() bool { return g.bot.Thinking() }

// Stats returns the recorded statistics, nil without storage.
func (g *Game) Stats() *storage.GameStats { return g.stats }
