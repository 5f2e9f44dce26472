package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pranavtiwari1/chess-master/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	CheckColor     color.RGBA
	Background     color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		CheckColor:     color.RGBA{255, 100, 100, 180}, // Red
		Background:     color.RGBA{40, 44, 52, 255},
	}
}

// Renderer handles all drawing of the board and pieces.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	flipped    bool // black at the bottom
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
	}
}

// SetFlipped puts black at the bottom of the board when true.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// DrawBoard draws the chess board squares and their coordinates.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	size := float32(r.squareSize)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			c := r.theme.LightSquare
			if (row+col)%2 == 1 {
				c = r.theme.DarkSquare
			}
			x, y := r.SquareToScreen(board.Sq(row, col))
			vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
		}
	}
	r.drawCoordinates(screen)
}

// drawCoordinates draws file letters along the bottom edge and rank
// numbers along the left edge.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	for i := 0; i < 8; i++ {
		// Bottom row of squares on screen.
		fileSq := board.Sq(7, i)
		rankSq := board.Sq(i, 0)
		if r.flipped {
			fileSq = board.Sq(0, 7-i)
			rankSq = board.Sq(i, 7)
		}

		x, y := r.SquareToScreen(fileSq)
		name := fileSq.String()
		drawText(screen, name[:1], smallFace, float64(x+r.squareSize-10), float64(y+r.squareSize-15), r.coordColor(fileSq))

		x, y = r.SquareToScreen(rankSq)
		name = rankSq.String()
		drawText(screen, name[1:], smallFace, float64(x+3), float64(y+2), r.coordColor(rankSq))
	}
}

// coordColor contrasts with the square the label sits on.
func (r *Renderer) coordColor(sq board.Square) color.RGBA {
	if (sq.Row+sq.Col)%2 == 1 {
		return r.theme.LightSquare
	}
	return r.theme.DarkSquare
}

// DrawHighlights draws the last move, the selected square and the legal
// targets of the selection.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Square, targets []board.Square, last *board.Move) {
	if last != nil {
		r.highlightSquare(screen, last.From, r.theme.LastMoveColor)
		r.highlightSquare(screen, last.To, r.theme.LastMoveColor)
	}

	if selected.Valid() {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}

	for _, sq := range targets {
		r.drawLegalMoveIndicator(screen, sq)
	}
}

// DrawCheck highlights the king's square if in check.
func (r *Renderer) DrawCheck(screen *ebiten.Image, kingSq board.Square) {
	r.highlightSquare(screen, kingSq, r.theme.CheckColor)
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if !sq.Valid() {
		return
	}
	x, y := r.SquareToScreen(sq)
	size := float32(r.squareSize)
	vector.DrawFilledRect(screen, float32(x), float32(y), size, size, c, false)
}

// drawLegalMoveIndicator draws a circle on legal move squares.
func (r *Renderer) drawLegalMoveIndicator(screen *ebiten.Image, sq board.Square) {
	x, y := r.SquareToScreen(sq)
	half := float32(r.squareSize) / 2
	radius := float32(r.squareSize) * 0.15
	vector.DrawFilledCircle(screen, float32(x)+half, float32(y)+half, radius, r.theme.LegalMoveColor, false)
}

// DrawPieces draws all pieces on the board.
func (r *Renderer) DrawPieces(screen *ebiten.Image, b board.Board) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := board.Sq(row, col)
			p := b.PieceAt(sq)
			if p == board.NoPiece {
				continue
			}
			x, y := r.SquareToScreen(sq)
			r.sprites.DrawPieceAt(screen, p, x, y)
		}
	}
}

// SquareToScreen converts a board square to the screen coordinates of its
// top-left corner.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	row, col := sq.Row, sq.Col
	if r.flipped {
		row, col = 7-row, 7-col
	}
	return col * r.squareSize, row * r.squareSize
}

// ScreenToSquare converts screen coordinates to a board square, NoSquare
// when the point is off the board.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	row, col := y/r.squareSize, x/r.squareSize
	if r.flipped {
		row, col = 7-row, 7-col
	}
	return board.Sq(row, col)
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
