package ui

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/pranavtiwari1/chess-master/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// SpriteManager manages piece sprites.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size
	renderScale float64 // Render at higher resolution for quality
}

// NewSpriteManager creates a new sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	sm.loadPieces()
	return sm
}

// pieceAsset returns the embedded file name of a piece, e.g. "wN.svg".
func pieceAsset(p board.Piece) string {
	side := "w"
	if p.Color() == board.Black {
		side = "b"
	}
	return fmt.Sprintf("assets/pieces/%s%s.svg", side, board.NewPiece(p.Type(), board.White))
}

// loadPieces rasterizes every piece from the embedded SVG files.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for p := board.WhitePawn; p <= board.BlackKing; p++ {
		img, err := rasterizePiece(pieceAsset(p), renderSize)
		if err != nil {
			log.Printf("Warning: piece %v not loaded: %v", p, err)
			continue
		}
		sm.pieces[p] = ebiten.NewImageFromImage(img)
	}
}

func rasterizePiece(path string, size int) (*image.RGBA, error) {
	data, err := pieceAssets.ReadFile(path)
	if err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// DrawPieceAt draws a piece with its top-left corner at the given pixel
// coordinates.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int) {
	sprite := sm.pieces[p]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}
