package ui

import (
	"bytes"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	// Font faces for text rendering
	regularFace *text.GoTextFace
	boldFace    *text.GoTextFace
	smallFace   *text.GoTextFace
)

const (
	defaultFontSize = 14.0
	titleFontSize   = 16.0
	coordFontSize   = 11.0
)

func init() {
	initFonts()
}

func initFonts() {
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("Failed to load regular font: %v", err)
		return
	}
	regularFace = &text.GoTextFace{Source: regularSource, Size: defaultFontSize}
	smallFace = &text.GoTextFace{Source: regularSource, Size: coordFontSize}

	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("Failed to load bold font: %v", err)
		return
	}
	boldFace = &text.GoTextFace{Source: boldSource, Size: titleFontSize}
}

// MeasureText returns the width and height of the given text.
func MeasureText(s string, face *text.GoTextFace) (width, height float64) {
	if face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}

// drawText draws s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// drawTextCentered draws s centered on (cx, cy).
func drawTextCentered(screen *ebiten.Image, s string, face *text.GoTextFace, cx, cy float64, c color.Color) {
	w, h := MeasureText(s, face)
	drawText(screen, s, face, cx-w/2, cy-h/2, c)
}
