// ChessMaster - a chess game against a small minimax engine, built with Ebitengine
package main

import (
	"log"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pranavtiwari1/chess-master/internal/engine"
	"github.com/pranavtiwari1/chess-master/internal/storage"
	"github.com/pranavtiwari1/chess-master/internal/ui"
)

func main() {
	store, err := storage.Open("")
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	} else {
		defer store.Close()
	}

	eng := engine.NewEngine(engine.WithParallelRoot(runtime.NumCPU()))
	game := ui.NewGame(eng, store)

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("ChessMaster")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
