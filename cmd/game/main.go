package main

import (
	"log"

	"github.com/Ksunday76/GDD-3400-TheLabyrinth/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowTitle("The Labyrinth")
	ebiten.SetWindowSize(1248, 624)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
