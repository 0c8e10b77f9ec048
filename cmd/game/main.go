package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rvale/chomp/internal/game"
)

func main() {
	ebiten.SetWindowTitle("Chomp")
	ebiten.SetWindowSize(600, 720)
	if err := ebiten.RunGame(game.New()); err != nil {
		log.Fatal(err)
	}
}
