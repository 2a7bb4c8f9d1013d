package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/starlight/ecs"
)

var background = color.RGBA{245, 245, 240, 255}

type sprites struct {
	Position *Position
	Sprite   *Sprite
}

// newRenderer draws every agent as a filled circle.
func newRenderer(store *ecs.Store) func(screen *ebiten.Image) {
	view := ecs.NewView[sprites](store)
	return func(screen *ebiten.Image) {
		screen.Fill(background)
		for s := range view.Values() {
			c := color.RGBA{s.Sprite.Color[0], s.Sprite.Color[1], s.Sprite.Color[2], 255}
			vector.DrawFilledCircle(screen, s.Position.X, s.Position.Y, s.Sprite.Radius, c, true)
		}
	}
}
