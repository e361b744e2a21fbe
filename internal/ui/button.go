package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// button is a clickable labelled rectangle with a hover colour.
type button struct {
	rect
	label      string
	difficulty string // set on menu buttons
	color      color.RGBA
	hoverColor color.RGBA
	hovered    bool
}

func (b *button) checkHover(mx, my int) bool {
	b.hovered = b.contains(mx, my)
	return b.hovered
}

func (b *button) draw(screen *ebiten.Image) {
	c := b.color
	if b.hovered {
		c = b.hoverColor
	}
	vector.FillRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), c, false)
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, colorBlack, false)
	drawTextCentered(screen, b.label, float64(b.x+b.w/2), float64(b.y+b.h/2), 1, colorBlack)
}

// menuButtons lays out one button per difficulty, centred on the menu screen.
func menuButtons(labels []string, difficulties []string) []*button {
	const (
		bw     = 220
		bh     = 60
		margin = 30
	)
	startY := menuHeight/2 - bh
	fills := []color.RGBA{colorGreen, colorBlue, colorRed}
	hovers := []color.RGBA{
		{R: 100, G: 255, B: 100, A: 255},
		{R: 100, G: 100, B: 255, A: 255},
		{R: 255, G: 100, B: 100, A: 255},
	}
	out := make([]*button, len(labels))
	for i := range labels {
		out[i] = &button{
			rect:       rect{x: menuWidth/2 - bw/2, y: startY + i*(bh+margin), w: bw, h: bh},
			label:      labels[i],
			difficulty: difficulties[i],
			color:      fills[i%len(fills)],
			hoverColor: hovers[i%len(hovers)],
		}
	}
	return out
}
