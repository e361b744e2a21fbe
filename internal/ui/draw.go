package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Memory-Match/internal/game"
)

var (
	colorWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBlack     = color.RGBA{A: 255}
	colorGray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colorLightGray = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorGreen     = color.RGBA{G: 255, A: 255}
	colorRed       = color.RGBA{R: 255, A: 255}
	colorBlue      = color.RGBA{B: 255, A: 255}
	colorDarkGreen = color.RGBA{G: 150, A: 255}
)

// blankPalette colours faces that have no image, keyed by pair id.
var blankPalette = []color.RGBA{
	colorRed,
	colorGreen,
	colorBlue,
	{R: 255, G: 255, A: 255},
	{R: 255, B: 255, A: 255},
	{G: 255, B: 255, A: 255},
}

var uiFace = text.NewGoXFace(basicfont.Face7x13)

// fade scales every channel of the premultiplied colour c by alpha.
func fade(c color.RGBA, alpha float32) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float32(v) * alpha) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}

// drawTextCentered draws s centred on (cx, cy) at an integer scale.
func drawTextCentered(dst *ebiten.Image, s string, cx, cy float64, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, uiFace, op)
}

// drawTextAt draws s with its top-left corner at (x, y).
func drawTextAt(dst *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, uiFace, op)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorWhite)
	switch g.session.Screen() {
	case game.ScreenMenu:
		g.drawMenu(screen)
	case game.ScreenPlaying:
		g.drawBoard(screen)
	case game.ScreenWon:
		g.drawBoard(screen)
		g.drawWon(screen)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	drawTextCentered(screen, g.cfg.WindowTitle, menuWidth/2, 100, 3, colorBlack)
	drawTextCentered(screen, "Choose a difficulty", menuWidth/2, 170, 2, colorBlack)
	for _, b := range g.menu {
		b.draw(screen)
	}
	drawTextCentered(screen, "click or press 1/2/3", menuWidth/2, menuHeight-40, 1, colorGray)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	g.back.draw(screen)

	deck := g.session.Deck()
	if deck == nil {
		return
	}
	for _, c := range deck.Cards {
		g.drawCard(screen, c)
	}

	st := g.session.Stats()
	y := float64(headerHeight + g.board.boardSize() + 12)
	drawTextAt(screen, fmt.Sprintf("Matches: %d/%d", st.Matches, st.Pairs), boardPad, y, colorBlack)
	drawTextAt(screen, fmt.Sprintf("Attempts: %d", st.Attempts), boardPad, y+20, colorBlack)
	drawTextAt(screen, "Time: "+game.FormatElapsed(st.Elapsed), boardPad+160, y, colorBlack)

	g.moveLog.Draw(screen, g.width-logPanelWidth, g.height)
}

func (g *Game) drawCard(screen *ebiten.Image, c *game.Card) {
	r := g.board.cardRect(c.Pos.Row, c.Pos.Col)
	x, y, w, h := float32(r.x), float32(r.y), float32(r.w), float32(r.h)

	if !c.FaceUp() {
		vector.FillRect(screen, x, y, w, h, colorBlue, false)
		vector.StrokeRect(screen, x, y, w, h, 2, colorBlack, false)
		drawTextCentered(screen, g.cfg.BackLabel, float64(r.x+r.w/2), float64(r.y+r.h/2), 1, colorWhite)
		return
	}

	bg := colorWhite
	alpha := float32(1)
	if c.Matched {
		bg = colorLightGray
		alpha = 0.4
	}
	vector.FillRect(screen, x, y, w, h, bg, false)

	if img := g.faces.Get(c.Face); img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(r.x), float64(r.y))
		op.ColorScale.ScaleAlpha(alpha)
		screen.DrawImage(img, op)
	} else {
		fill := fade(blankPalette[c.ColorKey(len(blankPalette))], alpha)
		vector.FillRect(screen, x+4, y+4, w-8, h-8, fill, false)
	}
	if !c.Matched {
		vector.StrokeRect(screen, x, y, w, h, 2, colorBlack, false)
	}
}

func (g *Game) drawWon(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, float32(g.width-logPanelWidth), float32(g.height), fade(colorWhite, 0.7), false)

	cx := float64(g.width-logPanelWidth) / 2
	cy := float64(g.height) / 2
	st := g.session.Stats()
	drawTextCentered(screen, "Cleared!", cx, cy-40, 3, colorDarkGreen)
	drawTextCentered(screen, fmt.Sprintf("Attempts: %d  Time: %s", st.Attempts, game.FormatElapsed(st.Elapsed)), cx, cy+10, 2, colorBlack)
	drawTextCentered(screen, "R restart / M menu / C copy", cx, cy+45, 1, colorBlack)
	if g.status != "" {
		drawTextCentered(screen, g.status, cx, cy+70, 1, colorGray)
	}
}
