package ui

import "github.com/Garsondee/Memory-Match/internal/game"

const (
	menuWidth  = 800
	menuHeight = 600

	headerHeight = 50 // back-to-menu button strip above the board
	footerHeight = 70 // score strip below the board
	boardPad     = 10
	minWindow    = 400
)

// rect is an axis-aligned screen rectangle.
type rect struct {
	x int
	y int
	w int
	h int
}

func (r rect) contains(px, py int) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

// boardLayout maps grid slots to screen pixels for one deal.
type boardLayout struct {
	side   int
	card   int
	margin int
}

// boardSize is the pixel width (and height) of the card grid.
func (b boardLayout) boardSize() int {
	if b.side <= 0 {
		return 0
	}
	return b.side*(b.card+b.margin) - b.margin
}

// cardRect returns the on-screen rectangle of the card at (row, col).
func (b boardLayout) cardRect(row, col int) rect {
	return rect{
		x: boardPad + col*(b.card+b.margin),
		y: headerHeight + row*(b.card+b.margin),
		w: b.card,
		h: b.card,
	}
}

// cardAt converts a cursor position to a grid slot. Clicks in the gaps
// between cards miss.
func (b boardLayout) cardAt(mx, my int) (row, col int, ok bool) {
	x := mx - boardPad
	y := my - headerHeight
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	stride := b.card + b.margin
	col, row = x/stride, y/stride
	if col >= b.side || row >= b.side {
		return 0, 0, false
	}
	if x%stride >= b.card || y%stride >= b.card {
		return 0, 0, false
	}
	return row, col, true
}

// WindowSize returns the window size for a screen. Menu uses a fixed size;
// the board screens fit the grid, the score strip and the move log panel,
// never smaller than minWindow in either direction.
func WindowSize(screen game.Screen, side, card, margin int) (int, int) {
	if screen == game.ScreenMenu {
		return menuWidth, menuHeight
	}
	b := boardLayout{side: side, card: card, margin: margin}
	w := max(b.boardSize()+2*boardPad, minWindow) + logPanelWidth
	h := max(headerHeight+b.boardSize()+footerHeight, minWindow)
	return w, h
}
