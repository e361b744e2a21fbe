package game

import "fmt"

// FillerPairID marks the single unpaired card that pads an odd grid.
// No other card ever carries it, so the filler can never match.
const FillerPairID = -1

// Position is a fixed (row, column) slot on the grid.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Card is a single tile. Face is an opaque asset key; the empty string is the
// blank face, drawn as a palette colour keyed by PairID.
//
// Revealed and Matched are tracked separately: a card that is revealed but not
// yet resolved is a different state from a matched one. Matched never reverts.
type Card struct {
	Face     string
	PairID   int
	Pos      Position
	Revealed bool
	Matched  bool
}

// Blank reports whether the card has no face image.
func (c *Card) Blank() bool {
	return c.Face == ""
}

// Filler reports whether this is the unpaired padding card.
func (c *Card) Filler() bool {
	return c.PairID == FillerPairID
}

// FaceUp reports whether the card should be drawn face up.
func (c *Card) FaceUp() bool {
	return c.Revealed || c.Matched
}

// ColorKey maps the card onto a palette of the given size.
func (c *Card) ColorKey(paletteSize int) int {
	if paletteSize <= 0 {
		return 0
	}
	k := c.PairID % paletteSize
	if k < 0 {
		k += paletteSize
	}
	return k
}

// Label is a short identifier used in logs, e.g. "#3@(1,2)" or "filler@(3,3)".
func (c *Card) Label() string {
	if c.Filler() {
		return "filler@" + c.Pos.String()
	}
	return fmt.Sprintf("#%d@%s", c.PairID, c.Pos)
}

// Matches is the match predicate: equal non-blank faces, or two blank faces
// sharing a real pair id. The filler sentinel never matches anything.
func Matches(a, b *Card) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	if !a.Blank() {
		return a.Face == b.Face
	}
	if !b.Blank() {
		return false
	}
	return a.PairID == b.PairID && a.PairID != FillerPairID && b.PairID != FillerPairID
}
