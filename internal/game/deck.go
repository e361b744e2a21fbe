package game

import "math/rand"

// Deck is the shuffled card set laid out row-major on a Side×Side grid.
type Deck struct {
	Side  int
	Pairs int
	Cards []*Card

	grid []*Card // row-major slot index → card, nil for empty slots
}

// BuildDeck creates Pairs pairs of cards, using faces in order and falling back
// to blank faces when the pool runs out. If the grid has a slot left over, one
// filler card is added. Cards are shuffled with rng and placed row-major.
//
// pairCount is clamped to what fits on the grid. side < 1 yields an empty deck.
func BuildDeck(side, pairCount int, faces []string, rng *rand.Rand) *Deck {
	if side < 1 {
		return &Deck{}
	}
	total := side * side
	if pairCount < 0 {
		pairCount = 0
	}
	if pairCount > total/2 {
		pairCount = total / 2
	}

	usable := min(pairCount, len(faces))
	cards := make([]*Card, 0, total)
	for i := 0; i < pairCount; i++ {
		face := ""
		if i < usable {
			face = faces[i]
		}
		cards = append(cards, &Card{Face: face, PairID: i}, &Card{Face: face, PairID: i})
	}
	if len(cards) < total {
		cards = append(cards, &Card{PairID: FillerPairID})
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	d := &Deck{
		Side:  side,
		Pairs: pairCount,
		Cards: make([]*Card, 0, len(cards)),
		grid:  make([]*Card, total),
	}
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			idx := row*side + col
			if idx >= len(cards) {
				continue
			}
			c := cards[idx]
			c.Pos = Position{Row: row, Col: col}
			d.grid[idx] = c
			d.Cards = append(d.Cards, c)
		}
	}
	return d
}

// At returns the card at (row, col), or nil when the slot is off-grid or empty.
func (d *Deck) At(row, col int) *Card {
	if row < 0 || col < 0 || row >= d.Side || col >= d.Side {
		return nil
	}
	return d.grid[row*d.Side+col]
}

// Filler returns the padding card, if the deck has one.
func (d *Deck) Filler() *Card {
	for _, c := range d.Cards {
		if c.Filler() {
			return c
		}
	}
	return nil
}

// Partner returns the other card of c's pair, or nil for the filler.
func (d *Deck) Partner(c *Card) *Card {
	if c == nil || c.Filler() {
		return nil
	}
	for _, o := range d.Cards {
		if o != c && o.PairID == c.PairID {
			return o
		}
	}
	return nil
}

// Hidden returns the cards that are neither revealed nor matched, row-major.
func (d *Deck) Hidden() []*Card {
	var out []*Card
	for _, c := range d.Cards {
		if !c.Revealed && !c.Matched {
			out = append(out, c)
		}
	}
	return out
}
