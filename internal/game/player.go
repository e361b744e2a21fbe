package game

import (
	"fmt"
	"math/rand"
	"strings"
)

// Strategy selects how an automatic Player picks cards.
type Strategy int

const (
	StrategyRandom Strategy = iota // uniform over hidden cards, no memory
	StrategyMemory                 // remembers every face it has seen
)

func (st Strategy) String() string {
	switch st {
	case StrategyRandom:
		return "random"
	case StrategyMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// Strategies lists every strategy in report order.
func Strategies() []Strategy {
	return []Strategy{StrategyRandom, StrategyMemory}
}

// ParseStrategy parses a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random":
		return StrategyRandom, nil
	case "memory":
		return StrategyMemory, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (supported: random, memory)", s)
	}
}

// Player is an automatic opponent-free player used by the headless harness.
// It only chooses cards; the caller feeds them to Session.Reveal.
type Player struct {
	strategy Strategy
	rng      *rand.Rand
	deck     *Deck
	seen     map[*Card]struct{}
}

// NewPlayer creates a player seeded for deterministic choices.
func NewPlayer(strategy Strategy, seed int64) *Player {
	return &Player{
		strategy: strategy,
		rng:      rand.New(rand.NewSource(seed)), // #nosec G404 -- autoplay
		seen:     map[*Card]struct{}{},
	}
}

// Strategy returns the player's strategy.
func (p *Player) Strategy() Strategy { return p.strategy }

// Observe remembers every card currently face up. Call it after each reveal.
func (p *Player) Observe(s *Session) {
	d := s.Deck()
	if d == nil {
		return
	}
	p.sync(d)
	for _, c := range d.Cards {
		if c.Revealed && !c.Matched {
			p.seen[c] = struct{}{}
		}
	}
}

// Next returns the card to reveal this frame, or nil when the player has to
// wait (menu, won, or a mismatch still showing).
func (p *Player) Next(s *Session) *Card {
	if s.Screen() != ScreenPlaying {
		return nil
	}
	e := s.Engine()
	if e.Phase() == PhaseResolving {
		return nil
	}
	d := s.Deck()
	p.sync(d)
	hidden := d.Hidden()
	if len(hidden) == 0 {
		return nil
	}
	if p.strategy == StrategyRandom {
		return hidden[p.rng.Intn(len(hidden))]
	}

	var first *Card
	if pending := e.Pending(); len(pending) == 1 {
		first = pending[0]
	}
	if first != nil {
		if c := p.knownPartner(first, hidden); c != nil {
			return c
		}
	} else if c := p.knownPair(hidden); c != nil {
		return c
	}
	if c := p.pickUnseen(hidden); c != nil {
		return c
	}
	return p.pickAny(hidden)
}

func (p *Player) sync(d *Deck) {
	if p.deck != d {
		p.deck = d
		p.seen = map[*Card]struct{}{}
	}
}

func (p *Player) knownPartner(first *Card, hidden []*Card) *Card {
	for _, c := range hidden {
		if _, ok := p.seen[c]; ok && Matches(first, c) {
			return c
		}
	}
	return nil
}

func (p *Player) knownPair(hidden []*Card) *Card {
	for i, a := range hidden {
		if _, ok := p.seen[a]; !ok {
			continue
		}
		for _, b := range hidden[i+1:] {
			if _, ok := p.seen[b]; ok && Matches(a, b) {
				return a
			}
		}
	}
	return nil
}

func (p *Player) pickUnseen(hidden []*Card) *Card {
	var unseen []*Card
	for _, c := range hidden {
		if _, ok := p.seen[c]; !ok {
			unseen = append(unseen, c)
		}
	}
	if len(unseen) == 0 {
		return nil
	}
	return unseen[p.rng.Intn(len(unseen))]
}

// pickAny avoids the filler once every card has been seen.
func (p *Player) pickAny(hidden []*Card) *Card {
	var candidates []*Card
	for _, c := range hidden {
		if !c.Filler() {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		candidates = hidden
	}
	return candidates[p.rng.Intn(len(candidates))]
}
