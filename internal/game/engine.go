package game

import "time"

// DefaultRevealDelay is how long a mismatched pair stays face up.
const DefaultRevealDelay = time.Second

// Phase is the engine's position in the reveal cycle.
type Phase int

const (
	PhaseIdle        Phase = iota // nothing pending
	PhaseOneRevealed              // one card waiting for a partner
	PhaseResolving                // mismatched pair waiting to be concealed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseOneRevealed:
		return "one_revealed"
	case PhaseResolving:
		return "resolving"
	default:
		return "unknown"
	}
}

// Outcome describes what a reveal request did.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // request rejected, state unchanged
	OutcomeRevealed                // first card of a pair turned up
	OutcomeMatch                   // second card matched the first
	OutcomeMismatch                // second card did not match; countdown started
	OutcomeWon                     // match that completed the board
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeRevealed:
		return "revealed"
	case OutcomeMatch:
		return "match"
	case OutcomeMismatch:
		return "mismatch"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// countdown is the deferred re-conceal task. It is owned by the engine and
// checked from Tick, so a discarded engine can never fire it.
type countdown struct {
	active    bool
	remaining time.Duration
}

// Engine is the reveal/match state machine for one deal. It is driven by a
// single caller (the frame loop) and is not safe for concurrent use.
type Engine struct {
	pairs    int
	delay    time.Duration
	pending  []*Card
	matches  int
	attempts int
	conceal  countdown
}

// NewEngine creates an engine that is won after pairs matches. A non-positive
// delay falls back to DefaultRevealDelay.
func NewEngine(pairs int, delay time.Duration) *Engine {
	if delay <= 0 {
		delay = DefaultRevealDelay
	}
	return &Engine{
		pairs:   pairs,
		delay:   delay,
		pending: make([]*Card, 0, 2),
	}
}

// RequestReveal turns c face up. Matched or already revealed cards, and any
// request while a mismatched pair is still showing, are ignored.
func (e *Engine) RequestReveal(c *Card) Outcome {
	if c == nil || c.Matched || c.Revealed || len(e.pending) >= 2 {
		return OutcomeIgnored
	}
	c.Revealed = true
	e.pending = append(e.pending, c)
	if len(e.pending) < 2 {
		return OutcomeRevealed
	}

	e.attempts++
	a, b := e.pending[0], e.pending[1]
	if !Matches(a, b) {
		e.conceal = countdown{active: true, remaining: e.delay}
		return OutcomeMismatch
	}

	a.Matched = true
	b.Matched = true
	e.pending = e.pending[:0]
	e.matches++
	if e.IsWon() {
		return OutcomeWon
	}
	return OutcomeMatch
}

// Tick advances the re-conceal countdown by dt. It returns true on the call
// that conceals the pending pair; with no active countdown it does nothing.
func (e *Engine) Tick(dt time.Duration) bool {
	if !e.conceal.active {
		return false
	}
	e.conceal.remaining -= dt
	if e.conceal.remaining > 0 {
		return false
	}
	e.concealPending()
	return true
}

// ResolveNow conceals a showing mismatch immediately. Reports whether it did.
func (e *Engine) ResolveNow() bool {
	if !e.conceal.active {
		return false
	}
	e.concealPending()
	return true
}

// Cancel drops the pending cards and any countdown without touching the
// cards' flags. The engine is back in PhaseIdle and accepts reveals again.
func (e *Engine) Cancel() {
	e.pending = e.pending[:0]
	e.conceal = countdown{}
}

func (e *Engine) concealPending() {
	for _, c := range e.pending {
		c.Revealed = false
	}
	e.pending = e.pending[:0]
	e.conceal = countdown{}
}

// Phase reports the current reveal phase.
func (e *Engine) Phase() Phase {
	switch {
	case len(e.pending) == 2:
		return PhaseResolving
	case len(e.pending) == 1:
		return PhaseOneRevealed
	default:
		return PhaseIdle
	}
}

// Pending returns a copy of the revealed-but-unresolved cards.
func (e *Engine) Pending() []*Card {
	out := make([]*Card, len(e.pending))
	copy(out, e.pending)
	return out
}

// Remaining returns the time left before a showing mismatch is concealed.
func (e *Engine) Remaining() time.Duration {
	if !e.conceal.active {
		return 0
	}
	return e.conceal.remaining
}

// IsWon reports whether every pair has been found.
func (e *Engine) IsWon() bool {
	return e.matches == e.pairs
}

func (e *Engine) Matches() int  { return e.matches }
func (e *Engine) Attempts() int { return e.attempts }
func (e *Engine) Pairs() int    { return e.pairs }
