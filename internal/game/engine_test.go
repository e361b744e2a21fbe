package game

import (
	"testing"
	"time"
)

func TestEngine_MatchScenario(t *testing.T) {
	e := NewEngine(8, time.Second)
	a := &Card{Face: "x", PairID: 3}
	b := &Card{Face: "x", PairID: 3}

	if out := e.RequestReveal(a); out != OutcomeRevealed {
		t.Fatalf("expected revealed, got %s", out)
	}
	if e.Phase() != PhaseOneRevealed {
		t.Fatalf("expected one_revealed, got %s", e.Phase())
	}
	if out := e.RequestReveal(b); out != OutcomeMatch {
		t.Fatalf("expected match, got %s", out)
	}
	if !a.Matched || !b.Matched {
		t.Fatal("both cards should be matched")
	}
	if e.Matches() != 1 || e.Attempts() != 1 {
		t.Fatalf("expected matches=1 attempts=1, got matches=%d attempts=%d", e.Matches(), e.Attempts())
	}
	if len(e.Pending()) != 0 || e.Phase() != PhaseIdle {
		t.Fatalf("expected nothing pending, got %d (%s)", len(e.Pending()), e.Phase())
	}
}

func TestEngine_MismatchConcealsAfterCountdown(t *testing.T) {
	e := NewEngine(8, time.Second)
	a := &Card{Face: "x", PairID: 0}
	c := &Card{Face: "y", PairID: 1}

	e.RequestReveal(a)
	if out := e.RequestReveal(c); out != OutcomeMismatch {
		t.Fatalf("expected mismatch, got %s", out)
	}
	if e.Attempts() != 1 || e.Matches() != 0 {
		t.Fatalf("expected attempts=1 matches=0, got attempts=%d matches=%d", e.Attempts(), e.Matches())
	}
	if a.Matched || c.Matched {
		t.Fatal("mismatched cards must not be matched")
	}
	if e.Phase() != PhaseResolving {
		t.Fatalf("expected resolving, got %s", e.Phase())
	}

	if e.Tick(600 * time.Millisecond) {
		t.Fatal("countdown fired early")
	}
	if !a.Revealed || !c.Revealed {
		t.Fatal("both cards should stay visible until the countdown fires")
	}
	if got := e.Remaining(); got != 400*time.Millisecond {
		t.Fatalf("expected 400ms remaining, got %s", got)
	}
	if !e.Tick(400 * time.Millisecond) {
		t.Fatal("countdown should fire once the delay has elapsed")
	}
	if a.Revealed || c.Revealed {
		t.Fatal("both cards should be concealed")
	}
	if e.Phase() != PhaseIdle || len(e.Pending()) != 0 {
		t.Fatalf("expected idle with nothing pending, got %s", e.Phase())
	}
	// Idempotent with no active countdown.
	if e.Tick(time.Second) {
		t.Fatal("tick with no countdown must be a no-op")
	}
	if e.Attempts() != 1 {
		t.Fatalf("attempts changed by idle tick: %d", e.Attempts())
	}
}

func TestEngine_MismatchBlankVsFace(t *testing.T) {
	e := NewEngine(2, time.Second)
	a := &Card{Face: "x", PairID: 0}
	b := &Card{PairID: 1}
	e.RequestReveal(a)
	if out := e.RequestReveal(b); out != OutcomeMismatch {
		t.Fatalf("expected mismatch, got %s", out)
	}
}

func TestEngine_RevealWhileResolvingIgnored(t *testing.T) {
	e := NewEngine(8, time.Second)
	a := &Card{Face: "x", PairID: 0}
	c := &Card{Face: "y", PairID: 1}
	d := &Card{Face: "x", PairID: 0}
	e.RequestReveal(a)
	e.RequestReveal(c)

	if out := e.RequestReveal(d); out != OutcomeIgnored {
		t.Fatalf("expected ignored, got %s", out)
	}
	if d.Revealed {
		t.Fatal("third card must not be revealed")
	}
	if e.Attempts() != 1 || len(e.Pending()) != 2 {
		t.Fatalf("state changed: attempts=%d pending=%d", e.Attempts(), len(e.Pending()))
	}
}

func TestEngine_IgnoresRevealedMatchedAndNil(t *testing.T) {
	e := NewEngine(8, time.Second)
	a := &Card{Face: "x", PairID: 0}
	e.RequestReveal(a)
	if out := e.RequestReveal(a); out != OutcomeIgnored {
		t.Fatalf("re-revealing the pending card: expected ignored, got %s", out)
	}
	m := &Card{Face: "z", PairID: 5, Matched: true}
	if out := e.RequestReveal(m); out != OutcomeIgnored {
		t.Fatalf("revealing a matched card: expected ignored, got %s", out)
	}
	if out := e.RequestReveal(nil); out != OutcomeIgnored {
		t.Fatalf("nil card: expected ignored, got %s", out)
	}
	if e.Attempts() != 0 || len(e.Pending()) != 1 {
		t.Fatalf("expected attempts=0 pending=1, got attempts=%d pending=%d", e.Attempts(), len(e.Pending()))
	}
}

func TestEngine_FillerNeverMatches(t *testing.T) {
	e := NewEngine(1, time.Second)
	f := &Card{PairID: FillerPairID}
	b := &Card{PairID: 0}
	if out := e.RequestReveal(f); out != OutcomeRevealed {
		t.Fatalf("filler should be revealable, got %s", out)
	}
	if out := e.RequestReveal(b); out != OutcomeMismatch {
		t.Fatalf("expected mismatch, got %s", out)
	}
	e.ResolveNow()
	if f.Revealed {
		t.Fatal("filler should be concealed again")
	}
	if out := e.RequestReveal(f); out != OutcomeRevealed {
		t.Fatalf("filler should stay revealable, got %s", out)
	}
}

func TestEngine_WonExactlyAtPairCount(t *testing.T) {
	e := NewEngine(2, time.Second)
	p0a, p0b := &Card{Face: "a", PairID: 0}, &Card{Face: "a", PairID: 0}
	p1a, p1b := &Card{Face: "b", PairID: 1}, &Card{Face: "b", PairID: 1}

	e.RequestReveal(p0a)
	if out := e.RequestReveal(p0b); out != OutcomeMatch {
		t.Fatalf("expected match, got %s", out)
	}
	if e.IsWon() {
		t.Fatal("must not be won at pairs-1 matches")
	}
	e.RequestReveal(p1a)
	if out := e.RequestReveal(p1b); out != OutcomeWon {
		t.Fatalf("expected won, got %s", out)
	}
	if !e.IsWon() {
		t.Fatal("expected won")
	}
}

func TestEngine_ResolveNowAndCancel(t *testing.T) {
	e := NewEngine(8, time.Second)
	if e.ResolveNow() {
		t.Fatal("ResolveNow with nothing showing must be a no-op")
	}

	a, c := &Card{Face: "x", PairID: 0}, &Card{Face: "y", PairID: 1}
	e.RequestReveal(a)
	e.RequestReveal(c)
	if !e.ResolveNow() || a.Revealed || c.Revealed {
		t.Fatal("ResolveNow should conceal the mismatch immediately")
	}

	a2, c2 := &Card{Face: "x", PairID: 0}, &Card{Face: "y", PairID: 1}
	e.RequestReveal(a2)
	e.RequestReveal(c2)
	e.Cancel()
	if e.Tick(10 * time.Second) {
		t.Fatal("cancelled countdown must never fire")
	}
	if !a2.Revealed || !c2.Revealed {
		t.Fatal("cancel discards the countdown without concealing")
	}
	if e.Phase() != PhaseIdle || len(e.Pending()) != 0 {
		t.Fatalf("expected idle with nothing pending, got %s with %d pending", e.Phase(), len(e.Pending()))
	}
	if e.ResolveNow() {
		t.Fatal("nothing left to resolve after cancel")
	}
	fresh := &Card{Face: "z", PairID: 2}
	if out := e.RequestReveal(fresh); out != OutcomeRevealed {
		t.Fatalf("expected reveal after cancel, got %s", out)
	}
	if e.Phase() != PhaseOneRevealed {
		t.Fatalf("expected one revealed, got %s", e.Phase())
	}
}

func TestNewEngine_DefaultDelay(t *testing.T) {
	e := NewEngine(1, 0)
	a, c := &Card{Face: "x", PairID: 0}, &Card{Face: "y", PairID: 1}
	e.RequestReveal(a)
	e.RequestReveal(c)
	if got := e.Remaining(); got != DefaultRevealDelay {
		t.Fatalf("expected %s, got %s", DefaultRevealDelay, got)
	}
}
