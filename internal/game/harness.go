package game

import (
	"fmt"
	"time"
)

// FrameDuration is the nominal frame time of the 60 TPS loop.
const FrameDuration = time.Second / 60

// TestSession is a headless harness: it drives a Session with an automatic
// Player one frame at a time, the same way the windowed game's Update does,
// but without Ebiten.
type TestSession struct {
	Session    *Session
	Player     *Player
	EventLog   *EventLog
	Difficulty string
	Seed       int64

	faces    []string
	strategy Strategy
	delay    time.Duration
	verbose  bool
	think    int // frames between player moves
}

// harnessOptionKind controls the pass in which an option is applied.
type harnessOptionKind int

const (
	harnessOptInfra harnessOptionKind = iota // seed, faces, delay, verbose — applied first
	harnessOptPlay                           // difficulty, strategy — applied once the session exists
)

// HarnessOption is a builder function applied to a TestSession during construction.
type HarnessOption struct {
	kind harnessOptionKind
	fn   func(*TestSession)
}

// WithHarnessSeed sets the seed used for both the shuffle and the player.
func WithHarnessSeed(seed int64) HarnessOption {
	return HarnessOption{harnessOptInfra, func(ts *TestSession) {
		ts.Seed = seed
	}}
}

// WithFaces sets the face pool.
func WithFaces(faces ...string) HarnessOption {
	return HarnessOption{harnessOptInfra, func(ts *TestSession) {
		ts.faces = faces
	}}
}

// WithGeneratedFaces adds n distinct synthetic faces "face-00", "face-01", ...
func WithGeneratedFaces(n int) HarnessOption {
	return HarnessOption{harnessOptInfra, func(ts *TestSession) {
		ts.faces = GenerateFaces(n)
	}}
}

// WithHarnessDelay sets the re-conceal delay.
func WithHarnessDelay(d time.Duration) HarnessOption {
	return HarnessOption{harnessOptInfra, func(ts *TestSession) {
		ts.delay = d
	}}
}

// WithVerbose enables per-reveal logging.
func WithVerbose(v bool) HarnessOption {
	return HarnessOption{harnessOptInfra, func(ts *TestSession) {
		ts.verbose = v
	}}
}

// WithThinkFrames makes the player wait n frames between reveals.
func WithThinkFrames(n int) HarnessOption {
	return HarnessOption{harnessOptInfra, func(ts *TestSession) {
		if n < 1 {
			n = 1
		}
		ts.think = n
	}}
}

// WithDifficulty sets the difficulty dealt at construction.
func WithDifficulty(label string) HarnessOption {
	return HarnessOption{harnessOptPlay, func(ts *TestSession) {
		ts.Difficulty = label
	}}
}

// WithStrategy sets the automatic player's strategy.
func WithStrategy(st Strategy) HarnessOption {
	return HarnessOption{harnessOptPlay, func(ts *TestSession) {
		ts.strategy = st
	}}
}

// GenerateFaces returns n distinct synthetic face keys.
func GenerateFaces(n int) []string {
	faces := make([]string, n)
	for i := range faces {
		faces[i] = fmt.Sprintf("face-%02d", i)
	}
	return faces
}

// NewTestSession builds the harness in two passes (infrastructure, then play
// settings) and deals the first game. Defaults: seed 1, EASY, memory player,
// one move per frame.
func NewTestSession(opts ...HarnessOption) (*TestSession, error) {
	ts := &TestSession{
		Seed:       1,
		Difficulty: Easy,
		strategy:   StrategyMemory,
		delay:      DefaultRevealDelay,
		think:      1,
	}
	for _, o := range opts {
		if o.kind == harnessOptInfra {
			o.fn(ts)
		}
	}
	for _, o := range opts {
		if o.kind == harnessOptPlay {
			o.fn(ts)
		}
	}
	ts.EventLog = NewEventLog(ts.verbose)
	ts.Session = NewSession(ts.faces,
		WithSeed(ts.Seed),
		WithRevealDelay(ts.delay),
		WithEventLog(ts.EventLog),
	)
	ts.Player = NewPlayer(ts.strategy, ts.Seed+7777)
	if err := ts.Session.SelectDifficulty(ts.Difficulty); err != nil {
		return nil, fmt.Errorf("deal: %w", err)
	}
	return ts, nil
}

// step runs one frame: input (a player move) first, then the clock.
func (ts *TestSession) step() {
	s := ts.Session
	if s.Frame()%ts.think == 0 {
		if c := ts.Player.Next(s); c != nil {
			s.Reveal(c)
			ts.Player.Observe(s)
		}
	}
	s.Tick(FrameDuration)
}

// RunFrames advances the session n frames.
func (ts *TestSession) RunFrames(n int) {
	for i := 0; i < n; i++ {
		ts.step()
	}
}

// RunUntil advances up to maxFrames, stopping early once predicate returns
// true. Returns the frame at which the predicate held, or -1.
func (ts *TestSession) RunUntil(predicate func(*TestSession) bool, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		if predicate(ts) {
			return ts.Session.Frame()
		}
		ts.step()
	}
	if predicate(ts) {
		return ts.Session.Frame()
	}
	return -1
}

// RunUntilWon plays until the board is cleared. Returns the frame or -1.
func (ts *TestSession) RunUntilWon(maxFrames int) int {
	return ts.RunUntil(func(ts *TestSession) bool {
		return ts.Session.Screen() == ScreenWon
	}, maxFrames)
}

// Report summarises the current deal.
func (ts *TestSession) Report() GameReport {
	return NewGameReport(ts.Session, ts.Player.Strategy(), ts.Seed)
}
