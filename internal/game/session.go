package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Screen is the top-level state the renderer draws.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
	ScreenWon
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenPlaying:
		return "playing"
	case ScreenWon:
		return "won"
	default:
		return "unknown"
	}
}

// Stats is a snapshot of the current deal's progress.
type Stats struct {
	GameID     string
	Difficulty string
	Pairs      int
	Matches    int
	Attempts   int
	Elapsed    time.Duration
}

// Accuracy is matches per attempt, 0 before the first attempt.
func (st Stats) Accuracy() float64 {
	if st.Attempts == 0 {
		return 0
	}
	return float64(st.Matches) / float64(st.Attempts)
}

// Session owns the screen state and the deck and engine of the current deal.
// A Session lives for the whole program run; decks and engines are replaced on
// every deal and dropped on return to the menu.
type Session struct {
	screen     Screen
	difficulty Difficulty
	deck       *Deck
	engine     *Engine
	gameID     string

	faces   []string
	rng     *rand.Rand
	delay   time.Duration
	frame   int
	elapsed time.Duration

	log      zerolog.Logger
	events   *EventLog
	listener func(EventLogEntry)
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithSeed seeds the shuffle RNG for deterministic deals.
func WithSeed(seed int64) SessionOption {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- card shuffle
	}
}

// WithRevealDelay sets how long a mismatched pair stays visible.
func WithRevealDelay(d time.Duration) SessionOption {
	return func(s *Session) {
		s.delay = d
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l zerolog.Logger) SessionOption {
	return func(s *Session) {
		s.log = l
	}
}

// WithEventLog records every game event into el.
func WithEventLog(el *EventLog) SessionOption {
	return func(s *Session) {
		s.events = el
	}
}

// WithEventListener calls fn for every recorded event, e.g. to feed a UI panel.
func WithEventListener(fn func(EventLogEntry)) SessionOption {
	return func(s *Session) {
		s.listener = fn
	}
}

// NewSession creates a session on the menu screen. faces is the ordered face
// pool from the asset provider; it may be shorter than any difficulty needs.
func NewSession(faces []string, opts ...SessionOption) *Session {
	s := &Session{
		screen: ScreenMenu,
		faces:  append([]string(nil), faces...),
		delay:  DefaultRevealDelay,
		log:    zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- card shuffle
	}
	return s
}

// SelectDifficulty deals a new game at the given difficulty and switches to
// the playing screen. An unknown label leaves the session untouched.
func (s *Session) SelectDifficulty(label string) error {
	d, err := ResolveDifficulty(label)
	if err != nil {
		return err
	}
	s.deal(d)
	return nil
}

// Restart redeals the current difficulty. It works from the won and playing
// screens and reports whether a new deal was made.
func (s *Session) Restart() bool {
	if s.screen == ScreenMenu {
		return false
	}
	s.log.Info().Str("game_id", s.gameID).Str("difficulty", s.difficulty.Label).
		Int("matches", s.engine.Matches()).Int("attempts", s.engine.Attempts()).
		Msg("restart")
	s.deal(s.difficulty)
	return true
}

// ReturnToMenu discards the deck and engine. A showing mismatch is dropped
// without being concealed.
func (s *Session) ReturnToMenu() {
	if s.screen == ScreenMenu {
		return
	}
	if s.engine != nil {
		s.engine.Cancel()
	}
	s.record(EventScreen, "change", fmt.Sprintf("%s → %s", s.screen, ScreenMenu), 0)
	s.log.Info().Str("game_id", s.gameID).Str("from", s.screen.String()).Msg("return to menu")
	s.screen = ScreenMenu
	s.difficulty = Difficulty{}
	s.deck = nil
	s.engine = nil
	s.gameID = ""
	s.elapsed = 0
}

func (s *Session) deal(d Difficulty) {
	if s.engine != nil {
		s.engine.Cancel()
	}
	prev := s.screen
	s.difficulty = d
	s.deck = BuildDeck(d.Side, d.Pairs, s.faces, s.rng)
	s.engine = NewEngine(s.deck.Pairs, s.delay)
	s.gameID = uuid.NewString()
	s.elapsed = 0
	s.screen = ScreenPlaying

	blanks := max(0, s.deck.Pairs-len(s.faces))
	s.record(EventDeal, "new", fmt.Sprintf("%s cards=%d pairs=%d blank_pairs=%d",
		d.Label, len(s.deck.Cards), s.deck.Pairs, blanks), float64(len(s.deck.Cards)))
	if prev != ScreenPlaying {
		s.record(EventScreen, "change", fmt.Sprintf("%s → %s", prev, ScreenPlaying), 0)
	}
	s.log.Info().Str("game_id", s.gameID).Str("difficulty", d.Label).
		Int("cards", len(s.deck.Cards)).Int("blank_pairs", blanks).Msg("deal")
}

// Reveal forwards a reveal request to the engine. Outside the playing screen
// every request is ignored, and so are cards that are not on the current deck.
func (s *Session) Reveal(c *Card) Outcome {
	if s.screen != ScreenPlaying || s.engine == nil {
		return OutcomeIgnored
	}
	if c == nil || s.deck.At(c.Pos.Row, c.Pos.Col) != c {
		return OutcomeIgnored
	}
	out := s.engine.RequestReveal(c)
	switch out {
	case OutcomeIgnored:
		return out
	case OutcomeRevealed:
		s.recordDetail(EventReveal, "first", c.Label(), 0)
	case OutcomeMismatch:
		first := s.engine.pending[0]
		s.record(EventMismatch, "no_match", first.Label()+" + "+c.Label(), float64(s.engine.Attempts()))
		s.log.Debug().Str("game_id", s.gameID).Str("first", first.Label()).Str("second", c.Label()).
			Int("attempts", s.engine.Attempts()).Msg("mismatch")
	case OutcomeMatch, OutcomeWon:
		s.record(EventMatch, "pair_found", fmt.Sprintf("#%d", c.PairID), float64(s.engine.Matches()))
		s.log.Debug().Str("game_id", s.gameID).Int("pair_id", c.PairID).
			Int("matches", s.engine.Matches()).Int("attempts", s.engine.Attempts()).Msg("match")
	}
	if out == OutcomeWon {
		s.screen = ScreenWon
		s.record(EventWon, "cleared", fmt.Sprintf("attempts=%d elapsed=%s",
			s.engine.Attempts(), s.elapsed.Round(time.Millisecond)), float64(s.engine.Attempts()))
		s.record(EventScreen, "change", fmt.Sprintf("%s → %s", ScreenPlaying, ScreenWon), 0)
		s.log.Info().Str("game_id", s.gameID).Str("difficulty", s.difficulty.Label).
			Int("attempts", s.engine.Attempts()).Dur("elapsed", s.elapsed).Msg("won")
	}
	return out
}

// RevealAt reveals the card at (row, col). Empty or off-grid slots are ignored.
func (s *Session) RevealAt(row, col int) Outcome {
	if s.deck == nil {
		return OutcomeIgnored
	}
	return s.Reveal(s.deck.At(row, col))
}

// Tick advances the frame counter, the play clock and the re-conceal
// countdown. It returns true on the frame a mismatched pair is concealed.
func (s *Session) Tick(dt time.Duration) bool {
	s.frame++
	if s.screen != ScreenPlaying || s.engine == nil {
		return false
	}
	s.elapsed += dt
	pending := s.engine.Pending()
	if !s.engine.Tick(dt) {
		return false
	}
	if len(pending) == 2 {
		s.recordDetail(EventConceal, "flip_back", pending[0].Label()+" + "+pending[1].Label(), 0)
	}
	return true
}

func (s *Session) record(category, key, value string, num float64) {
	e := EventLogEntry{Frame: s.frame, GameID: s.gameID, Category: category, Key: key, Value: value, NumVal: num}
	if s.events != nil {
		s.events.record(e)
	}
	if s.listener != nil {
		s.listener(e)
	}
}

func (s *Session) recordDetail(category, key, value string, num float64) {
	if s.events != nil {
		s.events.recordDetail(EventLogEntry{Frame: s.frame, GameID: s.gameID, Category: category, Key: key, Value: value, NumVal: num})
	}
}

// Screen returns the current screen.
func (s *Session) Screen() Screen { return s.screen }

// Deck returns the active deck, nil on the menu.
func (s *Session) Deck() *Deck { return s.deck }

// Engine returns the active engine, nil on the menu.
func (s *Session) Engine() *Engine { return s.engine }

// GameID identifies the current deal; empty on the menu.
func (s *Session) GameID() string { return s.gameID }

// Frame returns the number of Tick calls so far.
func (s *Session) Frame() int { return s.frame }

// Faces returns the face pool the session deals from.
func (s *Session) Faces() []string { return s.faces }

// Difficulty returns the active difficulty; ok is false on the menu.
func (s *Session) Difficulty() (d Difficulty, ok bool) {
	if s.screen == ScreenMenu {
		return Difficulty{}, false
	}
	return s.difficulty, true
}

// Stats returns a snapshot of the current deal.
func (s *Session) Stats() Stats {
	st := Stats{GameID: s.gameID, Difficulty: s.difficulty.Label, Elapsed: s.elapsed}
	if s.engine != nil {
		st.Pairs = s.engine.Pairs()
		st.Matches = s.engine.Matches()
		st.Attempts = s.engine.Attempts()
	}
	return st
}

// Summary is a one-line result suitable for sharing.
func (s *Session) Summary() string {
	st := s.Stats()
	if s.screen == ScreenMenu {
		return "Memory Match: no game in progress"
	}
	verb := "in progress"
	if s.screen == ScreenWon {
		verb = "cleared"
	}
	return fmt.Sprintf("Memory Match %s %s: %d/%d pairs, %d attempts, %.0f%% accuracy, %s",
		st.Difficulty, verb, st.Matches, st.Pairs, st.Attempts, st.Accuracy()*100, FormatElapsed(st.Elapsed))
}

// FormatElapsed renders a duration as mm:ss.
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
