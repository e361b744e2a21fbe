package game

import (
	"fmt"
	"strings"
)

// Event categories recorded by Session.
const (
	EventDeal     = "deal"
	EventReveal   = "reveal"
	EventMatch    = "match"
	EventMismatch = "mismatch"
	EventConceal  = "conceal"
	EventWon      = "won"
	EventScreen   = "screen"
)

// EventLogEntry is one session event, tagged with the deal it belongs to.
type EventLogEntry struct {
	Frame    int
	GameID   string // empty for menu transitions after a deal is dropped
	Category string
	Key      string
	Value    string
	NumVal   float64
}

// String renders the entry with a shortened game id.
//
//	[F=0042] 1f0c2a9e match    pair_found       #3
func (e EventLogEntry) String() string {
	return fmt.Sprintf("[F=%04d] %-8s %-8s %-16s %s",
		e.Frame, shortGameID(e.GameID), e.Category, e.Key, e.Value)
}

func shortGameID(id string) string {
	if len(id) < 8 {
		return "--"
	}
	return id[:8]
}

// DealTally counts the events of one deal. Reveals and Conceals are only
// recorded when the log keeps detail entries.
type DealTally struct {
	Reveals    int
	Matches    int
	Mismatches int
	Conceals   int
	WonFrame   int // -1 while the deal is not cleared
}

// EventLog keeps every event of a session, indexed by deal. The headless
// report and the tests read it; the window shows the bounded move log instead.
type EventLog struct {
	entries []EventLogEntry
	byDeal  map[string][]int
	detail  bool
}

// NewEventLog creates an empty log. With detail set, single reveals and
// re-conceals are kept as well as pair outcomes.
func NewEventLog(detail bool) *EventLog {
	return &EventLog{byDeal: map[string][]int{}, detail: detail}
}

func (el *EventLog) record(e EventLogEntry) {
	el.byDeal[e.GameID] = append(el.byDeal[e.GameID], len(el.entries))
	el.entries = append(el.entries, e)
}

func (el *EventLog) recordDetail(e EventLogEntry) {
	if el.detail {
		el.record(e)
	}
}

// forDeal returns the entries of one deal in recording order.
func (el *EventLog) forDeal(id string) []EventLogEntry {
	idx := el.byDeal[id]
	out := make([]EventLogEntry, len(idx))
	for i, n := range idx {
		out[i] = el.entries[n]
	}
	return out
}

// Tally counts the pair outcomes (and, in detail mode, reveals and conceals)
// of the deal with the given id.
func (el *EventLog) Tally(id string) DealTally {
	t := DealTally{WonFrame: -1}
	for _, e := range el.forDeal(id) {
		switch e.Category {
		case EventReveal:
			t.Reveals++
		case EventMatch:
			t.Matches++
		case EventMismatch:
			t.Mismatches++
		case EventConceal:
			t.Conceals++
		case EventWon:
			t.WonFrame = e.Frame
		}
	}
	return t
}

// Format renders the whole log, one entry per line.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
