package game

import (
	"strings"
	"testing"
)

// findEntry returns the first entry with the given category and key whose
// value contains substr.
func findEntry(el *EventLog, category, key, substr string) (EventLogEntry, bool) {
	for _, e := range el.entries {
		if e.Category == category && e.Key == key && strings.Contains(e.Value, substr) {
			return e, true
		}
	}
	return EventLogEntry{}, false
}

func TestEventLog_TallyPerDeal(t *testing.T) {
	el := NewEventLog(false)
	el.record(EventLogEntry{Frame: 1, GameID: "deal-one-0000", Category: EventDeal, Key: "new"})
	el.record(EventLogEntry{Frame: 5, GameID: "deal-one-0000", Category: EventMismatch, Key: "no_match"})
	el.record(EventLogEntry{Frame: 9, GameID: "deal-one-0000", Category: EventMatch, Key: "pair_found"})
	el.record(EventLogEntry{Frame: 12, GameID: "deal-two-0000", Category: EventMatch, Key: "pair_found"})
	el.record(EventLogEntry{Frame: 14, GameID: "deal-two-0000", Category: EventWon, Key: "cleared"})
	el.recordDetail(EventLogEntry{Frame: 13, GameID: "deal-two-0000", Category: EventReveal, Key: "first"})

	one := el.Tally("deal-one-0000")
	if one.Matches != 1 || one.Mismatches != 1 || one.WonFrame != -1 {
		t.Fatalf("unexpected tally for first deal: %+v", one)
	}
	two := el.Tally("deal-two-0000")
	if two.Matches != 1 || two.WonFrame != 14 {
		t.Fatalf("unexpected tally for second deal: %+v", two)
	}
	if two.Reveals != 0 {
		t.Fatalf("detail entry should be dropped, got %d reveals", two.Reveals)
	}
	if n := len(el.forDeal("deal-one-0000")); n != 3 {
		t.Fatalf("expected 3 entries for the first deal, got %d", n)
	}
	if got := el.Tally("unknown"); got.Matches != 0 || got.WonFrame != -1 {
		t.Fatalf("unknown deal should have an empty tally, got %+v", got)
	}
}

func TestEventLog_DetailAndFormat(t *testing.T) {
	el := NewEventLog(true)
	el.record(EventLogEntry{Frame: 42, GameID: "1f0c2a9e-77aa", Category: EventMatch, Key: "pair_found", Value: "#3"})
	el.recordDetail(EventLogEntry{Frame: 43, GameID: "1f0c2a9e-77aa", Category: EventReveal, Key: "first", Value: "#5@(0,0)"})
	el.record(EventLogEntry{Frame: 50, Category: EventScreen, Key: "change", Value: "won → menu"})

	if got := el.Tally("1f0c2a9e-77aa").Reveals; got != 1 {
		t.Fatalf("expected the detail reveal to be kept, got %d", got)
	}
	out := el.Format()
	if !strings.HasPrefix(out, "[F=0042] 1f0c2a9e match") {
		t.Fatalf("unexpected format:\n%s", out)
	}
	if !strings.Contains(out, "[F=0050] --       screen") {
		t.Fatalf("entries without a deal should show --:\n%s", out)
	}
	if strings.Count(out, "\n") != 3 {
		t.Fatalf("expected 3 lines, got:\n%s", out)
	}
}
