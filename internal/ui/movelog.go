package ui

import (
	"fmt"
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Memory-Match/internal/game"
)

const (
	logPanelWidth = 240
	logMaxEntries = 40
	logLineHeight = 14
	logMaxChars   = 37 // debug font is 6px wide
)

// MoveEntry is a single line in the move log.
type MoveEntry struct {
	Frame    int
	Category string
	Message  string
}

// MoveLog is a ring buffer of recent game events rendered as a side panel.
type MoveLog struct {
	entries []MoveEntry
	head    int
	count   int
}

// NewMoveLog creates a move log with a fixed capacity.
func NewMoveLog() *MoveLog {
	return &MoveLog{
		entries: make([]MoveEntry, logMaxEntries),
	}
}

// Add appends an entry, overwriting the oldest once full.
func (ml *MoveLog) Add(frame int, category, msg string) {
	ml.entries[ml.head] = MoveEntry{
		Frame:    frame,
		Category: category,
		Message:  msg,
	}
	ml.head = (ml.head + 1) % logMaxEntries
	if ml.count < logMaxEntries {
		ml.count++
	}
}

// AddEvent converts a session event into a log line. A new deal starts a
// fresh log.
func (ml *MoveLog) AddEvent(e game.EventLogEntry) {
	if e.Category == game.EventDeal {
		ml.Clear()
	}
	ml.Add(e.Frame, e.Category, e.Category+" "+e.Value)
}

// Clear empties the log.
func (ml *MoveLog) Clear() {
	ml.head = 0
	ml.count = 0
}

// Recent returns entries in chronological order (oldest first).
func (ml *MoveLog) Recent() []MoveEntry {
	result := make([]MoveEntry, ml.count)
	for i := 0; i < ml.count; i++ {
		idx := (ml.head - ml.count + i + logMaxEntries) % logMaxEntries
		result[i] = ml.entries[idx]
	}
	return result
}

func categoryColor(category string) color.RGBA {
	switch category {
	case game.EventMatch, game.EventWon:
		return color.RGBA{R: 60, G: 200, B: 90, A: 255}
	case game.EventMismatch:
		return color.RGBA{R: 210, G: 70, B: 70, A: 255}
	case game.EventDeal:
		return color.RGBA{R: 70, G: 110, B: 210, A: 255}
	default:
		return color.RGBA{R: 140, G: 140, B: 140, A: 255}
	}
}

// Draw renders the panel at panelX spanning the full window height.
func (ml *MoveLog) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), float32(panelH), color.RGBA{R: 24, G: 26, B: 32, A: 255}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 70, G: 70, B: 90, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(logPanelWidth), 16, color.RGBA{R: 36, G: 40, B: 52, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "MOVES", panelX+8, 0)

	entries := ml.Recent()
	maxVisible := (panelH - 24) / logLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for i, e := range entries {
		if i == len(entries)-1 {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(logPanelWidth-4), float32(logLineHeight), color.RGBA{R: 44, G: 50, B: 64, A: 200}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, categoryColor(e.Category), false)
		line := truncateRunes(fmt.Sprintf("%5d %s", e.Frame, e.Message), logMaxChars)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += logLineHeight
	}
}

// truncateRunes cuts s to at most n runes.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
