package game

import (
	"fmt"
	"strings"
	"time"
)

// Grade rates how efficiently a board was cleared.
type Grade int

const (
	GradeNone Grade = iota // not cleared
	GradeD
	GradeC
	GradeB
	GradeA
	GradeS // every attempt was a match
)

func (g Grade) String() string {
	switch g {
	case GradeS:
		return "S"
	case GradeA:
		return "A"
	case GradeB:
		return "B"
	case GradeC:
		return "C"
	case GradeD:
		return "D"
	default:
		return "-"
	}
}

// GradeFor grades a cleared board by attempts per pair.
func GradeFor(pairs, attempts int, won bool) Grade {
	if !won || pairs <= 0 {
		return GradeNone
	}
	ratio := float64(attempts) / float64(pairs)
	switch {
	case attempts <= pairs:
		return GradeS
	case ratio <= 1.5:
		return GradeA
	case ratio <= 2.0:
		return GradeB
	case ratio <= 3.0:
		return GradeC
	default:
		return GradeD
	}
}

// GameReport is the end-of-deal summary used by the headless report.
type GameReport struct {
	GameID     string
	Difficulty string
	Strategy   Strategy
	Seed       int64
	Won        bool
	Frames     int
	Pairs      int
	Matches    int
	Attempts   int
	Elapsed    time.Duration
	Grade      Grade
}

// NewGameReport snapshots the session's current deal.
func NewGameReport(s *Session, st Strategy, seed int64) GameReport {
	stats := s.Stats()
	won := s.Screen() == ScreenWon
	return GameReport{
		GameID:     stats.GameID,
		Difficulty: stats.Difficulty,
		Strategy:   st,
		Seed:       seed,
		Won:        won,
		Frames:     s.Frame(),
		Pairs:      stats.Pairs,
		Matches:    stats.Matches,
		Attempts:   stats.Attempts,
		Elapsed:    stats.Elapsed,
		Grade:      GradeFor(stats.Pairs, stats.Attempts, won),
	}
}

// Efficiency is pairs per attempt; 1.0 is a perfect clear.
func (r GameReport) Efficiency() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Matches) / float64(r.Attempts)
}

// FormatReports renders reports as a fixed-width table.
func FormatReports(reports []GameReport) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-8s %-7s %-7s %6s %5s %8s %7s %5s %5s\n",
		"game", "diff", "strat", "seed", "won", "attempts", "frames", "eff", "grade")
	for _, r := range reports {
		id := r.GameID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Fprintf(&sb, "%-8s %-7s %-7s %6d %5t %8d %7d %5.2f %5s\n",
			id, r.Difficulty, r.Strategy, r.Seed, r.Won, r.Attempts, r.Frames, r.Efficiency(), r.Grade)
	}
	return sb.String()
}
