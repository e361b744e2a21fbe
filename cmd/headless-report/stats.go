package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/Garsondee/Memory-Match/internal/game"
)

type runStats struct {
	runIndex int
	wonFrame int // -1 when the frame limit was hit
	tally    game.DealTally
	report   game.GameReport
}

// aggregate summarises a group of runs. Attempt and frame figures cover won
// runs only.
type aggregate struct {
	runs        int
	wins        int
	mismatches  int
	minAttempts int
	maxAttempts int
	sumAttempts int
	sumFrames   int
	grades      map[game.Grade]int
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all), grades: map[game.Grade]int{}}
	for _, rs := range all {
		agg.grades[rs.report.Grade]++
		agg.mismatches += rs.tally.Mismatches
		if !rs.report.Won {
			continue
		}
		a := rs.report.Attempts
		if agg.wins == 0 || a < agg.minAttempts {
			agg.minAttempts = a
		}
		if a > agg.maxAttempts {
			agg.maxAttempts = a
		}
		agg.wins++
		agg.sumAttempts += a
		agg.sumFrames += rs.report.Frames
	}
	return agg
}

func (a aggregate) meanAttempts() float64 { return avg(a.sumAttempts, a.wins) }

func (a aggregate) meanFrames() float64 { return avg(a.sumFrames, a.wins) }

func (a aggregate) meanMismatches() float64 { return avg(a.mismatches, a.runs) }

// gradeLine lists grade counts from best to worst, skipping empty ones.
func (a aggregate) gradeLine() string {
	order := []game.Grade{game.GradeS, game.GradeA, game.GradeB, game.GradeC, game.GradeD, game.GradeNone}
	var parts []string
	for _, g := range order {
		if n := a.grades[g]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", g, n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// ruleWidth is the terminal width, or 80 when stdout is not a terminal.
func ruleWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return min(width, 120)
}

func printHeader(w io.Writer, title string) {
	color.New(color.FgCyan, color.Bold).Fprintf(w, "=== %s ===\n", title)
}

func printGroup(w io.Writer, d game.Difficulty, st game.Strategy, group []runStats) {
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth()))
	color.New(color.FgCyan).Fprintf(w, "%s / %s\n", d, st)

	reports := make([]game.GameReport, len(group))
	for i, rs := range group {
		reports[i] = rs.report
	}
	fmt.Fprint(w, game.FormatReports(reports))

	for _, rs := range group {
		if rs.wonFrame < 0 {
			color.New(color.FgRed).Fprintf(w, "run %d (seed=%d) not cleared: %d/%d pairs after %d frames\n",
				rs.runIndex, rs.report.Seed, rs.report.Matches, rs.report.Pairs, rs.report.Frames)
		}
	}
	printSummaryLine(w, summarize(group))
	fmt.Fprintln(w)
}

func printAggregate(w io.Writer, all []runStats) {
	printHeader(w, "Aggregate")
	printSummaryLine(w, summarize(all))
}

func printSummaryLine(w io.Writer, agg aggregate) {
	winColor := color.New(color.FgGreen)
	if agg.wins < agg.runs {
		winColor = color.New(color.FgYellow)
	}
	winColor.Fprintf(w, "wins=%d/%d", agg.wins, agg.runs)
	fmt.Fprintf(w, " attempts: mean=%.1f min=%d max=%d mismatches_mean=%.1f frames_mean=%.0f grades: %s\n",
		agg.meanAttempts(), agg.minAttempts, agg.maxAttempts, agg.meanMismatches(), agg.meanFrames(), agg.gradeLine())
}
