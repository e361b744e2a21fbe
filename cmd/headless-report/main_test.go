package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/Garsondee/Memory-Match/internal/game"
)

func wonRun(attempts, frames int) runStats {
	return runStats{
		wonFrame: frames,
		tally:    game.DealTally{Matches: 8, Mismatches: attempts - 8, WonFrame: frames},
		report: game.GameReport{
			Won:      true,
			Pairs:    8,
			Matches:  8,
			Attempts: attempts,
			Frames:   frames,
			Grade:    game.GradeFor(8, attempts, true),
		},
	}
}

func TestSummarize_WonRunsOnly(t *testing.T) {
	lost := runStats{wonFrame: -1, tally: game.DealTally{Matches: 3, Mismatches: 37, WonFrame: -1}, report: game.GameReport{Pairs: 8, Matches: 3, Attempts: 40, Frames: 999}}
	agg := summarize([]runStats{wonRun(10, 100), lost, wonRun(14, 300)})

	if agg.runs != 3 || agg.wins != 2 {
		t.Fatalf("expected 2/3 wins, got %d/%d", agg.wins, agg.runs)
	}
	if agg.minAttempts != 10 || agg.maxAttempts != 14 {
		t.Fatalf("expected attempts 10..14, got %d..%d", agg.minAttempts, agg.maxAttempts)
	}
	if agg.meanAttempts() != 12 {
		t.Fatalf("expected mean attempts 12, got %.1f", agg.meanAttempts())
	}
	// (2 + 37 + 6) / 3 runs; lost runs count towards mismatches.
	if agg.meanMismatches() != 15 {
		t.Fatalf("expected mean mismatches 15, got %.1f", agg.meanMismatches())
	}
	if agg.meanFrames() != 200 {
		t.Fatalf("expected mean frames 200, got %.1f", agg.meanFrames())
	}
	if agg.grades[game.GradeNone] != 1 {
		t.Fatalf("expected one ungraded run, got %d", agg.grades[game.GradeNone])
	}
}

func TestSummarize_Empty(t *testing.T) {
	agg := summarize(nil)
	if agg.wins != 0 || agg.meanAttempts() != 0 || agg.meanFrames() != 0 {
		t.Fatalf("expected zero aggregate, got %+v", agg)
	}
	if agg.gradeLine() != "none" {
		t.Fatalf("expected grade line none, got %q", agg.gradeLine())
	}
}

func TestGradeLine_BestFirst(t *testing.T) {
	agg := summarize([]runStats{wonRun(16, 10), wonRun(8, 10), wonRun(8, 10)})
	if got := agg.gradeLine(); got != "S=2 B=1" {
		t.Fatalf("expected %q, got %q", "S=2 B=1", got)
	}
}

func TestSelectDifficulties(t *testing.T) {
	all, err := selectDifficulties("ALL")
	if err != nil || len(all) != 3 {
		t.Fatalf("expected all three difficulties, got %v err=%v", all, err)
	}
	one, err := selectDifficulties("hard")
	if err != nil || len(one) != 1 || one[0].Label != game.Hard {
		t.Fatalf("expected HARD, got %v err=%v", one, err)
	}
	if _, err := selectDifficulties("extreme"); !errors.Is(err, game.ErrUnknownDifficulty) {
		t.Fatalf("expected ErrUnknownDifficulty, got %v", err)
	}
}

func TestSelectStrategies(t *testing.T) {
	all, err := selectStrategies("all")
	if err != nil || len(all) != len(game.Strategies()) {
		t.Fatalf("expected every strategy, got %v err=%v", all, err)
	}
	if _, err := selectStrategies("cheat"); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestRunReport_Output(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	err := runReport(&buf, reportFlags{
		runs:       2,
		seedBase:   7,
		seedStep:   3,
		difficulty: "easy",
		strategy:   "memory",
		maxFrames:  100000,
		thinkEvery: 1,
		faces:      -1,
	})
	if err != nil {
		t.Fatalf("runReport: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Headless Memory Report", "EASY (4x4) / memory", "wins=2/2", "mismatches_mean=", "Aggregate"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestRunReport_RejectsBadFlags(t *testing.T) {
	var buf bytes.Buffer
	if err := runReport(&buf, reportFlags{runs: 0, maxFrames: 10, difficulty: "all", strategy: "all"}); err == nil {
		t.Fatal("expected error for zero runs")
	}
	if err := runReport(&buf, reportFlags{runs: 1, maxFrames: 10, difficulty: "bogus", strategy: "all"}); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"runs", "seed-base", "seed-step", "difficulty", "strategy", "max-frames"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Fatalf("expected flag --%s", name)
		}
	}
}
