package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Garsondee/Memory-Match/internal/game"
)

type reportFlags struct {
	runs       int
	seedBase   int64
	seedStep   int64
	difficulty string
	strategy   string
	maxFrames  int
	thinkEvery int
	faces      int
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var f reportFlags
	cmd := &cobra.Command{
		Use:   "headless-report",
		Short: "Play seeded memory games without a window and summarise the results",
		Long: `headless-report deals seeded boards, lets a scripted player clear them
frame by frame and prints a per-run table followed by aggregate statistics.
Use it to compare player strategies and to check that every difficulty can
be cleared.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().IntVar(&f.runs, "runs", 5, "number of games per difficulty and strategy")
	cmd.Flags().Int64Var(&f.seedBase, "seed-base", 42, "base RNG seed for run 1")
	cmd.Flags().Int64Var(&f.seedStep, "seed-step", 1, "seed increment between runs")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "all", "EASY, NORMAL, HARD or all")
	cmd.Flags().StringVar(&f.strategy, "strategy", "all", "random, memory or all")
	cmd.Flags().IntVar(&f.maxFrames, "max-frames", 200000, "frame limit per game")
	cmd.Flags().IntVar(&f.thinkEvery, "think-frames", 1, "frames between player moves")
	cmd.Flags().IntVar(&f.faces, "faces", -1, "size of the synthetic face pool (-1 covers every pair)")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "print the event log of every game")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runReport(w io.Writer, f reportFlags) error {
	if f.runs <= 0 {
		return fmt.Errorf("--runs must be > 0")
	}
	if f.maxFrames <= 0 {
		return fmt.Errorf("--max-frames must be > 0")
	}
	diffs, err := selectDifficulties(f.difficulty)
	if err != nil {
		return err
	}
	strats, err := selectStrategies(f.strategy)
	if err != nil {
		return err
	}

	printHeader(w, "Headless Memory Report")
	fmt.Fprintf(w, "runs=%d seed_base=%d seed_step=%d max_frames=%d think_frames=%d\n\n",
		f.runs, f.seedBase, f.seedStep, f.maxFrames, f.thinkEvery)

	var all []runStats
	for _, d := range diffs {
		for _, st := range strats {
			var group []runStats
			for i := 0; i < f.runs; i++ {
				seed := f.seedBase + int64(i)*f.seedStep
				rs, err := playOne(w, i+1, d, st, seed, f)
				if err != nil {
					return err
				}
				group = append(group, rs)
			}
			printGroup(w, d, st, group)
			all = append(all, group...)
		}
	}
	printAggregate(w, all)
	return nil
}

func playOne(w io.Writer, runIndex int, d game.Difficulty, st game.Strategy, seed int64, f reportFlags) (runStats, error) {
	poolSize := f.faces
	if poolSize < 0 {
		poolSize = d.Pairs
	}
	ts, err := game.NewTestSession(
		game.WithHarnessSeed(seed),
		game.WithGeneratedFaces(poolSize),
		game.WithThinkFrames(f.thinkEvery),
		game.WithVerbose(f.verbose),
		game.WithDifficulty(d.Label),
		game.WithStrategy(st),
	)
	if err != nil {
		return runStats{}, err
	}
	frame := ts.RunUntilWon(f.maxFrames)
	if f.verbose {
		fmt.Fprint(w, ts.EventLog.Format())
	}
	return runStats{
		runIndex: runIndex,
		wonFrame: frame,
		tally:    ts.EventLog.Tally(ts.Session.GameID()),
		report:   ts.Report(),
	}, nil
}

func selectDifficulties(label string) ([]game.Difficulty, error) {
	if strings.EqualFold(strings.TrimSpace(label), "all") {
		return game.Difficulties(), nil
	}
	d, err := game.ParseDifficulty(label)
	if err != nil {
		return nil, err
	}
	return []game.Difficulty{d}, nil
}

func selectStrategies(name string) ([]game.Strategy, error) {
	if strings.EqualFold(strings.TrimSpace(name), "all") {
		return game.Strategies(), nil
	}
	st, err := game.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	return []game.Strategy{st}, nil
}
