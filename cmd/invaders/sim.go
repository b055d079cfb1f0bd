package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagSimTicks  int
	flagSimRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Run a seeded game without a terminal UI. A simple autopilot starts
games, tracks the nearest column and keeps firing. Events are logged and a
summary with the final state hash is printed; the same seed and config
always print the same hash.

Examples:
  invaders sim --seed 42
  invaders sim --seed 42 --ticks 20000 --log-level debug
  invaders sim --record                 # Store finished runs in the database`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 10000, "Number of ticks to simulate")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save finished runs to the run history")
}

// simResult summarizes a headless run.
type simResult struct {
	Final    invaders.Snapshot
	Games    int // Games started
	Finished []storage.Run
	Kills    int
	Hits     int
	Best     int
}

// simulate drives a session with the autopilot for n ticks. onEvent, if not
// nil, sees every event in order.
func simulate(cfg config.InvadersConfig, seed int64, n int, onEvent func(invaders.Event)) simResult {
	session := invaders.New(cfg, seed)
	var pilot invaders.Autopilot
	in := core.NewInputFrame()

	var res simResult
	var startTick uint64
	for range n {
		snap := session.Snapshot()
		in.Clear()
		pilot.Decide(&snap, &in)

		prev := session.State()
		events := session.Step(in)
		if prev != invaders.StatePlaying && session.State() == invaders.StatePlaying {
			res.Games++
			startTick = session.TickCount()
		}

		for _, e := range events {
			if onEvent != nil {
				onEvent(e)
			}
			switch e.Kind {
			case invaders.EventEnemyKilled:
				res.Kills++
			case invaders.EventPlayerHit:
				res.Hits++
			case invaders.EventGameOver, invaders.EventWin:
				outcome := storage.OutcomeGameOver
				if e.Kind == invaders.EventWin {
					outcome = storage.OutcomeWin
				}
				res.Finished = append(res.Finished, storage.Run{
					Player:  "autopilot",
					Score:   e.Score,
					Level:   min(e.Level, cfg.Session.MaxLevel),
					Outcome: outcome,
					Ticks:   session.TickCount() - startTick,
					Seed:    seed,
				})
			}
		}
		res.Best = max(res.Best, session.Score())
	}

	res.Final = session.Snapshot()
	return res
}

func runSim(_ *cobra.Command, _ []string) {
	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(os.Stderr, "invaders-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	seed := seedOrNow()
	logger.Info("simulating", "seed", seed, "ticks", flagSimTicks, "difficulty", preset)

	res := simulate(gameCfg, seed, flagSimTicks, func(e invaders.Event) {
		level := log.InfoLevel
		if e.Kind == invaders.EventEnemyKilled || e.Kind == invaders.EventPlayerHit {
			level = log.DebugLevel
		}
		logger.Log(level, "event", "kind", e.Kind, "tick", e.Tick, "score", e.Score, "lives", e.Lives, "level", e.Level)
	})

	if flagSimRecord {
		recordRuns(logger, res.Finished)
	}

	logger.Info("done",
		"state", res.Final.State,
		"score", res.Final.Score,
		"level", res.Final.Level,
		"lives", res.Final.Lives,
		"games", res.Games,
		"finished", len(res.Finished),
		"kills", res.Kills,
		"hits", res.Hits,
		"best", res.Best,
	)
	fmt.Printf("hash %016x\n", res.Final.Hash())
}

// recordRuns saves finished runs. Failures are logged and skipped.
func recordRuns(logger *log.Logger, runs []storage.Run) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		return
	}
	defer store.Close()

	for i := range runs {
		if _, err := store.SaveRun(&runs[i]); err != nil {
			logger.Warn("could not save run", "error", err)
			continue
		}
		logger.Debug("run saved", "run", runs[i].RunID, "score", runs[i].Score)
	}
}
