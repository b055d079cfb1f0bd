package tui

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// runRecorder follows the run being played and saves it to the run history
// when it ends. Copies of a Model share one recorder, so a run can still be
// closed after the program has exited.
type runRecorder struct {
	session *invaders.Session
	store   *storage.Store
	logger  *log.Logger
	player  string
	seed    int64

	id        string
	startTick uint64
	active    bool
	highScore int
}

func newRunRecorder(session *invaders.Session, store *storage.Store, logger *log.Logger, player string, seed int64) *runRecorder {
	r := &runRecorder{
		session: session,
		store:   store,
		logger:  logger,
		player:  player,
		seed:    seed,
	}

	if store != nil {
		high, err := store.HighScore()
		if err != nil {
			logger.Warn("could not load high score", "error", err)
		}
		r.highScore = high
	}
	return r
}

// handle applies run events in the order the session raised them.
func (r *runRecorder) handle(e invaders.Event) {
	switch e.Kind {
	case invaders.EventRunStarted:
		// A run still open here ended without an event of its own.
		r.finish(storage.OutcomeAbandoned, e)
		r.start(e.Tick)
	case invaders.EventAbandoned:
		r.finish(storage.OutcomeAbandoned, e)
	case invaders.EventGameOver:
		r.finish(storage.OutcomeGameOver, e)
	case invaders.EventWin:
		r.finish(storage.OutcomeWin, e)
	}
}

func (r *runRecorder) start(tick uint64) {
	r.id = uuid.NewString()
	r.startTick = tick
	r.active = true
	r.logger.Info("run started", "run", r.id, "seed", r.seed)
}

// abandon closes the active run from the session's current counters.
func (r *runRecorder) abandon() {
	r.finish(storage.OutcomeAbandoned, invaders.Event{
		Kind:  invaders.EventAbandoned,
		Tick:  r.session.TickCount(),
		Score: r.session.Score(),
		Level: r.session.Level(),
	})
}

// finish records the active run once. Saving is best-effort.
func (r *runRecorder) finish(outcome string, e invaders.Event) {
	if !r.active {
		return
	}
	r.active = false

	run := storage.Run{
		RunID:   r.id,
		Player:  r.player,
		Score:   e.Score,
		Level:   min(e.Level, r.session.Config().Session.MaxLevel),
		Outcome: outcome,
		Ticks:   e.Tick - r.startTick,
		Seed:    r.seed,
	}
	r.highScore = max(r.highScore, run.Score)

	r.logger.Info("run finished",
		"run", run.RunID,
		"outcome", run.Outcome,
		"score", run.Score,
		"level", run.Level,
		"ticks", run.Ticks,
	)

	if r.store == nil {
		return
	}
	if _, err := r.store.SaveRun(&run); err != nil {
		r.logger.Warn("could not save run", "run", run.RunID, "error", err)
	}
}
