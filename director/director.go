package director

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/sweepodds/director/random"
	"github.com/they4kman/sweepodds/engine"
	"github.com/they4kman/sweepodds/util/collections"
)

// Source supplies the cells revealed so far
type Source interface {
	Observe() ([]engine.Observation, error)
}

// Sink reveals a chosen cell
type Sink interface {
	Act(engine.Coord) error
}

type Environment interface {
	Source
	Sink

	// Over reports whether the game has ended, e.g. won or blown up
	Over() bool
}

// Params describes the board of a single game
type Params struct {
	Width, Height int
	TotalMines    int
}

type Outcome int

const (
	// Finished games ended on their own, or ran out of cells to choose
	Finished Outcome = iota
	// Interrupted games were abandoned because the director was paused
	Interrupted
)

func (outcome Outcome) String() string {
	if outcome == Interrupted {
		return "interrupted"
	}
	return "finished"
}

type Config struct {
	// Wait between revealing two cells of the same choice
	ActDelay time.Duration
	// Wait between observing the board twice
	CycleDelay time.Duration
	// How often to check for resumption while paused
	PausePoll time.Duration

	// Seed for picking among equally risky cells
	Seed int64

	// Paused stops the current game when set. Nil means never paused.
	Paused *atomic.Bool

	// Called once a game was played, whatever its outcome
	OnGameEnd func(env Environment, outcome Outcome)

	Logger logrus.FieldLogger
}

func NewConfig() Config {
	return Config{
		ActDelay:   50 * time.Millisecond,
		CycleDelay: 500 * time.Millisecond,
		PausePoll:  time.Second,
		Logger:     logrus.StandardLogger(),
	}
}

// Director plays games by feeding observations into a fresh engine.Engine
// and revealing the cells it rates least likely to be mines.
type Director struct {
	config  Config
	chooser *random.Chooser
	log     logrus.FieldLogger
}

func New(config Config) *Director {
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Director{
		config:  config,
		chooser: random.NewChooser(config.Seed),
		log:     log,
	}
}

func (director *Director) paused() bool {
	return director.config.Paused != nil && director.config.Paused.Load()
}

// Play runs a single game with a new engine until the environment reports
// the game is over, the director is paused, or ctx is done.
//
// Contradicting observations stop the game with the engine's
// *engine.InconsistencyError.
func (director *Director) Play(ctx context.Context, env Environment, params Params) (Outcome, error) {
	estimator, err := engine.New(params.Width, params.Height, params.TotalMines, engine.WithLogger(director.log))
	if err != nil {
		return Finished, err
	}

	seen := make(collections.Set[engine.Coord])

	for cycle := 0; ; cycle++ {
		if err := ctx.Err(); err != nil {
			return Interrupted, err
		}
		if director.paused() {
			return Interrupted, nil
		}
		if env.Over() {
			return Finished, nil
		}

		observations, err := env.Observe()
		if err != nil {
			return Finished, err
		}
		if err := estimator.Update(unseen(observations, seen)); err != nil {
			return Finished, err
		}
		director.log.WithField("cycle", cycle).Debugf("Estimates:\n%v", estimator)

		choices, probability := estimator.BestChoices()
		if len(choices) == 0 {
			return Finished, nil
		}
		if probability > 0 {
			choices = []engine.Coord{director.chooser.Pick(choices)}
		}

		director.log.WithFields(logrus.Fields{
			"cycle":       cycle,
			"choices":     choices,
			"probability": probability,
		}).Debug("Revealing cells")

		for i, choice := range choices {
			if i > 0 {
				if err := sleep(ctx, director.config.ActDelay); err != nil {
					return Interrupted, err
				}
			}
			if err := env.Act(choice); err != nil {
				return Finished, err
			}
			if env.Over() {
				return Finished, nil
			}
		}

		if err := sleep(ctx, director.config.CycleDelay); err != nil {
			return Interrupted, err
		}
	}
}

// unseen returns the observations of cells not passed to the engine before,
// and marks them as seen. Revealed cells never change, so there is no need
// to feed them twice.
func unseen(observations []engine.Observation, seen collections.Set[engine.Coord]) []engine.Observation {
	var result []engine.Observation
	for _, observation := range observations {
		coord := observation.Coord()
		if !seen.Contains(coord) {
			result = append(result, observation)
			seen.Add(coord)
		}
	}
	return result
}

// NewGameFunc sets up the environment for a new game
type NewGameFunc func() (Environment, Params, error)

// Run plays games until numGames have finished (forever if numGames is 0)
// or ctx is done. While paused, Run waits; after resuming, it always starts
// a new game rather than continuing the abandoned one.
func (director *Director) Run(ctx context.Context, newGame NewGameFunc, numGames int) error {
	for finished := 0; numGames == 0 || finished < numGames; {
		if err := director.waitWhilePaused(ctx); err != nil {
			return err
		}

		env, params, err := newGame()
		if err != nil {
			return err
		}

		log := director.log.WithField("game", finished+1)
		log.Debug("Starting game")

		outcome, err := director.Play(ctx, env, params)
		if err != nil {
			log.WithField("error", err).Error("Game stopped")
			return err
		}

		log.WithField("outcome", outcome).Info("Game ended")
		if director.config.OnGameEnd != nil {
			director.config.OnGameEnd(env, outcome)
		}
		if outcome == Finished {
			finished++
		}
	}
	return nil
}

func (director *Director) waitWhilePaused(ctx context.Context) error {
	poll := director.config.PausePoll
	if poll <= 0 {
		poll = time.Millisecond
	}

	for director.paused() {
		if err := sleep(ctx, poll); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
