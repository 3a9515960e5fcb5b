package cmd

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/sweepodds/director"
	"github.com/they4kman/sweepodds/game"
)

type playOptions struct {
	board        game.Config
	numGames     int
	snapshotsDir string
	director     director.Config
}

func newPlayOptions() playOptions {
	opts := playOptions{
		board:    game.NewConfig(),
		numGames: 1,
		director: director.NewConfig(),
	}
	// Simulated boards need no pacing
	opts.director.ActDelay = 0
	opts.director.CycleDelay = 0
	return opts
}

var playOpts = newPlayOptions()

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Let the computer play simulated games",
	Long: `Plays games on simulated boards, revealing the cells rated least likely
to be mines, and reports how many were won.

Press Enter to pause; the game in progress is abandoned, and a new one
starts once Enter is pressed again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("seed") {
			playOpts.board.Seed = time.Now().UnixNano()
		}
		playOpts.director.Seed = playOpts.board.Seed

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		paused := &atomic.Bool{}
		playOpts.director.Paused = paused
		go func() {
			if err := director.ListenPause(os.Stdin, paused, logrus.StandardLogger()); err != nil {
				logrus.WithField("error", err).Warn("Stopped listening for pauses")
			}
		}()

		return play(ctx, cmd.OutOrStdout(), playOpts)
	},
}

func play(ctx context.Context, out io.Writer, opts playOptions) error {
	seeds := rand.New(rand.NewSource(opts.board.Seed))
	wins, losses := 0, 0

	opts.director.OnGameEnd = func(env director.Environment, outcome director.Outcome) {
		board := env.(*game.Board)
		switch board.State() {
		case game.Won:
			wins++
		case game.Lost:
			losses++
		}

		if opts.snapshotsDir != "" && outcome == director.Finished {
			path, err := game.SaveSnapshot(opts.snapshotsDir, board, time.Now())
			if err != nil {
				logrus.WithField("error", err).Error("Failed to save snapshot")
				return
			}
			logrus.WithFields(logrus.Fields{
				"game": board.ID(),
				"path": path,
			}).Debug("Saved snapshot")
		}
	}

	newGame := func() (director.Environment, director.Params, error) {
		config := opts.board
		config.Seed = seeds.Int63()

		board, err := game.NewBoard(config)
		if err != nil {
			return nil, director.Params{}, err
		}
		return board, director.Params{
			Width:      int(config.Width),
			Height:     int(config.Height),
			TotalMines: int(config.NumMines),
		}, nil
	}

	err := director.New(opts.director).Run(ctx, newGame, opts.numGames)
	fmt.Fprintf(out, "Played %d games: %d won, %d lost\n", wins+losses, wins, losses)
	return err
}

type gameModeValue game.GameMode

var _ pflag.Value = (*gameModeValue)(nil)

func newGameModeValue(val game.GameMode, p *game.GameMode) *gameModeValue {
	*p = val
	return (*gameModeValue)(p)
}

var gameModes = map[string]game.GameMode{
	"win7":    game.Win7,
	"classic": game.Classic,
}

func (modeVal *gameModeValue) String() string {
	for name, mode := range gameModes {
		if mode == game.GameMode(*modeVal) {
			return name
		}
	}
	return fmt.Sprint(*modeVal)
}

func (modeVal *gameModeValue) Set(value string) error {
	mode, isValid := gameModes[value]
	if !isValid {
		return fmt.Errorf("invalid game mode %q", value)
	}
	*modeVal = gameModeValue(mode)
	return nil
}

func (modeVal *gameModeValue) Type() string {
	return "game.GameMode"
}

func init() {
	flags := playCmd.Flags()

	// Define our own -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	flags.Bool("help", false, "Help for this command")

	flags.UintVarP(&playOpts.board.Width, "width", "w", playOpts.board.Width, "Width of game board, in cells")
	flags.UintVarP(&playOpts.board.Height, "height", "h", playOpts.board.Height, "Height of game board, in cells")
	flags.UintVarP(&playOpts.board.NumMines, "mines", "m", playOpts.board.NumMines, "Number of mines to place in the game board")
	flags.Var(newGameModeValue(game.Win7, &playOpts.board.Mode), "mode", `Game mode, controlling behaviour of first click.
win7: all cells surrounding the first-clicked cell are cleared of mines (first click never loses)
classic: mines are left as is (first click can lose the game)`)
	flags.Int64Var(&playOpts.board.Seed, "seed", 0, "Seed for generating boards and guessing (default: current time)")

	flags.IntVarP(&playOpts.numGames, "games", "n", playOpts.numGames, "Number of games to play, 0 to play until interrupted")
	flags.StringVar(&playOpts.snapshotsDir, "snapshots", "", "Directory to save the final state of every game to")
	flags.DurationVar(&playOpts.director.ActDelay, "act-delay", playOpts.director.ActDelay, "Wait between revealing two safe cells")
	flags.DurationVar(&playOpts.director.CycleDelay, "cycle-delay", playOpts.director.CycleDelay, "Wait between two moves")
}
