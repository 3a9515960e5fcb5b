package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel = "info"

var rootCmd = &cobra.Command{
	Use:   "sweepodds",
	Short: "Estimate which Minesweeper cells are safe to reveal",
	Long: `sweepodds rates every unrevealed cell of a Minesweeper board by how
likely it is to hide a mine, and picks the cells to reveal next.

Rate the cells of a partially revealed board stored in a file
	sweepodds solve board.yaml

Let the computer play simulated games
	sweepodds play -w 30 -h 16 -m 99 --games 10
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configureLogging(logLevel)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func configureLogging(level string) error {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	logrus.SetLevel(parsed)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "Logging level (debug, info, warn, error)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(playCmd)
}
