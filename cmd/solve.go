package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/they4kman/sweepodds/engine"
	"github.com/they4kman/sweepodds/game"
	"github.com/they4kman/sweepodds/render"
)

type solveOptions struct {
	heatmapPath     string
	heatmapCellSize int
}

var solveOpts = solveOptions{heatmapCellSize: 24}

var solveCmd = &cobra.Command{
	Use:   "solve PUZZLE",
	Short: "Rate the cells of a partially revealed board",
	Long: `Reads a board from a YAML file and prints the mine probability of each
unrevealed cell, followed by the best cells to reveal.

	mines: 10
	board: |
	  001#####
	  012#####
	  ########

Digits are revealed cells, '#' or '?' unrevealed ones.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return solve(cmd.OutOrStdout(), args[0], solveOpts)
	},
}

func solve(out io.Writer, path string, opts solveOptions) error {
	in, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	puzzle, err := game.LoadPuzzle(in)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	estimator, err := engine.New(puzzle.Width(), puzzle.Height(), int(puzzle.Mines))
	if err != nil {
		return err
	}
	observations, err := puzzle.Observe()
	if err != nil {
		return err
	}
	if err := estimator.Update(observations); err != nil {
		return err
	}

	fmt.Fprint(out, estimator)

	choices, probability := estimator.BestChoices()
	switch {
	case len(choices) == 0:
		fmt.Fprintln(out, "\nNo cells left to reveal")
	case probability == 0:
		fmt.Fprintf(out, "\nSafe to reveal: %v\n", choices)
	default:
		fmt.Fprintf(out, "\nNo safe cell; guess one of (mine probability %.3f): %v\n", probability, choices)
	}

	if opts.heatmapPath != "" {
		file, err := os.Create(opts.heatmapPath)
		if err != nil {
			return err
		}
		defer file.Close()

		if err := render.Heatmap(file, estimator, opts.heatmapCellSize); err != nil {
			return err
		}
		return file.Close()
	}

	return nil
}

func init() {
	solveCmd.Flags().StringVar(&solveOpts.heatmapPath, "heatmap", "", "Write a PNG heatmap of the probabilities to this path")
	solveCmd.Flags().IntVar(&solveOpts.heatmapCellSize, "cell-size", solveOpts.heatmapCellSize, "Size of a heatmap cell, in pixels")
}
