package cmd

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/they4kman/sweepodds/engine"
	"github.com/they4kman/sweepodds/game"
)

func writePuzzle(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "puzzle.yaml")
	if err := os.WriteFile(path, []byte(contents), 0666); err != nil {
		t.Fatalf("failed to write puzzle: %v", err)
	}
	return path
}

func TestSolve(t *testing.T) {
	path := writePuzzle(t, "mines: 1\nboard: |\n  ###\n  #0#\n  ###\n")
	heatmap := filepath.Join(t.TempDir(), "heatmap.png")

	var out bytes.Buffer
	if err := solve(&out, path, solveOptions{heatmapPath: heatmap, heatmapCellSize: 16}); err != nil {
		t.Fatalf("solve returned error: %v", err)
	}

	if !strings.Contains(out.String(), "Known(0)") {
		t.Fatalf("missing grid in output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Safe to reveal: [(0, 0) (1, 0) (2, 0) (0, 1) (2, 1) (0, 2) (1, 2) (2, 2)]") {
		t.Fatalf("missing choices in output:\n%s", out.String())
	}

	file, err := os.Open(heatmap)
	if err != nil {
		t.Fatalf("heatmap was not written: %v", err)
	}
	defer file.Close()
	if _, err := png.Decode(file); err != nil {
		t.Fatalf("heatmap is not a PNG: %v", err)
	}
}

func TestSolveGuess(t *testing.T) {
	path := writePuzzle(t, "mines: 1\nboard: |\n  1##\n  ###\n  ###\n")

	var out bytes.Buffer
	if err := solve(&out, path, solveOptions{}); err != nil {
		t.Fatalf("solve returned error: %v", err)
	}
	if !strings.Contains(out.String(), "guess one of (mine probability 0.143)") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestSolveReportsContradiction(t *testing.T) {
	path := writePuzzle(t, "mines: 2\nboard: |\n  131\n  1#1\n")

	err := solve(&bytes.Buffer{}, path, solveOptions{})
	if !errors.Is(err, engine.ErrInconsistent) {
		t.Fatalf("expected an inconsistency, got %v", err)
	}
}

func TestSolveRejectsBadPuzzle(t *testing.T) {
	path := writePuzzle(t, "mines: 1\nboard: |\n  1x\n  ##\n")

	if err := solve(&bytes.Buffer{}, path, solveOptions{}); !errors.Is(err, game.ErrInvalidBoard) {
		t.Fatalf("expected ErrInvalidBoard, got %v", err)
	}
	if err := solve(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing.yaml"), solveOptions{}); err == nil {
		t.Fatalf("expected a missing file to fail")
	}
}

func TestPlay(t *testing.T) {
	opts := newPlayOptions()
	opts.board = game.Config{Width: 9, Height: 9, NumMines: 10, Mode: game.Win7, Seed: 3}
	opts.numGames = 3
	opts.snapshotsDir = t.TempDir()

	var out bytes.Buffer
	err := play(context.Background(), &out, opts)
	// The heuristic can talk itself into a contradiction on a real board
	if err != nil && !errors.Is(err, engine.ErrInconsistent) {
		t.Fatalf("play returned error: %v", err)
	}

	if !strings.HasPrefix(out.String(), "Played ") {
		t.Fatalf("missing summary:\n%s", out.String())
	}

	snapshots, readErr := os.ReadDir(opts.snapshotsDir)
	if readErr != nil {
		t.Fatalf("failed to list snapshots: %v", readErr)
	}
	if err == nil && len(snapshots) == 0 {
		t.Fatalf("no snapshots were saved")
	}
}

func TestGameModeValue(t *testing.T) {
	var mode game.GameMode
	value := newGameModeValue(game.Win7, &mode)

	if value.String() != "win7" {
		t.Fatalf("unexpected default: %s", value.String())
	}
	if err := value.Set("classic"); err != nil || mode != game.Classic {
		t.Fatalf("failed to set classic: %v, %v", err, mode)
	}
	if err := value.Set("hard"); err == nil {
		t.Fatalf("expected unknown mode to be rejected")
	}
}

func TestConfigureLogging(t *testing.T) {
	if err := configureLogging("debug"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := configureLogging("chatty"); err == nil {
		t.Fatalf("expected unknown level to be rejected")
	}
	if err := configureLogging("info"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
