package game

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
)

type Snapshot struct {
	ID              string `yaml:"id,omitempty"`
	Seed            int64  `yaml:"seed"`
	SerializedBoard string `yaml:"board,flow"`
}

func (board *Board) Snapshot() *Snapshot {
	rows := make([]string, board.height)
	for y := range rows {
		var row strings.Builder
		for x := uint(0); x < board.width; x++ {
			row.WriteString(board.CellAt(x, uint(y)).serialize())
		}
		rows[y] = row.String()
	}

	return &Snapshot{
		ID:              board.ID(),
		Seed:            board.seed,
		SerializedBoard: strings.Join(rows, "\n"),
	}
}

func (snapshot *Snapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Board recreates the snapshotted board. With fresh set, every cell starts
// out hidden, so the same mine layout can be played again.
func (snapshot *Snapshot) Board(mode GameMode, fresh bool) (*Board, error) {
	rows := strings.Split(strings.TrimSpace(snapshot.SerializedBoard), "\n")

	config := Config{
		Height: uint(len(rows)),
		Width:  uint(len(rows[0])),
		Mode:   mode,
		Seed:   snapshot.Seed,
	}
	if config.Width == 0 {
		return nil, fmt.Errorf("%w: empty snapshot", ErrInvalidBoard)
	}

	board := createBoard(config)
	if snapshot.ID != "" {
		id, err := uuid.Parse(snapshot.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: snapshot id: %v", ErrInvalidBoard, err)
		}
		board.id = id
	}

	for y, row := range rows {
		if uint(len(row)) != config.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidBoard, y, len(row), config.Width)
		}

		for x, c := range row {
			cell := board.CellAt(uint(x), uint(y))
			if !cell.deserialize(c, fresh) {
				return nil, fmt.Errorf("%w: unknown cell %q at (%d, %d)", ErrInvalidBoard, c, x, y)
			}

			// Place mines through setMine, so neighbor counts stay right
			isMine := cell.isMine
			cell.isMine = false
			cell.setMine(isMine)
			if isMine {
				board.numMines++
			}
		}
	}

	if err := validateConfig(Config{Width: board.width, Height: board.height, NumMines: board.numMines}); err != nil {
		return nil, err
	}

	isLost := false
	for cell := range board.Cells() {
		switch {
		case cell.isLosingMine:
			isLost = true
		case cell.isRevealed:
			board.markRevealed()
		}
	}
	if isLost {
		board.state = Lost
	}
	if board.numRevealed > 0 || board.state == Lost {
		board.hasClicked = true
	}

	return board, nil
}

func LoadSnapshot(in string) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func snapshotFilename(board *Board, t time.Time) string {
	return fmt.Sprintf("%s%s_%s.yaml", t.Format("20060102_150405_"), board.state, board.ID()[:8])
}

// SaveSnapshot writes the board to a new file in dir, creating dir if
// needed, and returns the file's path.
func SaveSnapshot(dir string, board *Board, t time.Time) (string, error) {
	stat, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		if err := os.MkdirAll(dir, 0777); err != nil {
			return "", err
		}
	} else if !stat.Mode().IsDir() {
		return "", fmt.Errorf("%s is not a directory; cannot save snapshots to it", dir)
	}

	serialized, err := board.Snapshot().Serialize()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, snapshotFilename(board, t))
	if err := os.WriteFile(path, []byte(serialized), 0666); err != nil {
		return "", err
	}
	return path, nil
}
