package game

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Height, Width int
	NumMines      int

	// Seed for board generation
	Seed int64

	// Snapshot to load the board's mine layout from, instead of
	// generating one from Seed
	Snapshot *Snapshot

	Director Director

	// Path to directory where final snapshots of boards should be saved
	SnapshotDir string
}

func NewConfig() Config {
	return Config{
		Height:   16,
		Width:    30,
		NumMines: 99,
	}
}

type Result struct {
	State State
	Moves int
}

// Run plays a single game to completion: it generates a board from the
// configured seed, hands it to the director and keeps asking for moves
// until the game ends or the director gives up.
func Run(config Config) (Result, error) {
	var board *Board
	if config.Snapshot != nil {
		var err error
		if board, err = config.Snapshot.CreateBoard(); err != nil {
			return Result{}, err
		}
	} else {
		rng := rand.New(rand.NewSource(config.Seed))
		board = New(config.Height, config.Width, config.NumMines, rng)
	}
	config.Director.Init(board)

	moves := 0
	for board.State() == Ongoing {
		if !config.Director.Act() {
			break
		}
		moves++
	}

	result := Result{State: board.State(), Moves: moves}

	if config.SnapshotDir != "" {
		if err := saveSnapshot(config.SnapshotDir, board, config.Seed); err != nil {
			return result, err
		}
	}
	return result, nil
}

func saveSnapshot(dir string, board *Board, seed int64) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}

	serialized, err := board.Snapshot(seed).Serialize()
	if err != nil {
		return err
	}

	// TODO: prevent duplicate filenames
	path := filepath.Join(dir, generateReplayFilename(board, time.Now()))
	if err := os.WriteFile(path, []byte(serialized), 0666); err != nil {
		return err
	}

	logrus.WithField("path", path).Debug("saved board snapshot")
	return nil
}

func generateReplayFilename(board *Board, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch board.state {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
