package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/mindsweep/mindsweep/knowledge"
)

// Snapshot is a serializable record of a board: the seed it was generated
// from and the grid rendered as text.
type Snapshot struct {
	Seed  int64  `yaml:"seed"`
	Board string `yaml:"board,flow"`
}

func (board *Board) Snapshot(seed int64) *Snapshot {
	return &Snapshot{
		Seed:  seed,
		Board: board.serialize(),
	}
}

func (snapshot *Snapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func LoadSnapshot(in string) (*Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// CreateBoard rebuilds the mine layout recorded in the snapshot. Revealed
// state is not restored; the board starts fresh.
func (snapshot *Snapshot) CreateBoard() (*Board, error) {
	rows := strings.Split(snapshot.Board, "\n")
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("snapshot holds an empty board")
	}

	board := newEmptyBoard(len(rows), len(rows[0]))

	for row, line := range rows {
		if len(line) != board.width {
			return nil, fmt.Errorf("snapshot row %d has %d cells, want %d", row, len(line), board.width)
		}
		for col, c := range line {
			switch c {
			case '*':
				board.placeMine(knowledge.Cell{Row: row, Col: col})
				board.numMines++
			case '.', '#':
			default:
				return nil, fmt.Errorf("unrecognized cell %q in snapshot", c)
			}
		}
	}
	return board, nil
}
