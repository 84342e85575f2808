package random

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/mindsweep/mindsweep/game"
	"github.com/mindsweep/mindsweep/knowledge"
)

var log = logrus.WithField("director", "random")

// Director reveals unrevealed cells in a random order, with no deduction
// at all. It exists as a baseline to compare the knowledge-based agent
// against.
type Director struct {
	board *game.Board
	order []knowledge.Cell
	rng   *rand.Rand
}

func New(rng *rand.Rand) *Director {
	return &Director{rng: rng}
}

func (director *Director) Init(board *game.Board) {
	director.board = board

	director.order = make([]knowledge.Cell, 0, board.Height()*board.Width())
	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			director.order = append(director.order, knowledge.Cell{Row: row, Col: col})
		}
	}
	director.rng.Shuffle(len(director.order), func(i, j int) {
		director.order[i], director.order[j] = director.order[j], director.order[i]
	})
}

func (director *Director) Act() bool {
	for len(director.order) > 0 {
		move := director.order[0]
		director.order = director.order[1:]

		if director.board.IsRevealed(move) {
			continue
		}

		log.WithField("cell", move).Debug("revealing cell")
		_, mined := director.board.Reveal(move)
		return !mined
	}
	return false
}
