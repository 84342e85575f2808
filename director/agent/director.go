package agent

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/mindsweep/mindsweep/game"
	"github.com/mindsweep/mindsweep/knowledge"
	"github.com/mindsweep/mindsweep/util/collections"
)

var log = logrus.WithField("director", "agent")

// Director plays by deduction. Every revealed cell is reported to the
// inference engine; moves are taken from the knowledge base, preferring
// cells proven safe and guessing uniformly at random only when no safe
// cell is known.
type Director struct {
	board    *game.Board
	engine   *knowledge.Engine
	selector *knowledge.MoveSelector
	rng      *rand.Rand
}

func New(rng *rand.Rand) *Director {
	return &Director{rng: rng}
}

func (director *Director) Init(board *game.Board) {
	director.board = board
	director.engine = knowledge.NewEngine(board.Height(), board.Width())
	director.selector = knowledge.NewMoveSelector(
		director.engine.Base(),
		board.Height(), board.Width(),
		director.rng,
	)
}

func (director *Director) Act() bool {
	move, isSafe := director.selector.NextSafeMove()
	if isSafe {
		log.WithField("cell", move).Debug("revealing known-safe cell")
	} else {
		var ok bool
		if move, ok = director.selector.NextRandomMove(); !ok {
			log.Debug("no moves remain")
			return false
		}
		log.WithField("cell", move).Debug("no safe move known, guessing")
	}

	observations, mined := director.board.Reveal(move)
	if mined {
		log.WithFields(logrus.Fields{
			"cell":    move,
			"guessed": !isSafe,
		}).Info("hit a mine")
		return false
	}

	for _, observation := range observations {
		director.engine.Observe(observation.Cell, observation.MineCount)
	}

	log.WithFields(logrus.Fields{
		"revealed":  len(observations),
		"sentences": len(director.engine.Base().Sentences()),
		"mines":     len(director.engine.Base().Mines()),
	}).Debug("knowledge updated")
	return true
}

// Mines returns the cells the agent has confirmed as mines so far.
func (director *Director) Mines() collections.Set[knowledge.Cell] {
	return director.engine.Base().Mines()
}
