package knowledge

import "math/rand"

// MoveSelector picks the agent's next move from a knowledge base. Both
// operations are strictly queries; the base is never mutated. The random
// source is injected so that play is reproducible under a fixed seed.
type MoveSelector struct {
	base   *Base
	height int
	width  int
	rng    *rand.Rand
}

func NewMoveSelector(base *Base, height, width int, rng *rand.Rand) *MoveSelector {
	return &MoveSelector{
		base:   base,
		height: height,
		width:  width,
		rng:    rng,
	}
}

// NextSafeMove returns a cell known to be safe that has not been played
// yet. ok is false when no such cell is known. Which of several safe cells
// is returned is unspecified.
func (selector *MoveSelector) NextSafeMove() (move Cell, ok bool) {
	for cell := range selector.base.safes {
		if !selector.base.movesMade.Contains(cell) {
			return cell, true
		}
	}
	return Cell{}, false
}

// NextRandomMove returns a uniformly random board cell that is neither a
// known mine nor already played. ok is false when every cell is one or the
// other.
func (selector *MoveSelector) NextRandomMove() (move Cell, ok bool) {
	var pool []Cell
	for row := 0; row < selector.height; row++ {
		for col := 0; col < selector.width; col++ {
			cell := Cell{Row: row, Col: col}
			if selector.base.mines.Contains(cell) || selector.base.movesMade.Contains(cell) {
				continue
			}
			pool = append(pool, cell)
		}
	}

	if len(pool) == 0 {
		return Cell{}, false
	}
	return pool[selector.rng.Intn(len(pool))], true
}
