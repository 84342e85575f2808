package knowledge

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSelector(base *Base) *MoveSelector {
	return NewMoveSelector(base, 3, 3, rand.New(rand.NewSource(1)))
}

func TestNextSafeMoveSkipsMovesMade(t *testing.T) {
	base := NewBase()
	base.MarkSafe(Cell{0, 0})
	base.MarkSafe(Cell{0, 1})
	base.movesMade.Add(Cell{0, 0})

	move, ok := newTestSelector(base).NextSafeMove()
	require.True(t, ok)
	assert.Equal(t, Cell{0, 1}, move)
}

func TestNextSafeMoveNoneAvailable(t *testing.T) {
	base := NewBase()
	_, ok := newTestSelector(base).NextSafeMove()
	assert.False(t, ok)

	// every known safe has already been played
	base.MarkSafe(Cell{1, 1})
	base.movesMade.Add(Cell{1, 1})
	_, ok = newTestSelector(base).NextSafeMove()
	assert.False(t, ok)
}

func TestNextSafeMoveDoesNotMutate(t *testing.T) {
	base := NewBase()
	base.MarkSafe(Cell{0, 0})

	selector := newTestSelector(base)
	selector.NextSafeMove()
	selector.NextSafeMove()

	assert.Len(t, base.Safes().Values(), 1)
	assert.Empty(t, base.MovesMade().Values())
}

func TestNextRandomMoveAvoidsMinesAndMovesMade(t *testing.T) {
	base := NewBase()
	base.MarkMine(Cell{0, 0})
	base.movesMade.Add(Cell{1, 1})

	selector := newTestSelector(base)
	for i := 0; i < 50; i++ {
		move, ok := selector.NextRandomMove()
		require.True(t, ok)
		assert.NotEqual(t, Cell{0, 0}, move)
		assert.NotEqual(t, Cell{1, 1}, move)
	}
}

func TestNextRandomMoveNoneAvailable(t *testing.T) {
	base := NewBase()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell := Cell{Row: row, Col: col}
			if cell == (Cell{0, 0}) {
				base.MarkMine(cell)
			} else {
				base.MarkSafe(cell)
				base.movesMade.Add(cell)
			}
		}
	}

	_, ok := newTestSelector(base).NextRandomMove()
	assert.False(t, ok)
}

func TestNextRandomMoveDeterministicUnderSeed(t *testing.T) {
	base := NewBase()

	first, ok := NewMoveSelector(base, 3, 3, rand.New(rand.NewSource(7))).NextRandomMove()
	require.True(t, ok)
	second, ok := NewMoveSelector(base, 3, 3, rand.New(rand.NewSource(7))).NextRandomMove()
	require.True(t, ok)

	assert.Equal(t, first, second)
}
