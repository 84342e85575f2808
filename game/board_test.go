package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindsweep/mindsweep/knowledge"
	"github.com/mindsweep/mindsweep/util/collections"
)

// singleMineBoard returns a 3x3 board with its only mine at (0, 0).
func singleMineBoard(t *testing.T) *Board {
	t.Helper()
	snapshot := &Snapshot{Board: "*##\n###\n###"}
	board, err := snapshot.CreateBoard()
	require.NoError(t, err)
	return board
}

func TestNewPlacesExactlyNumMines(t *testing.T) {
	board := New(8, 8, 10, rand.New(rand.NewSource(3)))

	mines := 0
	for row := 0; row < board.Height(); row++ {
		for col := 0; col < board.Width(); col++ {
			if board.IsMine(knowledge.Cell{Row: row, Col: col}) {
				mines++
			}
		}
	}
	assert.Equal(t, 10, mines)
	assert.Equal(t, 10, board.NumMines())
}

func TestNewIsDeterministicUnderSeed(t *testing.T) {
	first := New(8, 8, 10, rand.New(rand.NewSource(3)))
	second := New(8, 8, 10, rand.New(rand.NewSource(3)))
	assert.Equal(t, first.serialize(), second.serialize())
}

func TestNeighborMineCount(t *testing.T) {
	board := singleMineBoard(t)

	testCases := []struct {
		cell  knowledge.Cell
		count int
	}{
		{knowledge.Cell{Row: 0, Col: 1}, 1},
		{knowledge.Cell{Row: 1, Col: 0}, 1},
		{knowledge.Cell{Row: 1, Col: 1}, 1},
		{knowledge.Cell{Row: 0, Col: 2}, 0},
		{knowledge.Cell{Row: 2, Col: 2}, 0},
	}
	for _, test := range testCases {
		assert.Equal(t, test.count, board.NeighborMineCount(test.cell), "cell %v", test.cell)
	}
}

func TestRevealMineLosesGame(t *testing.T) {
	board := singleMineBoard(t)

	observations, mined := board.Reveal(knowledge.Cell{Row: 0, Col: 0})
	assert.True(t, mined)
	assert.Empty(t, observations)
	assert.Equal(t, Lost, board.State())
}

func TestRevealNumberedCellDoesNotCascade(t *testing.T) {
	board := singleMineBoard(t)

	observations, mined := board.Reveal(knowledge.Cell{Row: 1, Col: 1})
	require.False(t, mined)
	require.Len(t, observations, 1)
	assert.Equal(t, knowledge.Cell{Row: 1, Col: 1}, observations[0].Cell)
	assert.Equal(t, 1, observations[0].MineCount)
	assert.Equal(t, Ongoing, board.State())
}

func TestRevealCascadesThroughZeroCells(t *testing.T) {
	board := singleMineBoard(t)

	// (2, 2) has no adjacent mines; the cascade must sweep every safe
	// cell on this board, winning the game outright.
	observations, mined := board.Reveal(knowledge.Cell{Row: 2, Col: 2})
	require.False(t, mined)
	assert.Len(t, observations, 8)
	assert.Equal(t, Won, board.State())

	for _, observation := range observations {
		assert.False(t, board.IsMine(observation.Cell))
		assert.Equal(t, board.NeighborMineCount(observation.Cell), observation.MineCount)
	}
}

func TestRevealOutOfBoundsIsExcluded(t *testing.T) {
	board := singleMineBoard(t)

	observations, mined := board.Reveal(knowledge.Cell{Row: -1, Col: 5})
	assert.False(t, mined)
	assert.Empty(t, observations)
	assert.Equal(t, Ongoing, board.State())
}

func TestRevealAfterGameOverIsNoop(t *testing.T) {
	board := singleMineBoard(t)
	board.Reveal(knowledge.Cell{Row: 0, Col: 0})
	require.Equal(t, Lost, board.State())

	observations, mined := board.Reveal(knowledge.Cell{Row: 2, Col: 2})
	assert.False(t, mined)
	assert.Empty(t, observations)
}

func TestHasWon(t *testing.T) {
	board := singleMineBoard(t)

	assert.True(t, board.HasWon(collections.NewSet(knowledge.Cell{Row: 0, Col: 0})))
	assert.False(t, board.HasWon(collections.NewSet(knowledge.Cell{Row: 1, Col: 1})))
	assert.False(t, board.HasWon(collections.NewSet[knowledge.Cell]()))
	assert.False(t, board.HasWon(collections.NewSet(
		knowledge.Cell{Row: 0, Col: 0},
		knowledge.Cell{Row: 1, Col: 1},
	)))
}
