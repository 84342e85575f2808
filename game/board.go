package game

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/gammazero/deque"

	"github.com/mindsweep/mindsweep/knowledge"
	"github.com/mindsweep/mindsweep/util/collections"
)

type cell struct {
	isMine     bool
	isRevealed bool
	numMines   int // mines among the up-to-8 neighbors
}

// Board holds the true game state: mine placement, revealed cells and the
// win/loss status. It is the sole authority on where the mines are; the
// knowledge layer only ever sees (cell, neighbor mine count) observations.
type Board struct {
	height, width int
	numMines      int
	cells         [][]cell

	state       State
	numRevealed int
}

// Observation reports one newly revealed cell together with the number of
// mines among its neighbors, ready to be fed to the inference engine.
type Observation struct {
	Cell      knowledge.Cell
	MineCount int
}

// New creates a board with numMines mines placed using the given random
// source. Injecting the source keeps board generation reproducible.
func New(height, width, numMines int, rng *rand.Rand) *Board {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", height, width))
	}
	if numMines > height*width {
		panic(fmt.Sprintf("cannot place %d mines on a %dx%d board", numMines, height, width))
	}

	board := newEmptyBoard(height, width)
	board.numMines = numMines

	for _, idx := range rng.Perm(height * width)[:numMines] {
		board.placeMine(knowledge.Cell{Row: idx / width, Col: idx % width})
	}
	return board
}

func newEmptyBoard(height, width int) *Board {
	board := &Board{
		height: height,
		width:  width,
		state:  Ongoing,
		cells:  make([][]cell, height),
	}
	for row := range board.cells {
		board.cells[row] = make([]cell, width)
	}
	return board
}

func (board *Board) placeMine(at knowledge.Cell) {
	board.at(at).isMine = true
	for _, neighbor := range board.neighbors(at) {
		board.at(neighbor).numMines++
	}
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) State() State {
	return board.state
}

func (board *Board) inBounds(at knowledge.Cell) bool {
	return at.Row >= 0 && at.Row < board.height && at.Col >= 0 && at.Col < board.width
}

func (board *Board) at(at knowledge.Cell) *cell {
	return &board.cells[at.Row][at.Col]
}

func (board *Board) neighbors(at knowledge.Cell) []knowledge.Cell {
	neighbors := make([]knowledge.Cell, 0, 8)
	for row := at.Row - 1; row <= at.Row+1; row++ {
		for col := at.Col - 1; col <= at.Col+1; col++ {
			neighbor := knowledge.Cell{Row: row, Col: col}
			if neighbor != at && board.inBounds(neighbor) {
				neighbors = append(neighbors, neighbor)
			}
		}
	}
	return neighbors
}

func (board *Board) IsMine(at knowledge.Cell) bool {
	return board.inBounds(at) && board.at(at).isMine
}

func (board *Board) IsRevealed(at knowledge.Cell) bool {
	return board.inBounds(at) && board.at(at).isRevealed
}

// NeighborMineCount returns the number of mines strictly among the
// in-bounds neighbors of at, excluding at itself.
func (board *Board) NeighborMineCount(at knowledge.Cell) int {
	return board.at(at).numMines
}

// HasWon reports whether confirmed is exactly the board's mine set.
func (board *Board) HasWon(confirmed collections.Set[knowledge.Cell]) bool {
	if len(confirmed) != board.numMines {
		return false
	}
	for at := range confirmed {
		if !board.IsMine(at) {
			return false
		}
	}
	return true
}

// Reveal opens the cell at the given position. If it is a mine, mined is
// true and the game is lost. Otherwise the cell is revealed and, when it
// has no adjacent mines, the reveal cascades breadth-first through its
// neighborhood. One Observation is returned per newly revealed cell.
func (board *Board) Reveal(at knowledge.Cell) (observations []Observation, mined bool) {
	if board.state != Ongoing || !board.inBounds(at) {
		return nil, false
	}

	target := board.at(at)
	if target.isMine {
		target.isRevealed = true
		board.state = Lost
		return nil, true
	}

	var frontier deque.Deque[knowledge.Cell]
	frontier.PushBack(at)

	for frontier.Len() > 0 {
		next := frontier.PopFront()
		c := board.at(next)
		if c.isRevealed {
			continue
		}

		c.isRevealed = true
		board.numRevealed++
		observations = append(observations, Observation{Cell: next, MineCount: c.numMines})

		if c.numMines == 0 {
			for _, neighbor := range board.neighbors(next) {
				if n := board.at(neighbor); !n.isRevealed && !n.isMine {
					frontier.PushBack(neighbor)
				}
			}
		}
	}

	if board.numRevealed == board.height*board.width-board.numMines {
		board.state = Won
	}
	return observations, false
}

// serialize renders the grid one row per line: '*' for a mine, '.' for a
// revealed cell, '#' for an unrevealed one.
func (board *Board) serialize() string {
	var builder strings.Builder
	for row := 0; row < board.height; row++ {
		if row > 0 {
			builder.WriteByte('\n')
		}
		for col := 0; col < board.width; col++ {
			switch c := board.cells[row][col]; {
			case c.isMine:
				builder.WriteByte('*')
			case c.isRevealed:
				builder.WriteByte('.')
			default:
				builder.WriteByte('#')
			}
		}
	}
	return builder.String()
}
