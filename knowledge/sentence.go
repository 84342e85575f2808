package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mindsweep/mindsweep/util/collections"
)

// Sentence is a logical statement about the board: exactly count of cells
// are mines. Sentences only ever shrink, through MarkMine and MarkSafe;
// the invariant 0 <= count <= len(cells) holds after any well-formed
// sequence of operations.
type Sentence struct {
	cells collections.Set[Cell]
	count int
}

func NewSentence(cells []Cell, count int) *Sentence {
	set := collections.NewSet(cells...)
	if count < 0 || count > len(set) {
		panic(fmt.Sprintf("contradictory sentence: %d mines among %d cells", count, len(set)))
	}
	return &Sentence{cells: set, count: count}
}

func (sentence *Sentence) Count() int {
	return sentence.count
}

func (sentence *Sentence) NumCells() int {
	return len(sentence.cells)
}

func (sentence *Sentence) Contains(cell Cell) bool {
	return sentence.cells.Contains(cell)
}

func (sentence *Sentence) Cells() []Cell {
	return sentence.cells.Values()
}

// KnownMines returns every cell of the sentence when all of them must be
// mines. ok is false while the sentence is still ambiguous.
func (sentence *Sentence) KnownMines() (mines []Cell, ok bool) {
	if len(sentence.cells) > 0 && len(sentence.cells) == sentence.count {
		return sentence.cells.Values(), true
	}
	return nil, false
}

// KnownSafes returns every cell of the sentence when none of them can be a
// mine. ok is false while the sentence is still ambiguous.
func (sentence *Sentence) KnownSafes() (safes []Cell, ok bool) {
	if len(sentence.cells) > 0 && sentence.count == 0 {
		return sentence.cells.Values(), true
	}
	return nil, false
}

// MarkMine removes cell from the sentence and decrements its count, given
// the established fact that cell is a mine. No-op if cell is not a member.
func (sentence *Sentence) MarkMine(cell Cell) {
	if !sentence.cells.Contains(cell) {
		return
	}
	if sentence.count == 0 {
		panic(fmt.Sprintf("marking %v as a mine contradicts %v", cell, sentence))
	}
	sentence.cells.Remove(cell)
	sentence.count--
}

// MarkSafe removes cell from the sentence, given the established fact that
// cell is not a mine. The count is unaffected. No-op if cell is not a
// member.
func (sentence *Sentence) MarkSafe(cell Cell) {
	sentence.cells.Remove(cell)
}

// Equal compares sentences by value: same cell set, same count.
func (sentence *Sentence) Equal(other *Sentence) bool {
	return sentence.count == other.count && sentence.cells.Equal(other.cells)
}

func (sentence *Sentence) String() string {
	cells := sentence.cells.Values()
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})

	var cellsRepr strings.Builder
	for i, cell := range cells {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(cell.String())
	}

	return fmt.Sprintf("{%s} = %d", cellsRepr.String(), sentence.count)
}
