package knowledge

import (
	"fmt"

	"github.com/mindsweep/mindsweep/util/collections"
)

// Base is the agent's knowledge base: every sentence currently held to be
// true, plus the cells whose status has been settled for good. The mine
// and safe sets only ever grow; once a cell's status is established it is
// never revised. The base owns its sentences exclusively.
type Base struct {
	sentences []*Sentence
	mines     collections.Set[Cell]
	safes     collections.Set[Cell]
	movesMade collections.Set[Cell]
}

func NewBase() *Base {
	return &Base{
		mines:     make(collections.Set[Cell]),
		safes:     make(collections.Set[Cell]),
		movesMade: make(collections.Set[Cell]),
	}
}

// Sentences returns the current sentence list. The returned slice is a
// copy; the sentences themselves remain owned by the base.
func (base *Base) Sentences() []*Sentence {
	return base.snapshot()
}

// Mines returns a copy of the cells confirmed as mines.
func (base *Base) Mines() collections.Set[Cell] {
	return base.mines.Clone()
}

// Safes returns a copy of the cells confirmed as safe.
func (base *Base) Safes() collections.Set[Cell] {
	return base.safes.Clone()
}

// MovesMade returns a copy of the cells already acted upon.
func (base *Base) MovesMade() collections.Set[Cell] {
	return base.movesMade.Clone()
}

// MarkMine records that cell is a mine and propagates the fact into every
// held sentence. Subsequent calls for the same cell are no-ops.
func (base *Base) MarkMine(cell Cell) {
	if base.mines.Contains(cell) {
		return
	}
	if base.safes.Contains(cell) {
		panic(fmt.Sprintf("%v is already known safe, cannot be a mine", cell))
	}

	base.mines.Add(cell)
	for _, sentence := range base.sentences {
		sentence.MarkMine(cell)
	}
}

// MarkSafe records that cell is not a mine and propagates the fact into
// every held sentence. Subsequent calls for the same cell are no-ops.
func (base *Base) MarkSafe(cell Cell) {
	if base.safes.Contains(cell) {
		return
	}
	if base.mines.Contains(cell) {
		panic(fmt.Sprintf("%v is already known to be a mine, cannot be safe", cell))
	}

	base.safes.Add(cell)
	for _, sentence := range base.sentences {
		sentence.MarkSafe(cell)
	}
}

func (base *Base) addSentence(sentence *Sentence) {
	base.sentences = append(base.sentences, sentence)
}

// removeSentence drops the given sentence from the list. Sentences are
// tracked by the exact entries handed out by snapshot, so pointer identity
// suffices here; value equality only matters for deduplication.
func (base *Base) removeSentence(sentence *Sentence) {
	for i, held := range base.sentences {
		if held == sentence {
			base.sentences = append(base.sentences[:i], base.sentences[i+1:]...)
			return
		}
	}
}

// snapshot returns a stable copy of the sentence list, so that resolution
// passes can remove entries without corrupting their own iteration.
func (base *Base) snapshot() []*Sentence {
	snapshot := make([]*Sentence, len(base.sentences))
	copy(snapshot, base.sentences)
	return snapshot
}

// purgeEmpty drops fully resolved sentences. Their cells have all been
// marked one way or the other, so they carry no information.
func (base *Base) purgeEmpty() {
	kept := base.sentences[:0]
	for _, sentence := range base.sentences {
		if sentence.NumCells() > 0 {
			kept = append(kept, sentence)
		}
	}
	base.sentences = kept
}

// dedupe removes value-equal duplicate sentences, keeping first
// occurrences.
func (base *Base) dedupe() {
	var unique []*Sentence
	for _, sentence := range base.sentences {
		isDuplicate := false
		for _, kept := range unique {
			if sentence.Equal(kept) {
				isDuplicate = true
				break
			}
		}
		if !isDuplicate {
			unique = append(unique, sentence)
		}
	}
	base.sentences = unique
}
