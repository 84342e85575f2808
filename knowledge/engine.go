package knowledge

// Engine folds board observations into a knowledge base and drives
// deduction to a fixpoint after each one. It knows the board's dimensions
// (to enumerate neighbors) but never touches the board itself.
type Engine struct {
	base   *Base
	height int
	width  int
}

func NewEngine(height, width int) *Engine {
	return &Engine{
		base:   NewBase(),
		height: height,
		width:  width,
	}
}

func (engine *Engine) Base() *Base {
	return engine.base
}

// Observe records that cell was revealed with count mines among its
// in-bounds neighbors, then alternates direct resolution and subset
// deduction until a full round yields nothing new.
func (engine *Engine) Observe(cell Cell, count int) {
	engine.base.movesMade.Add(cell)
	engine.base.MarkSafe(cell)
	engine.base.addSentence(engine.neighborSentence(cell, count))

	for {
		engine.resolveKnown()
		if !engine.deduceSubsets() {
			break
		}
	}
}

// neighborSentence builds the sentence stating that count of the revealed
// cell's neighbors are mines. Neighbors already established as mines are
// accounted for by decrementing the count; neighbors established as safe
// (or already played) carry no information and are left out. Out-of-bounds
// positions are simply not enumerated.
func (engine *Engine) neighborSentence(cell Cell, count int) *Sentence {
	var candidates []Cell
	for row := cell.Row - 1; row <= cell.Row+1; row++ {
		for col := cell.Col - 1; col <= cell.Col+1; col++ {
			if row < 0 || row >= engine.height || col < 0 || col >= engine.width {
				continue
			}

			neighbor := Cell{Row: row, Col: col}
			if neighbor == cell {
				continue
			}

			switch {
			case engine.base.mines.Contains(neighbor):
				count--
			case engine.base.safes.Contains(neighbor), engine.base.movesMade.Contains(neighbor):
				// settled, nothing left to learn
			default:
				candidates = append(candidates, neighbor)
			}
		}
	}
	return NewSentence(candidates, count)
}

// resolveKnown runs the direct-resolution fixpoint: any sentence whose
// cells are all mines or all safe is removed and its cells marked
// globally. Marking propagates into the remaining sentences and may
// resolve further ones, so passes repeat until one changes nothing.
func (engine *Engine) resolveKnown() {
	base := engine.base

	for changed := true; changed; {
		changed = false

		for _, sentence := range base.snapshot() {
			mines, allMines := sentence.KnownMines()
			safes, allSafes := sentence.KnownSafes()
			if !allMines && !allSafes {
				continue
			}

			base.removeSentence(sentence)
			changed = true

			for _, cell := range mines {
				base.MarkMine(cell)
			}
			for _, cell := range safes {
				base.MarkSafe(cell)
			}
		}
	}

	base.purgeEmpty()
}

// deduceSubsets applies the subset rule once: for sentences A and B with
// A.cells ⊆ B.cells, the residual sentence (B.cells − A.cells) = B.count −
// A.count holds, and B is subsumed by A plus the residual. Returns whether
// any deduction was made, in which case the caller must re-resolve.
func (engine *Engine) deduceSubsets() bool {
	base := engine.base
	base.dedupe()

	type deduction struct {
		subset, superset *Sentence
	}
	var deductions []deduction
	subsumed := make(map[*Sentence]struct{})

	for _, a := range base.sentences {
		for _, b := range base.sentences {
			if a == b {
				continue
			}
			if a.cells.IsSubsetOf(b.cells) {
				deductions = append(deductions, deduction{subset: a, superset: b})
				subsumed[b] = struct{}{}
			}
		}
	}

	if len(deductions) == 0 {
		return false
	}

	for _, d := range deductions {
		residual := d.superset.cells.Difference(d.subset.cells)
		base.addSentence(NewSentence(residual.Values(), d.superset.count-d.subset.count))
	}
	for sentence := range subsumed {
		base.removeSentence(sentence)
	}
	return true
}
