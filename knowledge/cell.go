package knowledge

import "fmt"

// Cell identifies a single board position. It is a plain value: cells are
// compared, hashed and stored in sets by (Row, Col) alone. Bounds checking
// belongs to the board, not to the knowledge layer.
type Cell struct {
	Row, Col int
}

func (cell Cell) String() string {
	return fmt.Sprintf("(%d, %d)", cell.Row, cell.Col)
}
