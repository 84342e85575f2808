package game

// Director plays a board automatically. Play is fully synchronous: the
// game loop calls Act once per move until the board leaves the Ongoing
// state or the director runs out of moves.
type Director interface {
	// Init prepares the director to play board
	Init(board *Board)

	// Act performs a single move; it returns false when no move remains
	Act() bool
}
