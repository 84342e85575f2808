package game

type State int

const (
	Ongoing State = iota
	Won
	Lost
)

func (state State) String() string {
	switch state {
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}
