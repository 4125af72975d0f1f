package entity

// Move is one committed placement.
type Move struct {
	Mark Mark `json:"mark"`
	Row  int  `json:"row"`
	Col  int  `json:"col"`
}

func (that Move) Position() Position {
	return Position{Row: that.Row, Col: that.Col}
}

// History is the ordered list of moves of a single game. Moves are only ever appended.
type History struct {
	moves []Move
}

func NewHistory() *History {
	return &History{moves: make([]Move, 0, BoardSize*BoardSize)}
}

func (that *History) Append(move Move) {
	that.moves = append(that.moves, move)
}

func (that *History) Len() int {
	return len(that.moves)
}

// Last returns the most recent move, false when no move was made yet.
func (that *History) Last() (Move, bool) {
	if len(that.moves) == 0 {
		return Move{}, false
	}

	return that.moves[len(that.moves)-1], true
}

// Moves returns a copy so callers cannot rewrite the history.
func (that *History) Moves() []Move {
	moves := make([]Move, len(that.moves))
	copy(moves, that.moves)

	return moves
}
