package entity

import "fmt"

const (
	MinIndex = 0
	MaxIndex = BoardSize - 1
)

// Position is a (row, col) pair on the board.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Position) InRange() bool {
	return that.Row >= MinIndex && that.Row <= MaxIndex &&
		that.Col >= MinIndex && that.Col <= MaxIndex
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}
