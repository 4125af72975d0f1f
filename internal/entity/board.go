package entity

import (
	"errors"
	"fmt"

	"github.com/DevSlashRichie/tik-tak-toe/internal/apperror"
)

const BoardSize = 3

var ErrUnknownMark = errors.New("unknown mark")

// Mark is the content of a single cell.
type Mark int

const (
	Empty Mark = iota
	MarkX
	MarkO
)

func (that Mark) String() string {
	switch that {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return Empty
	}
}

// Board is a 3x3 grid indexed by row and column.
type Board struct {
	Cells [BoardSize][BoardSize]Mark `json:"cells"`
}

func NewBoard() *Board {
	return &Board{}
}

func (that *Board) Get(pos Position) (Mark, error) {
	if !pos.InRange() {
		return Empty, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, pos)
	}

	return that.Cells[pos.Row][pos.Col], nil
}

// Set places mark at pos. It is the only way cells get written.
func (that *Board) Set(pos Position, mark Mark) error {
	if !pos.InRange() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfRange, pos)
	}

	if that.Cells[pos.Row][pos.Col] != Empty {
		return apperror.ErrCellOccupied
	}

	that.Cells[pos.Row][pos.Col] = mark

	return nil
}

// Filled returns the number of non-empty cells.
func (that *Board) Filled() int {
	count := 0
	for _, row := range that.Cells {
		for _, cell := range row {
			if cell != Empty {
				count++
			}
		}
	}

	return count
}

func (that *Board) IsFull() bool {
	return that.Filled() == BoardSize*BoardSize
}

func (that Mark) MarshalText() ([]byte, error) {
	if that == Empty {
		return []byte{}, nil
	}

	return []byte(that.String()), nil
}

func (that *Mark) UnmarshalText(text []byte) error {
	switch string(text) {
	case "X":
		*that = MarkX
	case "O":
		*that = MarkO
	case "", " ":
		*that = Empty
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMark, text)
	}

	return nil
}
