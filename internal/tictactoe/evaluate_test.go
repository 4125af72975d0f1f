package tictactoe

import (
	"testing"

	"github.com/DevSlashRichie/tik-tak-toe/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.MarkX
	o = entity.MarkO
	e = entity.Empty
)

func boardOf(cells [3][3]entity.Mark) *entity.Board {
	return &entity.Board{Cells: cells}
}

func TestEvaluate(t *testing.T) {
	t.Run("Winner X on top row", func(t *testing.T) {
		// Given: a board where player X has completed the top row
		board := boardOf([3][3]entity.Mark{
			{x, x, x},
			{o, o, e},
			{e, e, e},
		})

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: player X should be declared the winner
		assert.Equal(t, entity.WinOf(x), outcome)
	})

	t.Run("Winner O on column", func(t *testing.T) {
		// Given: a board where player O has completed the middle column
		board := boardOf([3][3]entity.Mark{
			{x, o, x},
			{e, o, e},
			{x, o, e},
		})

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: player O should be declared the winner
		assert.Equal(t, entity.WinOf(o), outcome)
	})

	t.Run("Winner on both diagonals", func(t *testing.T) {
		// Given: boards with a completed main and anti diagonal
		main := boardOf([3][3]entity.Mark{
			{x, o, e},
			{o, x, e},
			{e, e, x},
		})
		anti := boardOf([3][3]entity.Mark{
			{x, x, o},
			{e, o, e},
			{o, e, x},
		})

		// When / Then: each diagonal is detected
		assert.Equal(t, entity.WinOf(x), Evaluate(main))
		assert.Equal(t, entity.WinOf(o), Evaluate(anti))
	})

	t.Run("Ongoing game", func(t *testing.T) {
		// Given: a board where there is no winner yet
		board := boardOf([3][3]entity.Mark{
			{x, o, x},
			{e, o, e},
			{x, e, e},
		})

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the game should continue
		assert.Equal(t, entity.InProgress, outcome.Status)
		assert.False(t, outcome.IsTerminal())
	})

	t.Run("Empty board is in progress", func(t *testing.T) {
		assert.Equal(t, entity.InProgress, Evaluate(entity.NewBoard()).Status)
	})

	t.Run("Tie", func(t *testing.T) {
		// Given: a full board without a completed line
		board := boardOf([3][3]entity.Mark{
			{x, o, x},
			{o, x, x},
			{o, x, o},
		})

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the game should be declared a tie
		assert.Equal(t, entity.TieOutcome(), outcome)
	})

	t.Run("Full board with a completed line is a win, not a tie", func(t *testing.T) {
		// Given: a full board where X completed the left column with the last move
		board := boardOf([3][3]entity.Mark{
			{x, o, x},
			{x, o, o},
			{x, x, o},
		})
		require.True(t, board.IsFull())

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the line wins over the tie
		assert.Equal(t, entity.WinOf(x), outcome)
	})

	t.Run("Evaluate does not change the board", func(t *testing.T) {
		// Given: an ongoing board and a copy of it
		board := boardOf([3][3]entity.Mark{
			{x, e, e},
			{e, o, e},
			{e, e, e},
		})
		before := *board

		// When: evaluating twice
		first := Evaluate(board)
		second := Evaluate(board)

		// Then: both results match and the board is untouched
		assert.Equal(t, first, second)
		assert.Equal(t, before, *board)
	})
}
