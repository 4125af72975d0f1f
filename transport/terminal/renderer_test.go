package terminal

import (
	"bytes"
	"testing"

	"github.com/DevSlashRichie/tik-tak-toe/internal/apperror"
	"github.com/DevSlashRichie/tik-tak-toe/internal/entity"
	"github.com/DevSlashRichie/tik-tak-toe/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var players = entity.Players{First: "Ana", Second: "Luis"}

func TestRenderer_FormatGame(t *testing.T) {
	t.Run("Ongoing game shows the cursor and whose turn it is", func(t *testing.T) {
		// Given: X at (0,0), O at (1,1) and the cursor on (1,2)
		snapshot := game.Snapshot{
			Cursor: entity.Position{Row: 1, Col: 2},
			Turn:   entity.MarkX,
			State:  game.StateAwaitingInput,
		}
		snapshot.Board.Cells[0][0] = entity.MarkX
		snapshot.Board.Cells[1][1] = entity.MarkO

		// When: formatting without color
		frame := NewRenderer(&bytes.Buffer{}, false, false).FormatGame(players, snapshot)

		// Then: the grid, banner and help are plain text
		expected := "P1: Ana (X)\n" +
			"P2: Luis (O)\n\n" +
			" X |   |   \n" +
			"-----------\n" +
			"   | O |[ ]\n" +
			"-----------\n" +
			"   |   |   \n\n" +
			"Turn: Ana (X)\n" +
			"Move: w/a/s/d   Place: p\n"
		assert.Equal(t, expected, frame)
	})

	t.Run("Rejected placement shows a notice", func(t *testing.T) {
		snapshot := game.Snapshot{
			Turn:   entity.MarkO,
			Notice: apperror.ErrCellOccupied,
		}
		snapshot.Board.Cells[0][0] = entity.MarkX

		frame := NewRenderer(&bytes.Buffer{}, false, false).FormatGame(players, snapshot)

		assert.Contains(t, frame, "[X]")
		assert.Contains(t, frame, "Turn: Luis (O)\n")
		assert.Contains(t, frame, "That cell is already taken, pick another one.\n")
	})

	t.Run("Won game names the winner and hides the cursor", func(t *testing.T) {
		snapshot := game.Snapshot{
			State:   game.StateWon,
			Outcome: entity.WinOf(entity.MarkO),
		}
		snapshot.Board.Cells[0][0] = entity.MarkO

		frame := NewRenderer(&bytes.Buffer{}, false, false).FormatGame(players, snapshot)

		assert.Contains(t, frame, "Winner: Luis (O)\n")
		assert.NotContains(t, frame, "[")
		assert.NotContains(t, frame, "Move:")
	})

	t.Run("Tie", func(t *testing.T) {
		snapshot := game.Snapshot{State: game.StateTied, Outcome: entity.TieOutcome()}

		frame := NewRenderer(&bytes.Buffer{}, false, false).FormatGame(players, snapshot)

		assert.Contains(t, frame, "It's a tie!\n")
	})
}

func TestRenderer_Render(t *testing.T) {
	t.Run("Clears the screen before each frame", func(t *testing.T) {
		var out bytes.Buffer
		renderer := NewRenderer(&out, false, true)

		require.NoError(t, renderer.RenderGame(players, game.Snapshot{Turn: entity.MarkX}))

		assert.Equal(t, clearScreenSequence, out.String()[:len(clearScreenSequence)])
	})

	t.Run("Menu, notice and welcome", func(t *testing.T) {
		var out bytes.Buffer
		renderer := NewRenderer(&out, false, false)

		require.NoError(t, renderer.RenderWelcome())
		require.NoError(t, renderer.RenderMenu())
		require.NoError(t, renderer.RenderNotice("Please enter a valid option."))

		assert.Equal(t, welcomeText+"\n\n\n"+menuText+"\nPlease enter a valid option.\n", out.String())
	})
}
