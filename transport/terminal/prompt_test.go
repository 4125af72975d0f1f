package terminal

import (
	"bytes"
	"testing"

	"github.com/DevSlashRichie/tik-tak-toe/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_ReadLine(t *testing.T) {
	t.Run("Writes the prompt and reads one line", func(t *testing.T) {
		// Given: two answers waiting on input
		var out bytes.Buffer
		lines := NewLineReader(readerOf("Ana\r\nLuis\n"), &out)

		// When: asking twice
		first, err := lines.ReadLine("name? ")
		require.NoError(t, err)
		second, err := lines.ReadLine("again? ")
		require.NoError(t, err)

		// Then: line endings are stripped and both prompts were shown
		assert.Equal(t, "Ana", first)
		assert.Equal(t, "Luis", second)
		assert.Equal(t, "name? again? ", out.String())
	})

	t.Run("Last line without newline", func(t *testing.T) {
		line, err := NewLineReader(readerOf("Eva"), &bytes.Buffer{}).ReadLine("")

		require.NoError(t, err)
		assert.Equal(t, "Eva", line)
	})

	t.Run("Empty line is returned as is", func(t *testing.T) {
		line, err := NewLineReader(readerOf("\n"), &bytes.Buffer{}).ReadLine("")

		require.NoError(t, err)
		assert.Empty(t, line)
	})

	t.Run("End of input aborts", func(t *testing.T) {
		_, err := NewLineReader(readerOf(""), &bytes.Buffer{}).ReadLine("")

		assert.ErrorIs(t, err, apperror.ErrAborted)
	})
}
