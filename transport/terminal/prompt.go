package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DevSlashRichie/tik-tak-toe/internal/apperror"
)

// LineReader asks a question and reads the answer up to the end of the line.
type LineReader struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLineReader(in *bufio.Reader, out io.Writer) *LineReader {
	return &LineReader{
		in:  in,
		out: out,
	}
}

func (that *LineReader) ReadLine(prompt string) (string, error) {
	if _, err := io.WriteString(that.out, prompt); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := that.in.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return "", fmt.Errorf("%w: end of input", apperror.ErrAborted)
		}

		return strings.TrimRight(line, "\r"), nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to read line: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
