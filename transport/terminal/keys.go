// Package terminal is the presentation layer: it reads keystrokes and names from
// the terminal and draws the board.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/DevSlashRichie/tik-tak-toe/internal/apperror"
	"golang.org/x/term"
)

const (
	ModeAuto = "auto"
	ModeRaw  = "raw"
	ModeLine = "line"
)

const (
	keyInterrupt         = 0x03
	keyEndOfTransmission = 0x04
)

var ErrUnknownInputMode = errors.New("unknown input mode")

type KeyReader interface {
	ReadKey() (byte, error)
	// Restore puts the terminal back into its normal mode if a read left it raw.
	Restore() error
}

// NewKeyReader picks the keystroke source for mode. In auto mode a terminal gets
// the raw reader and anything else (pipes, files) the line reader.
func NewKeyReader(mode string, file *os.File, in *bufio.Reader) (KeyReader, error) {
	fd := int(file.Fd()) //nolint: gosec // file descriptors fit in int

	switch mode {
	case ModeAuto:
		if term.IsTerminal(fd) {
			return NewRawKeyReader(fd, in), nil
		}

		return NewLineKeyReader(in), nil
	case ModeRaw:
		if !term.IsTerminal(fd) {
			return nil, fmt.Errorf("%w: %s is not a terminal", apperror.ErrUnsupportedInputDevice, file.Name())
		}

		return NewRawKeyReader(fd, in), nil
	case ModeLine:
		return NewLineKeyReader(in), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownInputMode, mode)
	}
}

// RawKeyReader switches the terminal to raw mode for exactly one keystroke.
type RawKeyReader struct {
	fd int
	in *bufio.Reader

	mu    sync.Mutex
	state *term.State
}

func NewRawKeyReader(fd int, in *bufio.Reader) *RawKeyReader {
	return &RawKeyReader{
		fd: fd,
		in: in,
	}
}

func (that *RawKeyReader) ReadKey() (byte, error) {
	state, err := term.MakeRaw(that.fd)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperror.ErrUnsupportedInputDevice, err)
	}

	that.mu.Lock()
	that.state = state
	that.mu.Unlock()

	defer func() {
		_ = that.Restore()
	}()

	return readKey(that.in)
}

// Restore is safe to call from another goroutine while ReadKey is blocked.
func (that *RawKeyReader) Restore() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.state == nil {
		return nil
	}

	state := that.state
	that.state = nil

	if err := term.Restore(that.fd, state); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}

	return nil
}

// LineKeyReader reads keys from buffered input such as a pipe. Line breaks are skipped,
// and the one that ends the line of a key is consumed with it so a following
// line read starts on a fresh line.
type LineKeyReader struct {
	in *bufio.Reader
}

func NewLineKeyReader(in *bufio.Reader) *LineKeyReader {
	return &LineKeyReader{
		in: in,
	}
}

func (that *LineKeyReader) ReadKey() (byte, error) {
	for {
		key, err := readKey(that.in)
		if err != nil {
			return 0, err
		}

		if key != '\n' && key != '\r' {
			that.skipLineBreak()
			return key, nil
		}
	}
}

func (that *LineKeyReader) Restore() error {
	return nil
}

// skipLineBreak drops an already buffered "\n" or "\r\n" right after a key. It never blocks.
func (that *LineKeyReader) skipLineBreak() {
	for that.in.Buffered() > 0 {
		next, err := that.in.Peek(1)
		if err != nil {
			return
		}

		switch next[0] {
		case '\r':
			_, _ = that.in.ReadByte()
		case '\n':
			_, _ = that.in.ReadByte()
			return
		default:
			return
		}
	}
}

func readKey(in *bufio.Reader) (byte, error) {
	key, err := in.ReadByte()
	if errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("%w: end of input", apperror.ErrAborted)
	}

	if err != nil {
		return 0, fmt.Errorf("failed to read key: %w", err)
	}

	// raw mode delivers Ctrl-C and Ctrl-D as plain bytes
	if key == keyInterrupt || key == keyEndOfTransmission {
		return 0, apperror.ErrAborted
	}

	return key, nil
}
