package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/DevSlashRichie/tik-tak-toe/internal/apperror"
	"github.com/DevSlashRichie/tik-tak-toe/internal/entity"
	"github.com/DevSlashRichie/tik-tak-toe/internal/game"
	"github.com/stretchr/testify/mock"
)

var (
	errStorageIsFull = errors.New("storage is full")
	errScreenGone    = errors.New("screen gone")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// scriptedKeys replays keys and aborts once they run out.
type scriptedKeys struct {
	keys []byte
	read int
}

func newScriptedKeys(keys string) *scriptedKeys {
	return &scriptedKeys{keys: []byte(keys)}
}

func (that *scriptedKeys) ReadKey() (byte, error) {
	if that.read >= len(that.keys) {
		return 0, apperror.ErrAborted
	}

	key := that.keys[that.read]
	that.read++

	return key, nil
}

type scriptedLines struct {
	lines   []string
	prompts []string
}

func (that *scriptedLines) ReadLine(prompt string) (string, error) {
	that.prompts = append(that.prompts, prompt)

	if len(that.lines) == 0 {
		return "", apperror.ErrAborted
	}

	line := that.lines[0]
	that.lines = that.lines[1:]

	return line, nil
}

type recordingRenderer struct {
	frames  []game.Snapshot
	players []entity.Players
	menus   int
	notices []string
	failOn  int
}

func (that *recordingRenderer) RenderGame(players entity.Players, snapshot game.Snapshot) error {
	that.frames = append(that.frames, snapshot)
	that.players = append(that.players, players)

	if that.failOn > 0 && len(that.frames) == that.failOn {
		return errScreenGone
	}

	return nil
}

func (that *recordingRenderer) RenderMenu() error {
	that.menus++
	return nil
}

func (that *recordingRenderer) RenderNotice(message string) error {
	that.notices = append(that.notices, message)
	return nil
}

func (that *recordingRenderer) last() game.Snapshot {
	return that.frames[len(that.frames)-1]
}

type mockRecordRepo struct {
	mock.Mock
}

func (that *mockRecordRepo) Append(ctx context.Context, record *entity.Record) error {
	args := that.Called(ctx, record)
	return args.Error(0)
}

type mockGamePlayer struct {
	mock.Mock
}

func (that *mockGamePlayer) PlayGame(ctx context.Context, players entity.Players) (*entity.Record, error) {
	args := that.Called(ctx, players)

	record, _ := args.Get(0).(*entity.Record)

	return record, args.Error(1)
}
