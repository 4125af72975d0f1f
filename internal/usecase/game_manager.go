package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DevSlashRichie/tik-tak-toe/internal/apperror"
	"github.com/DevSlashRichie/tik-tak-toe/internal/entity"
	"github.com/DevSlashRichie/tik-tak-toe/internal/game"
	"github.com/DevSlashRichie/tik-tak-toe/internal/tictactoe"
)

var ErrRecordNotSaved = errors.New("game history could not be saved")

type keyReader interface {
	ReadKey() (byte, error)
}

type renderer interface {
	RenderGame(players entity.Players, snapshot game.Snapshot) error
	RenderMenu() error
	RenderNotice(message string) error
}

type recordRepo interface {
	Append(ctx context.Context, record *entity.Record) error
}

type GameManager struct {
	logger   *slog.Logger
	keys     keyReader
	renderer renderer
	records  recordRepo
	now      func() time.Time
}

func NewGameManager(logger *slog.Logger, keys keyReader, renderer renderer, records recordRepo) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game"),

		keys:     keys,
		renderer: renderer,
		records:  records,
		now:      time.Now,
	}
}

// PlayGame runs the interactive loop of one game until it is won or tied, then archives it.
// The board is rendered once per tick, including the tick that ended the game.
func (that *GameManager) PlayGame(ctx context.Context, players entity.Players) (*entity.Record, error) {
	log := that.logger.With("method", "PlayGame")

	engine := game.NewEngine()
	log.Info("game started", "player_x", players.First, "player_o", players.Second)

	for {
		if err := that.renderer.RenderGame(players, engine.Snapshot()); err != nil {
			return nil, fmt.Errorf("failed render game: %w", err)
		}

		if engine.State().IsTerminal() {
			break
		}

		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", apperror.ErrAborted, err)
		}

		key, err := that.keys.ReadKey()
		if err != nil {
			return nil, fmt.Errorf("failed read key: %w", err)
		}

		if err = that.apply(log, engine, tictactoe.ParseToken(key)); err != nil {
			return nil, err
		}
	}

	record := entity.NewRecord(engine.History(), players, engine.Outcome(), that.now())
	log.Info("game finished", "id", record.ID, "outcome", record.Outcome.String(), "moves", len(record.Moves))

	if err := that.records.Append(ctx, record); err != nil {
		log.Error("failed to save record", "error", err)

		return record, fmt.Errorf("%w: %w", ErrRecordNotSaved, err)
	}

	log.Info("record saved", "id", record.ID)

	return record, nil
}

func (that *GameManager) apply(log *slog.Logger, engine *game.Engine, token tictactoe.Token) error {
	mark := engine.NextMark()
	cursor := engine.Cursor()
	moves := engine.History().Len()

	if _, err := engine.Apply(token); err != nil {
		return fmt.Errorf("failed apply input: %w", err)
	}

	switch {
	case engine.History().Len() > moves:
		log.Debug("mark placed", "mark", mark.String(), "position", cursor.String())
	case engine.Notice() != nil:
		log.Debug("placement rejected", "position", cursor.String(), "reason", engine.Notice().Error())
	}

	return nil
}
