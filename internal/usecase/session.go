package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/DevSlashRichie/tik-tak-toe/internal/apperror"
	"github.com/DevSlashRichie/tik-tak-toe/internal/entity"
)

// Action is what the session does after a game ends.
type Action int

const (
	// ActionContinue plays again with the same players.
	ActionContinue Action = iota
	// ActionRestart asks for new player names first.
	ActionRestart
	ActionQuit
)

const (
	MenuKeyPlayAgain  = 'p'
	MenuKeyNewPlayers = 'n'
	MenuKeyQuit       = 'q'
)

const (
	promptFirstPlayer  = "Player 1, tell me your name: "
	promptSecondPlayer = "Player 2, tell me your name: "
)

// ParseMenuChoice maps a menu key to an action. Unknown keys are reported with false.
func ParseMenuChoice(key byte) (Action, bool) {
	switch key {
	case MenuKeyPlayAgain:
		return ActionContinue, true
	case MenuKeyNewPlayers:
		return ActionRestart, true
	case MenuKeyQuit:
		return ActionQuit, true
	default:
		return ActionQuit, false
	}
}

type lineReader interface {
	ReadLine(prompt string) (string, error)
}

type gamePlayer interface {
	PlayGame(ctx context.Context, players entity.Players) (*entity.Record, error)
}

type Session struct {
	logger   *slog.Logger
	games    gamePlayer
	lines    lineReader
	keys     keyReader
	renderer renderer
}

func NewSession(logger *slog.Logger, games gamePlayer, lines lineReader, keys keyReader, renderer renderer) *Session {
	return &Session{
		logger: logger.With("component", "session"),

		games:    games,
		lines:    lines,
		keys:     keys,
		renderer: renderer,
	}
}

// Run plays games until the players quit or abort. Only unrecoverable errors are returned.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	players, err := that.askPlayers()
	if err != nil {
		return that.finish(log, err)
	}

	var action Action

	for {
		_, err = that.games.PlayGame(ctx, players)
		switch {
		case errors.Is(err, ErrRecordNotSaved):
			// the game itself finished, only the archive failed
			if renderErr := that.renderer.RenderNotice("Could not save the game history."); renderErr != nil {
				return fmt.Errorf("failed render notice: %w", renderErr)
			}
		case err != nil:
			return that.finish(log, err)
		}

		action, err = that.askAction()
		if err != nil {
			return that.finish(log, err)
		}

		switch action {
		case ActionContinue:
			log.Debug("rematch", "player_x", players.First, "player_o", players.Second)
		case ActionRestart:
			if players, err = that.askPlayers(); err != nil {
				return that.finish(log, err)
			}
		case ActionQuit:
			log.Info("session finished")
			return nil
		}
	}
}

func (that *Session) finish(log *slog.Logger, err error) error {
	if errors.Is(err, apperror.ErrAborted) {
		log.Info("session aborted", "reason", err.Error())
		return nil
	}

	return err
}

func (that *Session) askPlayers() (entity.Players, error) {
	first, err := that.askName(promptFirstPlayer)
	if err != nil {
		return entity.Players{}, err
	}

	second, err := that.askName(promptSecondPlayer)
	if err != nil {
		return entity.Players{}, err
	}

	return entity.Players{First: first, Second: second}, nil
}

// askName prompts until a non-empty name is entered.
func (that *Session) askName(prompt string) (string, error) {
	for {
		line, err := that.lines.ReadLine(prompt)
		if err != nil {
			return "", fmt.Errorf("failed read name: %w", err)
		}

		name, err := entity.NormalizeName(line)
		if errors.Is(err, apperror.ErrInvalidName) {
			if err = that.renderer.RenderNotice("Please enter a valid name."); err != nil {
				return "", fmt.Errorf("failed render notice: %w", err)
			}

			continue
		}

		return name, nil
	}
}

func (that *Session) askAction() (Action, error) {
	for {
		if err := that.renderer.RenderMenu(); err != nil {
			return ActionQuit, fmt.Errorf("failed render menu: %w", err)
		}

		key, err := that.keys.ReadKey()
		if err != nil {
			return ActionQuit, fmt.Errorf("failed read menu choice: %w", err)
		}

		if action, ok := ParseMenuChoice(key); ok {
			return action, nil
		}

		if err = that.renderer.RenderNotice("Please enter a valid option."); err != nil {
			return ActionQuit, fmt.Errorf("failed render notice: %w", err)
		}
	}
}
