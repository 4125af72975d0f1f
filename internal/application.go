package application

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DevSlashRichie/tik-tak-toe/internal/config"
	"github.com/DevSlashRichie/tik-tak-toe/internal/repository"
	"github.com/DevSlashRichie/tik-tak-toe/internal/repository/storage"
	"github.com/DevSlashRichie/tik-tak-toe/internal/usecase"
	"github.com/DevSlashRichie/tik-tak-toe/transport/terminal"
)

// exit status used when the process is stopped by a signal
const exitInterrupted = 130

// RunApp - runs the game session on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	records, closeRecords, err := initRecords(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRecords()

	in := bufio.NewReader(os.Stdin)

	keys, err := terminal.NewKeyReader(conf.InputMode, os.Stdin, in)
	if err != nil {
		return fmt.Errorf("could not open keyboard input: %w", err)
	}

	// the session blocks on keyboard input, so a signal ends the process right away
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()

		if restoreErr := keys.Restore(); restoreErr != nil {
			log.Error("could not restore terminal", "error", restoreErr)
		}

		os.Exit(exitInterrupted)
	}()

	lines := terminal.NewLineReader(in, os.Stdout)
	view := terminal.NewRenderer(os.Stdout, conf.Color, conf.ClearScreen)

	if err = view.RenderWelcome(); err != nil {
		return fmt.Errorf("could not write to terminal: %w", err)
	}

	gameManager := usecase.NewGameManager(logger, keys, view, records)
	session := usecase.NewSession(logger, gameManager, lines, keys, view)

	log.Info("Starting session", "input_mode", conf.InputMode, "history_file", conf.HistoryFile)

	if err = session.Run(ctx); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	return nil
}

// initRecords builds the archive: the history file always, Redis when enabled.
func initRecords(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.RecordRepository, func(), error) {
	repos := []repository.RecordRepository{
		repository.NewFileRecordRepository(conf.HistoryFile),
	}

	if !conf.Redis.Enabled {
		return repository.NewMultiRecordRepository(repos...), func() {}, nil
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	repos = append(repos, repository.NewRedisRecordRepository(redisStorage, conf.Redis.Key))

	closeRecords := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewMultiRecordRepository(repos...), closeRecords, nil
}
