package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	app "github.com/DevSlashRichie/tik-tak-toe/internal"
	"github.com/DevSlashRichie/tik-tak-toe/internal/config"
)

const (
	configPathEnv     = "TICTACTOE_CONFIG"
	defaultConfigPath = "config.yml"
	logFileMode       = 0o644
)

// main - is the entry point of the game. It loads the configuration, sets up the logger and runs the session.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger, closeLog := initLogger(conf)
	defer closeLog()

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	path := os.Getenv(configPathEnv)
	if path == "" {
		path = defaultConfigPath
	}

	return config.MustLoad(path)
}

// initialize logger. Stdout belongs to the board, so logs go to the configured file.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var out io.Writer = io.Discard
	closeLog := func() {}

	if conf.LogFile != "" {
		file, err := os.OpenFile(conf.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode)
		if err != nil {
			panic(fmt.Errorf("failed to open log file: %w", err))
		}

		out = file
		closeLog = func() {
			_ = file.Close()
		}
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closeLog
}
