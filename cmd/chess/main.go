package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbeisheim/chess-console/internal/config"
	"github.com/benbeisheim/chess-console/internal/controller"
	"github.com/benbeisheim/chess-console/internal/service"
	"github.com/benbeisheim/chess-console/internal/ui"
	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "chess:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.NewConfig()
	flag.BoolVar(&cfg.ASCII, "ascii", cfg.ASCII, "draw pieces as letters")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file, empty to disable logging")
	logLevel := flag.String("log-level", cfg.LogLevel.String(), "debug, info, warn or error")
	flag.Parse()

	if err := cfg.SetLogLevel(*logLevel); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	// Initialize services
	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	screen := ui.NewScreen(s, cfg.ASCII)
	defer screen.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		// Unblocks a pending read, which then reports a quit.
		<-ctx.Done()
		screen.Close()
	}()

	gameController := controller.NewGameController(gameService, screen)
	slog.Info("session started", "match", gameService.MatchID(), "ascii", cfg.ASCII)
	err = gameController.Run(ctx)
	slog.Info("session ended", "err", err)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// setupLogging points the default slog logger at the configured file. The
// terminal is owned by the board, so nothing is logged there.
func setupLogging(cfg *config.Config) (func(), error) {
	if cfg.LogFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel})))
	return func() { f.Close() }, nil
}
