package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/cardstack/internal/app"
	"github.com/llehouerou/cardstack/internal/config"
	"github.com/llehouerou/cardstack/internal/deck"
	"github.com/llehouerou/cardstack/internal/errmsg"
	"github.com/llehouerou/cardstack/internal/slider"
	"github.com/llehouerou/cardstack/internal/state"
)

// setupLogging routes slog and the slider's debug log to the log file.
// The TUI owns the terminal, so nothing may be written to stderr.
func setupLogging(cfg *config.Config) (io.Closer, error) {
	path, err := cfg.LogPath()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	slider.SetLogger(logger.With("component", "slider"))
	return f, nil
}

// loadDeck picks the deck: command line argument > config > built-in sample.
// It returns the path it tried so errors can name it.
func loadDeck(cfg *config.Config, args []string) (*deck.Deck, string, error) {
	path := cfg.Deck
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return deck.Sample(), "", nil
	}
	d, err := deck.Load(path)
	return d, path, err
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer logFile.Close()

	d, path, err := loadDeck(cfg, os.Args[1:])
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpDeckLoad, path, err))
	}

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer func() {
		if err := stateMgr.Close(); err != nil {
			slog.Error(errmsg.Format(errmsg.OpStateClose, err))
		}
	}()

	m, err := app.New(d, cfg, stateMgr)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	slog.Info("starting", "deck", d.Key(), "cards", len(d.Cards))

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
