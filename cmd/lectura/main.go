package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"lectura-cli/internal/api"
	"lectura-cli/internal/config"
	"lectura-cli/internal/logging"
	"lectura-cli/internal/session"
	"lectura-cli/internal/tui"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	// ──── Step 2: Initialize File Logger ────
	// The TUI owns the terminal, so logs go to a file.
	logger, err := logging.New(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	logger.Info("starting lectura", zap.String("api", cfg.APIBaseURL))

	// ──── Step 3: Restore Persisted Session ────
	sess, err := session.Load(cfg.TokenPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Session load failed: %v\n", err)
		os.Exit(1)
	}

	// ──── Step 4: Initialize API Client ────
	client := api.NewClient(cfg.APIBaseURL, sess, time.Duration(cfg.RequestTimeoutSeconds)*time.Second)

	// ──── Step 5: Run the TUI ────
	app := tui.NewApp(cfg, logger, client, sess)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("program exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}
