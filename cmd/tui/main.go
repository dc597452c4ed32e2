package main

import (
	"fmt"
	"os"

	"storefront/config"
	"storefront/internal/clients"
	"storefront/internal/tui"
	"storefront/internal/usecase"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

func main() {
	bootLogger := logrus.New()
	bootLogger.SetOutput(os.Stderr)
	cfg := config.LoadConfig(bootLogger)

	// stdout belongs to the terminal UI
	logger := cfg.NewLogger()
	logFile, err := os.OpenFile(cfg.TUILogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", cfg.TUILogFile, err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger.SetOutput(logFile)
	logger.Info("Starting Storefront TUI...")

	sortOpts, err := usecase.NewSortOptions(cfg.SortLocale, cfg.PriceSortParsing == config.PriceSortThousands)
	if err != nil {
		logger.Fatalf("FATAL: Invalid sort configuration: %v", err)
	}

	catalogClient := clients.NewCatalogHTTPClient(cfg.CatalogAPIURL, cfg.HTTPClientTimeout, logger)
	storefront := usecase.NewStorefrontUseCase(catalogClient, sortOpts, logger)

	p := tea.NewProgram(tui.New(storefront, cfg.HTTPClientTimeout, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Errorf("TUI exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
	logger.Info("Storefront TUI stopped")
}
