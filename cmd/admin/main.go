package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/offineeds/pim-admin/internal/config"
	"github.com/offineeds/pim-admin/internal/schema"
	"github.com/offineeds/pim-admin/internal/service"
	"github.com/offineeds/pim-admin/internal/tui"
	"github.com/offineeds/pim-admin/pkg/baserow"
)

// main is the application entrypoint for the PIM admin console.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger. The terminal belongs to the UI, so logs go to a file.
	logFile, err := os.OpenFile("pim-admin.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	setupLogger(cfg.Env, logFile)
	log.Info().Str("env", cfg.Env).Msg("starting pim admin")

	// 3. Load the field mapping
	sch, err := schema.Load(cfg.FieldMapPath)
	if err != nil {
		log.Error().Err(err).Msg("field mapping load failed")
		fmt.Fprintf(os.Stderr, "field mapping load failed: %v\n", err)
		os.Exit(1)
	}

	// 4. Initialize the Baserow client
	client, err := baserow.NewClient(baserow.Config{
		BaseURL: cfg.Baserow.BaseURL,
		Token:   cfg.Baserow.Token,
	})
	if err != nil {
		log.Error().Err(err).Msg("baserow client init failed")
		fmt.Fprintf(os.Stderr, "baserow client init failed: %v\n", err)
		os.Exit(1)
	}

	// 5. Initialize services
	products := service.NewProductService(client, sch, cfg.Baserow.ProductTableID)
	categories := service.NewCategoryService(client, sch, cfg.Baserow.CategoryTableID)

	// 6. Run the UI
	program := tea.NewProgram(tui.New(products, categories), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Error().Err(err).Msg("ui terminated with error")
		fmt.Fprintf(os.Stderr, "ui terminated with error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(env string, w io.Writer) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
