package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/castwave/castwave/internal/api"
	"github.com/castwave/castwave/internal/audio"
	"github.com/castwave/castwave/internal/catalog"
	"github.com/castwave/castwave/internal/config"
	"github.com/castwave/castwave/internal/favorites"
	"github.com/castwave/castwave/internal/log"
	"github.com/castwave/castwave/internal/nav"
	"github.com/castwave/castwave/internal/playback"
	"github.com/castwave/castwave/internal/store"
	"github.com/castwave/castwave/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	// Handle version flag
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("castwave %s\n", Version)
		return
	}

	// Optional deep link, e.g. "podcast/10716" or "favorites"
	initialRoute := flag.Arg(0)

	if err := run(initialRoute); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(initialRoute string) error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting castwave", "version", Version)

	// Open the persistence database
	persistence, err := store.New(config.DefaultDataPath())
	if err != nil {
		return fmt.Errorf("failed to open data store: %w", err)
	}
	defer persistence.Close()

	// Create catalog API client
	client := api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, logger)

	// Create services
	repo := catalog.NewRepository(client, logger)
	favs := favorites.NewStore(persistence, logger)
	player := audio.NewPlayer(cfg.Player.Command, logger)
	session := playback.NewSession(player, persistence, logger)
	bridge := nav.NewBridge(logger)

	// Create TUI model
	model := tui.NewModel(repo, favs, session, bridge, persistence, cfg.UI.PageSize, cfg.UI.DarkMode, initialRoute)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	// Backend callbacks arrive on the player's goroutine; forward them as
	// messages so session mutation stays on the update loop.
	player.SetEvents(tui.NewAudioEventsForwarder(p))

	// Seed the session from the last run before any UI renders
	if session.Restore() {
		logger.Info("restored playback session")
	}

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	session.Shutdown()
	logger.Info("shutting down")
	return nil
}
