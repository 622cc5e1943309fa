package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"shell/internal/browser"
	"shell/internal/browser/keys"
	"shell/internal/config"
	"shell/internal/logging"
	"shell/internal/store"
	"shell/internal/types"
)

// uiRunner blocks until the browser exits.
type uiRunner func(ctx context.Context, opts browser.Options) error

type UICommand struct {
	stderr         io.Writer
	loadConfig     configLoader
	openRepository repositoryOpener
	run            uiRunner
	version        string
}

func NewUICommand(stderr io.Writer, loadConfig configLoader, openRepository repositoryOpener, run uiRunner, version string) *UICommand {
	return &UICommand{
		stderr:         stderr,
		loadConfig:     loadConfig,
		openRepository: openRepository,
		run:            run,
		version:        version,
	}
}

func (c *UICommand) Run(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	ephemeral := fs.Bool("ephemeral", false, "keep tiles and the session in memory only")
	maxTabs := fs.Int("max-tabs", 0, "maximum number of open tabs (0 uses the config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog := configureUILogging(cfg)
	defer closeLog()
	logger = logger.With(logging.F("version", c.version))

	keyPath, err := cfg.ResolveKeybindingsPath()
	if err != nil {
		return err
	}
	keyMap, err := keys.Load(keyPath)
	if err != nil {
		return err
	}

	var repo store.Repository
	if *ephemeral {
		repo = store.NewMemoryRepository()
	} else {
		repo, err = c.openRepository(cfg)
		if err != nil {
			return err
		}
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("repository close failed", logging.Err(err))
		}
	}()

	limit := cfg.MaxTabs()
	if *maxTabs > 0 {
		limit = *maxTabs
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("ui starting", logging.F("urls", len(fs.Args())), logging.F("ephemeral", *ephemeral))
	err = c.run(ctx, browser.Options{
		Repository:  repo,
		Keys:        keyMap,
		MaxTabs:     limit,
		SidebarOpen: cfg.SidebarOpen(),
		Wallpaper:   cfg.Wallpaper(),
		Tiles:       tilesFromConfig(cfg.Tiles()),
		URLs:        fs.Args(),
		Logger:      logger,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func runBrowser(ctx context.Context, opts browser.Options) error {
	_, err := browser.New(opts).Run(ctx)
	return err
}

// configureUILogging points the default logger at the UI log file. The
// terminal belongs to the UI, so logging is discarded when the file cannot
// be opened.
func configureUILogging(cfg config.Config) (logging.Logger, func()) {
	level := logging.ParseLevel(cfg.LogLevel())
	path, err := config.LogPath()
	if err != nil {
		logging.SetDefault(logging.Nop())
		return logging.Default(), func() {}
	}
	logger, closer, err := logging.OpenFile(path, level)
	if err != nil {
		logging.SetDefault(logging.Nop())
		return logging.Default(), func() {}
	}
	logging.SetDefault(logger)
	return logger, func() {
		logging.SetDefault(logging.Nop())
		_ = closer.Close()
	}
}

func tilesFromConfig(in []config.TileConfig) []types.Tile {
	out := make([]types.Tile, 0, len(in))
	for i, tile := range in {
		out = append(out, types.Tile{URL: tile.URL, Title: tile.Title, Position: i})
	}
	return out
}
