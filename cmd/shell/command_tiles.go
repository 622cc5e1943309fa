package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"shell/internal/browser/navigator"
	"shell/internal/store"
	"shell/internal/types"
)

type TilesCommand struct {
	stdout         io.Writer
	stderr         io.Writer
	loadConfig     configLoader
	openRepository repositoryOpener
}

func NewTilesCommand(stdout, stderr io.Writer, loadConfig configLoader, openRepository repositoryOpener) *TilesCommand {
	return &TilesCommand{
		stdout:         stdout,
		stderr:         stderr,
		loadConfig:     loadConfig,
		openRepository: openRepository,
	}
}

func (c *TilesCommand) Run(args []string) error {
	if len(args) == 0 {
		return c.list(nil)
	}
	switch args[0] {
	case "list", "ls":
		return c.list(args[1:])
	case "add":
		return c.add(args[1:])
	case "remove", "rm":
		return c.remove(args[1:])
	case "pin":
		return c.pin(args[1:], true)
	case "unpin":
		return c.pin(args[1:], false)
	default:
		return fmt.Errorf("unknown tiles command: %s (want list, add, remove, pin or unpin)", args[0])
	}
}

func (c *TilesCommand) list(args []string) error {
	fs := flag.NewFlagSet("tiles list", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return c.withTiles(func(ctx context.Context, tiles store.TileStore) error {
		items, err := tiles.List(ctx)
		if err != nil {
			return err
		}
		printTiles(c.stdout, items)
		return nil
	})
}

func (c *TilesCommand) add(args []string) error {
	fs := flag.NewFlagSet("tiles add", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	title := fs.String("title", "", "tile title (defaults to the host)")
	pinned := fs.Bool("pin", false, "pin the tile")
	if err := fs.Parse(args); err != nil {
		return err
	}
	target, err := urlArg(fs)
	if err != nil {
		return err
	}
	name := *title
	if name == "" {
		name = navigator.TitleFor(target)
	}
	return c.withTiles(func(ctx context.Context, tiles store.TileStore) error {
		saved, err := tiles.Upsert(ctx, &types.Tile{URL: target, Title: name, Pinned: *pinned})
		if err != nil {
			return err
		}
		fmt.Fprintf(c.stdout, "added %s\n", saved.URL)
		return nil
	})
}

func (c *TilesCommand) remove(args []string) error {
	fs := flag.NewFlagSet("tiles remove", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	target, err := urlArg(fs)
	if err != nil {
		return err
	}
	return c.withTiles(func(ctx context.Context, tiles store.TileStore) error {
		if err := tiles.Delete(ctx, target); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("no tile for %s", target)
			}
			return err
		}
		fmt.Fprintf(c.stdout, "removed %s\n", target)
		return nil
	})
}

func (c *TilesCommand) pin(args []string, pinned bool) error {
	fs := flag.NewFlagSet("tiles pin", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	target, err := urlArg(fs)
	if err != nil {
		return err
	}
	return c.withTiles(func(ctx context.Context, tiles store.TileStore) error {
		items, err := tiles.List(ctx)
		if err != nil {
			return err
		}
		for _, tile := range items {
			if tile.URL != target {
				continue
			}
			tile.Pinned = pinned
			_, err := tiles.Upsert(ctx, tile)
			return err
		}
		return fmt.Errorf("no tile for %s", target)
	})
}

// withTiles opens the repository and seeds the configured default tiles
// the same way the new tab page does on first start.
func (c *TilesCommand) withTiles(fn func(ctx context.Context, tiles store.TileStore) error) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	repo, err := c.openRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx := context.Background()
	defaults := tilesFromConfig(cfg.Tiles())
	seed := make([]*types.Tile, 0, len(defaults))
	for i := range defaults {
		seed = append(seed, &defaults[i])
	}
	if _, err := repo.Tiles().Seed(ctx, seed); err != nil {
		return err
	}
	return fn(ctx, repo.Tiles())
}

func urlArg(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", errors.New("exactly one url is required")
	}
	target := navigator.NormalizeURL(fs.Arg(0))
	if target == "" {
		return "", errors.New("url is required")
	}
	return target, nil
}
