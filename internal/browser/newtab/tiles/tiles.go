// Package tiles shows the shortcut grid on the new tab page and keeps it in
// sync with the tile store.
package tiles

import (
	"context"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"shell/internal/browser/theme"
	"shell/internal/reflex"
	"shell/internal/store"
	"shell/internal/types"
	"shell/internal/unknown"
)

const (
	perRow      = 4
	maxShortcut = 9
)

type Model struct {
	Items  []types.Tile
	Ready  bool
	Status string
}

type Action interface {
	isTilesAction()
}

type Load struct{}

type Loaded struct {
	Tiles []types.Tile
	Err   error
}

// Open is observed by the browser, which turns it into a new tab.
type Open struct{ URL string }

type Add struct {
	URL   string
	Title string
}

type Remove struct{ URL string }

// Pin keeps a tile ahead of unpinned ones once the grid reloads.
type Pin struct {
	URL    string
	Pinned bool
}

// Toggle adds URL when it is not a tile and removes it otherwise.
type Toggle struct {
	URL   string
	Title string
}

type Saved struct{ Err error }

func (Load) isTilesAction()   {}
func (Loaded) isTilesAction() {}
func (Open) isTilesAction()   {}
func (Add) isTilesAction()    {}
func (Remove) isTilesAction() {}
func (Pin) isTilesAction()    {}
func (Toggle) isTilesAction() {}
func (Saved) isTilesAction()  {}

// Init seeds the store with defaults on first run and loads the stored
// tiles.
func Init(tiles store.TileStore, defaults []types.Tile) (Model, reflex.Effects[Action]) {
	if tiles == nil {
		return Model{Items: cloneTiles(defaults), Ready: true}, reflex.None[Action]()
	}
	seeds := make([]*types.Tile, 0, len(defaults))
	for i := range defaults {
		tile := defaults[i]
		seeds = append(seeds, &tile)
	}
	return Model{}, reflex.Perform(func(ctx context.Context) Action {
		if _, err := tiles.Seed(ctx, seeds); err != nil {
			return Loaded{Err: fmt.Errorf("seed tiles: %w", err)}
		}
		return list(ctx, tiles)
	})
}

func Update(tiles store.TileStore, model Model, action Action) (Model, reflex.Effects[Action]) {
	switch action := action.(type) {
	case Load:
		if tiles == nil {
			return model, reflex.None[Action]()
		}
		return model, reflex.Perform(func(ctx context.Context) Action {
			return list(ctx, tiles)
		})
	case Loaded:
		model.Ready = true
		if action.Err != nil {
			model.Status = action.Err.Error()
			return model, reflex.None[Action]()
		}
		model.Items = cloneTiles(action.Tiles)
		model.Status = ""
		return model, reflex.None[Action]()
	case Add:
		url := strings.TrimSpace(action.URL)
		if url == "" || Has(model, url) {
			return model, reflex.None[Action]()
		}
		title := strings.TrimSpace(action.Title)
		if title == "" {
			title = url
		}
		tile := types.Tile{URL: url, Title: title, Position: nextPosition(model.Items)}
		model.Items = append(cloneTiles(model.Items), tile)
		return model, persist(tiles, func(ctx context.Context) error {
			_, err := tiles.Upsert(ctx, &tile)
			return err
		})
	case Remove:
		url := strings.TrimSpace(action.URL)
		if !Has(model, url) {
			return model, reflex.None[Action]()
		}
		next := make([]types.Tile, 0, len(model.Items))
		for _, tile := range model.Items {
			if tile.URL != url {
				next = append(next, tile)
			}
		}
		model.Items = next
		return model, persist(tiles, func(ctx context.Context) error {
			return tiles.Delete(ctx, url)
		})
	case Pin:
		url := strings.TrimSpace(action.URL)
		items := cloneTiles(model.Items)
		for i := range items {
			if items[i].URL != url || items[i].Pinned == action.Pinned {
				continue
			}
			items[i].Pinned = action.Pinned
			tile := items[i]
			model.Items = items
			return model, persist(tiles, func(ctx context.Context) error {
				_, err := tiles.Upsert(ctx, &tile)
				return err
			})
		}
		return model, reflex.None[Action]()
	case Toggle:
		if Has(model, strings.TrimSpace(action.URL)) {
			return Update(tiles, model, Remove{URL: action.URL})
		}
		return Update(tiles, model, Add{URL: action.URL, Title: action.Title})
	case Saved:
		if action.Err == nil {
			return model, reflex.None[Action]()
		}
		// The optimistic change did not stick; show why and reload.
		model.Status = action.Err.Error()
		return Update(tiles, model, Load{})
	default:
		return unknown.Update(model, action)
	}
}

func Has(model Model, url string) bool {
	for _, tile := range model.Items {
		if tile.URL == url {
			return true
		}
	}
	return false
}

func list(ctx context.Context, tiles store.TileStore) Action {
	stored, err := tiles.List(ctx)
	if err != nil {
		return Loaded{Err: fmt.Errorf("list tiles: %w", err)}
	}
	out := make([]types.Tile, 0, len(stored))
	for _, tile := range stored {
		if tile != nil {
			out = append(out, *tile)
		}
	}
	return Loaded{Tiles: out}
}

func persist(tiles store.TileStore, write func(context.Context) error) reflex.Effects[Action] {
	if tiles == nil {
		return reflex.None[Action]()
	}
	return reflex.Perform(func(ctx context.Context) Action {
		return Saved{Err: write(ctx)}
	})
}

// nextPosition mirrors the store: new tiles go one past the highest position.
func nextPosition(items []types.Tile) int {
	next := 0
	for _, tile := range items {
		next = max(next, tile.Position+1)
	}
	return next
}

func cloneTiles(tiles []types.Tile) []types.Tile {
	if tiles == nil {
		return nil
	}
	return append([]types.Tile(nil), tiles...)
}

type Props struct {
	Model  Model
	IsDark bool
}

func Render(props Props, address reflex.Address[Action]) reflex.Node {
	model := props.Model
	if !model.Ready {
		return reflex.Text("loading tiles…").Styled(theme.Help)
	}
	style := theme.TileLight
	if props.IsDark {
		style = theme.TileDark
	}
	var rows []reflex.Node
	var row []reflex.Node
	for i, tile := range model.Items {
		row = append(row, tileView(tile, i+1, style, address))
		if len(row) == perRow {
			rows = append(rows, reflex.Row(row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, reflex.Row(row...))
	}
	if len(rows) == 0 {
		rows = append(rows, reflex.Text("no tiles yet").Styled(theme.Help))
	}
	if model.Status != "" {
		rows = append(rows, reflex.Text(model.Status).Styled(theme.StatusError))
	}
	return reflex.Column(rows...)
}

func tileView(tile types.Tile, position int, style lipgloss.Style, address reflex.Address[Action]) reflex.Node {
	inner := theme.TileWidth - 4
	title := tile.Title
	if title == "" {
		title = tile.URL
	}
	label := title
	if position <= maxShortcut {
		label = fmt.Sprintf("%d %s", position, title)
	}
	label = runewidth.FillRight(runewidth.Truncate(label, inner, "…"), inner)
	host := runewidth.FillRight(runewidth.Truncate(trimScheme(tile.URL), inner, "…"), inner)
	node := reflex.Text(label + "\n" + host).Styled(style)
	if position > maxShortcut {
		return node
	}
	return reflex.On(node, fmt.Sprint(position), "open "+title, address, Action(Open{URL: tile.URL}))
}

func trimScheme(url string) string {
	for _, prefix := range []string{"https://", "http://"} {
		url = strings.TrimPrefix(url, prefix)
	}
	return strings.TrimPrefix(url, "www.")
}

func View(model Model, address reflex.Address[Action], isDark bool) reflex.Node {
	return reflex.Thunk("tiles", Render, Props{Model: model, IsDark: isDark}, address)
}
