package browser

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"shell/internal/browser/navigator"
	"shell/internal/browser/sidebar/tabs"
	"shell/internal/deck"
	"shell/internal/logging"
	"shell/internal/reflex"
	"shell/internal/store"
	"shell/internal/types"
)

// sessionOf projects the deck onto its persisted form.
func sessionOf(model tabs.Model) types.TabSession {
	items := model.Items()
	session := types.TabSession{Tabs: make([]types.TabRecord, 0, len(items)), Selected: model.Selected}
	for _, item := range items {
		session.Tabs = append(session.Tabs, types.TabRecord{
			ID:     item.ID,
			URL:    item.Card.URL,
			Title:  item.Card.Title,
			Pinned: item.Card.Pinned,
		})
	}
	return session
}

func sameSession(a, b types.TabSession) bool {
	return a.Selected == b.Selected && slices.Equal(a.Tabs, b.Tabs)
}

// restore rebuilds a deck from a saved session. Records without an id or
// URL are dropped.
func restore(session types.TabSession) tabs.Model {
	out := deck.New[navigator.Model]()
	for _, record := range session.Tabs {
		if record.ID == "" || record.URL == "" || out.Has(record.ID) {
			continue
		}
		card := navigator.Model{ID: record.ID, URL: record.URL, Title: record.Title, Pinned: record.Pinned}
		if card.Title == "" {
			card.Title = navigator.TitleFor(record.URL)
		}
		out = out.Add(record.ID, card, false)
	}
	if out.Has(session.Selected) {
		out = out.Select(session.Selected)
	} else if len(out.Index) > 0 {
		out = out.Select(out.Index[0])
	}
	return out
}

func (a *App) loadSession() reflex.Effects[Action] {
	repo := a.opts.Repository
	if repo == nil {
		return reflex.Receive[Action](SessionLoaded{})
	}
	return reflex.Perform(func(ctx context.Context) Action {
		loaded := SessionLoaded{}
		session, err := repo.Session().Load(ctx)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			loaded.Err = fmt.Errorf("load session: %w", err)
		} else if session != nil {
			loaded.Session = *session
		}
		raw, err := repo.Preferences().Get(ctx, types.PreferenceSidebarOpen)
		if err == nil {
			if open, parseErr := strconv.ParseBool(raw); parseErr == nil {
				loaded.SidebarOpen = &open
			}
		}
		return loaded
	})
}

func (a *App) saveSession(session types.TabSession) reflex.Effects[Action] {
	repo := a.opts.Repository
	if repo == nil {
		return reflex.None[Action]()
	}
	return reflex.Perform(func(ctx context.Context) Action {
		session.SavedAt = a.opts.Now().UTC()
		if err := repo.Session().Save(ctx, &session); err != nil {
			a.opts.Logger.Warn("session save failed", logging.Err(err))
			return SessionSaved{Err: fmt.Errorf("save session: %w", err)}
		}
		return SessionSaved{}
	})
}

func (a *App) saveSidebarOpen(open bool) reflex.Effects[Action] {
	repo := a.opts.Repository
	if repo == nil {
		return reflex.None[Action]()
	}
	return reflex.Perform(func(ctx context.Context) Action {
		err := repo.Preferences().Set(ctx, types.PreferenceSidebarOpen, strconv.FormatBool(open))
		if err != nil {
			return PreferenceSaved{Err: fmt.Errorf("save sidebar preference: %w", err)}
		}
		return PreferenceSaved{}
	})
}
