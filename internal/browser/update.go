package browser

import (
	"context"
	"fmt"

	"shell/internal/browser/keys"
	"shell/internal/browser/location"
	"shell/internal/browser/navigator"
	"shell/internal/browser/newtab"
	"shell/internal/browser/newtab/tiles"
	"shell/internal/browser/newtab/wallpaper"
	"shell/internal/browser/sidebar"
	"shell/internal/browser/sidebar/tab"
	"shell/internal/browser/sidebar/tabs"
	"shell/internal/browser/sidebar/toolbar"
	"shell/internal/control"
	"shell/internal/cursor"
	"shell/internal/logging"
	"shell/internal/reflex"
	"shell/internal/unknown"
)

func (a *App) sidebarCursor() cursor.Cursor[Model, sidebar.Model, Action, sidebar.Action] {
	return cursor.Cursor[Model, sidebar.Model, Action, sidebar.Action]{
		Get:    func(m Model) sidebar.Model { return m.Sidebar },
		Set:    func(m Model, s sidebar.Model) Model { m.Sidebar = s; return m },
		Update: sidebar.Update,
		Tag:    SidebarAction,
	}
}

func (a *App) tabsCursor() cursor.Cursor[Model, tabs.Model, Action, tabs.Action] {
	return cursor.Cursor[Model, tabs.Model, Action, tabs.Action]{
		Get:    func(m Model) tabs.Model { return m.Tabs },
		Set:    func(m Model, t tabs.Model) Model { m.Tabs = t; return m },
		Update: tabs.Update,
		Tag:    TabsAction,
	}
}

func (a *App) newTabCursor() cursor.Cursor[Model, newtab.Model, Action, newtab.Action] {
	return cursor.Cursor[Model, newtab.Model, Action, newtab.Action]{
		Get: func(m Model) newtab.Model { return m.NewTab },
		Set: func(m Model, n newtab.Model) Model { m.NewTab = n; return m },
		Update: func(m newtab.Model, action newtab.Action) (newtab.Model, reflex.Effects[newtab.Action]) {
			return newtab.Update(a.env, m, action)
		},
		Tag: NewTabAction,
	}
}

func (a *App) locationCursor() cursor.Cursor[Model, location.Model, Action, location.Action] {
	return cursor.Cursor[Model, location.Model, Action, location.Action]{
		Get:    func(m Model) location.Model { return m.Location },
		Set:    func(m Model, l location.Model) Model { m.Location = l; return m },
		Update: location.Update,
		Tag:    LocationAction,
	}
}

func (a *App) Update(model Model, action Action) (Model, reflex.Effects[Action]) {
	switch action := action.(type) {
	case Sidebar:
		switch source := action.Source.(type) {
		case sidebar.CreateTab:
			return a.Update(model, CreateTab{})
		case sidebar.Tabs:
			return a.Update(model, Tabs{Source: source.Source})
		}
		wasOpen := model.Sidebar.IsOpen
		next, fx := a.sidebarCursor().Apply(model, action.Source)
		if next.Sidebar.IsOpen != wasOpen {
			fx = reflex.Batch(fx, a.saveSidebarOpen(next.Sidebar.IsOpen))
		}
		return next, fx
	case Tabs:
		next, fx := a.tabsCursor().Apply(model, action.Source)
		return a.settle(model.Tabs, next, fx)
	case NewTab:
		if open, ok := action.Source.(newtab.Open); ok {
			return a.Update(model, Open{URL: open.URL})
		}
		return a.newTabCursor().Apply(model, action.Source)
	case Location:
		return a.locationCursor().Apply(model, action.Source)
	case Open:
		target := navigator.NormalizeURL(action.URL)
		if target == "" {
			return model, reflex.None[Action]()
		}
		if full(model) {
			model.Status = fmt.Sprintf("tab limit reached (%d)", model.MaxTabs)
			return model, reflex.None[Action]()
		}
		newID := a.opts.NewID
		return model, reflex.Perform(func(context.Context) Action {
			return Opened{ID: newID(), URL: target}
		})
	case Opened:
		if action.ID == "" || model.Tabs.Has(action.ID) {
			return model, reflex.None[Action]()
		}
		if full(model) {
			model.Status = fmt.Sprintf("tab limit reached (%d)", model.MaxTabs)
			return model, reflex.None[Action]()
		}
		prev := model.Tabs
		model.Tabs = model.Tabs.Add(action.ID, navigator.Init(action.ID, action.URL), true)
		model.Status = ""
		next, fx := a.newTabCursor().Apply(model, newtab.Hide{})
		return a.settle(prev, next, fx)
	case CreateTab:
		if model.Sidebar.Toolbar.NewTab.Disabled() {
			return model, reflex.None[Action]()
		}
		next, fx := a.newTabCursor().Apply(model, newtab.Show{})
		next, focusFx := a.locationCursor().Apply(next, location.Focus{})
		return next, reflex.Batch(fx, focusFx)
	case Resize:
		model.Width = action.Width
		model.Height = action.Height
		return model, reflex.None[Action]()
	case Command:
		return a.command(model, action.Name)
	case SessionLoaded:
		return a.sessionLoaded(model, action)
	case SessionSaved:
		if action.Err != nil {
			model.Status = action.Err.Error()
		}
		return model, reflex.None[Action]()
	case PreferenceSaved:
		if action.Err != nil {
			a.opts.Logger.Warn("preference save failed", logging.Err(action.Err))
			model.Status = action.Err.Error()
		}
		return model, reflex.None[Action]()
	case Key:
		if !model.Location.Focused {
			return model, reflex.None[Action]()
		}
		return a.locationCursor().Apply(model, location.InputAction(action.Msg))
	default:
		return unknown.Update(model, action)
	}
}

func (a *App) sessionLoaded(model Model, action SessionLoaded) (Model, reflex.Effects[Action]) {
	if model.Restored {
		return model, reflex.None[Action]()
	}
	if action.SidebarOpen != nil {
		model.Sidebar.IsOpen = *action.SidebarOpen
	}
	fx := reflex.None[Action]()
	prev := model.Tabs
	if action.Err != nil {
		a.opts.Logger.Warn("session restore failed", logging.Err(action.Err))
		model.Status = action.Err.Error()
	} else {
		prev = restore(action.Session)
		model.Tabs = mergeTabs(prev, model.Tabs)
		a.opts.Logger.Info("session restored", logging.F("tabs", prev.Len()), logging.F("opened", model.Tabs.Len()-prev.Len()))
	}
	model.Restored = true
	if model.Tabs.Len() > 0 {
		model, fx = a.newTabCursor().Apply(model, newtab.Hide{})
	}
	opens := make([]reflex.Effects[Action], 0, len(a.opts.URLs)+1)
	opens = append(opens, fx)
	for _, url := range a.opts.URLs {
		opens = append(opens, reflex.Receive[Action](Open{URL: url}))
	}
	return a.settle(prev, model, reflex.Batch(opens...))
}

// mergeTabs appends the tabs opened before the session arrived after the
// restored ones. The most recently opened tab stays selected.
func mergeTabs(restored, early tabs.Model) tabs.Model {
	for _, item := range early.Items() {
		if !restored.Has(item.ID) {
			restored = restored.Add(item.ID, item.Card, false)
		}
	}
	if restored.Has(early.Selected) {
		restored = restored.Select(early.Selected)
	}
	return restored
}

// settle keeps everything that depends on the deck consistent after it may
// have changed: the new-tab button, the new tab page and the saved session.
func (a *App) settle(prev tabs.Model, model Model, fx reflex.Effects[Action]) (Model, reflex.Effects[Action]) {
	if disabled := full(model); disabled != model.Sidebar.Toolbar.NewTab.Disabled() {
		var more reflex.Effects[Action]
		model, more = a.sidebarCursor().Apply(model, sidebar.Toolbar{Source: toolbar.ButtonAction(control.Set(disabled))})
		fx = reflex.Batch(fx, more)
	}
	if model.Tabs.Len() == 0 && !model.NewTab.IsShown {
		var more reflex.Effects[Action]
		model, more = a.newTabCursor().Apply(model, newtab.Show{})
		fx = reflex.Batch(fx, more)
	}
	if session := sessionOf(model.Tabs); model.Restored && !sameSession(sessionOf(prev), session) {
		fx = reflex.Batch(fx, a.saveSession(session))
	}
	return model, fx
}

func full(model Model) bool {
	return model.MaxTabs > 0 && model.Tabs.Len() >= model.MaxTabs
}

func (a *App) command(model Model, name string) (Model, reflex.Effects[Action]) {
	selected, hasSelected := model.Tabs.SelectedCard()
	switch name {
	case keys.CommandQuit:
		model.Quit = true
		return model, reflex.None[Action]()
	case keys.CommandToggleSidebar:
		return a.Update(model, Sidebar{Source: sidebar.Toggle{}})
	case keys.CommandNewTab:
		return a.Update(model, CreateTab{})
	case keys.CommandCloseTab:
		if !hasSelected {
			return model, reflex.None[Action]()
		}
		return a.Update(model, Tabs{Source: tabs.Close{ID: selected.ID}})
	case keys.CommandNextTab, keys.CommandPrevTab:
		delta := 1
		if name == keys.CommandPrevTab {
			delta = -1
		}
		prev := model.Tabs
		model.Tabs = model.Tabs.SelectNext(delta)
		var fx reflex.Effects[Action]
		if model.Tabs.Len() > 0 {
			model, fx = a.newTabCursor().Apply(model, newtab.Hide{})
		}
		return a.settle(prev, model, fx)
	case keys.CommandMoveTabUp, keys.CommandMoveTabDown:
		if !hasSelected {
			return model, reflex.None[Action]()
		}
		delta := -1
		if name == keys.CommandMoveTabDown {
			delta = 1
		}
		prev := model.Tabs
		model.Tabs = model.Tabs.Move(selected.ID, delta)
		return a.settle(prev, model, reflex.None[Action]())
	case keys.CommandFocusLocation:
		value := ""
		if hasSelected && !model.NewTab.IsShown {
			value = selected.URL
		}
		return a.Update(model, Location{Source: location.Focus{Value: value}})
	case keys.CommandCopyURL:
		return a.modifySelected(model, navigator.CopyURL{})
	case keys.CommandPinTab:
		if !hasSelected {
			return model, reflex.None[Action]()
		}
		if selected.Pinned {
			return a.modifySelected(model, navigator.Unpin{})
		}
		return a.modifySelected(model, navigator.Pin{})
	case keys.CommandToggleTile:
		if !hasSelected {
			return model, reflex.None[Action]()
		}
		return a.Update(model, NewTab{Source: newtab.Tiles{Source: tiles.Toggle{URL: selected.URL, Title: selected.Title}}})
	case keys.CommandShowHome:
		if model.NewTab.IsShown && model.Tabs.Len() > 0 {
			return a.Update(model, NewTab{Source: newtab.Hide{}})
		}
		return a.Update(model, NewTab{Source: newtab.Show{}})
	case keys.CommandCycleWallpaper:
		if !model.NewTab.IsShown {
			return model, reflex.None[Action]()
		}
		return a.Update(model, NewTab{Source: newtab.Wallpaper{Source: wallpaper.Next{}}})
	case keys.CommandLocationSubmit:
		if !model.Location.Focused {
			return model, reflex.None[Action]()
		}
		value := location.Value(model.Location)
		next, fx := a.Update(model, Location{Source: location.Blur{}})
		if value == "" {
			return next, fx
		}
		var more reflex.Effects[Action]
		if hasSelected && !next.NewTab.IsShown {
			next, more = a.modifySelected(next, navigator.Load{URL: value})
		} else {
			next, more = a.Update(next, Open{URL: value})
		}
		return next, reflex.Batch(fx, more)
	case keys.CommandLocationCancel:
		return a.Update(model, Location{Source: location.Blur{}})
	default:
		return unknown.Update[Model, Action](model, Command{Name: name})
	}
}

func (a *App) modifySelected(model Model, action navigator.Action) (Model, reflex.Effects[Action]) {
	if _, ok := model.Tabs.SelectedCard(); !ok {
		return model, reflex.None[Action]()
	}
	return a.Update(model, Tabs{Source: tabs.Modify{ID: model.Tabs.Selected, Source: tab.NavigatorAction(action)}})
}
