// Package tabs renders the open tabs held in a deck and routes actions back
// to the card they came from.
package tabs

import (
	"shell/internal/browser/keys"
	"shell/internal/browser/navigator"
	"shell/internal/browser/sidebar/tab"
	"shell/internal/browser/theme"
	"shell/internal/deck"
	"shell/internal/reflex"
	"shell/internal/unknown"
)

type ID = deck.ID

type Model = deck.Model[navigator.Model]

type Action interface {
	isTabsAction()
}

type Close struct{ ID ID }

type Activate struct{ ID ID }

type Modify struct {
	ID     ID
	Source tab.Action
}

func (Close) isTabsAction()    {}
func (Activate) isTabsAction() {}
func (Modify) isTabsAction()   {}

// ByID addresses a tab's actions to the card stored under id. Close and
// Activate become list-level actions; everything else modifies the card.
func ByID(id ID) func(tab.Action) Action {
	return func(action tab.Action) Action {
		switch action.(type) {
		case tab.Close:
			return Close{ID: id}
		case tab.Activate:
			return Activate{ID: id}
		default:
			return Modify{ID: id, Source: action}
		}
	}
}

func Update(model Model, action Action) (Model, reflex.Effects[Action]) {
	switch action := action.(type) {
	case Close:
		return model.Remove(action.ID), reflex.None[Action]()
	case Activate:
		return model.Select(action.ID), reflex.None[Action]()
	case Modify:
		return deck.Modify(model, action.ID, action.Source, tab.Update, ByID(action.ID))
	default:
		return unknown.Update(model, action)
	}
}

type Context struct {
	Width int
	Keys  keys.Map
}

type Props struct {
	Model   Model
	Context Context
}

// Render lists tabs strictly in Index order.
func Render(props Props, address reflex.Address[Action]) reflex.Node {
	items := props.Model.Items()
	if len(items) == 0 {
		return reflex.Text("no open tabs").Styled(theme.Help)
	}
	rows := make([]reflex.Node, 0, len(items))
	for i, item := range items {
		rows = append(rows, tab.View(
			tab.Props{
				Card: item.Card,
				Context: tab.Context{
					Position: i + 1,
					Selected: item.Selected,
					Width:    props.Context.Width,
					Keys:     props.Context.Keys,
				},
			},
			reflex.Forward(address, ByID(item.ID)),
		))
	}
	return reflex.Column(rows...)
}

func View(model Model, address reflex.Address[Action], context Context) reflex.Node {
	return reflex.Thunk("Browser/Sidebar/Tabs", Render, Props{Model: model, Context: context}, address)
}
