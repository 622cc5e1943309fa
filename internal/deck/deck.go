// Package deck holds an ordered collection of cards keyed by id. Order is
// owned by Index; Cards is only a lookup table.
package deck

import (
	"maps"
	"slices"

	"shell/internal/cursor"
	"shell/internal/reflex"
)

type ID = string

type Model[C any] struct {
	Index    []ID
	Cards    map[ID]C
	Selected ID
}

type Item[C any] struct {
	ID       ID
	Card     C
	Selected bool
}

func New[C any]() Model[C] {
	return Model[C]{Cards: map[ID]C{}}
}

// Items returns the cards in Index order. Ids without a card are skipped.
func (m Model[C]) Items() []Item[C] {
	out := make([]Item[C], 0, len(m.Index))
	for _, id := range m.Index {
		card, ok := m.Cards[id]
		if !ok {
			continue
		}
		out = append(out, Item[C]{ID: id, Card: card, Selected: id == m.Selected})
	}
	return out
}

// Len counts the cards that Items would return.
func (m Model[C]) Len() int {
	n := 0
	for _, id := range m.Index {
		if _, ok := m.Cards[id]; ok {
			n++
		}
	}
	return n
}

func (m Model[C]) Get(id ID) (C, bool) {
	card, ok := m.Cards[id]
	return card, ok
}

func (m Model[C]) Has(id ID) bool {
	_, ok := m.Cards[id]
	return ok && slices.Contains(m.Index, id)
}

func (m Model[C]) SelectedCard() (C, bool) {
	if m.Selected == "" {
		var zero C
		return zero, false
	}
	return m.Get(m.Selected)
}

// Add appends card under id, or replaces the card in place when id is
// already present.
func (m Model[C]) Add(id ID, card C, selected bool) Model[C] {
	if id == "" {
		return m
	}
	cards := cloneCards(m.Cards)
	cards[id] = card
	if !slices.Contains(m.Index, id) {
		m.Index = append(slices.Clone(m.Index), id)
	}
	m.Cards = cards
	if selected {
		m.Selected = id
	}
	return m
}

// Set replaces the card for an existing id.
func (m Model[C]) Set(id ID, card C) Model[C] {
	if _, ok := m.Cards[id]; !ok {
		return m
	}
	cards := cloneCards(m.Cards)
	cards[id] = card
	m.Cards = cards
	return m
}

// Remove drops id. When it was selected, selection moves to the card that
// followed it, or to the one before when it was last.
func (m Model[C]) Remove(id ID) Model[C] {
	pos := slices.Index(m.Index, id)
	_, hasCard := m.Cards[id]
	if pos < 0 && !hasCard {
		return m
	}
	if hasCard {
		cards := cloneCards(m.Cards)
		delete(cards, id)
		m.Cards = cards
	}
	if pos >= 0 {
		m.Index = slices.Delete(slices.Clone(m.Index), pos, pos+1)
	}
	if m.Selected == id {
		m.Selected = ""
		if len(m.Index) > 0 && pos >= 0 {
			m.Selected = m.Index[min(pos, len(m.Index)-1)]
		}
	}
	return m
}

func (m Model[C]) Select(id ID) Model[C] {
	if !m.Has(id) {
		return m
	}
	m.Selected = id
	return m
}

// SelectNext moves the selection by delta, wrapping around. With nothing
// selected a step of +1 lands on the first item and -1 on the last.
func (m Model[C]) SelectNext(delta int) Model[C] {
	items := m.Items()
	if len(items) == 0 {
		return m
	}
	pos := -1
	for i, item := range items {
		if item.Selected {
			pos = i
			break
		}
	}
	if pos < 0 && delta <= 0 {
		pos = 0
	}
	next := ((pos+delta)%len(items) + len(items)) % len(items)
	m.Selected = items[next].ID
	return m
}

// Move shifts id by delta positions within Index, clamped to its bounds.
func (m Model[C]) Move(id ID, delta int) Model[C] {
	pos := slices.Index(m.Index, id)
	if pos < 0 || delta == 0 {
		return m
	}
	target := max(0, min(len(m.Index)-1, pos+delta))
	if target == pos {
		return m
	}
	index := slices.Delete(slices.Clone(m.Index), pos, pos+1)
	m.Index = slices.Insert(index, target, id)
	return m
}

// Cursor focuses the card stored under id.
func Cursor[C, PA, CA any](id ID, update func(C, CA) (C, reflex.Effects[CA]), tag func(CA) PA) cursor.Cursor[Model[C], C, PA, CA] {
	return cursor.Cursor[Model[C], C, PA, CA]{
		Get: func(m Model[C]) C {
			return m.Cards[id]
		},
		Set: func(m Model[C], card C) Model[C] {
			return m.Set(id, card)
		},
		Update: update,
		Tag:    tag,
	}
}

// Modify routes action to the card under id. Actions addressed to a card
// that no longer exists are dropped.
func Modify[C, PA, CA any](m Model[C], id ID, action CA, update func(C, CA) (C, reflex.Effects[CA]), tag func(CA) PA) (Model[C], reflex.Effects[PA]) {
	if _, ok := m.Cards[id]; !ok {
		return m, reflex.None[PA]()
	}
	return Cursor(id, update, tag).Apply(m, action)
}

func cloneCards[C any](cards map[ID]C) map[ID]C {
	if cards == nil {
		return map[ID]C{}
	}
	return maps.Clone(cards)
}
