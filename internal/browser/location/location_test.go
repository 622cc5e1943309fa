package location

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestFocusTypeBlur(t *testing.T) {
	model, _ := Update(New(), Focus{Value: "example"})
	if !model.Focused || Value(model) != "example" {
		t.Fatalf("unexpected focus state: focused=%v value=%q", model.Focused, Value(model))
	}
	model, _ = Update(model, InputAction(tea.KeyPressMsg{Code: '.', Text: "."}))
	model, _ = Update(model, InputAction(tea.KeyPressMsg{Code: 'c', Text: "c"}))
	if got := Value(model); got != "example.c" {
		t.Fatalf("unexpected value %q", got)
	}
	model, fx := Update(model, Blur{})
	if model.Focused || Value(model) != "" || !fx.IsNone() {
		t.Fatalf("blur should clear and unfocus")
	}
}

func TestKeysIgnoredWhileBlurred(t *testing.T) {
	model, fx := Update(New(), InputAction(tea.KeyPressMsg{Code: 'x', Text: "x"}))
	if Value(model) != "" || !fx.IsNone() {
		t.Fatalf("blurred input must ignore keys")
	}
}

func TestNilAndBatchMessages(t *testing.T) {
	model := New()
	if _, fx := Update(model, InputAction(nil)); !fx.IsNone() {
		t.Fatalf("nil message should be dropped")
	}
	noop := func() tea.Msg { return nil }
	_, fx := Update(model, InputAction(tea.BatchMsg{noop, nil, noop}))
	if fx.Len() != 2 {
		t.Fatalf("expected one effect per command, got %d", fx.Len())
	}
}

func TestViewShowsCurrentURLWhenBlurred(t *testing.T) {
	texts := View(New(), "https://a.test", 40).Texts()
	if len(texts) != 1 || texts[0] != "https://a.test" {
		t.Fatalf("unexpected texts %v", texts)
	}
	texts = View(New(), "", 40).Texts()
	if texts[0] != placeholder {
		t.Fatalf("expected placeholder, got %q", texts[0])
	}
}
