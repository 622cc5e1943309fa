package reflex

import (
	"strings"
	"testing"
)

type itemsModel struct {
	Items []string
}

func TestRendererColumnAndRow(t *testing.T) {
	r := NewRenderer()
	frame := r.Render(Column(Text("a"), Row(Text("b"), Text("c")), Text("hidden").Hide(true)))
	lines := strings.Split(frame.Content, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", frame.Content)
	}
	if strings.TrimSpace(lines[0]) != "a" || strings.TrimSpace(lines[1]) != "bc" {
		t.Fatalf("unexpected content: %q", frame.Content)
	}
}

func TestRendererCollectsBindingsInDocumentOrder(t *testing.T) {
	var sent []string
	addr := Address[string](func(a string) { sent = append(sent, a) })
	tree := Column(
		On(Text("first"), "x", "first", addr, "one"),
		On(Text("second"), "x", "second", addr, "two"),
		On(Text("hidden"), "y", "hidden", addr, "three").Hide(true),
	)
	frame := NewRenderer().Render(tree)
	binding, ok := frame.Lookup("x")
	if !ok {
		t.Fatalf("expected binding for x")
	}
	binding.Send()
	if len(sent) != 1 || sent[0] != "one" {
		t.Fatalf("expected first binding to win, got %#v", sent)
	}
	if _, ok := frame.Lookup("y"); ok {
		t.Fatalf("hidden nodes must not contribute bindings")
	}
}

func TestThunkReusesOutputForEqualModel(t *testing.T) {
	calls := 0
	view := func(m itemsModel, _ Address[string]) Node {
		calls++
		return Text(strings.Join(m.Items, ","))
	}
	r := NewRenderer()
	first := r.Render(Thunk("items", view, itemsModel{Items: []string{"a", "b"}}, nil))
	second := r.Render(Thunk("items", view, itemsModel{Items: []string{"a", "b"}}, nil))
	if calls != 1 {
		t.Fatalf("expected view to run once, ran %d", calls)
	}
	if first.Content != second.Content || second.Content != "a,b" {
		t.Fatalf("unexpected content: %q / %q", first.Content, second.Content)
	}
	third := r.Render(Thunk("items", view, itemsModel{Items: []string{"c"}}, nil))
	if calls != 2 || third.Content != "c" {
		t.Fatalf("expected re-render on model change, calls=%d content=%q", calls, third.Content)
	}
	if r.Hits() != 1 || r.Misses() != 2 {
		t.Fatalf("unexpected memo stats hits=%d misses=%d", r.Hits(), r.Misses())
	}
}

func TestThunkKeysAreIndependent(t *testing.T) {
	calls := map[string]int{}
	view := func(name string) func(itemsModel, Address[string]) Node {
		return func(m itemsModel, _ Address[string]) Node {
			calls[name]++
			return Text(name)
		}
	}
	model := itemsModel{Items: []string{"x"}}
	r := NewRenderer()
	for i := 0; i < 3; i++ {
		r.Render(Column(
			Thunk("left", view("left"), model, nil),
			Thunk("right", view("right"), model, nil),
		))
	}
	if calls["left"] != 1 || calls["right"] != 1 {
		t.Fatalf("expected one call per key, got %#v", calls)
	}
}

func TestNestedThunkSurvivesCachedParent(t *testing.T) {
	innerCalls := 0
	inner := func(m itemsModel, _ Address[string]) Node {
		innerCalls++
		return Text("inner")
	}
	outer := func(m itemsModel, a Address[string]) Node {
		return Column(Text("outer"), Thunk("inner", inner, m, a))
	}
	model := itemsModel{Items: []string{"x"}}
	r := NewRenderer()
	r.Render(Thunk("outer", outer, model, nil))
	r.Render(Thunk("outer", outer, model, nil))
	r.Render(Column(Text("other")))
	r.Render(Thunk("outer", outer, model, nil))
	if innerCalls != 2 {
		t.Fatalf("expected inner view to re-run once after eviction, got %d", innerCalls)
	}
}

func TestForceAndTexts(t *testing.T) {
	view := func(m itemsModel, _ Address[string]) Node {
		nodes := make([]Node, 0, len(m.Items))
		for _, item := range m.Items {
			nodes = append(nodes, Text(item))
		}
		return Column(nodes...)
	}
	texts := Thunk("list", view, itemsModel{Items: []string{"a", "b", "c"}}, nil).Texts()
	if strings.Join(texts, "") != "abc" {
		t.Fatalf("unexpected texts: %#v", texts)
	}
}
