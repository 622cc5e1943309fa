package reflex

import (
	"reflect"
	"strings"

	"charm.land/lipgloss/v2"
)

// Frame is one rendered view.
type Frame struct {
	Content  string
	Bindings []Binding
}

// Lookup returns the first binding for key in document order.
func (f Frame) Lookup(key string) (Binding, bool) {
	for _, binding := range f.Bindings {
		if binding.Key == key {
			return binding, true
		}
	}
	return Binding{}, false
}

type memoEntry struct {
	model any
	frame Frame
	seen  uint64
}

// Renderer turns nodes into terminal content. It remembers thunk output
// across frames and is not safe for concurrent use; the driver renders from
// the update loop only.
type Renderer struct {
	memo   map[string]*memoEntry
	frame  uint64
	hits   int
	misses int
}

func NewRenderer() *Renderer {
	return &Renderer{memo: map[string]*memoEntry{}}
}

func (r *Renderer) Render(root Node) Frame {
	if r.memo == nil {
		r.memo = map[string]*memoEntry{}
	}
	r.frame++
	out := r.render(root, "")
	for key, entry := range r.memo {
		if entry.seen != r.frame {
			delete(r.memo, key)
		}
	}
	return out
}

func (r *Renderer) Hits() int   { return r.hits }
func (r *Renderer) Misses() int { return r.misses }

func (r *Renderer) render(n Node, scope string) Frame {
	if n.hidden {
		return Frame{}
	}
	var out Frame
	switch n.kind {
	case thunkNode:
		out = r.renderThunk(n.thunk, scope)
	case textNode:
		out.Content = n.text
	case columnNode, rowNode:
		parts := make([]string, 0, len(n.children))
		for _, child := range n.children {
			if child.hidden {
				continue
			}
			childFrame := r.render(child, scope)
			parts = append(parts, childFrame.Content)
			out.Bindings = append(out.Bindings, childFrame.Bindings...)
		}
		out.Content = join(n.kind, parts)
	}
	if n.styled {
		out.Content = n.style.Render(out.Content)
	}
	if len(n.bindings) > 0 {
		out.Bindings = append(append([]Binding(nil), n.bindings...), out.Bindings...)
	}
	return out
}

func (r *Renderer) renderThunk(t *thunk, scope string) Frame {
	if t == nil {
		return Frame{}
	}
	key := t.key
	if scope != "" {
		key = scope + "/" + t.key
	}
	if entry, ok := r.memo[key]; ok && reflect.DeepEqual(entry.model, t.model) {
		r.hits++
		entry.seen = r.frame
		r.touch(key)
		return entry.frame
	}
	r.misses++
	out := r.render(t.render(), key)
	r.memo[key] = &memoEntry{model: t.model, frame: out, seen: r.frame}
	return out
}

// touch keeps nested thunk entries of a reused subtree alive.
func (r *Renderer) touch(scope string) {
	prefix := scope + "/"
	for key, entry := range r.memo {
		if strings.HasPrefix(key, prefix) {
			entry.seen = r.frame
		}
	}
}

func join(kind nodeKind, parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	if kind == rowNode {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
