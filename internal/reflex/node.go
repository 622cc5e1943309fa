package reflex

import "charm.land/lipgloss/v2"

type nodeKind uint8

const (
	textNode nodeKind = iota
	columnNode
	rowNode
	thunkNode
)

// Binding ties a key press to a send on some address.
type Binding struct {
	Key  string
	Help string
	Send func()
}

// Node is a declarative UI tree. Nodes are values; every helper returns a
// modified copy.
type Node struct {
	kind     nodeKind
	text     string
	children []Node
	style    lipgloss.Style
	styled   bool
	hidden   bool
	bindings []Binding
	thunk    *thunk
}

type thunk struct {
	key    string
	model  any
	render func() Node
}

func Text(text string) Node {
	return Node{kind: textNode, text: text}
}

// Column stacks children vertically, left aligned.
func Column(children ...Node) Node {
	return Node{kind: columnNode, children: children}
}

// Row places children side by side, top aligned.
func Row(children ...Node) Node {
	return Node{kind: rowNode, children: children}
}

// Empty renders nothing.
func Empty() Node {
	return Node{kind: textNode, hidden: true}
}

func (n Node) Styled(style lipgloss.Style) Node {
	n.style = style
	n.styled = true
	return n
}

func (n Node) Hide(hidden bool) Node {
	n.hidden = n.hidden || hidden
	return n
}

func (n Node) IsHidden() bool {
	return n.hidden
}

func (n Node) Bind(key, help string, send func()) Node {
	if key == "" || send == nil {
		return n
	}
	n.bindings = append(append([]Binding(nil), n.bindings...), Binding{Key: key, Help: help, Send: send})
	return n
}

// On binds key to sending action to addr.
func On[A any](n Node, key, help string, addr Address[A], action A) Node {
	if addr == nil {
		return n
	}
	return n.Bind(key, help, func() { addr(action) })
}

// Thunk defers view(model, address) to the renderer, which reuses the
// previous output for key when model is unchanged since the last frame.
// Anything the view reads must be part of model.
func Thunk[M, A any](key string, view func(M, Address[A]) Node, model M, address Address[A]) Node {
	return Node{
		kind: thunkNode,
		thunk: &thunk{
			key:    key,
			model:  model,
			render: func() Node { return view(model, address) },
		},
	}
}

// Force evaluates thunks so that tests can inspect a view without a
// renderer.
func (n Node) Force() Node {
	if n.kind == thunkNode && n.thunk != nil {
		out := n.thunk.render().Force()
		out.hidden = out.hidden || n.hidden
		out.bindings = append(append([]Binding(nil), n.bindings...), out.bindings...)
		return out
	}
	if len(n.children) == 0 {
		return n
	}
	children := make([]Node, len(n.children))
	for i, child := range n.children {
		children[i] = child.Force()
	}
	n.children = children
	return n
}

// Texts returns the text leaves of the visible tree in document order.
func (n Node) Texts() []string {
	var out []string
	n.Force().walk(func(node Node) {
		if node.kind == textNode {
			out = append(out, node.text)
		}
	})
	return out
}

func (n Node) walk(fn func(Node)) {
	if n.hidden {
		return
	}
	fn(n)
	for _, child := range n.children {
		child.walk(fn)
	}
}
