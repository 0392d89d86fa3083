// Package tree provides the immutable rendered tree produced by
// components. A tree describes what should be displayed: structural
// element nodes with children, text, handler leaves carrying a
// response producer, and placeholder nodes carrying a value that
// stands in for an embeddable sub-component or subtree.
//
// Trees are values: every operation returns a new tree and never
// mutates its input. Diffing and committing a tree against a live
// display is the driver's concern, not this package's.
package tree

// Kind discriminates the node variants of a Tree.
type Kind int

const (
	// KindEmpty renders nothing. It is the zero Tree.
	KindEmpty Kind = iota
	// KindElement is a structural node with a label and children.
	KindElement
	// KindText is a text leaf.
	KindText
	// KindPlaceholder carries a P value standing in for a subtree.
	KindPlaceholder
	// KindHandler is a leaf carrying an A value, the event-handler
	// position of the tree.
	KindHandler
)

// Tree is an immutable rendered tree. P is the placeholder value type,
// A the handler (response producer) type. The zero value is Empty.
type Tree[P, A any] struct {
	Kind        Kind
	Label       string // element label, KindElement only
	Text        string // text content, KindText only
	Placeholder P      // KindPlaceholder only
	Handler     A      // KindHandler only
	Children    []Tree[P, A]
}

// Empty returns the tree that renders nothing.
func Empty[P, A any]() Tree[P, A] {
	return Tree[P, A]{}
}

// Element builds a structural node with the given label and children.
func Element[P, A any](label string, children ...Tree[P, A]) Tree[P, A] {
	return Tree[P, A]{Kind: KindElement, Label: label, Children: children}
}

// Text builds a text leaf.
func Text[P, A any](content string) Tree[P, A] {
	return Tree[P, A]{Kind: KindText, Text: content}
}

// Placeholder builds a placeholder node carrying v.
func Placeholder[P, A any](v P) Tree[P, A] {
	return Tree[P, A]{Kind: KindPlaceholder, Placeholder: v}
}

// Handler builds a handler leaf carrying a.
func Handler[P, A any](a A) Tree[P, A] {
	return Tree[P, A]{Kind: KindHandler, Handler: a}
}

// Group wraps two trees under a single element node. It is a
// ready-made merge rule for combining side-by-side components.
func Group[P, A any](label string, a, b Tree[P, A]) Tree[P, A] {
	return Element(label, a, b)
}

// MapPlaceholders replaces every placeholder value p with f(p). The
// transform is total and structural: it never fails and leaves all
// other nodes untouched.
func MapPlaceholders[P, Q, A any](f func(P) Q, t Tree[P, A]) Tree[Q, A] {
	out := Tree[Q, A]{
		Kind:  t.Kind,
		Label: t.Label,
		Text:  t.Text,
	}
	switch t.Kind {
	case KindPlaceholder:
		out.Placeholder = f(t.Placeholder)
	case KindHandler:
		out.Handler = t.Handler
	}
	if len(t.Children) > 0 {
		out.Children = make([]Tree[Q, A], len(t.Children))
		for i, child := range t.Children {
			out.Children[i] = MapPlaceholders(f, child)
		}
	}
	return out
}

// MapHandlers replaces every handler value a with f(a), preserving
// handler order and touching nothing else.
func MapHandlers[P, A, B any](f func(A) B, t Tree[P, A]) Tree[P, B] {
	out := Tree[P, B]{
		Kind:  t.Kind,
		Label: t.Label,
		Text:  t.Text,
	}
	switch t.Kind {
	case KindPlaceholder:
		out.Placeholder = t.Placeholder
	case KindHandler:
		out.Handler = f(t.Handler)
	}
	if len(t.Children) > 0 {
		out.Children = make([]Tree[P, B], len(t.Children))
		for i, child := range t.Children {
			out.Children[i] = MapHandlers(f, child)
		}
	}
	return out
}

// Graft replaces every placeholder node with the subtree f(p). The
// resulting tree's placeholder type is that of f's result; handler
// leaves pass through unchanged.
func Graft[P, Q, A any](t Tree[P, A], f func(P) Tree[Q, A]) Tree[Q, A] {
	if t.Kind == KindPlaceholder {
		return f(t.Placeholder)
	}
	out := Tree[Q, A]{
		Kind:  t.Kind,
		Label: t.Label,
		Text:  t.Text,
	}
	if t.Kind == KindHandler {
		out.Handler = t.Handler
	}
	if len(t.Children) > 0 {
		out.Children = make([]Tree[Q, A], len(t.Children))
		for i, child := range t.Children {
			out.Children[i] = Graft(child, f)
		}
	}
	return out
}

// Walk visits t and its descendants in pre-order. The visitor returns
// false to stop the traversal early.
func Walk[P, A any](t Tree[P, A], visit func(Tree[P, A]) bool) bool {
	if !visit(t) {
		return false
	}
	for _, child := range t.Children {
		if !Walk(child, visit) {
			return false
		}
	}
	return true
}

// Placeholders collects every placeholder value in pre-order.
func Placeholders[P, A any](t Tree[P, A]) []P {
	var out []P
	Walk(t, func(n Tree[P, A]) bool {
		if n.Kind == KindPlaceholder {
			out = append(out, n.Placeholder)
		}
		return true
	})
	return out
}

// Handlers collects every handler value in pre-order.
func Handlers[P, A any](t Tree[P, A]) []A {
	var out []A
	Walk(t, func(n Tree[P, A]) bool {
		if n.Kind == KindHandler {
			out = append(out, n.Handler)
		}
		return true
	})
	return out
}
