// Package component defines the public unit of composition: a
// stateful transducer from external requests to rendered trees, plus
// the operators that transform and combine components before a driver
// ever sees them.
//
// A Component is history-sensitive: the tree produced for request n
// may depend on every request delivered at steps <= n, never on later
// ones. Each component value exclusively owns its internal signal
// state; the driver delivers requests one at a time and commits the
// resulting trees.
//
// The leaf type L is the response producer carried at handler
// positions, normally effect.Action[Res]. The operators are explicit
// per-container transforms: MapPlaceholders rewrites placeholder
// values, Hoist rewrites handler leaves, Install grafts subtrees over
// placeholders, and Combine runs two components side by side under a
// tagged union of their request and response channels.
package component

import (
	"github.com/go-weft/weft/pkg/signal"
	"github.com/go-weft/weft/pkg/tree"
)

// Component maps a stream of Req requests to a stream of rendered
// trees with P placeholders and L handler leaves. It wraps a stateful
// signal; copying a Component shares that state, so exactly one owner
// should deliver requests.
type Component[P, L, Req any] struct {
	sig signal.Signal[Req, tree.Tree[P, L]]
}

// New wraps a signal as a component. The signal's state becomes the
// component's state; the caller must not step the signal directly
// afterwards.
func New[P, L, Req any](sig signal.Signal[Req, tree.Tree[P, L]]) Component[P, L, Req] {
	return Component[P, L, Req]{sig: sig}
}

// Pure builds a stateless component that renders each request with
// render, independent of history.
func Pure[P, L, Req any](render func(Req) tree.Tree[P, L]) Component[P, L, Req] {
	return New(signal.Map(render, signal.Input[Req]()))
}

// Step delivers the next request and returns the tree rendered for it.
func (c Component[P, L, Req]) Step(req Req) tree.Tree[P, L] {
	return c.sig.Step(req)
}

// MapPlaceholders replaces every placeholder value p in the rendered
// trees with f(p). The transform is total, applies at render time
// only, and never touches the component's internal state.
func MapPlaceholders[P, Q, L, Req any](f func(P) Q, c Component[P, L, Req]) Component[Q, L, Req] {
	return New(signal.Map(func(t tree.Tree[P, L]) tree.Tree[Q, L] {
		return tree.MapPlaceholders(f, t)
	}, c.sig))
}

// Hoist replaces every response-producing handler leaf l with f(l).
// The transform must be total and order-preserving: it may not add,
// drop, or reorder handlers, and it does not alter which requests
// advance the component's state.
func Hoist[P, L, M, Req any](f func(L) M, c Component[P, L, Req]) Component[P, M, Req] {
	return New(signal.Map(func(t tree.Tree[P, L]) tree.Tree[P, M] {
		return tree.MapHandlers(f, t)
	}, c.sig))
}
