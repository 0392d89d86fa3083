package component

import (
	"github.com/go-weft/weft/pkg/signal"
	"github.com/go-weft/weft/pkg/tree"
)

// Install grafts f's subtree over every placeholder node in outer's
// rendered tree, yielding a component whose placeholder type is that
// of f's result.
//
// The grafted subtree is recomputed fresh from the latest placeholder
// value at every render; it carries no persistent signal state of its
// own across renders beyond what f's closure captures. None of outer's
// requests are routed into the grafted subtree.
func Install[P, Q, L, Req any](outer Component[P, L, Req], f func(P) tree.Tree[Q, L]) Component[Q, L, Req] {
	return New(signal.Map(func(t tree.Tree[P, L]) tree.Tree[Q, L] {
		return tree.Graft(t, f)
	}, outer.sig))
}
