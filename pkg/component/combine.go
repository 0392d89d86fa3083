package component

import (
	"github.com/go-weft/weft/pkg/either"
	"github.com/go-weft/weft/pkg/signal"
	"github.com/go-weft/weft/pkg/tree"
)

// Merge combines the two most-recently produced trees of a combined
// component's sides into the single tree surfaced to the driver.
type Merge[P, L any] func(left, right tree.Tree[P, L]) tree.Tree[P, L]

// Combine runs c1 and c2 independently under a tagged union of their
// request and response channels. A Left request advances c1 only,
// holding c2's previous output unchanged for that tick; a Right
// request advances c2 symmetrically. Before a side has received its
// first request it contributes an empty tree.
//
// Handler leaves from each side are retagged Left or Right before
// merge sees them, so every surfaced response carries the tag of the
// sub-component that produced it. The two sub-states are disjoint:
// neither side ever observes the other's requests.
func Combine[P, L1, L2, Req1, Req2 any](
	merge Merge[P, either.Either[L1, L2]],
	c1 Component[P, L1, Req1],
	c2 Component[P, L2, Req2],
) Component[P, either.Either[L1, L2], either.Either[Req1, Req2]] {
	left := signal.Map(func(t tree.Tree[P, L1]) tree.Tree[P, either.Either[L1, L2]] {
		return tree.MapHandlers(either.Left[L1, L2], t)
	}, c1.sig)
	right := signal.Map(func(t tree.Tree[P, L2]) tree.Tree[P, either.Either[L1, L2]] {
		return tree.MapHandlers(either.Right[L1, L2], t)
	}, c2.sig)
	empty := tree.Empty[P, either.Either[L1, L2]]()
	return New(signal.Combine(left, empty, right, empty, merge))
}
