package testing

import (
	stdtesting "testing"

	"github.com/go-weft/weft/pkg/component"
	"github.com/go-weft/weft/pkg/tree"
)

// Harness drives a component the way a runtime would: it delivers
// requests one at a time and records every rendered tree, so tests
// can assert on the full output history without a real display.
type Harness[P, L, Req any] struct {
	c     component.Component[P, L, Req]
	trees []tree.Tree[P, L]
}

// NewHarness wraps a component for test driving. The harness takes
// ownership of the component's state; the caller must not step it
// directly afterwards.
func NewHarness[P, L, Req any](c component.Component[P, L, Req]) *Harness[P, L, Req] {
	return &Harness[P, L, Req]{c: c}
}

// Deliver feeds the next request and returns the tree rendered for it.
func (h *Harness[P, L, Req]) Deliver(req Req) tree.Tree[P, L] {
	t := h.c.Step(req)
	h.trees = append(h.trees, t)
	return t
}

// DeliverAll feeds each request in order and returns the last tree.
func (h *Harness[P, L, Req]) DeliverAll(reqs ...Req) tree.Tree[P, L] {
	var last tree.Tree[P, L]
	for _, req := range reqs {
		last = h.Deliver(req)
	}
	return last
}

// Trees returns every tree rendered so far, oldest first.
func (h *Harness[P, L, Req]) Trees() []tree.Tree[P, L] {
	return h.trees
}

// Last returns the most recently rendered tree. It fails the test if
// nothing has been delivered yet.
func (h *Harness[P, L, Req]) Last(t *stdtesting.T) tree.Tree[P, L] {
	t.Helper()
	if len(h.trees) == 0 {
		t.Fatal("Last called before any request was delivered")
	}
	return h.trees[len(h.trees)-1]
}
