package testing

import (
	"sync"
	stdtesting "testing"

	"github.com/go-weft/weft/pkg/component"
	"github.com/go-weft/weft/pkg/effect"
	"github.com/go-weft/weft/pkg/tree"
	"github.com/go-weft/weft/pkg/widget"
)

// Driver runs the commit loop a real runtime would run against a
// widget-adapted component: per delivered request it walks the
// rendered tree's placeholders, mounts handles it has not seen,
// applies versioned handles to already-mounted instances, and
// destroys instances whose placeholder disappeared.
//
// Responses the widget emits, synchronously or from its own
// goroutines, are queued; tests drain them and feed them back as new
// external events, mirroring the push model where emit re-enters the
// system rather than suspending an in-flight step.
type Driver[Req, Res, Ctx, N any] struct {
	c       component.Component[widget.Handle[Req, Res, Ctx, N], effect.Action[Res], Req]
	mounted map[string]*widget.Mounted[Req, Res, Ctx, N]

	mu      sync.Mutex
	emitted []Res
}

// NewDriver wraps an adapted widget component.
func NewDriver[Req, Res, Ctx, N any](c component.Component[widget.Handle[Req, Res, Ctx, N], effect.Action[Res], Req]) *Driver[Req, Res, Ctx, N] {
	return &Driver[Req, Res, Ctx, N]{
		c:       c,
		mounted: make(map[string]*widget.Mounted[Req, Res, Ctx, N]),
	}
}

// NewDriverWithT is NewDriver plus automatic Close via t.Cleanup.
func NewDriverWithT[Req, Res, Ctx, N any](t *stdtesting.T, c component.Component[widget.Handle[Req, Res, Ctx, N], effect.Action[Res], Req]) *Driver[Req, Res, Ctx, N] {
	d := NewDriver(c)
	t.Cleanup(d.Close)
	return d
}

// Push delivers one external request, commits the rendered tree's
// widget placeholders, and returns the tree. The whole cycle runs
// synchronously to completion before Push returns.
func (d *Driver[Req, Res, Ctx, N]) Push(req Req) tree.Tree[widget.Handle[Req, Res, Ctx, N], effect.Action[Res]] {
	rendered := d.c.Step(req)
	seen := make(map[string]bool)
	tree.Walk(rendered, func(n tree.Tree[widget.Handle[Req, Res, Ctx, N], effect.Action[Res]]) bool {
		if n.Kind != tree.KindPlaceholder {
			return true
		}
		h := n.Placeholder
		key := h.Name() + "\x00" + h.ID()
		seen[key] = true
		if m, ok := d.mounted[key]; ok {
			h.Apply(m)
		} else {
			d.mounted[key] = h.Mount(d.emit)
		}
		return true
	})
	for key, m := range d.mounted {
		if !seen[key] {
			m.Destroy()
			delete(d.mounted, key)
		}
	}
	return rendered
}

// PushAll delivers each request in order and returns the last tree.
func (d *Driver[Req, Res, Ctx, N]) PushAll(reqs ...Req) tree.Tree[widget.Handle[Req, Res, Ctx, N], effect.Action[Res]] {
	var last tree.Tree[widget.Handle[Req, Res, Ctx, N], effect.Action[Res]]
	for _, req := range reqs {
		last = d.Push(req)
	}
	return last
}

// Mounted returns the live instance for a widget name and id, or nil
// if none is mounted.
func (d *Driver[Req, Res, Ctx, N]) Mounted(name, id string) *widget.Mounted[Req, Res, Ctx, N] {
	return d.mounted[name+"\x00"+id]
}

// Drain returns the responses emitted since the last call, oldest
// first, and clears the queue. Safe to call concurrently with emit.
func (d *Driver[Req, Res, Ctx, N]) Drain() []Res {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := d.emitted
	d.emitted = nil
	return out
}

// Close destroys every still-mounted instance. Destroy runs at most
// once per instance, so closing after a removal is safe.
func (d *Driver[Req, Res, Ctx, N]) Close() {
	for key, m := range d.mounted {
		m.Destroy()
		delete(d.mounted, key)
	}
}

func (d *Driver[Req, Res, Ctx, N]) emit(res Res) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.emitted = append(d.emitted, res)
}
