package widget

import (
	"github.com/go-weft/weft/pkg/component"
	"github.com/go-weft/weft/pkg/effect"
	"github.com/go-weft/weft/pkg/signal"
	"github.com/go-weft/weft/pkg/tree"
)

// Adapt converts a widget spec into a component. The component's
// rendered tree is a single placeholder node carrying a versioned
// Handle for the driver to mount, apply, and eventually destroy.
//
// Internally an explicit counter signal increments by exactly 1 on
// every request, starting at 0 and independent of request payload;
// each request is paired with the counter into a versioned handle.
// The handle stream is primed with the pristine version-0 handle,
// whose comparator never invokes Update. The first rendered value is
// therefore the pristine widget, and the first Update call the driver
// observes happens on the second external request: the first
// request's effect is expressed only through what Init already
// established.
func Adapt[Req, Res, Ctx, N any](spec Spec[Req, Res, Ctx, N]) component.Component[Handle[Req, Res, Ctx, N], effect.Action[Res], Req] {
	if spec.ID == "" {
		spec.ID = NewID()
	}
	versioned := signal.New(0, func(n int, req Req) (int, Handle[Req, Res, Ctx, N]) {
		n++
		return n, Handle[Req, Res, Ctx, N]{spec: spec, Version: n, req: req}
	})
	pristine := Handle[Req, Res, Ctx, N]{spec: spec, pristine: true}
	handles := signal.Primed(pristine, versioned)
	return component.New(signal.Map(func(h Handle[Req, Res, Ctx, N]) tree.Tree[Handle[Req, Res, Ctx, N], effect.Action[Res]] {
		return tree.Placeholder[Handle[Req, Res, Ctx, N], effect.Action[Res]](h)
	}, handles))
}
