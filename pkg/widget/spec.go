// Package widget bridges imperative, lifecycle-driven display widgets
// into the signal-driven component model.
//
// A widget is a third-party-managed display subtree with an
// init/update/destroy lifecycle. Adapt converts a widget Spec into a
// Component whose rendered tree is a single placeholder node carrying
// a versioned Handle. The driver mounts the handle the first time it
// appears, applies later handles to the mounted instance, and
// destroys the instance when the placeholder disappears from the
// tree. The handle's monotonic version lets the driver's diffing
// substrate distinguish "structurally unchanged, skip imperative
// update" from "needs imperative update".
//
// All lifecycle callbacks run synchronously inside the driver's push
// cycle. The sole source of asynchrony is the emit callback handed to
// Init, which the widget may invoke at any later time to feed a
// response back in as a brand-new external event.
package widget

import "github.com/google/uuid"

// Spec describes an imperative widget.
//
// Req is the request payload delivered per update, Res the response
// type produced through emit, Ctx the widget's opaque private state,
// and N the type of the mounted external element.
type Spec[Req, Res, Ctx, N any] struct {
	// Name tags the widget kind for tree matching.
	Name string

	// ID uniquely identifies this instance for tree matching. Adapt
	// fills an empty ID with a generated one.
	ID string

	// Init runs exactly once on mount. It receives the emit callback,
	// which the widget may invoke asynchronously at any later time to
	// produce a Res fed back as a new external event, and returns the
	// initial opaque context and the mounted root element. Failures
	// propagate to the caller uncaught; there is no retry.
	Init func(emit func(Res)) (Ctx, N)

	// Update is invoked per applied request. It returns a replacement
	// element and true if the display subtree must be swapped, or
	// false if the widget updated itself in place.
	Update func(req Req, ctx Ctx, node N) (N, bool)

	// Destroy is invoked exactly once on removal. It must release all
	// resources the widget holds (timers, subscriptions, listeners);
	// after it returns, emit must never be called again.
	Destroy func(ctx Ctx, node N)
}

// NewID returns a fresh unique instance id.
func NewID() string {
	return uuid.NewString()
}
