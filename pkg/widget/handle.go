package widget

// Handle is the versioned widget value an adapted component places in
// its placeholder node. Each request delivered to the component
// produces a new handle pairing that request with the next counter
// value; the driver applies handles to the mounted instance in the
// order they are rendered.
type Handle[Req, Res, Ctx, N any] struct {
	spec Spec[Req, Res, Ctx, N]

	// Version is the counter value paired with this handle's request.
	// It starts at 0 for the pristine handle and increases by exactly
	// 1 per request, independent of request content.
	Version int

	req      Req
	pristine bool
}

// Name returns the widget kind tag.
func (h Handle[Req, Res, Ctx, N]) Name() string { return h.spec.Name }

// ID returns the widget instance id.
func (h Handle[Req, Res, Ctx, N]) ID() string { return h.spec.ID }

// Request returns the request paired with this handle.
func (h Handle[Req, Res, Ctx, N]) Request() Req { return h.req }

// Matches reports whether other describes the same widget instance,
// so a driver may apply it to this handle's mounted node instead of
// remounting.
func (h Handle[Req, Res, Ctx, N]) Matches(other Handle[Req, Res, Ctx, N]) bool {
	return h.spec.Name == other.spec.Name && h.spec.ID == other.spec.ID
}

// Mount runs the widget's Init callback and returns the mounted
// instance. emit is handed to the widget, which may call it
// asynchronously until the instance is destroyed. Init failures
// propagate uncaught.
func (h Handle[Req, Res, Ctx, N]) Mount(emit func(Res)) *Mounted[Req, Res, Ctx, N] {
	ctx, node := h.spec.Init(emit)
	logger.Debug("widget mounted",
		"name", h.spec.Name, "id", h.spec.ID, "version", h.Version)
	return &Mounted[Req, Res, Ctx, N]{
		Name:    h.spec.Name,
		ID:      h.spec.ID,
		Context: ctx,
		Node:    node,
		Version: h.Version,
		spec:    h.spec,
	}
}

// Apply delivers this handle to a mounted instance. The widget's
// Update callback runs only when the handle's version is strictly
// greater than the version recorded on the instance; the pristine
// version-0 handle never calls Update. Stale, repeated, or
// out-of-order versions are silently no change, never an error.
//
// Apply reports whether Update was invoked. When Update returns a
// replacement element, the instance's Node is swapped before Apply
// returns; the recorded version always advances to the handle's.
func (h Handle[Req, Res, Ctx, N]) Apply(m *Mounted[Req, Res, Ctx, N]) bool {
	if h.pristine || h.Version <= m.Version {
		return false
	}
	node, swapped := h.spec.Update(h.req, m.Context, m.Node)
	if swapped {
		m.Node = node
	}
	m.Version = h.Version
	logger.Debug("widget updated",
		"name", h.spec.Name, "id", h.spec.ID, "version", h.Version, "swapped", swapped)
	return true
}

// Mounted is a live widget instance: the opaque context and external
// element returned by Init, plus the version of the last applied
// handle.
type Mounted[Req, Res, Ctx, N any] struct {
	Name    string
	ID      string
	Context Ctx
	Node    N
	Version int

	spec      Spec[Req, Res, Ctx, N]
	destroyed bool
}

// Destroy runs the widget's Destroy callback. It runs at most once; a
// second call is a no-op. After Destroy returns, no further lifecycle
// call for this instance is valid and the widget must not call emit
// again.
func (m *Mounted[Req, Res, Ctx, N]) Destroy() {
	if m.destroyed {
		return
	}
	m.destroyed = true
	m.spec.Destroy(m.Context, m.Node)
	logger.Debug("widget destroyed", "name", m.Name, "id", m.ID, "version", m.Version)
}

// Destroyed reports whether Destroy has run.
func (m *Mounted[Req, Res, Ctx, N]) Destroyed() bool {
	return m.destroyed
}
