// Package testing provides test drivers for weft components.
//
// # Quick Start
//
// Wrap a component in a Harness, deliver requests, and assert on the
// rendered trees:
//
//	func TestMyComponent(t *testing.T) {
//	    h := wefttest.NewHarness(myComponent)
//	    rendered := h.Deliver(myRequest)
//	    // assert on rendered
//	}
//
// # Widget Components
//
// Driver additionally runs the mount/apply/destroy commit loop for
// widget-adapted components and captures emitted responses:
//
//	func TestMyWidget(t *testing.T) {
//	    d := wefttest.NewDriverWithT(t, widget.Adapt(mySpec))
//	    d.PushAll(req1, req2)
//	    for _, res := range d.Drain() {
//	        d.Push(requestFor(res)) // emitted responses re-enter as events
//	    }
//	}
package testing
