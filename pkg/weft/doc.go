// Package weft documents the weft component model and hosts runnable
// examples. The library itself lives in the sibling packages:
//
//   - component: the Component transducer and its composition
//     operators (MapPlaceholders, Install, Combine, Hoist)
//   - widget: the adapter bridging imperative init/update/destroy
//     widgets into components via versioned handles
//   - tree: the immutable rendered tree components produce
//   - signal: explicit stateful steppers underlying components
//   - effect: deferred response producers carried at handler leaves
//   - either: the tagged union correlating combined channels
//   - testing: harnesses that play the driver's role in tests
//
// A component maps a stream of external requests to a stream of
// rendered trees. The runtime driving a component owns the push
// cycle: it delivers one request at a time, commits the rendered
// tree to a live display, mounts and updates embedded widgets, and
// feeds widget-emitted responses back in as new external events.
package weft
