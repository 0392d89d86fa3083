// Package effect provides Action, the deferred response producer
// carried at the handler leaves of a rendered tree. An Action runs
// when the driver fires the handler it is attached to, typically in
// response to a display event.
package effect

// Action produces a response value when run. A nil Action means no
// handler is attached.
type Action[A any] func() A

// Of returns an action that always produces v.
func Of[A any](v A) Action[A] {
	return func() A { return v }
}

// Func wraps a plain function as an action.
func Func[A any](f func() A) Action[A] {
	return Action[A](f)
}

// Run executes the action. Running a nil action returns A's zero value.
func (a Action[A]) Run() A {
	if a == nil {
		var zero A
		return zero
	}
	return a()
}

// Map applies a pure transform to the value an action will produce.
// The transform runs when the action runs, not when Map is called, so
// effects are neither added, dropped, nor reordered. Mapping a nil
// action yields nil.
func Map[A, B any](f func(A) B, a Action[A]) Action[B] {
	if a == nil {
		return nil
	}
	return func() B { return f(a()) }
}
