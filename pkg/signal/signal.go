// Package signal provides explicit stepper objects for building
// stateful stream transducers: a Signal maps an input stream to an
// output stream one step at a time, with the output at step n
// depending only on inputs delivered at steps <= n.
//
// State is threaded explicitly through each step rather than hidden
// in captured variables. A Signal is not safe for concurrent use;
// the caller owns it exclusively and delivers inputs one at a time.
package signal

import "github.com/go-weft/weft/pkg/either"

// Signal is a stateful step function from I inputs to O outputs.
type Signal[I, O any] interface {
	// Step consumes the next input and produces the next output,
	// advancing internal state.
	Step(I) O
}

type stateful[S, I, O any] struct {
	state S
	step  func(S, I) (S, O)
}

func (s *stateful[S, I, O]) Step(in I) O {
	next, out := s.step(s.state, in)
	s.state = next
	return out
}

// New builds a stateful signal from a seed state and a step function.
// Each Step threads the current state through step and records the
// returned state for the next input.
func New[S, I, O any](seed S, step func(S, I) (S, O)) Signal[I, O] {
	return &stateful[S, I, O]{state: seed, step: step}
}

type input[I any] struct{}

func (input[I]) Step(in I) I { return in }

// Input returns the raw input stream, unmodified.
func Input[I any]() Signal[I, I] {
	return input[I]{}
}

type mapped[I, O, T any] struct {
	inner Signal[I, O]
	f     func(O) T
}

func (m *mapped[I, O, T]) Step(in I) T {
	return m.f(m.inner.Step(in))
}

// Map post-composes a pure transform over a signal's outputs. The
// transform is applied at step time only and never touches the inner
// signal's state.
func Map[I, O, T any](f func(O) T, inner Signal[I, O]) Signal[I, T] {
	return &mapped[I, O, T]{inner: inner, f: f}
}

type primed[I, O any] struct {
	pending O
	inner   Signal[I, O]
}

func (p *primed[I, O]) Step(in I) O {
	out := p.pending
	p.pending = p.inner.Step(in)
	return out
}

// Primed supplies an initial output before the first input: the output
// at step 0 is initial, and the output at step n>0 is the inner
// signal's output for input n-1. The inner signal still consumes every
// input in order; its outputs are surfaced one step late.
func Primed[I, O any](initial O, inner Signal[I, O]) Signal[I, O] {
	return &primed[I, O]{pending: initial, inner: inner}
}

type combined[I1, I2, O1, O2, O any] struct {
	left  Signal[I1, O1]
	right Signal[I2, O2]
	lastL O1
	lastR O2
	merge func(O1, O2) O
}

func (c *combined[I1, I2, O1, O2, O]) Step(in either.Either[I1, I2]) O {
	if l, ok := in.Left(); ok {
		c.lastL = c.left.Step(l)
	} else if r, ok := in.Right(); ok {
		c.lastR = c.right.Step(r)
	}
	return c.merge(c.lastL, c.lastR)
}

// Combine runs two input-addressable signals in lockstep under a merge
// rule. A Left input steps only the left signal; the right signal's
// latest output (rightInit before its first input) is reused for that
// step, and symmetrically for Right inputs. The two signals never
// observe each other's inputs.
func Combine[I1, I2, O1, O2, O any](
	left Signal[I1, O1], leftInit O1,
	right Signal[I2, O2], rightInit O2,
	merge func(O1, O2) O,
) Signal[either.Either[I1, I2], O] {
	return &combined[I1, I2, O1, O2, O]{
		left:  left,
		right: right,
		lastL: leftInit,
		lastR: rightInit,
		merge: merge,
	}
}
