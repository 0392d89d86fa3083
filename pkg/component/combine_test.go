package component

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-weft/weft/pkg/either"
	"github.com/go-weft/weft/pkg/signal"
	"github.com/go-weft/weft/pkg/tree"
)

// side renders one element whose label counts this side's requests and
// whose handler leaf carries the given response value.
func side[L any](label string, res L) Component[int, L, string] {
	return New(signal.New(0, func(n int, req string) (int, tree.Tree[int, L]) {
		n++
		return n, tree.Element(label+strconv.Itoa(n), tree.Handler[int](res))
	}))
}

type lr = either.Either[string, int]

func combined() Component[int, lr, either.Either[string, string]] {
	merge := func(a, b tree.Tree[int, lr]) tree.Tree[int, lr] {
		return tree.Group("both", a, b)
	}
	return Combine(merge, side("L", "lres"), side("R", 42))
}

func TestCombineRoutingLaw(t *testing.T) {
	c := combined()

	rendered := c.Step(either.Left[string, string]("x"))
	require.Equal(t, "L1", rendered.Children[0].Label)
	// The right side has received no request yet and contributes an
	// empty tree.
	require.Equal(t, tree.KindEmpty, rendered.Children[1].Kind)

	rendered = c.Step(either.Right[string]("y"))
	require.Equal(t, "L1", rendered.Children[0].Label)
	require.Equal(t, "R1", rendered.Children[1].Label)

	// A left request advances the left side only; the right side's
	// previous output is held unchanged for that tick.
	rendered = c.Step(either.Left[string, string]("z"))
	require.Equal(t, "L2", rendered.Children[0].Label)
	require.Equal(t, "R1", rendered.Children[1].Label)
}

func TestCombineRetagsResponses(t *testing.T) {
	c := combined()
	c.Step(either.Left[string, string]("x"))
	rendered := c.Step(either.Right[string]("y"))

	handlers := tree.Handlers(rendered)
	require.Len(t, handlers, 2)

	l, ok := handlers[0].Left()
	require.True(t, ok)
	require.Equal(t, "lres", l)

	r, ok := handlers[1].Right()
	require.True(t, ok)
	require.Equal(t, 42, r)
}

func TestCombineStatesAreDisjoint(t *testing.T) {
	c := combined()
	for range 3 {
		c.Step(either.Left[string, string]("x"))
	}
	rendered := c.Step(either.Right[string]("y"))
	// Three left requests never reached the right side.
	require.Equal(t, "L3", rendered.Children[0].Label)
	require.Equal(t, "R1", rendered.Children[1].Label)
}
