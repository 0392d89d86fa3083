package component

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-weft/weft/pkg/tree"
)

func TestInstallGraftsOverPlaceholders(t *testing.T) {
	c := Install(counting(), func(n int) tree.Tree[string, string] {
		return tree.Element("sub", tree.Text[string, string](strconv.Itoa(n)))
	})
	rendered := c.Step("a")
	require.Empty(t, tree.Placeholders(rendered))

	var labels []string
	tree.Walk(rendered, func(node tree.Tree[string, string]) bool {
		if node.Kind == tree.KindElement {
			labels = append(labels, node.Label)
		}
		return true
	})
	require.Equal(t, []string{"view", "sub"}, labels)
}

func TestInstallFreshness(t *testing.T) {
	var seen []int
	c := Install(counting(), func(n int) tree.Tree[string, string] {
		seen = append(seen, n)
		return tree.Text[string, string](strconv.Itoa(n))
	})

	// The graft is recomputed from the latest placeholder value at
	// every render, never from replayed history.
	c.Step("a")
	c.Step("b")
	c.Step("c")
	require.Equal(t, []int{1, 2, 3}, seen)
}

func TestInstallRoutesNoRequestsIntoGraft(t *testing.T) {
	grafts := 0
	c := Install(counting(), func(n int) tree.Tree[string, string] {
		grafts++
		return tree.Empty[string, string]()
	})
	c.Step("a")
	c.Step("b")
	// Exactly one graft evaluation per render of the outer component.
	require.Equal(t, 2, grafts)
}
