package either

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeftRight(t *testing.T) {
	l := Left[int, string](7)
	require.True(t, l.IsLeft())
	require.False(t, l.IsRight())

	v, ok := l.Left()
	require.True(t, ok)
	require.Equal(t, 7, v)

	_, ok = l.Right()
	require.False(t, ok)

	r := Right[int]("hi")
	require.True(t, r.IsRight())
	require.False(t, r.IsLeft())

	s, ok := r.Right()
	require.True(t, ok)
	require.Equal(t, "hi", s)

	_, ok = r.Left()
	require.False(t, ok)
}

func TestZeroValueIsLeft(t *testing.T) {
	var e Either[int, string]
	require.True(t, e.IsLeft())

	v, ok := e.Left()
	require.True(t, ok)
	require.Equal(t, 0, v)
}

func TestFold(t *testing.T) {
	onLeft := func(n int) string { return "L" + strconv.Itoa(n) }
	onRight := func(s string) string { return "R" + s }

	require.Equal(t, "L3", Fold(Left[int, string](3), onLeft, onRight))
	require.Equal(t, "Rx", Fold(Right[int]("x"), onLeft, onRight))
}

func TestMapLeft(t *testing.T) {
	doubled := MapLeft(Left[int, string](4), func(n int) int { return n * 2 })
	v, ok := doubled.Left()
	require.True(t, ok)
	require.Equal(t, 8, v)

	kept := MapLeft(Right[int]("x"), func(n int) int { return n * 2 })
	s, ok := kept.Right()
	require.True(t, ok)
	require.Equal(t, "x", s)
}

func TestMapRight(t *testing.T) {
	upper := MapRight(Right[int]("ab"), func(s string) int { return len(s) })
	v, ok := upper.Right()
	require.True(t, ok)
	require.Equal(t, 2, v)

	kept := MapRight(Left[int, string](9), func(s string) int { return len(s) })
	n, ok := kept.Left()
	require.True(t, ok)
	require.Equal(t, 9, n)
}
