package effect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	a := Of(42)
	require.Equal(t, 42, a.Run())
	require.Equal(t, 42, a.Run())
}

func TestRunNil(t *testing.T) {
	var a Action[string]
	require.Equal(t, "", a.Run())
}

func TestMap(t *testing.T) {
	calls := 0
	a := Func(func() int {
		calls++
		return 10
	})
	b := Map(func(n int) string {
		if n == 10 {
			return "ten"
		}
		return "other"
	}, a)

	// Mapping is deferred: nothing runs until the action does.
	require.Equal(t, 0, calls)
	require.Equal(t, "ten", b.Run())
	require.Equal(t, 1, calls)
}

func TestMapNil(t *testing.T) {
	var a Action[int]
	b := Map(func(n int) int { return n + 1 }, a)
	require.Nil(t, b)
}
