package phrases

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/secretnumber/internal/game"
)

func TestInitLoadsPools(t *testing.T) {
	require.NoError(t, Init())

	sizes := map[game.Result]int{
		game.ResultLow:     3,
		game.ResultHigh:    4,
		game.ResultCorrect: 3,
	}
	for r, want := range sizes {
		assert.Len(t, Pool(r), want, "pool %s", r)
	}
	assert.Contains(t, Pool(game.ResultLow), "Even my cat could guess higher.")
	assert.Contains(t, Pool(game.ResultHigh), "Higher than a kangaroo's jump!")
	assert.Contains(t, Pool(game.ResultCorrect), "Spot on! You're a pro.")
}

func TestPoolReturnsCopy(t *testing.T) {
	require.NoError(t, Init())
	p := Pool(game.ResultLow)
	p[0] = "mutated"
	assert.NotEqual(t, "mutated", Pool(game.ResultLow)[0])
}

func TestPickUsesIndexSource(t *testing.T) {
	require.NoError(t, Init())
	for i, want := range Pool(game.ResultHigh) {
		got := Pick(game.ResultHigh, func(n int) int {
			require.Equal(t, 4, n)
			return i
		})
		assert.Equal(t, want, got)
	}
}

func TestPickCoversLowPool(t *testing.T) {
	require.NoError(t, Init())
	seen := map[string]int{}
	for i := 0; i < 1000; i++ {
		seen[Pick(game.ResultLow, nil)]++
	}
	for _, p := range Pool(game.ResultLow) {
		assert.Positive(t, seen[p], "phrase %q never picked", p)
	}
	assert.Len(t, seen, 3)
}

func TestRandomIndexRange(t *testing.T) {
	assert.Equal(t, 0, RandomIndex(0))
	assert.Equal(t, 0, RandomIndex(1))
	for i := 0; i < 200; i++ {
		v := RandomIndex(4)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 4)
	}
}

func TestBanner(t *testing.T) {
	require.NoError(t, Init())
	b := Banner()
	lines := strings.Split(b, "\n")
	assert.Len(t, lines, 8)
	assert.True(t, strings.HasPrefix(lines[2], " ##"), "leading space must survive")
	assert.False(t, strings.HasSuffix(b, "\n"))
}
