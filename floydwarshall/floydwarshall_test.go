package floydwarshall_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/floydwarshall"
)

func TestRun_ChainThroughMiddle(t *testing.T) {
	dist := floydwarshall.NewTable[string, int]()
	dist.Set("A", "B", 1)
	dist.Set("B", "C", 1)

	require.NoError(t, floydwarshall.Run([]string{"A", "B", "C"}, dist))

	d, ok := dist.Get("A", "C")
	assert.True(t, ok)
	assert.Equal(t, 2, d)

	// directed input: nothing leads back
	_, ok = dist.Get("C", "A")
	assert.False(t, ok)
	assert.Equal(t, math.MaxInt, dist[floydwarshall.Pair[string]{From: "C", To: "A"}])
}

func TestRun_FillsEveryPair(t *testing.T) {
	keys := []int{1, 2, 3, 4}
	dist := floydwarshall.NewTable[int, uint16]()
	dist.SetBoth(1, 2, 5)

	require.NoError(t, floydwarshall.Run(keys, dist))
	assert.Len(t, dist, len(keys)*len(keys))

	d, ok := dist.Get(2, 1)
	assert.True(t, ok)
	assert.Equal(t, uint16(5), d)

	// 3 and 4 are isolated
	_, ok = dist.Get(3, 4)
	assert.False(t, ok)
	assert.Equal(t, uint16(math.MaxUint16), dist[floydwarshall.Pair[int]{From: 3, To: 4}])
}

func TestRun_PrefersCheaperDetour(t *testing.T) {
	dist := floydwarshall.NewTable[rune, int]()
	dist.SetBoth('a', 'd', 10)
	dist.SetBoth('a', 'b', 2)
	dist.SetBoth('b', 'c', 3)
	dist.SetBoth('c', 'd', 1)
	keys := []rune{'a', 'b', 'c', 'd'}
	for _, k := range keys {
		dist.Set(k, k, 0)
	}

	require.NoError(t, floydwarshall.Run(keys, dist))

	d, _ := dist.Get('a', 'd')
	assert.Equal(t, 6, d)
	d, _ = dist.Get('d', 'b')
	assert.Equal(t, 4, d)

	// triangle inequality over every triple
	for _, i := range keys {
		for _, j := range keys {
			for _, k := range keys {
				ij, _ := dist.Get(i, j)
				ik, _ := dist.Get(i, k)
				kj, _ := dist.Get(k, j)
				assert.LessOrEqual(t, ij, ik+kj)
			}
		}
	}
}

func TestRun_SaturatesInsteadOfWrapping(t *testing.T) {
	dist := floydwarshall.NewTable[int, uint8]()
	dist.Set(0, 1, 200)
	dist.Set(1, 2, 100)

	require.NoError(t, floydwarshall.Run([]int{0, 1, 2}, dist))

	// 300 does not fit a uint8; the sum clamps to Inf rather than wrap to 44
	d, ok := dist.Get(0, 2)
	assert.False(t, ok)
	assert.Equal(t, floydwarshall.Inf[uint8](), d)
}

func TestRun_DiagonalFromCycle(t *testing.T) {
	dist := floydwarshall.NewTable[int, int]()
	dist.Set(1, 2, 3)
	dist.Set(2, 1, 4)

	require.NoError(t, floydwarshall.Run([]int{1, 2}, dist))
	d, ok := dist.Get(1, 1)
	assert.True(t, ok)
	assert.Equal(t, 7, d)
}

func TestRun_Errors(t *testing.T) {
	assert.ErrorIs(t, floydwarshall.Run[int, int]([]int{1}, nil), floydwarshall.ErrNilTable)

	dist := floydwarshall.NewTable[int, int]()
	assert.ErrorIs(t, floydwarshall.Run([]int{1, 2, 1}, dist), floydwarshall.ErrDuplicateKey)
}
