package cord_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/cord"
)

// c2 keeps the long expectation tables readable.
func c2(x, y int) cord.Cord[int] { return cord.New(x, y) }

// panicErr runs fn and returns the error it panicked with.
func panicErr(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()
	return nil
}

func TestNew_DimensionBounds(t *testing.T) {
	c := cord.New(1, 2, 3)
	assert.Equal(t, 3, c.Dim())
	assert.Equal(t, []int{1, 2, 3}, c.Slice())

	err := panicErr(t, func() { cord.New[int]() })
	assert.True(t, errors.Is(err, cord.ErrDimRange))

	err = panicErr(t, func() { cord.New(1, 2, 3, 4, 5) })
	assert.True(t, errors.Is(err, cord.ErrDimRange))
}

func TestArithmetic(t *testing.T) {
	a, b := cord.New(1, -2, 3), cord.New(4, 5, -6)
	assert.Equal(t, cord.New(5, 3, -3), a.Add(b))
	assert.Equal(t, cord.New(-3, -7, 9), a.Sub(b))
	assert.Equal(t, cord.New(3, -6, 9), a.Mul(3))
	assert.Equal(t, cord.New(2, 2, -3), b.Div(2))
	assert.Equal(t, cord.New(4, 5, 3), a.Apply(b, func(x, y int) int { return max(x, y) }))

	// operands are values; nothing is mutated in place
	assert.Equal(t, cord.New(1, -2, 3), a)
}

func TestWithAndAt(t *testing.T) {
	a := cord.New(7, 8)
	b := a.With(1, 10)
	assert.Equal(t, 8, a.At(1))
	assert.Equal(t, 10, b.At(1))

	err := panicErr(t, func() { a.At(2) })
	assert.True(t, errors.Is(err, cord.ErrAxisRange))
}

func TestDimensionMismatchPanics(t *testing.T) {
	err := panicErr(t, func() { cord.New(1, 2).Add(cord.New(1, 2, 3)) })
	assert.True(t, errors.Is(err, cord.ErrDimMismatch))
}

func TestEqualityAndMapKeys(t *testing.T) {
	seen := map[cord.Cord[int]]bool{cord.New(1, 2): true}
	assert.True(t, seen[cord.New(1, 2)])
	assert.False(t, seen[cord.New(2, 1)])
	// same leading components, different dimension
	assert.NotEqual(t, cord.New(1, 2), cord.New(1, 2, 0))
}

func TestCompare_Lexicographic(t *testing.T) {
	pts := []cord.Cord[int]{c2(1, 5), c2(0, 9), c2(1, -1), c2(0, 0)}
	slices.SortFunc(pts, cord.Compare[int])
	assert.Equal(t, []cord.Cord[int]{c2(0, 0), c2(0, 9), c2(1, -1), c2(1, 5)}, pts)
	assert.True(t, cord.Less(c2(0, 9), c2(1, -1)))
	assert.Equal(t, 0, cord.Compare(c2(3, 3), c2(3, 3)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[-2, 4]", cord.New(-2, 4).String())
	assert.Equal(t, "[7]", cord.New[uint8](7).String())
}

func TestManhattan(t *testing.T) {
	a, b := cord.New(-2, 4), cord.New(498, 6)
	assert.Equal(t, 502, a.Manhattan(b))
	assert.Equal(t, b.Manhattan(a), a.Manhattan(b))
	assert.Equal(t, 0, a.Manhattan(a))

	// unsigned components must not underflow
	u, v := cord.New[uint](2, 9), cord.New[uint](5, 1)
	assert.Equal(t, uint(11), u.Manhattan(v))
	assert.Equal(t, uint(11), v.Manhattan(u))
}

func TestManhattan_SaturatesAtTypeMax(t *testing.T) {
	// 200 does not fit int8
	a, b := cord.New[int8](-100, 0), cord.New[int8](100, 0)
	assert.Equal(t, int8(127), a.Manhattan(b))
	assert.Equal(t, int8(127), b.Manhattan(a))
	assert.Equal(t, int16(200), cord.New[int16](-100, 0).Manhattan(cord.New[int16](100, 0)))

	u := cord.New[uint8](0, 0)
	assert.Equal(t, uint8(255), u.Manhattan(cord.New[uint8](200, 200)))
	assert.Equal(t, uint8(250), u.Manhattan(cord.New[uint8](200, 50)))

	lo := cord.New[int64](math.MinInt64, math.MinInt64)
	hi := cord.New[int64](math.MaxInt64, math.MaxInt64)
	assert.Equal(t, int64(math.MaxInt64), lo.Manhattan(hi))
}

func TestBounds_Contains(t *testing.T) {
	b := cord.Bounds[int]{Min: c2(0, 0), Max: c2(3, 2)}
	assert.True(t, b.Contains(c2(0, 0)))
	assert.True(t, b.Contains(c2(3, 2)))
	assert.False(t, b.Contains(c2(4, 1)))
	assert.False(t, b.Contains(c2(1, -1)))
}
