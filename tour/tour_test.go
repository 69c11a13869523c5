package tour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/floydwarshall"
	"github.com/katalvlaran/lattice/internal/numeric"
)

func lineTable(points []int) floydwarshall.Table[int, int] {
	t := floydwarshall.NewTable[int, int]()
	for _, a := range points {
		for _, b := range points {
			t.Set(a, b, numeric.AbsDiff(a, b))
		}
	}
	return t
}

func TestShortest_Open(t *testing.T) {
	pts := []int{0, 10, 3, 7}
	res, err := Shortest(pts, lineTable(pts))
	require.NoError(t, err)
	assert.Equal(t, 10, res.Cost)
	assert.Equal(t, []int{0, 3, 7, 10}, res.Order)
}

func TestShortest_Return(t *testing.T) {
	pts := []int{0, 10, 3, 7}
	res, err := Shortest(pts, lineTable(pts), WithReturn())
	require.NoError(t, err)
	assert.Equal(t, 20, res.Cost)
	require.Len(t, res.Order, 5)
	assert.Equal(t, 0, res.Order[0])
	assert.Equal(t, 0, res.Order[4])
	assert.ElementsMatch(t, pts, res.Order[:4])
}

func TestShortest_Cities(t *testing.T) {
	d := floydwarshall.NewTable[string, uint16]()
	d.SetBoth("London", "Dublin", 464)
	d.SetBoth("London", "Belfast", 518)
	d.SetBoth("Dublin", "Belfast", 141)
	pts := []string{"London", "Dublin", "Belfast"}

	res, err := Shortest(pts, d)
	require.NoError(t, err)
	assert.Equal(t, uint16(605), res.Cost)
	assert.Equal(t, []string{"London", "Dublin", "Belfast"}, res.Order)

	res, err = Shortest(pts, d, WithReturn())
	require.NoError(t, err)
	assert.Equal(t, uint16(1123), res.Cost)
}

func TestShortest_SinglePoint(t *testing.T) {
	res, err := Shortest([]string{"a"}, floydwarshall.NewTable[string, int]())
	require.NoError(t, err)
	assert.Zero(t, res.Cost)
	assert.Equal(t, []string{"a"}, res.Order)

	res, err = Shortest([]string{"a"}, floydwarshall.NewTable[string, int](), WithReturn())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a"}, res.Order)
}

func TestShortest_Errors(t *testing.T) {
	d := floydwarshall.NewTable[string, int]()
	d.SetBoth("a", "b", 1)

	_, err := Shortest([]string{"a", "b", "c"}, d)
	assert.ErrorIs(t, err, ErrIncomplete)

	// a one-way leg is enough for an open route but not a cycle
	one := floydwarshall.NewTable[string, int]()
	one.Set("a", "b", 1)
	_, err = Shortest([]string{"a", "b"}, one)
	assert.NoError(t, err)
	_, err = Shortest([]string{"a", "b"}, one, WithReturn())
	assert.ErrorIs(t, err, ErrIncomplete)

	_, err = Shortest([]string{}, d)
	assert.ErrorIs(t, err, ErrNoPoints)

	_, err = Shortest([]string{"a", "b", "a"}, d)
	assert.ErrorIs(t, err, ErrDuplicatePoint)

	many := make([]int, MaxPoints+1)
	for i := range many {
		many[i] = i
	}
	_, err = Shortest(many, lineTable(many))
	assert.ErrorIs(t, err, ErrTooManyPoints)
}

// TestShortest_AfterClosure uses Floyd–Warshall to supply legs that only
// exist through another point.
func TestShortest_AfterClosure(t *testing.T) {
	pts := []string{"hub", "x", "y", "z"}
	d := floydwarshall.NewTable[string, int]()
	d.SetBoth("hub", "x", 2)
	d.SetBoth("hub", "y", 3)
	d.SetBoth("hub", "z", 4)
	require.NoError(t, floydwarshall.Run(pts, d))

	res, err := Shortest(pts, d)
	require.NoError(t, err)
	// hub → x → y → z costs 2 + 5 + 7
	assert.Equal(t, 14, res.Cost)
	assert.Equal(t, "hub", res.Order[0])
}
