package parse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigned(t *testing.T) {
	v, err := Signed[int32]("-1234")
	require.NoError(t, err)
	assert.Equal(t, int32(-1234), v)

	u, err := Signed[uint32]("+1234")
	require.NoError(t, err)
	assert.Equal(t, uint32(1234), u)

	z, err := Signed[uint8]("-0")
	require.NoError(t, err)
	assert.Zero(t, z)
}

func TestSigned_Errors(t *testing.T) {
	for _, s := range []string{"", "abc", "12a", " 12", "--1", "+"} {
		_, err := Signed[int](s)
		assert.ErrorIs(t, err, ErrSyntax, "%q", s)
	}

	_, err := Signed[int8]("128")
	assert.ErrorIs(t, err, ErrRange)
	_, err = Signed[int8]("-129")
	assert.ErrorIs(t, err, ErrRange)
	_, err = Signed[uint8]("256")
	assert.ErrorIs(t, err, ErrRange)
	_, err = Signed[uint16]("-1")
	assert.ErrorIs(t, err, ErrRange)
	_, err = Signed[int64]("99999999999999999999")
	assert.ErrorIs(t, err, ErrRange)

	v, err := Signed[int8]("-128")
	require.NoError(t, err)
	assert.Equal(t, int8(-128), v)
}

func TestInts(t *testing.T) {
	got, err := Ints[int]("Sensor at x=2, y=-18: closest beacon is at x=-2, y=+15")
	require.NoError(t, err)
	assert.Equal(t, []int{2, -18, -2, 15}, got)

	got, err = Ints[int]("no numbers here")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Ints[uint8]("1,2,300")
	assert.ErrorIs(t, err, ErrRange)

	assert.Equal(t, []int64{498, 4, 498, 6, 496, 6}, MustInts[int64]("498,4 -> 498,6 -> 496,6"))
	assert.Panics(t, func() { MustInts[uint8]("-5") })
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n"), 0o600))

	s, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", s)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
