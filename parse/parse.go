// Package parse pulls integers out of puzzle-style text.
//
// Numbers may carry a leading '+' or '-'. Conversion into the requested
// integer type is checked: a number that does not fit is an error, never a
// silent wrap.
package parse

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lattice/internal/numeric"
)

var (
	// ErrSyntax is returned when the text is not a single signed integer.
	ErrSyntax = errors.New("parse: invalid integer syntax")

	// ErrRange is returned when an integer does not fit the target type.
	ErrRange = errors.New("parse: integer out of range")
)

var signedRx = regexp.MustCompile(`[-+]?\d+`)

// Signed parses s, an integer with an optional sign, into T.
func Signed[T constraints.Integer](s string) (T, error) {
	if !signedRx.MatchString(s) || signedRx.FindString(s) != s {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	lim := numeric.LimitsOf[T]()
	if lim.Min < 0 {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v < int64(lim.Min) || v > int64(lim.Max) {
			return 0, fmt.Errorf("%w: %q", ErrRange, s)
		}
		return T(v), nil
	}

	// unsigned targets still accept "+7" and "-0"
	digits, neg := s, false
	switch s[0] {
	case '+':
		digits = s[1:]
	case '-':
		digits, neg = s[1:], true
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || v > uint64(lim.Max) || (neg && v != 0) {
		return 0, fmt.Errorf("%w: %q", ErrRange, s)
	}
	return T(v), nil
}

// Ints returns every signed integer embedded in s, in order. Anything that
// is not a digit or a sign directly before one acts as a separator.
func Ints[T constraints.Integer](s string) ([]T, error) {
	toks := signedRx.FindAllString(s, -1)
	out := make([]T, 0, len(toks))
	for _, tok := range toks {
		v, err := Signed[T](tok)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// MustInts is Ints that panics on error, for literals in tests and examples.
func MustInts[T constraints.Integer](s string) []T {
	out, err := Ints[T](s)
	if err != nil {
		panic(err)
	}
	return out
}

// ReadFile returns the contents of path as a string.
func ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("parse: read %s: %w", path, err)
	}
	return string(b), nil
}
