// Package ordinal renders integers as English ordinals ("1st", "22nd", …).
//
// Format accepts any integer, including zero and negatives; the sign prefixes
// the digits and never affects suffix selection. Callers that want to keep
// ordinals out of the non-positive range use New instead.
package ordinal

import (
	"errors"
	"strconv"
)

// ErrNonPositive is returned by New for values below one.
var ErrNonPositive = errors.New("ordinal value must be greater than zero")

// Format returns the ordinal form of n. Total: it never fails.
// Examples:
//
//	Format(1)  -> "1st"
//	Format(12) -> "12th"
//	Format(0)  -> "0th"
//	Format(-1) -> "-1st"
func Format(n int64) string {
	return strconv.FormatInt(n, 10) + suffix(n)
}

func suffix(n int64) string {
	if n < 0 {
		n = -n
	}
	if last2 := n % 100; last2 == 11 || last2 == 12 || last2 == 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// Ordinal wraps a value already known to be a valid ordinal position (>= 1).
// Constructed only via New.
type Ordinal struct {
	n int64
}

// New validates the strict policy: positions start at one.
func New(n int64) (Ordinal, error) {
	if n < 1 {
		return Ordinal{}, ErrNonPositive
	}
	return Ordinal{n: n}, nil
}

// Int64 returns the wrapped value.
func (o Ordinal) Int64() int64 { return o.n }

func (o Ordinal) String() string { return Format(o.n) }
