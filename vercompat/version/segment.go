package version

import (
	"strconv"
	"strings"
)

// qualifierRank orders the well-known pre-release qualifiers below the release
// boundary (the empty segment). Any other non-numeric token sorts above it,
// lexically, which matches how maven-style tooling treats unknown suffixes.
var qualifierRank = map[string]int{
	"alpha":     -5,
	"beta":      -4,
	"milestone": -3,
	"cr":        -2,
	"rc":        -2,
	"snapshot":  -1,
}

// Segment is a single parsed component of a version string: either a numeric
// value or a bare token (a qualifier like "rc", a separator artifact yielding
// an empty token, or a number too large to represent).
type Segment struct {
	numeric bool
	num     uint64
	str     string
}

func numericSegment(n uint64) Segment {
	return Segment{numeric: true, num: n}
}

func otherSegment(s string) Segment {
	return Segment{str: s}
}

func (s Segment) IsNumeric() bool {
	return s.numeric
}

// IsEmpty indicates the segment carries no ordering weight of its own: a zero
// numeric segment or an empty token. Empty segments compare equal to a missing
// one, which is what makes "1.0" and "1.0.0" order-equal.
func (s Segment) IsEmpty() bool {
	if s.numeric {
		return s.num == 0
	}
	return s.str == ""
}

// Num returns the numeric value, or 0 for non-numeric segments.
func (s Segment) Num() uint64 {
	return s.num
}

func (s Segment) String() string {
	if s.numeric {
		return strconv.FormatUint(s.num, 10)
	}
	return s.str
}

// Equal is structural identity: a zero numeric segment and an empty token
// compare equal under Compare but are not Equal.
func (s Segment) Equal(other Segment) bool {
	return s.numeric == other.numeric && s.num == other.num && s.str == other.str
}

// Compare returns -1, 0, or 1 if s is smaller, equal, or larger than other.
// Numeric segments compare numerically and outrank any non-numeric token,
// except that a zero numeric segment and an empty token are order-equal.
// The zero/empty equivalence does not extend transitively to unknown
// qualifiers: "sp" sorts above an empty (missing) segment yet below a numeric
// zero, matching maven's treatment of unknown suffixes. Callers compare
// sequences position-wise and never rely on sorting mixed-shape segments.
func (s Segment) Compare(other Segment) int {
	switch {
	case s.numeric && other.numeric:
		switch {
		case s.num < other.num:
			return -1
		case s.num > other.num:
			return 1
		}
		return 0
	case s.numeric:
		if other.str == "" {
			if s.num == 0 {
				return 0
			}
			return 1
		}
		return 1
	case other.numeric:
		return -other.Compare(s)
	}

	a, b := strings.ToLower(s.str), strings.ToLower(other.str)
	ra, rb := tokenRank(a), tokenRank(b)
	if ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func tokenRank(lowered string) int {
	if lowered == "" {
		return 0
	}
	if rank, ok := qualifierRank[lowered]; ok {
		return rank
	}
	return 1
}

// CompareSegments orders two segment sequences lexicographically, padding the
// shorter one with empty segments.
func CompareSegments(a, b []Segment) int {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		var left, right Segment
		if i < len(a) {
			left = a[i]
		}
		if i < len(b) {
			right = b[i]
		}
		if c := left.Compare(right); c != 0 {
			return c
		}
	}
	return 0
}
