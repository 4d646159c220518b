package version

import "strings"

// Interval is a range of versions delimited by an optional bound on each side.
// The zero value is a sentinel meaning "no range was specified" (see IsZero),
// not an empty range.
type Interval struct {
	From         *Version
	To           *Version
	FromIncluded bool
	ToIncluded   bool
}

// IsZero reports whether the interval is the absent-range sentinel. Constraints
// that name preferred versions rather than a range carry the zero interval.
func (i Interval) IsZero() bool {
	return i.From == nil && i.To == nil && !i.FromIncluded && !i.ToIncluded
}

// Contains reports whether v falls within the interval bounds.
func (i Interval) Contains(v Version) bool {
	if i.From != nil {
		c := v.Compare(*i.From)
		if c < 0 || (c == 0 && !i.FromIncluded) {
			return false
		}
	}
	if i.To != nil {
		c := v.Compare(*i.To)
		if c > 0 || (c == 0 && !i.ToIncluded) {
			return false
		}
	}
	return true
}

func (i Interval) String() string {
	if i.IsZero() {
		return "none"
	}
	var sb strings.Builder
	if i.FromIncluded {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}
	if i.From != nil {
		sb.WriteString(i.From.String())
	}
	sb.WriteByte(',')
	if i.To != nil {
		sb.WriteString(i.To.String())
	}
	if i.ToIncluded {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}
	return sb.String()
}
