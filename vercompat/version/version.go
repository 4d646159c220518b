package version

import "strconv"

// Version is the parsed, immutable form of a version string: the raw input
// plus its ordered segments. Parsing is total, so real-world oddities from
// package metadata ("1.0.2k", ".1.2", "2014-09") still yield a comparable
// value instead of an error.
type Version struct {
	raw      string
	segments []Segment
}

// Parse splits raw into segments. Separator characters ('.', '-', '_', '+')
// delimit fields, and each field is further split at digit/letter boundaries,
// so "1.0-rc1" yields [1, 0, "rc", 1]. A leading, trailing, or doubled
// separator yields an empty token at that position.
func Parse(raw string) Version {
	return Version{
		raw:      raw,
		segments: parseSegments(raw),
	}
}

func parseSegments(raw string) []Segment {
	if raw == "" {
		return nil
	}

	var segments []Segment
	start := 0
	flushField := func(field string) {
		if field == "" {
			segments = append(segments, otherSegment(""))
			return
		}
		tokStart := 0
		for i := 1; i <= len(field); i++ {
			if i == len(field) || isDigit(field[i]) != isDigit(field[tokStart]) {
				segments = append(segments, classifyToken(field[tokStart:i]))
				tokStart = i
			}
		}
	}

	for i := 0; i <= len(raw); i++ {
		if i == len(raw) || isSeparator(raw[i]) {
			flushField(raw[start:i])
			start = i + 1
		}
	}

	return segments
}

func isSeparator(b byte) bool {
	return b == '.' || b == '-' || b == '_' || b == '+'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func classifyToken(tok string) Segment {
	if !isDigit(tok[0]) {
		return otherSegment(tok)
	}
	n, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		// numeric but too large to represent; keep the token as-is
		return otherSegment(tok)
	}
	return numericSegment(n)
}

// String returns the raw version string as given.
func (v Version) String() string {
	return v.raw
}

func (v Version) Segments() []Segment {
	return v.segments
}

// Compare implements the total order over versions: lexicographic,
// segment-wise comparison, with the shorter version padded by empty segments
// (so "1.0" and "1.0.0" are order-equal).
func (v Version) Compare(other Version) int {
	return CompareSegments(v.segments, other.segments)
}

// Equal is structural identity of the parsed forms: the same segments in the
// same positions. Versions that are merely order-equal (trailing zeros,
// differing separators producing the same segments) may or may not be Equal.
func (v Version) Equal(other Version) bool {
	if len(v.segments) != len(other.segments) {
		return false
	}
	for i := range v.segments {
		if !v.segments[i].Equal(other.segments[i]) {
			return false
		}
	}
	return true
}

// AllNumeric indicates every segment is numeric (true for "1.2.3", false for
// "1.2.3-rc1" and ".1.2").
func (v Version) AllNumeric() bool {
	for _, s := range v.segments {
		if !s.IsNumeric() {
			return false
		}
	}
	return true
}

// First returns up to the first k segments.
func (v Version) First(k int) []Segment {
	if k > len(v.segments) {
		k = len(v.segments)
	}
	return v.segments[:k]
}

// Tail returns the segments after the first k, if any.
func (v Version) Tail(k int) []Segment {
	if k > len(v.segments) {
		k = len(v.segments)
	}
	return v.segments[k:]
}
