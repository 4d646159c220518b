package version

import (
	"regexp"
	"strings"
)

// operator group only matches on range operators; the version group matches on
// everything except whitespace and operators (range or boolean)
var constraintUnitPattern = regexp.MustCompile(`(?P<operator>[><=]*)\s*(?P<version>[^<>=\s,|]+)`)

// Constraint is the parsed form of a constraint string. Exactly one branch is
// semantically active: when Interval is non-zero the constraint is a range and
// Preferred is ignored; otherwise the Preferred set drives matching.
type Constraint struct {
	Preferred []Version
	Interval  Interval
}

// ParseConstraint turns a raw constraint string into a Constraint. Supported
// shapes, each of which may appear as a "||"-separated alternative:
//
//	1.2.3                plain version (preferred set)
//	1.2, 1.3             several plain versions (preferred set)
//	[1.0,2.0)  ]1.0,2.0] math or ivy interval notation
//	(,2.0]  [1.0,)       half-unbounded intervals
//	1.2.+  1.2+          ivy prefix, equivalent to [1.2,1.3)
//	>=1.0 <2.0           operator ranges, space/comma separated
//
// Parsing is total: anything unrecognized degrades to a preferred-set
// constraint over the raw token, which simply fails to match most versions.
func ParseConstraint(raw string) Constraint {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Constraint{}
	}

	var out Constraint
	for _, alt := range strings.Split(trimmed, "||") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			continue
		}
		c := parseAlternative(alt)
		out.Preferred = append(out.Preferred, c.Preferred...)
		if out.Interval.IsZero() {
			out.Interval = c.Interval
		}
	}
	return out
}

func parseAlternative(alt string) Constraint {
	switch alt[0] {
	case '[', '(', ']':
		if ivl, ok := parseInterval(alt); ok {
			return Constraint{Interval: ivl}
		}
		return Constraint{Preferred: []Version{Parse(alt)}}
	}

	if strings.HasSuffix(alt, "+") {
		if ivl, ok := parsePrefixInterval(alt); ok {
			return Constraint{Interval: ivl}
		}
		return Constraint{Preferred: []Version{Parse(alt)}}
	}

	matches := constraintUnitPattern.FindAllStringSubmatch(alt, -1)
	if len(matches) == 0 {
		return Constraint{Preferred: []Version{Parse(alt)}}
	}

	ranged := false
	for _, m := range matches {
		switch m[1] {
		case "", "=":
		case ">", ">=", "<", "<=":
			ranged = true
		default:
			// mangled operator, treat the whole phrase as a literal anchor
			return Constraint{Preferred: []Version{Parse(alt)}}
		}
	}

	if !ranged {
		preferred := make([]Version, 0, len(matches))
		for _, m := range matches {
			preferred = append(preferred, Parse(m[2]))
		}
		return Constraint{Preferred: preferred}
	}

	var ivl Interval
	for _, m := range matches {
		v := Parse(m[2])
		switch m[1] {
		case ">":
			ivl.From = &v
			ivl.FromIncluded = false
		case ">=":
			ivl.From = &v
			ivl.FromIncluded = true
		case "<":
			ivl.To = &v
			ivl.ToIncluded = false
		case "<=":
			ivl.To = &v
			ivl.ToIncluded = true
		case "", "=":
			ivl.From = &v
			ivl.To = &v
			ivl.FromIncluded = true
			ivl.ToIncluded = true
		}
	}
	return Constraint{Interval: ivl}
}

// parseInterval handles math notation ("[1.0,2.0)") as well as the ivy
// flavor that marks open bounds with reversed brackets ("]1.0,2.0]").
func parseInterval(s string) (Interval, bool) {
	if len(s) < 3 {
		return Interval{}, false
	}

	var fromIncluded, toIncluded bool
	switch s[0] {
	case '[':
		fromIncluded = true
	case '(', ']':
		fromIncluded = false
	default:
		return Interval{}, false
	}
	switch s[len(s)-1] {
	case ']':
		toIncluded = true
	case ')', '[':
		toIncluded = false
	default:
		return Interval{}, false
	}

	body := s[1 : len(s)-1]
	parts := strings.SplitN(body, ",", 2)
	if len(parts) != 2 {
		return Interval{}, false
	}

	var ivl Interval
	if lo := strings.TrimSpace(parts[0]); lo != "" {
		v := Parse(lo)
		ivl.From = &v
		ivl.FromIncluded = fromIncluded
	}
	if hi := strings.TrimSpace(parts[1]); hi != "" {
		v := Parse(hi)
		ivl.To = &v
		ivl.ToIncluded = toIncluded
	}
	if ivl.IsZero() {
		// "(,)" parses to the absent sentinel, reject it rather than have a
		// real range collide with the zero value
		return Interval{}, false
	}
	return ivl, true
}

// parsePrefixInterval converts an ivy-style dynamic revision ("1.2.+", "1.2+")
// to the half-open interval [1.2, 1.3).
func parsePrefixInterval(s string) (Interval, bool) {
	base := strings.TrimSuffix(s, "+")
	base = strings.TrimSuffix(base, ".")
	if base == "" {
		return Interval{}, false
	}

	from := Parse(base)
	segments := from.Segments()
	if len(segments) == 0 {
		return Interval{}, false
	}
	last := segments[len(segments)-1]
	if !last.IsNumeric() {
		return Interval{}, false
	}

	parts := make([]string, len(segments))
	for i, seg := range segments[:len(segments)-1] {
		if !seg.IsNumeric() {
			return Interval{}, false
		}
		parts[i] = seg.String()
	}
	parts[len(parts)-1] = numericSegment(last.Num() + 1).String()
	to := Parse(strings.Join(parts, "."))

	return Interval{
		From:         &from,
		To:           &to,
		FromIncluded: true,
		ToIncluded:   false,
	}, true
}
