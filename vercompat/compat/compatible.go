package compat

import (
	"strings"

	"github.com/depsolve/vercompat/vercompat/version"
)

// IsCompatible decides whether a concrete version satisfies the given
// constraint under this policy. Identical raw strings are always compatible.
// When the constraint carries an explicit range, every policy defers to range
// containment: the range already fully specifies the acceptable versions, and
// policy only matters for disambiguating the implicit compatibility of a
// single preferred anchor. Malformed input never errors, it just fails to
// match.
func (p Policy) IsCompatible(constraint, ver string) bool {
	if constraint == ver {
		return true
	}

	c := p.canonical()
	if c == AlwaysPolicy {
		return true
	}

	parsed := version.ParseConstraint(constraint)
	v := version.Parse(ver)

	if !parsed.Interval.IsZero() {
		return parsed.Interval.Contains(v)
	}

	switch c {
	case StrictPolicy:
		return strictCompatible(parsed, v)
	case EarlySemVerPolicy:
		return earlySemVerCompatible(parsed, v)
	case SemVerSpecPolicy:
		return semVerSpecCompatible(parsed, v)
	case PackVerPolicy:
		return packVerCompatible(parsed, v)
	}

	return false
}

// MinimumCompatibleVersion computes the lowest version string that this policy
// still treats as compatible with ver. The result always re-parses to a value
// ordered at or below ver; when no valid shorter anchor can be built, ver is
// returned unchanged.
func (p Policy) MinimumCompatibleVersion(ver string) string {
	switch p.canonical() {
	case AlwaysPolicy:
		return "0"
	case EarlySemVerPolicy:
		return earlySemVerMinimum(ver)
	case SemVerSpecPolicy:
		return semVerSpecMinimum(ver)
	case PackVerPolicy:
		return packVerMinimum(ver)
	}
	// strict (and unknown) keep the version as its own lower bound
	return ver
}

// prefixEqual reports whether the first k segments of w and v are structurally
// identical. A version shorter than k contributes only the segments it has, so
// when two frozen segments are required "1" cannot anchor "1.2.3" even though
// they agree on the major.
func prefixEqual(w, v version.Version, k int) bool {
	a, b := w.First(k), v.First(k)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// renderNumericPrefix renders segments as a dotted numeric string, failing if
// any segment is non-numeric.
func renderNumericPrefix(segments []version.Segment) (string, bool) {
	if len(segments) == 0 {
		return "", false
	}
	parts := make([]string, len(segments))
	for i, seg := range segments {
		if !seg.IsNumeric() {
			return "", false
		}
		parts[i] = seg.String()
	}
	return strings.Join(parts, "."), true
}

// acceptCandidate enforces the lower-bound invariant: a candidate anchor is
// only usable if it re-parses to a value at or below the version it was
// derived from.
func acceptCandidate(candidate, ver string, v version.Version) string {
	if version.Parse(candidate).Compare(v) > 0 {
		return ver
	}
	return candidate
}
