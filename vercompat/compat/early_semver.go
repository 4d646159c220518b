package compat

import "github.com/depsolve/vercompat/vercompat/version"

// significantPrefixLen is the number of leading segments that anchor
// compatibility under early semver. An empty first segment widens the anchor
// to two segments: for 0.x versions the minor digit acts as the major (the
// initial-development convention), and versions with a leading separator
// artifact get the same treatment.
func significantPrefixLen(v version.Version) int {
	segments := v.Segments()
	if len(segments) > 0 && segments[0].IsEmpty() {
		return 2
	}
	return 1
}

// earlySemVerCompatible accepts a version when some preferred candidate is an
// all-numeric anchor sharing the significant prefix, with the candidate's
// remaining segments ordered at or below the version's.
func earlySemVerCompatible(c version.Constraint, v version.Version) bool {
	k := significantPrefixLen(v)
	for _, w := range c.Preferred {
		if len(w.Segments()) == 0 || !w.AllNumeric() {
			continue
		}
		if !prefixEqual(w, v, k) {
			continue
		}
		if version.CompareSegments(w.Tail(k), v.Tail(k)) <= 0 {
			return true
		}
	}
	return false
}

func earlySemVerMinimum(ver string) string {
	v := version.Parse(ver)
	k := significantPrefixLen(v)
	candidate, ok := renderNumericPrefix(v.First(k))
	if !ok {
		return ver
	}
	return acceptCandidate(candidate, ver, v)
}
