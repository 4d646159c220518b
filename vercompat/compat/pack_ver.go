package compat

import "github.com/depsolve/vercompat/vercompat/version"

// packVerCompatible applies package-versioning-policy semantics: major and
// minor are frozen, everything after them is assumed compatible in either
// direction, so there is no ordering check on the remainder.
func packVerCompatible(c version.Constraint, v version.Version) bool {
	for _, w := range c.Preferred {
		if prefixEqual(w, v, 2) {
			return true
		}
	}
	return false
}

func packVerMinimum(ver string) string {
	v := version.Parse(ver)
	if len(v.Segments()) < 2 {
		return ver
	}
	candidate, ok := renderNumericPrefix(v.First(2))
	if !ok {
		return ver
	}
	return acceptCandidate(candidate, ver, v)
}
