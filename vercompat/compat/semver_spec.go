package compat

import "github.com/depsolve/vercompat/vercompat/version"

// semVerSpecCompatible follows semantic versioning as written: only the major
// segment anchors compatibility, and a degenerate major (absent, empty, or
// zero) anchors nothing, since a 0.x release guarantees nothing about the next.
func semVerSpecCompatible(c version.Constraint, v version.Version) bool {
	segments := v.Segments()
	if len(segments) == 0 || segments[0].IsEmpty() {
		return false
	}
	for _, w := range c.Preferred {
		if len(w.Segments()) == 0 || !w.AllNumeric() {
			continue
		}
		if !prefixEqual(w, v, 1) {
			continue
		}
		if version.CompareSegments(w.Tail(1), v.Tail(1)) <= 0 {
			return true
		}
	}
	return false
}

func semVerSpecMinimum(ver string) string {
	v := version.Parse(ver)
	segments := v.Segments()
	if len(segments) == 0 {
		return ver
	}
	major := segments[0]
	if !major.IsNumeric() || major.IsEmpty() {
		return ver
	}
	return acceptCandidate(major.String(), ver, v)
}
