package compat

import "github.com/depsolve/vercompat/vercompat/version"

// strictCompatible accepts only versions whose parsed form is structurally
// identical to a preferred version. Ordering equivalence is not enough: "1.0"
// and "1.0.0" compare equal under the total order but are distinct anchors.
func strictCompatible(c version.Constraint, v version.Version) bool {
	for _, w := range c.Preferred {
		if w.Equal(v) {
			return true
		}
	}
	return false
}
