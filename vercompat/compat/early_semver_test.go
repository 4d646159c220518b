package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/depsolve/vercompat/vercompat/version"
)

func TestSignificantPrefixLen(t *testing.T) {
	tests := []struct {
		version  string
		expected int
	}{
		{version: "1.2.3", expected: 1},
		{version: "1", expected: 1},
		{version: "rc1", expected: 1},
		{version: "", expected: 1},
		// a zero major widens the anchor to two segments
		{version: "0.1.0", expected: 2},
		{version: "0", expected: 2},
		// so does a leading-separator artifact (empty first token)
		{version: ".1.5", expected: 2},
		{version: ".1", expected: 2},
	}

	for _, test := range tests {
		t.Run(test.version, func(t *testing.T) {
			assert.Equal(t, test.expected, significantPrefixLen(version.Parse(test.version)))
		})
	}
}

// leading-separator versions widen the prefix to two segments, and since no
// all-numeric candidate can equal an empty first segment, nothing but an
// identical string is ever accepted for them
func TestEarlySemVerLeadingSeparator(t *testing.T) {
	tests := []testCase{
		// a numeric zero and a separator artifact are distinct anchors
		{constraint: "0.1", version: ".1.5", satisfied: false},
		{constraint: "0.1.0", version: ".1.5", satisfied: false},
		// a candidate carrying the separator artifact is not all-numeric
		{constraint: ".1.2", version: ".1.5", satisfied: false},
		{constraint: ".1.2", version: ".1.2", satisfied: true},
	}

	for _, test := range tests {
		t.Run(test.tName(), func(t *testing.T) {
			test.assertPolicy(t, EarlySemVerPolicy)
		})
	}
}
