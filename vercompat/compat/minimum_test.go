package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/depsolve/vercompat/vercompat/version"
)

func TestMinimumCompatibleVersion(t *testing.T) {
	tests := []struct {
		policy   Policy
		version  string
		expected string
	}{
		{policy: AlwaysPolicy, version: "1.2.3", expected: "0"},
		{policy: AlwaysPolicy, version: "garbage", expected: "0"},

		{policy: StrictPolicy, version: "1.2.3", expected: "1.2.3"},
		{policy: StrictPolicy, version: "1.0-rc1", expected: "1.0-rc1"},

		{policy: EarlySemVerPolicy, version: "1.2.3", expected: "1"},
		{policy: EarlySemVerPolicy, version: "1", expected: "1"},
		{policy: EarlySemVerPolicy, version: "0.2.3", expected: "0.2"},
		{policy: EarlySemVerPolicy, version: "0.2", expected: "0.2"},
		// a non-numeric significant prefix cannot be rendered as an anchor
		{policy: EarlySemVerPolicy, version: ".1.2", expected: ".1.2"},
		{policy: EarlySemVerPolicy, version: "rc1", expected: "rc1"},

		{policy: SemVerSpecPolicy, version: "1.2.3", expected: "1"},
		{policy: SemVerSpecPolicy, version: "2.0.0", expected: "2"},
		// zero majors carry no guarantees, so nothing below is compatible
		{policy: SemVerSpecPolicy, version: "0.1.0", expected: "0.1.0"},
		// "1" orders above "1.0-rc1", so it is not a valid lower bound
		{policy: SemVerSpecPolicy, version: "1.0-rc1", expected: "1.0-rc1"},

		{policy: PackVerPolicy, version: "1.2.3", expected: "1.2"},
		{policy: PackVerPolicy, version: "1.2", expected: "1.2"},
		{policy: PackVerPolicy, version: "1", expected: "1"},
		// "1.2" orders above the pre-release, so it is not a valid lower bound
		{policy: PackVerPolicy, version: "1.2-rc1", expected: "1.2-rc1"},
		{policy: PackVerPolicy, version: ".1.2", expected: ".1.2"},
	}

	for _, test := range tests {
		t.Run(test.policy.Name()+"/"+test.version, func(t *testing.T) {
			assert.Equal(t, test.expected, test.policy.MinimumCompatibleVersion(test.version))
		})
	}
}

// the minimum is a fixed point: taking it twice changes nothing, and it never
// orders above the version it came from
func TestMinimumCompatibleVersionProperties(t *testing.T) {
	inputs := []string{"1.2.3", "0.2.3", "1", "0.1", "1.0-rc1", ".1.2", "rc1", "2014-09"}

	for _, p := range Policies {
		for _, input := range inputs {
			min := p.MinimumCompatibleVersion(input)
			assert.Equal(t, min, p.MinimumCompatibleVersion(min), "not idempotent (policy=%q input=%q)", p, input)
			assert.LessOrEqual(t, version.Parse(min).Compare(version.Parse(input)), 0, "minimum orders above the input (policy=%q input=%q)", p, input)
		}
	}
}
