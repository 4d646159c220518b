package vercompat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		policy     string
		constraint string
		version    string
		satisfied  bool
	}{
		{policy: "pvp", constraint: "0.1.0", version: "0.1.5", satisfied: true},
		{policy: "pvp", constraint: "0.1.0", version: "0.2.0", satisfied: false},
		{policy: "early-semver", constraint: "1.2", version: "1.2.3", satisfied: true},
		{policy: "semver-spec", constraint: "0.1.0", version: "0.1.5", satisfied: false},
		{policy: "strict", constraint: "1.0", version: "1.0.0", satisfied: false},
		{policy: "always", constraint: "1.0", version: "99", satisfied: true},
		{policy: "default", constraint: "1.2.3", version: "1.2.0", satisfied: true},
	}

	for _, test := range tests {
		t.Run(test.policy+"/"+test.constraint+"/"+test.version, func(t *testing.T) {
			actual, err := IsCompatible(test.policy, test.constraint, test.version)
			require.NoError(t, err)
			assert.Equal(t, test.satisfied, actual)
		})
	}
}

func TestIsCompatibleUnknownPolicy(t *testing.T) {
	_, err := IsCompatible("bogus", "1.0", "1.0")
	assert.True(t, errors.Is(err, ErrUnknownPolicy))
}

func TestMinimumCompatibleVersion(t *testing.T) {
	actual, err := MinimumCompatibleVersion("pvp", "1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "1.2", actual)

	actual, err = MinimumCompatibleVersion("early-semver", "0.2.3")
	require.NoError(t, err)
	assert.Equal(t, "0.2", actual)

	_, err = MinimumCompatibleVersion("bogus", "1.2.3")
	assert.True(t, errors.Is(err, ErrUnknownPolicy))
}
