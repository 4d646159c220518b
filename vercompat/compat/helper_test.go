package compat

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testCase struct {
	name       string
	constraint string
	version    string
	satisfied  bool
}

func (c *testCase) tName() string {
	if c.name != "" {
		return c.name
	}

	return fmt.Sprintf("con='%s'ver='%s'", strings.ReplaceAll(c.constraint, " ", ""), strings.ReplaceAll(c.version, " ", ""))
}

func (c *testCase) assertPolicy(t *testing.T, policy Policy) {
	t.Helper()

	actual := policy.IsCompatible(c.constraint, c.version)
	assert.Equal(t, c.satisfied, actual, "unexpected compatibility result (policy=%q constraint=%q version=%q)", policy, c.constraint, c.version)
}
