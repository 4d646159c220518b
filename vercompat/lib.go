package vercompat

import (
	"fmt"

	"github.com/depsolve/vercompat/internal/log"
	"github.com/depsolve/vercompat/vercompat/compat"
	"github.com/depsolve/vercompat/vercompat/logger"
)

// ErrUnknownPolicy is returned when a policy name does not match any known
// configuration token.
var ErrUnknownPolicy = fmt.Errorf("unknown policy")

// IsCompatible decides whether ver satisfies the given constraint under the
// named policy (e.g. "pvp", "early-semver").
func IsCompatible(policyName, constraint, ver string) (bool, error) {
	policy := compat.ParsePolicy(policyName)
	if policy == compat.UnknownPolicy {
		return false, fmt.Errorf("%w: %q (known: %v)", ErrUnknownPolicy, policyName, compat.PolicyTokens())
	}
	return policy.IsCompatible(constraint, ver), nil
}

// MinimumCompatibleVersion returns the lowest version the named policy still
// treats as compatible with ver.
func MinimumCompatibleVersion(policyName, ver string) (string, error) {
	policy := compat.ParsePolicy(policyName)
	if policy == compat.UnknownPolicy {
		return "", fmt.Errorf("%w: %q (known: %v)", ErrUnknownPolicy, policyName, compat.PolicyTokens())
	}
	return policy.MinimumCompatibleVersion(ver), nil
}

// SetLogger sets the logger object used for all logging calls.
func SetLogger(logger logger.Logger) {
	log.Log = logger
}
