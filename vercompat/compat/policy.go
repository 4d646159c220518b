package compat

import (
	"fmt"
	"sort"
	"strings"

	"github.com/scylladb/go-set/strset"
)

const (
	UnknownPolicy Policy = iota
	DefaultPolicy
	AlwaysPolicy
	StrictPolicy
	// SemVerPolicy forwards to EarlySemVerPolicy and is retained only so that
	// existing configurations keep their naming.
	//
	// Deprecated: use EarlySemVerPolicy instead.
	SemVerPolicy
	EarlySemVerPolicy
	SemVerSpecPolicy
	PackVerPolicy
)

// Policy is a compatibility policy: a named rule set deciding which versions
// are considered interchangeable with a declared constraint during conflict
// reconciliation. Policies are stateless and safe for concurrent use.
type Policy int

var policyStr = []string{
	"unknown",
	"default",
	"always compatible",
	"strict",
	"semver (deprecated)",
	"early semver",
	"semver spec",
	"package versioning policy",
}

// Policies enumerates the concrete variants.
var Policies = []Policy{
	DefaultPolicy,
	AlwaysPolicy,
	StrictPolicy,
	SemVerPolicy,
	EarlySemVerPolicy,
	SemVerSpecPolicy,
	PackVerPolicy,
}

var policyTokens = strset.New(
	"default",
	"always",
	"strict",
	"early-semver",
	"semver-spec",
	"pvp",
)

// PolicyTokens returns the configuration vocabulary accepted by ParsePolicy,
// sorted, for use in user-facing messages.
func PolicyTokens() []string {
	tokens := policyTokens.List()
	sort.Strings(tokens)
	return tokens
}

// ParsePolicy maps a configuration token to a policy, returning UnknownPolicy
// for unrecognized tokens.
//
// The token "semver" is refused outright: it is ambiguous between
// "early-semver" and "semver-spec", and silently picking one would change
// resolution outcomes. Since proceeding with the wrong policy corrupts
// dependency resolution, this is a panic rather than an error return.
func ParsePolicy(userStr string) Policy {
	switch strings.ToLower(userStr) {
	case "default":
		return DefaultPolicy
	case "always":
		return AlwaysPolicy
	case "strict":
		return StrictPolicy
	case "early-semver":
		return EarlySemVerPolicy
	case "semver-spec":
		return SemVerSpecPolicy
	case "pvp":
		return PackVerPolicy
	case "semver":
		panic(fmt.Errorf("%w: %q does not distinguish between %q and %q, pick one explicitly",
			ErrAmbiguousPolicy, "semver", "early-semver", "semver-spec"))
	}
	return UnknownPolicy
}

// Name returns the fixed diagnostic label for the policy. Labels are purely
// descriptive and are not accepted by ParsePolicy.
func (p Policy) Name() string {
	if int(p) >= len(policyStr) || p < 0 {
		return policyStr[0]
	}
	return policyStr[p]
}

func (p Policy) String() string {
	return p.Name()
}

// canonical resolves the forwarding variants to the policy that carries their
// logic, guaranteeing the delegation equivalences by construction.
func (p Policy) canonical() Policy {
	switch p {
	case DefaultPolicy:
		return PackVerPolicy
	case SemVerPolicy:
		return EarlySemVerPolicy
	}
	return p
}
