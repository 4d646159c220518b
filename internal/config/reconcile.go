package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/scylladb/go-set/strset"
	"github.com/spf13/viper"

	"github.com/depsolve/vercompat/internal/log"
	"github.com/depsolve/vercompat/vercompat/compat"
)

// knownEcosystems is the set of build ecosystems that per-ecosystem policy
// overrides may be keyed by.
var knownEcosystems = strset.New(
	"maven",
	"gradle",
	"sbt",
	"mill",
	"ivy",
	"cargo",
	"npm",
	"pip",
)

// reconcile contains the user-configurable policy selection: a global default
// plus per-ecosystem overrides.
type reconcile struct {
	DefaultPolicy compat.Policy            `yaml:"policy" json:"policy" mapstructure:"policy"`
	Ecosystems    map[string]compat.Policy `yaml:"ecosystems" json:"ecosystems" mapstructure:"ecosystems"`
}

func (cfg reconcile) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("reconcile.policy", compat.DefaultPolicy.Name())
	v.SetDefault("reconcile.ecosystems", map[string]string{})
}

func (cfg *reconcile) parseConfigValues() error {
	var err *multierror.Error

	if cfg.DefaultPolicy == compat.UnknownPolicy {
		cfg.DefaultPolicy = compat.DefaultPolicy
	}

	for ecosystem, policy := range cfg.Ecosystems {
		if !knownEcosystems.Has(strings.ToLower(ecosystem)) {
			err = multierror.Append(err, fmt.Errorf("unknown ecosystem %q (known: %s)", ecosystem, strings.Join(ecosystemNames(), ", ")))
			continue
		}
		if policy == compat.UnknownPolicy {
			err = multierror.Append(err, fmt.Errorf("no policy configured for ecosystem %q", ecosystem))
			continue
		}
		log.Debugf("ecosystem %q uses policy %q", ecosystem, policy)
	}

	return err.ErrorOrNil()
}

// PolicyFor returns the policy configured for the given ecosystem, falling
// back to the global default.
func (cfg reconcile) PolicyFor(ecosystem string) compat.Policy {
	if p, ok := cfg.Ecosystems[strings.ToLower(ecosystem)]; ok && p != compat.UnknownPolicy {
		return p
	}
	return cfg.DefaultPolicy
}

func ecosystemNames() []string {
	names := knownEcosystems.List()
	sort.Strings(names)
	return names
}

// policyDecodeHook converts policy token strings from the config file into
// compat.Policy values during unmarshalling.
func policyDecodeHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(compat.Policy(0)) {
		return data, nil
	}
	token := data.(string)
	if token == "" {
		return compat.UnknownPolicy, nil
	}
	policy := compat.ParsePolicy(token)
	if policy == compat.UnknownPolicy {
		return nil, fmt.Errorf("unknown policy %q (known: %s)", token, strings.Join(compat.PolicyTokens(), ", "))
	}
	return policy, nil
}
