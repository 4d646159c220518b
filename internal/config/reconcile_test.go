package config

import (
	"reflect"
	"testing"

	"github.com/go-test/deep"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depsolve/vercompat/vercompat/compat"
)

func TestLoadApplicationConfigDefaults(t *testing.T) {
	cfg, err := LoadApplicationConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, compat.DefaultPolicy, cfg.Reconcile.DefaultPolicy)
	assert.Empty(t, cfg.Reconcile.Ecosystems)
}

func TestLoadApplicationConfigEcosystemOverrides(t *testing.T) {
	v := viper.New()
	v.Set("reconcile.policy", "early-semver")
	v.Set("reconcile.ecosystems", map[string]string{
		"maven": "strict",
		"cargo": "semver-spec",
	})

	cfg, err := LoadApplicationConfig(v, "")
	require.NoError(t, err)

	assert.Equal(t, compat.EarlySemVerPolicy, cfg.Reconcile.DefaultPolicy)
	if diff := deep.Equal(map[string]compat.Policy{
		"maven": compat.StrictPolicy,
		"cargo": compat.SemVerSpecPolicy,
	}, cfg.Reconcile.Ecosystems); diff != nil {
		t.Errorf("unexpected ecosystem overrides: %+v", diff)
	}

	assert.Equal(t, compat.StrictPolicy, cfg.Reconcile.PolicyFor("maven"))
	assert.Equal(t, compat.StrictPolicy, cfg.Reconcile.PolicyFor("Maven"))
	assert.Equal(t, compat.EarlySemVerPolicy, cfg.Reconcile.PolicyFor("npm"))
}

func TestLoadApplicationConfigRejectsUnknownPolicy(t *testing.T) {
	v := viper.New()
	v.Set("reconcile.policy", "bogus")

	_, err := LoadApplicationConfig(v, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown policy")
}

func TestLoadApplicationConfigRejectsUnknownEcosystem(t *testing.T) {
	v := viper.New()
	v.Set("reconcile.ecosystems", map[string]string{
		"not-a-build-tool": "strict",
	})

	_, err := LoadApplicationConfig(v, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ecosystem")
}

func TestPolicyDecodeHook(t *testing.T) {
	policyType := reflect.TypeOf(compat.Policy(0))
	stringType := reflect.TypeOf("")

	tests := []struct {
		name     string
		token    string
		expected compat.Policy
		wantErr  bool
	}{
		{name: "known token", token: "pvp", expected: compat.PackVerPolicy},
		{name: "case insensitive", token: "STRICT", expected: compat.StrictPolicy},
		{name: "empty token", token: "", expected: compat.UnknownPolicy},
		{name: "unknown token", token: "bogus", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual, err := policyDecodeHook(stringType, policyType, test.token)
			if test.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
		})
	}

	t.Run("non-policy targets pass through", func(t *testing.T) {
		actual, err := policyDecodeHook(stringType, stringType, "strict")
		require.NoError(t, err)
		assert.Equal(t, "strict", actual)
	})
}

func TestParseLogLevelOption(t *testing.T) {
	tests := []struct {
		name      string
		verbosity uint
		level     string
		wantErr   bool
	}{
		{name: "verbosity wins", verbosity: 1, level: "error"},
		{name: "explicit level", level: "warn"},
		{name: "bad level", level: "shout", wantErr: true},
		{name: "defaults to info"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := &Application{Verbosity: test.verbosity}
			cfg.Log.Level = test.level

			err := cfg.parseLogLevelOption()
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
