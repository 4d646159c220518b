package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/depsolve/vercompat/internal"
	"github.com/depsolve/vercompat/internal/config"
	"github.com/depsolve/vercompat/vercompat/compat"
)

var cliOpts = config.CliOnlyOptions{}

var rootCmd = &cobra.Command{
	Use:   internal.ApplicationName,
	Short: "decide version compatibility under a configurable policy",
	Long: fmt.Sprintf(`Decides whether concrete versions satisfy declared version constraints
under a named compatibility policy (options=%v), for use during
dependency conflict reconciliation.`, compat.PolicyTokens()),
}

func init() {
	setCliOptions()
}

func setCliOptions() {
	rootCmd.PersistentFlags().StringVarP(&cliOpts.ConfigPath, "config", "c", "", "application config file")
	rootCmd.PersistentFlags().CountVarP(&cliOpts.Verbosity, "verbose", "v", "increase verbosity (-v = debug)")

	flag := "quiet"
	rootCmd.PersistentFlags().BoolP(
		flag, "q", false,
		"suppress all logging output",
	)
	if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	flag = "verbosity"
	if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}
}

// resolvePolicy picks the policy for a command invocation: an explicit
// --policy flag wins, otherwise the configured ecosystem override (if
// --ecosystem was given), otherwise the configured default.
func resolvePolicy(policyFlag, ecosystemFlag string) (compat.Policy, error) {
	if policyFlag != "" {
		p := compat.ParsePolicy(policyFlag)
		if p == compat.UnknownPolicy {
			return p, fmt.Errorf("unknown policy %q (known: %v)", policyFlag, compat.PolicyTokens())
		}
		return p, nil
	}
	if ecosystemFlag != "" {
		return appConfig.Reconcile.PolicyFor(ecosystemFlag), nil
	}
	return appConfig.Reconcile.DefaultPolicy, nil
}
