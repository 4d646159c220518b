package cmd

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/depsolve/vercompat/internal/log"
)

var checkOpts struct {
	policy    string
	ecosystem string
}

var checkCmd = &cobra.Command{
	Use:   "check CONSTRAINT VERSION",
	Short: "check whether a version satisfies a constraint",
	Long: `Check whether VERSION is compatible with CONSTRAINT under the selected
policy. Exits 0 when compatible and 1 when not, for use as a CI gate.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runCheckCmd(cmd, args))
	},
}

func init() {
	checkCmd.Flags().StringVarP(&checkOpts.policy, "policy", "p", "", "compatibility policy to apply (overrides the configured one)")
	checkCmd.Flags().StringVarP(&checkOpts.ecosystem, "ecosystem", "e", "", "resolve the policy from the configured ecosystem overrides")

	rootCmd.AddCommand(checkCmd)
}

func runCheckCmd(_ *cobra.Command, args []string) int {
	constraint, ver := args[0], args[1]

	policy, err := resolvePolicy(checkOpts.policy, checkOpts.ecosystem)
	if err != nil {
		log.Error(err)
		return 1
	}
	log.Debugf("checking constraint=%q version=%q policy=%q", constraint, ver, policy)

	if !policy.IsCompatible(constraint, ver) {
		fmt.Printf("%s  %s does not satisfy %s (policy: %s)\n", color.Red.Sprint("✗"), ver, constraint, policy)
		return 1
	}

	fmt.Printf("%s  %s satisfies %s (policy: %s)\n", color.Green.Sprint("✔"), ver, constraint, policy)
	return 0
}
