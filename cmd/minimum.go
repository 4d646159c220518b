package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/depsolve/vercompat/internal/log"
)

var minimumOpts struct {
	policy    string
	ecosystem string
}

var minimumCmd = &cobra.Command{
	Use:   "minimum VERSION",
	Short: "show the lowest version still compatible with the given one",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runMinimumCmd(cmd, args))
	},
}

func init() {
	minimumCmd.Flags().StringVarP(&minimumOpts.policy, "policy", "p", "", "compatibility policy to apply (overrides the configured one)")
	minimumCmd.Flags().StringVarP(&minimumOpts.ecosystem, "ecosystem", "e", "", "resolve the policy from the configured ecosystem overrides")

	rootCmd.AddCommand(minimumCmd)
}

func runMinimumCmd(_ *cobra.Command, args []string) int {
	ver := args[0]

	policy, err := resolvePolicy(minimumOpts.policy, minimumOpts.ecosystem)
	if err != nil {
		log.Error(err)
		return 1
	}

	fmt.Println(policy.MinimumCompatibleVersion(ver))
	return 0
}
