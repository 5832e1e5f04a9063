package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/inheritance-vault/internal/service/client"
)

var (
	lockShareCmd = &cobra.Command{
		Use:   "lock-share <owner>",
		Short: "Freeze the distribution of an expired plan.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, client.LockShare(args[0]))
		},
	}

	redeemCmd = &cobra.Command{
		Use:   "redeem <owner>",
		Short: "Claim the share of --as from an expired plan.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, client.Redeem(args[0]))
		},
	}

	withdrawAllCmd = &cobra.Command{
		Use:   "withdraw-all",
		Short: "Withdraw the whole balance of the plan of --as and close it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, client.WithdrawAll())
		},
	}

	withdrawProtocolShareCmd = &cobra.Command{
		Use:   "withdraw-protocol-share <owner>",
		Short: "Withdraw the protocol share of a locked plan (admin).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, client.WithdrawProtocolShare(args[0]))
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(
		lockShareCmd,
		redeemCmd,
		withdrawAllCmd,
		withdrawProtocolShareCmd,
	)
}
