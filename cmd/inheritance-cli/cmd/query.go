package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/inheritance-vault/internal/service/client"
)

// ownerQuery builds a read-only command scoped to one owner, defaulting to --as.
func ownerQuery(use, short string, action func(owner string) client.Action) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [owner]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := ownerArg(args)
			if err != nil {
				return err
			}

			return run(cmd, action(owner))
		},
	}
}

var (
	beneficiaryCmd = &cobra.Command{
		Use:   "beneficiary <owner> <beneficiary>",
		Short: "Show how an address stands in a plan.",
		Args:  cobra.ExactArgs(2), //nolint:mnd // Owner and beneficiary.
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, client.BeneficiaryDetails(args[0], args[1]))
		},
	}

	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Show registry totals.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, client.Stats())
		},
	}

	payoutsCmd = &cobra.Command{
		Use:   "payouts [recipient]",
		Short: "List recorded payouts, optionally for one recipient.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var recipient string
			if len(args) > 0 {
				recipient = args[0]
			}

			return run(cmd, client.Payouts(recipient))
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.AddCommand(
		ownerQuery("plan", "Show the details of a live plan.", client.PlanDetails),
		ownerQuery("status", "Show whether a plan is live and expired.", client.PlanStatus),
		ownerQuery("beneficiaries", "List the beneficiaries of a plan.", client.Beneficiaries),
		ownerQuery("protocol-share", "Show the protocol share of a plan (admin).", client.ProtocolShare),
		beneficiaryCmd,
		statsCmd,
		payoutsCmd,
	)
}
