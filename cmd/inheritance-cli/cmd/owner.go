package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/inheritance-vault/internal/service/client"
)

var (
	// beneficiaries named when creating a plan.
	beneficiaries []string
	// timeout of a new plan.
	timeout time.Duration
	// deposit is the value of a create or add-funds call.
	deposit uint64

	initializeCmd = &cobra.Command{
		Use:   "initialize",
		Short: "Become the vault admin (once).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, client.Initialize())
		},
	}

	createCmd = &cobra.Command{
		Use:   "create",
		Short: "Open an inheritance plan owned by --as.",
		Long: `Opens a plan with the given deposit and timeout.

At most five beneficiaries are kept: zero addresses and duplicates are skipped
and anything after the fifth valid address is ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, client.CreatePlan(beneficiaries, timeout, deposit))
		},
	}

	addFundsCmd = &cobra.Command{
		Use:   "add-funds",
		Short: "Deposit more into the plan of --as.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, client.AddFunds(deposit))
		},
	}

	addBeneficiaryCmd = &cobra.Command{
		Use:   "add-beneficiary <address>",
		Short: "Add a beneficiary to the plan of --as.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, client.AddBeneficiary(args[0]))
		},
	}

	removeBeneficiaryCmd = &cobra.Command{
		Use:   "remove-beneficiary <address>",
		Short: "Remove a beneficiary from the plan of --as.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, client.RemoveBeneficiary(args[0]))
		},
	}

	resetTimerCmd = &cobra.Command{
		Use:   "reset-timer",
		Short: "Prove --as is alive and restart the countdown.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, client.ResetTimer())
		},
	}
)

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	createCmd.Flags().StringSliceVarP(&beneficiaries, "beneficiary", "b", nil, "beneficiary address (repeatable)")
	createCmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "inactivity timeout, e.g. 720h")
	createCmd.Flags().Uint64VarP(&deposit, "deposit", "d", 0, "initial deposit")

	addFundsCmd.Flags().Uint64VarP(&deposit, "amount", "a", 0, "value to add")

	for _, required := range []struct {
		cmd  *cobra.Command
		flag string
	}{
		{createCmd, "timeout"},
		{createCmd, "deposit"},
		{addFundsCmd, "amount"},
	} {
		if err := required.cmd.MarkFlagRequired(required.flag); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(
		initializeCmd,
		createCmd,
		addFundsCmd,
		addBeneficiaryCmd,
		removeBeneficiaryCmd,
		resetTimerCmd,
	)
}
