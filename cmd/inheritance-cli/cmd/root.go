package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/inheritance-vault/internal/config"
	"github.com/oshokin/inheritance-vault/internal/service/client"
	"github.com/oshokin/inheritance-vault/internal/version"
)

var (
	// cfgPath stores the configuration file path.
	cfgPath string
	// serverAddress overrides the server address from config.
	serverAddress string
	// caller is the address the CLI acts as.
	caller string

	// rootCmd represents the base command of the vault client.
	rootCmd = &cobra.Command{
		Use:   "inheritance-cli",
		Short: "Manage inheritance plans on a vault server.",
		Long: `Talks to the inheritance vault server.

Owners deposit funds, name up to five beneficiaries and keep resetting a timer.
Once the timer runs out anyone may lock the distribution, after which every
beneficiary redeems an equal share of half the balance and the admin withdraws
the protocol share.

Addresses are BSV P2PKH addresses or 0x-prefixed 20-byte hex strings.
Use --as to choose the address the command acts as.`,
		SilenceUsage: true,
	}
)

// errCallerRequired is returned when an owner-scoped command has neither an argument nor --as.
var errCallerRequired = errors.New("owner address required: pass it as an argument or use --as")

// Execute runs the inheritance-cli and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// run executes action against the configured server.
func run(cmd *cobra.Command, action client.Action) error {
	// Setup graceful shutdown handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	options := &client.Options{
		ConfigPath:    cfgPath,
		ServerAddress: serverAddress,
		Caller:        caller,
		Out:           cmd.OutOrStdout(),
	}

	return client.Run(ctx, options, action)
}

// ownerArg returns the first argument, or the --as address when none was given.
func ownerArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if caller == "" {
		return "", errCallerRequired
	}

	return caller, nil
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.StringVarP(&serverAddress, "server", "s", "", "server address (overrides config)")
	flags.StringVar(&caller, "as", "", "address to act as")
}
