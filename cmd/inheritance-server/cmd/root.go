package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/inheritance-vault/internal/config"
	"github.com/oshokin/inheritance-vault/internal/service/server"
	"github.com/oshokin/inheritance-vault/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// ledgerFile path of the bbolt database holding plans and payouts.
	ledgerFile string

	// rootCmd represents the base command for running the gRPC server.
	rootCmd = &cobra.Command{
		Use:   "inheritance-server [listen-address]",
		Short: "Run the inheritance vault gRPC server.",
		Long: `Starts the gRPC server that custodies inheritance plans and pays out beneficiaries.

The server listens on the specified address or uses settings from configuration file.
Only the port from ServerAddress config is used for listening (e.g., :8080).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:8080).
Plans, the admin and every payout are persisted to a bbolt ledger and restored on start.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use listen address argument if provided, otherwise rely on config.
			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				LedgerFile:    ledgerFile,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the inheritance-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().
		StringVarP(&ledgerFile, "ledger-file", "l", "", "path to the ledger database (overrides config)")
}
