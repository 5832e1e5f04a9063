package client

import (
	"context"
	"io"
	"os"

	"github.com/oshokin/inheritance-vault/internal/config"
	"github.com/oshokin/inheritance-vault/internal/logger"
	"github.com/oshokin/inheritance-vault/internal/service/common"
)

// Options configures how the CLI reaches the vault server.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// ServerAddress overrides server address from config when specified.
	ServerAddress string

	// Caller is the address the CLI acts as. Read-only actions do not need it.
	Caller string

	// Out receives the action output; os.Stdout when nil.
	Out io.Writer
}

// Action is one CLI operation against a connected client.
type Action func(ctx context.Context, client *common.Client, out io.Writer) error

// Run connects to the vault server and performs action.
func Run(ctx context.Context, opts *Options, action Action) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "inheritance-cli")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	if err = logger.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Identify current user and hostname for audit logging.
	actor, err := common.DetectActor()
	if err != nil {
		return err
	}

	client, err := common.Dial(
		ctx,
		serverAddress,
		common.WithCallTimeout(cfg.Timeout),
		common.WithIdentity(opts.Caller, actor),
	)
	if err != nil {
		return err
	}

	// Close connection on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Connected to vault server", "server_address", serverAddress, "caller", opts.Caller)

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	return action(ctx, client, out)
}
