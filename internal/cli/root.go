package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Skotchmaster/pitipaw_catalog/internal/config"
	"github.com/Skotchmaster/pitipaw_catalog/internal/repo"
)

type options struct {
	envFile string
	timeout time.Duration
}

// NewRootCommand builds catalogctl, the operator tool that works on the same
// store as the HTTP server.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "catalogctl",
		Short:        "Catalog operator tooling",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "operation timeout")

	cmd.AddCommand(
		newAdminCommand(opts),
		newSchemaCommand(opts),
	)
	return cmd
}

// withStore loads config, opens the store and runs fn under the timeout.
func withStore(cmd *cobra.Command, opts *options, fn func(ctx context.Context, store repo.Store) error) error {
	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file: %w", err)
		}
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	store, err := repo.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close(context.Background()) }()

	return fn(ctx, store)
}
