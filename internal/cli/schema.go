package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Skotchmaster/pitipaw_catalog/internal/repo"
)

func newSchemaCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Store schema tooling",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "ensure",
		Short: "Create collections or tables and the unique username index",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(ctx context.Context, store repo.Store) error {
				if err := store.EnsureSchema(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "schema ensured")
				return nil
			})
		},
	})
	return cmd
}
