package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Skotchmaster/pitipaw_catalog/internal/events"
	"github.com/Skotchmaster/pitipaw_catalog/internal/repo"
	"github.com/Skotchmaster/pitipaw_catalog/internal/service"
	"github.com/Skotchmaster/pitipaw_catalog/internal/transport"
)

func newAdminCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
	}
	cmd.AddCommand(newAdminCreateCommand(opts), newAdminListCommand(opts))
	return cmd
}

func newAdminCreateCommand(opts *options) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(ctx context.Context, store repo.Store) error {
				if err := store.EnsureSchema(ctx); err != nil {
					return err
				}
				svc := &service.AdminService{Repo: store, Events: events.Nop{}}
				a, err := svc.CreateAdmin(ctx, transport.AdminRequest{Username: username, Password: password})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", a.Username, a.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "admin username")
	cmd.Flags().StringVar(&password, "password", "", "admin password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAdminListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List admin accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, opts, func(ctx context.Context, store repo.Store) error {
				svc := &service.AdminService{Repo: store}
				admins, err := svc.ListAdmins(ctx)
				if err != nil {
					return err
				}
				for _, a := range admins {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a.ID, a.Username)
				}
				return nil
			})
		},
	}
}
