package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"supplyline/internal/domain"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts (admin)",
	}
	cmd.AddCommand(userListCmd(), userRoleCmd(), userRemoveCmd())
	return cmd
}

func userListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := wire.Users.List(cmd.Context())
			if err != nil {
				return err
			}
			return printUsers(cmd.OutOrStdout(), users)
		},
	}
}

func userRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "role <user-id> <client|volunteer|admin>",
		Short:     "Change an account's role",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(domain.RoleClient), string(domain.RoleVolunteer), string(domain.RoleAdmin)},
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := wire.Users.SetRole(cmd.Context(), domain.UserID(args[0]), domain.Role(args[1]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", u.Username, u.Role)
			return nil
		},
	}
}

func userRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <user-id>",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Users.Delete(cmd.Context(), domain.UserID(args[0])); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Removed")
			return nil
		},
	}
}
