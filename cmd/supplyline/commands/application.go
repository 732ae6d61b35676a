package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"supplyline/internal/domain"
)

func applicationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "application",
		Aliases: []string{"app"},
		Short:   "Apply to volunteer; review applications",
	}
	cmd.AddCommand(applicationSubmitCmd(), applicationListCmd(), applicationReviewCmd(true), applicationReviewCmd(false))
	return cmd
}

func applicationSubmitCmd() *cobra.Command {
	var form domain.ApplicationForm
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Apply to become a volunteer (client)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := wire.Applications.Submit(cmd.Context(), form)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Application %s is %s\n", a.ID, a.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&form.Motivation, "motivation", "", "why you want to volunteer")
	cmd.Flags().StringVar(&form.Availability, "availability", "", "when you are available")
	_ = cmd.MarkFlagRequired("motivation")
	return cmd
}

func applicationListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your applications, or every application with --all (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				apps []domain.Application
				err  error
			)
			if all {
				apps, err = wire.Applications.List(cmd.Context())
			} else {
				apps, err = wire.Applications.ListMine(cmd.Context())
			}
			if err != nil {
				return err
			}
			return printApplications(cmd.OutOrStdout(), apps)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every application")
	return cmd
}

func applicationReviewCmd(approve bool) *cobra.Command {
	var note string
	use, short := "reject", "Reject an application (admin)"
	if approve {
		use, short = "approve", "Approve an application; the applicant becomes a volunteer (admin)"
	}
	cmd := &cobra.Command{
		Use:   use + " <application-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ApplicationID(args[0])
			review := wire.Applications.Reject
			if approve {
				review = wire.Applications.Approve
			}
			a, err := review(cmd.Context(), id, note)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Application %s from %s is %s\n", a.ID, a.Username, a.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&note, "note", "", "note for the applicant")
	return cmd
}
