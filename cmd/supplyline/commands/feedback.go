package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"supplyline/internal/domain"
)

func feedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Rate deliveries; read ratings",
	}
	cmd.AddCommand(feedbackSendCmd(), feedbackListCmd())
	return cmd
}

func feedbackSendCmd() *cobra.Command {
	var form domain.FeedbackForm
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Rate a delivery from 1 to 5 (client)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := wire.Feedback.Submit(cmd.Context(), form)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Thanks! Feedback %s recorded\n", f.ID)
			return nil
		},
	}
	cmd.Flags().IntVar(&form.Rating, "rating", 0, "rating from 1 to 5")
	cmd.Flags().StringVar((*string)(&form.OrderID), "order", "", "order being rated")
	cmd.Flags().StringVar(&form.Comment, "comment", "", "free text")
	_ = cmd.MarkFlagRequired("rating")
	return cmd
}

func feedbackListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all feedback (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fb, err := wire.Feedback.List(cmd.Context())
			if err != nil {
				return err
			}
			return printFeedback(cmd.OutOrStdout(), fb)
		},
	}
}
