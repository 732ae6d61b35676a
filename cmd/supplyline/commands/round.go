package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"supplyline/internal/domain"
)

func roundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Volunteer rounds and their lottery",
	}
	cmd.AddCommand(
		roundListCmd(),
		roundCreateCmd(),
		roundActionCmd("signup", "Sign up for a round (volunteer)", func(cmd *cobra.Command, id domain.RoundID) (domain.Round, error) {
			return wire.Rounds.SignUp(cmd.Context(), id)
		}),
		roundActionCmd("withdraw", "Withdraw from a round (volunteer)", func(cmd *cobra.Command, id domain.RoundID) (domain.Round, error) {
			return wire.Rounds.Withdraw(cmd.Context(), id)
		}),
		roundActionCmd("draw", "Run the lottery for a round (admin)", func(cmd *cobra.Command, id domain.RoundID) (domain.Round, error) {
			return wire.Rounds.Draw(cmd.Context(), id)
		}),
		roundRemoveCmd(),
	)
	return cmd
}

func roundListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rounds, err := wire.Rounds.List(cmd.Context())
			if err != nil {
				return err
			}
			return printRounds(cmd.OutOrStdout(), rounds)
		},
	}
}

func roundCreateCmd() *cobra.Command {
	var (
		round  domain.NewRound
		starts string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Schedule a round (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if starts != "" {
				t, err := time.ParseInLocation("2006-01-02 15:04", starts, time.Local)
				if err != nil {
					return fmt.Errorf("invalid argument --starts %q: use YYYY-MM-DD HH:MM", starts)
				}
				round.StartsAt = t
			}
			r, err := wire.Rounds.Create(cmd.Context(), round)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created round %s\n", r.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&round.Title, "title", "", "round title")
	cmd.Flags().StringVar(&round.Location, "location", "", "where the round starts")
	cmd.Flags().StringVar(&starts, "starts", "", "start time, YYYY-MM-DD HH:MM local")
	cmd.Flags().IntVar(&round.Capacity, "capacity", 0, "volunteers to select")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("capacity")
	return cmd
}

func roundActionCmd(
	use, short string,
	run func(cmd *cobra.Command, id domain.RoundID) (domain.Round, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <round-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := run(cmd, domain.RoundID(args[0]))
			if err != nil {
				return err
			}
			return printRounds(cmd.OutOrStdout(), []domain.Round{r})
		},
	}
}

func roundRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <round-id>",
		Short: "Delete a round (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Rounds.Delete(cmd.Context(), domain.RoundID(args[0])); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Removed")
			return nil
		},
	}
}
