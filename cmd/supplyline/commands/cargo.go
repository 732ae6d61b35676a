package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"supplyline/internal/domain"
)

func cargoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cargo",
		Short: "Inspect and manage the inventory",
	}
	cmd.AddCommand(cargoListCmd(), cargoAddCmd(), cargoUpdateCmd(), cargoRemoveCmd())
	return cmd
}

func cargoFlags(cmd *cobra.Command, item *domain.CargoItem) {
	cmd.Flags().StringVar(&item.Name, "name", "", "item name")
	cmd.Flags().StringVar(&item.Category, "category", "", "category, e.g. medication")
	cmd.Flags().IntVar(&item.Quantity, "quantity", 0, "units in stock")
	cmd.Flags().StringVar(&item.Unit, "unit", "", "unit, e.g. box")
	cmd.Flags().StringVar(&item.Description, "description", "", "free text")
}

func cargoListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := wire.Cargo.List(cmd.Context())
			if err != nil {
				return err
			}
			return printCargo(cmd.OutOrStdout(), items)
		},
	}
}

func cargoAddCmd() *cobra.Command {
	var item domain.CargoItem
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an inventory line (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := wire.Cargo.Create(cmd.Context(), item)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s as %s\n", c.Name, c.ID)
			return nil
		},
	}
	cargoFlags(cmd, &item)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func cargoUpdateCmd() *cobra.Command {
	var item domain.CargoItem
	cmd := &cobra.Command{
		Use:   "update <cargo-id>",
		Short: "Update an inventory line (admin)",
		Long:  "Update an inventory line. Flags that are not given keep their current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.CargoID(args[0])
			items, err := wire.Cargo.List(cmd.Context())
			if err != nil {
				return err
			}
			var cur *domain.CargoItem
			for i := range items {
				if items[i].ID == id {
					cur = &items[i]
				}
			}
			if cur == nil {
				return fmt.Errorf("no cargo item %s", id)
			}
			f := cmd.Flags()
			if f.Changed("name") {
				cur.Name = item.Name
			}
			if f.Changed("category") {
				cur.Category = item.Category
			}
			if f.Changed("quantity") {
				cur.Quantity = item.Quantity
			}
			if f.Changed("unit") {
				cur.Unit = item.Unit
			}
			if f.Changed("description") {
				cur.Description = item.Description
			}
			c, err := wire.Cargo.Update(cmd.Context(), *cur)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %d %s in stock\n", c.Name, c.Quantity, c.Unit)
			return nil
		},
	}
	cargoFlags(cmd, &item)
	return cmd
}

func cargoRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <cargo-id>",
		Short: "Remove an inventory line (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Cargo.Delete(cmd.Context(), domain.CargoID(args[0])); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Removed")
			return nil
		},
	}
}
