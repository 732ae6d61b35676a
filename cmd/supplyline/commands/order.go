package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"supplyline/internal/domain"
)

func orderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Place, list, cancel and advance delivery orders",
	}
	cmd.AddCommand(orderPlaceCmd(), orderListCmd(), orderCancelCmd(), orderStatusCmd())
	return cmd
}

// parseItems reads "<cargo-id>=<quantity>" pairs.
func parseItems(specs []string) ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(specs))
	for _, s := range specs {
		id, qty, ok := strings.Cut(s, "=")
		if !ok {
			qty = "1"
		}
		n, err := strconv.Atoi(qty)
		if err != nil {
			return nil, fmt.Errorf("invalid argument %q: quantity must be a number", s)
		}
		items = append(items, domain.OrderItem{CargoID: domain.CargoID(id), Quantity: n})
	}
	return items, nil
}

func orderPlaceCmd() *cobra.Command {
	var (
		order domain.NewOrder
		specs []string
	)
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place an order (client)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := parseItems(specs)
			if err != nil {
				return err
			}
			order.Items = items
			o, err := wire.Orders.Place(cmd.Context(), order)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Placed order %s (%s)\n", o.ID, o.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&order.Address, "address", "", "delivery address")
	cmd.Flags().StringVar(&order.Notes, "notes", "", "notes for the volunteer")
	cmd.Flags().StringArrayVar(&specs, "item", nil, "cargo to order as <cargo-id>=<quantity>; repeatable")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("item")
	return cmd
}

func orderListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your orders, or every order with --all (volunteer, admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				orders []domain.Order
				err    error
			)
			if all {
				orders, err = wire.Orders.ListAll(cmd.Context())
			} else {
				orders, err = wire.Orders.ListMine(cmd.Context())
			}
			if err != nil {
				return err
			}
			return printOrders(cmd.OutOrStdout(), orders)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list every order")
	return cmd
}

func orderCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel a pending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := wire.Orders.Cancel(cmd.Context(), domain.OrderID(args[0]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Order %s is %s\n", o.ID, o.Status)
			return nil
		},
	}
}

func orderStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "status <order-id> <accepted|delivering|delivered>",
		Short:     "Move an order forward (volunteer, admin)",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(domain.OrderAccepted), string(domain.OrderDelivering), string(domain.OrderDelivered)},
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := wire.Orders.UpdateStatus(cmd.Context(), domain.OrderID(args[0]), domain.OrderStatus(args[1]))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Order %s is %s\n", o.ID, o.Status)
			return nil
		},
	}
}
