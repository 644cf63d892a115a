package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders [number]",
		Short: "List orders, or the bookings for one order",
		Long: `Without arguments, list all order records.

With an order number, list the bookings that belong to it: bookings
linked to the order record, bookings whose order reference carries the
same number, and bookings whose plain-text order column matches.`,
		Example: `  shopboard orders
  shopboard orders ORD-1042`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureEngine(); err != nil {
				return err
			}
			ctx := context.Background()
			if err := a.engine.Refresh(ctx); err != nil {
				return err
			}

			if len(args) == 0 {
				orders := a.engine.Orders()
				if len(orders) == 0 {
					fmt.Println("No orders in store.")
					return nil
				}
				for _, o := range orders {
					fmt.Printf("  %s  %s\n", o.Number, formatMuted("("+o.ID+")"))
				}
				return nil
			}

			number := args[0]
			matched := a.engine.MatchedBookings(ctx, number)
			if len(matched) == 0 {
				fmt.Printf("No bookings for order %s.\n", number)
				return nil
			}

			fmt.Println(formatHeader(fmt.Sprintf("Order %s: %d bookings", number, len(matched))))
			for _, b := range matched {
				printBookingLine(b)
			}
			return nil
		},
	}

	return cmd
}
