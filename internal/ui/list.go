package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automation-integrationsoffert/shopboard/internal/booking"
	"github.com/automation-integrationsoffert/shopboard/internal/dateutil"
	"github.com/automation-integrationsoffert/shopboard/internal/grid"
)

func (a *App) listCmd() *cobra.Command {
	var (
		date string
		week bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookings",
		Long: `List bookings for a single day or a whole workweek.

If no date is specified, lists today's bookings. With --week, lists the
Monday-to-Friday workweek containing the date.`,
		Example: `  shopboard list
  shopboard list --date=2025-02-05
  shopboard list --date=2025-02-05 --week`,
		RunE: func(_ *cobra.Command, _ []string) error {
			day, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}

			if err := a.ensureEngine(); err != nil {
				return err
			}
			if err := a.engine.Refresh(context.Background()); err != nil {
				return err
			}

			days := []string{day.Format("2006-01-02")}
			if week {
				days = days[:0]
				for _, d := range grid.WeekDates(day) {
					days = append(days, d.Format("2006-01-02"))
				}
			}

			printed := 0
			for _, dayKey := range days {
				var header bool
				for _, b := range a.engine.Bookings() {
					if b.Start.Format("2006-01-02") != dayKey {
						continue
					}
					if !header {
						if printed > 0 {
							fmt.Println()
						}
						fmt.Printf("=== %s ===\n", dayKey)
						header = true
					}
					printBookingLine(b)
					printed++
				}
			}

			if printed == 0 {
				fmt.Println("No bookings found.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().BoolVar(&week, "week", false, "List the whole workweek containing the date")

	return cmd
}

func printBookingLine(b *booking.Booking) {
	line := formatStatus(b.Status, fmt.Sprintf("  %s %s-%s %s",
		statusSymbol(b.Status),
		b.Start.Format("15:04"),
		b.End.Format("15:04"),
		b.Title,
	))
	if name := b.MechanicName(); name != "" {
		line += "  " + formatMuted(name)
	}
	if n := b.OrderNumber(); n != "" {
		line += "  " + formatMuted("#"+n)
	}
	fmt.Println(line + "  " + formatMuted("("+b.ID+")"))
}
