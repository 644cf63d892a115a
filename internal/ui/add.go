package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/automation-integrationsoffert/shopboard/internal/booking"
	"github.com/automation-integrationsoffert/shopboard/internal/dateutil"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date      string
		start     string
		end       string
		mechanic  string
		orderText string
		status    string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new booking",
		Long: `Add a new booking to the store.

A mechanic given by name is linked to the existing mechanic record, or
a new record is created if none matches.`,
		Example: `  shopboard add "Brake pads" --date=2025-02-05 --start=09:00 --end=10:30 --mechanic="Alice" --order=ORD-1042`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			day, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}
			startAt, err := atTime(day, start)
			if err != nil {
				return fmt.Errorf("parsing start time: %w", err)
			}
			endAt, err := atTime(day, end)
			if err != nil {
				return fmt.Errorf("parsing end time: %w", err)
			}
			st, err := booking.ParseStatus(status)
			if err != nil {
				return err
			}

			b, err := booking.New(args[0], startAt, endAt, st)
			if err != nil {
				return err
			}
			if mechanic != "" {
				b.Mechanic = &booking.RecordRef{Name: mechanic}
			}
			b.OrderText = orderText

			if err := a.ensureEngine(); err != nil {
				return err
			}
			if err := a.store.CreateBooking(context.Background(), b); err != nil {
				return fmt.Errorf("creating booking: %w", err)
			}

			fmt.Printf("Created booking %s: %s %s %s-%s\n",
				b.ID,
				b.Title,
				b.Start.Format("2006-01-02"),
				b.Start.Format("15:04"),
				b.End.Format("15:04"),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")
	cmd.Flags().StringVar(&mechanic, "mechanic", "", "Mechanic name")
	cmd.Flags().StringVar(&orderText, "order", "", "Order number (plain text)")
	cmd.Flags().StringVar(&status, "status", "", "Status: requested, scheduled, in_progress, ready, completed, none")

	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

// atTime combines a day with an HH:MM wall-clock time.
func atTime(day time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
