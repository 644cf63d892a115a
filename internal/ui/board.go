package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/automation-integrationsoffert/shopboard/internal/dateutil"
	"github.com/automation-integrationsoffert/shopboard/internal/grid"
)

func (a *App) boardCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the week board",
		Long: `Print a non-interactive snapshot of the scheduling board.

Shows each mechanic's Monday-to-Friday columns for the workweek
containing the given date. Columns appear in the order mechanics were
first seen and keep that order for the lifetime of the store session.`,
		Example: `  shopboard board
  shopboard board --date=2025-02-05`,
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

			dates := grid.WeekDates(day)
			mechs := a.engine.Mechanics()
			if len(mechs) == 0 {
				fmt.Println("No bookings with assigned mechanics this week.")
				return nil
			}

			width := termWidth()
			for _, mech := range mechs {
				fmt.Println(formatHeader(mech.Name))
				for _, d := range dates {
					placements := a.engine.Placements(mech.Name, d)
					if len(placements) == 0 {
						continue
					}
					fmt.Printf("  %s %s\n", d.Format("Mon"), formatMuted(grid.FormatMonthDay(d)))
					for _, pl := range placements {
						b := pl.Booking
						line := fmt.Sprintf("    %s %s-%s %s",
							statusSymbol(b.Status),
							b.Start.Format("15:04"),
							b.End.Format("15:04"),
							b.Title,
						)
						if len(line) > width {
							line = line[:width]
						}
						fmt.Println(formatStatus(b.Status, line))
					}
				}
				fmt.Println(strings.Repeat("-", min(width, 40)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date inside the week to show (YYYY-MM-DD, defaults to today)")

	return cmd
}
