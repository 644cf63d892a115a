package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/automation-integrationsoffert/shopboard/internal/board"
	"github.com/automation-integrationsoffert/shopboard/internal/dateutil"
	"github.com/automation-integrationsoffert/shopboard/internal/grid"
)

func (a *App) moveCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "move [booking-id] [cell-id]",
		Short: "Move a booking to a board cell",
		Long: `Move a booking to another cell of the week board.

The cell id has the form cell-<mechanic>-<month>-<day>-<slot>, where
slot 0 is the first visible hour row. The booking keeps its duration;
moving it to a different mechanic reassigns it. The target day must lie
in the workweek containing --date.`,
		Example: `  shopboard move 4f1c... cell-Alice-2-5-3
  shopboard move 4f1c... "cell-Bob-2-6-0" --date=2025-02-05`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			day, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}
			target, err := board.ParseCellID(args[1])
			if err != nil {
				return err
			}

			if err := a.ensureEngine(); err != nil {
				return err
			}
			ctx := context.Background()
			if err := a.engine.Refresh(ctx); err != nil {
				return err
			}

			intent := board.DragIntent{BookingID: args[0], Target: target}
			re, err := a.engine.Move(ctx, intent, grid.WeekDates(day))
			if err != nil {
				return err
			}

			fmt.Printf("Moved to %s %s-%s",
				re.NewStart.Format("2006-01-02"),
				re.NewStart.Format("15:04"),
				re.NewEnd.Format("15:04"),
			)
			if re.Mechanic != nil {
				fmt.Printf(" (%s)", re.Mechanic.Name)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Any date inside the displayed week (YYYY-MM-DD, defaults to today)")

	return cmd
}
