package grid

import (
	"testing"
	"time"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 2, 4, hour, minute, 0, 0, time.UTC)
}

func TestOffset(t *testing.T) {
	g := Default()

	tests := []struct {
		name string
		in   time.Time
		want float64
		ok   bool
	}{
		{"range start", at(5, 0), 0, true},
		{"on the hour", at(9, 0), 200, true},
		{"sub-hour offset", at(9, 30), 225, true},
		{"quarter past", at(5, 15), 12.5, true},
		{"last visible hour", at(19, 59), 749.1666666666666, true},
		{"before range", at(4, 59), 0, false},
		{"after range", at(20, 0), 0, false},
		{"midnight", at(0, 0), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.Offset(tt.in)
			if ok != tt.ok {
				t.Fatalf("Offset(%v) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if !ok {
				return
			}
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Offset(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOffsetNeverNegative(t *testing.T) {
	g := Default()
	for hour := 0; hour < 24; hour++ {
		px, ok := g.Offset(at(hour, 45))
		if !ok {
			continue
		}
		if px < 0 || px >= float64(g.NumRows*g.RowHeight) {
			t.Errorf("hour %d: offset %v outside grid rows", hour, px)
		}
	}
}

func TestHeight(t *testing.T) {
	g := Default()
	got := g.Height(at(9, 0), at(10, 30))
	if got != 75 {
		t.Errorf("expected 75px for 1.5h, got %v", got)
	}
}

func TestSlotStart(t *testing.T) {
	g := Default()
	day := time.Date(2025, 2, 5, 13, 45, 0, 0, time.UTC) // time of day must be ignored
	got := g.SlotStart(day, 3)
	want := time.Date(2025, 2, 5, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("SlotStart = %v, want %v", got, want)
	}
}

func TestHourLabels(t *testing.T) {
	labels := Default().HourLabels()
	if len(labels) != 15 {
		t.Fatalf("expected 15 labels, got %d", len(labels))
	}
	if labels[0] != "05:00" || labels[14] != "19:00" {
		t.Errorf("unexpected label bounds: %q .. %q", labels[0], labels[14])
	}
}

func TestWeekDates(t *testing.T) {
	monday := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		anchor time.Time
	}{
		{"monday anchor", monday},
		{"midweek anchor", time.Date(2025, 2, 5, 16, 20, 0, 0, time.UTC)},
		{"sunday anchor", time.Date(2025, 2, 9, 1, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := WeekDates(tt.anchor)
			if len(dates) != 5 {
				t.Fatalf("expected 5 dates, got %d", len(dates))
			}
			for i, d := range dates {
				want := monday.AddDate(0, 0, i)
				if !d.Equal(want) {
					t.Errorf("dates[%d] = %v, want %v", i, d, want)
				}
			}
		})
	}
}

func TestFormatMonthDay(t *testing.T) {
	got := FormatMonthDay(time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC))
	if got != "2-4" {
		t.Errorf("expected 2-4, got %q", got)
	}
}
