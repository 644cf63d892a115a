package dateutil

import (
	"errors"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		got, err := ParseDate("2025-02-03")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("empty defaults to today", func(t *testing.T) {
		got, err := ParseDate("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !SameDay(got, time.Now()) {
			t.Errorf("expected today, got %v", got)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := ParseDate("03/02/2025")
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("expected ErrInvalidDateFormat, got %v", err)
		}
	})
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 2, 3, 9, 30, 0, 0, time.UTC)
	b := time.Date(2025, 2, 3, 18, 0, 0, 0, time.UTC)
	c := time.Date(2025, 2, 4, 0, 0, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Error("expected same day for different times on one date")
	}
	if SameDay(a, c) {
		t.Error("expected different days")
	}
}

func TestStartOfWorkweek(t *testing.T) {
	monday := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   time.Time
	}{
		{"monday", time.Date(2025, 1, 13, 8, 0, 0, 0, time.UTC)},
		{"wednesday", time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)},
		{"saturday", time.Date(2025, 1, 18, 0, 0, 0, 0, time.UTC)},
		{"sunday goes back six days", time.Date(2025, 1, 19, 23, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfWorkweek(tt.in)
			if !got.Equal(monday) {
				t.Errorf("expected %v, got %v", monday, got)
			}
		})
	}
}
