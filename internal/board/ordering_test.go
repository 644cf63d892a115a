package board

import (
	"slices"
	"testing"
)

func TestStableOrderFreezesFirstSeen(t *testing.T) {
	o := NewStableOrder()
	o.Update([]string{"Alice", "Bob", "Carol"})

	got := o.Names()
	want := []string{"Alice", "Bob", "Carol"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// A refresh that reshuffles the snapshot must not reorder columns.
	o.Update([]string{"Carol", "Alice", "Bob"})
	if !slices.Equal(o.Names(), want) {
		t.Errorf("order changed after reshuffled update: %v", o.Names())
	}
}

func TestStableOrderAppendsNewNames(t *testing.T) {
	o := NewStableOrder()
	o.Update([]string{"Alice", "Bob"})
	o.Update([]string{"Dave", "Alice"})

	want := []string{"Alice", "Bob", "Dave"}
	if !slices.Equal(o.Names(), want) {
		t.Errorf("expected %v, got %v", want, o.Names())
	}
}

func TestStableOrderIndexStableAcrossUpdates(t *testing.T) {
	o := NewStableOrder()
	o.Update([]string{"Alice", "Bob", "Carol"})

	before := o.Names()
	o.Update([]string{"Bob", "Eve", "Carol", "Alice"})
	after := o.Names()

	for i, name := range before {
		if after[i] != name {
			t.Errorf("index %d changed from %q to %q", i, name, after[i])
		}
	}
}

func TestStableOrderSkipsEmptyAndDuplicate(t *testing.T) {
	o := NewStableOrder()
	o.Update([]string{"", "Alice", "Alice", ""})

	if o.Len() != 1 {
		t.Errorf("expected 1 name, got %d: %v", o.Len(), o.Names())
	}
}

func TestStableOrderNamesIsCopy(t *testing.T) {
	o := NewStableOrder()
	o.Update([]string{"Alice", "Bob"})

	names := o.Names()
	names[0] = "Mallory"
	if o.Names()[0] != "Alice" {
		t.Error("mutating the returned slice leaked into internal state")
	}
}
