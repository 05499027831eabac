package spool

import (
	"math"
	"testing"

	"tableflip.dev/shelf/pkg/api"
)

func TestForSpool(t *testing.T) {
	s := api.Spool{Name: "Galaxy Black", Material: "PLA", Price: 25, InitialWeight: 1000, RemainingWeight: 500}

	est, err := ForSpool(s, 100)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if math.Abs(est.Cost-2.5) > 1e-9 {
		t.Fatalf("expected 2.50, got %v", est.Cost)
	}
	if est.Short {
		t.Fatalf("500g remaining covers a 100g print")
	}

	est, err = ForSpool(s, 600)
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if !est.Short {
		t.Fatalf("600g print should flag a 500g spool as short")
	}
}

func TestForSpoolRejectsBadInput(t *testing.T) {
	if _, err := ForSpool(api.Spool{Price: 25, InitialWeight: 1000}, 0); err == nil {
		t.Fatalf("zero weight accepted")
	}
	if _, err := ForSpool(api.Spool{Name: "freebie"}, 100); err == nil {
		t.Fatalf("spool without pricing accepted")
	}
}

func TestCheapestPrefersSufficientSpools(t *testing.T) {
	spools := []api.Spool{
		{Name: "cheap but empty", Material: "PLA", Price: 10, InitialWeight: 1000, RemainingWeight: 10},
		{Name: "pricier but full", Material: "PLA", Price: 30, InitialWeight: 1000, RemainingWeight: 900},
		{Name: "petg", Material: "PETG", Price: 5, InitialWeight: 1000, RemainingWeight: 900},
		{Name: "archived", Material: "PLA", Price: 1, InitialWeight: 1000, RemainingWeight: 900, Archived: true},
	}

	est, ok := Cheapest(spools, "pla", 100)
	if !ok {
		t.Fatalf("expected a pick")
	}
	if est.Spool.Name != "pricier but full" {
		t.Fatalf("expected the sufficient spool, got %q", est.Spool.Name)
	}
}

func TestCheapestFallsBackToShort(t *testing.T) {
	spools := []api.Spool{
		{Name: "a", Material: "PLA", Price: 20, InitialWeight: 1000, RemainingWeight: 10},
		{Name: "b", Material: "PLA", Price: 10, InitialWeight: 1000, RemainingWeight: 10},
	}
	est, ok := Cheapest(spools, "PLA", 100)
	if !ok || !est.Short {
		t.Fatalf("expected a short fallback pick")
	}
	if est.Spool.Name != "b" {
		t.Fatalf("expected the cheaper short spool, got %q", est.Spool.Name)
	}
}

func TestCheapestNoMatch(t *testing.T) {
	if _, ok := Cheapest(nil, "PLA", 100); ok {
		t.Fatalf("empty inventory should not pick")
	}
}

func TestFormatCost(t *testing.T) {
	if got := FormatCost(2.5, "€"); got != "€2.50" {
		t.Fatalf("got %q", got)
	}
	if got := FormatCost(2.5, ""); got != "$2.50" {
		t.Fatalf("got %q", got)
	}
}
