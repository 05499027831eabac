// Package spools contains runners for filament inventory commands.
package spools

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/printers"
	"tableflip.dev/shelf/pkg/spool"
)

// List prints the Spoolman inventory.
type List struct {
	Client api.Client
}

func (l *List) Do(ctx context.Context) error {
	if l.Client == nil {
		return errors.New("can not list spools, no client")
	}
	all, err := l.Client.ListSpools(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Spools")
	pp.Spools(all...)
	return nil
}

// Cost estimates the filament cost of a print.
type Cost struct {
	Client api.Client

	Grams    float64
	Material string
	Currency string
}

func (c *Cost) Do(ctx context.Context) error {
	if c.Client == nil {
		return errors.New("can not estimate, no client")
	}

	all, err := c.Client.ListSpools(ctx)
	if err != nil {
		return err
	}

	est, ok := spool.Cheapest(all, c.Material, c.Grams)
	if !ok {
		return fmt.Errorf("no spool matches material %q", c.Material)
	}

	fmt.Printf("%.0fg of %s from %q: %s (%s/kg)\n",
		est.Grams, est.Spool.Material, est.Spool.Name,
		spool.FormatCost(est.Cost, c.Currency),
		spool.FormatCost(est.PricePerKg, c.Currency))
	if est.Short {
		fmt.Printf("warning: only %.0fg remaining on that spool\n", est.Spool.RemainingWeight)
	}
	return nil
}
