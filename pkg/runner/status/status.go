// Package status contains the printer status runner.
package status

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/events"
	"tableflip.dev/shelf/pkg/printer"
	"tableflip.dev/shelf/pkg/printers"
)

// Status polls the printer once, or continuously with Watch.
type Status struct {
	Client api.Client

	Watch    bool
	Interval time.Duration
}

func (s *Status) Do(ctx context.Context) error {
	if s.Client == nil {
		return errors.New("can not poll, no client")
	}

	pp := printers.PrettyPrint{}

	if !s.Watch {
		status, err := s.Client.PrinterStatus(ctx)
		if err != nil {
			return err
		}
		pp.PrinterStatus(status)
		return nil
	}

	b := events.NewBroadcaster()
	cancel := b.Subscribe(func(e events.Event) {
		if upd, ok := e.(events.PrinterStatusUpdated); ok {
			pp.PrinterStatus(upd.Status)
		}
	})
	defer cancel()

	p := &printer.Poller{Client: s.Client, Events: b, Interval: s.Interval}
	err := p.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
