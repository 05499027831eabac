// Package printer polls the connected printer's status through the
// persistence boundary and republishes it as events.
package printer

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/events"
)

// DefaultInterval is used when the poller is configured without one.
const DefaultInterval = 10 * time.Second

// Poller fetches printer status on a ticker and publishes each result.
// Transient fetch errors are logged and polling continues; the poller only
// stops when its context is cancelled.
type Poller struct {
	Client   api.Client
	Events   *events.Broadcaster
	Log      *log.Logger
	Interval time.Duration
}

// Run polls until ctx is done. The first poll happens immediately so callers
// get a status without waiting a full interval.
func (p *Poller) Run(ctx context.Context) error {
	if p.Client == nil {
		return errors.New("printer: no client")
	}
	logger := p.Log
	if logger == nil {
		logger = log.Default()
	}
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	p.poll(ctx, logger)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.poll(ctx, logger)
		}
	}
}

func (p *Poller) poll(ctx context.Context, logger *log.Logger) {
	status, err := p.Client.PrinterStatus(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		logger.Warn("printer status poll failed", "err", err)
		return
	}
	if p.Events != nil {
		p.Events.Publish(events.PrinterStatusUpdated{Status: status})
	}
}
