// Package ui contains the runner that launches the interactive TUI.
package ui

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/cache"
	"tableflip.dev/shelf/pkg/events"
	"tableflip.dev/shelf/pkg/printer"
	"tableflip.dev/shelf/pkg/reconcile"
	"tableflip.dev/shelf/pkg/tui/app"
)

// UI wires the full interactive session: the grid, the edit drawer, the
// background printer poller, and the store watcher.
type UI struct {
	Client      api.Client
	Reconciler  *reconcile.Reconciler
	Broadcaster *events.Broadcaster
	Cache       *cache.Cache

	PollInterval time.Duration
}

func (u *UI) Do(ctx context.Context) error {
	if u.Client == nil {
		return errors.New("can not open ui, no client")
	}
	if u.Broadcaster == nil {
		u.Broadcaster = events.NewBroadcaster()
	}
	if u.Reconciler == nil {
		u.Reconciler = reconcile.New(u.Client, u.Broadcaster, nil)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	poller := &printer.Poller{Client: u.Client, Events: u.Broadcaster, Interval: u.PollInterval}
	go func() { _ = poller.Run(ctx) }()

	if u.Cache != nil {
		go func() { _ = u.Cache.Watch(ctx, u.Broadcaster) }()
	}

	return app.Run(app.Deps{
		Client:      u.Client,
		Reconciler:  u.Reconciler,
		Broadcaster: u.Broadcaster,
		Cache:       u.Cache,
	})
}
