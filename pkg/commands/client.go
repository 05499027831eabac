package commands

import (
	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/cache"
	"tableflip.dev/shelf/pkg/config"
	"tableflip.dev/shelf/pkg/events"
	"tableflip.dev/shelf/pkg/reconcile"
)

// deps bundles the collaborators most commands need, built from config.
type deps struct {
	cfg         *config.Config
	client      api.Client
	cache       *cache.Cache
	broadcaster *events.Broadcaster
	reconciler  *reconcile.Reconciler
}

func load() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	client := api.NewHTTPClient(cfg.APIBase, nil)
	b := events.NewBroadcaster()
	return &deps{
		cfg:         cfg,
		client:      client,
		cache:       cache.New(cfg.CachePath),
		broadcaster: b,
		reconciler:  reconcile.New(client, b, nil),
	}, nil
}
