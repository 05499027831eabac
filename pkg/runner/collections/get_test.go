package collections

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/cache"
	"tableflip.dev/shelf/pkg/collection"
)

type fakeClient struct {
	api.Client

	collections []collection.Collection
	listErr     error
}

func (f *fakeClient) ListCollections(context.Context) ([]collection.Collection, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.collections, nil
}

func TestGetRefreshesCache(t *testing.T) {
	client := &fakeClient{collections: []collection.Collection{{ID: "c1", Name: "Boats"}}}
	store := cache.New(t.TempDir())

	g := &Get{Client: client, Cache: store}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("get: %v", err)
	}

	if _, ok := store.Get("c1"); !ok {
		t.Fatalf("successful list should refresh the cache")
	}
}

func TestGetFallsBackToCache(t *testing.T) {
	dir := t.TempDir()
	seeded := cache.New(dir)
	_ = seeded.Set([]collection.Collection{{ID: "c1", Name: "Boats"}})

	client := &fakeClient{listErr: errors.New("offline")}
	g := &Get{Client: client, Cache: cache.New(dir)}
	if err := g.Do(context.Background()); err != nil {
		t.Fatalf("expected cached fallback, got %v", err)
	}
}

func TestGetUnknownParent(t *testing.T) {
	client := &fakeClient{collections: []collection.Collection{{ID: "c1", Name: "Boats"}}}
	g := &Get{Client: client, Parent: "ghost"}
	if err := g.Do(context.Background()); err == nil {
		t.Fatalf("unknown parent should error")
	}
}
