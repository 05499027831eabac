package app

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/collection"
	"tableflip.dev/shelf/pkg/events"
)

type fakeClient struct {
	api.Client

	all     []collection.Collection
	listErr error
	lists   int
}

func (f *fakeClient) ListCollections(ctx context.Context) ([]collection.Collection, error) {
	f.lists++
	return f.all, f.listErr
}

func TestLoadPopulatesGrid(t *testing.T) {
	client := &fakeClient{all: []collection.Collection{{ID: "c1", Name: "Prints"}}}
	m := New(Deps{Client: client, Broadcaster: events.NewBroadcaster()})
	defer m.Close()

	msg := m.loadCmd()()
	loaded, ok := msg.(collectionsLoadedMsg)
	if !ok {
		t.Fatalf("expected collectionsLoadedMsg, got %T", msg)
	}
	m.Update(loaded)

	if len(m.all) != 1 || m.all[0].ID != "c1" {
		t.Fatalf("collections not loaded: %+v", m.all)
	}
}

func TestLoadFailureSetsNotice(t *testing.T) {
	client := &fakeClient{listErr: errors.New("boom")}
	m := New(Deps{Client: client})
	defer m.Close()

	msg := m.loadCmd()()
	m.Update(msg)
	if m.notice == "" {
		t.Fatalf("expected a notice after a failed load")
	}
}

func TestChangeEventTriggersReload(t *testing.T) {
	client := &fakeClient{}
	m := New(Deps{Client: client, Broadcaster: events.NewBroadcaster()})
	defer m.Close()

	_, cmd := m.Update(broadcastMsg{event: events.CollectionChanged{Action: events.ChangeUpdate}})
	if cmd == nil {
		t.Fatalf("a change event must schedule a refresh")
	}
}

func TestPrinterEventUpdatesStatusLine(t *testing.T) {
	m := New(Deps{Client: &fakeClient{}})
	defer m.Close()

	m.Update(broadcastMsg{event: events.PrinterStatusUpdated{
		Status: api.PrinterStatus{State: "printing", Progress: 42},
	}})
	if m.printer.State != "printing" {
		t.Fatalf("printer status not applied: %+v", m.printer)
	}
}

func TestBroadcastReachesEventChannel(t *testing.T) {
	b := events.NewBroadcaster()
	m := New(Deps{Client: &fakeClient{}, Broadcaster: b})
	defer m.Close()

	b.Publish(events.CollectionsInvalidated{})
	msg := m.waitEventCmd()()
	bm, ok := msg.(broadcastMsg)
	if !ok {
		t.Fatalf("expected broadcastMsg, got %T", msg)
	}
	if _, ok := bm.event.(events.CollectionsInvalidated); !ok {
		t.Fatalf("wrong event: %#v", bm.event)
	}
}
