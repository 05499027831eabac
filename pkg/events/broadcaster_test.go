package events

import (
	"testing"

	"tableflip.dev/shelf/pkg/collection"
)

func TestSubscribePublishCancel(t *testing.T) {
	b := NewBroadcaster()

	var got []Event
	cancel := b.Subscribe(func(e Event) { got = append(got, e) })

	b.Publish(CollectionChanged{Action: ChangeCreate, Collection: collection.Collection{ID: "c1", Name: "Boats"}})
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].Describe() == "" {
		t.Fatalf("event should describe itself")
	}

	cancel()
	cancel() // idempotent
	b.Publish(CollectionsInvalidated{})
	if len(got) != 1 {
		t.Fatalf("cancelled subscriber still received events")
	}
}

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := NewBroadcaster()
	count := 0
	for i := 0; i < 3; i++ {
		b.Subscribe(func(Event) { count++ })
	}
	b.Publish(CollectionsInvalidated{})
	if count != 3 {
		t.Fatalf("expected 3 deliveries, got %d", count)
	}
}
