package cache

import (
	"testing"

	"tableflip.dev/shelf/pkg/collection"
)

func TestSnapshotIsolation(t *testing.T) {
	c := New("")
	_ = c.Set([]collection.Collection{{ID: "c1", Name: "Boats", ModelIDs: []string{"m1"}}})

	snap := c.Snapshot()
	snap[0].Name = "mutated"
	snap[0].ModelIDs[0] = "mutated"

	again := c.Snapshot()
	if again[0].Name != "Boats" || again[0].ModelIDs[0] != "m1" {
		t.Fatalf("snapshot mutation leaked into the cache: %+v", again[0])
	}
}

func TestGet(t *testing.T) {
	c := New("")
	_ = c.Set([]collection.Collection{{ID: "c1", Name: "Boats"}})

	if _, ok := c.Get("c1"); !ok {
		t.Fatalf("expected hit for c1")
	}
	if _, ok := c.Get("ghost"); ok {
		t.Fatalf("expected miss for ghost")
	}
}

func TestRoundTripThroughDisk(t *testing.T) {
	dir := t.TempDir()

	c := New(dir)
	if err := c.Set([]collection.Collection{{ID: "c1", Name: "Boats"}}); err != nil {
		t.Fatalf("set: %v", err)
	}

	fresh := New(dir)
	if err := fresh.Restore(); err != nil {
		t.Fatalf("restore: %v", err)
	}
	snap := fresh.Snapshot()
	if len(snap) != 1 || snap[0].ID != "c1" {
		t.Fatalf("restore lost data: %v", snap)
	}
}

func TestRestoreEmptyIsFine(t *testing.T) {
	c := New(t.TempDir())
	if err := c.Restore(); err != nil {
		t.Fatalf("restore on empty cache: %v", err)
	}
	if len(c.Snapshot()) != 0 {
		t.Fatalf("expected empty snapshot")
	}
}
