// Package events carries change notifications between otherwise unrelated
// surfaces. A successful mutation is announced here so every component
// displaying collection data refreshes from the boundary instead of trusting
// its own memory.
package events

import (
	"fmt"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/collection"
)

// ChangeType enumerates supported change actions.
type ChangeType string

const (
	// ChangeCreate indicates a new collection was created.
	ChangeCreate ChangeType = "create"
	// ChangeUpdate indicates an existing collection changed.
	ChangeUpdate ChangeType = "update"
	// ChangeDelete indicates a collection was removed.
	ChangeDelete ChangeType = "delete"
)

// Event is implemented by every message the broadcaster carries.
type Event interface {
	Describe() string
}

// CollectionChanged announces a persisted mutation of a single collection.
// Subscribers should refetch the canonical list rather than patch in place.
type CollectionChanged struct {
	Action     ChangeType
	Collection collection.Collection
}

// Describe renders the change in a human-friendly format for logs.
func (e CollectionChanged) Describe() string {
	return fmt.Sprintf(`action:%q name:%q id:%q`, e.Action, e.Collection.Name, e.Collection.ID)
}

// CollectionsInvalidated signals that the catalog changed out-of-band (e.g.
// another shelf process wrote the local cache) and callers should refresh.
type CollectionsInvalidated struct{}

// Describe implements Event.
func (CollectionsInvalidated) Describe() string {
	return "collections invalidated"
}

// PrinterStatusUpdated carries the latest printer poll result.
type PrinterStatusUpdated struct {
	Status api.PrinterStatus
}

// Describe implements Event.
func (e PrinterStatusUpdated) Describe() string {
	return fmt.Sprintf(`state:%q job:%q progress:%.0f%%`, e.Status.State, e.Status.JobName, e.Status.Progress)
}
