// Package reconcile turns a local edit intent into exactly one full-record
// write against the persistence boundary and applies the authoritative
// response back. The boundary replaces whole records: any field the payload
// does not carry is cleared server-side, so every path here starts from a
// clone of the current record and overlays only the intended fields.
package reconcile

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/collection"
	"tableflip.dev/shelf/pkg/collection/tree"
	"tableflip.dev/shelf/pkg/events"
)

// ValidationError is a local precondition failure. No network call was made
// and no state was mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("reconcile: %s %s", e.Field, e.Reason)
}

// Reconciler executes intents against the boundary and broadcasts results.
type Reconciler struct {
	Client api.Client
	Events *events.Broadcaster
	Log    *log.Logger
}

// New returns a Reconciler using the default logger when none is given.
func New(client api.Client, broadcaster *events.Broadcaster, logger *log.Logger) *Reconciler {
	if logger == nil {
		logger = log.Default()
	}
	return &Reconciler{Client: client, Events: broadcaster, Log: logger}
}

// CreateNew creates a collection from a draft. The draft must carry a name
// and no id; members seeds the initial member set.
func (r *Reconciler) CreateNew(ctx context.Context, draft collection.Collection, members []string) (collection.Collection, error) {
	draft = draft.Clone()
	draft.ID = ""
	draft.ModelIDs = lo.Uniq(append(draft.ModelIDs, members...))
	draft.Normalize()

	if draft.Name == "" {
		return collection.Collection{}, &ValidationError{Field: "name", Reason: "is required"}
	}

	saved, err := r.save(ctx, draft)
	if err != nil {
		return collection.Collection{}, err
	}
	r.publish(events.ChangeCreate, saved)
	return saved, nil
}

// Attach adds members to an existing collection identified by targetID. The
// target's current record is looked up in the pre-loaded list and resubmitted
// whole with only ModelIDs changed; everything else is carried forward so the
// full-record-replace contract cannot drop fields.
func (r *Reconciler) Attach(ctx context.Context, all []collection.Collection, targetID string, members []string) (collection.Collection, error) {
	if targetID == "" {
		return collection.Collection{}, &ValidationError{Field: "target", Reason: "is required"}
	}
	target, ok := collection.ByID(all, targetID)
	if !ok {
		return collection.Collection{}, &ValidationError{Field: "target", Reason: fmt.Sprintf("%q not found", targetID)}
	}

	payload := target.Clone()
	payload.ModelIDs = lo.Uniq(lo.Union(payload.ModelIDs, members))

	saved, err := r.save(ctx, payload)
	if err != nil {
		return collection.Collection{}, err
	}
	r.publish(events.ChangeUpdate, saved)
	return saved, nil
}

// FieldEdits names the fields an edit form may change. A nil pointer means
// "leave alone"; everything not named here (ModelIDs, CoverModelID,
// ChildCollectionIDs, timestamps) is always copied through verbatim.
type FieldEdits struct {
	Name        *string
	Category    *string
	Description *string
	Tags        *[]string
	ParentID    *string
	Images      *[]string
	CoverImage  *string
}

// Edit overlays edits on the original record and resubmits the whole thing.
// A parent change is validated against the full ancestor chain before any
// network call.
func (r *Reconciler) Edit(ctx context.Context, all []collection.Collection, original collection.Collection, edits FieldEdits) (collection.Collection, error) {
	if !original.Persisted() {
		return collection.Collection{}, &ValidationError{Field: "id", Reason: "is required for edit"}
	}

	payload := original.Clone()
	if edits.Name != nil {
		payload.Name = *edits.Name
	}
	if edits.Category != nil {
		payload.Category = *edits.Category
	}
	if edits.Description != nil {
		payload.Description = *edits.Description
	}
	if edits.Tags != nil {
		payload.Tags = append([]string(nil), (*edits.Tags)...)
	}
	if edits.Images != nil {
		payload.Images = append([]string(nil), (*edits.Images)...)
	}
	if edits.CoverImage != nil {
		payload.CoverImage = *edits.CoverImage
	}
	if edits.ParentID != nil {
		if err := tree.ValidateParent(all, payload.ID, *edits.ParentID); err != nil {
			return collection.Collection{}, &ValidationError{Field: "parent", Reason: err.Error()}
		}
		payload.ParentID = *edits.ParentID
	}

	payload.Normalize()
	if payload.Name == "" {
		return collection.Collection{}, &ValidationError{Field: "name", Reason: "is required"}
	}

	saved, err := r.save(ctx, payload)
	if err != nil {
		return collection.Collection{}, err
	}
	r.publish(events.ChangeUpdate, saved)
	return saved, nil
}

// RemoveMembers strips the given member ids from the target and resubmits
// the reduced full record.
func (r *Reconciler) RemoveMembers(ctx context.Context, target collection.Collection, remove []string) (collection.Collection, error) {
	if !target.Persisted() {
		return collection.Collection{}, &ValidationError{Field: "id", Reason: "is required"}
	}
	if len(remove) == 0 {
		return collection.Collection{}, &ValidationError{Field: "members", Reason: "nothing to remove"}
	}

	payload := target.Clone()
	payload.ModelIDs = lo.Without(payload.ModelIDs, remove...)

	saved, err := r.save(ctx, payload)
	if err != nil {
		return collection.Collection{}, err
	}
	r.publish(events.ChangeUpdate, saved)
	return saved, nil
}

// Delete removes the collection and announces it.
func (r *Reconciler) Delete(ctx context.Context, target collection.Collection) error {
	if !target.Persisted() {
		return &ValidationError{Field: "id", Reason: "is required"}
	}
	if err := r.Client.DeleteCollection(ctx, target.ID); err != nil {
		r.Log.Error("delete failed", "collection", target.Name, "err", err)
		return err
	}
	r.publish(events.ChangeDelete, target)
	return nil
}

func (r *Reconciler) save(ctx context.Context, payload collection.Collection) (collection.Collection, error) {
	saved, err := r.Client.SaveCollection(ctx, payload)
	if err != nil {
		r.Log.Error("save failed", "collection", payload.Name, "err", err)
		return collection.Collection{}, err
	}
	return saved, nil
}

func (r *Reconciler) publish(action events.ChangeType, c collection.Collection) {
	r.Log.Debug("collection changed", "action", action, "collection", c.Name)
	if r.Events != nil {
		r.Events.Publish(events.CollectionChanged{Action: action, Collection: c})
	}
}
