package reconcile

import (
	"context"
	"errors"
	"sort"
	"testing"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/collection"
	"tableflip.dev/shelf/pkg/events"
)

// fakeClient records saves and returns canned responses.
type fakeClient struct {
	api.Client

	saves   []collection.Collection
	deletes []string
	saveErr error
	nextID  string
}

func (f *fakeClient) SaveCollection(_ context.Context, c collection.Collection) (collection.Collection, error) {
	if f.saveErr != nil {
		return collection.Collection{}, f.saveErr
	}
	f.saves = append(f.saves, c)
	if c.ID == "" {
		c.ID = f.nextID
	}
	return c, nil
}

func (f *fakeClient) DeleteCollection(_ context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	return nil
}

func newTestReconciler(client *fakeClient) (*Reconciler, *[]events.Event) {
	b := events.NewBroadcaster()
	var published []events.Event
	b.Subscribe(func(e events.Event) { published = append(published, e) })
	return New(client, b, nil), &published
}

func TestCreateNewRequiresName(t *testing.T) {
	client := &fakeClient{}
	r, published := newTestReconciler(client)

	_, err := r.CreateNew(context.Background(), collection.Collection{Name: "  "}, nil)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(client.saves) != 0 {
		t.Fatalf("validation failure must not reach the network")
	}
	if len(*published) != 0 {
		t.Fatalf("validation failure must not publish events")
	}
}

func TestCreateNewSeedsMembers(t *testing.T) {
	client := &fakeClient{nextID: "c9"}
	r, published := newTestReconciler(client)

	saved, err := r.CreateNew(context.Background(), collection.Collection{Name: "Boats", ID: "stale"}, []string{"m1", "m2", "m1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if saved.ID != "c9" {
		t.Fatalf("server id not applied: %+v", saved)
	}
	payload := client.saves[0]
	if payload.ID != "" {
		t.Fatalf("create payload must omit the id, got %q", payload.ID)
	}
	if len(payload.ModelIDs) != 2 {
		t.Fatalf("members not deduplicated: %v", payload.ModelIDs)
	}
	if len(*published) != 1 {
		t.Fatalf("expected a create event")
	}
	if change, ok := (*published)[0].(events.CollectionChanged); !ok || change.Action != events.ChangeCreate {
		t.Fatalf("unexpected event: %+v", (*published)[0])
	}
}

func TestAttachDedupsUnion(t *testing.T) {
	client := &fakeClient{}
	r, _ := newTestReconciler(client)

	all := []collection.Collection{
		{ID: "t1", Name: "Target", ModelIDs: []string{"y", "z"}, Tags: []string{"keep"}, Category: "Boats"},
	}
	saved, err := r.Attach(context.Background(), all, "t1", []string{"x", "y"})
	if err != nil {
		t.Fatalf("attach: %v", err)
	}

	got := append([]string(nil), saved.ModelIDs...)
	sort.Strings(got)
	want := []string{"x", "y", "z"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected members %v, got %v", want, got)
		}
	}
	if len(got) != 3 {
		t.Fatalf("duplicates in member set: %v", got)
	}

	// Full-record contract: untouched fields ride along.
	payload := client.saves[0]
	if payload.Category != "Boats" || len(payload.Tags) != 1 {
		t.Fatalf("attach dropped fields: %+v", payload)
	}
}

func TestAttachRequiresTarget(t *testing.T) {
	client := &fakeClient{}
	r, _ := newTestReconciler(client)

	if _, err := r.Attach(context.Background(), nil, "", []string{"m"}); err == nil {
		t.Fatalf("missing target accepted")
	}
	if _, err := r.Attach(context.Background(), nil, "ghost", []string{"m"}); err == nil {
		t.Fatalf("unknown target accepted")
	}
	if len(client.saves) != 0 {
		t.Fatalf("validation failures must not reach the network")
	}
}

func TestEditPreservesUntouchedFields(t *testing.T) {
	client := &fakeClient{}
	r, _ := newTestReconciler(client)

	original := collection.Collection{
		ID:                 "c1",
		Name:               "Boats",
		Tags:               []string{"a", "b"},
		ModelIDs:           []string{"m1"},
		CoverModelID:       "m1",
		ChildCollectionIDs: []string{"kid"},
	}
	desc := "now with a description"
	_, err := r.Edit(context.Background(), []collection.Collection{original}, original, FieldEdits{Description: &desc})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	payload := client.saves[0]
	if payload.Description != desc {
		t.Fatalf("edit not applied: %+v", payload)
	}
	if len(payload.Tags) != 2 || payload.Tags[0] != "a" || payload.Tags[1] != "b" {
		t.Fatalf("tags changed by unrelated edit: %v", payload.Tags)
	}
	if len(payload.ModelIDs) != 1 || payload.ModelIDs[0] != "m1" {
		t.Fatalf("modelIds changed by unrelated edit: %v", payload.ModelIDs)
	}
	if payload.CoverModelID != "m1" || len(payload.ChildCollectionIDs) != 1 {
		t.Fatalf("carry-forward fields dropped: %+v", payload)
	}
}

func TestEditRejectsCyclicParent(t *testing.T) {
	client := &fakeClient{}
	r, _ := newTestReconciler(client)

	all := []collection.Collection{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B", ParentID: "a"},
	}
	parent := "b"
	_, err := r.Edit(context.Background(), all, all[0], FieldEdits{ParentID: &parent})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for cyclic reparent, got %v", err)
	}
	if len(client.saves) != 0 {
		t.Fatalf("cyclic reparent reached the network")
	}
}

func TestRemoveMembers(t *testing.T) {
	client := &fakeClient{}
	r, _ := newTestReconciler(client)

	target := collection.Collection{ID: "c1", Name: "Boats", ModelIDs: []string{"a", "b", "c"}}
	saved, err := r.RemoveMembers(context.Background(), target, []string{"b"})
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(saved.ModelIDs) != 2 || saved.ModelIDs[0] != "a" || saved.ModelIDs[1] != "c" {
		t.Fatalf("expected [a c], got %v", saved.ModelIDs)
	}
	if target.ModelIDs[1] != "b" {
		t.Fatalf("input record mutated in place")
	}
}

func TestSaveFailureLeavesNoEvent(t *testing.T) {
	client := &fakeClient{saveErr: &api.Error{Op: "save collection", Message: "boom"}}
	r, published := newTestReconciler(client)

	target := collection.Collection{ID: "c1", Name: "Boats", ModelIDs: []string{"a"}}
	if _, err := r.RemoveMembers(context.Background(), target, []string{"a"}); err == nil {
		t.Fatalf("expected save failure to propagate")
	}
	if len(*published) != 0 {
		t.Fatalf("failed save must not publish a change event")
	}
}

func TestDeletePublishes(t *testing.T) {
	client := &fakeClient{}
	r, published := newTestReconciler(client)

	if err := r.Delete(context.Background(), collection.Collection{ID: "c1", Name: "Boats"}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(client.deletes) != 1 || client.deletes[0] != "c1" {
		t.Fatalf("delete not issued: %v", client.deletes)
	}
	if change, ok := (*published)[0].(events.CollectionChanged); !ok || change.Action != events.ChangeDelete {
		t.Fatalf("unexpected event: %+v", (*published)[0])
	}
}
