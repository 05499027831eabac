package collections

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/collection"
	"tableflip.dev/shelf/pkg/printers"
	"tableflip.dev/shelf/pkg/reconcile"
)

// Remove strips member model ids from a collection. Destructive, so it
// refuses to run without explicit confirmation.
type Remove struct {
	Client     api.Client
	Reconciler *reconcile.Reconciler

	TargetID string
	Members  []string
	Confirm  bool
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Reconciler == nil {
		return errors.New("can not remove, no reconciler")
	}
	if !r.Confirm {
		return fmt.Errorf("removing %d member(s) requires --yes", len(r.Members))
	}

	all, err := r.Client.ListCollections(ctx)
	if err != nil {
		return err
	}
	target, ok := collection.ByID(all, r.TargetID)
	if !ok {
		return fmt.Errorf("collection %q not found", r.TargetID)
	}

	saved, err := r.Reconciler.RemoveMembers(ctx, target, r.Members)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Updated")
	pp.Collections(saved)
	return nil
}

// Delete removes a whole collection. Also confirmation-gated.
type Delete struct {
	Client     api.Client
	Reconciler *reconcile.Reconciler

	TargetID string
	Confirm  bool
}

func (d *Delete) Do(ctx context.Context) error {
	if d.Reconciler == nil {
		return errors.New("can not delete, no reconciler")
	}
	if !d.Confirm {
		return errors.New("deleting a collection requires --yes")
	}

	all, err := d.Client.ListCollections(ctx)
	if err != nil {
		return err
	}
	target, ok := collection.ByID(all, d.TargetID)
	if !ok {
		return fmt.Errorf("collection %q not found", d.TargetID)
	}

	if err := d.Reconciler.Delete(ctx, target); err != nil {
		return err
	}
	fmt.Printf("Deleted %q\n", target.Name)
	return nil
}
