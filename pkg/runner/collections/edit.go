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

// Edit overlays field changes on an existing collection. Unset fields stay
// untouched; the reconciler carries everything else forward.
type Edit struct {
	Client     api.Client
	Reconciler *reconcile.Reconciler

	TargetID string
	Edits    reconcile.FieldEdits
}

func (e *Edit) Do(ctx context.Context) error {
	if e.Reconciler == nil {
		return errors.New("can not edit, no reconciler")
	}
	if e.TargetID == "" {
		return errors.New("collection id is required")
	}

	all, err := e.Client.ListCollections(ctx)
	if err != nil {
		return err
	}
	original, ok := collection.ByID(all, e.TargetID)
	if !ok {
		return fmt.Errorf("collection %q not found", e.TargetID)
	}

	saved, err := e.Reconciler.Edit(ctx, all, original, e.Edits)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Updated")
	pp.Collections(saved)
	return nil
}
