package collections

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/printers"
	"tableflip.dev/shelf/pkg/reconcile"
)

// Attach adds member model ids to an existing collection.
type Attach struct {
	Client     api.Client
	Reconciler *reconcile.Reconciler

	TargetID string
	Members  []string
}

func (a *Attach) Do(ctx context.Context) error {
	if a.Reconciler == nil {
		return errors.New("can not attach, no reconciler")
	}
	if len(a.Members) == 0 {
		return errors.New("no members to attach")
	}

	all, err := a.Client.ListCollections(ctx)
	if err != nil {
		return err
	}

	saved, err := a.Reconciler.Attach(ctx, all, a.TargetID, a.Members)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Title("Updated")
	pp.Collections(saved)
	return nil
}
