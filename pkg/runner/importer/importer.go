// Package importer contains the Thingiverse import runner.
package importer

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/printers"
	"tableflip.dev/shelf/pkg/reconcile"
	"tableflip.dev/shelf/pkg/thing"
)

// Import fetches a thing and creates a collection from it.
type Import struct {
	Client     api.Client
	Reconciler *reconcile.Reconciler

	Reference string
}

func (i *Import) Do(ctx context.Context) error {
	if i.Client == nil || i.Reconciler == nil {
		return errors.New("can not import, no client")
	}

	imp := &thing.Importer{Client: i.Client, Reconciler: i.Reconciler}
	created, err := imp.Import(ctx, i.Reference)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("Imported")
	pp.Collections(created)
	return nil
}
