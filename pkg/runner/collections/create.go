package collections

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/collection"
	"tableflip.dev/shelf/pkg/collection/tree"
	"tableflip.dev/shelf/pkg/printers"
	"tableflip.dev/shelf/pkg/reconcile"
)

// Create makes a new collection, optionally under a parent and seeded with
// member model ids.
type Create struct {
	Client     api.Client
	Reconciler *reconcile.Reconciler

	Name        string
	ParentID    string
	Category    string
	Description string
	Tags        []string
	Members     []string
}

func (c *Create) Do(ctx context.Context) error {
	if c.Reconciler == nil {
		return errors.New("can not create, no reconciler")
	}

	draft := collection.Collection{
		Name:        c.Name,
		ParentID:    c.ParentID,
		Category:    c.Category,
		Description: c.Description,
		Tags:        c.Tags,
	}

	if c.ParentID != "" {
		all, err := c.Client.ListCollections(ctx)
		if err != nil {
			return err
		}
		if _, ok := collection.ByID(all, c.ParentID); !ok {
			return fmt.Errorf("parent %q not found", c.ParentID)
		}
		// New records have no id yet, so only a bad parent chain can fail.
		if err := tree.ValidateParent(all, "", c.ParentID); err != nil {
			return err
		}
	}

	saved, err := c.Reconciler.CreateNew(ctx, draft, c.Members)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.Title("Created")
	pp.Collections(saved)
	return nil
}
