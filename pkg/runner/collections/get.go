// Package collections contains runners for the collection commands.
package collections

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/cache"
	"tableflip.dev/shelf/pkg/collection"
	"tableflip.dev/shelf/pkg/collection/tree"
	"tableflip.dev/shelf/pkg/printers"
)

// Get lists collections: roots by default, or the children of Parent with a
// breadcrumb header. Falls back to the local cache when the boundary is
// unreachable.
type Get struct {
	Client api.Client
	Cache  *cache.Cache

	Parent string
	ShowID bool
	JSON   bool
}

func (g *Get) Do(ctx context.Context) error {
	if g.Client == nil {
		return errors.New("can not get, no client")
	}

	all, err := g.Client.ListCollections(ctx)
	if err != nil {
		if g.Cache == nil {
			return err
		}
		if restoreErr := g.Cache.Restore(); restoreErr != nil {
			return err
		}
		all = g.Cache.Snapshot()
		fmt.Fprintf(os.Stderr, "offline: showing cached collections (%v)\n", err)
	} else if g.Cache != nil {
		if err := g.Cache.Set(all); err != nil {
			fmt.Fprintf(os.Stderr, "cache update failed: %v\n", err)
		}
	}

	var shown []collection.Collection
	pp := printers.PrettyPrint{ShowID: g.ShowID}

	if g.Parent != "" {
		active, ok := collection.ByID(all, g.Parent)
		if !ok {
			return fmt.Errorf("collection %q not found", g.Parent)
		}
		shown = tree.Children(all, active.ID)
		if g.JSON {
			return printJSON(shown)
		}
		fmt.Println("")
		pp.Breadcrumb(tree.Breadcrumbs(all, active))
		pp.Collections(shown...)
		return nil
	}

	shown = tree.Roots(all)
	if g.JSON {
		return printJSON(shown)
	}
	fmt.Println("")
	pp.Title("Collections")
	pp.Collections(shown...)
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
