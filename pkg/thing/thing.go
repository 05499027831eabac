// Package thing handles the Thingiverse import flow: parse a thing
// reference, fetch its metadata through the boundary, and turn it into a
// create-collection intent.
package thing

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/collection"
	"tableflip.dev/shelf/pkg/reconcile"
)

// ImportCategory is applied to collections created from an import.
const ImportCategory = "Thingiverse"

var thingIDPattern = regexp.MustCompile(`^\d+$`)

// ParseID extracts a numeric thing id from any of the accepted spellings:
// a full thingiverse.com URL, "thing:12345", or a bare id.
func ParseID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("thing: reference is required")
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("thing: bad url: %w", err)
		}
		if !strings.HasSuffix(u.Hostname(), "thingiverse.com") {
			return "", fmt.Errorf("thing: %q is not a thingiverse url", raw)
		}
		raw = strings.Trim(u.Path, "/")
	}

	if idx := strings.LastIndex(raw, "thing:"); idx >= 0 {
		raw = raw[idx+len("thing:"):]
	}
	if !thingIDPattern.MatchString(raw) {
		return "", fmt.Errorf("thing: cannot find a thing id in %q", raw)
	}
	return raw, nil
}

// Importer fetches a thing and creates a collection for it.
type Importer struct {
	Client     api.Client
	Reconciler *reconcile.Reconciler
}

// BuildDraft converts fetched thing metadata into a collection draft: name,
// description, and tags come from the thing, images from its thumbnails, and
// the category marks the import origin.
func BuildDraft(t api.Thing) collection.Collection {
	draft := collection.Collection{
		Name:        t.Name,
		Description: t.Description,
		Category:    ImportCategory,
		Tags:        append([]string(nil), t.Tags...),
		Images:      append([]string(nil), t.Thumbnails...),
	}
	if t.Creator != "" {
		draft.Tags = append(draft.Tags, "by:"+t.Creator)
	}
	draft.Normalize()
	return draft
}

// Import runs the whole flow for a raw thing reference and returns the
// created collection.
func (i *Importer) Import(ctx context.Context, raw string) (collection.Collection, error) {
	id, err := ParseID(raw)
	if err != nil {
		return collection.Collection{}, err
	}

	t, err := i.Client.FetchThing(ctx, id)
	if err != nil {
		return collection.Collection{}, err
	}
	if strings.TrimSpace(t.Name) == "" {
		return collection.Collection{}, fmt.Errorf("thing: %s has no name", id)
	}

	return i.Reconciler.CreateNew(ctx, BuildDraft(t), nil)
}
