// Package api is the persistence boundary: the shelf server's REST surface
// treated as an opaque collaborator. Everything shelf knows or mutates goes
// through Client; the rest of the codebase never sees wire details.
package api

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/shelf/pkg/collection"
)

// Client is the behavior contract of the persistence boundary. Saves are
// full-record upserts: an id on the record means update, no id means create
// and the server assigns one. Any field missing from the payload is cleared.
type Client interface {
	ListCollections(ctx context.Context) ([]collection.Collection, error)
	SaveCollection(ctx context.Context, c collection.Collection) (collection.Collection, error)
	DeleteCollection(ctx context.Context, id string) error

	// UploadImage stores one file for the given collection and returns the
	// serving path the caller should reference.
	UploadImage(ctx context.Context, collectionID, filename string, data []byte) (string, error)
	DeleteImage(ctx context.Context, collectionID, filename string) error

	// GenerateMosaic asks the server to compose mosaic covers for the given
	// collections. The server needs at least four member models with
	// thumbnails per collection; it reports how many it processed.
	GenerateMosaic(ctx context.Context, ids []string, force bool) (int, error)

	PrinterStatus(ctx context.Context) (PrinterStatus, error)
	ListSpools(ctx context.Context) ([]Spool, error)

	// FetchThing retrieves Thingiverse metadata for an import dialog.
	FetchThing(ctx context.Context, thingID string) (Thing, error)
}

// PrinterStatus is a point-in-time poll result from the connected printer.
type PrinterStatus struct {
	State      string    `json:"state"`
	JobName    string    `json:"jobName,omitempty"`
	Progress   float64   `json:"progress"`
	NozzleTemp float64   `json:"nozzleTemp"`
	BedTemp    float64   `json:"bedTemp"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// Spool is a Spoolman filament spool as the boundary reports it.
type Spool struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Material        string  `json:"material"`
	Vendor          string  `json:"vendor,omitempty"`
	Price           float64 `json:"price"`
	InitialWeight   float64 `json:"initialWeight"`
	RemainingWeight float64 `json:"remainingWeight"`
	Archived        bool    `json:"archived,omitempty"`
}

// ThingFile is one downloadable file attached to a Thingiverse thing.
type ThingFile struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// Thing is the imported metadata for a Thingiverse thing.
type Thing struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Creator     string      `json:"creator,omitempty"`
	Description string      `json:"description,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	Thumbnails  []string    `json:"thumbnails,omitempty"`
	Files       []ThingFile `json:"files,omitempty"`
}

// Error is a non-success envelope from the boundary. Transport failures and
// envelope failures surface identically to callers (both are just errors);
// the type exists so tests and messages can tell them apart.
type Error struct {
	Op      string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: %s failed", e.Op)
	}
	return fmt.Sprintf("api: %s: %s", e.Op, e.Message)
}
