// Package gallery contains runners for image and cover commands.
package gallery

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/collection"
	gal "tableflip.dev/shelf/pkg/gallery"
)

// Add uploads local image files to an existing collection and reports the
// aggregate outcome.
type Add struct {
	Client api.Client

	TargetID string
	Paths    []string
}

func (a *Add) Do(ctx context.Context) error {
	if a.Client == nil {
		return errors.New("can not add images, no client")
	}
	if len(a.Paths) == 0 {
		return errors.New("no image files given")
	}

	target, err := loadTarget(ctx, a.Client, a.TargetID)
	if err != nil {
		return err
	}

	files := make(map[string][]byte, len(a.Paths))
	for _, path := range a.Paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		files[filepath.Base(path)] = data
	}

	m := gal.NewManager(a.Client, target, nil)
	n, err := m.AddImages(ctx, files)
	fmt.Printf("Uploaded %d of %d image(s)\n", n, len(files))
	return err
}

// Remove deletes one stored image from a collection.
type Remove struct {
	Client api.Client

	TargetID string
	Filename string
	Confirm  bool
}

func (r *Remove) Do(ctx context.Context) error {
	if r.Client == nil {
		return errors.New("can not remove image, no client")
	}
	if !r.Confirm {
		return errors.New("removing an image requires --yes")
	}

	target, err := loadTarget(ctx, r.Client, r.TargetID)
	if err != nil {
		return err
	}

	m := gal.NewManager(r.Client, target, nil)
	if err := m.RemoveImage(ctx, r.Filename); err != nil {
		return err
	}
	fmt.Printf("Removed %s from %q\n", r.Filename, target.Name)
	return nil
}

// Cover designates an image as the collection cover.
type Cover struct {
	Client api.Client

	TargetID string
	Image    string
}

func (c *Cover) Do(ctx context.Context) error {
	if c.Client == nil {
		return errors.New("can not set cover, no client")
	}

	target, err := loadTarget(ctx, c.Client, c.TargetID)
	if err != nil {
		return err
	}

	m := gal.NewManager(c.Client, target, nil)
	saved, err := m.SetCover(ctx, c.Image)
	if err != nil {
		return err
	}
	fmt.Printf("Cover of %q set to %s\n", saved.Name, c.Image)
	return nil
}

// Mosaic asks the server to generate mosaic covers for collections.
type Mosaic struct {
	Client api.Client

	IDs   []string
	Force bool
}

func (m *Mosaic) Do(ctx context.Context) error {
	if m.Client == nil {
		return errors.New("can not generate mosaics, no client")
	}
	if len(m.IDs) == 0 {
		return errors.New("no collection ids given")
	}

	mgr := gal.NewManager(m.Client, collection.Collection{}, nil)
	processed, err := mgr.RequestMosaic(ctx, m.IDs, m.Force)
	if err != nil {
		return err
	}
	fmt.Printf("Generated mosaic covers for %d collection(s)\n", processed)
	return nil
}

func loadTarget(ctx context.Context, client api.Client, id string) (collection.Collection, error) {
	if id == "" {
		return collection.Collection{}, errors.New("collection id is required")
	}
	all, err := client.ListCollections(ctx)
	if err != nil {
		return collection.Collection{}, err
	}
	target, ok := collection.ByID(all, id)
	if !ok {
		return collection.Collection{}, fmt.Errorf("collection %q not found", id)
	}
	return target, nil
}
