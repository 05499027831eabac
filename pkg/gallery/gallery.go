// Package gallery manages a collection's ordered image list and its single
// cover pointer. Writes take one of two modes: a persisted collection saves
// every operation immediately and individually, while a collection that is
// still being created accumulates images locally until the first save.
package gallery

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/collection"
)

// PendingImage is a local preview held before the collection exists.
type PendingImage struct {
	ID   string
	Name string
	Data []byte
}

// Ref is the reference stored in the record's image list. For pending images
// it is a placeholder id the create flow replaces with server paths.
func (p PendingImage) Ref() string {
	return "pending:" + p.ID
}

// Manager owns image operations for one collection record.
type Manager struct {
	Client api.Client
	Log    *log.Logger

	record  collection.Collection
	pending []PendingImage
}

// NewManager wraps the given record. Whether the record has an id decides
// the write mode for every subsequent operation.
func NewManager(client api.Client, record collection.Collection, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	return &Manager{Client: client, Log: logger, record: record.Clone()}
}

// Record returns the manager's current view of the record.
func (m *Manager) Record() collection.Collection {
	return m.record.Clone()
}

// Pending returns the locally held images awaiting the first save.
func (m *Manager) Pending() []PendingImage {
	return append([]PendingImage(nil), m.pending...)
}

// AddImage adds one image. Persisted mode uploads immediately and appends
// the returned serving path; pending mode holds the bytes locally and makes
// zero network calls.
func (m *Manager) AddImage(ctx context.Context, name string, data []byte) (string, error) {
	if !m.record.Persisted() {
		p := PendingImage{ID: uuid.NewString(), Name: name, Data: data}
		m.pending = append(m.pending, p)
		m.record.Images = append(m.record.Images, p.Ref())
		return p.Ref(), nil
	}

	path, err := m.Client.UploadImage(ctx, m.record.ID, name, data)
	if err != nil {
		m.Log.Error("image upload failed", "collection", m.record.Name, "file", name, "err", err)
		return "", err
	}
	m.record.Images = append(m.record.Images, path)
	return path, nil
}

// AddImages uploads several files and reports how many succeeded. Failures
// are aggregated into a count; the successful uploads stay applied.
func (m *Manager) AddImages(ctx context.Context, files map[string][]byte) (succeeded int, err error) {
	var lastErr error
	for name, data := range files {
		if _, addErr := m.AddImage(ctx, name, data); addErr != nil {
			lastErr = addErr
			continue
		}
		succeeded++
	}
	if lastErr != nil {
		return succeeded, fmt.Errorf("gallery: %d of %d images added: %w", succeeded, len(files), lastErr)
	}
	return succeeded, nil
}

// RemoveImage drops ref from the list. Persisted mode issues a delete scoped
// to the collection and filename; pending refs are discarded locally.
func (m *Manager) RemoveImage(ctx context.Context, ref string) error {
	idx := -1
	for i, img := range m.record.Images {
		if img == ref {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("gallery: image %q not found", ref)
	}

	if m.record.Persisted() && !isPendingRef(ref) {
		if err := m.Client.DeleteImage(ctx, m.record.ID, ref); err != nil {
			m.Log.Error("image delete failed", "collection", m.record.Name, "file", ref, "err", err)
			return err
		}
	}

	m.record.Images = append(m.record.Images[:idx], m.record.Images[idx+1:]...)
	for i, p := range m.pending {
		if p.Ref() == ref {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			break
		}
	}
	if m.record.CoverImage == ref {
		m.record.CoverImage = ""
	}
	return nil
}

// SetCover designates ref as the cover. Exactly one cover exists at a time;
// pointing at a new image implicitly clears the previous one. Persisted mode
// saves the full record immediately.
func (m *Manager) SetCover(ctx context.Context, ref string) (collection.Collection, error) {
	payload := m.record.Clone()
	payload.CoverImage = ref

	if !m.record.Persisted() {
		m.record = payload
		return m.record.Clone(), nil
	}

	saved, err := m.Client.SaveCollection(ctx, payload)
	if err != nil {
		m.Log.Error("cover save failed", "collection", m.record.Name, "err", err)
		return collection.Collection{}, err
	}
	m.record = saved.Clone()
	return saved, nil
}

// FlushInto folds the accumulated pending images into a create draft. The
// placeholder refs are dropped; the create payload carries the raw previews
// so the server can store them and return real paths.
func (m *Manager) FlushInto(draft *collection.Collection) []PendingImage {
	images := make([]string, 0, len(draft.Images))
	for _, ref := range draft.Images {
		if !isPendingRef(ref) {
			images = append(images, ref)
		}
	}
	draft.Images = images
	out := m.pending
	m.pending = nil
	return out
}

// Promote swaps the manager onto the persisted record after the create flow
// completes. Subsequent operations run in immediate mode.
func (m *Manager) Promote(saved collection.Collection) {
	m.record = saved.Clone()
	m.pending = nil
}

// RequestMosaic asks the server to build mosaic covers; composition is
// entirely the server's job, this only surfaces the outcome.
func (m *Manager) RequestMosaic(ctx context.Context, ids []string, force bool) (int, error) {
	processed, err := m.Client.GenerateMosaic(ctx, ids, force)
	if err != nil {
		m.Log.Error("mosaic generation failed", "err", err)
		return processed, err
	}
	return processed, nil
}

func isPendingRef(ref string) bool {
	return len(ref) > 8 && ref[:8] == "pending:"
}
