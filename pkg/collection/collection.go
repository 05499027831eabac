// Package collection defines the collection record shared by every surface
// of shelf. A collection is a node in a forest: it may point at a parent
// collection and it carries a set of member model ids.
package collection

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// DefaultCategory is the sentinel applied when a collection has no category.
const DefaultCategory = "Uncategorized"

// Collection is the full record the persistence boundary stores. Saves are
// full-record replacements, so every write path must carry forward every
// field it does not intend to change. Start from Clone and overlay.
type Collection struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`

	// ChildCollectionIDs is denormalized and may be stale; the authoritative
	// child relationship is derived by scanning ParentID across the list.
	ChildCollectionIDs []string `json:"childCollectionIds,omitempty"`

	ModelIDs []string `json:"modelIds"`

	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`

	// Images is display-ordered. CoverImage points at one of them (or an
	// independently uploaded image); stale pointers are tolerated.
	Images       []string `json:"images,omitempty"`
	CoverImage   string   `json:"coverImage,omitempty"`
	CoverModelID string   `json:"coverModelId,omitempty"`

	Created      time.Time `json:"created,omitempty"`
	LastModified time.Time `json:"lastModified,omitempty"`
}

// Persisted reports whether the boundary has assigned this record an id.
func (c Collection) Persisted() bool {
	return c.ID != ""
}

// Clone returns a deep copy suitable as the base for a full-record save.
func (c Collection) Clone() Collection {
	out := c
	out.ChildCollectionIDs = append([]string(nil), c.ChildCollectionIDs...)
	out.ModelIDs = append([]string(nil), c.ModelIDs...)
	out.Tags = append([]string(nil), c.Tags...)
	out.Images = append([]string(nil), c.Images...)
	return out
}

// Normalize enforces the write invariants: member ids are deduplicated
// (first occurrence wins), the category sentinel is applied, and name and
// tags are trimmed. Tag insertion order is preserved for display.
func (c *Collection) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	if strings.TrimSpace(c.Category) == "" {
		c.Category = DefaultCategory
	}
	c.ModelIDs = lo.Uniq(c.ModelIDs)

	tags := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	c.Tags = lo.Uniq(tags)
}

// Validate checks the invariants a record must satisfy before it may be
// offered to the persistence boundary.
func (c Collection) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("collection: name is required")
	}
	if c.ID != "" && c.ParentID == c.ID {
		return fmt.Errorf("collection: %q cannot be its own parent", c.Name)
	}
	return nil
}

// HasModel reports whether id is currently a member.
func (c Collection) HasModel(id string) bool {
	return lo.Contains(c.ModelIDs, id)
}

// ByID returns the collection with the given id from the flat list.
func ByID(all []Collection, id string) (Collection, bool) {
	if id == "" {
		return Collection{}, false
	}
	for _, c := range all {
		if c.ID == id {
			return c, true
		}
	}
	return Collection{}, false
}
