// Package tree resolves hierarchy questions over the flat collection list:
// breadcrumb paths, child listings, and legal parent candidates. The flat
// list is the source of truth; denormalized child id lists are ignored here.
package tree

import (
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/shelf/pkg/collection"
)

// Breadcrumbs returns the path from root to active, inclusive. A parent id
// that cannot be found in the list is treated as root rather than an error.
// Cyclic input terminates at the point the cycle would close; the resolver
// survives bad data, it does not repair it.
func Breadcrumbs(all []collection.Collection, active collection.Collection) []collection.Collection {
	path := []collection.Collection{active}
	visited := map[string]bool{active.ID: true}

	current := active
	for current.ParentID != "" {
		parent, ok := collection.ByID(all, current.ParentID)
		if !ok || visited[parent.ID] {
			break
		}
		visited[parent.ID] = true
		path = append([]collection.Collection{parent}, path...)
		current = parent
	}
	return path
}

// Children returns the direct children of activeID sorted by name
// (case-sensitive). Ties keep their input order.
func Children(all []collection.Collection, activeID string) []collection.Collection {
	if activeID == "" {
		return nil
	}
	kids := make([]collection.Collection, 0)
	for _, c := range all {
		if c.ParentID == activeID {
			kids = append(kids, c)
		}
	}
	sort.SliceStable(kids, func(i, j int) bool {
		return strings.Compare(kids[i].Name, kids[j].Name) < 0
	})
	return kids
}

// Roots returns every collection without a resolvable parent, sorted by name.
func Roots(all []collection.Collection) []collection.Collection {
	roots := make([]collection.Collection, 0)
	for _, c := range all {
		if c.ParentID == "" {
			roots = append(roots, c)
			continue
		}
		if _, ok := collection.ByID(all, c.ParentID); !ok {
			roots = append(roots, c)
		}
	}
	sort.SliceStable(roots, func(i, j int) bool {
		return strings.Compare(roots[i].Name, roots[j].Name) < 0
	})
	return roots
}

// Descendants returns the ids of every collection reachable below rootID.
// Cycle-safe.
func Descendants(all []collection.Collection, rootID string) map[string]bool {
	out := map[string]bool{}
	if rootID == "" {
		return out
	}
	queue := []string{rootID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, c := range all {
			if c.ParentID == id && !out[c.ID] {
				out[c.ID] = true
				queue = append(queue, c.ID)
			}
		}
	}
	return out
}

// ParentCandidates lists the collections that may legally become c's parent:
// everything except c itself and c's descendants. Excluding descendants keeps
// every reparent acyclic, not just the direct self-parent case.
func ParentCandidates(all []collection.Collection, c collection.Collection) []collection.Collection {
	below := Descendants(all, c.ID)
	candidates := make([]collection.Collection, 0, len(all))
	for _, candidate := range all {
		if candidate.ID == c.ID || below[candidate.ID] {
			continue
		}
		candidates = append(candidates, candidate)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return strings.Compare(candidates[i].Name, candidates[j].Name) < 0
	})
	return candidates
}

// ValidateParent checks that assigning parentID to childID keeps the forest
// acyclic. The ancestor chain of the proposed parent must terminate without
// passing through the child.
func ValidateParent(all []collection.Collection, childID, parentID string) error {
	if parentID == "" {
		return nil
	}
	if parentID == childID {
		return fmt.Errorf("tree: collection %q cannot be its own parent", childID)
	}
	visited := map[string]bool{}
	current := parentID
	for current != "" {
		if current == childID {
			return fmt.Errorf("tree: parent %q is a descendant of %q", parentID, childID)
		}
		if visited[current] {
			// Pre-existing cycle above the proposed parent; refuse to extend it.
			return fmt.Errorf("tree: ancestor chain of %q does not terminate", parentID)
		}
		visited[current] = true
		next, ok := collection.ByID(all, current)
		if !ok {
			break
		}
		current = next.ParentID
	}
	return nil
}
