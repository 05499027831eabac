// Package selection tracks which members are picked inside a listing so
// bulk operations (attach, remove, download) can consume a stable snapshot.
package selection

import "sort"

// Controller maintains the selected member ids for the currently displayed
// listing. Range semantics operate over the display order handed to
// SetVisible, so a filtered view only ever ranges over what the user sees.
type Controller struct {
	active   bool
	selected map[string]bool
	visible  []string
	anchor   int // index into visible, -1 when unset
}

// NewController returns an empty controller outside selection mode.
func NewController() *Controller {
	return &Controller{
		selected: map[string]bool{},
		anchor:   -1,
	}
}

// Active reports whether selection mode is on.
func (c *Controller) Active() bool {
	return c.active
}

// Enter switches selection mode on.
func (c *Controller) Enter() {
	c.active = true
}

// Exit leaves selection mode, clearing the selection and the range anchor.
func (c *Controller) Exit() {
	c.active = false
	c.selected = map[string]bool{}
	c.anchor = -1
}

// SetVisible replaces the display-ordered id list ranges operate over.
// The anchor is dropped because indices from the old order are meaningless.
func (c *Controller) SetVisible(ids []string) {
	c.visible = append([]string(nil), ids...)
	c.anchor = -1
}

// ToggleOptions carries the modifier state of the triggering input.
type ToggleOptions struct {
	Shift bool
	Index int
}

// Toggle flips the selection state of id. With Shift and a prior anchor the
// inclusive range between anchor and Index takes on the anchor item's
// selection state, regardless of what the items in between were. A plain
// toggle makes Index the new anchor.
func (c *Controller) Toggle(id string, opts ToggleOptions) {
	if opts.Shift && c.anchor >= 0 && c.anchor < len(c.visible) {
		lo, hi := c.anchor, opts.Index
		if lo > hi {
			lo, hi = hi, lo
		}
		if hi >= len(c.visible) {
			hi = len(c.visible) - 1
		}
		value := c.selected[c.visible[c.anchor]]
		for i := lo; i <= hi; i++ {
			c.set(c.visible[i], value)
		}
		return
	}

	c.set(id, !c.selected[id])
	if opts.Index >= 0 && opts.Index < len(c.visible) {
		c.anchor = opts.Index
	}
}

// SelectAll selects every currently visible id. Ids outside the visible set
// are untouched.
func (c *Controller) SelectAll() {
	for _, id := range c.visible {
		c.selected[id] = true
	}
}

// DeselectAll clears the selection of every currently visible id only.
func (c *Controller) DeselectAll() {
	for _, id := range c.visible {
		delete(c.selected, id)
	}
}

// Selected reports whether id is currently selected.
func (c *Controller) Selected(id string) bool {
	return c.selected[id]
}

// Count returns the number of selected ids.
func (c *Controller) Count() int {
	return len(c.selected)
}

// Snapshot returns the selected ids as an independent slice: visible ids in
// display order first, then any selected ids no longer visible, sorted. The
// reconciler reads this copy and never mutates the live set.
func (c *Controller) Snapshot() []string {
	out := make([]string, 0, len(c.selected))
	seen := map[string]bool{}
	for _, id := range c.visible {
		if c.selected[id] {
			out = append(out, id)
			seen[id] = true
		}
	}
	rest := make([]string, 0)
	for id := range c.selected {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func (c *Controller) set(id string, value bool) {
	if id == "" {
		return
	}
	if value {
		c.selected[id] = true
		return
	}
	delete(c.selected, id)
}
