package selection

import (
	"fmt"
	"reflect"
	"testing"
)

func visibleIDs(n int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, fmt.Sprintf("m%d", i))
	}
	return ids
}

func TestShiftRangeSelectsInclusive(t *testing.T) {
	c := NewController()
	c.Enter()
	ids := visibleIDs(10)
	c.SetVisible(ids)

	// Pre-select a couple inside the range; the range result must not depend
	// on their prior state.
	c.Toggle("m4", ToggleOptions{Index: 4})
	c.Toggle("m4", ToggleOptions{Index: 4}) // off again, anchor moves below

	c.Toggle("m2", ToggleOptions{Index: 2})
	c.Toggle("m7", ToggleOptions{Shift: true, Index: 7})

	for i := 2; i <= 7; i++ {
		if !c.Selected(ids[i]) {
			t.Fatalf("item %d should be selected", i)
		}
	}
	if c.Count() != 6 {
		t.Fatalf("expected exactly 6 selected, got %d", c.Count())
	}
}

func TestShiftRangeDeselects(t *testing.T) {
	c := NewController()
	c.Enter()
	c.SetVisible(visibleIDs(5))
	c.SelectAll()

	// Toggling m1 deselects it and anchors there; shift at 3 clears 1-3.
	c.Toggle("m1", ToggleOptions{Index: 1})
	c.Toggle("m3", ToggleOptions{Shift: true, Index: 3})

	want := []string{"m0", "m4"}
	if got := c.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestShiftWithoutAnchorTogglesAlone(t *testing.T) {
	c := NewController()
	c.Enter()
	c.SetVisible(visibleIDs(5))

	c.Toggle("m3", ToggleOptions{Shift: true, Index: 3})
	if c.Count() != 1 || !c.Selected("m3") {
		t.Fatalf("shift with no anchor should toggle the single item")
	}
}

func TestSelectAllScopedToVisible(t *testing.T) {
	c := NewController()
	c.Enter()
	c.SetVisible(visibleIDs(10))
	c.Toggle("m0", ToggleOptions{Index: 0})

	// Filter narrows the view; select-all must only touch what is shown.
	c.SetVisible([]string{"m5", "m6"})
	c.SelectAll()

	if !c.Selected("m0") {
		t.Fatalf("selection outside the filter must survive")
	}
	if !c.Selected("m5") || !c.Selected("m6") {
		t.Fatalf("visible items should be selected")
	}
	if c.Selected("m1") {
		t.Fatalf("hidden item selected by select-all")
	}

	c.DeselectAll()
	if c.Selected("m5") || c.Selected("m6") {
		t.Fatalf("deselect-all should clear visible items")
	}
	if !c.Selected("m0") {
		t.Fatalf("deselect-all must not touch hidden items")
	}
}

func TestExitClearsEverything(t *testing.T) {
	c := NewController()
	c.Enter()
	c.SetVisible(visibleIDs(3))
	c.SelectAll()
	c.Exit()

	if c.Active() || c.Count() != 0 {
		t.Fatalf("exit should clear mode and selection")
	}

	// Anchor is gone too: a shift toggle right after re-entering acts alone.
	c.Enter()
	c.SetVisible(visibleIDs(3))
	c.Toggle("m2", ToggleOptions{Shift: true, Index: 2})
	if c.Count() != 1 {
		t.Fatalf("anchor leaked across exit")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	c := NewController()
	c.SetVisible(visibleIDs(3))
	c.Toggle("m1", ToggleOptions{Index: 1})

	snap := c.Snapshot()
	snap[0] = "mutated"
	if !c.Selected("m1") {
		t.Fatalf("mutating the snapshot must not affect the controller")
	}
}
