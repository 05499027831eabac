package editdrawer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/shelf/pkg/collection"
)

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestSubmitRequiresName(t *testing.T) {
	m := NewCreate(nil, nil)

	_, cmd := m.Update(enter())
	if cmd != nil {
		t.Fatalf("empty name must not produce a save command")
	}
	if m.Error() == "" {
		t.Fatalf("expected a validation message")
	}
}

func TestSubmitCreateDraft(t *testing.T) {
	m := NewCreate(nil, []string{"m1", "m2"})
	m.name.SetValue("Boats")
	m.tags.SetValue("sail, hull")

	_, cmd := m.Update(enter())
	if cmd == nil {
		t.Fatalf("expected save command")
	}
	msg, ok := cmd().(SaveMsg)
	if !ok || !msg.IsNew {
		t.Fatalf("expected create SaveMsg, got %#v", cmd())
	}
	if msg.Draft.Name != "Boats" || len(msg.Draft.Tags) != 2 {
		t.Fatalf("draft fields wrong: %+v", msg.Draft)
	}
	if len(msg.Members) != 2 {
		t.Fatalf("selection members must ride along: %v", msg.Members)
	}
}

func TestEditOverlaysOnly(t *testing.T) {
	original := collection.Collection{ID: "c1", Name: "Boats", ModelIDs: []string{"m1"}}
	m := NewEdit([]collection.Collection{original}, original)
	m.description.SetValue("updated")

	_, cmd := m.Update(enter())
	msg, ok := cmd().(SaveMsg)
	if !ok || msg.IsNew {
		t.Fatalf("expected edit SaveMsg")
	}
	if msg.Original.ID != "c1" {
		t.Fatalf("original record must ride along")
	}
	if msg.Edits.Description == nil || *msg.Edits.Description != "updated" {
		t.Fatalf("description edit missing")
	}
	// ModelIDs are not a form field; the reconciler carries them forward.
}

func TestParentSelectorExcludesSelfAndDescendants(t *testing.T) {
	all := []collection.Collection{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B", ParentID: "a"},
		{ID: "other", Name: "Other"},
	}
	m := NewEdit(all, all[0])

	for _, c := range m.parentOptions {
		if c.ID == "a" || c.ID == "b" {
			t.Fatalf("parent option %q must be excluded", c.ID)
		}
	}
	if len(m.parentOptions) != 1 {
		t.Fatalf("expected only 'other' as candidate, got %v", m.parentOptions)
	}
}

func TestParentCycling(t *testing.T) {
	all := []collection.Collection{
		{ID: "x", Name: "X"},
	}
	m := NewCreate(all, nil)
	if m.ParentLabel() != "(root)" {
		t.Fatalf("default parent should be root")
	}
	m.cycleParent(true)
	if m.ParentLabel() != "X" {
		t.Fatalf("expected X, got %s", m.ParentLabel())
	}
	m.cycleParent(true)
	if m.ParentLabel() != "(root)" {
		t.Fatalf("cycling should wrap to root")
	}
}
