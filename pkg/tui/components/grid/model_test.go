package grid

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/shelf/pkg/collection"
)

func press(m *Model, keys ...string) tea.Cmd {
	var last tea.Cmd
	for _, k := range keys {
		_, last = m.Update(keyMsg(k))
	}
	return last
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	return tea.KeyPressMsg{Text: k, Code: rune(k[0])}
}

func testData() []collection.Collection {
	return []collection.Collection{
		{ID: "root", Name: "Prints", ModelIDs: []string{"m1", "m2", "m3"}},
		{ID: "boats", Name: "Boats", ParentID: "root"},
	}
}

func TestOpenEmitsMsg(t *testing.T) {
	m := NewModel()
	m.SetCollections(testData())

	cmd := press(m, "enter")
	if cmd == nil {
		t.Fatalf("expected a command from enter on a collection row")
	}
	msg, ok := cmd().(OpenMsg)
	if !ok {
		t.Fatalf("expected OpenMsg, got %T", cmd())
	}
	if msg.Collection.ID != "root" {
		t.Fatalf("expected to open the first root, got %q", msg.Collection.ID)
	}
}

func TestSelectionFlow(t *testing.T) {
	m := NewModel()
	m.SetCollections(testData())
	m.SetActive(collection.Collection{ID: "root", Name: "Prints", ModelIDs: []string{"m1", "m2", "m3"}})

	// One child row ("Boats") precedes the three model rows.
	press(m, "v")       // selection mode on
	press(m, "down")    // cursor on m1
	press(m, "space")   // select m1
	press(m, "down", "down") // cursor on m3
	press(m, "V")       // range select to m3

	sel := m.Selection()
	for _, id := range []string{"m1", "m2", "m3"} {
		if !sel.Selected(id) {
			t.Fatalf("%s should be selected", id)
		}
	}

	cmd := press(m, "c")
	if cmd == nil {
		t.Fatalf("expected collect command")
	}
	msg, ok := cmd().(CreateFromSelectionMsg)
	if !ok || len(msg.Members) != 3 {
		t.Fatalf("expected 3 members in create msg, got %#v", cmd())
	}

	press(m, "esc")
	if sel.Active() || sel.Count() != 0 {
		t.Fatalf("esc should exit selection mode and clear")
	}
}

func TestSpaceIgnoredOutsideSelectionMode(t *testing.T) {
	m := NewModel()
	m.SetActive(collection.Collection{ID: "c", Name: "C", ModelIDs: []string{"m1"}})

	press(m, "space")
	if m.Selection().Count() != 0 {
		t.Fatalf("selection should require selection mode")
	}
}
