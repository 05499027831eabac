// Package grid renders the collection browser: breadcrumb header, child
// collections of the active node, and the active node's member models with
// a selection mode for bulk operations.
package grid

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/shelf/pkg/collection"
	"tableflip.dev/shelf/pkg/collection/tree"
	"tableflip.dev/shelf/pkg/selection"
	"tableflip.dev/shelf/pkg/tui/theme"
)

// OpenMsg asks the app to descend into a collection.
type OpenMsg struct {
	Collection collection.Collection
}

// EditMsg asks the app to open the edit drawer for a collection.
type EditMsg struct {
	Collection collection.Collection
}

// CreateFromSelectionMsg asks the app to open the create drawer seeded with
// the selected member ids.
type CreateFromSelectionMsg struct {
	Members []string
}

type rowKind int

const (
	rowCollection rowKind = iota
	rowModel
)

type row struct {
	kind rowKind
	col  collection.Collection
	id   string // model id for rowModel
}

// Model is the grid component.
type Model struct {
	theme theme.Theme

	all    []collection.Collection
	active collection.Collection // zero value = forest roots

	rows   []row
	cursor int

	sel *selection.Controller

	width  int
	height int
}

// NewModel constructs an empty grid.
func NewModel() *Model {
	return &Model{
		theme: theme.Default(),
		sel:   selection.NewController(),
	}
}

// SetCollections replaces the flat list and rebuilds the rows.
func (m *Model) SetCollections(all []collection.Collection) {
	m.all = all
	m.rebuild()
}

// SetActive descends into (or out of) a collection.
func (m *Model) SetActive(active collection.Collection) {
	m.active = active
	m.cursor = 0
	m.rebuild()
}

// Active returns the currently displayed collection (zero value at roots).
func (m *Model) Active() collection.Collection {
	return m.active
}

// Selection exposes the controller for the app's bulk operations.
func (m *Model) Selection() *selection.Controller {
	return m.sel
}

// SetSize updates the rendered dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles navigation and selection keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "enter":
		if r, ok := m.current(); ok && r.kind == rowCollection {
			col := r.col
			return func() tea.Msg { return OpenMsg{Collection: col} }
		}
	case "backspace", "esc":
		if m.sel.Active() {
			m.sel.Exit()
			return nil
		}
		if m.active.ID != "" {
			parent, _ := collection.ByID(m.all, m.active.ParentID)
			return func() tea.Msg { return OpenMsg{Collection: parent} }
		}
	case "e":
		if r, ok := m.current(); ok && r.kind == rowCollection {
			col := r.col
			return func() tea.Msg { return EditMsg{Collection: col} }
		}
		if m.active.ID != "" {
			col := m.active
			return func() tea.Msg { return EditMsg{Collection: col} }
		}
	case "v":
		if m.sel.Active() {
			m.sel.Exit()
		} else {
			m.sel.Enter()
		}
	case "space", " ":
		m.toggleAtCursor(false)
	case "V":
		m.toggleAtCursor(true)
	case "a":
		if m.sel.Active() {
			m.sel.SelectAll()
		}
	case "A":
		if m.sel.Active() {
			m.sel.DeselectAll()
		}
	case "c":
		if m.sel.Active() && m.sel.Count() > 0 {
			members := m.sel.Snapshot()
			return func() tea.Msg { return CreateFromSelectionMsg{Members: members} }
		}
	}
	return nil
}

func (m *Model) toggleAtCursor(shift bool) {
	if !m.sel.Active() {
		return
	}
	r, ok := m.current()
	if !ok || r.kind != rowModel {
		return
	}
	m.sel.Toggle(r.id, selection.ToggleOptions{Shift: shift, Index: m.modelIndex(m.cursor)})
}

// View renders the breadcrumb, children, and member rows.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewBreadcrumb())
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(m.theme.Badge.Render(" empty"))
		b.WriteString("\n")
	}

	for i, r := range m.rows {
		b.WriteString(m.viewRow(i, r))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.helpLine()))
	return b.String()
}

func (m *Model) viewBreadcrumb() string {
	if m.active.ID == "" {
		return m.theme.BreadcrumbTail.Render("Collections")
	}
	path := tree.Breadcrumbs(m.all, m.active)
	names := make([]string, 0, len(path))
	for _, c := range path[:len(path)-1] {
		names = append(names, c.Name)
	}
	head := ""
	if len(names) > 0 {
		head = m.theme.Breadcrumb.Render(strings.Join(names, " › ") + " › ")
	}
	return head + m.theme.BreadcrumbTail.Render(path[len(path)-1].Name)
}

func (m *Model) viewRow(i int, r row) string {
	cursor := "  "
	style := m.theme.Row
	if i == m.cursor {
		cursor = "❯ "
		style = m.theme.RowCursor
	}

	switch r.kind {
	case rowCollection:
		badge := m.theme.Badge.Render(fmt.Sprintf(" (%d models)", len(r.col.ModelIDs)))
		return cursor + style.Render("▸ "+r.col.Name) + badge
	default:
		mark := "  "
		if m.sel.Active() {
			if m.sel.Selected(r.id) {
				mark = m.theme.RowSelected.Render("◉ ")
			} else {
				mark = "○ "
			}
		}
		return cursor + mark + style.Render(r.id)
	}
}

func (m *Model) helpLine() string {
	if m.sel.Active() {
		return fmt.Sprintf("%d selected · space toggle · V range · a all · A none · c collect · v done", m.sel.Count())
	}
	return "enter open · backspace up · e edit · v select"
}

func (m *Model) rebuild() {
	m.rows = m.rows[:0]
	for _, c := range tree.Children(m.all, m.active.ID) {
		m.rows = append(m.rows, row{kind: rowCollection, col: c})
	}
	if m.active.ID == "" {
		for _, c := range tree.Roots(m.all) {
			m.rows = append(m.rows, row{kind: rowCollection, col: c})
		}
	}

	models := make([]string, 0, len(m.active.ModelIDs))
	for _, id := range m.active.ModelIDs {
		m.rows = append(m.rows, row{kind: rowModel, id: id})
		models = append(models, id)
	}
	m.sel.SetVisible(models)

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// current returns the row under the cursor.
func (m *Model) current() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// modelIndex converts a row index into an index within the visible model
// list the selection controller ranges over.
func (m *Model) modelIndex(rowIdx int) int {
	idx := -1
	for i := 0; i <= rowIdx && i < len(m.rows); i++ {
		if m.rows[i].kind == rowModel {
			idx++
		}
	}
	return idx
}
