// Package editdrawer renders the create/edit form for a collection. It
// produces an intent message on save; the app owns the actual reconcile.
package editdrawer

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/shelf/pkg/collection"
	"tableflip.dev/shelf/pkg/collection/tree"
	"tableflip.dev/shelf/pkg/reconcile"
	"tableflip.dev/shelf/pkg/tui/theme"
)

// SaveMsg carries the finished intent back to the app.
type SaveMsg struct {
	// IsNew distinguishes create-new from edit-existing.
	IsNew bool
	// Original is the record being edited (zero for create).
	Original collection.Collection
	// Draft is the create draft (only meaningful when IsNew).
	Draft collection.Collection
	// Edits are the field overlays (only meaningful when !IsNew).
	Edits reconcile.FieldEdits
	// Members seed a new collection from the grid selection.
	Members []string
}

// CancelMsg closes the drawer without saving.
type CancelMsg struct{}

type focusField int

const (
	fieldName focusField = iota
	fieldCategory
	fieldTags
	fieldDescription
	fieldParent
	fieldCount
)

// Model is the drawer component.
type Model struct {
	theme theme.Theme

	isNew    bool
	original collection.Collection
	members  []string

	name        textinput.Model
	category    textinput.Model
	tags        textinput.Model
	description textinput.Model

	parentOptions []collection.Collection
	parentIndex   int // 0 = root (no parent)

	focus    focusField
	errorMsg string
	width    int
}

// NewCreate opens the drawer for a new collection seeded with members.
func NewCreate(all []collection.Collection, members []string) *Model {
	m := newModel()
	m.isNew = true
	m.members = members
	m.parentOptions = tree.ParentCandidates(all, collection.Collection{})
	return m
}

// NewEdit opens the drawer loaded with an existing record. The parent
// selector never offers the collection itself or its descendants.
func NewEdit(all []collection.Collection, original collection.Collection) *Model {
	m := newModel()
	m.original = original
	m.parentOptions = tree.ParentCandidates(all, original)

	m.name.SetValue(original.Name)
	m.category.SetValue(original.Category)
	m.tags.SetValue(strings.Join(original.Tags, ", "))
	m.description.SetValue(original.Description)

	for i, c := range m.parentOptions {
		if c.ID == original.ParentID {
			m.parentIndex = i + 1
			break
		}
	}
	return m
}

func newModel() *Model {
	name := textinput.New()
	name.Placeholder = "Name"
	name.Prompt = ""
	name.Focus()

	category := textinput.New()
	category.Placeholder = collection.DefaultCategory
	category.Prompt = ""

	tags := textinput.New()
	tags.Placeholder = "tag, tag"
	tags.Prompt = ""

	description := textinput.New()
	description.Placeholder = "Description"
	description.Prompt = ""

	return &Model{
		theme:       theme.Default(),
		name:        name,
		category:    category,
		tags:        tags,
		description: description,
	}
}

// SetSize updates the drawer width.
func (m *Model) SetSize(width, _ int) {
	m.width = width
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return textinput.Blink }

// Update handles focus movement, parent cycling, and submission.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}

	switch key.String() {
	case "tab":
		m.setFocus((m.focus + 1) % fieldCount)
	case "shift+tab":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case "left", "right":
		if m.focus == fieldParent {
			m.cycleParent(key.String() == "right")
			return m, nil
		}
		return m, m.updateFocused(msg)
	case "enter":
		if cmd := m.submit(); cmd != nil {
			return m, cmd
		}
	case "esc":
		return m, func() tea.Msg { return CancelMsg{} }
	default:
		return m, m.updateFocused(msg)
	}
	return m, nil
}

func (m *Model) submit() tea.Cmd {
	name := strings.TrimSpace(m.name.Value())
	if name == "" {
		m.errorMsg = "name is required"
		return nil
	}
	m.errorMsg = ""

	parentID := ""
	if m.parentIndex > 0 && m.parentIndex <= len(m.parentOptions) {
		parentID = m.parentOptions[m.parentIndex-1].ID
	}
	tags := splitTags(m.tags.Value())
	category := strings.TrimSpace(m.category.Value())
	description := m.description.Value()

	if m.isNew {
		draft := collection.Collection{
			Name:        name,
			ParentID:    parentID,
			Category:    category,
			Tags:        tags,
			Description: description,
		}
		members := m.members
		return func() tea.Msg {
			return SaveMsg{IsNew: true, Draft: draft, Members: members}
		}
	}

	original := m.original
	edits := reconcile.FieldEdits{
		Name:        &name,
		Category:    &category,
		Description: &description,
		Tags:        &tags,
		ParentID:    &parentID,
	}
	return func() tea.Msg {
		return SaveMsg{Original: original, Edits: edits}
	}
}

func (m *Model) cycleParent(forward bool) {
	n := len(m.parentOptions) + 1 // +1 for the root option
	if forward {
		m.parentIndex = (m.parentIndex + 1) % n
	} else {
		m.parentIndex = (m.parentIndex + n - 1) % n
	}
}

func (m *Model) setFocus(f focusField) {
	m.focus = f
	for i, input := range m.inputs() {
		if focusField(i) == f {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

func (m *Model) inputs() []*textinput.Model {
	return []*textinput.Model{&m.name, &m.category, &m.tags, &m.description}
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	inputs := m.inputs()
	if int(m.focus) >= len(inputs) {
		return nil
	}
	var cmd tea.Cmd
	*inputs[m.focus], cmd = inputs[m.focus].Update(msg)
	return cmd
}

// ParentLabel returns the currently chosen parent's display name.
func (m *Model) ParentLabel() string {
	if m.parentIndex == 0 {
		return "(root)"
	}
	return m.parentOptions[m.parentIndex-1].Name
}

// Error returns the current validation message, empty when none.
func (m *Model) Error() string {
	return m.errorMsg
}

// View renders the drawer.
func (m *Model) View() string {
	title := "Edit collection"
	if m.isNew {
		title = "New collection"
	}

	var b strings.Builder
	b.WriteString(m.theme.DrawerTitle.Render(title))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		field focusField
		view  string
	}{
		{"Name", fieldName, m.name.View()},
		{"Category", fieldCategory, m.category.View()},
		{"Tags", fieldTags, m.tags.View()},
		{"Description", fieldDescription, m.description.View()},
		{"Parent", fieldParent, m.ParentLabel()},
	}
	for _, r := range rows {
		label := m.theme.FieldLabel.Render(r.label + ": ")
		if m.focus == r.field {
			label = m.theme.FieldFocused.Render(r.label + ": ")
		}
		b.WriteString(label + r.view + "\n")
	}

	if m.errorMsg != "" {
		b.WriteString("\n" + m.theme.Error.Render(m.errorMsg) + "\n")
	}

	help := "tab next field · ←/→ parent · enter save · esc cancel"
	b.WriteString("\n" + m.theme.Help.Render(help))

	body := b.String()
	if m.width > 4 {
		body = wordwrap.String(body, m.width-4)
	}
	return m.theme.DrawerFrame.Render(body)
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}
