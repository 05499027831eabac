// Package gallerypane renders the image list of a collection and lets the
// user pick a cover. The actual save is the app's job.
package gallerypane

import (
	"github.com/charmbracelet/bubbles/v2/list"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/shelf/pkg/collection"
	"tableflip.dev/shelf/pkg/tui/theme"
)

// SetCoverMsg asks the app to persist a new cover image.
type SetCoverMsg struct {
	Collection collection.Collection
	Image      string
}

// CloseMsg closes the pane.
type CloseMsg struct{}

type imageItem struct {
	ref   string
	cover bool
}

func (i imageItem) Title() string {
	if i.cover {
		return "★ " + i.ref
	}
	return i.ref
}
func (i imageItem) Description() string { return "" }
func (i imageItem) FilterValue() string { return i.ref }

// Model is the gallery pane component.
type Model struct {
	theme  theme.Theme
	record collection.Collection
	images list.Model
}

// NewModel builds the pane for one collection's gallery.
func NewModel(record collection.Collection) *Model {
	items := make([]list.Item, 0, len(record.Images))
	for _, ref := range record.Images {
		items = append(items, imageItem{ref: ref, cover: ref == record.CoverImage})
	}

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New(items, d, 60, 16)
	l.Title = record.Name + " gallery"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	return &Model{
		theme:  theme.Default(),
		record: record,
		images: l,
	}
}

// SetSize updates the pane dimensions.
func (m *Model) SetSize(width, height int) {
	if width > 4 {
		width -= 4
	}
	if height > 4 {
		height -= 4
	}
	m.images.SetSize(width, height)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles cover selection and closing.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			item, ok := m.images.SelectedItem().(imageItem)
			if !ok {
				return m, nil
			}
			record := m.record
			return m, func() tea.Msg {
				return SetCoverMsg{Collection: record, Image: item.ref}
			}
		case "esc", "q":
			return m, func() tea.Msg { return CloseMsg{} }
		}
	}

	var cmd tea.Cmd
	m.images, cmd = m.images.Update(msg)
	return m, cmd
}

// View renders the framed image list.
func (m *Model) View() string {
	body := m.images.View()
	help := m.theme.Help.Render("enter set cover · esc close")
	return m.theme.DrawerFrame.Render(body + "\n" + help)
}
