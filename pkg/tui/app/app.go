// Package app wires the TUI together: the grid, the edit drawer, the
// printer status line, and the reconcile/refresh loop.
package app

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/shelf/pkg/api"
	"tableflip.dev/shelf/pkg/cache"
	"tableflip.dev/shelf/pkg/collection"
	"tableflip.dev/shelf/pkg/events"
	"tableflip.dev/shelf/pkg/reconcile"
	"tableflip.dev/shelf/pkg/gallery"
	"tableflip.dev/shelf/pkg/tui/components/editdrawer"
	"tableflip.dev/shelf/pkg/tui/components/gallerypane"
	"tableflip.dev/shelf/pkg/tui/components/grid"
	"tableflip.dev/shelf/pkg/tui/theme"
)

type collectionsLoadedMsg struct {
	all []collection.Collection
}

type loadFailedMsg struct {
	err error
}

type saveFailedMsg struct {
	err error
}

type broadcastMsg struct {
	event events.Event
}

type coverSavedMsg struct{}

// Deps are the collaborators the app needs.
type Deps struct {
	Client      api.Client
	Reconciler  *reconcile.Reconciler
	Broadcaster *events.Broadcaster
	Cache       *cache.Cache
}

// Model is the root TUI model.
type Model struct {
	deps  Deps
	theme theme.Theme

	grid    *grid.Model
	drawer  *editdrawer.Model
	gallery *gallerypane.Model

	all     []collection.Collection
	printer api.PrinterStatus
	notice  string

	eventCh chan events.Event
	cancel  func()

	width  int
	height int
}

// New constructs the app and subscribes it to the broadcaster.
func New(deps Deps) *Model {
	m := &Model{
		deps:    deps,
		theme:   theme.Default(),
		grid:    grid.NewModel(),
		eventCh: make(chan events.Event, 64),
	}
	if deps.Broadcaster != nil {
		m.cancel = deps.Broadcaster.Subscribe(func(e events.Event) {
			select {
			case m.eventCh <- e:
			default:
				// Drop rather than block the publisher.
			}
		})
	}
	return m
}

// Close unsubscribes from the broadcaster.
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.waitEventCmd())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.grid.SetSize(msg.Width, msg.Height-2)
		if m.drawer != nil {
			m.drawer.SetSize(msg.Width, msg.Height)
		}
		if m.gallery != nil {
			m.gallery.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case collectionsLoadedMsg:
		m.all = msg.all
		m.grid.SetCollections(msg.all)
		// Keep the active node fresh after a refresh.
		if active := m.grid.Active(); active.ID != "" {
			if updated, ok := collection.ByID(msg.all, active.ID); ok {
				m.grid.SetActive(updated)
			} else {
				m.grid.SetActive(collection.Collection{})
			}
		}
		if m.deps.Cache != nil {
			_ = m.deps.Cache.Set(msg.all)
		}
		return m, nil

	case loadFailedMsg:
		m.notice = fmt.Sprintf("load failed: %v", msg.err)
		return m, nil

	case saveFailedMsg:
		m.notice = fmt.Sprintf("save failed: %v", msg.err)
		return m, nil

	case broadcastMsg:
		return m.handleBroadcast(msg)

	case grid.OpenMsg:
		m.grid.SetActive(msg.Collection)
		return m, nil

	case grid.EditMsg:
		m.drawer = editdrawer.NewEdit(m.all, msg.Collection)
		m.drawer.SetSize(m.width, m.height)
		return m, m.drawer.Init()

	case grid.CreateFromSelectionMsg:
		m.drawer = editdrawer.NewCreate(m.all, msg.Members)
		m.drawer.SetSize(m.width, m.height)
		return m, m.drawer.Init()

	case editdrawer.SaveMsg:
		m.drawer = nil
		return m, m.saveCmd(msg)

	case editdrawer.CancelMsg:
		m.drawer = nil
		return m, nil

	case gallerypane.SetCoverMsg:
		m.gallery = nil
		return m, m.setCoverCmd(msg)

	case gallerypane.CloseMsg:
		m.gallery = nil
		return m, nil

	case coverSavedMsg:
		return m, m.loadCmd()

	case tea.KeyMsg:
		if m.drawer == nil && m.gallery == nil {
			switch msg.String() {
			case "q", "ctrl+c":
				m.Close()
				return m, tea.Quit
			case "r":
				return m, m.loadCmd()
			case "g":
				if active := m.grid.Active(); active.ID != "" {
					m.gallery = gallerypane.NewModel(active)
					m.gallery.SetSize(m.width, m.height)
					return m, m.gallery.Init()
				}
			}
		}
	}

	if m.drawer != nil {
		_, cmd := m.drawer.Update(msg)
		return m, cmd
	}
	if m.gallery != nil {
		_, cmd := m.gallery.Update(msg)
		return m, cmd
	}
	_, cmd := m.grid.Update(msg)
	return m, cmd
}

func (m *Model) handleBroadcast(msg broadcastMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.waitEventCmd()}
	switch e := msg.event.(type) {
	case events.CollectionChanged, events.CollectionsInvalidated:
		// Refresh from the boundary rather than patching in place.
		cmds = append(cmds, m.loadCmd())
	case events.PrinterStatusUpdated:
		m.printer = e.Status
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	switch {
	case m.drawer != nil:
		b.WriteString(m.drawer.View())
	case m.gallery != nil:
		b.WriteString(m.gallery.View())
	default:
		b.WriteString(m.grid.View())
	}
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m *Model) statusLine() string {
	parts := make([]string, 0, 2)
	if m.printer.State != "" {
		parts = append(parts, fmt.Sprintf("printer: %s %.0f%%", m.printer.State, m.printer.Progress))
	}
	if m.notice != "" {
		parts = append(parts, m.theme.Error.Render(m.notice))
	}
	return m.theme.Help.Render(strings.Join(parts, "  ·  "))
}

func (m *Model) loadCmd() tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		all, err := client.ListCollections(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return collectionsLoadedMsg{all: all}
	}
}

func (m *Model) saveCmd(msg editdrawer.SaveMsg) tea.Cmd {
	r := m.deps.Reconciler
	all := m.all
	return func() tea.Msg {
		var err error
		if msg.IsNew {
			_, err = r.CreateNew(context.Background(), msg.Draft, msg.Members)
		} else {
			_, err = r.Edit(context.Background(), all, msg.Original, msg.Edits)
		}
		if err != nil {
			return saveFailedMsg{err: err}
		}
		// The reconciler published the change; the broadcast loop refreshes.
		return nil
	}
}

func (m *Model) setCoverCmd(msg gallerypane.SetCoverMsg) tea.Cmd {
	client := m.deps.Client
	return func() tea.Msg {
		mgr := gallery.NewManager(client, msg.Collection, nil)
		if _, err := mgr.SetCover(context.Background(), msg.Image); err != nil {
			return saveFailedMsg{err: err}
		}
		return coverSavedMsg{}
	}
}

// Run launches the interactive TUI program.
func Run(deps Deps) error {
	m := New(deps)
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) waitEventCmd() tea.Cmd {
	ch := m.eventCh
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return broadcastMsg{event: e}
	}
}
