// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/docklayout/internal/application/usecase"
	"github.com/bnema/docklayout/internal/cli/styles"
	"github.com/bnema/docklayout/internal/domain/entity"
	"github.com/bnema/docklayout/internal/logging"
)

// LayoutsModel is the interactive browser over saved layouts. Enter
// previews the selected layout as a tree.
type LayoutsModel struct {
	help    help.Model
	keys    layoutsKeyMap
	confirm *styles.ConfirmModel

	layouts     []entity.LayoutInfo
	selectedIdx int
	preview     string
	previewName entity.LayoutName
	width       int
	height      int
	err         error
	status      string

	ctx   context.Context
	uc    *usecase.ManageLayoutsUseCase
	theme *styles.Theme
}

type layoutsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Preview key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k layoutsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Preview, k.Delete, k.Quit}
}

func (k layoutsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Preview},
		{k.Delete, k.Refresh},
		{k.Help, k.Quit},
	}
}

func defaultLayoutsKeyMap() layoutsKeyMap {
	return layoutsKeyMap{
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Preview: key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "preview")),
		Delete:  key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x", "delete")),
		Refresh: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// NewLayoutsModel creates the browser.
func NewLayoutsModel(ctx context.Context, theme *styles.Theme, layouts *usecase.ManageLayoutsUseCase) LayoutsModel {
	return LayoutsModel{
		help:   help.New(),
		keys:   defaultLayoutsKeyMap(),
		width:  80,
		height: 24,
		ctx:    logging.WithComponent(ctx, "layouts-browser"),
		uc:     layouts,
		theme:  theme,
	}
}

type layoutsLoadedMsg struct {
	layouts []entity.LayoutInfo
	err     error
}

type layoutDeletedMsg struct {
	name entity.LayoutName
	err  error
}

type layoutPreviewMsg struct {
	name entity.LayoutName
	tree string
	err  error
}

// Init implements tea.Model.
func (m LayoutsModel) Init() tea.Cmd {
	return m.loadLayouts
}

func (m LayoutsModel) loadLayouts() tea.Msg {
	infos, err := m.uc.List(m.ctx)
	if err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("failed to list layouts")
	}
	return layoutsLoadedMsg{layouts: infos, err: err}
}

func (m LayoutsModel) previewLayout(name entity.LayoutName) tea.Cmd {
	return func() tea.Msg {
		r, err := m.uc.Load(m.ctx, name)
		if err != nil {
			return layoutPreviewMsg{name: name, err: err}
		}
		return layoutPreviewMsg{name: name, tree: m.theme.RenderLayout(string(name), r)}
	}
}

func (m LayoutsModel) deleteLayout(name entity.LayoutName) tea.Cmd {
	return func() tea.Msg {
		return layoutDeletedMsg{name: name, err: m.uc.Delete(m.ctx, name)}
	}
}

func (m LayoutsModel) selected() (entity.LayoutInfo, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.layouts) {
		return entity.LayoutInfo{}, false
	}
	return m.layouts[m.selectedIdx], true
}

// Update implements tea.Model.
func (m LayoutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.updateConfirm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case layoutsLoadedMsg:
		m.err = msg.err
		m.layouts = msg.layouts
		m.selectedIdx = min(m.selectedIdx, max(len(m.layouts)-1, 0))

	case layoutPreviewMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("cannot load %s: %v", msg.name, msg.err)
			m.preview = ""
			return m, nil
		}
		m.previewName = msg.name
		m.preview = msg.tree

	case layoutDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("deleted %s", msg.name)
		if m.previewName == msg.name {
			m.preview = ""
		}
		return m, m.loadLayouts

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m LayoutsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.layouts)-1 {
			m.selectedIdx++
		}
	case key.Matches(msg, m.keys.Preview):
		if info, ok := m.selected(); ok {
			if m.preview != "" && m.previewName == info.Name {
				m.preview = ""
				return m, nil
			}
			return m, m.previewLayout(info.Name)
		}
	case key.Matches(msg, m.keys.Delete):
		if info, ok := m.selected(); ok {
			c := styles.NewConfirm(m.theme, fmt.Sprintf("Delete layout %s?", info.Name))
			m.confirm = &c
		}
	case key.Matches(msg, m.keys.Refresh):
		m.status = ""
		return m, m.loadLayouts
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m LayoutsModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	c, cmd := m.confirm.Update(msg)
	if !c.Done() {
		m.confirm = &c
		return m, cmd
	}
	m.confirm = nil
	info, ok := m.selected()
	if !c.Result() || !ok {
		return m, nil
	}
	return m, m.deleteLayout(info.Name)
}

// View implements tea.Model.
func (m LayoutsModel) View() string {
	t := m.theme
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	var b strings.Builder
	b.WriteString(t.Title.Render("Saved layouts"))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(t.ErrorStyle.Render(m.err.Error()))
	case len(m.layouts) == 0:
		b.WriteString(t.Subtle.Render("No saved layouts."))
	default:
		b.WriteString(m.renderList())
	}

	if m.preview != "" {
		b.WriteString("\n\n")
		b.WriteString(m.preview)
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(t.WarningStyle.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m LayoutsModel) renderList() string {
	t := m.theme
	lines := make([]string, 0, len(m.layouts))
	for i, info := range m.layouts {
		row := fmt.Sprintf("%-24s %s %s %s",
			info.Name,
			t.CountBadge(info.ContentCount, "item"),
			t.CountBadge(info.FloatingCount, "window"),
			t.TimeBadge(info.SavedAt),
		)
		style := t.ListItem
		if i == m.selectedIdx {
			style = t.ListItemSelected
		}
		lines = append(lines, style.Render(row))
	}
	return strings.Join(lines, "\n")
}
