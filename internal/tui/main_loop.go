// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/models"
)

const maxTitleWidth = 60

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx       context.Context
	adapter   adapter.TodoAdapter
	username  string
	buildInfo models.AppBuildInfo

	filters   []models.Filter
	filterIdx int
	items     []models.TodoResponse
	idx       int

	loading bool
	spinner spinner.Model
	status  string
	errMsg  string

	adding        bool
	titleInput    textinput.Model
	confirmDelete bool
	showBuildInfo bool

	logout         bool
	sessionExpired bool
}

func newMainLoopModel(ctx context.Context, todoAdapter adapter.TodoAdapter, username string, buildInfo models.AppBuildInfo) mainLoopModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "What needs to be done?"
	titleInput.CharLimit = 256
	titleInput.Width = 50

	return mainLoopModel{
		ctx:        ctx,
		adapter:    todoAdapter,
		username:   username,
		buildInfo:  buildInfo,
		filters:    models.Filters(),
		loading:    true,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		titleInput: titleInput,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoadItems())
}

func (m mainLoopModel) filter() models.Filter {
	return m.filters[m.filterIdx]
}

func (m mainLoopModel) selected() (models.TodoResponse, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.TodoResponse{}, false
	}
	return m.items[m.idx], true
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case todosLoadedMsg:
		if msg.filter != m.filter() {
			// a reply to an outdated filter
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.items = msg.items
		m.clampCursor()
		return m, nil
	case todoAddedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.setStatus("Added \"" + fitText(msg.todo.Title, maxTitleWidth) + "\"")
		return m.reload()
	case todoToggledMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		state := "active"
		if msg.todo.Done {
			state = "done"
		}
		m.setStatus("Marked \"" + fitText(msg.todo.Title, maxTitleWidth) + "\" as " + state)
		return m.reload()
	case todoDeletedMsg:
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.setStatus("Todo deleted")
		return m.reload()
	case copiedMsg:
		if msg.err != nil {
			m.status = ""
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.setStatus("Title copied to clipboard")
		return m, nil
	case logoutDoneMsg:
		// the local session is dropped even if the server call failed
		m.logout = true
		return m, tea.Quit
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	if m.adding {
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m mainLoopModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.showBuildInfo:
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	case m.adding:
		return m.updateAdding(msg)
	case m.confirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.right), key.Matches(msg, keys.tab):
		return m.switchFilter(1)
	case key.Matches(msg, keys.left), key.Matches(msg, keys.backtab):
		return m.switchFilter(-1)
	case key.Matches(msg, keys.toggle):
		if todo, ok := m.selected(); ok {
			return m, m.cmdToggle(todo.ID)
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.selected(); ok {
			m.confirmDelete = true
		}
	case key.Matches(msg, keys.newItem):
		m.adding = true
		m.errMsg = ""
		m.titleInput.Reset()
		return m, m.titleInput.Focus()
	case key.Matches(msg, keys.copy):
		if todo, ok := m.selected(); ok {
			return m, cmdCopy(todo.Title)
		}
	case key.Matches(msg, keys.refresh):
		m.status = ""
		m.errMsg = ""
		return m.reload()
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m mainLoopModel) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.adding = false
		m.titleInput.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		title := strings.TrimSpace(m.titleInput.Value())
		if title == "" {
			m.errMsg = "Title is required"
			return m, nil
		}
		m.adding = false
		m.titleInput.Blur()
		m.errMsg = ""
		return m, m.cmdAdd(title)
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirmDelete = false
		if todo, ok := m.selected(); ok {
			return m, m.cmdDelete(todo.ID)
		}
	case key.Matches(msg, keys.no):
		m.confirmDelete = false
	}
	return m, nil
}

func (m mainLoopModel) switchFilter(step int) (tea.Model, tea.Cmd) {
	m.filterIdx = (m.filterIdx + step + len(m.filters)) % len(m.filters)
	m.idx = 0
	m.items = nil
	return m.reload()
}

func (m mainLoopModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.cmdLoadItems())
}

// fail shows err in the status line. An expired session ends the main loop
// so that the client can show the login flow again.
func (m mainLoopModel) fail(err error) (tea.Model, tea.Cmd) {
	m.status = ""
	m.errMsg = humanizeError(err)
	if errors.Is(err, adapter.ErrUnauthorized) {
		m.logout = true
		m.sessionExpired = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *mainLoopModel) setStatus(status string) {
	m.status = status
	m.errMsg = ""
}

func (m *mainLoopModel) clampCursor() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m mainLoopModel) cmdLoadItems() tea.Cmd {
	ctx, todoAdapter, filter := m.ctx, m.adapter, m.filter()
	return func() tea.Msg {
		items, err := todoAdapter.List(ctx, filter)
		return todosLoadedMsg{filter: filter, items: items, err: err}
	}
}

func (m mainLoopModel) cmdAdd(title string) tea.Cmd {
	ctx, todoAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		todo, err := todoAdapter.Add(ctx, title)
		return todoAddedMsg{todo: todo, err: err}
	}
}

func (m mainLoopModel) cmdToggle(id int64) tea.Cmd {
	ctx, todoAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		todo, err := todoAdapter.Toggle(ctx, id)
		return todoToggledMsg{todo: todo, err: err}
	}
}

func (m mainLoopModel) cmdDelete(id int64) tea.Cmd {
	ctx, todoAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		return todoDeletedMsg{id: id, err: todoAdapter.Delete(ctx, id)}
	}
}

func (m mainLoopModel) cmdLogout() tea.Cmd {
	ctx, todoAdapter := m.ctx, m.adapter
	return func() tea.Msg {
		return logoutDoneMsg{err: todoAdapter.Logout(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func (m mainLoopModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderItems())

	if m.adding {
		b.WriteString("\n\nNew todo: [")
		b.WriteString(m.titleInput.View())
		b.WriteString("]")
	}

	if m.confirmDelete {
		if todo, ok := m.selected(); ok {
			b.WriteString("\n\n")
			b.WriteString(overlayBoxStyle.Render("Delete \"" + fitText(todo.Title, maxTitleWidth) + "\"?\n\ny: yes    n: no"))
		}
	}

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	return renderPage("TODOS of "+m.username, b.String(), m.hotKeys())
}

func (m mainLoopModel) renderTabs() string {
	tabs := make([]string, 0, len(m.filters))
	for i, f := range m.filters {
		if i == m.filterIdx {
			tabs = append(tabs, activeTabStyle.Render(f.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(f.String()))
		}
	}
	return strings.Join(tabs, "  ")
}

func (m mainLoopModel) renderItems() string {
	if m.loading && len(m.items) == 0 {
		return m.spinner.View() + " Loading..."
	}
	if len(m.items) == 0 {
		return "Nothing here yet"
	}

	var b strings.Builder
	for i, todo := range m.items {
		check := "[ ]"
		title := fitText(todo.Title, maxTitleWidth)
		if todo.Done {
			check = "[x]"
			title = doneStyle.Render(title)
		}

		line := check + " " + title
		if i == m.idx {
			b.WriteString(cursorStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m mainLoopModel) hotKeys() string {
	switch {
	case m.showBuildInfo:
		return "esc: back"
	case m.adding:
		return "enter: save │ esc: cancel"
	case m.confirmDelete:
		return "y: delete │ n: keep"
	}
	return "↑/↓: move │ ←/→: filter │ space: toggle │ a: add │ d: delete │ c: copy │ r: refresh │ v: about │ o: log out │ q: quit"
}
