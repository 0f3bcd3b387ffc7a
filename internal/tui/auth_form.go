// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type authMode int

const (
	authModeLogin authMode = iota
	authModeSignup
)

// AuthFormModel is the Bubble Tea model shared by the login and signup
// screens. It renders username and password inputs and dispatches the
// matching adapter call on submission.
//
// A successful login produces a [LoginResult] that [RootModel] turns into
// the end of the login flow. A successful signup navigates to the login
// page with a [SignupSuccessNotice].
type AuthFormModel struct {
	ctx     context.Context
	adapter adapter.TodoAdapter
	mode    authMode

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	notice     string
}

// NewAuthFormModel creates an [AuthFormModel] for the given mode. The
// username field receives focus immediately; the password field uses masked
// echo.
func NewAuthFormModel(ctx context.Context, todoAdapter adapter.TodoAdapter, mode authMode) *AuthFormModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 72
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &AuthFormModel{
		ctx:     ctx,
		adapter: todoAdapter,
		mode:    mode,
		inputs:  []textinput.Model{usernameInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *AuthFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult], [SignupResult]: finish submission, show the error if any;
//   - [SignupSuccessNotice]: greet the new user and prefill the username;
//   - esc: back to the menu;
//   - tab / shift+tab: move focus;
//   - enter: validate and submit.
//
// All other key events are forwarded to the focused input.
func (m *AuthFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
		}
		return m, nil
	case SignupResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
			return m, nil
		}
		m.reset()
		notice := SignupSuccessNotice{Username: msg.Username}
		return m, func() tea.Msg { return NavigateTo{Page: pageLogin, Payload: notice} }
	case SignupSuccessNotice:
		m.reset()
		m.notice = "Account " + msg.Username + " created, please log in"
		m.inputs[0].SetValue(msg.Username)
		m.setFocus(1)
		return m, textinput.Blink
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.tab):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AuthFormModel) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	credentials := models.Credentials{
		Username: strings.TrimSpace(m.inputs[0].Value()),
		Password: m.inputs[1].Value(),
	}
	if credentials.Username == "" || credentials.Password == "" {
		m.errMsg = "Username and password are required"
		return m, nil
	}

	m.errMsg = ""
	m.notice = ""
	m.submitting = true
	if m.mode == authModeSignup {
		return m, m.cmdSignup(credentials)
	}
	return m, m.cmdLogin(credentials)
}

// View implements [tea.Model].
func (m *AuthFormModel) View() string {
	var b strings.Builder

	if m.notice != "" {
		b.WriteString(statusStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Username │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	b.WriteString("\n")
	b.WriteString(m.submitLabel())
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(m.title(), strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *AuthFormModel) title() string {
	if m.mode == authModeSignup {
		return "SIGN UP"
	}
	return "LOG IN"
}

func (m *AuthFormModel) submitLabel() string {
	label := "[Log in]"
	if m.mode == authModeSignup {
		label = "[Create account]"
	}
	if m.submitting {
		label = strings.TrimSuffix(label, "]") + "...]"
	}
	return label
}

func (m *AuthFormModel) cmdLogin(credentials models.Credentials) tea.Cmd {
	ctx := m.ctx
	todoAdapter := m.adapter

	return func() tea.Msg {
		err := todoAdapter.Login(ctx, credentials)
		return LoginResult{Username: credentials.Username, Err: err}
	}
}

func (m *AuthFormModel) cmdSignup(credentials models.Credentials) tea.Cmd {
	ctx := m.ctx
	todoAdapter := m.adapter

	return func() tea.Msg {
		err := todoAdapter.Signup(ctx, credentials)
		return SignupResult{Username: credentials.Username, Err: err}
	}
}

func (m *AuthFormModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *AuthFormModel) reset() {
	m.submitting = false
	m.errMsg = ""
	m.notice = ""
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.setFocus(0)
}
