package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/api"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/models"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/validation"
)

type loginResultMsg struct {
	user *models.User
	err  error
}

type LoginModel struct {
	api API

	email       string
	password    string
	focus       int
	errors      validation.Errors
	serverError string
	submitting  bool
}

func NewLoginModel(apiClient API) *LoginModel {
	return &LoginModel{api: apiClient, errors: validation.Errors{}}
}

// Reset clears all transient form state. Called when the screen is entered.
func (m *LoginModel) Reset() {
	m.email = ""
	m.password = ""
	m.focus = 0
	m.errors = validation.Errors{}
	m.serverError = ""
	m.submitting = false
}

func (m *LoginModel) submitCmd() tea.Cmd {
	apiClient, email, password := m.api, m.email, m.password
	return func() tea.Msg {
		resp, err := apiClient.Login(context.Background(), email, password)
		if err != nil {
			return loginResultMsg{err: err}
		}
		return loginResultMsg{user: &resp.User}
	}
}

func (m *LoginModel) Update(msg tea.Msg) (*LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.serverError = api.Message(msg.err, "Login failed. Please try again.")
			return m, nil
		}
		target := ViewDashboard
		if msg.user.IsAdmin() {
			target = ViewAdmin
		}
		m.Reset()
		return m, navigate(target)

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}

		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = (m.focus + 1) % 2
		case "enter":
			m.errors = validation.ValidateLogin(m.email, m.password)
			if !m.errors.Valid() {
				return m, nil
			}
			m.submitting = true
			m.serverError = ""
			return m, m.submitCmd()
		case "backspace":
			if m.focus == 0 && len(m.email) > 0 {
				m.email = m.email[:len(m.email)-1]
			} else if m.focus == 1 && len(m.password) > 0 {
				m.password = m.password[:len(m.password)-1]
			}
		case "ctrl+s":
			return m, navigate(ViewSignup)
		default:
			if len(msg.String()) == 1 {
				field := validation.FieldEmail
				if m.focus == 0 {
					m.email += msg.String()
				} else {
					m.password += msg.String()
					field = validation.FieldPassword
				}
				// Typing clears that field's error and any server error.
				delete(m.errors, field)
				m.serverError = ""
			}
		}
	}
	return m, nil
}

func (m *LoginModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().Foreground(Primary).Bold(true).Render("WELCOME BACK")
	subtitle := InfoStyle.Render("Login to your account")
	b.WriteString(centered(title))
	b.WriteString("\n")
	b.WriteString(centered(subtitle))
	b.WriteString("\n\n")

	if m.serverError != "" {
		b.WriteString(centered(ErrorStyle.Render(m.serverError)))
		b.WriteString("\n\n")
	}

	b.WriteString(renderField("Email", m.email, m.focus == 0, false, m.errors[validation.FieldEmail]))
	b.WriteString("\n\n")
	b.WriteString(renderField("Password", m.password, m.focus == 1, true, m.errors[validation.FieldPassword]))
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString(centered(InfoStyle.Render("Logging in...")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("tab switch  •  enter login  •  ctrl+s sign up  •  ctrl+c quit")
	b.WriteString(centered(help))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(2, 4).
		Width(76).
		Render(b.String())
}
