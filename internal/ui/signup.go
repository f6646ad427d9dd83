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

type signupResultMsg struct {
	user *models.User
	err  error
}

var signupFields = []string{
	validation.FieldFullName,
	validation.FieldEmail,
	validation.FieldPassword,
	validation.FieldConfirmPassword,
}

type SignupModel struct {
	api    API
	notify *Notifications

	fullName        string
	email           string
	password        string
	confirmPassword string
	focus           int
	errors          validation.Errors
	serverError     string
	submitting      bool
}

func NewSignupModel(apiClient API, notify *Notifications) *SignupModel {
	return &SignupModel{api: apiClient, notify: notify, errors: validation.Errors{}}
}

func (m *SignupModel) Reset() {
	m.fullName = ""
	m.email = ""
	m.password = ""
	m.confirmPassword = ""
	m.focus = 0
	m.errors = validation.Errors{}
	m.serverError = ""
	m.submitting = false
}

func (m *SignupModel) field(i int) *string {
	switch i {
	case 0:
		return &m.fullName
	case 1:
		return &m.email
	case 2:
		return &m.password
	default:
		return &m.confirmPassword
	}
}

func (m *SignupModel) submitCmd() tea.Cmd {
	apiClient := m.api
	fullName, email, password := m.fullName, m.email, m.password
	return func() tea.Msg {
		resp, err := apiClient.Signup(context.Background(), fullName, email, password)
		if err != nil {
			return signupResultMsg{err: err}
		}
		return signupResultMsg{user: &resp.User}
	}
}

func (m *SignupModel) Update(msg tea.Msg) (*SignupModel, tea.Cmd) {
	switch msg := msg.(type) {
	case signupResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.serverError = api.Message(msg.err, "Signup failed. Please try again.")
			return m, nil
		}
		target := ViewDashboard
		if msg.user.IsAdmin() {
			target = ViewAdmin
		}
		m.Reset()
		return m, tea.Batch(
			m.notify.Push("Account created successfully", SeveritySuccess),
			navigate(target),
		)

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}

		switch msg.String() {
		case "tab", "down":
			m.focus = (m.focus + 1) % len(signupFields)
		case "shift+tab", "up":
			m.focus = (m.focus + len(signupFields) - 1) % len(signupFields)
		case "enter":
			m.errors = validation.ValidateSignup(m.fullName, m.email, m.password, m.confirmPassword)
			if !m.errors.Valid() {
				return m, nil
			}
			m.submitting = true
			m.serverError = ""
			return m, m.submitCmd()
		case "backspace":
			f := m.field(m.focus)
			if len(*f) > 0 {
				*f = (*f)[:len(*f)-1]
			}
		case "ctrl+s", "esc":
			return m, navigate(ViewLogin)
		default:
			if len(msg.String()) == 1 {
				*m.field(m.focus) += msg.String()
				delete(m.errors, signupFields[m.focus])
				m.serverError = ""
			}
		}
	}
	return m, nil
}

// strengthMeter renders the advisory password-strength bar and label.
func (m *SignupModel) strengthMeter() string {
	if m.password == "" {
		return ""
	}
	score := validation.PasswordStrength(m.password)
	label := validation.StrengthLabel(score)

	filled := score * 20 / 100
	if filled > 20 {
		filled = 20
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)

	style := lipgloss.NewStyle().Foreground(strengthColor(label))
	return style.Render(bar) + " " + style.Bold(true).Render(label)
}

func (m *SignupModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().Foreground(Success).Bold(true).Render("CREATE ACCOUNT")
	subtitle := InfoStyle.Render("Sign up to get started")
	b.WriteString(centered(title))
	b.WriteString("\n")
	b.WriteString(centered(subtitle))
	b.WriteString("\n\n")

	if m.serverError != "" {
		b.WriteString(centered(ErrorStyle.Render(m.serverError)))
		b.WriteString("\n\n")
	}

	b.WriteString(renderField("Full Name", m.fullName, m.focus == 0, false, m.errors[validation.FieldFullName]))
	b.WriteString("\n\n")
	b.WriteString(renderField("Email", m.email, m.focus == 1, false, m.errors[validation.FieldEmail]))
	b.WriteString("\n\n")
	b.WriteString(renderField("Password", m.password, m.focus == 2, true, m.errors[validation.FieldPassword]))
	b.WriteString("\n")
	if meter := m.strengthMeter(); meter != "" {
		b.WriteString(centered(meter))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(renderField("Confirm Password", m.confirmPassword, m.focus == 3, true, m.errors[validation.FieldConfirmPassword]))
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString(centered(InfoStyle.Render("Creating account...")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("tab switch  •  enter sign up  •  esc login  •  ctrl+c quit")
	b.WriteString(centered(help))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Success).
		Padding(2, 4).
		Width(76).
		Render(b.String())
}
