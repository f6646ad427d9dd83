package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/api"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/models"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/session"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/validation"
)

type profileFetchedMsg struct {
	seq  int
	user *models.User
	err  error
}

type profileSavedMsg struct {
	user *models.User
	err  error
}

type passwordChangedMsg struct {
	err error
}

// ProfileModel shows the signed-in user's own record with an edit mode and
// an independent password-change form.
type ProfileModel struct {
	api    API
	store  session.Store
	log    zerolog.Logger
	notify *Notifications

	user *models.User
	seq  int

	editing     bool
	fullName    string
	email       string
	focus       int
	errors      validation.Errors
	serverError string
	saving      bool

	pwOpen        bool
	pwCurrent     string
	pwNew         string
	pwConfirm     string
	pwFocus       int
	pwErrors      validation.Errors
	pwServerError string
	pwSaving      bool
}

func NewProfileModel(apiClient API, store session.Store, log zerolog.Logger, notify *Notifications) *ProfileModel {
	return &ProfileModel{
		api:      apiClient,
		store:    store,
		log:      log,
		notify:   notify,
		errors:   validation.Errors{},
		pwErrors: validation.Errors{},
	}
}

// Enter renders the cached snapshot immediately and fetches the
// authoritative profile in the background. A stale cache is acceptable
// until the fetch lands; a failed fetch is logged, never surfaced.
func (m *ProfileModel) Enter() tea.Cmd {
	m.user = m.store.User()
	m.closeEdit()
	m.closePasswordForm()
	m.seq++
	return m.fetchCmd()
}

func (m *ProfileModel) fetchCmd() tea.Cmd {
	apiClient, seq := m.api, m.seq
	return func() tea.Msg {
		user, err := apiClient.Profile(context.Background())
		return profileFetchedMsg{seq: seq, user: user, err: err}
	}
}

func (m *ProfileModel) saveCmd() tea.Cmd {
	apiClient, fullName, email := m.api, m.fullName, m.email
	return func() tea.Msg {
		user, err := apiClient.UpdateProfile(context.Background(), fullName, email)
		return profileSavedMsg{user: user, err: err}
	}
}

func (m *ProfileModel) changePasswordCmd() tea.Cmd {
	apiClient, current, next := m.api, m.pwCurrent, m.pwNew
	return func() tea.Msg {
		_, err := apiClient.ChangePassword(context.Background(), current, next)
		return passwordChangedMsg{err: err}
	}
}

func (m *ProfileModel) openEdit() {
	m.editing = true
	m.focus = 0
	m.errors = validation.Errors{}
	m.serverError = ""
	if m.user != nil {
		m.fullName = m.user.FullName
		m.email = m.user.Email
	}
}

func (m *ProfileModel) closeEdit() {
	m.editing = false
	m.saving = false
	m.fullName = ""
	m.email = ""
	m.errors = validation.Errors{}
	m.serverError = ""
}

func (m *ProfileModel) closePasswordForm() {
	m.pwOpen = false
	m.pwSaving = false
	m.pwCurrent = ""
	m.pwNew = ""
	m.pwConfirm = ""
	m.pwFocus = 0
	m.pwErrors = validation.Errors{}
	m.pwServerError = ""
}

func (m *ProfileModel) cacheSnapshot(user *models.User) {
	if m.store.Token() == "" {
		return
	}
	if err := m.store.Set(m.store.Token(), user); err != nil {
		m.log.Warn().Err(err).Msg("failed to cache user snapshot")
	}
}

func (m *ProfileModel) Update(msg tea.Msg) (*ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileFetchedMsg:
		// Responses from a superseded fetch are discarded.
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("failed to fetch profile")
			return m, nil
		}
		m.user = msg.user
		m.cacheSnapshot(msg.user)
		return m, nil

	case profileSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.serverError = api.Message(msg.err, "Failed to update profile")
			return m, nil
		}
		m.user = msg.user
		m.cacheSnapshot(msg.user)
		m.closeEdit()
		return m, m.notify.Push("Profile updated successfully", SeveritySuccess)

	case passwordChangedMsg:
		m.pwSaving = false
		if msg.err != nil {
			m.pwServerError = api.Message(msg.err, "Failed to change password")
			return m, nil
		}
		m.closePasswordForm()
		return m, m.notify.Push("Password changed successfully", SeveritySuccess)

	case tea.KeyMsg:
		switch {
		case m.editing:
			return m.updateEdit(msg)
		case m.pwOpen:
			return m.updatePasswordForm(msg)
		default:
			switch msg.String() {
			case "e":
				m.openEdit()
			case "c":
				m.pwOpen = true
			case "esc", "b":
				return m, navigate(landing(m.store))
			case "l":
				return m, logoutCmd(m.api)
			}
		}
	}
	return m, nil
}

func (m *ProfileModel) updateEdit(msg tea.KeyMsg) (*ProfileModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.focus = (m.focus + 1) % 2
	case "enter":
		m.errors = validation.ValidateProfile(m.fullName, m.email)
		if !m.errors.Valid() {
			return m, nil
		}
		m.saving = true
		m.serverError = ""
		return m, m.saveCmd()
	case "esc":
		m.closeEdit()
	case "backspace":
		if m.focus == 0 && len(m.fullName) > 0 {
			m.fullName = m.fullName[:len(m.fullName)-1]
		} else if m.focus == 1 && len(m.email) > 0 {
			m.email = m.email[:len(m.email)-1]
		}
	default:
		if len(msg.String()) == 1 {
			field := validation.FieldFullName
			if m.focus == 0 {
				m.fullName += msg.String()
			} else {
				m.email += msg.String()
				field = validation.FieldEmail
			}
			delete(m.errors, field)
			m.serverError = ""
		}
	}
	return m, nil
}

func (m *ProfileModel) updatePasswordForm(msg tea.KeyMsg) (*ProfileModel, tea.Cmd) {
	if m.pwSaving {
		return m, nil
	}
	switch msg.String() {
	case "tab", "down":
		m.pwFocus = (m.pwFocus + 1) % 3
	case "shift+tab", "up":
		m.pwFocus = (m.pwFocus + 2) % 3
	case "enter":
		m.pwErrors = validation.ValidatePasswordChange(m.pwCurrent, m.pwNew, m.pwConfirm)
		if !m.pwErrors.Valid() {
			return m, nil
		}
		m.pwSaving = true
		m.pwServerError = ""
		return m, m.changePasswordCmd()
	case "esc":
		m.closePasswordForm()
	case "backspace":
		f := m.pwField(m.pwFocus)
		if len(*f) > 0 {
			*f = (*f)[:len(*f)-1]
		}
	default:
		if len(msg.String()) == 1 {
			*m.pwField(m.pwFocus) += msg.String()
			delete(m.pwErrors, pwFields[m.pwFocus])
			m.pwServerError = ""
		}
	}
	return m, nil
}

var pwFields = []string{
	validation.FieldCurrentPassword,
	validation.FieldNewPassword,
	validation.FieldConfirmPassword,
}

func (m *ProfileModel) pwField(i int) *string {
	switch i {
	case 0:
		return &m.pwCurrent
	case 1:
		return &m.pwNew
	default:
		return &m.pwConfirm
	}
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	b.WriteString(centered(TitleStyle.Render("MY PROFILE")))
	b.WriteString("\n\n")

	switch {
	case m.editing:
		m.viewEdit(&b)
	case m.pwOpen:
		m.viewPasswordForm(&b)
	default:
		m.viewProfile(&b)
	}

	return BoxStyle.Width(76).Render(b.String())
}

func (m *ProfileModel) viewProfile(b *strings.Builder) {
	if m.user != nil {
		row := func(label, value string) {
			b.WriteString(centered(lipgloss.JoinHorizontal(lipgloss.Left,
				LabelStyle.Width(16).Render(label+":"),
				ValueStyle.Render(value),
			)))
			b.WriteString("\n")
		}
		row("Full Name", m.user.FullName)
		row("Email", m.user.Email)
		row("Role", string(m.user.Role))
		row("Status", string(m.user.Status))
		row("Created", formatDate(m.user.CreatedAt))
		row("Updated", formatDate(m.user.UpdatedAt))
	}

	b.WriteString("\n")
	help := InfoStyle.Render("e edit  •  c change password  •  esc back  •  l logout")
	b.WriteString(centered(help))
}

func (m *ProfileModel) viewEdit(b *strings.Builder) {
	if m.serverError != "" {
		b.WriteString(centered(ErrorStyle.Render(m.serverError)))
		b.WriteString("\n\n")
	}

	b.WriteString(renderField("Full Name", m.fullName, m.focus == 0, false, m.errors[validation.FieldFullName]))
	b.WriteString("\n\n")
	b.WriteString(renderField("Email", m.email, m.focus == 1, false, m.errors[validation.FieldEmail]))
	b.WriteString("\n\n")

	if m.saving {
		b.WriteString(centered(InfoStyle.Render("Saving...")))
		b.WriteString("\n")
	}

	help := InfoStyle.Render("tab switch  •  enter save  •  esc cancel")
	b.WriteString(centered(help))
}

func (m *ProfileModel) viewPasswordForm(b *strings.Builder) {
	if m.pwServerError != "" {
		b.WriteString(centered(ErrorStyle.Render(m.pwServerError)))
		b.WriteString("\n\n")
	}

	b.WriteString(renderField("Current Password", m.pwCurrent, m.pwFocus == 0, true, m.pwErrors[validation.FieldCurrentPassword]))
	b.WriteString("\n\n")
	b.WriteString(renderField("New Password", m.pwNew, m.pwFocus == 1, true, m.pwErrors[validation.FieldNewPassword]))
	b.WriteString("\n\n")
	b.WriteString(renderField("Confirm Password", m.pwConfirm, m.pwFocus == 2, true, m.pwErrors[validation.FieldConfirmPassword]))
	b.WriteString("\n\n")

	if m.pwSaving {
		b.WriteString(centered(InfoStyle.Render("Changing password...")))
		b.WriteString("\n")
	}

	help := InfoStyle.Render("tab switch  •  enter change  •  esc cancel")
	b.WriteString(centered(help))
}
