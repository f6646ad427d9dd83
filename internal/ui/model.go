// Package ui implements the terminal dashboard: one model per screen, a
// root model that routes between them, and navigation that always passes
// through the session-state guard.
package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/session"
)

type navigateMsg struct {
	target View
}

// navigate requests a view change; the root model runs it through Resolve.
func navigate(target View) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{target: target}
	}
}

type loggedOutMsg struct{}

// logoutCmd ends the session. The API client clears the local session even
// when the server call fails.
func logoutCmd(apiClient API) tea.Cmd {
	return func() tea.Msg {
		_ = apiClient.Logout(context.Background())
		return loggedOutMsg{}
	}
}

type Model struct {
	view      View
	login     *LoginModel
	signup    *SignupModel
	dashboard *DashboardModel
	profile   *ProfileModel
	admin     *AdminModel

	store  session.Store
	notify *Notifications
	log    zerolog.Logger

	width  int
	height int
}

func NewModel(apiClient API, store session.Store, log zerolog.Logger) Model {
	notify := NewNotifications()
	m := Model{
		login:     NewLoginModel(apiClient),
		signup:    NewSignupModel(apiClient, notify),
		dashboard: NewDashboardModel(apiClient, store, log),
		profile:   NewProfileModel(apiClient, store, log, notify),
		admin:     NewAdminModel(apiClient, store, log, notify),
		store:     store,
		notify:    notify,
		log:       log,
	}
	m.view = landing(store)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.enter(m.view)
}

// setView resolves the target through the guard and runs the entry hook of
// whichever screen is actually shown.
func (m *Model) setView(target View) tea.Cmd {
	resolved := Resolve(target, m.store)
	m.view = resolved
	return m.enter(resolved)
}

func (m *Model) enter(v View) tea.Cmd {
	switch v {
	case ViewLogin:
		m.login.Reset()
		return nil
	case ViewSignup:
		m.signup.Reset()
		return nil
	case ViewDashboard:
		return m.dashboard.Enter()
	case ViewProfile:
		return m.profile.Enter()
	case ViewAdmin:
		return m.admin.Enter()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		return m, m.setView(msg.target)

	case loggedOutMsg:
		m.log.Info().Msg("session ended")
		return m, m.setView(ViewLogin)

	case notificationExpiredMsg:
		m.notify.Update(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+x":
			m.notify.DismissOldest()
			return m, nil
		case "q":
			// Only where no form is capturing plain letters.
			if m.view == ViewDashboard {
				return m, tea.Quit
			}
		}
	}

	return m.route(msg)
}

// route forwards a message to the active screen.
func (m Model) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ViewLogin:
		m.login, cmd = m.login.Update(msg)
	case ViewSignup:
		m.signup, cmd = m.signup.Update(msg)
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewProfile:
		m.profile, cmd = m.profile.Update(msg)
	case ViewAdmin:
		m.admin, cmd = m.admin.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var statusBar string
	if user := m.store.User(); user != nil && m.view != ViewLogin && m.view != ViewSignup {
		name := lipgloss.NewStyle().Foreground(Success).Render(user.FullName)
		email := lipgloss.NewStyle().Foreground(Muted).Render(" (" + user.Email + ")")
		statusBar = lipgloss.NewStyle().
			Width(80).
			Align(lipgloss.Left).
			Background(BgDark).
			Padding(0, 2).
			Render(name + email)
	}

	var content string
	switch m.view {
	case ViewLogin:
		content = m.login.View()
	case ViewSignup:
		content = m.signup.View()
	case ViewDashboard:
		content = m.dashboard.View()
	case ViewProfile:
		content = m.profile.View()
	case ViewAdmin:
		content = m.admin.View()
	}

	sections := make([]string, 0, 3)
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	if notices := m.notify.View(); notices != "" {
		sections = append(sections, notices)
	}
	sections = append(sections, content)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
