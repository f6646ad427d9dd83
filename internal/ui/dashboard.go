package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/models"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/session"
)

type currentUserMsg struct {
	seq  int
	user *models.User
	err  error
}

// DashboardModel is the default authenticated landing: the cached snapshot
// renders immediately while a background refresh fetches the authoritative
// record.
type DashboardModel struct {
	api   API
	store session.Store
	log   zerolog.Logger

	user   *models.User
	cursor int
	seq    int
}

func NewDashboardModel(apiClient API, store session.Store, log zerolog.Logger) *DashboardModel {
	return &DashboardModel{api: apiClient, store: store, log: log}
}

// Enter re-renders from the cached snapshot and kicks off a refresh. The
// sequence tag makes sure a slow response from an earlier visit cannot
// overwrite newer state.
func (m *DashboardModel) Enter() tea.Cmd {
	m.user = m.store.User()
	m.cursor = 0
	m.seq++
	return m.refreshCmd()
}

func (m *DashboardModel) refreshCmd() tea.Cmd {
	apiClient, seq := m.api, m.seq
	return func() tea.Msg {
		user, err := apiClient.CurrentUser(context.Background())
		return currentUserMsg{seq: seq, user: user, err: err}
	}
}

func (m *DashboardModel) menu() []string {
	items := []string{"Profile"}
	if m.user.IsAdmin() {
		items = append(items, "User Management")
	}
	return append(items, "Logout")
}

func (m *DashboardModel) Update(msg tea.Msg) (*DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case currentUserMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("failed to refresh current user")
			return m, nil
		}
		m.user = msg.user
		if m.store.Token() != "" {
			if err := m.store.Set(m.store.Token(), msg.user); err != nil {
				m.log.Warn().Err(err).Msg("failed to cache user snapshot")
			}
		}
		return m, nil

	case tea.KeyMsg:
		items := m.menu()
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(items)-1 {
				m.cursor++
			}
		case "enter":
			switch items[m.cursor] {
			case "Profile":
				return m, navigate(ViewProfile)
			case "User Management":
				return m, navigate(ViewAdmin)
			case "Logout":
				return m, logoutCmd(m.api)
			}
		case "p":
			return m, navigate(ViewProfile)
		}
	}
	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	b.WriteString(centered(TitleStyle.Render("DASHBOARD")))
	b.WriteString("\n\n")

	if m.user != nil {
		row := func(label, value string) {
			b.WriteString(centered(lipgloss.JoinHorizontal(lipgloss.Left,
				LabelStyle.Width(16).Render(label+":"),
				ValueStyle.Render(value),
			)))
			b.WriteString("\n")
		}
		row("Name", m.user.FullName)
		row("Email", m.user.Email)
		row("Role", string(m.user.Role))
		row("Status", string(m.user.Status))
		row("Member since", formatDate(m.user.CreatedAt))
		row("Last login", formatDateTime(m.user.LastLoginAt))

		if exp, ok := session.TokenExpiry(m.store.Token()); ok {
			b.WriteString(centered(InfoStyle.Render("Session expires " + exp.Format("January 2, 2006 15:04"))))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	for i, item := range m.menu() {
		if i == m.cursor {
			b.WriteString(centered(SelectedItemStyle.Render("> " + item)))
		} else {
			b.WriteString(centered(ItemStyle.Render("  " + item)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("↑/↓ navigate  •  enter select  •  ctrl+c quit")
	b.WriteString(centered(help))

	return BoxStyle.Width(76).Render(b.String())
}
