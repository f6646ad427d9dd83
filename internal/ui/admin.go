package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/api"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/models"
	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/session"
)

// usersPerPage is the fixed page size of the admin listing.
const usersPerPage = 10

type usersLoadedMsg struct {
	seq  int
	page *models.UserPage
	err  error
}

type userActionMsg struct {
	verb  string // "activated" / "deactivated"
	email string
	user  *models.User
	err   error
}

// AdminModel is the admin landing: a paginated account listing with
// activate/deactivate actions behind a confirmation gate.
type AdminModel struct {
	api    API
	store  session.Store
	log    zerolog.Logger
	notify *Notifications

	users   []models.User
	page    int
	pages   int
	total   int
	cursor  int
	loading bool
	seq     int

	confirm Confirm
}

func NewAdminModel(apiClient API, store session.Store, log zerolog.Logger, notify *Notifications) *AdminModel {
	return &AdminModel{api: apiClient, store: store, log: log, notify: notify, page: 1, pages: 1}
}

// Enter resets to the first page and fetches it.
func (m *AdminModel) Enter() tea.Cmd {
	m.page = 1
	m.cursor = 0
	m.confirm = Confirm{}
	return m.fetchPage()
}

// fetchPage starts a sequence-tagged fetch of the current page.
func (m *AdminModel) fetchPage() tea.Cmd {
	m.seq++
	m.loading = true
	apiClient, page, seq := m.api, m.page, m.seq
	return func() tea.Msg {
		resp, err := apiClient.ListUsers(context.Background(), page, usersPerPage)
		return usersLoadedMsg{seq: seq, page: resp, err: err}
	}
}

func (m *AdminModel) actionCmd(u models.User) tea.Cmd {
	apiClient := m.api
	id, email := u.ID, u.Email
	if u.IsActive() {
		return func() tea.Msg {
			res, err := apiClient.DeactivateUser(context.Background(), id)
			return userActionMsg{verb: "deactivated", email: email, user: res, err: err}
		}
	}
	return func() tea.Msg {
		res, err := apiClient.ActivateUser(context.Background(), id)
		return userActionMsg{verb: "activated", email: email, user: res, err: err}
	}
}

func (m *AdminModel) openConfirm(u models.User) {
	verb := "activate"
	destructive := false
	if u.IsActive() {
		verb = "deactivate"
		destructive = true
	}
	title := strings.ToUpper(verb[:1]) + verb[1:] + " User"
	message := fmt.Sprintf("Are you sure you want to %s %s?", verb, u.Email)
	m.confirm.Show(title, message, destructive, m.actionCmd(u))
}

func (m *AdminModel) Update(msg tea.Msg) (*AdminModel, tea.Cmd) {
	switch msg := msg.(type) {
	case usersLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.notify.Push(api.Message(msg.err, "Failed to fetch users"), SeverityError)
		}
		m.users = msg.page.Items
		m.total = msg.page.Total
		m.pages = msg.page.Pages
		if m.pages < 1 {
			m.pages = 1
		}
		if m.cursor >= len(m.users) {
			m.cursor = 0
		}
		return m, nil

	case userActionMsg:
		if msg.err != nil {
			fallback := "Failed to " + strings.TrimSuffix(msg.verb, "d") + " user"
			return m, m.notify.Push(api.Message(msg.err, fallback), SeverityError)
		}
		email := msg.email
		if msg.user != nil && msg.user.Email != "" {
			email = msg.user.Email
		}
		note := m.notify.Push(fmt.Sprintf("User %s has been %s", email, msg.verb), SeveritySuccess)
		// The listing is re-fetched rather than patched in place.
		return m, tea.Batch(note, m.fetchPage())

	case tea.KeyMsg:
		if cmd, handled := m.confirm.HandleKey(msg); handled {
			return m, cmd
		}
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.users)-1 {
				m.cursor++
			}
		case "left", "h":
			if m.page > 1 {
				m.page--
				m.cursor = 0
				return m, m.fetchPage()
			}
		case "right", "n":
			if m.page < m.pages {
				m.page++
				m.cursor = 0
				return m, m.fetchPage()
			}
		case "enter":
			if m.cursor < len(m.users) {
				m.openConfirm(m.users[m.cursor])
			}
		case "r":
			return m, m.fetchPage()
		case "p":
			return m, navigate(ViewProfile)
		case "l":
			return m, logoutCmd(m.api)
		}
	}
	return m, nil
}

func (m *AdminModel) View() string {
	var b strings.Builder

	b.WriteString(centered(TitleStyle.Render("USER MANAGEMENT")))
	b.WriteString("\n")
	b.WriteString(centered(InfoStyle.Render(fmt.Sprintf("Total Users: %d", m.total))))
	b.WriteString("\n\n")

	if m.confirm.Open {
		b.WriteString(centered(m.confirm.View()))
		b.WriteString("\n")
		return BoxStyle.Width(76).Render(b.String())
	}

	if m.loading {
		b.WriteString(centered(lipgloss.NewStyle().Foreground(Accent).Render("Loading users...")))
		b.WriteString("\n")
	} else if len(m.users) == 0 {
		b.WriteString(centered(InfoStyle.Render("No users found.")))
		b.WriteString("\n")
	} else {
		for i, u := range m.users {
			b.WriteString(centered(m.renderRow(u, i == m.cursor)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centered(m.renderPagination()))
	b.WriteString("\n\n")

	help := InfoStyle.Render("↑/↓ select  •  ←/→ page  •  enter action  •  r refresh  •  p profile  •  l logout")
	b.WriteString(centered(help))

	return BoxStyle.Width(76).Render(b.String())
}

func (m *AdminModel) renderRow(u models.User, selected bool) string {
	status := SuccessStyle.Render(string(u.Status))
	action := "Deactivate"
	if !u.IsActive() {
		status = ErrorStyle.Render(string(u.Status))
		action = "Activate"
	}

	role := InfoStyle.Render(string(u.Role))
	if u.IsAdmin() {
		role = WarningStyle.Render(string(u.Role))
	}

	line := fmt.Sprintf("%-28s %-20s %s %s  %s",
		truncate(u.Email, 28),
		truncate(u.FullName, 20),
		role,
		status,
		InfoStyle.Render("["+action+"]"),
	)

	if selected {
		return SelectedItemStyle.Render("> " + line)
	}
	return ItemStyle.Render("  " + line)
}

func (m *AdminModel) renderPagination() string {
	prev := "← Previous"
	next := "Next →"

	prevStyle := ValueStyle
	if m.page == 1 {
		prevStyle = InfoStyle
	}
	nextStyle := ValueStyle
	if m.page >= m.pages {
		nextStyle = InfoStyle
	}

	info := fmt.Sprintf("  Page %d of %d  ", m.page, m.pages)
	return prevStyle.Render(prev) + lipgloss.NewStyle().Foreground(Muted).Render(info) + nextStyle.Render(next)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
