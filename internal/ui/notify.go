package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
	SeverityError
)

// notificationTTL is how long an entry stays on screen unless dismissed.
const notificationTTL = 5 * time.Second

type Notification struct {
	ID       uuid.UUID
	Message  string
	Severity Severity
}

type notificationExpiredMsg struct {
	id uuid.UUID
}

// Notifications is an insertion-ordered queue of transient messages. Each
// entry removes itself after notificationTTL; duplicates are not coalesced.
type Notifications struct {
	entries []Notification
}

func NewNotifications() *Notifications {
	return &Notifications{}
}

// Push appends an entry and returns the command that will expire it.
func (n *Notifications) Push(message string, severity Severity) tea.Cmd {
	id := uuid.New()
	n.entries = append(n.entries, Notification{ID: id, Message: message, Severity: severity})
	return tea.Tick(notificationTTL, func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: id}
	})
}

func (n *Notifications) Remove(id uuid.UUID) {
	for i, e := range n.entries {
		if e.ID == id {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			return
		}
	}
}

// DismissOldest drops the first entry, if any. Bound to an explicit
// user-dismiss key.
func (n *Notifications) DismissOldest() {
	if len(n.entries) > 0 {
		n.entries = n.entries[1:]
	}
}

func (n *Notifications) Update(msg tea.Msg) {
	if expired, ok := msg.(notificationExpiredMsg); ok {
		n.Remove(expired.id)
	}
}

func (n *Notifications) Entries() []Notification {
	return n.entries
}

func (n *Notifications) View() string {
	if len(n.entries) == 0 {
		return ""
	}

	var b strings.Builder
	for _, e := range n.entries {
		var style = InfoStyle
		var icon string
		switch e.Severity {
		case SeveritySuccess:
			style = SuccessStyle
			icon = "✔ "
		case SeverityError:
			style = ErrorStyle
			icon = "✘ "
		case SeverityWarning:
			style = WarningStyle
			icon = "! "
		default:
			icon = "• "
		}
		b.WriteString(style.Render(icon + e.Message))
		b.WriteString("\n")
	}
	return b.String()
}
