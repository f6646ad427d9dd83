package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Confirm is the yes/no gate shown before state-changing admin actions.
// Confirming runs the bound command and closes; cancelling just closes.
// A screen holds at most one, so only one gate can be open at a time.
type Confirm struct {
	Open        bool
	Title       string
	Message     string
	destructive bool
	action      tea.Cmd
}

func (c *Confirm) Show(title, message string, destructive bool, action tea.Cmd) {
	c.Open = true
	c.Title = title
	c.Message = message
	c.destructive = destructive
	c.action = action
}

func (c *Confirm) close() {
	c.Open = false
	c.Title = ""
	c.Message = ""
	c.action = nil
}

// HandleKey consumes a key press while the gate is open. It returns the
// bound command when confirmed, and reports whether the key was handled.
func (c *Confirm) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !c.Open {
		return nil, false
	}
	switch msg.String() {
	case "y", "enter":
		action := c.action
		c.close()
		return action, true
	case "n", "esc":
		c.close()
		return nil, true
	}
	// Swallow everything else while the gate is up.
	return nil, true
}

func (c *Confirm) View() string {
	if !c.Open {
		return ""
	}

	var b strings.Builder
	title := TitleStyle.Render(c.Title)
	b.WriteString(title)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(Text).Render(c.Message))
	b.WriteString("\n\n")

	confirmStyle := SuccessStyle
	if c.destructive {
		confirmStyle = ErrorStyle
	}
	b.WriteString(confirmStyle.Render("y confirm"))
	b.WriteString(InfoStyle.Render("  •  n cancel"))

	border := Primary
	if c.destructive {
		border = Error
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 3).
		Render(b.String())
}
