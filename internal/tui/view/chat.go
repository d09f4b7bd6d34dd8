package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/studyplan/internal/planclient"
	"github.com/Iron-Ham/studyplan/internal/tui/styles"
)

const (
	userLabel = "You"
	botLabel  = "Bot"
)

// RenderChat draws the chat log wrapped to width. The typing placeholder
// is replaced by spinnerFrame when one is given.
func RenderChat(messages []planclient.Message, width int, spinnerFrame string, th *styles.Theme) string {
	wrap := lipgloss.NewStyle().Width(max(width, 10))

	entries := make([]string, 0, len(messages))
	for _, m := range messages {
		entries = append(entries, wrap.Render(renderMessage(m, spinnerFrame, th)))
	}
	return strings.Join(entries, "\n")
}

func renderMessage(m planclient.Message, spinnerFrame string, th *styles.Theme) string {
	if m.Role == planclient.RoleUser {
		return th.Label.Render(userLabel+": ") + th.UserMessage.Render(m.Text)
	}

	text := th.BotMessage.Render(m.Text)
	switch {
	case m.Text == planclient.TypingPlaceholder && m.Transient():
		frame := m.Text
		if spinnerFrame != "" {
			frame = spinnerFrame
		}
		text = th.Typing.Render(frame)
	case strings.HasPrefix(m.Text, "Error: "):
		text = th.Error.Render(m.Text)
	}
	return th.Label.Render(botLabel+": ") + text
}
