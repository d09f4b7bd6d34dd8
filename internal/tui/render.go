package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/studyplan/internal/planclient"
	"github.com/Iron-Ham/studyplan/internal/tui/keymap"
	"github.com/Iron-Ham/studyplan/internal/tui/view"
)

const (
	formTitle   = "Study plan request"
	chatTitle   = "Chat"
	agendaTitle = "Day by day"
)

// View renders the whole screen.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		help := m.theme.Panel.Render(view.RenderHelp(m.keymap, m.mode(), m.theme))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, help)
	}
	if d, open := m.ctrl.Calendar().Overlay(); open {
		return view.RenderOverlay(d, m.width, m.height-HelpBarHeight, m.theme) + "\n" + m.renderHelpBar()
	}

	left := lipgloss.JoinVertical(lipgloss.Left, m.renderForm(), m.renderChat())
	right := lipgloss.JoinVertical(lipgloss.Left, m.renderCalendar(), m.renderAgenda())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderHelpBar())
}

// layout sizes the scrolling panels to the terminal and refreshes their
// content. The chat log follows the newest entry when the log changed.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	leftW, rightW := CalculateColumns(m.width)

	m.chatLog.Width = CalculateContentWidth(leftW)
	m.chatLog.Height = CalculateViewportHeight(m.height, lipgloss.Height(m.renderForm()), ChatChromeLines)
	m.agenda.Width = CalculateContentWidth(rightW)
	m.agenda.Height = CalculateViewportHeight(m.height, lipgloss.Height(m.renderCalendar()), AgendaTitleLines)

	frame := ""
	if m.chatsInFlight > 0 {
		frame = m.spinner.View()
	}
	messages := m.ctrl.Messages()
	follow := m.chatLog.AtBottom()
	if sig := messageSignature(messages); sig != m.lastMessage {
		m.lastMessage = sig
		follow = true
	}
	m.chatLog.SetContent(view.RenderChat(messages, m.chatLog.Width, frame, m.theme))
	if follow {
		m.chatLog.GotoBottom()
	}

	m.agenda.SetContent(view.RenderAgenda(m.ctrl.Agenda(), m.agenda.Width, m.downloadKey(), m.theme))
}

func messageSignature(messages []planclient.Message) string {
	if len(messages) == 0 {
		return ""
	}
	return strconv.Itoa(len(messages)) + ":" + messages[len(messages)-1].ID
}

func (m Model) panel(focused bool, outerWidth int) lipgloss.Style {
	style := m.theme.Panel
	if focused {
		style = m.theme.FocusedPanel
	}
	return style.Width(max(outerWidth-PanelBorderWidth, 1))
}

func (m Model) renderForm() string {
	leftW, _ := CalculateColumns(m.width)
	inner := CalculateContentWidth(leftW)

	var b strings.Builder
	b.WriteString(m.theme.Title.Render(formTitle))
	for i := range m.fields {
		label := m.theme.Label
		if focus(i) == m.focus {
			label = label.Foreground(m.theme.Palette.Primary)
		}
		field := m.fields[i]
		field.Width = max(inner-FieldLabelWidth-1, 1)
		b.WriteString("\n")
		b.WriteString(label.Width(FieldLabelWidth).Render(fieldLabels[i]))
		b.WriteString(field.View())
	}
	b.WriteString("\n")
	b.WriteString(view.RenderSelection(m.ctrl.Files(), inner, m.theme))
	b.WriteString("\n")
	b.WriteString(m.renderGenerateHint())

	return m.panel(m.focus < focusChat, leftW).Render(b.String())
}

func (m Model) renderGenerateHint() string {
	key := m.firstKey(keymap.CmdGenerate)
	if m.ctrl.Loading() {
		return m.theme.Warning.Render(m.spinner.View() + " " + planclient.MsgGenerating)
	}
	if !m.ctrl.GenerateEnabled() {
		return m.theme.Muted.Render("[" + key + "] Generate (select files first)")
	}
	return m.theme.KeyHint.Render("["+key+"]") + " Generate"
}

func (m Model) renderChat() string {
	leftW, _ := CalculateColumns(m.width)
	input := m.chatInput
	input.Width = max(CalculateContentWidth(leftW)-len(input.Prompt)-1, 1)

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(chatTitle),
		m.chatLog.View(),
		input.View(),
	)
	return m.panel(m.focus == focusChat, leftW).Render(content)
}

func (m Model) renderCalendar() string {
	_, rightW := CalculateColumns(m.width)
	cal := view.RenderCalendar(m.ctrl.Calendar(), m.now(), CalculateContentWidth(rightW), m.theme)
	return m.panel(m.focus == focusCalendar, rightW).Render(cal)
}

func (m Model) renderAgenda() string {
	_, rightW := CalculateColumns(m.width)
	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(agendaTitle),
		m.agenda.View(),
	)
	return m.panel(m.focus == focusAgenda, rightW).Render(content)
}

func (m Model) renderHelpBar() string {
	status := m.status
	if m.busy() && status == "" {
		status = m.spinner.View()
	}
	return view.RenderHelpBar(m.keymap, m.mode(), m.width, status, m.theme)
}

func (m Model) downloadKey() string {
	return m.firstKey(keymap.CmdDownload)
}

func (m Model) firstKey(cmd keymap.Command) string {
	bindings := m.keymap.GetBindingsForCommand(cmd, keymap.ModeForm)
	if len(bindings) == 0 {
		return string(cmd)
	}
	return bindings[0].String()
}
