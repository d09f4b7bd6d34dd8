package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/studyplan/internal/errors"
	"github.com/Iron-Ham/studyplan/internal/selection"
	"github.com/Iron-Ham/studyplan/internal/tui/keymap"
	"github.com/Iron-Ham/studyplan/internal/tui/msg"
	"github.com/Iron-Ham/studyplan/internal/tui/styles"
)

// Status line texts.
const (
	statusSelectFiles   = "Select at least one file first."
	statusNoDocument    = "The current plan has no PDF to download."
	statusDownloading   = "Downloading study plan..."
	statusNoEvents      = "No events on this day."
	statusConfigFailed  = "Config reload failed; keeping the previous settings."
	selectionFailedText = "Could not select files: "
)

// Update handles one message and re-lays out the panels.
func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(message)
	m.layout()
	return m, cmd
}

func (m Model) update(message tea.Msg) (Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = message.Width, message.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(message)

	case msg.UploadFinishedMsg:
		m.ctrl.FinishUpload(message.Response, message.Err)
		return m, nil

	case msg.ChatFinishedMsg:
		m.chatsInFlight = max(m.chatsInFlight-1, 0)
		m.ctrl.FinishChat(message.Ticket, message.Response, message.Err)
		return m, nil

	case msg.DownloadFinishedMsg:
		m.downloading = false
		m.status = ""
		m.ctrl.FinishDownload(message.Info, message.Err)
		return m, nil

	case msg.ConfigChangedMsg:
		m.theme = styles.Apply(message.Config.TUI.Theme)
		m.downloadDir = message.Config.Download.ResolveDir()
		m.logger.Info("config reloaded", "theme", string(m.theme.Name))
		return m, nil

	case msg.ConfigErrorMsg:
		m.logger.Warn("config reload failed", "error", message.Err.Error())
		m.status = statusConfigFailed
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(message)
		return m, cmd
	}

	return m.forward(message)
}

// handleKey dispatches a key through the keymap of the active mode. Keys
// without a binding go to the focused widget.
func (m Model) handleKey(key tea.KeyMsg) (Model, tea.Cmd) {
	mode := m.mode()
	cmd, ok := m.keymap.GetBinding(key, mode)

	if m.showHelp {
		if cmd != keymap.CmdQuit {
			m.showHelp = false
			return m, nil
		}
	}
	if !ok {
		return m.forward(key)
	}
	if mode == keymap.ModeOverlay && cmd != keymap.CmdCloseEvent && cmd != keymap.CmdQuit {
		return m, nil
	}
	m.status = ""

	cal := m.ctrl.Calendar()
	switch cmd {
	case keymap.CmdQuit:
		return m, tea.Quit
	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
	case keymap.CmdNextFocus:
		return m, m.setFocus(m.focus + 1)
	case keymap.CmdPrevFocus:
		return m, m.setFocus(m.focus - 1)

	case keymap.CmdGenerate:
		return m.generate()
	case keymap.CmdDownload:
		return m.download()
	case keymap.CmdConfirm:
		if m.focus == focusDrop {
			return m.applyDrop()
		}
		return m, m.setFocus(m.focus + 1)
	case keymap.CmdSend:
		return m.sendChat()

	case keymap.CmdScrollUp:
		if m.focus == focusAgenda {
			m.agenda.LineUp(1)
		} else {
			m.chatLog.LineUp(1)
		}
	case keymap.CmdScrollDown:
		if m.focus == focusAgenda {
			m.agenda.LineDown(1)
		} else {
			m.chatLog.LineDown(1)
		}

	case keymap.CmdCursorLeft:
		cal.MoveCursor(-1)
	case keymap.CmdCursorRight:
		cal.MoveCursor(1)
	case keymap.CmdCursorUp:
		cal.MoveCursor(-7)
	case keymap.CmdCursorDown:
		cal.MoveCursor(7)
	case keymap.CmdPrevPeriod:
		cal.Prev()
	case keymap.CmdNextPeriod:
		cal.Next()
	case keymap.CmdToday:
		cal.Today(m.now())
	case keymap.CmdToggleView:
		cal.ToggleView()
	case keymap.CmdCycleEvent:
		cal.CycleSelection()
	case keymap.CmdOpenEvent:
		if !cal.Open() {
			m.status = statusNoEvents
		}
	case keymap.CmdCloseEvent:
		cal.Close()
	}
	return m, nil
}

// forward hands a message to the focused widget.
func (m Model) forward(message tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.focus < focusChat:
		m.fields[m.focus], cmd = m.fields[m.focus].Update(message)
	case m.focus == focusChat:
		m.chatInput, cmd = m.chatInput.Update(message)
	case m.focus == focusAgenda:
		m.agenda, cmd = m.agenda.Update(message)
	}
	return m, cmd
}

// generate validates the form and starts an upload.
func (m Model) generate() (Model, tea.Cmd) {
	req, err := m.ctrl.PrepareSubmission(m.form())
	if err != nil {
		if errors.Is(err, errors.ErrNoFilesSelected) {
			m.status = statusSelectFiles
		}
		return m, nil
	}
	m.ctrl.BeginUpload()
	return m, tea.Batch(msg.Upload(m.ctx, m.service, req), m.spinner.Tick)
}

// sendChat posts the chat input and starts a chat call.
func (m Model) sendChat() (Model, tea.Cmd) {
	text, snapshot, ticket, err := m.ctrl.BeginChat(m.chatInput.Value())
	if err != nil {
		return m, nil
	}
	m.chatInput.Reset()
	m.chatsInFlight++
	return m, tea.Batch(msg.Chat(m.ctx, m.service, ticket, text, snapshot), m.spinner.Tick)
}

// download saves the current plan's document into the download dir.
func (m Model) download() (Model, tea.Cmd) {
	link, err := m.ctrl.DocumentLink()
	if err != nil {
		m.status = statusNoDocument
		return m, nil
	}
	if m.downloading {
		return m, nil
	}
	m.downloading = true
	m.status = statusDownloading
	return m, tea.Batch(msg.Download(m.ctx, m.service, link, m.downloadDir), m.spinner.Tick)
}

// applyDrop resolves the drop field into a new selection. A failed drop
// leaves the current selection as it was.
func (m Model) applyDrop() (Model, tea.Cmd) {
	files, err := selection.FromDrop(m.fields[focusDrop].Value())
	if err != nil {
		m.ctrl.PostBot(selectionFailedText + err.Error())
		return m, nil
	}
	if len(files) == 0 {
		return m, nil
	}
	m.ctrl.SelectFiles(files)
	m.fields[focusDrop].Reset()
	return m, nil
}
