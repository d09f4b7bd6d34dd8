package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/studyplan/internal/config"
	"github.com/Iron-Ham/studyplan/internal/logging"
	"github.com/Iron-Ham/studyplan/internal/planclient"
	"github.com/Iron-Ham/studyplan/internal/tui/keymap"
	"github.com/Iron-Ham/studyplan/internal/tui/msg"
	"github.com/Iron-Ham/studyplan/internal/tui/styles"
)

// focus identifies the panel or field receiving keys.
type focus int

const (
	focusDays focus = iota
	focusHours
	focusEmail
	focusWhatsApp
	focusDrop
	focusChat
	focusCalendar
	focusAgenda
	focusCount
)

// Form fields, indexed by their focus value.
const formFieldCount = int(focusDrop) + 1

var fieldLabels = [formFieldCount]string{"Days", "Hours", "Email", "WhatsApp", "Files"}

var fieldPlaceholders = [formFieldCount]string{
	"7",
	"4",
	"optional",
	"10-digit number",
	"paste or drop file paths, then enter",
}

// Options configures a Model.
type Options struct {
	// Context bounds every request the TUI starts.
	Context    context.Context
	Service    msg.Service
	Controller *planclient.Controller
	Config     *config.Config
	Keymap     *keymap.Keymap
	Logger     *logging.Logger
	// Now supplies "today" for the calendar's today marker and jump.
	Now func() time.Time
}

// Model holds the TUI application state
type Model struct {
	ctx     context.Context
	service msg.Service
	ctrl    *planclient.Controller
	keymap  *keymap.Keymap
	theme   *styles.Theme
	logger  *logging.Logger
	now     func() time.Time

	downloadDir string

	// Input widgets
	fields    [formFieldCount]textinput.Model
	chatInput textinput.Model
	chatLog   viewport.Model
	agenda    viewport.Model
	spinner   spinner.Model

	// UI state
	focus         focus
	width         int
	height        int
	ready         bool
	showHelp      bool
	status        string
	chatsInFlight int
	downloading   bool

	// lastMessage detects log changes so the chat follows new entries.
	lastMessage string
}

// NewModel creates a new TUI model
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	m := Model{
		ctx:         opts.Context,
		service:     opts.Service,
		ctrl:        opts.Controller,
		keymap:      opts.Keymap,
		logger:      opts.Logger,
		now:         opts.Now,
		theme:       styles.Apply(cfg.TUI.Theme),
		downloadDir: cfg.Download.ResolveDir(),
		chatLog:     viewport.New(0, 0),
		agenda:      viewport.New(0, 0),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	if m.ctx == nil {
		m.ctx = context.Background()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.logger == nil {
		m.logger = logging.NopLogger()
	}
	m.logger = m.logger.WithComponent("tui")
	if m.keymap == nil {
		m.keymap = keymap.DefaultKeymap()
	}
	if m.ctrl == nil {
		m.ctrl = planclient.New(planclient.Options{Logger: m.logger, Now: m.now})
	}

	values := [formFieldCount]string{
		strconv.Itoa(cfg.Form.Days),
		strconv.Itoa(cfg.Form.Hours),
		cfg.Form.Email,
		cfg.Form.WhatsApp,
		"",
	}
	for i := range m.fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = fieldPlaceholders[i]
		ti.SetValue(values[i])
		m.fields[i] = ti
	}
	m.chatInput = textinput.New()
	m.chatInput.Prompt = "> "
	m.chatInput.Placeholder = "Ask about your plan..."

	m.fields[focusDays].Focus()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Controller returns the session state the model drives.
func (m Model) Controller() *planclient.Controller {
	return m.ctrl
}

// form collects the request fields as entered.
func (m Model) form() planclient.Form {
	return planclient.Form{
		Days:     m.fields[focusDays].Value(),
		Hours:    m.fields[focusHours].Value(),
		Email:    m.fields[focusEmail].Value(),
		WhatsApp: m.fields[focusWhatsApp].Value(),
	}
}

// mode maps the focus and overlay state onto a key binding mode.
func (m Model) mode() keymap.Mode {
	if _, open := m.ctrl.Calendar().Overlay(); open {
		return keymap.ModeOverlay
	}
	switch m.focus {
	case focusChat:
		return keymap.ModeChat
	case focusCalendar:
		return keymap.ModeCalendar
	case focusAgenda:
		return keymap.ModeAgenda
	default:
		return keymap.ModeForm
	}
}

// busy reports whether anything the spinner animates is in flight.
func (m Model) busy() bool {
	return m.ctrl.Loading() || m.chatsInFlight > 0 || m.downloading
}

// setFocus moves keyboard focus, blurring every other input.
func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = (f + focusCount) % focusCount
	for i := range m.fields {
		m.fields[i].Blur()
	}
	m.chatInput.Blur()

	switch {
	case m.focus < focusChat:
		return m.fields[m.focus].Focus()
	case m.focus == focusChat:
		return m.chatInput.Focus()
	}
	return nil
}
