package planclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Iron-Ham/studyplan/internal/agenda"
	"github.com/Iron-Ham/studyplan/internal/api"
	"github.com/Iron-Ham/studyplan/internal/calendar"
	"github.com/Iron-Ham/studyplan/internal/errors"
	"github.com/Iron-Ham/studyplan/internal/event"
	"github.com/Iron-Ham/studyplan/internal/logging"
	"github.com/Iron-Ham/studyplan/internal/plan"
	"github.com/Iron-Ham/studyplan/internal/selection"
	"github.com/Iron-Ham/studyplan/internal/validate"
)

// Plan sources reported on plan.replaced events.
const (
	SourceUpload = "upload"
	SourceChat   = "chat"
)

// Form holds the plan request fields as entered.
type Form struct {
	Days     string
	Hours    string
	Email    string
	WhatsApp string
}

// Options configures a Controller. Zero values select defaults.
type Options struct {
	Calendar *calendar.Calendar
	Bus      *event.Bus
	Logger   *logging.Logger
	// Now supplies "today" for date projection.
	Now func() time.Time
}

// Controller is the state of one planning session.
type Controller struct {
	current  *plan.StudyPlan
	files    []selection.File
	messages []Message
	pending  int

	calendar *calendar.Calendar
	agenda   agenda.Agenda

	bus    *event.Bus
	logger *logging.Logger
	now    func() time.Time

	// rebuild projects a plan onto both views. Tests replace it.
	rebuild func(p *plan.StudyPlan, today time.Time)
}

// New creates a Controller with no plan and an empty log.
func New(opts Options) *Controller {
	c := &Controller{
		calendar: opts.Calendar,
		bus:      opts.Bus,
		logger:   opts.Logger,
		now:      opts.Now,
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.logger == nil {
		c.logger = logging.NopLogger()
	}
	c.logger = c.logger.WithComponent("planclient")
	if c.calendar == nil {
		c.calendar = calendar.New(c.now())
	}
	c.rebuild = c.rebuildViews
	return c
}

// Plan returns the current plan, or nil before the first generation.
func (c *Controller) Plan() *plan.StudyPlan {
	return c.current
}

// Calendar returns the calendar projection of the current plan.
func (c *Controller) Calendar() *calendar.Calendar {
	return c.calendar
}

// Agenda returns the day-list projection of the current plan.
func (c *Controller) Agenda() agenda.Agenda {
	return c.agenda
}

// Messages returns a copy of the chat log.
func (c *Controller) Messages() []Message {
	return append([]Message(nil), c.messages...)
}

// Loading reports whether a plan generation is in flight.
func (c *Controller) Loading() bool {
	return c.pending > 0
}

// Files returns the current selection.
func (c *Controller) Files() []selection.File {
	return append([]selection.File(nil), c.files...)
}

// GenerateEnabled reports whether a submission may be started.
func (c *Controller) GenerateEnabled() bool {
	return len(c.files) > 0
}

// SelectFiles replaces the selection, drops the notices of the previous
// selection and posts one notice per new file.
func (c *Controller) SelectFiles(files []selection.File) {
	c.files = append([]selection.File(nil), files...)
	c.removeWhere(func(m Message) bool { return m.kind == kindFileNotice })

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name()
		c.post(RoleBot, fileSelectedPrefix+f.Name(), kindFileNotice)
	}
	c.logger.Debug("selection replaced", "files", len(files))
	c.bus.Publish(event.NewSelectionChangedEvent(names))
}

// PrepareSubmission validates the form against the current selection and
// builds the upload request. An invalid WhatsApp number posts the
// validation message; no request may be sent when an error is returned.
func (c *Controller) PrepareSubmission(form Form) (api.UploadRequest, error) {
	if !c.GenerateEnabled() {
		return api.UploadRequest{}, errors.ErrNoFilesSelected
	}

	whatsapp, err := validate.NormalizeWhatsApp(form.WhatsApp)
	if err != nil {
		c.PostBot(MsgInvalidPhone)
		return api.UploadRequest{}, err
	}

	files := make([]api.File, len(c.files))
	for i, f := range c.files {
		files[i] = f
	}
	return api.UploadRequest{
		Files:    files,
		Days:     strings.TrimSpace(form.Days),
		Hours:    strings.TrimSpace(form.Hours),
		Email:    strings.TrimSpace(form.Email),
		WhatsApp: whatsapp,
	}, nil
}

// BeginUpload shows the loading indicator and posts the progress message.
func (c *Controller) BeginUpload() {
	c.setPending(c.pending + 1)
	c.PostBot(MsgGenerating)
}

// FinishUpload applies the outcome of an upload started with BeginUpload.
// The loading indicator is cleared whatever the outcome.
func (c *Controller) FinishUpload(res *plan.UploadResponse, err error) {
	defer func() { c.setPending(c.pending - 1) }()

	if err == nil && (res == nil || res.Plan == nil) {
		err = errors.NewTransportError(api.UploadPath, errors.ErrMalformedResponse)
	}
	if err != nil {
		c.logger.Warn("upload failed", "kind", errors.KindOf(err).String(), "error", err.Error())
		c.PostBot(failureText(err, MsgUploadFailed))
		return
	}

	if err := c.applyPlan(res.Plan, SourceUpload); err != nil {
		c.logger.Error("failed to render plan", "error", err.Error())
		c.PostBot(MsgUploadFailed)
		return
	}
	c.PostBot(MsgGenerated)
	c.PostBot(MsgFollowUp)
	if res.Warning != "" {
		c.PostBot(res.Warning)
	}
}

// ChatTicket identifies an in-flight chat call.
type ChatTicket struct {
	placeholder string
}

// BeginChat posts a user message and the typing placeholder. It returns the
// trimmed message and a snapshot of the current plan (nil before the first
// generation) to send along.
func (c *Controller) BeginChat(text string) (string, *plan.StudyPlan, ChatTicket, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil, ChatTicket{}, errors.ErrEmptyMessage
	}

	c.post(RoleUser, text, kindNormal)
	id := c.post(RoleBot, TypingPlaceholder, kindTyping)
	return text, c.current.Clone(), ChatTicket{placeholder: id}, nil
}

// FinishChat removes the ticket's placeholder and applies the reply. A
// reply without an updated plan leaves the plan and both views untouched.
func (c *Controller) FinishChat(ticket ChatTicket, res *plan.ChatResponse, err error) {
	c.removeWhere(func(m Message) bool { return m.ID == ticket.placeholder })

	if err == nil && res == nil {
		err = errors.NewTransportError(api.ChatPath, errors.ErrMalformedResponse)
	}
	if err != nil {
		c.logger.Warn("chat failed", "kind", errors.KindOf(err).String(), "error", err.Error())
		c.PostBot(failureText(err, MsgChatFailed))
		return
	}

	c.PostBot(res.Reply)
	if res.UpdatedPlan == nil {
		return
	}
	if err := c.applyPlan(res.UpdatedPlan, SourceChat); err != nil {
		c.logger.Error("failed to render updated plan", "error", err.Error())
		c.PostBot(MsgChatFailed)
	}
}

// PostBot appends a bot message to the log.
func (c *Controller) PostBot(text string) {
	c.post(RoleBot, text, kindNormal)
}

// applyPlan makes p current and rebuilds both views from it. A panic while
// rebuilding restores the views of the previous plan and is returned as an
// error.
func (c *Controller) applyPlan(p *plan.StudyPlan, source string) (err error) {
	today := c.now()
	previous := c.current

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("rebuild views: %v", r)
			c.current = previous
			c.rebuildViews(previous, today)
		}
	}()

	c.rebuild(p, today)
	c.current = p

	c.logger.Info("plan applied", "source", source, "days", len(p.Days), "topics", p.TopicCount())
	c.bus.Publish(event.NewPlanReplacedEvent(source, len(p.Days), p.TopicCount(), p.HasDocument()))
	return nil
}

func (c *Controller) rebuildViews(p *plan.StudyPlan, today time.Time) {
	c.calendar.Rebuild(p, today)
	c.agenda = agenda.Build(p, today)
}

func (c *Controller) setPending(n int) {
	if n < 0 {
		n = 0
	}
	was := c.Loading()
	c.pending = n
	if was != c.Loading() {
		c.bus.Publish(event.NewLoadingChangedEvent(c.Loading()))
	}
}

func (c *Controller) post(role Role, text string, kind entryKind) string {
	m := Message{ID: uuid.NewString(), Role: role, Text: text, kind: kind}
	c.messages = append(c.messages, m)
	c.bus.Publish(event.NewMessagePostedEvent(m.ID, string(role), text, kind == kindTyping))
	return m.ID
}

func (c *Controller) removeWhere(match func(Message) bool) {
	kept := c.messages[:0]
	var removed []string
	for _, m := range c.messages {
		if match(m) {
			removed = append(removed, m.ID)
			continue
		}
		kept = append(kept, m)
	}
	c.messages = kept
	for _, id := range removed {
		c.bus.Publish(event.NewMessageRemovedEvent(id))
	}
}

// failureText is the bot message for a failed call: the server's own
// message for application errors, fallback for everything else.
func failureText(err error, fallback string) string {
	var apiErr *errors.APIError
	if errors.As(err, &apiErr) {
		return errorPrefix + apiErr.ServerMessage()
	}
	return fallback
}
