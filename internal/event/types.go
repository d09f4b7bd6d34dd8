package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a "category.action" identifier.
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type identifiers.
const (
	TypePlanReplaced     = "plan.replaced"
	TypeMessagePosted    = "message.posted"
	TypeMessageRemoved   = "message.removed"
	TypeLoadingChanged   = "loading.changed"
	TypeSelectionChanged = "selection.changed"
	TypeDocumentSaved    = "document.saved"
)

// baseEvent provides common fields for all events.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// PlanReplacedEvent is emitted after a plan becomes current and both views
// were rebuilt from it.
type PlanReplacedEvent struct {
	baseEvent
	Source string // "upload" or "chat"
	Days   int
	Topics int
	HasPDF bool
}

// NewPlanReplacedEvent creates a PlanReplacedEvent.
func NewPlanReplacedEvent(source string, days, topics int, hasPDF bool) PlanReplacedEvent {
	return PlanReplacedEvent{
		baseEvent: newBaseEvent(TypePlanReplaced),
		Source:    source,
		Days:      days,
		Topics:    topics,
		HasPDF:    hasPDF,
	}
}

// MessagePostedEvent is emitted when a chat log entry is appended.
type MessagePostedEvent struct {
	baseEvent
	ID        string
	Role      string // "user" or "bot"
	Text      string
	Transient bool // typing placeholder
}

// NewMessagePostedEvent creates a MessagePostedEvent.
func NewMessagePostedEvent(id, role, text string, transient bool) MessagePostedEvent {
	return MessagePostedEvent{
		baseEvent: newBaseEvent(TypeMessagePosted),
		ID:        id,
		Role:      role,
		Text:      text,
		Transient: transient,
	}
}

// MessageRemovedEvent is emitted when an entry is removed from the log.
type MessageRemovedEvent struct {
	baseEvent
	ID string
}

// NewMessageRemovedEvent creates a MessageRemovedEvent.
func NewMessageRemovedEvent(id string) MessageRemovedEvent {
	return MessageRemovedEvent{
		baseEvent: newBaseEvent(TypeMessageRemoved),
		ID:        id,
	}
}

// LoadingChangedEvent is emitted when the upload indicator turns on or off.
type LoadingChangedEvent struct {
	baseEvent
	Loading bool
}

// NewLoadingChangedEvent creates a LoadingChangedEvent.
func NewLoadingChangedEvent(loading bool) LoadingChangedEvent {
	return LoadingChangedEvent{
		baseEvent: newBaseEvent(TypeLoadingChanged),
		Loading:   loading,
	}
}

// SelectionChangedEvent is emitted when the file selection is replaced.
type SelectionChangedEvent struct {
	baseEvent
	Files []string // base names, in selection order
}

// NewSelectionChangedEvent creates a SelectionChangedEvent.
func NewSelectionChangedEvent(files []string) SelectionChangedEvent {
	return SelectionChangedEvent{
		baseEvent: newBaseEvent(TypeSelectionChanged),
		Files:     files,
	}
}

// DocumentSavedEvent is emitted when the plan PDF has been written to disk.
type DocumentSavedEvent struct {
	baseEvent
	Path  string
	Bytes int64
	Pages int
}

// NewDocumentSavedEvent creates a DocumentSavedEvent.
func NewDocumentSavedEvent(path string, bytes int64, pages int) DocumentSavedEvent {
	return DocumentSavedEvent{
		baseEvent: newBaseEvent(TypeDocumentSaved),
		Path:      path,
		Bytes:     bytes,
		Pages:     pages,
	}
}
