package planclient

import "github.com/Iron-Ham/studyplan/internal/validate"

// Bot messages posted by the controller.
const (
	MsgInvalidPhone    = validate.InvalidPhoneMessage
	MsgGenerating      = "Generating your study plan..."
	MsgGenerated       = "Your study plan has been generated!"
	MsgFollowUp        = "You can ask me questions about your study plan or request adjustments."
	MsgUploadFailed    = "An error occurred while generating the study plan."
	MsgChatFailed      = "Sorry, I encountered an error. Please try again."
	MsgDownloadFailed  = "Could not download the study plan."
	TypingPlaceholder  = "..."
	fileSelectedPrefix = "File selected: "
	errorPrefix        = "Error: "
)

// Role identifies the author of a log entry.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

type entryKind int

const (
	kindNormal entryKind = iota
	kindFileNotice
	kindTyping
)

// Message is one chat log entry.
type Message struct {
	ID   string
	Role Role
	Text string

	kind entryKind
}

// Transient reports whether the entry is a typing placeholder.
func (m Message) Transient() bool {
	return m.kind == kindTyping
}
