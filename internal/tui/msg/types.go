package msg

import (
	"github.com/Iron-Ham/studyplan/internal/config"
	"github.com/Iron-Ham/studyplan/internal/pdfdoc"
	"github.com/Iron-Ham/studyplan/internal/plan"
	"github.com/Iron-Ham/studyplan/internal/planclient"
)

// UploadFinishedMsg reports the outcome of a plan upload.
type UploadFinishedMsg struct {
	Response *plan.UploadResponse
	Err      error
}

// ChatFinishedMsg reports the outcome of a chat call. Ticket identifies
// the call's typing placeholder.
type ChatFinishedMsg struct {
	Ticket   planclient.ChatTicket
	Response *plan.ChatResponse
	Err      error
}

// DownloadFinishedMsg reports a saved (or failed) plan document.
type DownloadFinishedMsg struct {
	Info pdfdoc.Info
	Err  error
}

// ConfigChangedMsg carries a reloaded configuration.
type ConfigChangedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg reports a config file that changed but failed to load.
type ConfigErrorMsg struct {
	Err error
}
