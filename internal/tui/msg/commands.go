package msg

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/studyplan/internal/api"
	"github.com/Iron-Ham/studyplan/internal/plan"
	"github.com/Iron-Ham/studyplan/internal/planclient"
)

// Service is the planning backend. *api.Client satisfies it.
type Service interface {
	Upload(ctx context.Context, req api.UploadRequest) (*plan.UploadResponse, error)
	Chat(ctx context.Context, message string, current *plan.StudyPlan) (*plan.ChatResponse, error)
	planclient.Downloader
}

// Upload returns a command that submits req and reports an UploadFinishedMsg.
func Upload(ctx context.Context, svc Service, req api.UploadRequest) tea.Cmd {
	return func() tea.Msg {
		res, err := svc.Upload(ctx, req)
		return UploadFinishedMsg{Response: res, Err: err}
	}
}

// Chat returns a command that sends message with a snapshot of the current
// plan and reports a ChatFinishedMsg for ticket.
func Chat(ctx context.Context, svc Service, ticket planclient.ChatTicket, message string, current *plan.StudyPlan) tea.Cmd {
	return func() tea.Msg {
		res, err := svc.Chat(ctx, message, current)
		return ChatFinishedMsg{Ticket: ticket, Response: res, Err: err}
	}
}

// Download returns a command that saves link into dir and reports a
// DownloadFinishedMsg.
func Download(ctx context.Context, svc Service, link, dir string) tea.Cmd {
	return func() tea.Msg {
		info, err := planclient.SaveDocument(ctx, svc, link, dir)
		return DownloadFinishedMsg{Info: info, Err: err}
	}
}
