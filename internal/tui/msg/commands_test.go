package msg

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/Iron-Ham/studyplan/internal/api"
	"github.com/Iron-Ham/studyplan/internal/plan"
	"github.com/Iron-Ham/studyplan/internal/planclient"
	"github.com/Iron-Ham/studyplan/internal/testutil"
)

type fakeService struct {
	upload  *plan.UploadResponse
	chat    *plan.ChatResponse
	err     error
	doc     []byte
	message string
	sent    *plan.StudyPlan
}

func (f *fakeService) Upload(context.Context, api.UploadRequest) (*plan.UploadResponse, error) {
	return f.upload, f.err
}

func (f *fakeService) Chat(_ context.Context, message string, current *plan.StudyPlan) (*plan.ChatResponse, error) {
	f.message, f.sent = message, current
	return f.chat, f.err
}

func (f *fakeService) Download(_ context.Context, _ string, w io.Writer) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	n, err := w.Write(f.doc)
	return int64(n), err
}

func TestUpload(t *testing.T) {
	want := &plan.UploadResponse{Plan: &plan.StudyPlan{}}
	svc := &fakeService{upload: want}

	got, ok := Upload(context.Background(), svc, api.UploadRequest{})().(UploadFinishedMsg)
	if !ok {
		t.Fatal("Upload command did not return an UploadFinishedMsg")
	}
	if got.Response != want || got.Err != nil {
		t.Errorf("got %+v", got)
	}
}

func TestUpload_Error(t *testing.T) {
	boom := errors.New("boom")
	got := Upload(context.Background(), &fakeService{err: boom}, api.UploadRequest{})().(UploadFinishedMsg)
	if !errors.Is(got.Err, boom) {
		t.Errorf("Err = %v, want %v", got.Err, boom)
	}
}

func TestChat_CarriesTicketAndPlan(t *testing.T) {
	svc := &fakeService{chat: &plan.ChatResponse{Reply: "ok"}}
	current := &plan.StudyPlan{Days: []plan.StudyDay{{Day: "Day 1"}}}
	ticket := planclient.ChatTicket{}

	got := Chat(context.Background(), svc, ticket, "hello", current)().(ChatFinishedMsg)
	if got.Ticket != ticket {
		t.Error("ticket not carried through")
	}
	if got.Response.Reply != "ok" {
		t.Errorf("Reply = %q", got.Response.Reply)
	}
	if svc.message != "hello" || svc.sent != current {
		t.Errorf("service got (%q, %p)", svc.message, svc.sent)
	}
}

func TestDownload(t *testing.T) {
	dir := t.TempDir()
	svc := &fakeService{doc: testutil.MinimalPDF(2)}

	got := Download(context.Background(), svc, "/download/plan.pdf", dir)().(DownloadFinishedMsg)
	if got.Err != nil {
		t.Fatalf("Err = %v", got.Err)
	}
	if got.Info.Path != filepath.Join(dir, "plan.pdf") || got.Info.Pages != 2 {
		t.Errorf("Info = %+v", got.Info)
	}
}
