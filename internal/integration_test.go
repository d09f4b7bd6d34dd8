// Package internal contains integration tests that drive a planning session
// end to end: selection, upload, chat and download against a fake backend,
// with the event bus observing the controller.
package internal

import (
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Iron-Ham/studyplan/internal/api"
	"github.com/Iron-Ham/studyplan/internal/calendar"
	"github.com/Iron-Ham/studyplan/internal/event"
	"github.com/Iron-Ham/studyplan/internal/logging"
	"github.com/Iron-Ham/studyplan/internal/planclient"
	"github.com/Iron-Ham/studyplan/internal/selection"
	"github.com/Iron-Ham/studyplan/internal/testutil"
)

var today = time.Date(2026, time.April, 6, 9, 0, 0, 0, time.UTC)

type recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recorder) record(e event.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) ofType(eventType string) []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.Event
	for _, e := range r.events {
		if e.EventType() == eventType {
			out = append(out, e)
		}
	}
	return out
}

func newSession(t *testing.T, backend *testutil.Backend) (*planclient.Controller, *api.Client, *recorder) {
	t.Helper()

	logger := logging.NopLogger()
	client, err := api.New(backend.URL(), api.WithLogger(logger))
	if err != nil {
		t.Fatalf("api.New() error = %v", err)
	}

	bus := event.NewBus(logger)
	rec := &recorder{}
	bus.SubscribeAll(rec.record)

	ctrl := planclient.New(planclient.Options{
		Calendar: calendar.New(today, calendar.WithSeed(7)),
		Bus:      bus,
		Logger:   logger,
		Now:      func() time.Time { return today },
	})
	return ctrl, client, rec
}

// TestPlanningSessionIntegration walks the full happy path.
func TestPlanningSessionIntegration(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.OnUpload(http.StatusOK, `{
		"study_plan": [
			{"day": "Day 1", "topics": [{"name": "Binary Search Algorithm", "hours": 2}, {"name": "Lunch", "hours": 0.5}]},
			{"day": "Day 2", "topics": [{"name": "Graph Search", "hours": 1.5}]}
		],
		"pdf_url": "/download/plan.pdf"
	}`)
	backend.OnChat(http.StatusOK, `{
		"response": "Added a revision day.",
		"updated_plan": {"study_plan": [
			{"day": "Day 1", "topics": [{"name": "Binary Search Algorithm", "hours": 2}]},
			{"day": "Day 2", "topics": [{"name": "Graph Search", "hours": 1.5}]},
			{"day": "Day 3", "topics": [{"name": "Revision", "hours": 1}, {"name": "Mock Test", "hours": 2}]}
		], "pdf_url": "/download/plan.pdf"}
	}`)
	backend.AddDocument("plan.pdf", testutil.MinimalPDF(3))

	ctrl, client, rec := newSession(t, backend)
	ctx := context.Background()

	dir := t.TempDir()
	testutil.WriteFiles(t, dir, map[string]string{
		"week1.pdf": "lecture one",
		"week2.pdf": "lecture two",
	})
	files, err := selection.Resolve([]string{filepath.Join(dir, "*.pdf")})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	ctrl.SelectFiles(files)

	// Upload
	req, err := ctrl.PrepareSubmission(planclient.Form{Days: "2", Hours: "3", WhatsApp: "9876543210"})
	if err != nil {
		t.Fatalf("PrepareSubmission() error = %v", err)
	}
	ctrl.BeginUpload()
	if !ctrl.Loading() {
		t.Error("Loading() = false during upload")
	}
	res, err := client.Upload(ctx, req)
	ctrl.FinishUpload(res, err)
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if ctrl.Loading() {
		t.Error("Loading() = true after upload finished")
	}

	uploads := backend.Uploads()
	if len(uploads) != 1 || len(uploads[0].Files) != 2 {
		t.Fatalf("backend saw %+v, want one upload with two files", uploads)
	}
	if got := uploads[0].Fields["whatsapp_number"]; got != "+919876543210" {
		t.Errorf("whatsapp_number = %q", got)
	}
	if got := ctrl.Calendar().Len(); got != 3 {
		t.Errorf("calendar has %d events after upload, want 3", got)
	}

	// Chat with a plan update
	message, current, ticket, err := ctrl.BeginChat("  add a revision day ")
	if err != nil {
		t.Fatalf("BeginChat() error = %v", err)
	}
	reply, err := client.Chat(ctx, message, current)
	ctrl.FinishChat(ticket, reply, err)
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	chats := backend.Chats()
	if len(chats) != 1 || chats[0].Message != "add a revision day" {
		t.Fatalf("backend saw chats %+v", chats)
	}
	var sent struct {
		Days []json.RawMessage `json:"study_plan"`
	}
	if err := json.Unmarshal(chats[0].StudyPlan, &sent); err != nil || len(sent.Days) != 2 {
		t.Errorf("chat carried plan %s, want the two-day plan", chats[0].StudyPlan)
	}
	if got := ctrl.Calendar().Len(); got != 4 {
		t.Errorf("calendar has %d events after chat, want 4", got)
	}
	if got := len(ctrl.Agenda().Days); got != 3 {
		t.Errorf("agenda has %d days after chat, want 3", got)
	}

	// Download
	link, err := ctrl.DocumentLink()
	if err != nil {
		t.Fatalf("DocumentLink() error = %v", err)
	}
	info, err := planclient.SaveDocument(ctx, client, link, filepath.Join(dir, "out"))
	ctrl.FinishDownload(info, err)
	if err != nil {
		t.Fatalf("SaveDocument() error = %v", err)
	}
	if info.Pages != 3 {
		t.Errorf("saved document has %d pages, want 3", info.Pages)
	}

	// The log holds no typing placeholder once every call has finished
	for _, m := range ctrl.Messages() {
		if m.Transient() {
			t.Errorf("placeholder %q left in the log", m.Text)
		}
	}

	if got := len(rec.ofType(event.TypePlanReplaced)); got != 2 {
		t.Errorf("saw %d plan.replaced events, want 2", got)
	}
	if got := len(rec.ofType(event.TypeDocumentSaved)); got != 1 {
		t.Errorf("saw %d document.saved events, want 1", got)
	}
	loading := rec.ofType(event.TypeLoadingChanged)
	if len(loading) != 2 {
		t.Fatalf("saw %d loading.changed events, want 2", len(loading))
	}
	if !loading[0].(event.LoadingChangedEvent).Loading || loading[1].(event.LoadingChangedEvent).Loading {
		t.Error("loading should switch on then off")
	}
}

// TestApplicationErrorKeepsPlanIntegration checks that a rejected chat
// leaves the generated plan in place.
func TestApplicationErrorKeepsPlanIntegration(t *testing.T) {
	backend := testutil.NewBackend(t)
	backend.OnUpload(http.StatusOK, `{"study_plan": [{"day": "Day 1", "topics": [{"name": "Sorting", "hours": 1}]}]}`)
	backend.OnChat(http.StatusBadRequest, `{"error":"Message too long"}`)

	ctrl, client, _ := newSession(t, backend)
	ctx := context.Background()

	notes := testutil.WriteFile(t, "notes.pdf", "x")
	files, err := selection.Resolve([]string{notes})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	ctrl.SelectFiles(files)

	req, err := ctrl.PrepareSubmission(planclient.Form{Days: "1", Hours: "1", WhatsApp: "9876543210"})
	if err != nil {
		t.Fatalf("PrepareSubmission() error = %v", err)
	}
	ctrl.BeginUpload()
	res, err := client.Upload(ctx, req)
	ctrl.FinishUpload(res, err)
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	before := ctrl.Plan()

	message, current, ticket, err := ctrl.BeginChat("make it longer")
	if err != nil {
		t.Fatalf("BeginChat() error = %v", err)
	}
	reply, err := client.Chat(ctx, message, current)
	ctrl.FinishChat(ticket, reply, err)
	if err == nil {
		t.Fatal("Chat() error = nil, want an application error")
	}

	if ctrl.Plan() != before {
		t.Error("a failed chat must not replace the plan")
	}
	msgs := ctrl.Messages()
	if last := msgs[len(msgs)-1]; last.Text != "Error: Message too long" {
		t.Errorf("last message = %q, want %q", last.Text, "Error: Message too long")
	}
}
