package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"
)

// UploadedFile is one "file" part received by the fake backend.
type UploadedFile struct {
	Name    string
	Content string
}

// UploadCall records a request to the upload endpoint.
type UploadCall struct {
	Files  []UploadedFile
	Fields map[string]string
}

// ChatCall records a request to the chat endpoint.
type ChatCall struct {
	Message   string
	StudyPlan json.RawMessage
}

// Reply is a canned response.
type Reply struct {
	Status int
	Body   string
}

// Backend is an in-process stand-in for the planning service. Responses are
// canned and every request is recorded for assertions.
type Backend struct {
	Server *httptest.Server

	mu          sync.Mutex
	uploadReply Reply
	chatReply   Reply
	documents   map[string][]byte
	uploads     []UploadCall
	chats       []ChatCall
}

// NewBackend starts a fake backend that is closed when the test completes.
// By default both endpoints answer 500 with a JSON error until configured.
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{
		uploadReply: Reply{Status: http.StatusInternalServerError, Body: `{"error":"upload not configured"}`},
		chatReply:   Reply{Status: http.StatusInternalServerError, Body: `{"error":"chat not configured"}`},
		documents:   make(map[string][]byte),
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/upload", b.handleUpload).Methods(http.MethodPost)
	r.HandleFunc("/api/chat", b.handleChat).Methods(http.MethodPost)
	r.HandleFunc("/download/{name}", b.handleDownload).Methods(http.MethodGet)

	b.Server = httptest.NewServer(r)
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the backend root.
func (b *Backend) URL() string {
	return b.Server.URL
}

// OnUpload sets the upload endpoint response.
func (b *Backend) OnUpload(status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.uploadReply = Reply{Status: status, Body: body}
}

// OnChat sets the chat endpoint response.
func (b *Backend) OnChat(status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.chatReply = Reply{Status: status, Body: body}
}

// AddDocument serves content at /download/<name>.
func (b *Backend) AddDocument(name string, content []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.documents[name] = content
}

// Uploads returns the recorded upload requests.
func (b *Backend) Uploads() []UploadCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]UploadCall(nil), b.uploads...)
}

// Chats returns the recorded chat requests.
func (b *Backend) Chats() []ChatCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]ChatCall(nil), b.chats...)
}

func (b *Backend) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeReply(w, Reply{Status: http.StatusBadRequest, Body: `{"error":"bad multipart body"}`})
		return
	}

	call := UploadCall{Fields: make(map[string]string)}
	for key, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			call.Fields[key] = values[0]
		}
	}
	for _, fh := range r.MultipartForm.File["file"] {
		f, err := fh.Open()
		if err != nil {
			continue
		}
		data, _ := io.ReadAll(f)
		_ = f.Close()
		call.Files = append(call.Files, UploadedFile{Name: fh.Filename, Content: string(data)})
	}

	b.mu.Lock()
	b.uploads = append(b.uploads, call)
	reply := b.uploadReply
	b.mu.Unlock()

	writeReply(w, reply)
}

func (b *Backend) handleChat(w http.ResponseWriter, r *http.Request) {
	var call ChatCall
	var body struct {
		Message   string          `json:"message"`
		StudyPlan json.RawMessage `json:"study_plan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeReply(w, Reply{Status: http.StatusBadRequest, Body: `{"error":"bad json body"}`})
		return
	}
	call.Message = body.Message
	call.StudyPlan = body.StudyPlan

	b.mu.Lock()
	b.chats = append(b.chats, call)
	reply := b.chatReply
	b.mu.Unlock()

	writeReply(w, reply)
}

func (b *Backend) handleDownload(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	b.mu.Lock()
	content, ok := b.documents[name]
	b.mu.Unlock()

	if !ok {
		writeReply(w, Reply{Status: http.StatusNotFound, Body: `{"error":"File not found"}`})
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	_, _ = w.Write(content)
}

func writeReply(w http.ResponseWriter, reply Reply) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = io.WriteString(w, reply.Body)
}
