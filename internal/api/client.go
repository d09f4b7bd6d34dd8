// Package api is the HTTP client for the study plan service.
//
// The client maps every outcome onto one of the error kinds in
// internal/errors: a non-2xx response with a JSON error body becomes an
// *errors.APIError carrying the server message verbatim, and anything that
// prevents a usable answer (network failure, undecodable body) becomes an
// *errors.TransportError. No client-side timeout is imposed unless one is
// configured.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/Iron-Ham/studyplan/internal/errors"
	"github.com/Iron-Ham/studyplan/internal/logging"
	"github.com/Iron-Ham/studyplan/internal/plan"
)

// Endpoint paths on the planning service.
const (
	UploadPath = "/api/upload"
	ChatPath   = "/api/chat"
)

// maxErrorBody bounds how much of a failure body is read.
const maxErrorBody = 1 << 20

// File is an uploadable file. selection.File satisfies it.
type File interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// UploadRequest carries the form fields of a plan submission. WhatsApp must
// already be normalized.
type UploadRequest struct {
	Files    []File
	Days     string
	Hours    string
	Email    string
	WhatsApp string
}

// Client talks to the planning service.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets a whole-request timeout. Zero leaves the transport's own
// behavior in charge.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithLogger attaches a logger for request tracing.
func WithLogger(l *logging.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Client for the service rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}
	c := &Client{
		baseURL: u,
		http:    &http.Client{},
		logger:  logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the service root.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ResolveURL resolves a link from a response (such as pdf_url) against the
// service root.
func (c *Client) ResolveURL(link string) (string, error) {
	ref, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("invalid link %q: %w", link, err)
	}
	return c.baseURL.ResolveReference(ref).String(), nil
}

func (c *Client) endpoint(p string) string {
	u := *c.baseURL
	u.Path = path.Join(u.Path, p)
	return u.String()
}

// Upload submits files and form fields and returns the generated plan.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (*plan.UploadResponse, error) {
	log := c.logger.WithEndpoint(UploadPath)

	body, contentType, err := encodeUpload(req)
	if err != nil {
		log.Warn("failed to encode upload", "error", err.Error())
		return nil, errors.NewTransportError(UploadPath, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(UploadPath), body)
	if err != nil {
		return nil, errors.NewTransportError(UploadPath, err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")

	log.Debug("sending upload", "files", len(req.Files), "days", req.Days, "hours", req.Hours)
	status, data, err := c.do(httpReq)
	if err != nil {
		log.Warn("upload failed", "error", err.Error())
		return nil, err
	}
	if !isSuccess(status) {
		return nil, failure(UploadPath, status, data)
	}

	res, err := plan.DecodeUpload(data)
	if err != nil {
		return nil, errors.NewTransportError(UploadPath, errors.Join(errors.ErrMalformedResponse, err)).WithStatus(status)
	}
	log.Info("plan received", "days", len(res.Plan.Days), "topics", res.Plan.TopicCount(), "pdf", res.Plan.HasDocument())
	return res, nil
}

// chatRequest is the JSON body of a chat call. StudyPlan is null when no
// plan has been generated yet.
type chatRequest struct {
	Message   string          `json:"message"`
	StudyPlan *plan.StudyPlan `json:"study_plan"`
}

// Chat sends a message with the current plan for context.
func (c *Client) Chat(ctx context.Context, message string, current *plan.StudyPlan) (*plan.ChatResponse, error) {
	log := c.logger.WithEndpoint(ChatPath)

	payload, err := json.Marshal(chatRequest{Message: message, StudyPlan: current})
	if err != nil {
		return nil, errors.NewTransportError(ChatPath, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(ChatPath), bytes.NewReader(payload))
	if err != nil {
		return nil, errors.NewTransportError(ChatPath, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	log.Debug("sending chat", "has_plan", current != nil, "length", len(message))
	status, data, err := c.do(httpReq)
	if err != nil {
		log.Warn("chat failed", "error", err.Error())
		return nil, err
	}
	if !isSuccess(status) {
		return nil, failure(ChatPath, status, data)
	}

	res, err := plan.DecodeChat(data)
	if err != nil {
		return nil, errors.NewTransportError(ChatPath, errors.Join(errors.ErrMalformedResponse, err)).WithStatus(status)
	}
	log.Debug("chat reply", "updated_plan", res.UpdatedPlan != nil)
	return res, nil
}

// Download fetches link (relative links resolve against the service root)
// and copies the body to w. It returns the number of bytes written.
func (c *Client) Download(ctx context.Context, link string, w io.Writer) (int64, error) {
	target, err := c.ResolveURL(link)
	if err != nil {
		return 0, errors.NewTransportError(link, err)
	}
	log := c.logger.WithEndpoint(link)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, errors.NewTransportError(link, err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		log.Warn("download failed", "error", err.Error())
		return 0, errors.NewTransportError(link, errors.Join(errors.ErrNoResponse, err))
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return 0, failure(link, resp.StatusCode, data)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, errors.NewTransportError(link, err).WithStatus(resp.StatusCode)
	}
	log.Info("downloaded document", "bytes", n)
	return n, nil
}

// do performs the request and reads the full body.
func (c *Client) do(req *http.Request) (int, []byte, error) {
	endpoint := req.URL.Path
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, errors.NewTransportError(endpoint, errors.Join(errors.ErrNoResponse, err))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, errors.NewTransportError(endpoint, err).WithStatus(resp.StatusCode)
	}
	return resp.StatusCode, data, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// failure turns a non-2xx response into an APIError when the body carries a
// non-empty JSON error string, otherwise into a TransportError.
func failure(endpoint string, status int, data []byte) error {
	msg, err := plan.DecodeError(data)
	if err != nil {
		return errors.NewTransportError(endpoint, errors.Join(errors.ErrMalformedResponse, err)).WithStatus(status)
	}
	if msg == "" {
		return errors.NewTransportError(endpoint, errors.ErrMalformedResponse).WithStatus(status)
	}
	return errors.NewAPIError(endpoint, status, msg)
}

// encodeUpload builds the multipart body: one "file" part per selected
// file, in order, followed by the scalar fields.
func encodeUpload(req UploadRequest) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, f := range req.Files {
		if err := writeFilePart(mw, f); err != nil {
			return nil, "", err
		}
	}

	fields := []struct{ name, value string }{
		{"days", req.Days},
		{"hours", req.Hours},
		{"email", req.Email},
		{"whatsapp_number", req.WhatsApp},
	}
	for _, field := range fields {
		if err := mw.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", field.name, err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart body: %w", err)
	}
	return &buf, mw.FormDataContentType(), nil
}

func writeFilePart(mw *multipart.Writer, f File) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Name(), err)
	}
	defer rc.Close()

	part, err := mw.CreateFormFile("file", f.Name())
	if err != nil {
		return fmt.Errorf("create part for %s: %w", f.Name(), err)
	}
	if _, err := io.Copy(part, rc); err != nil {
		return fmt.Errorf("copy %s: %w", f.Name(), err)
	}
	return nil
}
