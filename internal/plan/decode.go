package plan

import (
	"encoding/json"
	"fmt"
)

// UploadResponse is a decoded success body from the upload endpoint.
// Warning is set when the server generated the plan but could not deliver
// notifications.
type UploadResponse struct {
	Plan    *StudyPlan
	Warning string
}

// uploadWire covers both success shapes:
//
//	{"study_plan": [...], "pdf_url": "..."}
//	{"warning": "...", "plan": {"study_plan": [...]}, "pdf_url": "..."}
type uploadWire struct {
	Days    *[]StudyDay `json:"study_plan"`
	PDFURL  *string     `json:"pdf_url"`
	Warning string      `json:"warning"`
	Nested  *StudyPlan  `json:"plan"`
}

// DecodeUpload parses an upload success body. A body that carries no plan
// in either shape is an error.
func DecodeUpload(data []byte) (*UploadResponse, error) {
	var w uploadWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}

	var p *StudyPlan
	switch {
	case w.Days != nil:
		p = &StudyPlan{Days: *w.Days}
	case w.Nested != nil:
		p = w.Nested
	default:
		return nil, fmt.Errorf("decode upload response: no study_plan in body")
	}
	if w.PDFURL != nil {
		p.PDFURL = *w.PDFURL
	}
	if p.Days == nil {
		p.Days = []StudyDay{}
	}
	return &UploadResponse{Plan: p, Warning: w.Warning}, nil
}

// ChatResponse is a decoded success body from the chat endpoint.
// UpdatedPlan is nil when the reply did not change the plan, including an
// explicit "updated_plan": null.
type ChatResponse struct {
	Reply       string     `json:"response"`
	UpdatedPlan *StudyPlan `json:"updated_plan"`
}

// DecodeChat parses a chat success body.
func DecodeChat(data []byte) (*ChatResponse, error) {
	var r ChatResponse
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	if r.UpdatedPlan != nil && r.UpdatedPlan.Days == nil {
		r.UpdatedPlan.Days = []StudyDay{}
	}
	return &r, nil
}

// ErrorBody is the structured failure body both endpoints return.
type ErrorBody struct {
	Error string `json:"error"`
}

// DecodeError extracts the server error string from a failure body.
func DecodeError(data []byte) (string, error) {
	var e ErrorBody
	if err := json.Unmarshal(data, &e); err != nil {
		return "", fmt.Errorf("decode error response: %w", err)
	}
	return e.Error, nil
}
