package view

import (
	"fmt"

	"github.com/agentstation/ainything/pkg/catalogs"
	"github.com/agentstation/ainything/pkg/content"
	"github.com/agentstation/ainything/pkg/query"
)

// Mode is the detail view state machine: LIST or DETAIL(model).
type Mode int

const (
	ModeList Mode = iota
	ModeDetail
)

// String returns "list" or "detail".
func (m Mode) String() string {
	if m == ModeDetail {
		return "detail"
	}
	return "list"
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText decodes a mode name.
func (m *Mode) UnmarshalText(b []byte) error {
	switch string(b) {
	case "list", "":
		*m = ModeList
	case "detail":
		*m = ModeDetail
	default:
		return fmt.Errorf("unknown view mode %q", b)
	}
	return nil
}

// ErrorKind separates a failed load from a failed evaluation.
type ErrorKind string

const (
	ErrorLoad       ErrorKind = "load"
	ErrorEvaluation ErrorKind = "evaluation"
)

// ErrorState is shown in place of the results.
type ErrorState struct {
	Kind      ErrorKind `json:"kind"`
	Message   string    `json:"message"`
	Retryable bool      `json:"retryable"`
}

// AboutState is the independently loaded About section.
type AboutState struct {
	Document *content.Document `json:"document,omitempty"`
	Err      string            `json:"error,omitempty"`
}

// Snapshot is everything a presentation layer needs to draw the view.
type Snapshot struct {
	Loaded   bool             `json:"loaded"`
	Mode     Mode             `json:"mode"`
	Query    string           `json:"query"`
	Settings query.Settings   `json:"settings"`
	Results  []catalogs.Model `json:"results"`
	Summary  Summary          `json:"summary"`
	Detail   *catalogs.Model  `json:"detail,omitempty"`
	Notice   string           `json:"notice,omitempty"`
	Error    *ErrorState      `json:"error,omitempty"`
	About    AboutState       `json:"about"`
	Fragment string           `json:"fragment"`
	Facets   query.Facets     `json:"facets"`
}

// Renderer presents snapshots.
type Renderer interface {
	Render(s Snapshot)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(s Snapshot)

// Render calls f(s).
func (f RendererFunc) Render(s Snapshot) {
	f(s)
}
