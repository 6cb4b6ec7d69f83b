package view

import "github.com/agentstation/ainything/pkg/query"

// Action is a user or navigation event handled by Controller.Dispatch.
// The set is closed; only types in this package implement it.
type Action interface {
	// Kind identifies the action in logs and on the session wire.
	Kind() string
	action()
}

// SearchSubmitted sets the query to the trimmed input.
type SearchSubmitted struct {
	Input string `json:"input"`
}

// FiltersApplied replaces the filter settings entirely.
type FiltersApplied struct {
	Settings query.Settings `json:"settings"`
}

// SortChanged updates only the sort key of the current settings.
type SortChanged struct {
	SortBy query.SortKey `json:"sort_by"`
}

// ModelSelected opens the detail view for a model.
type ModelSelected struct {
	Name string `json:"name"`
}

// BackRequested returns from the detail view to the list.
type BackRequested struct{}

// URLChanged processes a new URL fragment.
type URLChanged struct {
	Fragment string `json:"fragment"`
}

// RetryRequested re-invokes the catalog loader after a load failure.
type RetryRequested struct{}

// Action kinds.
const (
	ActionSearchSubmitted = "search_submitted"
	ActionFiltersApplied  = "filters_applied"
	ActionSortChanged     = "sort_changed"
	ActionModelSelected   = "model_selected"
	ActionBackRequested   = "back_requested"
	ActionURLChanged      = "url_changed"
	ActionRetryRequested  = "retry_requested"
)

func (SearchSubmitted) Kind() string { return ActionSearchSubmitted }
func (FiltersApplied) Kind() string  { return ActionFiltersApplied }
func (SortChanged) Kind() string     { return ActionSortChanged }
func (ModelSelected) Kind() string   { return ActionModelSelected }
func (BackRequested) Kind() string   { return ActionBackRequested }
func (URLChanged) Kind() string      { return ActionURLChanged }
func (RetryRequested) Kind() string  { return ActionRetryRequested }

func (SearchSubmitted) action() {}
func (FiltersApplied) action()  {}
func (SortChanged) action()     {}
func (ModelSelected) action()   {}
func (BackRequested) action()   {}
func (URLChanged) action()      {}
func (RetryRequested) action()  {}
