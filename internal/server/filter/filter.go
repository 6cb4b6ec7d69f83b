// Package filter parses catalog query parameters for API endpoints.
package filter

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/agentstation/ainything/pkg/query"
)

// Query parameter names accepted by the models endpoint.
const (
	ParamSearch     = "search"
	ParamFreeOnly   = "free_only"
	ParamFreeTrials = "free_trials"
	ParamCapability = "capability"
	ParamInputType  = "input_type"
	ParamOutputType = "output_type"
	ParamMaxBudget  = "max_budget"
	ParamSort       = "sort"
)

// Request is a parsed models query.
type Request struct {
	Search   string
	Settings query.Settings
}

// ParseRequest extracts the search query and filter settings from an HTTP
// request. Parameters that are absent keep their value from defaults.
// Facet parameters may repeat and may hold comma-separated values.
func ParseRequest(r *http.Request, defaults query.Settings) Request {
	return ParseValues(r.URL.Query(), defaults)
}

// ParseValues is ParseRequest over already decoded query values.
func ParseValues(q url.Values, defaults query.Settings) Request {
	s := defaults

	if v, ok := lookup(q, ParamFreeOnly); ok {
		s.FreeOnly = parseBool(v, s.FreeOnly)
	}
	if v, ok := lookup(q, ParamFreeTrials); ok {
		s.FreeTrials = parseBool(v, s.FreeTrials)
	}
	if vs, ok := q[ParamCapability]; ok {
		s.Capabilities = query.SplitValues(vs...)
	}
	if vs, ok := q[ParamInputType]; ok {
		s.InputTypes = query.SplitValues(vs...)
	}
	if vs, ok := q[ParamOutputType]; ok {
		s.OutputTypes = query.SplitValues(vs...)
	}
	if v, ok := lookup(q, ParamMaxBudget); ok {
		s.MaxBudget = query.ParseBudget(v)
	}
	if v, ok := lookup(q, ParamSort); ok {
		s.SortBy = query.ParseSortKey(v)
	}

	return Request{
		Search:   strings.TrimSpace(q.Get(ParamSearch)),
		Settings: s.Normalize(),
	}
}

func lookup(q url.Values, key string) (string, bool) {
	if _, ok := q[key]; !ok {
		return "", false
	}
	return q.Get(key), true
}

// parseBool treats a bare flag ("?free_only") as true.
func parseBool(s string, def bool) bool {
	if s == "" {
		return true
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return def
}
