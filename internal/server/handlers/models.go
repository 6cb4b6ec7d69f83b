package handlers

import (
	"net/http"
	"net/url"

	"github.com/agentstation/ainything/internal/server/cache"
	"github.com/agentstation/ainything/internal/server/filter"
	"github.com/agentstation/ainything/internal/server/response"
	"github.com/agentstation/ainything/pkg/catalogs"
	"github.com/agentstation/ainything/pkg/logging"
	"github.com/agentstation/ainything/pkg/query"
	"github.com/agentstation/ainything/pkg/view"
)

// ListResult is the payload of the models endpoint.
type ListResult struct {
	Query    string           `json:"query"`
	Settings query.Settings   `json:"settings"`
	Models   []catalogs.Model `json:"models"`
	Count    int              `json:"count"`
	Summary  view.Summary     `json:"summary"`
}

// HandleListModels handles GET /api/v1/models.
// @Summary List models
// @Description Search, filter and sort the catalog
// @Tags models
// @Produce json
// @Param search query string false "Case-insensitive text search"
// @Param free_only query boolean false "Only models usable without paying"
// @Param free_trials query boolean false "Only models with a free trial"
// @Param capability query string false "Capability filter (repeatable, comma-separated)"
// @Param input_type query string false "Input type filter (repeatable, comma-separated)"
// @Param output_type query string false "Output type filter (repeatable, comma-separated)"
// @Param max_budget query number false "Monthly budget cap in USD; 50 or more means no cap"
// @Param sort query string false "Sort key (name, cost-asc, cost-desc, relevance)"
// @Success 200 {object} response.Response{data=ListResult}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /api/v1/models [get].
func (h *Handlers) HandleListModels(w http.ResponseWriter, r *http.Request) {
	key := cache.Key(cache.KindModels, r.URL.RawQuery)
	result, err := h.cache.GetOrCompute(key, func() (any, error) {
		cat, err := h.app.Catalog(r.Context())
		if err != nil {
			return nil, err
		}

		req := filter.ParseRequest(r, h.app.DefaultSettings())
		models := query.Evaluate(cat.Models(), req.Search, req.Settings)
		logging.FromContext(r.Context()).Debug().
			Str("query", req.Search).
			Int("results", len(models)).
			Msg("Evaluated models query")

		return ListResult{
			Query:    req.Search,
			Settings: req.Settings,
			Models:   models,
			Count:    len(models),
			Summary:  view.Summarize(len(models), req.Search, req.Settings),
		}, nil
	})
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, result)
}

// HandleGetModel handles GET /api/v1/models/{name}.
// @Summary Get model by name
// @Description Retrieve the detail record of a single model
// @Tags models
// @Produce json
// @Param name path string true "Model name (URL-escaped)"
// @Success 200 {object} response.Response{data=catalogs.Model}
// @Failure 404 {object} response.Response{error=response.Error}
// @Router /api/v1/models/{name} [get].
func (h *Handlers) HandleGetModel(w http.ResponseWriter, r *http.Request, name string) {
	key := cache.Key(cache.KindModel, url.Values{"name": {name}}.Encode())
	model, err := h.cache.GetOrCompute(key, func() (any, error) {
		cat, err := h.app.Catalog(r.Context())
		if err != nil {
			return nil, err
		}
		return cat.Find(name)
	})
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, model)
}

// HandleFacets handles GET /api/v1/facets.
// @Summary List facet values
// @Description Distinct capabilities, input types and output types in the catalog
// @Tags models
// @Produce json
// @Success 200 {object} response.Response{data=query.Facets}
// @Failure 503 {object} response.Response{error=response.Error}
// @Router /api/v1/facets [get].
func (h *Handlers) HandleFacets(w http.ResponseWriter, r *http.Request) {
	facets, err := h.cache.GetOrCompute(cache.KindFacets, func() (any, error) {
		cat, err := h.app.Catalog(r.Context())
		if err != nil {
			return nil, err
		}
		return query.ExtractFacets(cat.Models()), nil
	})
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, facets)
}
