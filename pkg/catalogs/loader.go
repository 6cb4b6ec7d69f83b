package catalogs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/ainything/pkg/constants"
	"github.com/agentstation/ainything/pkg/errors"
)

// Loader produces the raw model list for a catalog.
type Loader interface {
	Load(ctx context.Context) ([]Model, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context) ([]Model, error)

// Load calls f(ctx).
func (f LoaderFunc) Load(ctx context.Context) ([]Model, error) {
	return f(ctx)
}

// LoadCatalog runs the loader and validates the result into a Catalog.
// Any failure is reported as a LoadError so callers can show a single
// load-failure state.
func LoadCatalog(ctx context.Context, loader Loader) (*Catalog, error) {
	if loader == nil {
		return nil, errors.NewLoadError("catalog", "", errors.New("no loader configured"))
	}

	models, err := loader.Load(ctx)
	if err != nil {
		if errors.IsLoadFailed(err) {
			return nil, err
		}
		return nil, errors.NewLoadError("catalog", "", err)
	}

	cat, err := New(models)
	if err != nil {
		return nil, errors.NewLoadError("catalog", "", err)
	}
	return cat, nil
}

// FSLoader reads a YAML or JSON catalog document from a filesystem.
type FSLoader struct {
	FS     fs.FS
	Path   string
	Source string // reported in errors, e.g. "embedded" or "file"
}

// NewFSLoader creates a loader for the document at path inside fsys.
func NewFSLoader(fsys fs.FS, path string) *FSLoader {
	return &FSLoader{FS: fsys, Path: path, Source: "fs"}
}

// NewFileLoader creates a loader for a catalog file on local disk.
func NewFileLoader(file string) *FSLoader {
	return &FSLoader{
		FS:     os.DirFS(filepath.Dir(file)),
		Path:   filepath.Base(file),
		Source: "file",
	}
}

// Load reads and decodes the document.
func (l *FSLoader) Load(ctx context.Context) ([]Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewLoadError(l.Source, l.Path, err)
	}

	data, err := fs.ReadFile(l.FS, l.Path)
	if err != nil {
		return nil, errors.NewLoadError(l.Source, l.Path, errors.WrapIO("read", l.Path, err))
	}

	models, err := Decode(l.Path, data)
	if err != nil {
		return nil, errors.NewLoadError(l.Source, l.Path, err)
	}
	return models, nil
}

// HTTPLoader fetches a catalog document over HTTP.
type HTTPLoader struct {
	URL    string
	Client *http.Client
}

// NewHTTPLoader creates an HTTP loader with the given request timeout.
func NewHTTPLoader(url string, timeout time.Duration) *HTTPLoader {
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}
	return &HTTPLoader{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

// Load performs a GET request and decodes the body.
func (l *HTTPLoader) Load(ctx context.Context) ([]Model, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.URL, nil)
	if err != nil {
		return nil, errors.NewLoadError("http", l.URL, errors.WrapResource("create", "request", "GET "+l.URL, err))
	}
	req.Header.Set("Accept", "application/yaml, application/json")

	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.NewLoadError("http", l.URL, errors.WrapIO("fetch", l.URL, err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewLoadError("http", l.URL, fmt.Errorf("unexpected status %s", resp.Status))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxCatalogBytes))
	if err != nil {
		return nil, errors.NewLoadError("http", l.URL, errors.WrapIO("read", l.URL, err))
	}

	name := path.Base(req.URL.Path)
	if strings.Contains(resp.Header.Get("Content-Type"), "json") {
		name = "catalog.json"
	}

	models, err := Decode(name, data)
	if err != nil {
		return nil, errors.NewLoadError("http", l.URL, err)
	}
	return models, nil
}

// document is the mapping form of a catalog file.
type document struct {
	Models []Model `json:"models" yaml:"models"`
}

// Decode parses a catalog document. Files ending in .json are decoded as
// JSON, everything else as YAML. Both a top-level list of models and a
// mapping with a "models" key are accepted.
func Decode(name string, data []byte) ([]Model, error) {
	format := "yaml"
	unmarshal := yaml.Unmarshal
	if strings.EqualFold(path.Ext(name), ".json") {
		format = "json"
		unmarshal = json.Unmarshal
	}

	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, errors.NewParseError(format, name, "empty catalog document", nil)
	}

	if isSequence(trimmed) {
		var models []Model
		if err := unmarshal(data, &models); err != nil {
			return nil, errors.WrapParse(format, name, err)
		}
		return models, nil
	}

	var doc document
	if err := unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse(format, name, err)
	}
	return doc.Models, nil
}

// isSequence reports whether the first content line opens a list.
func isSequence(doc string) bool {
	for _, line := range strings.Split(doc, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "---" || strings.HasPrefix(line, "#") {
			continue
		}
		return strings.HasPrefix(line, "[") || line == "-" || strings.HasPrefix(line, "- ")
	}
	return false
}
