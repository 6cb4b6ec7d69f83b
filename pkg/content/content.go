// Package content loads markdown documents with optional YAML front matter
// and renders them to HTML or to styled terminal text.
package content

import (
	"bytes"
	"context"
	"io/fs"
	"path"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/agentstation/ainything/pkg/errors"
)

// Renderer resolves a document identifier to a rendered document.
type Renderer interface {
	Render(ctx context.Context, id string) (*Document, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx context.Context, id string) (*Document, error)

// Render calls f(ctx, id).
func (f RendererFunc) Render(ctx context.Context, id string) (*Document, error) {
	return f(ctx, id)
}

// Document is a rendered markdown document.
type Document struct {
	ID       string         `json:"id"`
	Meta     map[string]any `json:"meta,omitempty"`
	Markdown string         `json:"markdown"`
	HTML     string         `json:"html"`
}

// Title returns the "title" front matter value, if any.
func (d *Document) Title() string {
	if d == nil {
		return ""
	}
	if t, ok := d.Meta["title"].(string); ok {
		return t
	}
	return ""
}

// Empty reports whether the document has no body.
func (d *Document) Empty() bool {
	return d == nil || strings.TrimSpace(d.Markdown) == ""
}

// FSRenderer reads documents from a filesystem.
type FSRenderer struct {
	fs      fs.FS
	dir     string
	aliases map[string]string
	md      goldmark.Markdown
}

// Option configures an FSRenderer.
type Option func(*FSRenderer)

// WithDir sets the directory inside the filesystem that holds documents.
func WithDir(dir string) Option {
	return func(r *FSRenderer) { r.dir = dir }
}

// WithAlias maps a document identifier to a file name.
func WithAlias(id, file string) Option {
	return func(r *FSRenderer) { r.aliases[id] = file }
}

// NewFSRenderer creates a renderer over fsys. By default identifier "x"
// resolves to "x.md".
func NewFSRenderer(fsys fs.FS, opts ...Option) *FSRenderer {
	r := &FSRenderer{
		fs:      fsys,
		dir:     ".",
		aliases: make(map[string]string),
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render loads and renders the document id.
func (r *FSRenderer) Render(ctx context.Context, id string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapRender(id, err)
	}

	if strings.TrimSpace(id) == "" || !fs.ValidPath(id) {
		return nil, errors.WrapRender(id, errors.NewValidationError("id", id, "invalid document identifier"))
	}

	name, ok := r.aliases[id]
	if !ok {
		name = id + ".md"
	}
	file := path.Join(r.dir, name)

	data, err := fs.ReadFile(r.fs, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WrapRender(id, errors.NewNotFoundError("document", id))
		}
		return nil, errors.WrapRender(id, errors.WrapIO("read", file, err))
	}

	meta, body, err := SplitFrontMatter(data)
	if err != nil {
		return nil, errors.WrapRender(id, err)
	}

	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return nil, errors.WrapRender(id, err)
	}

	return &Document{
		ID:       id,
		Meta:     meta,
		Markdown: string(body),
		HTML:     buf.String(),
	}, nil
}

// SplitFrontMatter separates a leading "---" delimited YAML block from the
// markdown body. Documents without front matter are returned unchanged.
func SplitFrontMatter(data []byte) (map[string]any, []byte, error) {
	text := strings.TrimPrefix(string(data), "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if !strings.HasPrefix(text, "---\n") {
		return nil, []byte(text), nil
	}

	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		if strings.HasPrefix(rest, "---") {
			end = 0
		} else {
			return nil, nil, errors.NewParseError("front-matter", "", "unterminated front matter", nil)
		}
	}

	header := rest[:end]
	body := rest[end:]
	body = strings.TrimPrefix(body, "\n")
	body = strings.TrimPrefix(body, "---")
	body = strings.TrimPrefix(body, "\n")

	meta := map[string]any{}
	if strings.TrimSpace(header) != "" {
		if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
			return nil, nil, errors.WrapParse("front-matter", "", err)
		}
	}
	return meta, []byte(body), nil
}
