// Package embedded holds the default catalog and content documents compiled
// into the binary.
package embedded

import (
	"embed"

	"github.com/agentstation/ainything/pkg/catalogs"
	"github.com/agentstation/ainything/pkg/content"
	"github.com/agentstation/ainything/pkg/constants"
)

// FS embeds the default catalog and the content documents.
//
//go:embed catalog/* content/*
var FS embed.FS

// Paths inside FS.
const (
	CatalogPath = "catalog/models.yaml"
	ContentDir  = "content"
	AboutFile   = "about-ainything.md"
)

// CatalogLoader returns a loader for the embedded catalog.
func CatalogLoader() *catalogs.FSLoader {
	l := catalogs.NewFSLoader(FS, CatalogPath)
	l.Source = "embedded"
	return l
}

// ContentRenderer returns a renderer for the embedded documents, with the
// About document registered under its short identifier.
func ContentRenderer() *content.FSRenderer {
	return content.NewFSRenderer(FS,
		content.WithDir(ContentDir),
		content.WithAlias(constants.DefaultAboutDocument, AboutFile),
	)
}
