// Package openapi embeds the OpenAPI 3.0 description of the HTTP API.
package openapi

import (
	_ "embed"

	"github.com/goccy/go-yaml"
)

// SpecYAML contains the OpenAPI specification in YAML format.
// Served at: GET /api/v1/openapi.yaml
//
//go:embed openapi.yaml
var SpecYAML []byte

// SpecJSON returns the specification converted to JSON.
// Served at: GET /api/v1/openapi.json
func SpecJSON() ([]byte, error) {
	return yaml.YAMLToJSON(SpecYAML)
}
