// Package catalogs holds the model catalog: the descriptor records that the
// browser searches, filters and sorts, and the loaders that produce them.
package catalogs

import "slices"

// Model describes one AI model or tool listed in the catalog.
type Model struct {
	Name        string `json:"name" yaml:"name"`                                   // Unique identifier and display name
	Provider    string `json:"provider,omitempty" yaml:"provider,omitempty"`       // Vendor or organization
	Description string `json:"description,omitempty" yaml:"description,omitempty"` // Short description shown in results
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`                 // Homepage

	Capabilities []string `json:"capabilities,omitempty" yaml:"capabilities,omitempty"` // e.g. chat, vision, coding
	InputTypes   []string `json:"input_types,omitempty" yaml:"input_types,omitempty"`   // e.g. text, image, audio
	OutputTypes  []string `json:"output_types,omitempty" yaml:"output_types,omitempty"` // e.g. text, image, code
	UseCases     []string `json:"use_cases,omitempty" yaml:"use_cases,omitempty"`       // Free-text use cases for the detail view

	Pricing Pricing `json:"pricing" yaml:"pricing"`
}

// Pricing holds the pricing attributes used by the free, free-trial and budget filters.
type Pricing struct {
	Cost      float64 `json:"cost" yaml:"cost"`                           // Monthly cost in USD, the budget measure
	Free      bool    `json:"free" yaml:"free"`                           // Usable without paying
	FreeTrial bool    `json:"free_trial" yaml:"free_trial"`               // Offers a free trial
	Tier      string  `json:"tier,omitempty" yaml:"tier,omitempty"`       // free, freemium, paid, enterprise
	Details   string  `json:"details,omitempty" yaml:"details,omitempty"` // Human readable pricing summary
}

// Clone returns a deep copy of the model.
func (m Model) Clone() Model {
	m.Capabilities = slices.Clone(m.Capabilities)
	m.InputTypes = slices.Clone(m.InputTypes)
	m.OutputTypes = slices.Clone(m.OutputTypes)
	m.UseCases = slices.Clone(m.UseCases)
	return m
}
