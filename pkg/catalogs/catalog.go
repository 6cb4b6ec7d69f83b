package catalogs

import (
	"strings"

	"github.com/agentstation/ainything/pkg/constants"
	"github.com/agentstation/ainything/pkg/errors"
)

// Catalog is an immutable, ordered collection of models with unique names.
// It is safe for concurrent readers.
type Catalog struct {
	models []Model
	index  map[string]int
}

// New validates models and builds a catalog that preserves their order.
// The input slice is copied; later changes to it do not affect the catalog.
func New(models []Model) (*Catalog, error) {
	if len(models) > constants.MaxCatalogModels {
		return nil, errors.NewValidationError("models", len(models), "too many models in catalog")
	}

	cat := &Catalog{
		models: make([]Model, 0, len(models)),
		index:  make(map[string]int, len(models)),
	}

	for i, m := range models {
		if err := validateModel(i, m); err != nil {
			return nil, err
		}
		if _, exists := cat.index[m.Name]; exists {
			return nil, errors.NewAlreadyExistsError("model", m.Name)
		}
		cat.index[m.Name] = len(cat.models)
		cat.models = append(cat.models, m.Clone())
	}

	return cat, nil
}

// Empty returns a catalog with no models.
func Empty() *Catalog {
	return &Catalog{index: map[string]int{}}
}

// Models returns a copy of the models in catalog order.
func (c *Catalog) Models() []Model {
	if c == nil {
		return nil
	}
	out := make([]Model, len(c.models))
	for i, m := range c.models {
		out[i] = m.Clone()
	}
	return out
}

// Find returns the model with the exact given name.
func (c *Catalog) Find(name string) (Model, error) {
	if c != nil {
		if i, ok := c.index[name]; ok {
			return c.models[i].Clone(), nil
		}
	}
	return Model{}, errors.NewNotFoundError("model", name)
}

// Has reports whether a model with the exact given name exists.
func (c *Catalog) Has(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[name]
	return ok
}

// Len returns the number of models.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.models)
}

func validateModel(position int, m Model) error {
	name := strings.TrimSpace(m.Name)
	switch {
	case name == "":
		return errors.NewValidationError("name", position, "model name cannot be empty")
	case name != m.Name:
		return errors.NewValidationError("name", m.Name, "model name has leading or trailing whitespace")
	case len(name) > constants.MaxModelNameLength:
		return errors.NewValidationError("name", m.Name, "model name is too long")
	case m.Pricing.Cost < 0:
		return errors.NewValidationError("pricing.cost", m.Pricing.Cost, "cost cannot be negative")
	}
	return nil
}
