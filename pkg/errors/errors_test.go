package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/ainything/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "model",
			ID:       "GPT-X",
		}
		assert.Equal(t, `model "GPT-X" not found`, err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("model", "test")
		wrapped := fmt.Errorf("lookup: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))

		var nf *pkgerrors.NotFoundError
		require.True(t, errors.As(wrapped, &nf))
		assert.Equal(t, "test", nf.ID)
	})
}

func TestAlreadyExistsError(t *testing.T) {
	err := pkgerrors.NewAlreadyExistsError("model", "Claude")
	assert.Equal(t, `model "Claude" already exists`, err.Error())
	assert.ErrorIs(t, err, pkgerrors.ErrAlreadyExists)
	assert.True(t, pkgerrors.IsValidationError(err))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("name", "", "cannot be empty")
		assert.Equal(t, "validation failed for field name: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid catalog"}
		assert.Equal(t, "validation failed: invalid catalog", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestParseError(t *testing.T) {
	inner := errors.New("bad escape")
	err := pkgerrors.NewParseError("fragment", "", "invalid fragment", inner)

	assert.Equal(t, "fragment parse error: invalid fragment", err.Error())
	assert.True(t, pkgerrors.IsMalformed(err))
	assert.ErrorIs(t, err, inner)

	withFile := pkgerrors.WrapParse("yaml", "models.yaml", inner)
	assert.Equal(t, "parse error in yaml file models.yaml: bad escape", withFile.Error())
}

func TestLoadError(t *testing.T) {
	inner := pkgerrors.WrapIO("fetch", "https://example.com/models.yaml", errors.New("connection refused"))
	err := pkgerrors.NewLoadError("http", "https://example.com/models.yaml", inner)

	assert.True(t, pkgerrors.IsLoadFailed(err))
	assert.Contains(t, err.Error(), "failed to load http source")

	var ioErr *pkgerrors.IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "fetch", ioErr.Operation)
}

func TestRenderError(t *testing.T) {
	err := pkgerrors.WrapRender("about", errors.New("missing"))
	assert.ErrorIs(t, err, pkgerrors.ErrRenderFailed)
	assert.Equal(t, "failed to render about: missing", err.Error())
}

func TestEvaluationError(t *testing.T) {
	err := pkgerrors.NewEvaluationError("gpt", errors.New("boom"))
	assert.Equal(t, "boom", err.Error())
	assert.ErrorIs(t, err, pkgerrors.ErrEvaluation)

	empty := pkgerrors.NewEvaluationError("", nil)
	assert.Equal(t, "unknown error", empty.Error())
}

func TestWrapHelpersNil(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
	}{
		{"WrapValidation", func() error { return pkgerrors.WrapValidation("f", nil) }},
		{"WrapIO", func() error { return pkgerrors.WrapIO("read", "p", nil) }},
		{"WrapResource", func() error { return pkgerrors.WrapResource("load", "catalog", "", nil) }},
		{"WrapParse", func() error { return pkgerrors.WrapParse("yaml", "", nil) }},
		{"WrapRender", func() error { return pkgerrors.WrapRender("about", nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, tt.fn())
		})
	}
}

func TestResourceAndConfigError(t *testing.T) {
	err := pkgerrors.WrapResource("load", "config", "", errors.New("bad"))
	assert.Equal(t, "failed to load config: bad", err.Error())

	cfg := pkgerrors.NewConfigError("server", "port out of range", nil)
	assert.Equal(t, "configuration error in server: port out of range", cfg.Error())
}
