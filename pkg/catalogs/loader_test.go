package catalogs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/ainything/pkg/errors"
)

const listYAML = `# catalog
- name: A
  provider: Acme
  capabilities: [chat]
  pricing:
    cost: 10
    free: true
- name: B
  pricing:
    cost: 40
`

const mappingYAML = `---
models:
  - name: A
    input_types: [text]
    pricing:
      free_trial: true
`

const listJSON = `[{"name":"A","pricing":{"cost":10,"free":true}},{"name":"B","pricing":{"cost":40}}]`

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		data      string
		wantNames []string
		wantErr   bool
	}{
		{name: "yaml list", file: "models.yaml", data: listYAML, wantNames: []string{"A", "B"}},
		{name: "yaml mapping", file: "models.yml", data: mappingYAML, wantNames: []string{"A"}},
		{name: "json list", file: "models.json", data: listJSON, wantNames: []string{"A", "B"}},
		{name: "json mapping", file: "models.json", data: `{"models":[{"name":"Z"}]}`, wantNames: []string{"Z"}},
		{name: "empty document", file: "models.yaml", data: "  \n", wantErr: true},
		{name: "broken json", file: "models.json", data: `[{"name":`, wantErr: true},
		{name: "broken yaml", file: "models.yaml", data: "models: [\n  {name: A\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			models, err := Decode(tt.file, []byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsMalformed(err))
				return
			}
			require.NoError(t, err)

			var names []string
			for _, m := range models {
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestDecodeFields(t *testing.T) {
	models, err := Decode("models.yaml", []byte(listYAML))
	require.NoError(t, err)
	require.Len(t, models, 2)

	assert.Equal(t, "Acme", models[0].Provider)
	assert.Equal(t, []string{"chat"}, models[0].Capabilities)
	assert.InDelta(t, 10.0, models[0].Pricing.Cost, 0.001)
	assert.True(t, models[0].Pricing.Free)
	assert.False(t, models[1].Pricing.Free)
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog/models.yaml": &fstest.MapFile{Data: []byte(listYAML)},
	}

	t.Run("loads document", func(t *testing.T) {
		cat, err := LoadCatalog(context.Background(), NewFSLoader(fsys, "catalog/models.yaml"))
		require.NoError(t, err)
		assert.Equal(t, 2, cat.Len())
	})

	t.Run("missing document", func(t *testing.T) {
		_, err := LoadCatalog(context.Background(), NewFSLoader(fsys, "catalog/missing.yaml"))
		require.Error(t, err)
		assert.True(t, errors.IsLoadFailed(err))
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewFSLoader(fsys, "catalog/models.yaml").Load(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFileLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.json")
	require.NoError(t, os.WriteFile(path, []byte(listJSON), 0o644))

	models, err := NewFileLoader(path).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, models, 2)
}

func TestHTTPLoader(t *testing.T) {
	t.Run("yaml body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write([]byte(listYAML))
		}))
		defer srv.Close()

		models, err := NewHTTPLoader(srv.URL+"/models.yaml", time.Second).Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, models, 2)
	})

	t.Run("json content type", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(listJSON))
		}))
		defer srv.Close()

		models, err := NewHTTPLoader(srv.URL+"/api/models", time.Second).Load(context.Background())
		require.NoError(t, err)
		assert.Len(t, models, 2)
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := NewHTTPLoader(srv.URL, time.Second).Load(context.Background())
		require.Error(t, err)
		assert.True(t, errors.IsLoadFailed(err))
		assert.Contains(t, err.Error(), "500")
	})
}

func TestLoadCatalogValidation(t *testing.T) {
	loader := LoaderFunc(func(context.Context) ([]Model, error) {
		return []Model{{Name: "A"}, {Name: "A"}}, nil
	})

	_, err := LoadCatalog(context.Background(), loader)
	require.Error(t, err)
	assert.True(t, errors.IsLoadFailed(err))
	assert.ErrorIs(t, err, errors.ErrAlreadyExists)

	_, err = LoadCatalog(context.Background(), nil)
	assert.True(t, errors.IsLoadFailed(err))
}
