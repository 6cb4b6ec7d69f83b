package show

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/ainything/cmd/application"
	"github.com/agentstation/ainything/pkg/catalogs"
	"github.com/agentstation/ainything/pkg/errors"
)

func execute(t *testing.T, format string, args ...string) (string, error) {
	t.Helper()
	app := application.NewMock(catalogs.SampleModels()...)
	app.OutputFormatFunc = func() string { return format }

	cmd := NewCommand(app)
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestShow(t *testing.T) {
	stdout, err := execute(t, "json", "Midjourney")
	require.NoError(t, err)

	var model catalogs.Model
	require.NoError(t, json.Unmarshal([]byte(stdout), &model))
	assert.Equal(t, "Midjourney", model.Name)
	assert.True(t, model.Pricing.FreeTrial)
	assert.Equal(t, []string{"image-generation"}, model.Capabilities)
}

func TestShow_Table(t *testing.T) {
	stdout, err := execute(t, "table", "Whisper")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Whisper")
	assert.Contains(t, stdout, "Speech recognition")
}

func TestShow_NotFound(t *testing.T) {
	tests := []string{"Nope", "gpt-4o", " Claude"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, "json", name)
			require.Error(t, err)
			assert.True(t, errors.IsNotFound(err))
		})
	}
}

func TestShow_RequiresName(t *testing.T) {
	_, err := execute(t, "json")
	assert.Error(t, err)
}
