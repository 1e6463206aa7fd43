package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/alertbox/internal/dialog"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	want := DefaultConfig()
	assert.Equal(t, want.Timing, cfg.Timing)
	assert.Equal(t, want.Render, cfg.Render)
	assert.Empty(t, cfg.Defaults)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, dialog.DefaultTimings(), cfg.Timings())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
defaults:
  overlay: false
  from: left
  buttons:
    OK:
      label: Continue
      attrs:
        class: primary
content:
  - "~/notes/**/*.md"
timing:
  settle: 20ms
  teardown: 1s
render:
  markdown: false
  glamour_style: dracula
  width: 72
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, false, cfg.Defaults[dialog.KeyOverlay])
	assert.Equal(t, "left", cfg.Defaults[dialog.KeyFrom])
	assert.Equal(t, []string{"~/notes/**/*.md"}, cfg.Content)
	assert.Equal(t, dialog.Timings{Settle: 20 * time.Millisecond, Teardown: time.Second}, cfg.Timings())
	assert.Equal(t, RenderConfig{Markdown: false, GlamourStyle: "dracula", Width: 72}, cfg.Render)

	// The nested tree decodes into plain maps that the merger accepts.
	merged := dialog.Merge(dialog.Defaults(), cfg.Defaults)
	buttons := merged[dialog.KeyButtons].(dialog.Values)
	ok := buttons[dialog.ButtonOK].(dialog.Values)
	assert.Equal(t, "Continue", ok["label"])
	attrs := ok["attrs"].(dialog.Values)
	assert.Equal(t, "alert-js-btn alert-js-btn-ok primary", attrs["class"])
}

func TestLoad_AppliesDefaultsForZeroValues(t *testing.T) {
	path := writeConfig(t, "render:\n  markdown: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	defaults := DefaultConfig()
	assert.Equal(t, defaults.Render.Width, cfg.Render.Width)
	assert.Equal(t, defaults.Render.GlamourStyle, cfg.Render.GlamourStyle)
	assert.Equal(t, defaults.Timing, cfg.Timing)
	assert.NotNil(t, cfg.Defaults)
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, "defaults: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "defaults:\n  type: prompt\nrender:\n  width: 5\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
}

func TestRead_SkipsValidation(t *testing.T) {
	path := writeConfig(t, "render:\n  width: 5\n")

	cfg, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Render.Width)
	assert.Error(t, cfg.Validate())
}
