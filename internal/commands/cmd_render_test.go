package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/hay-kot/alertbox/internal/core/config"
)

func runRender(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	flags := &Flags{Config: &cfg}
	app := &cli.Command{Name: "alertbox", Writer: &buf}
	app = NewRenderCmd(flags).Register(app)

	err := app.Run(context.Background(), append([]string{"alertbox", "render"}, args...))
	return buf.String(), err
}

func TestRender_Settled(t *testing.T) {
	out, err := runRender(t, config.DefaultConfig(), "--type", "confirm", "--heading", "Delete?")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, `<div class="alert-js-overlay"></div>`, lines[0], "overlay precedes the layer")
	assert.Equal(t, `<section id="alertJS" class="alert-js alert-js-ease-in">`, lines[1], "entry class removed after settle")
	assert.Contains(t, out, "    <h1>Delete?</h1>\n")
	assert.Contains(t, out, `>Ok</button>`)
	assert.Contains(t, out, `>Cancel</button>`)
	assert.NotContains(t, out, "<h2>", "empty sub heading is not built")
	assert.NotContains(t, out, "---")
}

func TestRender_ClickOK(t *testing.T) {
	out, err := runRender(t, config.DefaultConfig(), "--type", "confirm", "--click", "ok")
	require.NoError(t, err)

	_, after, found := strings.Cut(out, "---\n")
	require.True(t, found)
	assert.Equal(t, "status: ok\n---\n", after, "teardown leaves an empty body")
}

func TestRender_PromptInput(t *testing.T) {
	out, err := runRender(t, config.DefaultConfig(), "--type", "prompt", "--input", "bob", "--click", "cancel")
	require.NoError(t, err)
	assert.Contains(t, out, "---\nstatus: cancel\ninput: bob\n---\n")
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "bad click", args: []string{"--click", "maybe"}, want: "invalid --click"},
		{name: "alert has no cancel", args: []string{"--click", "cancel"}, want: "no cancel button"},
		{name: "input needs prompt", args: []string{"--type", "confirm", "--input", "x", "--click", "ok"}, want: "requires a prompt"},
		{name: "no buttons", args: []string{"--no-buttons", "--click", "ok"}, want: "no OK button"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runRender(t, config.DefaultConfig(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRender_ConfigDefaultsAndContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "terms.md"), []byte("Accept the terms?\n"), 0o644))

	cfg := config.DefaultConfig()
	cfg.Content = []string{filepath.Join(dir, "*.md")}
	cfg.Defaults = map[string]any{
		"overlay": false,
		"buttons": map[string]any{"OK": map[string]any{"label": "Agree"}},
	}

	out, err := runRender(t, cfg, "--type", "confirm", "--message", "#terms")
	require.NoError(t, err)

	assert.Contains(t, out, `<div class="alert-js-overlay" style="visibility: hidden"></div>`)
	assert.Contains(t, out, "<div id=\"alertJSbody\" class=\"alert-js-body\">Accept the terms?</div>")
	assert.Contains(t, out, ">Agree</button>")
}

func TestRender_WaitDelaysEntry(t *testing.T) {
	cfg := config.DefaultConfig()

	out, err := runRender(t, cfg, "--wait", "500")
	require.NoError(t, err)
	assert.Contains(t, out, "alert-js-ease-in", "render advances past the wait")
	assert.NotContains(t, out, "alert-js-animation-middle")
}

func TestRender_UnknownContent(t *testing.T) {
	_, err := runRender(t, config.DefaultConfig(), "--message", "#missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown content "#missing"`)
}
