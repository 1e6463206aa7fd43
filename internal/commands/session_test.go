package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/alertbox/internal/core/config"
	"github.com/hay-kot/alertbox/internal/dialog"
)

func TestNewSession_NilConfig(t *testing.T) {
	_, err := newSession(nil, dialog.NewManualScheduler())
	require.Error(t, err)
}

func TestNewSession_DuplicateContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "a"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a", "intro.md"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b", "intro.txt"), []byte("b"), 0o644))

	cfg := config.DefaultConfig()
	cfg.Content = []string{filepath.Join(dir, "**", "intro.*")}

	_, err := newSession(&cfg, dialog.NewManualScheduler())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load content")
}

func TestOutcome_Write(t *testing.T) {
	tests := []struct {
		name string
		o    outcome
		want string
	}{
		{name: "not done", o: outcome{}, want: ""},
		{name: "ok", o: outcome{done: true, status: true}, want: "status: ok\n"},
		{name: "cancel with input", o: outcome{done: true, input: []string{"hal"}}, want: "status: cancel\ninput: hal\n"},
		{name: "empty input kept", o: outcome{done: true, status: true, input: []string{""}}, want: "status: ok\ninput: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tt.o.write(&buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSession_ShowRecordsOutcome(t *testing.T) {
	cfg := config.DefaultConfig()
	sched := dialog.NewManualScheduler()

	s, err := newSession(&cfg, sched)
	require.NoError(t, err)

	inst := s.show(dialog.Values{dialog.KeyType: "prompt"})
	sched.Advance(cfg.Timing.Settle)

	inst.Nodes.Input.SetValue("42")
	require.True(t, s.ctrl.Click(true))
	sched.Drain()

	assert.True(t, s.outcome.done)
	assert.True(t, s.outcome.status)
	assert.Equal(t, []string{"42"}, s.outcome.input)
	assert.Equal(t, dialog.StateIdle, s.ctrl.State())
}

func TestSession_CheckRef(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "terms.md"), []byte("terms"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "privacy.md"), []byte("privacy"), 0o644))

	cfg := config.DefaultConfig()
	cfg.Content = []string{filepath.Join(dir, "*.md")}

	s, err := newSession(&cfg, dialog.NewManualScheduler())
	require.NoError(t, err)

	tests := []struct {
		name    string
		message any
		wantErr string
	}{
		{name: "plain text", message: "hello"},
		{name: "unset", message: nil},
		{name: "known id", message: "#terms"},
		{name: "typo", message: "#term", wantErr: `unknown content "#term", did you mean "#terms"?`},
		{name: "no match", message: "#zzz", wantErr: `unknown content "#zzz"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := dialog.Values{}
			if tt.message != nil {
				raw[dialog.KeyMessage] = tt.message
			}

			err := s.checkRef(raw)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
