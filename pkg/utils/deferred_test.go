package utils

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineRecorder struct {
	lines []string
}

func (r *lineRecorder) Write(p []byte) (int, error) {
	r.lines = append(r.lines, string(p))
	return len(p), nil
}

func TestDeferredWriter_Flush(t *testing.T) {
	var d DeferredWriter

	_, err := d.Write([]byte("{\"level\":\"warn\"}\n{\"level\":"))
	require.NoError(t, err)
	_, err = d.Write([]byte("\"info\"}\n"))
	require.NoError(t, err)

	var rec lineRecorder
	require.NoError(t, d.Flush(&rec))

	assert.Equal(t, []string{"{\"level\":\"warn\"}\n", "{\"level\":\"info\"}\n"}, rec.lines)
	assert.Zero(t, d.Len())
}

func TestDeferredWriter_FlushTrailingPartial(t *testing.T) {
	var d DeferredWriter
	_, _ = d.Write([]byte("a\nb"))

	var buf bytes.Buffer
	require.NoError(t, d.Flush(&buf))
	assert.Equal(t, "a\nb", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestDeferredWriter_FlushError(t *testing.T) {
	var d DeferredWriter
	_, _ = d.Write([]byte("a\n"))

	require.Error(t, d.Flush(failWriter{}))
	assert.Zero(t, d.Len(), "buffer is dropped after a failed flush")
}

func TestDeferredWriter_FlushEmpty(t *testing.T) {
	var d DeferredWriter
	var buf bytes.Buffer
	require.NoError(t, d.Flush(&buf))
	assert.Empty(t, buf.String())
}
