package printer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
)

func TestFatalError_Plain(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).FatalError(errors.New("boom"))

	assert.Equal(t, "╭ Error\n│ boom\n╵\n", buf.String(), "buffers get no color codes")
}

func TestFatalError_Nil(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).FatalError(nil)
	assert.Empty(t, buf.String())
}

func TestFatalError_FieldErrors(t *testing.T) {
	var errs criterio.FieldErrorsBuilder
	errs = errs.Append("render.width", errors.New("must be at least 20, got 5"))
	errs = errs.Append("defaults.type", errors.New("type cannot be defaulted"))

	err := fmt.Errorf("load config: %w", fmt.Errorf("invalid config: %w", errs.ToError()))

	var buf bytes.Buffer
	New(&buf).FatalError(err)

	out := buf.String()
	assert.Contains(t, out, "╭ Validation Error")
	assert.Contains(t, out, "│ load config: invalid config\n")
	assert.Contains(t, out, "│ "+Cross+" render.width: must be at least 20, got 5\n")
	assert.Contains(t, out, "│ "+Cross+" defaults.type: type cannot be defaulted\n")
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Successf("valid %d", 1)
	p.Warnf("careful")
	p.Errorf("bad")
	p.Printf("plain")

	assert.Equal(t, Check+" valid 1\n"+Dot+" careful\n"+Cross+" bad\nplain\n", buf.String())
}

func TestCtx(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	ctx := NewContext(context.Background(), p)
	assert.Same(t, p, Ctx(ctx))
	assert.NotNil(t, Ctx(context.Background()))
}
