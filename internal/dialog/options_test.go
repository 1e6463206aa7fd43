package dialog

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(raw Values) Options {
	return Resolve(Merge(Defaults(), raw), raw, zerolog.Nop())
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in    string
		want  Type
		valid bool
	}{
		{"alert", TypeAlert, true},
		{"confirm", TypeConfirm, true},
		{"prompt", TypePrompt, true},
		{"", TypeAlert, false},
		{"Prompt", TypeAlert, false},
		{"toast", TypeAlert, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseType(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, ok)
		})
	}
}

func TestResolve_Defaults(t *testing.T) {
	opts := resolve(nil)

	assert.Equal(t, TypeAlert, opts.Type)
	assert.Equal(t, "Ok", opts.OK.Label)
	assert.True(t, opts.Cancel.Suppressed, "alert never has a cancel button")
	assert.True(t, opts.Overlay)
	assert.Equal(t, "ease-in", opts.Effect)
	assert.Equal(t, time.Duration(0), opts.Wait)
	assert.Equal(t, FromMiddle, opts.From)
	assert.True(t, opts.Footer)
	assert.Nil(t, opts.Success)
	assert.Nil(t, opts.Cancelled)
	assert.Nil(t, opts.Complete)

	id, ok := opts.OK.Attr("id")
	require.True(t, ok)
	assert.Equal(t, "btn_ok", id)
}

func TestResolve_AlertForcesNoCancel(t *testing.T) {
	opts := resolve(Values{
		KeyType:    "alert",
		KeyButtons: Values{ButtonCancel: Values{"label": "Nope"}},
	})
	assert.True(t, opts.Cancel.Suppressed)

	opts = resolve(Values{
		KeyType:    "confirm",
		KeyButtons: Values{ButtonCancel: Values{"label": "Nope"}},
	})
	assert.False(t, opts.Cancel.Suppressed)
	assert.Equal(t, "Nope", opts.Cancel.Label)
}

func TestResolve_Buttons(t *testing.T) {
	t.Run("buttons false hides the footer", func(t *testing.T) {
		opts := resolve(Values{KeyType: "confirm", KeyButtons: false})
		assert.False(t, opts.Footer)
		assert.True(t, opts.OK.Suppressed)
		assert.True(t, opts.Cancel.Suppressed)
	})

	t.Run("string spec is the label", func(t *testing.T) {
		opts := resolve(Values{KeyType: "confirm", KeyButtons: Values{ButtonOK: "Yes", ButtonCancel: "No"}})
		assert.Equal(t, "Yes", opts.OK.Label)
		assert.Empty(t, opts.OK.Attrs)
		assert.Equal(t, "No", opts.Cancel.Label)
	})

	t.Run("false OK spec keeps the button", func(t *testing.T) {
		opts := resolve(Values{KeyType: "confirm", KeyButtons: Values{ButtonOK: false}})
		assert.True(t, opts.Footer)
		assert.False(t, opts.OK.Suppressed)
		assert.Equal(t, "false", opts.OK.Label)
		assert.Empty(t, opts.OK.Attrs)
		assert.False(t, opts.Cancel.Suppressed)
	})

	t.Run("non-map buttons keep an unlabeled OK", func(t *testing.T) {
		opts := resolve(Values{KeyType: "confirm", KeyButtons: "none"})
		assert.True(t, opts.Footer)
		assert.False(t, opts.OK.Suppressed)
		assert.Empty(t, opts.OK.Label)
		assert.True(t, opts.Cancel.Suppressed)
	})

	t.Run("false cancel spec suppresses the cancel button", func(t *testing.T) {
		opts := resolve(Values{KeyType: "confirm", KeyButtons: Values{ButtonCancel: false}})
		assert.True(t, opts.Footer)
		assert.False(t, opts.OK.Suppressed)
		assert.True(t, opts.Cancel.Suppressed)
	})

	t.Run("other values are converted to text", func(t *testing.T) {
		opts := resolve(Values{KeyButtons: Values{ButtonOK: 42}})
		assert.Equal(t, "42", opts.OK.Label)
	})

	t.Run("callable attrs are excluded", func(t *testing.T) {
		opts := resolve(Values{KeyButtons: Values{ButtonOK: Values{
			"attrs": Values{"id": func() {}, "class": "x"},
		}}})

		_, ok := opts.OK.Attr("id")
		assert.False(t, ok)
		v, ok := opts.OK.Attr("class")
		assert.True(t, ok)
		assert.Equal(t, "alert-js-btn alert-js-btn-ok x", v)
	})
}

func TestResolve_Wait(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want time.Duration
	}{
		{"int ms", 250, 250 * time.Millisecond},
		{"float ms", 1.5, 1500 * time.Microsecond},
		{"duration", 2 * time.Second, 2 * time.Second},
		{"negative", -10, 0},
		{"string", "soon", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := resolve(Values{KeyWait: tt.in})
			assert.Equal(t, tt.want, opts.Wait)
		})
	}
}

func TestResolve_InvalidFrom(t *testing.T) {
	opts := resolve(Values{KeyFrom: "diagonal"})
	assert.Equal(t, FromMiddle, opts.From)

	opts = resolve(Values{KeyFrom: "left"})
	assert.Equal(t, FromLeft, opts.From)
}

func TestResolve_Overlay(t *testing.T) {
	assert.False(t, resolve(Values{KeyOverlay: false}).Overlay)
	assert.False(t, resolve(Values{KeyOverlay: 0}).Overlay)
	assert.True(t, resolve(Values{KeyOverlay: "yes"}).Overlay)
}

func TestResolve_Callbacks(t *testing.T) {
	t.Run("non-callables are ignored", func(t *testing.T) {
		opts := resolve(Values{
			KeySuccess:   "notify",
			KeyCancelled: 12,
			KeyComplete:  true,
		})
		assert.Nil(t, opts.Success)
		assert.Nil(t, opts.Cancelled)
		assert.Nil(t, opts.Complete)
	})

	t.Run("unsupported signatures are ignored", func(t *testing.T) {
		opts := resolve(Values{KeySuccess: func(int) {}})
		assert.Nil(t, opts.Success)
	})

	t.Run("adapted signatures", func(t *testing.T) {
		var gotSuccess string
		var gotStatus bool
		opts := resolve(Values{
			KeySuccess:  func(s string) { gotSuccess = s },
			KeyComplete: func(status bool) { gotStatus = status },
		})

		require.NotNil(t, opts.Success)
		require.NotNil(t, opts.Complete)
		opts.Success("abc")
		opts.Complete(true, "abc")
		assert.Equal(t, "abc", gotSuccess)
		assert.True(t, gotStatus)
	})
}
