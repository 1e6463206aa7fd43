package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/alertbox/internal/dialog"
)

func TestNewComposeValues(t *testing.T) {
	t.Run("fallbacks", func(t *testing.T) {
		cv := newComposeValues(dialog.Values{})
		assert.Equal(t, "confirm", cv.typ)
		assert.Equal(t, "middle", cv.from)
		assert.True(t, cv.overlay)
		assert.Empty(t, cv.heading)
	})

	t.Run("prefilled", func(t *testing.T) {
		cv := newComposeValues(dialog.Values{
			dialog.KeyType:    "prompt",
			dialog.KeyHeading: "Name?",
			dialog.KeyFrom:    "top",
			dialog.KeyOverlay: false,
			dialog.KeyWait:    100,
		})
		assert.Equal(t, "prompt", cv.typ)
		assert.Equal(t, "Name?", cv.heading)
		assert.Equal(t, "top", cv.from)
		assert.False(t, cv.overlay)
	})

	t.Run("non-string ignored", func(t *testing.T) {
		cv := newComposeValues(dialog.Values{dialog.KeyHeading: 42})
		assert.Empty(t, cv.heading)
	})
}

func TestComposeValues_Apply(t *testing.T) {
	raw := dialog.Values{
		dialog.KeyWait:       100,
		dialog.KeySubHeading: "from flags",
	}

	cv := newComposeValues(raw)
	cv.heading = "Deploy?"
	cv.subHeading = ""
	cv.from = "bottom"

	got := cv.apply(raw)

	assert.Equal(t, dialog.Values{
		dialog.KeyType:       "confirm",
		dialog.KeyHeading:    "Deploy?",
		dialog.KeyFrom:       "bottom",
		dialog.KeyOverlay:    true,
		dialog.KeyWait:       100,
		dialog.KeySubHeading: "from flags",
	}, got, "cleared optional text keeps the existing value")

	_, ok := raw[dialog.KeyHeading]
	assert.False(t, ok, "apply copies raw")
}
