package commands

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/alertbox/internal/dialog"
)

// dialogFlags are the options shared by every command that shows a dialog.
// Only flags the user sets end up in the values, so config defaults apply to
// everything else.
type dialogFlags struct {
	typ        string
	heading    string
	subHeading string
	message    string
	from       string
	effect     string
	wait       int
	noOverlay  bool
	noButtons  bool
	okLabel    string
	cxlLabel   string
	valuesFile string
}

func (f *dialogFlags) flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "type",
			Aliases:     []string{"t"},
			Usage:       "dialog type (alert, confirm, prompt)",
			Destination: &f.typ,
		},
		&cli.StringFlag{
			Name:        "heading",
			Usage:       "heading text",
			Destination: &f.heading,
		},
		&cli.StringFlag{
			Name:        "sub-heading",
			Usage:       "secondary heading text",
			Destination: &f.subHeading,
		},
		&cli.StringFlag{
			Name:        "message",
			Aliases:     []string{"m"},
			Usage:       "body text, or #id of a content file",
			Destination: &f.message,
		},
		&cli.StringFlag{
			Name:        "from",
			Usage:       "entry direction (top, middle, bottom, left, right)",
			Destination: &f.from,
		},
		&cli.StringFlag{
			Name:        "effect",
			Usage:       "transition effect name",
			Destination: &f.effect,
		},
		&cli.IntFlag{
			Name:        "wait",
			Usage:       "delay in milliseconds before the dialog animates in",
			Destination: &f.wait,
		},
		&cli.BoolFlag{
			Name:        "no-overlay",
			Usage:       "do not dim the screen behind the dialog",
			Destination: &f.noOverlay,
		},
		&cli.BoolFlag{
			Name:        "no-buttons",
			Usage:       "omit the button footer",
			Destination: &f.noButtons,
		},
		&cli.StringFlag{
			Name:        "ok",
			Usage:       "label of the OK button",
			Destination: &f.okLabel,
		},
		&cli.StringFlag{
			Name:        "cancel",
			Usage:       "label of the cancel button",
			Destination: &f.cxlLabel,
		},
		&cli.StringFlag{
			Name:        "values",
			Usage:       "YAML file of dialog options; flags override it",
			Destination: &f.valuesFile,
		},
	}
}

// values builds the raw dialog options from the values file and the flags
// that were set on c.
func (f *dialogFlags) values(c *cli.Command) (dialog.Values, error) {
	raw := dialog.Values{}

	if f.valuesFile != "" {
		data, err := os.ReadFile(f.valuesFile)
		if err != nil {
			return nil, fmt.Errorf("read values file: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse values file %s: %w", f.valuesFile, err)
		}
		if raw == nil {
			raw = dialog.Values{}
		}
	}

	set := func(flag, key string, val any) {
		if c.IsSet(flag) {
			raw[key] = val
		}
	}

	set("type", dialog.KeyType, f.typ)
	set("heading", dialog.KeyHeading, f.heading)
	set("sub-heading", dialog.KeySubHeading, f.subHeading)
	set("message", dialog.KeyMessage, f.message)
	set("from", dialog.KeyFrom, f.from)
	set("effect", dialog.KeyEffect, f.effect)
	set("wait", dialog.KeyWait, f.wait)
	set("no-overlay", dialog.KeyOverlay, !f.noOverlay)

	if c.IsSet("no-buttons") && f.noButtons {
		raw[dialog.KeyButtons] = false
		return raw, nil
	}

	if c.IsSet("ok") || c.IsSet("cancel") {
		buttons := childMap(raw, dialog.KeyButtons)
		if c.IsSet("ok") {
			childMap(buttons, dialog.ButtonOK)["label"] = f.okLabel
		}
		if c.IsSet("cancel") {
			childMap(buttons, dialog.ButtonCancel)["label"] = f.cxlLabel
		}
	}

	return raw, nil
}

// childMap returns parent[key] as a map, replacing any non-map value.
func childMap(parent map[string]any, key string) map[string]any {
	switch m := parent[key].(type) {
	case map[string]any:
		return m
	case dialog.Values:
		return m
	}
	m := map[string]any{}
	parent[key] = m
	return m
}
