package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/alertbox/internal/core/validate"
	"github.com/hay-kot/alertbox/internal/dialog"
	"github.com/hay-kot/alertbox/internal/styles"
)

type ComposeCmd struct {
	flags  *Flags
	dialog dialogFlags
	print  bool
}

// NewComposeCmd creates a new compose command
func NewComposeCmd(flags *Flags) *ComposeCmd {
	return &ComposeCmd{flags: flags}
}

// Register adds the compose command to the application
func (cmd *ComposeCmd) Register(app *cli.Command) *cli.Command {
	flags := append(cmd.dialog.flags(), &cli.BoolFlag{
		Name:        "print",
		Usage:       "print the composed options as YAML instead of showing the dialog",
		Destination: &cmd.print,
	})

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "compose",
		Usage:     "Build a dialog interactively",
		UsageText: "alertbox compose [options]",
		Description: `Asks for the dialog options with a form, then shows the dialog.

Dialog flags prefill the form. With --print the options are written as YAML
suitable for --values instead.`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *ComposeCmd) run(ctx context.Context, c *cli.Command) error {
	raw, err := cmd.dialog.values(c)
	if err != nil {
		return err
	}

	cv := newComposeValues(raw)
	if err := cv.form().RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("compose form: %w", err)
	}

	raw = cv.apply(raw)

	if cmd.print {
		enc := yaml.NewEncoder(c.Root().Writer)
		enc.SetIndent(2)
		if err := enc.Encode(raw); err != nil {
			return fmt.Errorf("encode values: %w", err)
		}
		return enc.Close()
	}

	return showDialog(ctx, c.Root().Writer, cmd.flags, raw)
}

// composeValues are the form bindings.
type composeValues struct {
	typ        string
	heading    string
	subHeading string
	message    string
	from       string
	overlay    bool
}

// newComposeValues prefills the form from raw, falling back to the built-in
// defaults.
func newComposeValues(raw dialog.Values) *composeValues {
	str := func(key, fallback string) string {
		if s, ok := raw[key].(string); ok && s != "" {
			return s
		}
		return fallback
	}

	cv := &composeValues{
		typ:        str(dialog.KeyType, dialog.TypeConfirm.String()),
		heading:    str(dialog.KeyHeading, ""),
		subHeading: str(dialog.KeySubHeading, ""),
		message:    str(dialog.KeyMessage, ""),
		from:       str(dialog.KeyFrom, dialog.FromMiddle.String()),
		overlay:    true,
	}
	if b, ok := raw[dialog.KeyOverlay].(bool); ok {
		cv.overlay = b
	}
	return cv
}

func (cv *composeValues) form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title(strings.TrimPrefix(styles.Banner, "\n")).
				Description("Compose a dialog"),
			huh.NewSelect[string]().
				Title("Type").
				Options(huh.NewOptions(dialog.Types()...)...).
				Value(&cv.typ),
			huh.NewInput().
				Title("Heading").
				Validate(validate.Required("heading")).
				Value(&cv.heading),
			huh.NewInput().
				Title("Sub heading").
				Value(&cv.subHeading),
			huh.NewText().
				Title("Message").
				Description("Markdown, or #id of a content file").
				Validate(validate.ContentRef).
				Value(&cv.message),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Enter from").
				Options(huh.NewOptions(dialog.Froms()...)...).
				Value(&cv.from),
			huh.NewConfirm().
				Title("Dim the screen behind the dialog?").
				Value(&cv.overlay),
		),
	).WithTheme(styles.FormTheme())
}

// apply writes the form answers into raw. Empty optional text is left unset so
// defaults still apply.
func (cv *composeValues) apply(raw dialog.Values) dialog.Values {
	out := make(dialog.Values, len(raw)+6)
	for k, v := range raw {
		out[k] = v
	}

	out[dialog.KeyType] = cv.typ
	out[dialog.KeyHeading] = cv.heading
	out[dialog.KeyFrom] = cv.from
	out[dialog.KeyOverlay] = cv.overlay
	if cv.subHeading != "" {
		out[dialog.KeySubHeading] = cv.subHeading
	}
	if cv.message != "" {
		out[dialog.KeyMessage] = cv.message
	}
	return out
}
