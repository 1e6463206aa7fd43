package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/hay-kot/alertbox/internal/dialog"
)

type RenderCmd struct {
	flags  *Flags
	dialog dialogFlags
	click  string
	input  string
}

// NewRenderCmd creates a new render command
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	flags := append(cmd.dialog.flags(),
		&cli.StringFlag{
			Name:        "click",
			Usage:       "activate a button after the dialog settles (ok, cancel)",
			Destination: &cmd.click,
		},
		&cli.StringFlag{
			Name:        "input",
			Usage:       "prompt input text to enter before --click",
			Destination: &cmd.input,
		},
	)

	app.Commands = append(app.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Render a dialog headlessly and print its markup",
		UsageText: "alertbox render [options]",
		Description: `Runs the dialog lifecycle on a virtual clock without a terminal.

The markup is printed once the entry animation settles. With --click the
button is activated, the outcome is printed as YAML, and the markup left
after teardown follows it.

Example:
  alertbox render --type confirm --heading "Delete?"
  alertbox render --type prompt --input bob --click ok`,
		Flags:  flags,
		Action: cmd.run,
	})

	return app
}

func (cmd *RenderCmd) run(ctx context.Context, c *cli.Command) error {
	raw, err := cmd.dialog.values(c)
	if err != nil {
		return err
	}

	var ok bool
	switch cmd.click {
	case "":
	case "ok":
		ok = true
	case "cancel":
		ok = false
	default:
		return fmt.Errorf("invalid --click %q, expected ok or cancel", cmd.click)
	}

	return renderHeadless(c.Root().Writer, cmd.flags, raw, cmd.click != "", ok, cmd.input)
}

// renderHeadless runs one dialog on a ManualScheduler and writes its markup
// to w.
func renderHeadless(w io.Writer, flags *Flags, raw dialog.Values, click, ok bool, input string) error {
	sched := dialog.NewManualScheduler()
	s, err := newSession(flags.Config, sched)
	if err != nil {
		return err
	}
	if err := s.checkRef(raw); err != nil {
		return err
	}

	inst := s.show(raw)
	sched.Advance(inst.Options.Wait + flags.Config.Timing.Settle)

	if _, err := io.WriteString(w, s.doc.Markup()); err != nil {
		return err
	}
	if !click {
		return nil
	}

	if input != "" {
		if inst.Nodes.Input == nil {
			return fmt.Errorf("--input requires a prompt dialog")
		}
		inst.Nodes.Input.SetValue(input)
	}

	if !s.ctrl.Click(ok) {
		name := "cancel"
		if ok {
			name = "OK"
		}
		return fmt.Errorf("dialog has no %s button", name)
	}
	sched.Drain()

	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	if err := s.outcome.write(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return err
	}
	_, err = io.WriteString(w, s.doc.Markup())
	return err
}
