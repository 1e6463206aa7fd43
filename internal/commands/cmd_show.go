package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/hay-kot/alertbox/internal/core/config"
	"github.com/hay-kot/alertbox/internal/dialog"
	"github.com/hay-kot/alertbox/internal/printer"
	"github.com/hay-kot/alertbox/internal/tui"
)

type ShowCmd struct {
	flags  *Flags
	dialog dialogFlags
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "show",
		Usage:     "Show a dialog and print the outcome",
		UsageText: "alertbox show [options]",
		Description: `Shows an alert, confirm, or prompt dialog in the terminal.

The dialog is drawn on stderr so the outcome printed on stdout can be
captured. The outcome is YAML with the status (ok or cancel) and, for
prompts, the input text. Cancelling exits with status 1.

When stderr is not a terminal the dialog is rendered headlessly instead.

Example:
  alertbox show --type confirm --heading "Deploy to production?"
  name=$(alertbox show --type prompt --heading "Your name")`,
		Flags:  cmd.dialog.flags(),
		Action: cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	raw, err := cmd.dialog.values(c)
	if err != nil {
		return err
	}
	return showDialog(ctx, c.Root().Writer, cmd.flags, raw)
}

// showDialog runs raw in the terminal and writes the outcome to w.
func showDialog(ctx context.Context, w io.Writer, flags *Flags, raw dialog.Values) error {
	fd := int(os.Stderr.Fd())
	if !term.IsTerminal(fd) {
		printer.Ctx(ctx).Warnf("stderr is not a terminal, rendering headlessly")
		return renderHeadless(w, flags, raw, false, false, "")
	}

	sched := tui.NewScheduler()
	s, err := newSession(flags.Config, sched)
	if err != nil {
		return err
	}
	if err := s.checkRef(raw); err != nil {
		return err
	}
	s.show(raw)

	renderer := tui.NewRenderer(renderOptions(flags.Config, fd), log.With().Str("component", "render").Logger())
	m := tui.New(s.ctrl, s.doc, sched, renderer)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dialog: %w", err)
	}

	if err := s.outcome.write(w); err != nil {
		return err
	}
	if s.outcome.done && !s.outcome.status {
		return cli.Exit("", 1)
	}
	return nil
}

// renderOptions fits the configured width to the terminal.
func renderOptions(cfg *config.Config, fd int) tui.RenderOptions {
	width := cfg.Render.Width
	if cols, _, err := term.GetSize(fd); err == nil {
		width = max(min(width, cols-4), config.MinWidth)
	}

	return tui.RenderOptions{
		Width:        width,
		Markdown:     cfg.Render.Markdown,
		GlamourStyle: cfg.Render.GlamourStyle,
	}
}
