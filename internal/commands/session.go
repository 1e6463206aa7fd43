package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sahilm/fuzzy"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/alertbox/internal/content"
	"github.com/hay-kot/alertbox/internal/core/config"
	"github.com/hay-kot/alertbox/internal/dialog"
	"github.com/hay-kot/alertbox/internal/dom"
)

// session is one document with a controller attached.
type session struct {
	doc     *dom.Document
	ctrl    *dialog.Controller
	entries []content.Entry
	outcome *outcome
}

func newSession(cfg *config.Config, sched dialog.Scheduler) (*session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}

	doc := dom.New()

	entries, err := content.Load(doc, cfg.Content)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	log.Debug().Int("count", len(entries)).Msg("content loaded")

	ctrl := dialog.NewController(
		doc,
		sched,
		log.With().Str("component", "dialog").Logger(),
		dialog.WithDefaults(cfg.Defaults),
		dialog.WithTimings(cfg.Timings()),
	)

	return &session{doc: doc, ctrl: ctrl, entries: entries, outcome: &outcome{}}, nil
}

// checkRef reports a message that references content no file provides,
// suggesting the closest loaded id.
func (s *session) checkRef(raw dialog.Values) error {
	msg, _ := raw[dialog.KeyMessage].(string)
	id, ok := strings.CutPrefix(msg, "#")
	if !ok || s.doc.GetElementByID(id) != nil {
		return nil
	}

	ids := make([]string, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.ID
	}

	if matches := fuzzy.Find(id, ids); len(matches) > 0 {
		return fmt.Errorf("unknown content %q, did you mean %q?", msg, "#"+matches[0].Str)
	}
	return fmt.Errorf("unknown content %q", msg)
}

// show opens a dialog with raw options and records its outcome.
func (s *session) show(raw dialog.Values) *dialog.Instance {
	s.outcome.attach(raw)
	return s.ctrl.Show(raw).Instance()
}

// outcome records the result reported by a dialog's complete callback.
type outcome struct {
	done   bool
	status bool
	input  []string
}

func (o *outcome) attach(raw dialog.Values) {
	raw[dialog.KeyComplete] = func(status bool, input ...string) {
		o.done = true
		o.status = status
		o.input = input
	}
}

type outcomeReport struct {
	Status string  `yaml:"status"`
	Input  *string `yaml:"input,omitempty"`
}

// write prints the outcome as YAML. Nothing is written when the dialog closed
// without one.
func (o *outcome) write(w io.Writer) error {
	if !o.done {
		return nil
	}

	report := outcomeReport{Status: "cancel"}
	if o.status {
		report.Status = "ok"
	}
	if len(o.input) > 0 {
		report.Input = &o.input[0]
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("write outcome: %w", err)
	}
	return enc.Close()
}
