package dialog

import (
	"github.com/rs/zerolog"

	"github.com/hay-kot/alertbox/internal/dom"
)

// OutcomeFunc receives true when the OK control is activated and false for
// the cancel control.
type OutcomeFunc func(status bool)

// Mount attaches nodes to the document body and binds the button handlers.
// The overlay is not attached here; it is inserted when the entry animation
// starts.
func Mount(doc *dom.Document, nodes NodeSet, onOutcome OutcomeFunc, logger zerolog.Logger) {
	doc.Body().AppendChild(nodes.Layer)
	nodes.Layer.AppendChild(nodes.Header)
	nodes.Layer.AppendChild(nodes.Body)
	put(nodes.Header, nodes.Heading)
	put(nodes.Header, nodes.SubHeading)
	put(nodes.Body, nodes.Input)
	put(nodes.Layer, nodes.Footer)

	if nodes.Footer == nil {
		return
	}

	bind := func(btn *dom.Node, status bool) {
		if btn == nil {
			return
		}
		nodes.Footer.AppendChild(btn)
		if !dom.Listen(btn, dom.EventClick, func() { onOutcome(status) }) {
			logger.Warn().Bool("status", status).Msg("button does not support event binding")
		}
	}

	bind(nodes.OKButton, true)
	bind(nodes.CancelButton, false)
}

func put(parent, child *dom.Node) {
	if parent != nil && child != nil {
		parent.AppendChild(child)
	}
}
