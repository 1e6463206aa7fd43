package dialog

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/hay-kot/alertbox/internal/dom"
)

// Stable identifiers and classes expected by styling layers.
const (
	LayerID  = "alertJS"
	HeaderID = "alertJSheader"
	BodyID   = "alertJSbody"
	InputID  = "alertJSinput"
	FooterID = "alertJSfooter"

	ClassPrefix       = "alert-js"
	ClassHeader       = "alert-js-header alert-js-header-primary"
	ClassBody         = "alert-js-body"
	ClassInput        = "alert-js-input"
	ClassFooter       = "alert-js-footer"
	ClassOverlay      = "alert-js-overlay"
	ClassButton       = "alert-js-btn"
	ClassButtonOK     = "alert-js-btn-ok"
	ClassButtonCancel = "alert-js-btn-cancel"
)

// AnimationClass is the positioning class present while a dialog is outside
// the viewport on the from side.
func AnimationClass(from From) string {
	return ClassPrefix + "-animation-" + from.String()
}

// EffectClass is the transition class selected by effect.
func EffectClass(effect string) string {
	return ClassPrefix + "-" + effect
}

// NodeSet holds the constructed nodes of one dialog. Optional nodes are nil
// when their build step did not apply.
type NodeSet struct {
	Layer        *dom.Node
	Header       *dom.Node
	Heading      *dom.Node
	SubHeading   *dom.Node
	Body         *dom.Node
	Input        *dom.Node
	Overlay      *dom.Node
	Footer       *dom.Node
	OKButton     *dom.Node
	CancelButton *dom.Node
}

// Builder creates dialog nodes from resolved options. Each step creates its
// node once; calling a step again returns the existing node.
type Builder struct {
	doc    *dom.Document
	opts   *Options
	logger zerolog.Logger
	nodes  NodeSet
}

// NewBuilder creates a builder for opts.
func NewBuilder(doc *dom.Document, opts *Options, logger zerolog.Logger) *Builder {
	return &Builder{doc: doc, opts: opts, logger: logger}
}

// Build runs every step that applies to the options and returns the nodes.
func (b *Builder) Build() NodeSet {
	b.Layer()
	b.Header()
	b.Heading()
	if b.opts.SubHeading != "" {
		b.SubHeading()
	}
	b.Body()
	if b.opts.Type.shape().hasInput() {
		b.Input()
	}
	b.Overlay()
	if b.opts.Footer {
		b.Footer()
		if !b.opts.OK.Suppressed {
			b.OKButton()
		}
		if !b.opts.Cancel.Suppressed {
			b.CancelButton()
		}
	}
	return b.nodes
}

// Nodes returns the nodes built so far.
func (b *Builder) Nodes() NodeSet {
	return b.nodes
}

func (b *Builder) Layer() *dom.Node {
	if b.nodes.Layer == nil {
		n := b.doc.CreateElement("section")
		n.SetAttribute("id", LayerID)
		n.SetClassName(ClassPrefix + " " + AnimationClass(b.opts.From))
		b.nodes.Layer = n
	}
	return b.nodes.Layer
}

func (b *Builder) Header() *dom.Node {
	if b.nodes.Header == nil {
		n := b.doc.CreateElement("header")
		n.SetAttribute("id", HeaderID)
		n.SetClassName(ClassHeader)
		b.nodes.Header = n
	}
	return b.nodes.Header
}

func (b *Builder) Heading() *dom.Node {
	if b.nodes.Heading == nil {
		n := b.doc.CreateElement("h1")
		n.SetContent(b.opts.Heading)
		b.nodes.Heading = n
	}
	return b.nodes.Heading
}

func (b *Builder) SubHeading() *dom.Node {
	if b.nodes.SubHeading == nil {
		n := b.doc.CreateElement("h2")
		n.SetContent(b.opts.SubHeading)
		b.nodes.SubHeading = n
	}
	return b.nodes.SubHeading
}

// Body creates the body node. A message starting with '#' copies the content
// of the element with that id; a missing element yields an empty body.
func (b *Builder) Body() *dom.Node {
	if b.nodes.Body != nil {
		return b.nodes.Body
	}

	n := b.doc.CreateElement("div")
	n.SetAttribute("id", BodyID)
	n.SetClassName(ClassBody)

	if id, ok := strings.CutPrefix(b.opts.Message, "#"); ok {
		if ref := b.doc.GetElementByID(id); ref != nil {
			n.SetContent(ref.Content())
		} else {
			b.logger.Warn().Str("id", id).Msg("message references a missing element, body left empty")
		}
	} else {
		n.SetContent(b.opts.Message)
	}

	b.nodes.Body = n
	return n
}

func (b *Builder) Input() *dom.Node {
	if b.nodes.Input == nil {
		n := b.doc.CreateElement("input")
		n.SetAttribute("type", "text")
		n.SetAttribute("id", InputID)
		n.SetClassName(ClassInput)
		b.nodes.Input = n
	}
	return b.nodes.Input
}

func (b *Builder) Overlay() *dom.Node {
	if b.nodes.Overlay == nil {
		n := b.doc.CreateElement("div")
		n.SetClassName(ClassOverlay)
		b.nodes.Overlay = n
	}
	return b.nodes.Overlay
}

func (b *Builder) Footer() *dom.Node {
	if b.nodes.Footer == nil {
		n := b.doc.CreateElement("footer")
		n.SetAttribute("id", FooterID)
		n.SetClassName(ClassFooter)
		b.nodes.Footer = n
	}
	return b.nodes.Footer
}

func (b *Builder) OKButton() *dom.Node {
	if b.nodes.OKButton == nil {
		b.nodes.OKButton = b.button(b.opts.OK)
	}
	return b.nodes.OKButton
}

func (b *Builder) CancelButton() *dom.Node {
	if b.nodes.CancelButton == nil {
		b.nodes.CancelButton = b.button(b.opts.Cancel)
	}
	return b.nodes.CancelButton
}

func (b *Builder) button(spec Button) *dom.Node {
	n := b.doc.CreateElement("button")
	for _, a := range spec.Attrs {
		n.SetAttribute(a.Name, a.Value)
	}
	n.SetContent(spec.Label)
	return n
}
