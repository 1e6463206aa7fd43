package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/hay-kot/alertbox/internal/dialog"
	"github.com/hay-kot/alertbox/internal/dom"
	"github.com/hay-kot/alertbox/internal/styles"
)

// RenderOptions configures a Renderer.
type RenderOptions struct {
	Width        int
	Markdown     bool
	GlamourStyle string
}

// Renderer draws the dialog found in a document.
type Renderer struct {
	width    int
	markdown *glamour.TermRenderer
}

// NewRenderer creates a Renderer. When markdown is requested but glamour
// cannot be set up, bodies render as plain text.
func NewRenderer(opts RenderOptions, logger zerolog.Logger) *Renderer {
	r := &Renderer{width: opts.Width}

	if opts.Markdown {
		md, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(opts.GlamourStyle),
			glamour.WithWordWrap(r.contentWidth()-glamourGutter),
		)
		if err != nil {
			logger.Warn().Err(err).Str("style", opts.GlamourStyle).Msg("markdown renderer unavailable, using plain text")
		} else {
			r.markdown = md
		}
	}

	return r
}

func (r *Renderer) contentWidth() int {
	return r.width - modalPadding - 2
}

// Frame is host state the document does not carry.
type Frame struct {
	Width   int
	Height  int
	Focused *dom.Node
	// Input replaces the input node's value when set, so the host can show a
	// live cursor.
	Input string
	Help  string
}

// Render draws the dialog mounted in doc. It returns an empty screen when no
// dialog is mounted.
func (r *Renderer) Render(doc *dom.Document, f Frame) string {
	layer := doc.GetElementByID(dialog.LayerID)
	if layer == nil || layer.Parent() == nil {
		return r.place("", f, lipgloss.Center, lipgloss.Center, false)
	}

	var sections []string
	for _, child := range layer.Children() {
		switch child.ID() {
		case dialog.HeaderID:
			if s := r.header(child); s != "" {
				sections = append(sections, s)
			}
		case dialog.BodyID:
			sections = append(sections, r.body(child, f)...)
		case dialog.FooterID:
			if s := r.footer(child, f.Focused); s != "" {
				sections = append(sections, "", s)
			}
		}
	}
	if f.Help != "" {
		sections = append(sections, modalHelpStyle.Render(f.Help))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	hPos, vPos, away := position(layer)
	box := modalStyle
	if away {
		box = modalAwayStyle
	}
	modal := box.Width(r.width).Render(content)

	return r.place(modal, f, hPos, vPos, overlayVisible(doc))
}

func (r *Renderer) header(n *dom.Node) string {
	var lines []string
	for _, child := range n.Children() {
		if child.Content() == "" {
			continue
		}
		lines = append(lines, styleFor(child).Render(child.Content()))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) body(n *dom.Node, f Frame) []string {
	var out []string

	if text := n.Content(); text != "" {
		out = append(out, "", r.text(n, text))
	}

	for _, child := range n.Children() {
		if child.Tag() != "input" {
			continue
		}
		value := child.Value()
		if f.Input != "" {
			value = f.Input
		}
		box := inputBoxStyle.Width(r.contentWidth() - 2)
		if f.Focused == child {
			box = box.BorderForeground(styles.ColorBlue)
		}
		out = append(out, "", box.Render(value))
	}

	return out
}

func (r *Renderer) text(n *dom.Node, text string) string {
	if r.markdown != nil {
		rendered, err := r.markdown.Render(text)
		if err == nil {
			content := strings.TrimSpace(rendered)
			content = stripLeadingDecorative(content)
			content = stripTrailingDecorative(content)
			return content
		}
	}
	return styleFor(n).Width(r.contentWidth()).Render(text)
}

func (r *Renderer) footer(n *dom.Node, focused *dom.Node) string {
	var buttons []string
	for _, btn := range n.Children() {
		s := styleFor(btn).Padding(0, 2)
		if btn == focused {
			s = s.Inherit(focusedButtonStyle)
		}
		if len(buttons) > 0 {
			buttons = append(buttons, "  ")
		}
		buttons = append(buttons, s.Render(btn.Content()))
	}
	if len(buttons) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}

// place positions the modal on screen. The overlay fills the remaining space
// with a shade pattern.
func (r *Renderer) place(modal string, f Frame, hPos, vPos lipgloss.Position, overlay bool) string {
	if f.Width <= 0 || f.Height <= 0 {
		return modal
	}
	if overlay {
		return lipgloss.Place(
			f.Width, f.Height,
			hPos, vPos,
			modal,
			lipgloss.WithWhitespaceChars(overlayChar),
			lipgloss.WithWhitespaceForeground(styles.ColorShade),
		)
	}
	return lipgloss.Place(f.Width, f.Height, hPos, vPos, modal)
}

// position reads the layer's positioning class. A dialog carrying an
// animation class sits at its from edge; otherwise it is centered.
func position(layer *dom.Node) (h, v lipgloss.Position, away bool) {
	h, v = lipgloss.Center, lipgloss.Center
	for _, name := range dialog.Froms() {
		from, _ := dialog.ParseFrom(name)
		if !layer.HasClass(dialog.AnimationClass(from)) {
			continue
		}
		switch from {
		case dialog.FromTop:
			v = lipgloss.Top
		case dialog.FromBottom:
			v = lipgloss.Bottom
		case dialog.FromLeft:
			h = lipgloss.Left
		case dialog.FromRight:
			h = lipgloss.Right
		}
		return h, v, true
	}
	return h, v, false
}

func overlayVisible(doc *dom.Document) bool {
	for _, n := range doc.Body().Children() {
		if n.HasClass(dialog.ClassOverlay) {
			return n.Style("visibility") != "hidden"
		}
	}
	return false
}

// isDecorativeLine checks if a line contains only horizontal rule characters
// or spaces after stripping escape sequences.
func isDecorativeLine(line string) bool {
	stripped := strings.TrimSpace(ansi.Strip(line))
	for _, r := range stripped {
		if r != '─' && r != '━' && r != '-' && r != '=' {
			return false
		}
	}
	return true
}

func stripLeadingDecorative(content string) string {
	lines := strings.Split(content, "\n")
	start := 0
	for start < len(lines) && isDecorativeLine(lines[start]) {
		start++
	}
	return strings.Join(lines[start:], "\n")
}

func stripTrailingDecorative(content string) string {
	lines := strings.Split(content, "\n")
	end := len(lines)
	for end > 0 && isDecorativeLine(lines[end-1]) {
		end--
	}
	return strings.Join(lines[:end], "\n")
}
