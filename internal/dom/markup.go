package dom

import (
	"html"
	"sort"
	"strings"
)

var voidTags = map[string]bool{
	"input": true,
	"br":    true,
	"hr":    true,
	"img":   true,
}

// Markup serializes the body children as indented HTML-like markup. Inline
// styles are emitted as a style attribute with properties sorted by name.
func (d *Document) Markup() string {
	var sb strings.Builder
	for _, c := range d.body.children {
		writeNode(&sb, c, 0)
	}
	return sb.String()
}

// Markup serializes n and its descendants.
func (n *Node) Markup() string {
	var sb strings.Builder
	writeNode(&sb, n, 0)
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node, depth int) {
	indent := strings.Repeat("  ", depth)

	sb.WriteString(indent)
	sb.WriteString("<" + n.tag)
	for _, name := range n.attrNames {
		sb.WriteString(" " + name + `="` + html.EscapeString(n.attrs[name]) + `"`)
	}
	if n.value != "" {
		sb.WriteString(` value="` + html.EscapeString(n.value) + `"`)
	}
	if len(n.style) > 0 {
		props := make([]string, 0, len(n.style))
		for k, v := range n.style {
			props = append(props, k+": "+v)
		}
		sort.Strings(props)
		sb.WriteString(` style="` + strings.Join(props, "; ") + `"`)
	}
	sb.WriteString(">")

	if voidTags[n.tag] {
		sb.WriteString("\n")
		return
	}

	if len(n.children) == 0 {
		sb.WriteString(n.content)
		sb.WriteString("</" + n.tag + ">\n")
		return
	}

	sb.WriteString("\n")
	if n.content != "" {
		sb.WriteString(indent + "  " + n.content + "\n")
	}
	for _, c := range n.children {
		writeNode(sb, c, depth+1)
	}
	sb.WriteString(indent + "</" + n.tag + ">\n")
}
