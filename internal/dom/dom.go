// Package dom provides the minimal document model the dialog engine renders
// into: element creation, attributes, class lists, tree insertion and removal,
// element lookup by id, inline styles, and click event binding.
//
// A Document is not safe for concurrent use. It is owned by the single host
// loop that drives the dialog controller.
package dom

import (
	"slices"
	"strings"
)

// Event names understood by Dispatch.
const (
	EventClick = "click"
)

// Node is a single element in a Document.
type Node struct {
	tag       string
	attrNames []string
	attrs     map[string]string
	style     map[string]string
	content   string
	value     string
	parent    *Node
	children  []*Node
	listeners map[string][]func()
}

// Tag returns the element tag name.
func (n *Node) Tag() string { return n.tag }

// ID returns the id attribute, or "" when unset.
func (n *Node) ID() string {
	id, _ := n.Attribute("id")
	return id
}

// SetAttribute sets an attribute, preserving first-set order for serialization.
func (n *Node) SetAttribute(name, value string) {
	if _, ok := n.attrs[name]; !ok {
		n.attrNames = append(n.attrNames, name)
	}
	n.attrs[name] = value
}

// Attribute returns the named attribute and whether it is set.
func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// ClassName returns the raw class attribute.
func (n *Node) ClassName() string {
	return n.attrs["class"]
}

// SetClassName replaces the class attribute.
func (n *Node) SetClassName(className string) {
	n.SetAttribute("class", className)
}

// AddClass appends each class to the class attribute, space separated, and
// returns the resulting class attribute.
func (n *Node) AddClass(classes ...string) string {
	className := n.ClassName()
	for _, c := range classes {
		if className == "" {
			className = c
			continue
		}
		className += " " + c
	}
	n.SetClassName(className)
	return className
}

// RemoveClass removes every occurrence of klass from the class attribute.
func (n *Node) RemoveClass(klass string) {
	if _, ok := n.attrs["class"]; !ok {
		return
	}
	tokens := strings.Split(n.ClassName(), " ")
	tokens = slices.DeleteFunc(tokens, func(t string) bool {
		return t == klass
	})
	n.SetClassName(strings.Join(tokens, " "))
}

// HasClass reports whether klass is one of the node's class tokens.
func (n *Node) HasClass(klass string) bool {
	return slices.Contains(strings.Fields(n.ClassName()), klass)
}

// SetStyle sets an inline style property. An empty value clears it.
func (n *Node) SetStyle(property, value string) {
	if value == "" {
		delete(n.style, property)
		return
	}
	n.style[property] = value
}

// Style returns the inline style property, or "" when unset.
func (n *Node) Style(property string) string {
	return n.style[property]
}

// Content returns the rendered content of the node.
func (n *Node) Content() string { return n.content }

// SetContent replaces the rendered content of the node.
func (n *Node) SetContent(content string) { n.content = content }

// Value returns the current value of an input node.
func (n *Node) Value() string { return n.value }

// SetValue sets the current value of an input node.
func (n *Node) SetValue(v string) { n.value = v }

// Parent returns the parent node, or nil when detached.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in order.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// AppendChild attaches child as the last child of n, detaching it from any
// previous parent first.
func (n *Node) AppendChild(child *Node) *Node {
	child.detach()
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// InsertBefore inserts child before ref. When ref is nil or not a child of n,
// child is appended.
func (n *Node) InsertBefore(child, ref *Node) *Node {
	child.detach()
	idx := slices.Index(n.children, ref)
	if ref == nil || idx < 0 {
		return n.AppendChild(child)
	}
	child.parent = n
	n.children = slices.Insert(n.children, idx, child)
	return child
}

// RemoveChild detaches child from n. It returns false when child is not a
// child of n.
func (n *Node) RemoveChild(child *Node) bool {
	if child == nil || child.parent != n {
		return false
	}
	child.detach()
	return true
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	p := n.parent
	p.children = slices.DeleteFunc(p.children, func(c *Node) bool { return c == n })
	n.parent = nil
}

// AddEventListener registers fn for the named event.
func (n *Node) AddEventListener(event string, fn func()) {
	n.listeners[event] = append(n.listeners[event], fn)
}

// Dispatch invokes every listener registered for event in registration order
// and reports whether any listener ran.
func (n *Node) Dispatch(event string) bool {
	fns := slices.Clone(n.listeners[event])
	for _, fn := range fns {
		fn()
	}
	return len(fns) > 0
}

// Walk visits n and its descendants depth-first. Returning false from visit
// stops the walk.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, c := range n.children {
		if !c.Walk(visit) {
			return false
		}
	}
	return true
}

// Document is a tree of nodes with a head for detached reference content and
// a body for mounted elements.
type Document struct {
	head *Node
	body *Node
}

// New creates an empty document.
func New() *Document {
	return &Document{
		head: newNode("head"),
		body: newNode("body"),
	}
}

func newNode(tag string) *Node {
	return &Node{
		tag:       tag,
		attrs:     map[string]string{},
		style:     map[string]string{},
		listeners: map[string][]func(){},
	}
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) *Node {
	return newNode(tag)
}

// Head returns the head node, which holds reference content that is never
// rendered.
func (d *Document) Head() *Node { return d.head }

// Body returns the body node.
func (d *Document) Body() *Node { return d.body }

// GetElementByID returns the first element with the given id in the head or
// body, or nil when none exists.
func (d *Document) GetElementByID(id string) *Node {
	if id == "" {
		return nil
	}
	var found *Node
	for _, root := range []*Node{d.head, d.body} {
		root.Walk(func(n *Node) bool {
			if n.ID() == id {
				found = n
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}
