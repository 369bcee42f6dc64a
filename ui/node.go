/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package ui

import "slices"

// Node is an element in a Document. Nodes are created through
// Document.Create and only receive events while attached to the body.
type Node struct {
	doc      *Document
	key      string
	tag      string
	id       string
	text     string
	value    string
	hidden   bool
	classes  []string
	attrs    map[string]string
	parent   *Node
	children []*Node
	handlers []func()
}

// Key is the document-unique handle the browser uses to refer to the node.
func (n *Node) Key() string { return n.key }

func (n *Node) Tag() string { return n.tag }

// ID is the anchor identifier used by Document.Lookup.
func (n *Node) ID() string { return n.id }

func (n *Node) SetID(id string) *Node {
	n.id = id
	return n
}

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// Append attaches children in order, moving them from any previous parent.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c == nil || c == n {
			continue
		}
		c.Remove()
		c.parent = n
		n.children = append(n.children, c)
	}

	return n
}

// Remove detaches the node from its parent. Removing a detached node is a no-op.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}

	p.children = slices.DeleteFunc(p.children, func(c *Node) bool { return c == n })
	n.parent = nil
}

// Clear detaches every child.
func (n *Node) Clear() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
}

func (n *Node) Text() string { return n.text }

func (n *Node) SetText(text string) *Node {
	n.text = text
	return n
}

// Value is the current contents of a text input.
func (n *Node) Value() string { return n.value }

func (n *Node) SetValue(value string) *Node {
	n.value = value
	return n
}

func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

func (n *Node) AddClass(classes ...string) *Node {
	for _, c := range classes {
		if !n.HasClass(c) {
			n.classes = append(n.classes, c)
		}
	}

	return n
}

func (n *Node) RemoveClass(class string) *Node {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool { return c == class })
	return n
}

// ToggleClass adds the class when on is true and removes it otherwise.
func (n *Node) ToggleClass(class string, on bool) *Node {
	if on {
		return n.AddClass(class)
	}

	return n.RemoveClass(class)
}

func (n *Node) Classes() []string { return slices.Clone(n.classes) }

func (n *Node) Attr(name string) string { return n.attrs[name] }

func (n *Node) SetAttr(name, value string) *Node {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value

	return n
}

func (n *Node) Hidden() bool { return n.hidden }

func (n *Node) SetHidden(hidden bool) *Node {
	n.hidden = hidden
	return n
}

// OnActivate registers fn to run when the user activates the node.
func (n *Node) OnActivate(fn func()) *Node {
	n.handlers = append(n.handlers, fn)
	return n
}

// Focus asks the browser to move keyboard focus to this node.
func (n *Node) Focus() {
	n.doc.focus = n.key
}

// Attached reports whether the node is reachable from the document body.
func (n *Node) Attached() bool {
	for p := n; p != nil; p = p.parent {
		if p == n.doc.body {
			return true
		}
	}

	return false
}

func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(fn) {
			return false
		}
	}

	return true
}
