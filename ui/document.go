/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package ui is a small retained element tree. The server mutates it in
// response to browser events and sends the whole tree back after each
// change; the browser only draws it.
package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

var ErrUnknownNode = errors.New("no such node")

type Document struct {
	body  *Node
	next  int
	focus string
}

func NewDocument() *Document {
	d := &Document{}
	d.body = d.Create("body")

	return d
}

func (d *Document) Body() *Node { return d.body }

// Create returns a new detached node.
func (d *Document) Create(tag string) *Node {
	d.next++

	return &Node{
		doc: d,
		key: "n" + strconv.Itoa(d.next),
		tag: tag,
	}
}

// Lookup returns the attached node with the given anchor id, or nil.
func (d *Document) Lookup(id string) *Node {
	var found *Node

	d.body.walk(func(n *Node) bool {
		if n.id == id {
			found = n
			return false
		}
		return true
	})

	return found
}

func (d *Document) byKey(key string) *Node {
	var found *Node

	d.body.walk(func(n *Node) bool {
		if n.key == key {
			found = n
			return false
		}
		return true
	})

	return found
}

// SetValues copies input contents reported by the browser into the tree.
// Keys that no longer exist are ignored.
func (d *Document) SetValues(values map[string]string) {
	if len(values) == 0 {
		return
	}

	d.body.walk(func(n *Node) bool {
		if v, ok := values[n.key]; ok {
			n.value = v
		}
		return true
	})
}

// Activate runs the handlers of the attached node with the given key.
func (d *Document) Activate(key string) error {
	n := d.byKey(key)
	if n == nil {
		return fmt.Errorf("activate %s: %w", key, ErrUnknownNode)
	}

	for _, fn := range n.handlers {
		fn()
	}

	return nil
}

type nodeJSON struct {
	Key      string            `json:"key"`
	Tag      string            `json:"tag"`
	ID       string            `json:"id,omitempty"`
	Class    []string          `json:"class,omitempty"`
	Text     string            `json:"text,omitempty"`
	Value    *string           `json:"value,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Hidden   bool              `json:"hidden,omitempty"`
	Active   bool              `json:"active,omitempty"`
	Children []nodeJSON        `json:"children,omitempty"`
}

func encode(n *Node) nodeJSON {
	out := nodeJSON{
		Key:    n.key,
		Tag:    n.tag,
		ID:     n.id,
		Class:  n.classes,
		Text:   n.text,
		Attrs:  n.attrs,
		Hidden: n.hidden,
		Active: len(n.handlers) > 0,
	}

	if n.tag == "input" {
		v := n.value
		out.Value = &v
	}

	for _, c := range n.children {
		out.Children = append(out.Children, encode(c))
	}

	return out
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Focus string   `json:"focus,omitempty"`
		Body  nodeJSON `json:"body"`
	}{
		Focus: d.focus,
		Body:  encode(d.body),
	})
}
