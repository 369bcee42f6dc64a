/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package popup implements single-use modal dialogs on top of a ui.Document.
package popup

import "github.com/Seednode/scorebox/ui"

// Popup is visible from the moment it is created until Close is called.
// A closed popup cannot be reopened.
type Popup struct {
	container *ui.Node
	title     *ui.Node
	content   *ui.Node
	closed    bool
	onClose   []func()
}

// New builds the overlay and appends it to the document body.
func New(doc *ui.Document) *Popup {
	p := &Popup{
		container: doc.Create("div").AddClass("popup"),
		title:     doc.Create("h2").AddClass("title"),
		content:   doc.Create("div").AddClass("content"),
	}

	background := doc.Create("div").AddClass("background").OnActivate(p.Close)

	closeIcon := doc.Create("span").
		AddClass("icon", "material-symbols-outlined").
		SetText("close")
	closeButton := doc.Create("button").
		AddClass("close-button").
		Append(closeIcon).
		OnActivate(p.Close)

	main := doc.Create("div").
		AddClass("main").
		Append(p.title, p.content, closeButton)

	p.container.Append(background, main)
	doc.Body().Append(p.container)

	return p
}

func (p *Popup) Title() string { return p.title.Text() }

func (p *Popup) SetTitle(title string) { p.title.SetText(title) }

// Content is the container callers fill with their own elements.
func (p *Popup) Content() *ui.Node { return p.content }

// OnClose registers fn to run once when the popup closes.
func (p *Popup) OnClose(fn func()) { p.onClose = append(p.onClose, fn) }

func (p *Popup) Closed() bool { return p.closed }

// Close removes the popup from the document. Further calls do nothing.
func (p *Popup) Close() {
	if p.closed {
		return
	}
	p.closed = true

	p.container.Remove()

	for _, fn := range p.onClose {
		fn()
	}
}
