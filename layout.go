/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import "github.com/Seednode/scorebox/ui"

const (
	unloadWarning = "Stored scores will be deleted when this page is closed!"
)

// buildLayout creates the static page skeleton. Everything the tracker
// touches later is found again through Document.Lookup.
func buildLayout(doc *ui.Document) {
	button := func(id, label, icon string) *ui.Node {
		b := doc.Create("button").SetID(id).SetAttr("title", label)
		b.Append(doc.Create("span").AddClass("icon", "material-symbols-outlined").SetText(icon))
		b.Append(doc.Create("span").AddClass("label").SetText(label))
		return b
	}

	header := doc.Create("header").AddClass("toolbar").Append(
		doc.Create("h1").SetText("Scorebox"),
		button("add-player-button", "Add player", "person_add"),
		button("clear-players-button", "Clear players", "group_remove"),
	)

	noPlayers := doc.Create("div").
		SetID("no-players-message").
		AddClass("message").
		SetText("No players yet. Add a player to start keeping score.")

	scores := doc.Create("div").SetID("scores").AddClass("scores").Append(
		doc.Create("div").SetID("scores-output"),
	)

	table := doc.Create("div").SetID("scores-table").AddClass("scores-table").Append(
		doc.Create("div").SetID("players-output").AddClass("players"),
		scores,
		doc.Create("div").SetID("add-scores-output").AddClass("add-scores"),
		button("expand-button", "Show history", "add"),
	)

	footer := doc.Create("footer").AddClass("toolbar").Append(
		button("add-scores-button", "Add scores", "check"),
		button("undo-button", "Undo", "undo"),
		button("clear-scores-button", "Clear scores", "restart_alt"),
		doc.Create("div").SetID("add-scores-warning").AddClass("warning"),
	)

	doc.Body().Append(header, noPlayers, table, footer)
}
