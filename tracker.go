/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"errors"

	"github.com/Seednode/scorebox/popup"
	"github.com/Seednode/scorebox/scoreboard"
	"github.com/Seednode/scorebox/ui"
)

// Tracker wires a ScoreBoard to the buttons and tables of one page.
type Tracker struct {
	board *scoreboard.ScoreBoard
	doc   *ui.Document
	logf  func(format string, args ...any)

	// inputs maps a player name to the text box holding that player's
	// pending score. It is rebuilt on every render.
	inputs map[string]*ui.Node

	expanded bool
}

func NewTracker(board *scoreboard.ScoreBoard, doc *ui.Document, logf func(format string, args ...any)) *Tracker {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	t := &Tracker{
		board:  board,
		doc:    doc,
		logf:   logf,
		inputs: make(map[string]*ui.Node),
	}

	buildLayout(doc)

	t.bind("expand-button", t.toggleExpand)
	t.bind("clear-players-button", t.confirmClearPlayers)
	t.bind("add-player-button", t.promptAddPlayer)
	t.bind("add-scores-button", t.addEnteredScores)
	t.bind("undo-button", t.undoLastScores)
	t.bind("clear-scores-button", t.confirmClearScores)

	t.Render()

	return t
}

func (t *Tracker) bind(id string, fn func()) {
	if n := t.doc.Lookup(id); n != nil {
		n.OnActivate(fn)
	}
}

// Render rebuilds the player, score and input columns from scratch.
func (t *Tracker) Render() {
	view := t.board.Render()

	players := t.doc.Lookup("players-output")
	scores := t.doc.Lookup("scores-output")
	addScores := t.doc.Lookup("add-scores-output")

	players.Clear()
	scores.Clear()
	addScores.Clear()
	t.inputs = make(map[string]*ui.Node, len(view.Rows))

	for _, row := range view.Rows {
		players.Append(t.playerRow(row))
		scores.Append(t.scoreRow(row))
		addScores.Append(t.addScoreRow(row))
	}

	t.doc.Lookup("no-players-message").SetHidden(view.HasPlayers)
	t.doc.Lookup("scores-table").SetHidden(!view.HasPlayers)
	t.doc.Lookup("add-scores-warning").SetText("")
}

func (t *Tracker) playerRow(row scoreboard.Row) *ui.Node {
	return t.doc.Create("div").AddClass("player").Append(
		t.doc.Create("span").SetText(row.Name),
	)
}

func (t *Tracker) scoreRow(row scoreboard.Row) *ui.Node {
	r := t.doc.Create("div").AddClass("score-row")

	for _, c := range row.Cells {
		cell := t.doc.Create("div").AddClass("score-cell")
		cell.Append(t.doc.Create("span").AddClass("score").SetText(c.Score))

		if c.HasDelta {
			diff := t.doc.Create("span").AddClass("score-diff").SetText(c.Delta)
			diff.ToggleClass("score-diff-neg", c.Negative)
			cell.Append(diff)
		}

		cell.ToggleClass("score-cell-current", c.Current)
		r.Append(cell)
	}

	return r
}

func (t *Tracker) addScoreRow(row scoreboard.Row) *ui.Node {
	input := t.doc.Create("input").
		SetAttr("type", "text").
		SetAttr("name", "add-score").
		SetAttr("inputmode", "decimal")
	t.inputs[row.Name] = input

	return t.doc.Create("div").AddClass("add-score").Append(input)
}

func (t *Tracker) toggleExpand() {
	t.expanded = !t.expanded

	scores := t.doc.Lookup("scores")
	scores.ToggleClass("scores-history", t.expanded)
	if t.expanded {
		scores.SetAttr("data-scroll", "end")
	} else {
		scores.SetAttr("data-scroll", "")
	}

	icon := "add"
	if t.expanded {
		icon = "remove"
	}
	for _, c := range t.doc.Lookup("expand-button").Children() {
		if c.HasClass("icon") {
			c.SetText(icon)
		}
	}
}

// pending collects the text currently entered for each player.
func (t *Tracker) pending() map[string]string {
	values := make(map[string]string, len(t.inputs))
	for name, input := range t.inputs {
		values[name] = input.Value()
	}

	return values
}

func (t *Tracker) addEnteredScores() {
	err := t.board.CommitRound(t.pending())

	var invalid *scoreboard.InvalidInputError
	if errors.As(err, &invalid) {
		t.logf("Rejected round: %v", err)
		t.doc.Lookup("add-scores-warning").SetText("Scores must be numbers.")
		return
	}

	t.logf("Recorded round %d for %d players", t.board.RoundCount()-1, t.board.PlayerCount())
	t.Render()
}

func (t *Tracker) undoLastScores() {
	deltas := t.board.UndoLastRound()
	if deltas == nil {
		return
	}

	t.logf("Undid round %d", t.board.RoundCount())
	t.Render()

	for name, delta := range deltas {
		if input, ok := t.inputs[name]; ok {
			input.SetValue(scoreboard.FormatPending(delta))
		}
	}
}

// confirm opens a dialog with a single Confirm button that runs fn and
// closes the dialog.
func (t *Tracker) confirm(title, question string, fn func()) *popup.Popup {
	p := popup.New(t.doc)
	p.SetTitle(title)

	confirmButton := t.doc.Create("button").SetText("Confirm")
	p.Content().Append(
		t.doc.Create("div").SetText(question),
		t.doc.Create("div").AddClass("wide-button-row").Append(confirmButton),
	)

	confirmButton.OnActivate(func() {
		fn()
		t.Render()
		p.Close()
	})

	return p
}

func (t *Tracker) confirmClearPlayers() {
	t.confirm("Clear players", "Are you sure you want to clear all players?", func() {
		t.logf("Cleared %d players", t.board.PlayerCount())
		t.board.ClearAll()
	})
}

func (t *Tracker) confirmClearScores() {
	t.confirm("Clear scores", "Are you sure you want to reset all scores to zero?", func() {
		t.logf("Reset scores for %d players", t.board.PlayerCount())
		t.board.ResetScores()
	})
}

func (t *Tracker) promptAddPlayer() {
	p := popup.New(t.doc)
	p.SetTitle("Add player")

	input := t.doc.Create("input").
		AddClass("wide-text-input").
		SetAttr("type", "text").
		SetAttr("placeholder", "Player name").
		SetAttr("name", "player-name")
	warnText := t.doc.Create("div").AddClass("warning")
	confirmButton := t.doc.Create("button").SetText("Confirm")

	p.Content().Append(
		input,
		warnText,
		t.doc.Create("div").AddClass("wide-button-row").Append(confirmButton),
	)
	input.Focus()

	confirmButton.OnActivate(func() {
		name := input.Value()
		if name == "" {
			return
		}

		err := t.board.AddPlayer(name)
		if errors.Is(err, scoreboard.ErrDuplicate) {
			warnText.SetText("Player with that name already exists.")
			return
		}

		t.logf("Added player %q", name)
		t.Render()
		p.Close()
	})
}
