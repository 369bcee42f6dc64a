/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package scoreboard

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Deltas above this (in magnitude) are float noise, not a loss.
const negativeThreshold = -1e-5

// View is everything the page needs to draw the score table.
type View struct {
	HasPlayers bool
	Rows       []Row
}

// Row is one ranked player.
type Row struct {
	Name  string
	Cells []Cell
}

// Cell is one entry of a player's history. The first cell has no delta.
type Cell struct {
	Score    string
	Delta    string
	HasDelta bool
	Negative bool
	Current  bool
}

type ranker struct {
	collator *collate.Collator
}

func newRanker() *ranker {
	return &ranker{
		collator: collate.New(language.English),
	}
}

func (r *ranker) compare(a, b Player) int {
	if c := cmp.Compare(b.Current(), a.Current()); c != 0 {
		return c
	}
	if c := r.collator.CompareString(a.Name, b.Name); c != 0 {
		return c
	}

	return strings.Compare(a.Name, b.Name)
}

// Ranked returns the players ordered by current score, highest first,
// with ties broken by name. The roster order itself is not changed.
func (s *ScoreBoard) Ranked() []Player {
	players := s.Snapshot()
	slices.SortStableFunc(players, s.rank.compare)

	return players
}

// IsNegativeDelta reports whether a delta should be shown as a loss.
func IsNegativeDelta(delta float64) bool {
	return delta < negativeThreshold
}

func (s *ScoreBoard) Render() View {
	ranked := s.Ranked()

	view := View{
		HasPlayers: len(ranked) > 0,
		Rows:       make([]Row, 0, len(ranked)),
	}

	for _, p := range ranked {
		row := Row{
			Name:  p.Name,
			Cells: make([]Cell, 0, len(p.Scores)),
		}

		for i, score := range p.Scores {
			cell := Cell{
				Score:   formatScore(score),
				Current: i == len(p.Scores)-1,
			}

			if i > 0 {
				delta := score - p.Scores[i-1]
				cell.HasDelta = true
				cell.Delta = signed(delta)
				cell.Negative = IsNegativeDelta(delta)
			}

			row.Cells = append(row.Cells, cell)
		}

		view.Rows = append(view.Rows, row)
	}

	return view
}

func formatScore(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	if s == "-0" {
		return "0"
	}

	return s
}

func signed(v float64) string {
	s := formatScore(v)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}

	return s
}
