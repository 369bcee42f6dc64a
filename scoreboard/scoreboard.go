/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

// Package scoreboard keeps the roster and round-by-round score history
// for a single game table.
package scoreboard

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Player is a named score history. Scores[0] is the baseline before any
// round was recorded.
type Player struct {
	Name   string
	Scores []float64
}

// Current returns the most recent score, or 0 for an empty history.
func (p Player) Current() float64 {
	if len(p.Scores) == 0 {
		return 0
	}

	return p.Scores[len(p.Scores)-1]
}

// ScoreBoard is not safe for concurrent use; each session owns one.
type ScoreBoard struct {
	players []*Player
	rank    *ranker
}

func New() *ScoreBoard {
	return &ScoreBoard{
		rank: newRanker(),
	}
}

func (s *ScoreBoard) PlayerCount() int {
	return len(s.players)
}

// RoundCount is the length of every player's history, or 1 when there
// are no players.
func (s *ScoreBoard) RoundCount() int {
	if len(s.players) == 0 {
		return 1
	}

	return len(s.players[0].Scores)
}

func (s *ScoreBoard) HasPlayer(name string) bool {
	return s.find(name) != nil
}

func (s *ScoreBoard) CurrentScore(name string) (float64, error) {
	p := s.find(name)
	if p == nil {
		return 0, &NotFoundError{Name: name}
	}

	return p.Current(), nil
}

// AddPlayer appends a player whose history is zero-filled up to the
// current round count.
func (s *ScoreBoard) AddPlayer(name string) error {
	if s.HasPlayer(name) {
		return &DuplicateError{Name: name}
	}

	s.players = append(s.players, &Player{
		Name:   name,
		Scores: make([]float64, s.RoundCount()),
	})

	return nil
}

func (s *ScoreBoard) ClearAll() {
	s.players = nil
}

// ResetScores keeps the roster but drops every recorded round.
func (s *ScoreBoard) ResetScores() {
	for _, p := range s.players {
		p.Scores = []float64{0}
	}
}

// CommitRound records one round from the pending per-player entries.
// Missing or blank entries count as zero. If any entry is not a number
// the round is rejected as a whole and nothing changes.
func (s *ScoreBoard) CommitRound(pending map[string]string) error {
	values := make([]float64, len(s.players))

	for i, p := range s.players {
		v, err := parsePending(pending[p.Name])
		if err != nil {
			return &InvalidInputError{Name: p.Name, Value: pending[p.Name]}
		}
		values[i] = v
	}

	for i, p := range s.players {
		p.Scores = append(p.Scores, p.Current()+roundHalfUp(values[i]))
	}

	return nil
}

// UndoLastRound removes the latest round and returns, per player name,
// the amount that round added. It returns nil when only the baseline
// remains.
func (s *ScoreBoard) UndoLastRound() map[string]float64 {
	if s.RoundCount() < 2 {
		return nil
	}

	deltas := make(map[string]float64, len(s.players))
	for _, p := range s.players {
		n := len(p.Scores)
		deltas[p.Name] = p.Scores[n-1] - p.Scores[n-2]
		p.Scores = p.Scores[:n-1]
	}

	return deltas
}

// Snapshot returns a deep copy of the roster in insertion order.
func (s *ScoreBoard) Snapshot() []Player {
	out := make([]Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, Player{
			Name:   p.Name,
			Scores: slices.Clone(p.Scores),
		})
	}

	return out
}

// FormatPending formats an undone delta for re-entry, e.g. "+12" or "-3".
func FormatPending(delta float64) string {
	return signed(delta)
}

func (s *ScoreBoard) find(name string) *Player {
	for _, p := range s.players {
		if p.Name == name {
			return p
		}
	}

	return nil
}

func parsePending(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}

	return v, nil
}

// roundHalfUp rounds to the nearest integer, with halves going toward
// positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
