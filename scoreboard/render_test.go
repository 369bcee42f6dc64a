package scoreboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}

	return out
}

func TestRanking(t *testing.T) {
	t.Run("score descending then name ascending", func(t *testing.T) {
		s := newBoard(t, "C", "B", "A")
		require.NoError(t, s.CommitRound(map[string]string{"A": "10", "B": "10", "C": "5"}))

		assert.Equal(t, []string{"A", "B", "C"}, names(s.Render().Rows))
	})

	t.Run("ties are compared without regard to case", func(t *testing.T) {
		s := newBoard(t, "bob", "Alice", "carol")

		assert.Equal(t, []string{"Alice", "bob", "carol"}, names(s.Render().Rows))
	})

	t.Run("ranking does not reorder the roster", func(t *testing.T) {
		s := newBoard(t, "Low", "High")
		require.NoError(t, s.CommitRound(map[string]string{"High": "9"}))

		ranked := s.Ranked()
		snap := s.Snapshot()

		assert.Equal(t, "High", ranked[0].Name)
		assert.Equal(t, "Low", snap[0].Name)
	})
}

func TestRenderCells(t *testing.T) {
	s := newBoard(t, "A")
	require.NoError(t, s.CommitRound(map[string]string{"A": "10"}))
	require.NoError(t, s.CommitRound(map[string]string{"A": "-4"}))

	view := s.Render()
	require.True(t, view.HasPlayers)
	require.Len(t, view.Rows, 1)

	cells := view.Rows[0].Cells
	require.Len(t, cells, 3)

	assert.Equal(t, Cell{Score: "0"}, cells[0])
	assert.Equal(t, Cell{Score: "10", Delta: "+10", HasDelta: true}, cells[1])
	assert.Equal(t, Cell{Score: "6", Delta: "-4", HasDelta: true, Negative: true, Current: true}, cells[2])
}

func TestRenderSingleCellIsCurrent(t *testing.T) {
	s := newBoard(t, "A")

	cells := s.Render().Rows[0].Cells

	require.Len(t, cells, 1)
	assert.True(t, cells[0].Current)
	assert.False(t, cells[0].HasDelta)
}

func TestIsNegativeDelta(t *testing.T) {
	tests := []struct {
		delta float64
		want  bool
	}{
		{-1, true},
		{-0.00002, true},
		{-0.000005, false},
		{0, false},
		{3, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNegativeDelta(tt.delta), "delta %v", tt.delta)
	}
}

func TestSignedNegativeZero(t *testing.T) {
	assert.Equal(t, "+0", signed(-0.000005))
	assert.Equal(t, "0", formatScore(-0.2))
}
