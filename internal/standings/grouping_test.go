package standings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinPercentage(t *testing.T) {
	tests := []struct {
		name   string
		record TeamRecord
		want   float64
	}{
		{"no games", TeamRecord{}, 0},
		{"wins and losses", TeamRecord{Wins: 10, Losses: 3}, 10.0 / 13.0},
		{"ties count half", TeamRecord{Wins: 8, Losses: 4, Ties: 1}, 8.5 / 13.0},
		{"undefeated", TeamRecord{Wins: 5}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, WinPercentage(tt.record), 1e-12)
		})
	}
}

func TestGroupByWinPercentage(t *testing.T) {
	records := []TeamRecord{
		team("low", 2, 11, 900),
		{TeamID: "tie-a", Wins: 1, Ties: 1, Losses: 0},
		team("top", 12, 1, 1500),
		team("tie-b", 3, 1, 1000),
		team("tie-c", 6, 2, 1100),
	}

	groups := GroupByWinPercentage(records, DefaultWinPctPrecision)

	require.Len(t, groups, 3)
	assert.Equal(t, []string{"top"}, idsOf(groups[0]))
	assert.Equal(t, []string{"tie-a", "tie-b", "tie-c"}, idsOf(groups[1]))
	assert.Equal(t, []string{"low"}, idsOf(groups[2]))
}

func TestGroupByWinPercentage_RoundsNearMisses(t *testing.T) {
	records := []TeamRecord{
		team("a", 2, 1, 0),
		team("b", 8, 4, 0),
	}

	groups := GroupByWinPercentage(records, 0)

	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 2)
}

func TestOrderByRecord_DoesNotMutateInput(t *testing.T) {
	records := []TeamRecord{
		team("c", 3, 10, 1000),
		team("b", 9, 4, 1000),
		team("a", 10, 3, 1000),
	}
	before := append([]TeamRecord(nil), records...)

	ordered := OrderByRecord(records, Season{}, 0)

	assert.Equal(t, []string{"a", "b", "c"}, idsOf(ordered))
	assert.Equal(t, before, records)
}
