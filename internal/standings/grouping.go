package standings

import (
	"math"
	"sort"
)

// WinPercentage returns (wins + ties/2) / games, or 0 for a team that has not played.
func WinPercentage(r TeamRecord) float64 {
	games := r.GamesPlayed()
	if games == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(games)
}

// winPctKey rounds a win percentage to precision decimal digits so that
// values like 2/3 computed along different paths compare equal.
func winPctKey(r TeamRecord, precision int) int64 {
	scale := math.Pow10(precision)
	return int64(math.Round(WinPercentage(r) * scale))
}

// GroupByWinPercentage partitions records into groups with identical rounded
// win percentage. Groups are returned best first; members keep their input order.
func GroupByWinPercentage(records []TeamRecord, precision int) [][]TeamRecord {
	if precision <= 0 {
		precision = DefaultWinPctPrecision
	}

	byKey := make(map[int64][]TeamRecord)
	var keys []int64
	for _, r := range records {
		k := winPctKey(r, precision)
		if _, exists := byKey[k]; !exists {
			keys = append(keys, k)
		}
		byKey[k] = append(byKey[k], r)
	}

	sort.Slice(keys, func(i, j int) bool {
		return keys[i] > keys[j]
	})

	groups := make([][]TeamRecord, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, byKey[k])
	}
	return groups
}

// OrderByRecord orders a full list: win percentage groups best first, each
// group resolved with ResolveGroup. The input slice is not modified.
func OrderByRecord(records []TeamRecord, season Season, precision int) []TeamRecord {
	ordered := make([]TeamRecord, 0, len(records))
	for _, group := range GroupByWinPercentage(records, precision) {
		ordered = append(ordered, ResolveGroup(group, season)...)
	}
	return ordered
}
