package standings

import (
	"math"
	"sort"
)

// ResolveGroup orders teams that share a win percentage.
//
// Two teams are split by their head-to-head record when they met in a
// countable week and one side won more often, then by points for. Three or
// more teams are split by aggregate head-to-head win percentage inside the
// group, which stays transitive when A beat B, B beat C and C beat A; teams
// still level fall back to points for. Anything left equal keeps input order.
func ResolveGroup(group []TeamRecord, season Season) []TeamRecord {
	out := make([]TeamRecord, len(group))
	copy(out, group)

	switch len(out) {
	case 0, 1:
		return out
	case 2:
		return resolvePair(out, season)
	default:
		return resolveMultiWay(out, season)
	}
}

func resolvePair(pair []TeamRecord, season Season) []TeamRecord {
	h2h := season.HeadToHead(pair[0].TeamID, pair[1].TeamID)
	if h2h.Decisive() {
		if h2h.WinsB > h2h.WinsA {
			pair[0], pair[1] = pair[1], pair[0]
		}
		return pair
	}
	sortByPointsFor(pair)
	return pair
}

func resolveMultiWay(group []TeamRecord, season Season) []TeamRecord {
	agg := aggregateHeadToHead(group, season)

	if aggregatesEqual(group, agg) {
		sortByPointsFor(group)
		return group
	}

	sort.SliceStable(group, func(i, j int) bool {
		pi := agg[group[i].TeamID].winPct()
		pj := agg[group[j].TeamID].winPct()
		if !floatEqual(pi, pj) {
			return pi > pj
		}
		return pointsAbove(group[i], group[j])
	})
	return group
}

// aggregatesEqual reports whether every member has the same aggregate win
// percentage, including the case where nobody in the group has met.
func aggregatesEqual(group []TeamRecord, agg map[string]aggregate) bool {
	first := agg[group[0].TeamID].winPct()
	for _, r := range group[1:] {
		if !floatEqual(agg[r.TeamID].winPct(), first) {
			return false
		}
	}
	return true
}

func sortByPointsFor(records []TeamRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return pointsAbove(records[i], records[j])
	})
}

// pointsAbove reports whether a scored strictly more than b.
func pointsAbove(a, b TeamRecord) bool {
	return !pointsEqual(a.PointsFor, b.PointsFor) && a.PointsFor > b.PointsFor
}

// pointsEqual compares fantasy point totals to the hundredth of a point.
func pointsEqual(a, b float64) bool {
	return math.Round(a*100) == math.Round(b*100)
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
