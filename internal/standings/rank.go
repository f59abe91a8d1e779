package standings

// AssignRanks writes competition ranks onto copies of an already ordered list.
// A record shares its predecessor's rank only when the two are equal on win
// percentage, on head-to-head (live seasons), and on points for; otherwise it
// takes its 1-based position, so three-way ties produce 1, 1, 1, 4.
//
// Head-to-head is judged the way ResolveGroup judges it: directly for a pair
// sharing a win percentage, and by aggregate record inside the whole group
// when three or more teams share it.
func AssignRanks(ordered []TeamRecord, season Season, precision int) []TeamRecord {
	if precision <= 0 {
		precision = DefaultWinPctPrecision
	}

	out := make([]TeamRecord, len(ordered))
	copy(out, ordered)

	ties := newTieContext(out, season, precision)
	for i := range out {
		if i == 0 || ties.distinguishable(out[i-1], out[i]) {
			out[i].Rank = i + 1
			continue
		}
		out[i].Rank = out[i-1].Rank
	}
	return out
}

// tieContext holds, per win percentage group, what head-to-head needs to
// compare two of its members.
type tieContext struct {
	season    Season
	precision int
	groupSize map[string]int
	aggregate map[string]aggregate
}

func newTieContext(records []TeamRecord, season Season, precision int) tieContext {
	tc := tieContext{
		season:    season,
		precision: precision,
		groupSize: make(map[string]int, len(records)),
		aggregate: make(map[string]aggregate, len(records)),
	}
	for _, group := range GroupByWinPercentage(records, precision) {
		var agg map[string]aggregate
		if len(group) > 2 {
			agg = aggregateHeadToHead(group, season)
		}
		for _, r := range group {
			tc.groupSize[r.TeamID] = len(group)
			tc.aggregate[r.TeamID] = agg[r.TeamID]
		}
	}
	return tc
}

// distinguishable applies the tie resolution cascade to an adjacent pair.
func (tc tieContext) distinguishable(prev, cur TeamRecord) bool {
	if winPctKey(prev, tc.precision) != winPctKey(cur, tc.precision) {
		return true
	}
	if tc.season.usesHeadToHead() {
		if tc.groupSize[cur.TeamID] > 2 {
			if !floatEqual(tc.aggregate[prev.TeamID].winPct(), tc.aggregate[cur.TeamID].winPct()) {
				return true
			}
		} else if tc.season.HeadToHead(prev.TeamID, cur.TeamID).Decisive() {
			return true
		}
	}
	return !pointsEqual(prev.PointsFor, cur.PointsFor)
}
