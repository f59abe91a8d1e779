package standings

import "fmt"

// Explain reconstructs why the team at index sits where it does relative to
// the teams it shares a win percentage with. It returns nil when there is
// nothing to explain: a finished season, no match log, an index out of range,
// or a win percentage no other team shares. It never changes the ranking.
//
// For divisional leagues ordered must come from Rank: leadership is read from
// the DivisionLeader and LeaderSeed fields Rank wrote, so the explanation
// describes the seeding that was actually applied.
func Explain(ordered []TeamRecord, index int, season Season, opts Options, names NameFunc) *TiebreakerInfo {
	if !season.usesHeadToHead() || index < 0 || index >= len(ordered) {
		return nil
	}
	opts = opts.withDefaults()

	target := ordered[index]
	key := winPctKey(target, opts.WinPctPrecision)
	tied := filterRecords(ordered, func(r TeamRecord) bool {
		return winPctKey(r, opts.WinPctPrecision) == key
	})
	if len(tied) < 2 {
		return nil
	}

	info := &TiebreakerInfo{
		TeamID: target.TeamID,
		Name:   nameOf(names, target.TeamID),
		Index:  index,
	}

	if !HasDivisions(ordered) {
		info.Layers = append(info.Layers, buildLayer(LayerOverall, "Standings", target, tied, season, names))
		return info
	}

	topLeader := func(r TeamRecord) bool {
		return r.DivisionLeader && r.LeaderSeed <= opts.LeaderSeeds
	}

	// A bumped leader's seed came from its division race, not the wild-card pool.
	if target.ThirdLeaderBumped {
		pool := filterRecords(tied, func(r TeamRecord) bool {
			return r.Division == target.Division
		})
		if len(pool) < 2 {
			return nil
		}
		layer := buildLayer(LayerDivision, opts.divisionLabel(target.Division), target, pool, season, names)
		layer.BumpedLeaderID = target.TeamID
		info.Layers = append(info.Layers, layer)
		return info
	}

	if target.DivisionLeader {
		leaders := filterRecords(tied, func(r TeamRecord) bool {
			return r.DivisionLeader
		})
		if len(leaders) > 1 {
			info.Layers = append(info.Layers, buildLayer(LayerDivisionLeaders, "Division leaders", target, leaders, season, names))
		}
	}

	if !topLeader(target) {
		pool := filterRecords(tied, func(r TeamRecord) bool {
			return !topLeader(r)
		})
		if len(pool) > 1 {
			layer := buildLayer(LayerWildCard, "Wild card", target, pool, season, names)
			for _, r := range pool {
				if r.ThirdLeaderBumped {
					layer.BumpedLeaderID = r.TeamID
				}
			}
			info.Layers = append(info.Layers, layer)
		}
	}

	if len(info.Layers) == 0 {
		return nil
	}
	return info
}

// buildLayer describes target's head-to-head standing inside pool.
func buildLayer(ctx LayerContext, label string, target TeamRecord, pool []TeamRecord, season Season, names NameFunc) TiebreakerLayer {
	layer := TiebreakerLayer{
		Context:   ctx,
		Label:     label,
		Opponents: make([]OpponentRecord, 0, len(pool)),
	}

	for _, r := range pool {
		if r.TeamID == target.TeamID {
			continue
		}
		h2h := season.HeadToHead(target.TeamID, r.TeamID)
		layer.Opponents = append(layer.Opponents, OpponentRecord{
			TeamID: r.TeamID,
			Name:   nameOf(names, r.TeamID),
			Wins:   h2h.WinsA,
			Losses: h2h.WinsB,
			Games:  h2h.Games,
			Record: recordString(h2h),
		})
	}

	agg := aggregateHeadToHead(pool, season)
	mine := agg[target.TeamID]
	layer.AggregateWins = mine.wins
	layer.AggregateGames = mine.games
	layer.AggregateWinPct = mine.winPct()
	layer.DecidedByPointsFor = decidedByPoints(target, pool, agg, season)

	return layer
}

// decidedByPoints reports whether head-to-head left target level with at
// least one other pool member whose points for differ.
func decidedByPoints(target TeamRecord, pool []TeamRecord, agg map[string]aggregate, season Season) bool {
	var level []TeamRecord
	switch {
	case len(pool) < 2:
		return false
	case len(pool) == 2:
		if season.HeadToHead(pool[0].TeamID, pool[1].TeamID).Decisive() {
			return false
		}
		level = pool
	case aggregatesEqual(pool, agg):
		level = pool
	default:
		mine := agg[target.TeamID].winPct()
		level = filterRecords(pool, func(r TeamRecord) bool {
			return floatEqual(agg[r.TeamID].winPct(), mine)
		})
	}

	for _, r := range level {
		if r.TeamID != target.TeamID && !pointsEqual(r.PointsFor, target.PointsFor) {
			return true
		}
	}
	return false
}

func recordString(h HeadToHeadRecord) string {
	if ties := h.Games - h.WinsA - h.WinsB; ties > 0 {
		return fmt.Sprintf("%d-%d-%d", h.WinsA, h.WinsB, ties)
	}
	return fmt.Sprintf("%d-%d", h.WinsA, h.WinsB)
}

func nameOf(names NameFunc, teamID string) string {
	if names == nil {
		return teamID
	}
	if name := names(teamID); name != "" {
		return name
	}
	return teamID
}

func filterRecords(records []TeamRecord, keep func(TeamRecord) bool) []TeamRecord {
	var out []TeamRecord
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
