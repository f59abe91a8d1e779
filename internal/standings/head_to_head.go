package standings

// Season carries the match context every comparison needs.
type Season struct {
	Matches MatchLog
	// Live is true for the season currently being played. Finished seasons
	// already carry a commissioner-approved order, so head-to-head is not used.
	Live bool
	// WeekComplete reports whether every game of a week is final. Nil means
	// all weeks are complete.
	WeekComplete func(week int) bool
}

// Countable reports whether games from week may contribute to head-to-head.
// Weeks still in progress hold 0-0 placeholders and are skipped for a live season.
func (s Season) Countable(week int) bool {
	if !s.Live || s.WeekComplete == nil {
		return true
	}
	return s.WeekComplete(week)
}

// usesHeadToHead reports whether head-to-head can contribute anything at all.
func (s Season) usesHeadToHead() bool {
	return s.Live && s.Matches != nil
}

// HeadToHead tallies games between a and b over every countable week.
func (s Season) HeadToHead(a, b string) HeadToHeadRecord {
	var rec HeadToHeadRecord
	if !s.usesHeadToHead() || a == b {
		return rec
	}

	for week, results := range s.Matches {
		if !s.Countable(week) {
			continue
		}
		for _, m := range results {
			switch {
			case m.WinnerID == a && m.LoserID == b:
				rec.Games++
				if !m.Tied() {
					rec.WinsA++
				}
			case m.WinnerID == b && m.LoserID == a:
				rec.Games++
				if !m.Tied() {
					rec.WinsB++
				}
			}
		}
	}

	return rec
}

// aggregate is one team's combined head-to-head line against a pool of teams.
type aggregate struct {
	wins  int
	games int
}

func (a aggregate) winPct() float64 {
	if a.games == 0 {
		return 0
	}
	return float64(a.wins) / float64(a.games)
}

// aggregateHeadToHead sums each member's wins and games against every other member.
func aggregateHeadToHead(pool []TeamRecord, season Season) map[string]aggregate {
	out := make(map[string]aggregate, len(pool))
	for i := range pool {
		for j := i + 1; j < len(pool); j++ {
			h2h := season.HeadToHead(pool[i].TeamID, pool[j].TeamID)
			if h2h.Games == 0 {
				continue
			}
			ai, aj := out[pool[i].TeamID], out[pool[j].TeamID]
			ai.wins += h2h.WinsA
			ai.games += h2h.Games
			aj.wins += h2h.WinsB
			aj.games += h2h.Games
			out[pool[i].TeamID], out[pool[j].TeamID] = ai, aj
		}
	}
	return out
}
