package standings

func team(id string, wins, losses int, pointsFor float64) TeamRecord {
	return TeamRecord{TeamID: id, Wins: wins, Losses: losses, PointsFor: pointsFor}
}

func divTeam(id string, division, wins, losses int, pointsFor float64) TeamRecord {
	r := team(id, wins, losses, pointsFor)
	r.Division = division
	return r
}

func win(week int, winner, loser string) MatchResult {
	return MatchResult{Week: week, WinnerID: winner, LoserID: loser, WinnerScore: 120, LoserScore: 100}
}

func idsOf(records []TeamRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.TeamID
	}
	return out
}

func liveSeason(results ...MatchResult) Season {
	log := MatchLog{}
	for _, m := range results {
		log[m.Week] = append(log[m.Week], m)
	}
	return Season{Matches: log, Live: true}
}

// scenarioB is a 12-team, three-division league whose third division leader
// (l3, .700) would finish eighth without the bump rule.
func scenarioB(d3bWins, d3bLosses int) []TeamRecord {
	return []TeamRecord{
		divTeam("l1", 1, 16, 4, 1600),
		divTeam("d1b", 1, 15, 5, 1500),
		divTeam("d1c", 1, 15, 5, 1400),
		divTeam("d1d", 1, 15, 5, 1300),
		divTeam("l2", 2, 15, 5, 1550),
		{TeamID: "d2b", Division: 2, Wins: 14, Losses: 5, Ties: 1, PointsFor: 1450},
		{TeamID: "d2c", Division: 2, Wins: 14, Losses: 5, Ties: 1, PointsFor: 1350},
		divTeam("d2d", 2, 5, 15, 900),
		divTeam("l3", 3, 14, 6, 1250),
		divTeam("d3b", 3, d3bWins, d3bLosses, 1200),
		divTeam("d3c", 3, 8, 12, 1100),
		divTeam("d3d", 3, 6, 14, 1000),
	}
}
