package standings

// TeamRecord is one team's season line as supplied by the season data layer.
// Rank, ThirdLeaderBumped, DivisionLeader and LeaderSeed are outputs; the
// engine always writes them on copies.
type TeamRecord struct {
	TeamID            string  `json:"team_id"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	Ties              int     `json:"ties,omitempty"`
	PointsFor         float64 `json:"points_for"`
	PointsAgainst     float64 `json:"points_against"`
	Division          int     `json:"division,omitempty"`
	Rank              int     `json:"rank"`
	ThirdLeaderBumped bool    `json:"is_third_division_leader_bumped,omitempty"`
	DivisionLeader    bool    `json:"is_division_leader,omitempty"`
	// LeaderSeed is a division leader's 1-based place among all leaders.
	LeaderSeed int `json:"leader_seed,omitempty"`
}

// GamesPlayed returns wins + losses + ties.
func (r TeamRecord) GamesPlayed() int {
	return r.Wins + r.Losses + r.Ties
}

// MatchResult is a single completed head-to-head game.
type MatchResult struct {
	Week        int     `json:"week"`
	WinnerID    string  `json:"winner_id"`
	LoserID     string  `json:"loser_id"`
	WinnerScore float64 `json:"winner_score"`
	LoserScore  float64 `json:"loser_score"`
}

// Tied reports whether both sides scored the same.
func (m MatchResult) Tied() bool {
	return m.WinnerScore == m.LoserScore
}

// MatchLog maps a week number to the results played that week.
type MatchLog map[int][]MatchResult

// HeadToHeadRecord is the derived tally between two specific teams.
type HeadToHeadRecord struct {
	WinsA int `json:"wins_a"`
	WinsB int `json:"wins_b"`
	Games int `json:"games"`
}

// Decisive reports whether the pair met at least once and one side won more often.
func (h HeadToHeadRecord) Decisive() bool {
	return h.Games > 0 && h.WinsA != h.WinsB
}

// NameFunc resolves a team id to a display name.
type NameFunc func(teamID string) string

// LayerContext names the comparison pool a tiebreaker layer explains.
type LayerContext string

const (
	LayerOverall         LayerContext = "overall"
	LayerDivision        LayerContext = "division"
	LayerDivisionLeaders LayerContext = "division_leaders"
	LayerWildCard        LayerContext = "wild_card"
)

// OpponentRecord is one line of a tiebreaker layer: the explained team's record
// against a single tied opponent.
type OpponentRecord struct {
	TeamID string `json:"team_id"`
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Games  int    `json:"games"`
	Record string `json:"record"`
}

// TiebreakerLayer describes how a team was separated from the teams it was tied
// with inside one comparison pool.
type TiebreakerLayer struct {
	Context            LayerContext     `json:"context"`
	Label              string           `json:"label"`
	Opponents          []OpponentRecord `json:"opponents"`
	AggregateWins      int              `json:"aggregate_wins"`
	AggregateGames     int              `json:"aggregate_games"`
	AggregateWinPct    float64          `json:"aggregate_win_pct"`
	DecidedByPointsFor bool             `json:"decided_by_points_for"`
	BumpedLeaderID     string           `json:"bumped_leader_id,omitempty"`
}

// TiebreakerInfo is the display-only explanation for one team's position.
type TiebreakerInfo struct {
	TeamID string            `json:"team_id"`
	Name   string            `json:"name"`
	Index  int               `json:"index"`
	Layers []TiebreakerLayer `json:"layers"`
}
