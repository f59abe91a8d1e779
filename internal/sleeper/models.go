package sleeper

import (
	"strconv"
	"time"
)

// League represents a Sleeper fantasy league
type League struct {
	LeagueID         string                 `json:"league_id"`
	PreviousLeagueID string                 `json:"previous_league_id"`
	Name             string                 `json:"name"`
	Status           string                 `json:"status"`
	Sport            string                 `json:"sport"`
	Season           string                 `json:"season"`
	SeasonType       string                 `json:"season_type"`
	Settings         LeagueSettings         `json:"settings"`
	Metadata         map[string]interface{} `json:"metadata"`
	TotalRosters     int                    `json:"total_rosters"`
	Avatar           string                 `json:"avatar"`
}

// LeagueSettings contains league configuration
type LeagueSettings struct {
	PlayoffTeams     int `json:"playoff_teams"`
	PlayoffWeekStart int `json:"playoff_week_start"`
	PlayoffSeedType  int `json:"playoff_seed_type"`
	NumTeams         int `json:"num_teams"`
	Divisions        int `json:"divisions"`
	StartWeek        int `json:"start_week"`
	LastScoredLeg    int `json:"last_scored_leg"`
	Leg              int `json:"leg"`
}

// DivisionNames returns the custom division names stored in league metadata
// under division_1, division_2, ...
func (l *League) DivisionNames() map[int]string {
	names := make(map[int]string)
	for d := 1; d <= l.Settings.Divisions; d++ {
		if name := metaString(l.Metadata, "division_"+strconv.Itoa(d)); name != "" {
			names[d] = name
		}
	}
	return names
}

func metaString(meta map[string]interface{}, key string) string {
	if s, ok := meta[key].(string); ok {
		return s
	}
	return ""
}

// NFLState is the sport-wide calendar position reported by /state/nfl
type NFLState struct {
	Week         int    `json:"week"`
	Leg          int    `json:"leg"`
	Season       string `json:"season"`
	SeasonType   string `json:"season_type"`
	LeagueSeason string `json:"league_season"`
	DisplayWeek  int    `json:"display_week"`
}

// User represents a Sleeper user
type User struct {
	UserID      string                 `json:"user_id"`
	Username    string                 `json:"username"`
	DisplayName string                 `json:"display_name"`
	Avatar      string                 `json:"avatar"`
	Metadata    map[string]interface{} `json:"metadata"`
}

// TeamName returns the user's custom team name, falling back to the display name.
func (u User) TeamName() string {
	if name := metaString(u.Metadata, "team_name"); name != "" {
		return name
	}
	return u.DisplayName
}

// Roster represents a team's roster
type Roster struct {
	RosterID int            `json:"roster_id"`
	OwnerID  string         `json:"owner_id"`
	Settings RosterSettings `json:"settings"`
}

// RosterSettings contains team performance data
type RosterSettings struct {
	Wins               int `json:"wins"`
	Losses             int `json:"losses"`
	Ties               int `json:"ties"`
	FPTS               int `json:"fpts"`
	FPTSDecimal        int `json:"fpts_decimal"`
	FPTSAgainst        int `json:"fpts_against"`
	FPTSAgainstDecimal int `json:"fpts_against_decimal"`
	Division           int `json:"division,omitempty"`
}

// PointsFor combines the integer and hundredths parts Sleeper reports separately.
func (s RosterSettings) PointsFor() float64 {
	return float64(s.FPTS) + float64(s.FPTSDecimal)/100
}

// PointsAgainst combines the integer and hundredths parts Sleeper reports separately.
func (s RosterSettings) PointsAgainst() float64 {
	return float64(s.FPTSAgainst) + float64(s.FPTSAgainstDecimal)/100
}

// Matchup represents one roster's side of a weekly matchup
type Matchup struct {
	RosterID  int     `json:"roster_id"`
	MatchupID int     `json:"matchup_id"`
	Points    float64 `json:"points"`
}

// APIResponse represents the standard response format for our tools
type APIResponse struct {
	Success  bool        `json:"success"`
	Data     interface{} `json:"data,omitempty"`
	Summary  string      `json:"summary"`
	Error    string      `json:"error,omitempty"`
	Metadata Metadata    `json:"metadata"`
}

// Metadata contains response metadata
type Metadata struct {
	Timestamp    time.Time `json:"timestamp"`
	Source       string    `json:"source"`
	APICallsUsed int       `json:"api_calls_used"`
	LeagueID     string    `json:"league_id,omitempty"`
}

// SleeperError represents an error from the Sleeper API
type SleeperError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"`
	LeagueID   string `json:"league_id,omitempty"`
}

func (e *SleeperError) Error() string {
	return e.Message
}
