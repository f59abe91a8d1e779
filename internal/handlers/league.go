package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sam-maryland/sleeper-standings/internal/config"
	"github.com/sam-maryland/sleeper-standings/internal/sleeper"
	"github.com/sam-maryland/sleeper-standings/internal/standings"
	"github.com/sirupsen/logrus"
)

// MatchupsResult is the get_matchups payload
type MatchupsResult struct {
	Week     int                     `json:"week"`
	Matchups []sleeper.Matchup       `json:"matchups"`
	Results  []standings.MatchResult `json:"results"`
}

// StandingEntry represents a team's standing in the league
type StandingEntry struct {
	Seed              int     `json:"seed"`
	Rank              int     `json:"rank"`
	RosterID          int     `json:"roster_id"`
	OwnerID           string  `json:"owner_id,omitempty"`
	TeamName          string  `json:"team_name"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	Ties              int     `json:"ties"`
	PointsFor         float64 `json:"points_for"`
	PointsAgainst     float64 `json:"points_against"`
	Division          int     `json:"division,omitempty"`
	DivisionName      string  `json:"division_name,omitempty"`
	DivisionLeader    bool    `json:"is_division_leader,omitempty"`
	ThirdLeaderBumped bool    `json:"is_third_division_leader_bumped,omitempty"`
}

// StandingsResult is the get_league_standings payload
type StandingsResult struct {
	LeagueID     string          `json:"league_id"`
	Season       string          `json:"season"`
	Live         bool            `json:"live"`
	Divisional   bool            `json:"divisional"`
	BumpSeed     int             `json:"bump_seed,omitempty"`
	Standings    []StandingEntry `json:"standings"`
	MissingWeeks []int           `json:"missing_weeks,omitempty"`
}

// LeagueHandler handles league-related MCP tools
type LeagueHandler struct {
	client sleeper.Client
	logger *logrus.Logger
	config *config.LeagueConfig
}

// NewLeagueHandler creates a new league handler. A nil leagueConfig falls back
// to the default seeding rules.
func NewLeagueHandler(client sleeper.Client, logger *logrus.Logger, leagueConfig *config.LeagueConfig) *LeagueHandler {
	if leagueConfig == nil {
		leagueConfig = config.DefaultLeagueConfig()
	}

	return &LeagueHandler{
		client: client,
		logger: logger,
		config: leagueConfig,
	}
}

// Tools returns every tool this handler serves
func (h *LeagueHandler) Tools() []mcp.Tool {
	return []mcp.Tool{
		h.GetLeagueInfoTool(),
		h.GetLeagueStandingsTool(),
		h.ExplainTiebreakerTool(),
		h.GetLeagueUsersTool(),
		h.GetMatchupsTool(),
		h.DiscoverLeagueHistoryTool(),
	}
}

// GetLeagueInfoTool returns the MCP tool definition for get_league_info
func (h *LeagueHandler) GetLeagueInfoTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_league_info",
		Description: "Get league information including settings, divisions, playoff start week and status",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": map[string]interface{}{
					"type":        "string",
					"description": "The Sleeper league ID",
					"required":    true,
				},
			},
		},
	}
}

// HandleGetLeagueInfo handles the get_league_info tool call
func (h *LeagueHandler) HandleGetLeagueInfo(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_league_info")

	leagueID, err := requiredString(args, "league_id")
	if err != nil {
		return nil, err
	}

	league, err := h.client.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get league info")
		return errorResult("Failed to get league information: %s", err.Error()), nil
	}

	summary := fmt.Sprintf("League '%s' (%s) - %s season, %d teams, %d divisions, %s status",
		league.Name, league.LeagueID, league.Season, league.TotalRosters, league.Settings.Divisions, league.Status)

	return successResult(h.logger, leagueID, 1, league, summary), nil
}

// GetLeagueStandingsTool returns the MCP tool definition for get_league_standings
func (h *LeagueHandler) GetLeagueStandingsTool() mcp.Tool {
	return mcp.Tool{
		Name: "get_league_standings",
		Description: "Get league standings ordered by win percentage with head-to-head and points-for tiebreakers. " +
			"Divisional leagues seed the top two division leaders first and never drop the third leader below the bump seed.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": map[string]interface{}{
					"type":        "string",
					"description": "The Sleeper league ID",
					"required":    true,
				},
			},
		},
	}
}

// HandleGetLeagueStandings handles the get_league_standings tool call
func (h *LeagueHandler) HandleGetLeagueStandings(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_league_standings")

	leagueID, err := requiredString(args, "league_id")
	if err != nil {
		return nil, err
	}

	data, err := h.loadSeason(ctx, leagueID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load season data")
		return errorResult("Failed to get league standings: %s", err.Error()), nil
	}

	ordered := standings.Rank(data.Records, data.Season, data.Options)
	result := buildStandingsResult(data, ordered)

	h.logger.WithFields(logrus.Fields{
		"league_id":  leagueID,
		"teams":      len(ordered),
		"live":       result.Live,
		"divisional": result.Divisional,
	}).Info("Calculated league standings")

	summary := fmt.Sprintf("Standings for %d teams in %s (%s season)", len(ordered), data.League.Name, data.League.Season)
	if len(ordered) > 0 {
		summary += fmt.Sprintf(", 1st: %s", result.Standings[0].TeamName)
	}
	if len(data.MissingWeeks) > 0 {
		summary += fmt.Sprintf(", head-to-head missing weeks %v", data.MissingWeeks)
	}

	return successResult(h.logger, leagueID, data.APICalls, result, summary), nil
}

func buildStandingsResult(data *SeasonData, ordered []standings.TeamRecord) StandingsResult {
	owners := make(map[string]sleeper.Roster, len(data.Rosters))
	for _, r := range data.Rosters {
		owners[teamID(r.RosterID)] = r
	}

	divisional := standings.HasDivisions(ordered)
	result := StandingsResult{
		LeagueID:     data.League.LeagueID,
		Season:       data.League.Season,
		Live:         data.Season.Live,
		Divisional:   divisional,
		Standings:    make([]StandingEntry, 0, len(ordered)),
		MissingWeeks: data.MissingWeeks,
	}
	if divisional {
		result.BumpSeed = data.Options.BumpSeed
		if result.BumpSeed <= 0 {
			result.BumpSeed = standings.DefaultBumpSeed
		}
	}

	for i, r := range ordered {
		roster := owners[r.TeamID]
		entry := StandingEntry{
			Seed:              i + 1,
			Rank:              r.Rank,
			RosterID:          roster.RosterID,
			OwnerID:           roster.OwnerID,
			TeamName:          data.Name(r.TeamID),
			Wins:              r.Wins,
			Losses:            r.Losses,
			Ties:              r.Ties,
			PointsFor:         r.PointsFor,
			PointsAgainst:     r.PointsAgainst,
			Division:          r.Division,
			DivisionLeader:    r.DivisionLeader,
			ThirdLeaderBumped: r.ThirdLeaderBumped,
		}
		if r.Division > 0 {
			entry.DivisionName = data.Options.DivisionNames[r.Division]
		}
		result.Standings = append(result.Standings, entry)
	}

	return result
}

// GetLeagueUsersTool returns the MCP tool definition for get_league_users
func (h *LeagueHandler) GetLeagueUsersTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_league_users",
		Description: "Get all league members and their team information",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": map[string]interface{}{
					"type":        "string",
					"description": "The Sleeper league ID",
					"required":    true,
				},
			},
		},
	}
}

// HandleGetLeagueUsers handles the get_league_users tool call
func (h *LeagueHandler) HandleGetLeagueUsers(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_league_users")

	leagueID, err := requiredString(args, "league_id")
	if err != nil {
		return nil, err
	}

	users, err := h.client.GetLeagueUsers(ctx, leagueID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get league users")
		return errorResult("Failed to get league users: %s", err.Error()), nil
	}

	return successResult(h.logger, leagueID, 1, users, fmt.Sprintf("Found %d league members", len(users))), nil
}

// GetMatchupsTool returns the MCP tool definition for get_matchups
func (h *LeagueHandler) GetMatchupsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_matchups",
		Description: "Get matchups for a specific week with scores and the paired winner and loser of each game",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": map[string]interface{}{
					"type":        "string",
					"description": "The Sleeper league ID",
					"required":    true,
				},
				"week": map[string]interface{}{
					"type":        "integer",
					"description": "Week number (1-18)",
					"required":    true,
				},
			},
		},
	}
}

// HandleGetMatchups handles the get_matchups tool call
func (h *LeagueHandler) HandleGetMatchups(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_matchups")

	leagueID, err := requiredString(args, "league_id")
	if err != nil {
		return nil, err
	}

	if _, ok := args["week"]; !ok {
		return nil, fmt.Errorf("week is required and must be a number")
	}
	week, err := optionalInt(args, "week", 0)
	if err != nil {
		return nil, err
	}
	if week < 1 || week > 18 {
		return nil, fmt.Errorf("week must be between 1 and 18")
	}

	matchups, err := h.client.GetMatchups(ctx, leagueID, week)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get matchups")
		return errorResult("Failed to get matchups: %s", err.Error()), nil
	}

	result := MatchupsResult{
		Week:     week,
		Matchups: matchups,
		Results:  pairMatchups(week, matchups),
	}

	summary := fmt.Sprintf("Found %d games for week %d", len(result.Results), week)
	return successResult(h.logger, leagueID, 1, result, summary), nil
}
