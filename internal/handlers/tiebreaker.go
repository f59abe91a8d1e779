package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sam-maryland/sleeper-standings/internal/standings"
	"github.com/sirupsen/logrus"
)

// TiebreakerResult is the explain_tiebreaker payload
type TiebreakerResult struct {
	TeamID      string                    `json:"team_id"`
	TeamName    string                    `json:"team_name"`
	Seed        int                       `json:"seed"`
	Rank        int                       `json:"rank"`
	Live        bool                      `json:"live"`
	Explanation *standings.TiebreakerInfo `json:"explanation,omitempty"`
	Reason      string                    `json:"reason,omitempty"`
}

// ExplainTiebreakerTool returns the MCP tool definition for explain_tiebreaker
func (h *LeagueHandler) ExplainTiebreakerTool() mcp.Tool {
	return mcp.Tool{
		Name:        "explain_tiebreaker",
		Description: "Explain how head-to-head tiebreakers placed a team among the teams sharing its win percentage",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": map[string]interface{}{
					"type":        "string",
					"description": "The Sleeper league ID",
					"required":    true,
				},
				"team": map[string]interface{}{
					"type":        "string",
					"description": "Team name (partial names are matched) or roster ID",
					"required":    true,
				},
			},
		},
	}
}

// HandleExplainTiebreaker handles the explain_tiebreaker tool call
func (h *LeagueHandler) HandleExplainTiebreaker(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling explain_tiebreaker")

	leagueID, err := requiredString(args, "league_id")
	if err != nil {
		return nil, err
	}
	query, err := requiredString(args, "team")
	if err != nil {
		return nil, err
	}

	data, err := h.loadSeason(ctx, leagueID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load season data")
		return errorResult("Failed to explain tiebreaker: %s", err.Error()), nil
	}

	ordered := standings.Rank(data.Records, data.Season, data.Options)

	id, ok := resolveTeam(query, ordered, data.Name)
	if !ok {
		return errorResult("No team in league %s matches %q", leagueID, query), nil
	}

	index := -1
	for i, r := range ordered {
		if r.TeamID == id {
			index = i
			break
		}
	}

	result := TiebreakerResult{
		TeamID:   id,
		TeamName: data.Name(id),
		Seed:     index + 1,
		Rank:     ordered[index].Rank,
		Live:     data.Season.Live,
	}
	result.Explanation = standings.Explain(ordered, index, data.Season, data.Options, data.Name)

	var summary string
	if result.Explanation == nil {
		result.Reason = noExplanationReason(data, ordered, index)
		summary = fmt.Sprintf("%s is seed %d: %s", result.TeamName, result.Seed, result.Reason)
	} else {
		summary = fmt.Sprintf("%s is seed %d; %d tiebreaker layer(s) explain the placement",
			result.TeamName, result.Seed, len(result.Explanation.Layers))
	}

	h.logger.WithFields(logrus.Fields{
		"league_id": leagueID,
		"team_id":   id,
		"explained": result.Explanation != nil,
	}).Info("Explained tiebreaker")

	return successResult(h.logger, leagueID, data.APICalls, result, summary), nil
}

// resolveTeam finds the team a user meant. An exact roster id or exact name
// wins; otherwise the closest fuzzy match on team names is used.
func resolveTeam(query string, records []standings.TeamRecord, name standings.NameFunc) (string, bool) {
	query = strings.TrimSpace(query)
	names := make([]string, len(records))
	for i, r := range records {
		if r.TeamID == query {
			return r.TeamID, true
		}
		names[i] = name(r.TeamID)
	}

	for i, n := range names {
		if strings.EqualFold(n, query) {
			return records[i].TeamID, true
		}
	}

	ranks := fuzzy.RankFindFold(query, names)
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return records[ranks[0].OriginalIndex].TeamID, true
}

// noExplanationReason says why a placement involved no head-to-head comparison
func noExplanationReason(data *SeasonData, ordered []standings.TeamRecord, index int) string {
	if !data.Season.Live {
		return "finished seasons keep the final order without head-to-head tiebreakers"
	}
	target := ordered[index].TeamID
	for _, group := range standings.GroupByWinPercentage(ordered, data.Options.WinPctPrecision) {
		for _, r := range group {
			if r.TeamID == target && len(group) > 1 {
				return "no head-to-head comparison applied within this team's seeding pool"
			}
		}
	}
	return "no other team shares this win percentage"
}
