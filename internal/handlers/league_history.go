package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sam-maryland/sleeper-standings/internal/sleeper"
	"github.com/sirupsen/logrus"
)

// defaultHistorySeasons is how far back discover_league_history walks by default
const defaultHistorySeasons = 10

// SeasonSummary describes one season in a league's history
type SeasonSummary struct {
	Season           string `json:"season"`
	LeagueID         string `json:"league_id"`
	PreviousLeagueID string `json:"previous_league_id,omitempty"`
	Name             string `json:"name"`
	Status           string `json:"status"`
	TotalRosters     int    `json:"total_rosters"`
	Divisions        int    `json:"divisions"`
	Live             bool   `json:"live"`
}

// LeagueHistory is the discover_league_history payload, newest season first
type LeagueHistory struct {
	Name    string          `json:"name"`
	Seasons []SeasonSummary `json:"seasons"`
}

// DiscoverLeagueHistoryTool returns the MCP tool definition for discover_league_history
func (h *LeagueHandler) DiscoverLeagueHistoryTool() mcp.Tool {
	return mcp.Tool{
		Name:        "discover_league_history",
		Description: "Discover previous seasons of a league by following its renewal chain. Only the live season uses head-to-head tiebreakers.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": map[string]interface{}{
					"type":        "string",
					"description": "Current league ID to discover history for",
					"required":    true,
				},
				"seasons": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of seasons to return (default: 10)",
					"required":    false,
				},
			},
		},
	}
}

// HandleDiscoverLeagueHistory handles the discover_league_history tool call
func (h *LeagueHandler) HandleDiscoverLeagueHistory(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling discover_league_history")

	leagueID, err := requiredString(args, "league_id")
	if err != nil {
		return nil, err
	}

	seasons, err := optionalInt(args, "seasons", defaultHistorySeasons)
	if err != nil {
		return nil, err
	}
	if seasons < 1 {
		return nil, fmt.Errorf("seasons must be at least 1")
	}

	history, apiCalls, err := h.discoverLeagueHistory(ctx, leagueID, seasons)
	if err != nil {
		h.logger.WithError(err).Error("Failed to discover league history")
		return errorResult("Failed to discover league history: %s", err.Error()), nil
	}

	summary := fmt.Sprintf("Discovered %d seasons of league history", len(history.Seasons))
	return successResult(h.logger, leagueID, apiCalls, history, summary), nil
}

// discoverLeagueHistory follows previous_league_id links from the current
// league. A failure to load an older season ends the walk; only a failure on
// the starting league is an error.
func (h *LeagueHandler) discoverLeagueHistory(ctx context.Context, currentLeagueID string, maxSeasons int) (*LeagueHistory, int, error) {
	state, err := h.client.GetNFLState(ctx)
	if err != nil {
		return nil, 1, fmt.Errorf("failed to get nfl state: %w", err)
	}
	apiCalls := 1

	history := &LeagueHistory{}
	visited := make(map[string]bool)

	for id := currentLeagueID; isLeagueID(id) && len(history.Seasons) < maxSeasons; {
		if visited[id] {
			h.logger.WithField("league_id", id).Warn("League history loops back on itself, stopping")
			break
		}
		visited[id] = true

		league, err := h.client.GetLeague(ctx, id)
		apiCalls++
		if err != nil {
			if id == currentLeagueID {
				return nil, apiCalls, fmt.Errorf("failed to get current league: %w", err)
			}
			h.logger.WithError(err).WithFields(logrus.Fields{
				"league_id": id,
			}).Warn("Failed to get previous season, stopping")
			break
		}

		if history.Name == "" {
			history.Name = league.Name
		}
		history.Seasons = append(history.Seasons, summarizeSeason(league, state))

		h.logger.WithFields(logrus.Fields{
			"league_id": id,
			"season":    league.Season,
		}).Debug("Discovered league season")

		id = league.PreviousLeagueID
	}

	return history, apiCalls, nil
}

func summarizeSeason(league *sleeper.League, state *sleeper.NFLState) SeasonSummary {
	return SeasonSummary{
		Season:           league.Season,
		LeagueID:         league.LeagueID,
		PreviousLeagueID: league.PreviousLeagueID,
		Name:             league.Name,
		Status:           league.Status,
		TotalRosters:     league.TotalRosters,
		Divisions:        league.Settings.Divisions,
		Live:             isLiveSeason(league, state),
	}
}

// isLeagueID reports whether id refers to a league. Sleeper uses "0" for a
// league with no previous season.
func isLeagueID(id string) bool {
	return id != "" && id != "0"
}
