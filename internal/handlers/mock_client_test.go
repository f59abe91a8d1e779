package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sam-maryland/sleeper-standings/internal/sleeper"
)

// MockSleeperClient is a mock implementation of the sleeper.Client interface for testing
type MockSleeperClient struct {
	GetNFLStateFunc      func(ctx context.Context) (*sleeper.NFLState, error)
	GetLeagueFunc        func(ctx context.Context, leagueID string) (*sleeper.League, error)
	GetLeagueUsersFunc   func(ctx context.Context, leagueID string) ([]sleeper.User, error)
	GetLeagueRostersFunc func(ctx context.Context, leagueID string) ([]sleeper.Roster, error)
	GetMatchupsFunc      func(ctx context.Context, leagueID string, week int) ([]sleeper.Matchup, error)
}

func (m *MockSleeperClient) GetNFLState(ctx context.Context) (*sleeper.NFLState, error) {
	if m.GetNFLStateFunc != nil {
		return m.GetNFLStateFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *MockSleeperClient) GetLeague(ctx context.Context, leagueID string) (*sleeper.League, error) {
	if m.GetLeagueFunc != nil {
		return m.GetLeagueFunc(ctx, leagueID)
	}
	return nil, errors.New("not implemented")
}

func (m *MockSleeperClient) GetLeagueUsers(ctx context.Context, leagueID string) ([]sleeper.User, error) {
	if m.GetLeagueUsersFunc != nil {
		return m.GetLeagueUsersFunc(ctx, leagueID)
	}
	return nil, errors.New("not implemented")
}

func (m *MockSleeperClient) GetLeagueRosters(ctx context.Context, leagueID string) ([]sleeper.Roster, error) {
	if m.GetLeagueRostersFunc != nil {
		return m.GetLeagueRostersFunc(ctx, leagueID)
	}
	return nil, errors.New("not implemented")
}

func (m *MockSleeperClient) GetMatchups(ctx context.Context, leagueID string, week int) ([]sleeper.Matchup, error) {
	if m.GetMatchupsFunc != nil {
		return m.GetMatchupsFunc(ctx, leagueID, week)
	}
	return nil, errors.New("not implemented")
}

// fourTeamLeague is a live, division-less league three weeks into the season:
//
//	week 1: 1 beats 2, 3 beats 4
//	week 2: 2 beats 3, 4 beats 1
//	week 3: 1 beats 3, 2 beats 4
//
// Teams 1 and 2 finish 2-1 with 2 scoring more; teams 3 and 4 finish 1-2 with 4 scoring more.
type fourTeamLeague struct {
	league  sleeper.League
	state   sleeper.NFLState
	users   []sleeper.User
	rosters []sleeper.Roster
	weeks   map[int][]sleeper.Matchup
}

func newFourTeamLeague() *fourTeamLeague {
	return &fourTeamLeague{
		league: sleeper.League{
			LeagueID:     "L1",
			Name:         "Test League",
			Status:       "in_season",
			Season:       "2024",
			TotalRosters: 4,
			Settings:     sleeper.LeagueSettings{PlayoffWeekStart: 15},
		},
		state: sleeper.NFLState{Week: 4, Season: "2024", SeasonType: "regular", LeagueSeason: "2024"},
		users: []sleeper.User{
			{UserID: "u1", DisplayName: "alpha_owner", Metadata: map[string]interface{}{"team_name": "Alpha"}},
			{UserID: "u2", DisplayName: "Bravo"},
			{UserID: "u3", DisplayName: "Charlie"},
			{UserID: "u4", DisplayName: "Delta"},
		},
		rosters: []sleeper.Roster{
			{RosterID: 1, OwnerID: "u1", Settings: sleeper.RosterSettings{Wins: 2, Losses: 1, FPTS: 350, FPTSDecimal: 10}},
			{RosterID: 2, OwnerID: "u2", Settings: sleeper.RosterSettings{Wins: 2, Losses: 1, FPTS: 360}},
			{RosterID: 3, OwnerID: "u3", Settings: sleeper.RosterSettings{Wins: 1, Losses: 2, FPTS: 300}},
			{RosterID: 4, OwnerID: "u4", Settings: sleeper.RosterSettings{Wins: 1, Losses: 2, FPTS: 320}},
		},
		weeks: map[int][]sleeper.Matchup{
			1: {
				{RosterID: 1, MatchupID: 1, Points: 120},
				{RosterID: 2, MatchupID: 1, Points: 110},
				{RosterID: 3, MatchupID: 2, Points: 100},
				{RosterID: 4, MatchupID: 2, Points: 90},
			},
			2: {
				{RosterID: 2, MatchupID: 1, Points: 130},
				{RosterID: 3, MatchupID: 1, Points: 95},
				{RosterID: 4, MatchupID: 2, Points: 115},
				{RosterID: 1, MatchupID: 2, Points: 105.1},
			},
			3: {
				{RosterID: 1, MatchupID: 1, Points: 125},
				{RosterID: 3, MatchupID: 1, Points: 105},
				{RosterID: 2, MatchupID: 2, Points: 120},
				{RosterID: 4, MatchupID: 2, Points: 115},
			},
		},
	}
}

// client serves the fixture and fails the test if a week past the last
// complete one is requested.
func (f *fourTeamLeague) client(t *testing.T) *MockSleeperClient {
	t.Helper()
	return &MockSleeperClient{
		GetNFLStateFunc: func(ctx context.Context) (*sleeper.NFLState, error) {
			state := f.state
			return &state, nil
		},
		GetLeagueFunc: func(ctx context.Context, leagueID string) (*sleeper.League, error) {
			league := f.league
			return &league, nil
		},
		GetLeagueUsersFunc: func(ctx context.Context, leagueID string) ([]sleeper.User, error) {
			return f.users, nil
		},
		GetLeagueRostersFunc: func(ctx context.Context, leagueID string) ([]sleeper.Roster, error) {
			return f.rosters, nil
		},
		GetMatchupsFunc: func(ctx context.Context, leagueID string, week int) ([]sleeper.Matchup, error) {
			if week >= f.state.Week {
				t.Errorf("Unexpected matchup request for incomplete week %d", week)
			}
			return f.weeks[week], nil
		},
	}
}

// decodeResult unmarshals a successful tool result's data payload into out
func decodeResult(t *testing.T, result *mcp.CallToolResult, out interface{}) {
	t.Helper()
	if result == nil {
		t.Fatal("Expected result but got nil")
	}
	if result.IsError {
		t.Fatalf("Expected successful result but got error: %v", resultText(result))
	}

	envelope := struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal([]byte(resultText(result)), &envelope); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !envelope.Success {
		t.Fatal("Expected success flag in response")
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("Failed to decode data: %v", err)
	}
}

func resultText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if text, ok := result.Content[0].(*mcp.TextContent); ok {
		return text.Text
	}
	return ""
}
