package handlers

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/sam-maryland/sleeper-standings/internal/sleeper"
	"github.com/sam-maryland/sleeper-standings/internal/standings"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestPairMatchups(t *testing.T) {
	matchups := []sleeper.Matchup{
		{RosterID: 5, MatchupID: 2, Points: 88},
		{RosterID: 1, MatchupID: 1, Points: 101.5},
		{RosterID: 6, MatchupID: 2, Points: 140.2},
		{RosterID: 2, MatchupID: 1, Points: 99},
		{RosterID: 7, MatchupID: 0, Points: 0},  // bye
		{RosterID: 8, MatchupID: 3, Points: 77}, // opponent missing
		{RosterID: 3, MatchupID: 4, Points: 100},
		{RosterID: 4, MatchupID: 4, Points: 100},
	}

	got := pairMatchups(6, matchups)

	want := []standings.MatchResult{
		{Week: 6, WinnerID: "1", LoserID: "2", WinnerScore: 101.5, LoserScore: 99},
		{Week: 6, WinnerID: "6", LoserID: "5", WinnerScore: 140.2, LoserScore: 88},
		{Week: 6, WinnerID: "3", LoserID: "4", WinnerScore: 100, LoserScore: 100},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
	if !got[2].Tied() {
		t.Error("Expected equal scores to be a tied result")
	}
}

func TestRegularSeasonWeeks(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		override int
		want     int
	}{
		{"configured override wins", 15, 13, 13},
		{"week before playoffs", 15, 0, 14},
		{"short season", 12, 0, 11},
		{"no playoff start", 0, 0, defaultRegularSeasonWeeks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			league := &sleeper.League{Settings: sleeper.LeagueSettings{PlayoffWeekStart: tt.start}}
			if got := regularSeasonWeeks(league, tt.override); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestIsLiveSeason(t *testing.T) {
	state := &sleeper.NFLState{LeagueSeason: "2024"}

	tests := []struct {
		name   string
		league sleeper.League
		state  *sleeper.NFLState
		want   bool
	}{
		{"current season in progress", sleeper.League{Season: "2024", Status: "in_season"}, state, true},
		{"current season drafting", sleeper.League{Season: "2024", Status: "drafting"}, state, true},
		{"current season complete", sleeper.League{Season: "2024", Status: "complete"}, state, false},
		{"previous season", sleeper.League{Season: "2023", Status: "in_season"}, state, false},
		{"no state", sleeper.League{Season: "2024", Status: "in_season"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isLiveSeason(&tt.league, tt.state); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestLastCompleteWeek(t *testing.T) {
	tests := []struct {
		name  string
		state sleeper.NFLState
		want  int
	}{
		{"preseason", sleeper.NFLState{SeasonType: "pre", Week: 1}, 0},
		{"week in progress", sleeper.NFLState{SeasonType: "regular", Week: 9}, 8},
		{"first week", sleeper.NFLState{SeasonType: "regular", Week: 1}, 0},
		{"past the regular season", sleeper.NFLState{SeasonType: "regular", Week: 16}, 14},
		{"postseason", sleeper.NFLState{SeasonType: "post", Week: 2}, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lastCompleteWeek(&tt.state, 14); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestBuildTeamRecords(t *testing.T) {
	rosters := []sleeper.Roster{
		{RosterID: 3, Settings: sleeper.RosterSettings{Wins: 7, Losses: 5, Ties: 1, FPTS: 1402, FPTSDecimal: 50, FPTSAgainst: 1350, Division: 2}},
	}

	got := buildTeamRecords(rosters)

	want := []standings.TeamRecord{
		{TeamID: "3", Wins: 7, Losses: 5, Ties: 1, PointsFor: 1402.5, PointsAgainst: 1350, Division: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestSeasonData_Name(t *testing.T) {
	data := &SeasonData{TeamNames: buildTeamNames(
		[]sleeper.Roster{{RosterID: 1, OwnerID: "u1"}, {RosterID: 2, OwnerID: "gone"}},
		[]sleeper.User{{UserID: "u1", DisplayName: "first"}},
	)}

	if got := data.Name("1"); got != "first" {
		t.Errorf("Expected owner display name, got %s", got)
	}
	if got := data.Name("2"); got != "Team 2" {
		t.Errorf("Expected fallback name for orphaned roster, got %s", got)
	}
}

func TestLeagueHandler_FetchMatchLog(t *testing.T) {
	logger, _ := test.NewNullLogger()
	fixture := newFourTeamLeague()
	handler := NewLeagueHandler(fixture.client(t), logger, nil)

	matchLog, missing, err := handler.fetchMatchLog(context.Background(), "L1", 1, 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(missing) != 0 {
		t.Errorf("Expected no missing weeks, got %v", missing)
	}
	if len(matchLog) != 3 {
		t.Fatalf("Expected 3 weeks, got %d", len(matchLog))
	}

	season := standings.Season{Matches: matchLog, Live: true}
	if h2h := season.HeadToHead("4", "1"); h2h.WinsA != 1 || h2h.Games != 1 {
		t.Errorf("Expected roster 4 to be 1-0 against roster 1, got %+v", h2h)
	}
}

func TestLeagueHandler_FetchMatchLog_EmptyRange(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewLeagueHandler(&MockSleeperClient{}, logger, nil)

	matchLog, missing, err := handler.fetchMatchLog(context.Background(), "L1", 1, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(matchLog) != 0 || len(missing) != 0 {
		t.Errorf("Expected empty results, got %v and %v", matchLog, missing)
	}
}

func TestLeagueHandler_FetchMatchLog_CanceledContext(t *testing.T) {
	logger, _ := test.NewNullLogger()
	mockClient := &MockSleeperClient{
		GetMatchupsFunc: func(ctx context.Context, leagueID string, week int) ([]sleeper.Matchup, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return nil, errors.New("unexpected call")
		},
	}
	handler := NewLeagueHandler(mockClient, logger, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := handler.fetchMatchLog(ctx, "L1", 1, 8); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
