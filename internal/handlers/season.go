package handlers

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/sam-maryland/sleeper-standings/internal/sleeper"
	"github.com/sam-maryland/sleeper-standings/internal/standings"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// defaultRegularSeasonWeeks is used when a league reports no playoff start week
	defaultRegularSeasonWeeks = 14
	// maxConcurrentWeekFetches bounds in-flight matchup requests per season load
	maxConcurrentWeekFetches = 4
)

// SeasonData is everything the standings engine needs for one league season
type SeasonData struct {
	League       *sleeper.League
	State        *sleeper.NFLState
	Users        []sleeper.User
	Rosters      []sleeper.Roster
	Records      []standings.TeamRecord
	Season       standings.Season
	Options      standings.Options
	TeamNames    map[string]string
	MissingWeeks []int
	APICalls     int
}

// Name resolves a team id to its display name
func (d *SeasonData) Name(teamID string) string {
	if name, ok := d.TeamNames[teamID]; ok && name != "" {
		return name
	}
	return "Team " + teamID
}

// regularSeasonWeeks returns the last regular season week for a league
func regularSeasonWeeks(league *sleeper.League, override int) int {
	if override > 0 {
		return override
	}
	if league.Settings.PlayoffWeekStart > 1 {
		return league.Settings.PlayoffWeekStart - 1
	}
	return defaultRegularSeasonWeeks
}

// isLiveSeason reports whether league is the season currently being played
func isLiveSeason(league *sleeper.League, state *sleeper.NFLState) bool {
	if state == nil || league.Status == "complete" {
		return false
	}
	return league.Season == state.LeagueSeason
}

// lastCompleteWeek returns the latest week whose games are all final
func lastCompleteWeek(state *sleeper.NFLState, regularWeeks int) int {
	switch state.SeasonType {
	case "pre":
		return 0
	case "regular":
		if state.Week-1 < regularWeeks {
			return state.Week - 1
		}
	}
	return regularWeeks
}

// teamID is the engine identifier for a Sleeper roster
func teamID(rosterID int) string {
	return strconv.Itoa(rosterID)
}

// buildTeamRecords converts Sleeper rosters into engine records
func buildTeamRecords(rosters []sleeper.Roster) []standings.TeamRecord {
	records := make([]standings.TeamRecord, 0, len(rosters))
	for _, r := range rosters {
		records = append(records, standings.TeamRecord{
			TeamID:        teamID(r.RosterID),
			Wins:          r.Settings.Wins,
			Losses:        r.Settings.Losses,
			Ties:          r.Settings.Ties,
			PointsFor:     r.Settings.PointsFor(),
			PointsAgainst: r.Settings.PointsAgainst(),
			Division:      r.Settings.Division,
		})
	}
	return records
}

// buildTeamNames maps each roster to its owner's team name
func buildTeamNames(rosters []sleeper.Roster, users []sleeper.User) map[string]string {
	byUser := make(map[string]sleeper.User, len(users))
	for _, u := range users {
		byUser[u.UserID] = u
	}

	names := make(map[string]string, len(rosters))
	for _, r := range rosters {
		if u, ok := byUser[r.OwnerID]; ok {
			names[teamID(r.RosterID)] = u.TeamName()
		}
	}
	return names
}

// pairMatchups turns one week of Sleeper matchup rows into head-to-head results.
// Rows without a matchup id (byes) or without exactly one opponent are skipped.
func pairMatchups(week int, matchups []sleeper.Matchup) []standings.MatchResult {
	groups := make(map[int][]sleeper.Matchup)
	for _, m := range matchups {
		if m.MatchupID == 0 {
			continue
		}
		groups[m.MatchupID] = append(groups[m.MatchupID], m)
	}

	ids := make([]int, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	results := make([]standings.MatchResult, 0, len(ids))
	for _, id := range ids {
		pair := groups[id]
		if len(pair) != 2 {
			continue
		}
		winner, loser := pair[0], pair[1]
		if loser.Points > winner.Points {
			winner, loser = loser, winner
		}
		results = append(results, standings.MatchResult{
			Week:        week,
			WinnerID:    teamID(winner.RosterID),
			LoserID:     teamID(loser.RosterID),
			WinnerScore: winner.Points,
			LoserScore:  loser.Points,
		})
	}
	return results
}

// fetchMatchLog loads weeks first..last concurrently. A week that fails to load
// is logged and left out of the log rather than failing the whole season.
func (h *LeagueHandler) fetchMatchLog(ctx context.Context, leagueID string, first, last int) (standings.MatchLog, []int, error) {
	matchLog := make(standings.MatchLog)
	if last < first {
		return matchLog, nil, nil
	}

	weeks := make([][]sleeper.Matchup, last-first+1)
	failed := make([]bool, len(weeks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentWeekFetches)

	for i := range weeks {
		week := first + i
		g.Go(func() error {
			matchups, err := h.client.GetMatchups(gctx, leagueID, week)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				h.logger.WithError(err).WithFields(logrus.Fields{
					"league_id": leagueID,
					"week":      week,
				}).Warn("Failed to get matchups for week, skipping")
				failed[i] = true
				return nil
			}
			weeks[i] = matchups
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("failed to load matchups: %w", err)
	}

	var missing []int
	for i, matchups := range weeks {
		week := first + i
		if failed[i] {
			missing = append(missing, week)
			continue
		}
		if results := pairMatchups(week, matchups); len(results) > 0 {
			matchLog[week] = results
		}
	}

	return matchLog, missing, nil
}

// loadSeason gathers league, state, users, rosters and, for a live season,
// the completed regular season matchups.
func (h *LeagueHandler) loadSeason(ctx context.Context, leagueID string) (*SeasonData, error) {
	data := &SeasonData{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		league, err := h.client.GetLeague(gctx, leagueID)
		data.League = league
		return err
	})
	g.Go(func() error {
		state, err := h.client.GetNFLState(gctx)
		data.State = state
		return err
	})
	g.Go(func() error {
		users, err := h.client.GetLeagueUsers(gctx, leagueID)
		data.Users = users
		return err
	})
	g.Go(func() error {
		rosters, err := h.client.GetLeagueRosters(gctx, leagueID)
		data.Rosters = rosters
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	data.APICalls = 4

	settings := h.config.GetLeagueSettings(leagueID)
	data.Options = h.config.StandingsOptions(leagueID, data.League.DivisionNames())
	data.Records = buildTeamRecords(data.Rosters)
	data.TeamNames = buildTeamNames(data.Rosters, data.Users)

	live := isLiveSeason(data.League, data.State)
	data.Season = standings.Season{Live: live}
	if !live {
		return data, nil
	}

	regularWeeks := regularSeasonWeeks(data.League, settings.RegularSeasonWeeks)
	lastWeek := lastCompleteWeek(data.State, regularWeeks)
	firstWeek := data.League.Settings.StartWeek
	if firstWeek < 1 {
		firstWeek = 1
	}

	matches, missing, err := h.fetchMatchLog(ctx, leagueID, firstWeek, lastWeek)
	if err != nil {
		return nil, err
	}
	if lastWeek >= firstWeek {
		data.APICalls += lastWeek - firstWeek + 1
	}

	data.MissingWeeks = missing
	data.Season.Matches = matches
	data.Season.WeekComplete = func(week int) bool {
		return week <= lastWeek
	}

	h.logger.WithFields(logrus.Fields{
		"league_id":     leagueID,
		"weeks_loaded":  len(matches),
		"missing_weeks": missing,
		"last_complete": lastWeek,
	}).Debug("Loaded live season matchups")

	return data, nil
}
