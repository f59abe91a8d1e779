package standings

import "sort"

// Ranker produces final, ranked standings for a league.
type Ranker interface {
	Rank(records []TeamRecord, season Season) []TeamRecord
}

// RankByRecordOnly orders the whole league as a single table.
type RankByRecordOnly struct {
	Options Options
}

// Rank implements Ranker.
func (r RankByRecordOnly) Rank(records []TeamRecord, season Season) []TeamRecord {
	opts := r.Options.withDefaults()
	ordered := OrderByRecord(freshCopy(records), season, opts.WinPctPrecision)
	return AssignRanks(ordered, season, opts.WinPctPrecision)
}

// RankWithDivisions seeds the best division leaders first, orders everyone
// else as one pool, and protects the next division leader with the bump rule.
type RankWithDivisions struct {
	Options Options
}

// Rank implements Ranker.
func (r RankWithDivisions) Rank(records []TeamRecord, season Season) []TeamRecord {
	opts := r.Options.withDefaults()
	ordered := seedDivisions(freshCopy(records), season, opts)
	return AssignRanks(ordered, season, opts.WinPctPrecision)
}

// HasDivisions reports whether any record carries a division number.
func HasDivisions(records []TeamRecord) bool {
	for _, r := range records {
		if r.Division != 0 {
			return true
		}
	}
	return false
}

// NewRanker picks the seeding strategy for a league once, up front.
func NewRanker(records []TeamRecord, opts Options) Ranker {
	if HasDivisions(records) {
		return RankWithDivisions{Options: opts}
	}
	return RankByRecordOnly{Options: opts}
}

// Rank runs the full pipeline and returns new, ranked records in final order.
func Rank(records []TeamRecord, season Season, opts Options) []TeamRecord {
	return NewRanker(records, opts).Rank(records, season)
}

// freshCopy copies records and clears any output fields left by a previous run.
func freshCopy(records []TeamRecord) []TeamRecord {
	out := make([]TeamRecord, len(records))
	for i, r := range records {
		r.Rank = 0
		r.ThirdLeaderBumped = false
		r.DivisionLeader = false
		r.LeaderSeed = 0
		out[i] = r
	}
	return out
}

// seedDivisions applies the divisional seeding rules and returns the final
// order with the leader fields set. Records without a division are bucketed
// as division 0 and can produce a leader of their own.
func seedDivisions(records []TeamRecord, season Season, opts Options) []TeamRecord {
	precision := opts.WinPctPrecision

	members := make(map[int][]TeamRecord)
	for _, r := range records {
		members[r.Division] = append(members[r.Division], r)
	}
	divisions := make([]int, 0, len(members))
	for d := range members {
		divisions = append(divisions, d)
	}
	sort.Ints(divisions)

	var leaders []TeamRecord
	for _, d := range divisions {
		leaders = append(leaders, OrderByRecord(members[d], season, precision)[0])
	}
	leaders = OrderByRecord(leaders, season, precision)

	top := leaders
	if len(top) > opts.LeaderSeeds {
		top = top[:opts.LeaderSeeds]
	}
	topLeaders := make(map[string]bool, len(top))
	for _, l := range top {
		topLeaders[l.TeamID] = true
	}

	pool := make([]TeamRecord, 0, len(records))
	for _, r := range records {
		if !topLeaders[r.TeamID] {
			pool = append(pool, r)
		}
	}

	order := make([]TeamRecord, 0, len(records))
	order = append(order, top...)
	order = append(order, OrderByRecord(pool, season, precision)...)

	if len(leaders) > opts.LeaderSeeds {
		order = bumpLeader(order, leaders[opts.LeaderSeeds].TeamID, opts.BumpSeed)
	}

	leaderSeeds := make(map[string]int, len(leaders))
	for i, l := range leaders {
		leaderSeeds[l.TeamID] = i + 1
	}
	for i := range order {
		if seed, ok := leaderSeeds[order[i].TeamID]; ok {
			order[i].DivisionLeader = true
			order[i].LeaderSeed = seed
		}
	}
	return order
}

// bumpLeader moves the given leader up to seed bumpSeed when it sits below it.
// Teams between the new and old position each shift down one place.
func bumpLeader(order []TeamRecord, leaderID string, bumpSeed int) []TeamRecord {
	from := -1
	for i, r := range order {
		if r.TeamID == leaderID {
			from = i
			break
		}
	}
	to := bumpSeed - 1
	if from < 0 || from <= to {
		return order
	}

	leader := order[from]
	leader.ThirdLeaderBumped = true

	out := make([]TeamRecord, 0, len(order))
	out = append(out, order[:to]...)
	out = append(out, leader)
	out = append(out, order[to:from]...)
	out = append(out, order[from+1:]...)
	return out
}
