package standings

import "strconv"

const (
	// DefaultBumpSeed is the worst seed a third division leader can receive,
	// matching a six-team playoff.
	DefaultBumpSeed = 6
	// DefaultLeaderSeeds is how many division leaders are seeded ahead of everyone else.
	DefaultLeaderSeeds = 2
	// DefaultWinPctPrecision is the number of decimal digits win percentages are
	// rounded to before teams are compared.
	DefaultWinPctPrecision = 4
)

// Options tunes the seeding rules. The zero value uses the defaults above.
type Options struct {
	BumpSeed        int
	LeaderSeeds     int
	WinPctPrecision int
	// DivisionNames optionally labels divisions in explanations.
	DivisionNames map[int]string
}

// DefaultOptions returns the standard six-team playoff configuration.
func DefaultOptions() Options {
	return Options{
		BumpSeed:        DefaultBumpSeed,
		LeaderSeeds:     DefaultLeaderSeeds,
		WinPctPrecision: DefaultWinPctPrecision,
	}
}

func (o Options) withDefaults() Options {
	if o.BumpSeed <= 0 {
		o.BumpSeed = DefaultBumpSeed
	}
	if o.LeaderSeeds <= 0 {
		o.LeaderSeeds = DefaultLeaderSeeds
	}
	if o.WinPctPrecision <= 0 {
		o.WinPctPrecision = DefaultWinPctPrecision
	}
	return o
}

// divisionLabel returns the configured name for a division, or a generic label.
func (o Options) divisionLabel(division int) string {
	if name, ok := o.DivisionNames[division]; ok && name != "" {
		return name
	}
	if division == 0 {
		return "No division"
	}
	return "Division " + strconv.Itoa(division)
}
