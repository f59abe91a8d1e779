package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sam-maryland/sleeper-standings/internal/standings"
	"gopkg.in/yaml.v3"
)

// LeagueSettings represents the standings configuration for a specific league
type LeagueSettings struct {
	Name               string         `json:"name" yaml:"name"`
	Description        string         `json:"description" yaml:"description"`
	Seeding            SeedingRules   `json:"seeding" yaml:"seeding"`
	DivisionNames      map[int]string `json:"division_names,omitempty" yaml:"division_names,omitempty"`
	RegularSeasonWeeks int            `json:"regular_season_weeks,omitempty" yaml:"regular_season_weeks,omitempty"`
}

// SeedingRules controls how division leaders are placed in the playoff order
type SeedingRules struct {
	BumpSeed    int `json:"bump_seed,omitempty" yaml:"bump_seed,omitempty"`
	LeaderSeeds int `json:"leader_seeds,omitempty" yaml:"leader_seeds,omitempty"`
}

// LeagueConfig represents the entire league configuration file
type LeagueConfig struct {
	Instructions    string                    `json:"_instructions,omitempty" yaml:"_instructions,omitempty"`
	Leagues         map[string]LeagueSettings `json:"leagues" yaml:"leagues"`
	DefaultSettings LeagueSettings            `json:"default_settings" yaml:"default_settings"`

	path string
}

// DefaultSettingsPaths are searched, in order, when no explicit path is configured
var DefaultSettingsPaths = []string{
	"configs/league_settings.yaml",
	"configs/league_settings.yml",
	"configs/league_settings.json",
	"../configs/league_settings.yaml",
	"../configs/league_settings.json",
	"../../configs/league_settings.yaml",
	"../../configs/league_settings.json",
}

// DefaultLeagueConfig returns the configuration used when no settings file exists
func DefaultLeagueConfig() *LeagueConfig {
	return &LeagueConfig{
		Leagues: make(map[string]LeagueSettings),
		DefaultSettings: LeagueSettings{
			Name:        "Default League",
			Description: "Win percentage, head-to-head, then points for",
			Seeding: SeedingRules{
				BumpSeed:    standings.DefaultBumpSeed,
				LeaderSeeds: standings.DefaultLeaderSeeds,
			},
		},
	}
}

// LoadLeagueSettings loads league configuration from path, or from the first
// default location that exists when path is empty.
func LoadLeagueSettings(path string) (*LeagueConfig, error) {
	candidates := DefaultSettingsPaths
	if path != "" {
		candidates = []string{path}
	}

	var configData []byte
	var foundPath string

	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate)
		if err == nil {
			configData = data
			foundPath = candidate
			break
		}
		if path != "" {
			return nil, fmt.Errorf("failed to read league settings from %s: %w", path, err)
		}
	}

	if foundPath == "" {
		return DefaultLeagueConfig(), nil
	}

	config, err := ParseLeagueSettings(configData, filepath.Ext(foundPath))
	if err != nil {
		return nil, fmt.Errorf("failed to parse league settings from %s: %w", foundPath, err)
	}
	config.path = foundPath

	return config, nil
}

// ParseLeagueSettings decodes a settings document. ext selects the format:
// ".yaml" and ".yml" are YAML, anything else is JSON.
func ParseLeagueSettings(data []byte, ext string) (*LeagueConfig, error) {
	var config LeagueConfig

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, err
		}
	}

	if config.Leagues == nil {
		config.Leagues = make(map[string]LeagueSettings)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *LeagueConfig) validate() error {
	check := func(owner string, s LeagueSettings) error {
		if s.Seeding.BumpSeed < 0 || s.Seeding.LeaderSeeds < 0 {
			return fmt.Errorf("%s: seeding values must not be negative", owner)
		}
		if s.RegularSeasonWeeks < 0 {
			return fmt.Errorf("%s: regular_season_weeks must not be negative", owner)
		}
		for d := range s.DivisionNames {
			if d < 1 {
				return fmt.Errorf("%s: division numbers start at 1, got %d", owner, d)
			}
		}
		return nil
	}

	if err := check("default_settings", c.DefaultSettings); err != nil {
		return err
	}
	for id, s := range c.Leagues {
		if err := check("league "+id, s); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the file the configuration was loaded from, or "" for defaults
func (c *LeagueConfig) Path() string {
	return c.path
}

// GetLeagueSettings returns settings for a specific league ID
func (c *LeagueConfig) GetLeagueSettings(leagueID string) LeagueSettings {
	if settings, exists := c.Leagues[leagueID]; exists {
		return settings
	}

	// Return default settings if league not found
	return c.DefaultSettings
}

// StandingsOptions builds engine options for a league. Division names from
// the settings file take precedence over the names Sleeper reports.
func (c *LeagueConfig) StandingsOptions(leagueID string, sleeperNames map[int]string) standings.Options {
	settings := c.GetLeagueSettings(leagueID)

	names := make(map[int]string, len(sleeperNames)+len(settings.DivisionNames))
	for d, name := range sleeperNames {
		names[d] = name
	}
	for d, name := range settings.DivisionNames {
		names[d] = name
	}

	return standings.Options{
		BumpSeed:      settings.Seeding.BumpSeed,
		LeaderSeeds:   settings.Seeding.LeaderSeeds,
		DivisionNames: names,
	}
}
