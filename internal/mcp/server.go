package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sam-maryland/sleeper-standings/internal/config"
	"github.com/sam-maryland/sleeper-standings/internal/handlers"
	"github.com/sam-maryland/sleeper-standings/internal/sleeper"
	"github.com/sirupsen/logrus"
)

const (
	ServerName    = "Sleeper Standings"
	ServerVersion = "1.0.0"
)

// toolFunc is the signature every tool handler shares
type toolFunc func(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error)

// NewStandingsMCPServer builds the MCP server around an existing Sleeper client
func NewStandingsMCPServer(client sleeper.Client, leagueConfig *config.LeagueConfig, logger *logrus.Logger) *server.DefaultServer {
	leagueHandler := handlers.NewLeagueHandler(client, logger, leagueConfig)

	s := server.NewDefaultServer(ServerName, ServerVersion)
	if s == nil {
		logger.Error("Failed to create MCP server instance")
		return nil
	}

	logger.Info("MCP server instance created successfully")

	routes := map[string]toolFunc{
		"get_league_info":         leagueHandler.HandleGetLeagueInfo,
		"get_league_standings":    leagueHandler.HandleGetLeagueStandings,
		"explain_tiebreaker":      leagueHandler.HandleExplainTiebreaker,
		"get_league_users":        leagueHandler.HandleGetLeagueUsers,
		"get_matchups":            leagueHandler.HandleGetMatchups,
		"discover_league_history": leagueHandler.HandleDiscoverLeagueHistory,
	}

	// Set up list tools handler
	s.HandleListTools(func(ctx context.Context, cursor *string) (*mcp.ListToolsResult, error) {
		tools := leagueHandler.Tools()

		logger.WithField("tools_count", len(tools)).Info("Listing available tools")

		return &mcp.ListToolsResult{
			Tools: tools,
		}, nil
	})

	// Set up call tool handler
	s.HandleCallTool(func(ctx context.Context, name string, arguments map[string]interface{}) (*mcp.CallToolResult, error) {
		logger.WithFields(logrus.Fields{
			"tool": name,
			"args": arguments,
		}).Info("Tool called")

		handle, ok := routes[name]
		if !ok {
			logger.WithField("tool", name).Warn("Unknown tool called")
			return &mcp.CallToolResult{
				Content: []mcp.Content{
					&mcp.TextContent{
						Type: "text",
						Text: "Unknown tool: " + name,
					},
				},
				IsError: true,
			}, nil
		}

		return handle(ctx, arguments)
	})

	logger.WithField("tools_count", len(routes)).Info("All tools registered successfully")
	return s
}

// NewSleeperMCPServer wires the HTTP Sleeper client from cfg into a new MCP server
func NewSleeperMCPServer(cfg *config.Config, logger *logrus.Logger) *server.DefaultServer {
	leagueConfig, err := config.LoadLeagueSettings(cfg.LeagueSettingsPath)
	if err != nil {
		logger.WithError(err).Warn("Failed to load league settings, using defaults")
		leagueConfig = config.DefaultLeagueConfig()
	} else if path := leagueConfig.Path(); path != "" {
		logger.WithField("path", path).Info("Loaded league settings")
	}

	client := sleeper.NewHTTPClient(logger,
		sleeper.WithBaseURL(cfg.BaseURL),
		sleeper.WithRequestsPerSecond(cfg.RequestsPerSecond),
	)

	return NewStandingsMCPServer(client, leagueConfig, logger)
}
