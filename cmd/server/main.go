package main

import (
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/sam-maryland/sleeper-standings/internal/config"
	"github.com/sam-maryland/sleeper-standings/internal/mcp"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	// stdout carries the MCP protocol
	logger.SetOutput(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	logger.SetLevel(cfg.LogLevel)

	mcpServer := mcp.NewSleeperMCPServer(cfg, logger)
	if mcpServer == nil {
		logger.Fatal("Failed to create MCP server")
	}

	logger.Info("Starting Sleeper Standings MCP Server...")

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
