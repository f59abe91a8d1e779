package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sam-maryland/sleeper-standings/internal/sleeper"
	"github.com/sirupsen/logrus"
)

// formatJSONResponse converts a response struct to a formatted JSON string
func formatJSONResponse(response interface{}) (string, error) {
	jsonBytes, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}

	return string(jsonBytes), nil
}

// errorResult wraps a failure message as an MCP error result
func errorResult(format string, a ...interface{}) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Type: "text",
				Text: fmt.Sprintf(format, a...),
			},
		},
		IsError: true,
	}
}

// successResult wraps data in the standard APIResponse envelope
func successResult(logger *logrus.Logger, leagueID string, apiCalls int, data interface{}, summary string) *mcp.CallToolResult {
	response := sleeper.APIResponse{
		Success: true,
		Data:    data,
		Summary: summary,
		Metadata: sleeper.Metadata{
			Timestamp:    time.Now(),
			Source:       "sleeper_api",
			APICallsUsed: apiCalls,
			LeagueID:     leagueID,
		},
	}

	jsonResponse, err := formatJSONResponse(response)
	if err != nil {
		logger.WithError(err).Error("Failed to format response")
		return errorResult("Error formatting response: %s", err.Error())
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Type: "text",
				Text: jsonResponse,
			},
		},
	}
}

// requiredString reads a non-empty string argument
func requiredString(args map[string]interface{}, name string) (string, error) {
	value, ok := args[name].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%s is required and must be a string", name)
	}
	return value, nil
}

// optionalInt reads a numeric argument, returning fallback when it is absent.
// JSON numbers arrive as float64.
func optionalInt(args map[string]interface{}, name string, fallback int) (int, error) {
	raw, exists := args[name]
	if !exists || raw == nil {
		return fallback, nil
	}
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("%s must be a number", name)
	}
}
