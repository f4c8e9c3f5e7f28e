package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/knoba/confgrid/internal/core/favorites"
	"github.com/knoba/confgrid/internal/core/schedule"
	"github.com/knoba/confgrid/internal/core/tags"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ListSessionsArgs defines arguments for the list_sessions tool
type ListSessionsArgs struct {
	Day      string `json:"day,omitempty" jsonschema:"description=Day to list (day1..day4, default: day1)"`
	Location string `json:"location,omitempty" jsonschema:"description=Filter by location"`
}

// GetFavoritesArgs defines arguments for the get_favorites tool
type GetFavoritesArgs struct {
	Day string `json:"day,omitempty" jsonschema:"description=Day to read (day1..day4, default: day1)"`
}

// ToggleFavoriteArgs defines arguments for the toggle_favorite tool
type ToggleFavoriteArgs struct {
	Day   string `json:"day" jsonschema:"description=Day the session belongs to (day1..day4),required"`
	Title string `json:"title" jsonschema:"description=Exact session title to toggle,required"`
}

// SessionInfo represents one session in tool results
type SessionInfo struct {
	Title     string   `json:"title"`
	Type      string   `json:"type,omitempty"`
	Location  string   `json:"location"`
	Speakers  string   `json:"speakers,omitempty"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Tags      []string `json:"tags,omitempty"`
	Favorite  bool     `json:"favorite"`
}

// StartServer starts the MCP server on stdio
func StartServer(dbPath string, loc *time.Location) error {
	store, err := favorites.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open favorites store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Printf("Error closing favorites store: %v", closeErr)
		}
	}()

	s := server.NewMCPServer(
		"confgrid",
		"1.0.0",
	)

	listTool := mcp.NewTool("list_sessions",
		mcp.WithDescription("List the conference sessions for one day, with times, locations, tag badges, and favorite status"),
		mcp.WithString("day",
			mcp.Description("Day to list (day1..day4, default: day1)")),
		mcp.WithString("location",
			mcp.Description("Filter by location")),
	)
	s.AddTool(listTool, makeListSessionsHandler(store, loc))

	favsTool := mcp.NewTool("get_favorites",
		mcp.WithDescription("Get the favorited session titles saved for one day"),
		mcp.WithString("day",
			mcp.Description("Day to read (day1..day4, default: day1)")),
	)
	s.AddTool(favsTool, makeGetFavoritesHandler(store))

	toggleTool := mcp.NewTool("toggle_favorite",
		mcp.WithDescription("Toggle the favorite status of a session title for one day; returns the day's new favorite set"),
		mcp.WithString("day",
			mcp.Required(),
			mcp.Description("Day the session belongs to (day1..day4)")),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Exact session title to toggle")),
	)
	s.AddTool(toggleTool, makeToggleFavoriteHandler(store))

	return server.ServeStdio(s)
}

func resolveDay(day string) (string, error) {
	if day == "" {
		return schedule.DefaultDay, nil
	}
	if !schedule.IsDay(day) {
		return "", fmt.Errorf("unknown day %q (expected day1..day4)", day)
	}
	return day, nil
}

func makeListSessionsHandler(store *favorites.Store, loc *time.Location) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ListSessionsArgs
		argsBytes, _ := json.Marshal(request.Params.Arguments)
		if err := json.Unmarshal(argsBytes, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		day, err := resolveDay(args.Day)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		favs := store.Load(day)
		table := tags.Default()

		var results []SessionInfo
		for _, s := range schedule.Load(day) {
			if args.Location != "" && s.Location != args.Location {
				continue
			}

			info := SessionInfo{
				Title:    s.Title,
				Type:     s.Type,
				Location: s.Location,
				Speakers: s.Speakers,
				Favorite: favorites.Contains(favs, s.Title),
			}
			// Resolved badge labels are more useful to a model than the
			// long verbatim identifiers.
			for _, tag := range s.Tags {
				info.Tags = append(info.Tags, table.Resolve(tag).Label)
			}
			if start, err := s.Start(); err == nil {
				info.StartTime = start.In(loc).Format(time.RFC3339)
			}
			if end, err := s.End(); err == nil {
				info.EndTime = end.In(loc).Format(time.RFC3339)
			}
			results = append(results, info)
		}

		resultJSON, err := json.Marshal(map[string]interface{}{
			"day":      day,
			"sessions": results,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}

func makeGetFavoritesHandler(store *favorites.Store) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args GetFavoritesArgs
		argsBytes, _ := json.Marshal(request.Params.Arguments)
		if err := json.Unmarshal(argsBytes, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		day, err := resolveDay(args.Day)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		resultJSON, err := json.Marshal(map[string]interface{}{
			"day":       day,
			"favorites": store.Load(day),
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}

func makeToggleFavoriteHandler(store *favorites.Store) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ToggleFavoriteArgs
		argsBytes, _ := json.Marshal(request.Params.Arguments)
		if err := json.Unmarshal(argsBytes, &args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		day, err := resolveDay(args.Day)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if args.Title == "" {
			return mcp.NewToolResultError("title is required"), nil
		}

		favs, err := store.Toggle(day, args.Title)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("toggle failed: %v", err)), nil
		}

		resultJSON, err := json.Marshal(map[string]interface{}{
			"day":       day,
			"favorited": favorites.Contains(favs, args.Title),
			"favorites": favs,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
		}
		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}
