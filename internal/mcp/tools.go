package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mvp-joe/project-lexicon/internal/extract"
	"github.com/mvp-joe/project-lexicon/internal/search"
)

// SearchRequest is the parsed argument set of the lexicon_search tool.
type SearchRequest struct {
	Query    string   `json:"query"`
	Limit    int      `json:"limit"`
	Kinds    []string `json:"kinds"`
	Semantic bool     `json:"semantic"`
}

// SearchResponse is the lexicon_search tool result payload.
type SearchResponse struct {
	Results []*search.Result `json:"results"`
	Total   int              `json:"total"`
}

// LookupResponse is the lexicon_lookup tool result payload.
type LookupResponse struct {
	Record *extract.Record `json:"record"`
}

// AddSearchTool registers the lexicon_search tool with an MCP server.
// This function is composable with other tool registrations.
func AddSearchTool(s *server.MCPServer, service *search.Service) {
	tool := mcp.NewTool(
		"lexicon_search",
		mcp.WithDescription("Search extracted API declarations (classes, functions, interfaces, properties) by keyword or semantic similarity. Returns normalized records with documentation, signatures, and hierarchy."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query. Keyword mode supports bleve syntax (field scoping, AND/OR, wildcards); semantic mode takes natural language.")),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return (1-100, default: 15)")),
		mcp.WithArray("kinds",
			mcp.Description("Filter by declaration kinds, e.g. ['Class', 'Function']. Leave empty to search all kinds.")),
		mcp.WithBoolean("semantic",
			mcp.Description("Use semantic (vector) search instead of keyword search. Default: false.")),
	)

	s.AddTool(tool, createSearchHandler(service))
}

// createSearchHandler creates the handler function for lexicon_search.
func createSearchHandler(service *search.Service) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		var args SearchRequest
		query, ok := argsMap["query"].(string)
		if !ok || query == "" {
			return mcp.NewToolResultError("query parameter is required"), nil
		}
		args.Query = query

		if limit, ok := argsMap["limit"].(float64); ok {
			args.Limit = int(limit)
		} else {
			args.Limit = 15
		}

		if kinds, ok := argsMap["kinds"].([]interface{}); ok {
			args.Kinds = make([]string, 0, len(kinds))
			for _, kind := range kinds {
				if kindStr, ok := kind.(string); ok {
					args.Kinds = append(args.Kinds, kindStr)
				}
			}
		}

		if semantic, ok := argsMap["semantic"].(bool); ok {
			args.Semantic = semantic
		}

		options := &search.Options{
			Limit: args.Limit,
			Kinds: args.Kinds,
		}

		results, err := service.Search(ctx, args.Query, options, args.Semantic)
		if err != nil {
			return nil, fmt.Errorf("search failed: %w", err)
		}

		response := &SearchResponse{
			Results: results,
			Total:   len(results),
		}

		jsonData, err := json.Marshal(response)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}
		return mcp.NewToolResultText(string(jsonData)), nil
	}
}

// AddLookupTool registers the lexicon_lookup tool with an MCP server.
func AddLookupTool(s *server.MCPServer, service *search.Service) {
	tool := mcp.NewTool(
		"lexicon_lookup",
		mcp.WithDescription("Look up one extracted API declaration by its dotted full path (e.g. 'api.Client.connect') or numeric id. Returns the full normalized record."),
		mcp.WithString("path",
			mcp.Description("Dotted full path of the declaration")),
		mcp.WithNumber("id",
			mcp.Description("Numeric declaration id (used when path is not given)")),
	)

	s.AddTool(tool, createLookupHandler(service))
}

// createLookupHandler creates the handler function for lexicon_lookup.
func createLookupHandler(service *search.Service) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsMap, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}

		var (
			rec   *extract.Record
			found bool
		)
		if path, ok := argsMap["path"].(string); ok && path != "" {
			rec, found = service.LookupByPath(path)
			if !found {
				return mcp.NewToolResultError(fmt.Sprintf("no record at path %q", path)), nil
			}
		} else if id, ok := argsMap["id"].(float64); ok {
			rec, found = service.LookupByID(int(id))
			if !found {
				return mcp.NewToolResultError(fmt.Sprintf("no record with id %d", int(id))), nil
			}
		} else {
			return mcp.NewToolResultError("either path or id is required"), nil
		}

		jsonData, err := json.Marshal(&LookupResponse{Record: rec})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal response: %w", err)
		}
		return mcp.NewToolResultText(string(jsonData)), nil
	}
}
