package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"seolink/internal/application/commands"
	"seolink/internal/domain"
	"seolink/internal/ports"
)

// RegisterReadTools adds all read-only linking tools to the MCP server.
// graph may be nil, in which case starved_pages is not offered.
func RegisterReadTools(s *server.MCPServer, p *commands.Pipeline, graph ports.LinkGraph) {
	s.AddTool(suggestTool(), suggestHandler(p))
	s.AddTool(classifyTool(), classifyHandler(p))
	s.AddTool(pageInfoTool(), pageInfoHandler(p))
	if graph != nil {
		s.AddTool(starvedTool(), starvedHandler(graph))
	}
}

// --- suggest_links ---

func suggestTool() mcp.Tool {
	return mcp.NewTool("suggest_links",
		mcp.WithDescription("Rank internal links from high-authority pages to link-starved pages. Never modifies any file."),
		mcp.WithString("source",
			mcp.Description("Only show suggestions placed on this page url (e.g. inventory-guide). Omit for all sources."),
		),
	)
}

func suggestHandler(p *commands.Pipeline) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		source := domain.PerformanceKey(req.GetString("source", ""))

		result, err := commands.NewSuggestCommand(p).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var plans []domain.SourcePlan
		for _, plan := range result.Plans {
			if source == "" || plan.Source.URL == source {
				plans = append(plans, plan)
			}
		}
		if len(plans) == 0 {
			return mcp.NewToolResultText("No suggestions."), nil
		}

		var sb strings.Builder
		fmt.Fprintln(&sb, result.Message)
		for _, plan := range plans {
			fmt.Fprintf(&sb, "\n%s  (%s)\n", plan.Source.URL, plan.Source.SourcePath)
			for _, s := range plan.Suggestions {
				fmt.Fprintf(&sb, "  -> /%s  %.2f  %q\n", s.Target.URL, s.Similarity, s.AnchorText)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- classify_pages ---

func classifyTool() mcp.Tool {
	return mcp.NewTool("classify_pages",
		mcp.WithDescription("Bucket every content page into high-authority, low-authority and link-starved using search analytics and incoming links."),
		mcp.WithString("bucket",
			mcp.Description("Only list one bucket: high, low or starved. Omit for a summary of all three."),
		),
	)
}

func classifyHandler(p *commands.Pipeline) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		bucket := req.GetString("bucket", "")

		result, err := commands.NewClassifyCommand(p).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		c := result.Classification
		switch bucket {
		case "":
			return mcp.NewToolResultText(result.Message), nil
		case "high":
			return formatEntities(c.HighAuthority, formatPage(result.Index))
		case "low":
			return formatEntities(c.LowAuthority, formatPage(result.Index))
		case "starved":
			return formatEntities(c.LinkStarved, formatPage(result.Index))
		default:
			return toolError(fmt.Errorf("invalid bucket: %s (expected high, low, or starved)", bucket))
		}
	}
}

// --- page_info ---

func pageInfoTool() mcp.Tool {
	return mcp.NewTool("page_info",
		mcp.WithDescription("Show one page's analytics, incoming links, authority buckets and link suggestions."),
		mcp.WithString("url",
			mcp.Description("Page url (e.g. glossary/inventory-management or a full https:// address)"),
			mcp.Required(),
		),
	)
}

func pageInfoHandler(p *commands.Pipeline) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		url := req.GetString("url", "")
		if url == "" {
			return toolError(fmt.Errorf("url is required"))
		}

		result, err := commands.NewPageInfoCommand(p, url).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		page := result.Page
		var sb strings.Builder
		fmt.Fprintf(&sb, "url: /%s\nfile: %s\n", page.URL, page.SourcePath)
		if page.Title != "" {
			fmt.Fprintf(&sb, "title: %s\n", page.Title)
		}
		if page.Heading != "" {
			fmt.Fprintf(&sb, "heading: %s\n", page.Heading)
		}
		fmt.Fprintf(&sb, "keywords: %s\n", strings.Join(page.Keywords, ", "))
		if perf := page.Performance; perf != nil {
			fmt.Fprintf(&sb, "analytics: %d clicks, %d impressions, ctr %.2f%%, position %.1f\n",
				perf.Clicks, perf.Impressions, perf.CTR*100, perf.Position)
		} else {
			sb.WriteString("analytics: none\n")
		}
		fmt.Fprintf(&sb, "buckets: %s\n", buckets(result))
		fmt.Fprintf(&sb, "incoming (%d): %s\n", len(result.IncomingFrom), strings.Join(result.IncomingFrom, ", "))
		for _, s := range result.Inbound {
			fmt.Fprintf(&sb, "suggested from /%s  %.2f\n", s.Source.URL, s.Similarity)
		}
		for _, s := range result.Outbound {
			fmt.Fprintf(&sb, "suggested to /%s  %.2f\n", s.Target.URL, s.Similarity)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func buckets(r *commands.PageInfoResult) string {
	var names []string
	if r.HighAuthority {
		names = append(names, "high-authority")
	}
	if r.LowAuthority {
		names = append(names, "low-authority")
	}
	if r.LinkStarved {
		names = append(names, "link-starved")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// --- starved_pages ---

func starvedTool() mcp.Tool {
	return mcp.NewTool("starved_pages",
		mcp.WithDescription("List link-starved pages from the last stored snapshot, fewest incoming links first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of pages. Omit or 0 for all."),
		),
	)
}

func starvedHandler(graph ports.LinkGraph) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := req.GetInt("limit", 0)

		pages, err := commands.NewStarvedCommand(graph, limit).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(pages, formatStarved)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatPage(idx *domain.ContentIndex) func(*domain.PageRecord) string {
	return func(p *domain.PageRecord) string {
		return fmt.Sprintf("/%s  %d incoming  %s", p.URL, idx.IncomingCount(p.URL), p.SourcePath)
	}
}

func formatStarved(p domain.StarvedPage) string {
	return fmt.Sprintf("/%s  %d incoming  %s", p.URL, p.Incoming, p.SourcePath)
}
