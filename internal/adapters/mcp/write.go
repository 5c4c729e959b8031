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

// RegisterWriteTools adds the page-mutating tools to the MCP server.
// reportLimit bounds the added and skipped lists of each written report.
func RegisterWriteTools(s *server.MCPServer, p *commands.Pipeline, reports ports.ReportWriter, reportLimit int) {
	s.AddTool(applyTool(), applyHandler(p, reports, reportLimit))
}

// --- apply_links ---

func applyTool() mcp.Tool {
	return mcp.NewTool("apply_links",
		mcp.WithDescription("Insert the ranked internal links into the source pages and write the run report. Without confirm=true only a preview is returned and nothing is written."),
		mcp.WithBoolean("confirm",
			mcp.Description("Set to true to modify page files. Defaults to false (preview)."),
		),
	)
}

func applyHandler(p *commands.Pipeline, reports ports.ReportWriter, reportLimit int) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if !req.GetBool("confirm", false) {
			return previewLinks(ctx, p)
		}

		run := commands.NewRunLinksCommand(p, reports)
		run.ReportLimit = reportLimit
		result, err := run.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintln(&sb, result.Message)
		writeAdded(&sb, result.Run)
		for _, e := range result.Run.Errors() {
			fmt.Fprintf(&sb, "error %s: %s\n", e.File, e.Error)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func previewLinks(ctx context.Context, p *commands.Pipeline) (*mcp.CallToolResult, error) {
	suggested, err := commands.NewSuggestCommand(p).Execute(ctx)
	if err != nil {
		return toolError(err)
	}

	apply := commands.NewApplyLinksCommand(p, suggested.Plans, suggested.Run)
	apply.DryRun = true
	result, err := apply.Execute(ctx)
	if err != nil {
		return toolError(err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Preview: %s. Call again with confirm=true to write.\n", result.Message)
	writeAdded(&sb, result.Run)
	return mcp.NewToolResultText(sb.String()), nil
}

func writeAdded(sb *strings.Builder, run *domain.RunResult) {
	for _, rec := range run.Added() {
		fmt.Fprintf(sb, "%s\n", rec.File)
		for _, l := range rec.Links {
			fmt.Fprintf(sb, "  + /%s %q (%s)\n", l.Target, l.Anchor, l.Strategy)
		}
	}
}
