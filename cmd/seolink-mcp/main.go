package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "seolink/internal/adapters/mcp"
	"seolink/internal/bootstrap"
	"seolink/internal/config"
	"seolink/internal/ports"
)

func main() {
	configFlag := flag.String("config", "", "YAML config file (default ./seolink.yaml)")
	rootFlag := flag.String("root", "", "content root holding the page sources")
	analyticsFlag := flag.String("analytics", "", "search-console pages CSV export")
	flag.Parse()

	cfg, err := config.Load(config.LoadOptions{ConfigFile: *configFlag})
	if err != nil {
		log.Fatalf("seolink-mcp: %v", err)
	}
	if *rootFlag != "" {
		cfg.ContentRoot = *rootFlag
	}
	if *analyticsFlag != "" {
		cfg.AnalyticsPath = *analyticsFlag
	}

	// stdout carries the protocol; logs go to stderr
	engine, err := bootstrap.New(cfg, os.Stderr, "seolink-mcp")
	if err != nil {
		log.Fatalf("seolink-mcp: %v", err)
	}
	if err := engine.RequireRoot(); err != nil {
		log.Fatalf("seolink-mcp: %v", err)
	}

	var graph ports.LinkGraph
	if g, err := engine.QueryGraph(); err != nil {
		engine.Logger.Warn("snapshot unavailable, starved_pages disabled", "err", err)
	} else {
		defer g.Close()
		graph = g
	}

	mcpServer := server.NewMCPServer(
		"seolink-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, engine.Pipeline, graph)
	mcpadapter.RegisterWriteTools(mcpServer, engine.Pipeline, engine.Reports, cfg.ReportLimit)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("seolink-mcp: %v", err)
	}
}
