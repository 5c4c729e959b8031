package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"seolink/internal/application/commands"
)

var pageCmd = &cobra.Command{
	Use:   "page <url>",
	Short: "Show one page's analytics, links and suggestions",
	Long: `Show how a single page is indexed: its keywords, search performance,
authority buckets, incoming links and the suggestions that involve it.

Examples:
  seolink-cli page inventory-guide
  seolink-cli page https://www.example.com/glossary/safety-stock/`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e := GetEngine()
		if err := e.RequireRoot(); err != nil {
			return err
		}

		result, err := commands.NewPageInfoCommand(e.Pipeline, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}

		p := result.Page
		fmt.Println(headingStyle.Render("/" + p.URL))
		fmt.Printf("  %s %s\n", labelStyle.Render("file     "), p.SourcePath)
		fmt.Printf("  %s %s\n", labelStyle.Render("title    "), p.Title)
		fmt.Printf("  %s %s\n", labelStyle.Render("keywords "), joinKeywords(p.Keywords))
		if perf := p.Performance; perf != nil {
			fmt.Printf("  %s %d clicks, %d impressions, ctr %.2f%%, position %.1f\n",
				labelStyle.Render("analytics"), perf.Clicks, perf.Impressions, perf.CTR*100, perf.Position)
		} else {
			fmt.Printf("  %s %s\n", labelStyle.Render("analytics"), mutedStyle.Render("(none)"))
		}
		fmt.Printf("  %s high=%v low=%v starved=%v\n", labelStyle.Render("buckets  "),
			result.HighAuthority, result.LowAuthority, result.LinkStarved)
		fmt.Printf("  %s %s\n", labelStyle.Render("incoming "), joinKeywords(result.IncomingFrom))

		for _, s := range result.Inbound {
			fmt.Printf("  <- /%s  %.2f\n", s.Source.URL, s.Similarity)
		}
		for _, s := range result.Outbound {
			fmt.Printf("  -> /%s  %.2f  %q\n", s.Target.URL, s.Similarity, s.AnchorText)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pageCmd)
}
