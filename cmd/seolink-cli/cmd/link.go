package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seolink/internal/application/commands"
)

var linkDryRun bool

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Insert internal links and write the report",
	Long: `Index every page, classify it by search performance and incoming links,
rank links from high-authority pages to link-starved pages, insert them into
the source pages and write a JSON report.

Running it twice is safe: links already present are never inserted again.

Examples:
  seolink-cli link
  seolink-cli link --root site/src/pages --analytics gsc-pages.csv
  seolink-cli link --dry-run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := GetEngine()
		if err := e.RequireRoot(); err != nil {
			return err
		}

		run := commands.NewRunLinksCommand(e.Pipeline, e.Reports)
		run.ReportLimit = e.Config.ReportLimit
		run.DryRun = linkDryRun

		result, err := run.Execute(context.Background())
		if err != nil {
			return err
		}

		printSummary(os.Stdout, result.Message, result.Report.Summary)
		printErrors(os.Stdout, result.Report.Errors)
		fmt.Printf("Report written to %s\n", e.Reports.Path())
		return nil
	},
}

func init() {
	linkCmd.Flags().BoolVar(&linkDryRun, "dry-run", false, "report what would change without writing pages")
	rootCmd.AddCommand(linkCmd)
}
