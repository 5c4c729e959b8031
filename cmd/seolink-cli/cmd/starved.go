package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"seolink/internal/adapters/sqlite"
	"seolink/internal/application/commands"
)

var (
	starvedLimit int
	starvedDB    string
)

var starvedCmd = &cobra.Command{
	Use:   "starved",
	Short: "List link-starved pages from the last snapshot",
	Long: `List the link-starved pages stored by "seolink-cli index", fewest incoming
links first. Run index again to refresh the snapshot.

Examples:
  seolink-cli starved
  seolink-cli starved --limit 20`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := GetEngine()
		if starvedDB != "" {
			e.Config.DBPath = starvedDB
		}

		graph, err := e.QueryGraph()
		if errors.Is(err, sqlite.ErrNoSnapshot) {
			fmt.Println(`No snapshot yet: run "seolink-cli index" first`)
			return nil
		}
		if err != nil {
			return err
		}
		defer graph.Close()

		runID, err := graph.LastRunID()
		if err != nil {
			return fmt.Errorf("failed to read snapshot: %w", err)
		}
		if runID == "" {
			fmt.Println(`No snapshot yet: run "seolink-cli index" first`)
			return nil
		}

		pages, err := commands.NewStarvedCommand(graph, starvedLimit).Execute(context.Background())
		if err != nil {
			return err
		}

		if len(pages) == 0 {
			fmt.Println("No link-starved pages")
			return nil
		}
		for _, p := range pages {
			fmt.Printf("/%s  %d incoming  %s  %s\n", p.URL, p.Incoming, mutedStyle.Render(p.SourcePath), joinKeywords(p.Keywords))
		}
		return nil
	},
}

func init() {
	starvedCmd.Flags().IntVarP(&starvedLimit, "limit", "n", 0, "maximum number of pages (0 for all)")
	starvedCmd.Flags().StringVar(&starvedDB, "db", "", "snapshot database file")
	rootCmd.AddCommand(starvedCmd)
}
