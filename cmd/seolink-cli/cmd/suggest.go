package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seolink/internal/application/commands"
	"seolink/internal/domain"
)

var suggestSource string

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Print ranked link suggestions without writing",
	Long: `Rank links from high-authority pages to link-starved pages and print them
grouped by the page that would receive them. Nothing is written.

Examples:
  seolink-cli suggest
  seolink-cli suggest --source inventory-guide`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := GetEngine()
		if err := e.RequireRoot(); err != nil {
			return err
		}

		result, err := commands.NewSuggestCommand(e.Pipeline).Execute(context.Background())
		if err != nil {
			return err
		}

		plans := result.Plans
		if suggestSource != "" {
			source := domain.PerformanceKey(suggestSource)
			plans = nil
			for _, plan := range result.Plans {
				if plan.Source.URL == source {
					plans = append(plans, plan)
				}
			}
		}

		if len(plans) == 0 {
			fmt.Println("No suggestions")
			return nil
		}

		fmt.Println(result.Message)
		printPlans(os.Stdout, plans)
		return nil
	},
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestSource, "source", "s", "", "only show suggestions for this source page url")
	rootCmd.AddCommand(suggestCmd)
}
