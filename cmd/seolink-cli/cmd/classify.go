package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seolink/internal/application/commands"
)

var classifyBucket string

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Print authority buckets",
	Long: `Bucket every page as high-authority, low-authority and link-starved.
A page can be high-authority and link-starved at the same time.

Examples:
  seolink-cli classify
  seolink-cli classify --bucket starved`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := GetEngine()
		if err := e.RequireRoot(); err != nil {
			return err
		}

		result, err := commands.NewClassifyCommand(e.Pipeline).Execute(context.Background())
		if err != nil {
			return err
		}

		c, idx := result.Classification, result.Index
		fmt.Println(result.Message)
		switch classifyBucket {
		case "":
			printPages(os.Stdout, "high-authority", c.HighAuthority, idx)
			printPages(os.Stdout, "low-authority", c.LowAuthority, idx)
			printPages(os.Stdout, "link-starved", c.LinkStarved, idx)
		case "high":
			printPages(os.Stdout, "high-authority", c.HighAuthority, idx)
		case "low":
			printPages(os.Stdout, "low-authority", c.LowAuthority, idx)
		case "starved":
			printPages(os.Stdout, "link-starved", c.LinkStarved, idx)
		default:
			return fmt.Errorf("invalid bucket: %s (expected high, low, or starved)", classifyBucket)
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyBucket, "bucket", "b", "", "only list one bucket: high, low or starved")
	rootCmd.AddCommand(classifyCmd)
}
