package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"seolink/internal/application/commands"
)

var indexDB string

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Store the link graph in a SQLite snapshot",
	Long: `Index and classify every page, then replace the stored link graph with the
result. The snapshot lives under $XDG_DATA_HOME/seolink unless --db or
SEOLINK_DB names a file. It is only read by "seolink-cli starved".

Examples:
  seolink-cli index
  seolink-cli index --db /tmp/site.db`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := GetEngine()
		if err := e.RequireRoot(); err != nil {
			return err
		}
		if indexDB != "" {
			e.Config.DBPath = indexDB
		}

		graph, err := e.OpenGraph()
		if err != nil {
			return err
		}
		defer graph.Close()

		result, err := commands.NewSnapshotCommand(e.Pipeline, graph).Execute(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(result.Message)
		fmt.Printf("Snapshot %s at %s\n", result.Run.RunID, graph.Path())
		return nil
	},
}

func init() {
	indexCmd.Flags().StringVar(&indexDB, "db", "", "snapshot database file")
	rootCmd.AddCommand(indexCmd)
}
