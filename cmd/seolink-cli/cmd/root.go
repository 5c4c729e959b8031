package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"seolink/internal/bootstrap"
	"seolink/internal/config"
)

var (
	configFile    string
	contentRoot   string
	analyticsPath string
	debug         bool
	engine        *bootstrap.Engine
)

var rootCmd = &cobra.Command{
	Use:   "seolink-cli",
	Short: "Internal linking for static content sites",
	Long: `seolink-cli finds link-starved pages in a content tree and links to them
from topically similar pages that already rank well in search.

Run "seolink-cli link" to insert links and write a JSON report. The suggest,
classify and starved commands only read.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		cfg, err := config.Load(config.LoadOptions{ConfigFile: configFile})
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if flags.Changed("root") {
			cfg.ContentRoot = contentRoot
		}
		if flags.Changed("analytics") {
			cfg.AnalyticsPath = analyticsPath
		}
		if flags.Changed("debug") {
			cfg.Debug = debug
		}

		engine, err = bootstrap.New(cfg, os.Stderr, "")
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&contentRoot, "root", "r", "", "content root holding the page sources (default src/pages)")
	flags.StringVarP(&analyticsPath, "analytics", "a", "", "search-console pages CSV export")
	flags.StringVarP(&configFile, "config", "c", "", "YAML config file (default ./seolink.yaml)")
	flags.BoolVar(&debug, "debug", false, "log at debug level")
}

// GetEngine returns the initialized engine
func GetEngine() *bootstrap.Engine {
	return engine
}
