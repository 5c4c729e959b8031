package cmd

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"seolink/internal/adapters/editor"
	"seolink/internal/adapters/tui"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Pick suggestions interactively before writing them",
	Long: `Open a terminal UI over the ranked suggestions. Toggle the ones to keep,
copy a link element to the clipboard or open the page in $EDITOR.
Pages are written only after pressing "a" and confirming.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e := GetEngine()
		if err := e.RequireRoot(); err != nil {
			return err
		}

		// Log lines would tear the alt screen
		e.Pipeline.Logger.SetOutput(io.Discard)

		app := tui.NewApp(e.Pipeline, e.Store.Root(), editor.NewOpener())
		_, err := tea.NewProgram(app, tea.WithAltScreen()).Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}
