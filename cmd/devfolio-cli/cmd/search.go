package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"devfolio/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search documents",
	Long: `Search documents by id, filename, or content.

Results are ranked by relevance using fuzzy matching.

Examples:
  devfolio-cli search microbase
  devfolio-cli search "distributed systems"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := commands.NewSearchCommand(GetContent().Store, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No results found")
			return nil
		}

		for _, r := range results {
			fmt.Fprintf(out, "%s %s\n", r.Document.Key, r.Document.Filename)
			if r.MatchedText != "" {
				fmt.Fprintf(out, "    %s\n", r.MatchedText)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
