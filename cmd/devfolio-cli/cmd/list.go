package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"devfolio/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list [prefix]",
	Short: "List documents",
	Long: `List documents sorted by id, optionally under an id prefix.

Examples:
  devfolio-cli list
  devfolio-cli list works`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}

		docs, err := commands.NewListDocumentsCommand(GetContent().Store, prefix).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, d := range docs {
			fmt.Fprintf(out, "%-30s %-24s [%s]\n", d.Key, d.Filename, d.Lang.Badge())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
