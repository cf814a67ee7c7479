package cmd

import (
	"github.com/spf13/cobra"

	"devfolio/internal/application/commands"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the explorer tree",
	Long: `Print every directory and document in explorer order.

Documents are followed by the command that opens them in the terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		nodes, err := commands.NewBuildTreeCommand(GetContent().Store).Execute(cmd.Context())
		if err != nil {
			return err
		}
		return commands.WriteTree(cmd.OutOrStdout(), nodes)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
