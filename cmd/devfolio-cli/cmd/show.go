package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"devfolio/internal/adapters/markdown"
	"devfolio/internal/application/commands"
)

var (
	showRaw   bool
	showWidth int
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Render a document",
	Long: `Render a document the way the editor panel shows it.

The id may be given with or without the leading slash.

Examples:
  devfolio-cli show about
  devfolio-cli show /works/microbase --raw`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := commands.NewReadDocumentCommand(GetContent().Store, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showRaw {
			fmt.Fprint(out, doc.Content)
			return nil
		}
		fmt.Fprintln(out, doc.Path)
		fmt.Fprint(out, markdown.NewTermRenderer(cfg.Theme).Render(doc, showWidth))
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print the Markdown source")
	showCmd.Flags().IntVarP(&showWidth, "width", "w", 80, "wrap width")
	rootCmd.AddCommand(showCmd)
}
