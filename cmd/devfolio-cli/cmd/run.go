package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"devfolio/internal/application/terminal"
	"devfolio/internal/application/workspace"
)

var runWait bool

var runCmd = &cobra.Command{
	Use:   "run <command>...",
	Short: "Run terminal commands",
	Long: `Feed commands to the shell terminal and print its scrollback.

Each argument is one submitted line. Document commands open their document
in a headless workspace; the resulting tabs are listed at the end.

Examples:
  devfolio-cli run /help
  devfolio-cli run works/microbase /close-all about`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := GetContent().Store
		ws := workspace.New(store,
			workspace.WithLogger(logger),
			workspace.WithProfileID(cfg.ProfileID),
		)
		engine := terminal.NewEngine(store, ws,
			terminal.WithDelay(cfg.ImportDelay),
			terminal.WithLogger(logger),
		)

		for _, line := range args {
			res := engine.Execute(line)
			if res.Open == nil {
				continue
			}
			if runWait {
				time.Sleep(res.Open.Delay)
			}
			engine.Resolve(*res.Open)
		}

		out := cmd.OutOrStdout()
		writeHistory(out, engine.History())
		fmt.Fprintf(out, "tabs: %v active: %s\n", ws.Tabs(), ws.Location())
		return nil
	},
}

func writeHistory(out io.Writer, entries []terminal.Entry) {
	for _, e := range entries {
		switch e.Kind {
		case terminal.EntryCommand:
			fmt.Fprintf(out, ">>> %s\n", e.Text)
		case terminal.EntryError:
			fmt.Fprintf(out, "! %s\n", e.Text)
		default:
			fmt.Fprintln(out, e.Text)
		}
	}
}

func init() {
	runCmd.Flags().BoolVar(&runWait, "wait", false, "honour the import delay between commands")
	rootCmd.AddCommand(runCmd)
}
