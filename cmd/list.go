package cmd

import (
	"fmt"
	"iter"
	"os"

	"github.com/PolarWolf314/titan/internal/store"
	"github.com/PolarWolf314/titan/internal/ui"
	"github.com/PolarWolf314/titan/internal/workflows"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all entries of the active database",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting list command")
		return renderEntries(workflows.ListEntries(cmd.Context(), workflows.ListEntriesOptions{Env: newEnv()}), "No entries")
	},
}

var findCmd = &cobra.Command{
	Use:   "find <pattern>",
	Short: "List entries whose title contains the pattern",
	Long:  `Lists entries whose title contains the pattern. Matching ignores case.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting find command")
		seq := workflows.FindEntries(cmd.Context(), workflows.FindEntriesOptions{Env: newEnv(), Pattern: args[0]})
		return renderEntries(seq, "No entries match "+ui.Highlight.Sprint(args[0]))
	},
}

func renderEntries(seq iter.Seq2[store.Entry, error], emptyMsg string) error {
	n, err := ui.RenderEntries(os.Stdout, seq, showPassword)
	if err != nil {
		return fail(nil, err)
	}
	Logger.Debugf("Rendered %d entries", n)

	if n == 0 {
		fmt.Println(ui.Muted.Sprint(emptyMsg))
	}
	return nil
}
