package cmd

import (
	"os"

	"github.com/PolarWolf314/titan/internal/ui"
	"github.com/PolarWolf314/titan/internal/workflows"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one entry of the active database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting show command")

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		entry, err := workflows.GetEntry(cmd.Context(), workflows.GetEntryOptions{Env: newEnv(), ID: id})
		if err != nil {
			return fail(nil, err)
		}

		ui.RenderEntry(os.Stdout, *entry, showPassword)
		return nil
	},
}
