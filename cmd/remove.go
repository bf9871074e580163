package cmd

import (
	"errors"
	"fmt"

	terrors "github.com/PolarWolf314/titan/internal/errors"
	"github.com/PolarWolf314/titan/internal/ui"
	"github.com/PolarWolf314/titan/internal/workflows"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Remove an entry from the active database",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting remove command")

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		err = workflows.RemoveEntry(cmd.Context(), workflows.RemoveEntryOptions{Env: newEnv(), ID: id})
		if errors.Is(err, terrors.ErrEntryNotFound) {
			return failf("No entry with id %d was found", id)
		}
		if err != nil {
			return fail(nil, err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Entry was deleted from the database")
		return nil
	},
}
