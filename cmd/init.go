package cmd

import (
	"github.com/PolarWolf314/titan/internal/ui"
	"github.com/PolarWolf314/titan/internal/workflows"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a new database and make it the active one",
	Long: `Creates a new, empty password database at the given path (or the configured
default) and records it as the active database. The new database is not
encrypted until you run 'titan seal'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")

		path, err := storePathArg(args)
		if err != nil {
			return err
		}

		spinner, cleanup := startSpinner("Creating database...", verbose)
		defer cleanup()

		Logger.Debugf("Creating database at %s", path)
		result, err := workflows.CreateNew(cmd.Context(), workflows.CreateOptions{Env: newEnv(), Path: path})
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Database created at %s", result.Path)

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Created database " + ui.Path.Sprint(result.Path) + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("titan add") + " to add entries, then " +
			ui.Code.Sprint("titan seal") + " to encrypt it"
		return nil
	},
}
