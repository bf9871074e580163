package cmd

import (
	"github.com/PolarWolf314/titan/internal/ui"
	"github.com/PolarWolf314/titan/internal/utils"
	"github.com/PolarWolf314/titan/internal/workflows"
	"github.com/spf13/cobra"
)

var unsealCmd = &cobra.Command{
	Use:     "unseal [path]",
	Aliases: []string{"decrypt"},
	Short:   "Decrypt a database and make it the active one",
	Long: `Decrypts the database at the given path (or the configured default) in place
and records it as the active database. Only one database can be unsealed at a
time.

The passphrase is read from the terminal, or from TITAN_PASSPHRASE if set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting unseal command")

		path, err := storePathArg(args)
		if err != nil {
			return err
		}

		passphrase, err := utils.ReadPassphrase("Passphrase: ")
		if err != nil {
			return fail(nil, err)
		}
		defer utils.ZeroBytes(passphrase)

		spinner, cleanup := startSpinner("Unsealing database...", verbose)
		defer cleanup()

		Logger.Debugf("Unsealing %s", path)
		result, err := workflows.Unseal(cmd.Context(), workflows.UnsealOptions{
			Env:        newEnv(),
			Path:       path,
			Passphrase: passphrase,
		})
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Database unsealed at %s", result.Path)

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Unsealed " + ui.Path.Sprint(result.Path) + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("titan seal") + " when you are done"
		return nil
	},
}
