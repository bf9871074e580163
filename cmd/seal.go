package cmd

import (
	terrors "github.com/PolarWolf314/titan/internal/errors"
	"github.com/PolarWolf314/titan/internal/registry"
	"github.com/PolarWolf314/titan/internal/ui"
	"github.com/PolarWolf314/titan/internal/utils"
	"github.com/PolarWolf314/titan/internal/workflows"
	"github.com/spf13/cobra"
)

var sealCmd = &cobra.Command{
	Use:     "seal",
	Aliases: []string{"encrypt"},
	Short:   "Encrypt the active database",
	Long: `Encrypts the active database in place with a passphrase. The passphrase is
asked for twice, or read from TITAN_PASSPHRASE if set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting seal command")
		env := newEnv()

		// Fail before prompting when nothing is unsealed.
		status, err := workflows.Status(cmd.Context(), workflows.StatusOptions{Env: env})
		if err != nil {
			return fail(nil, err)
		}
		if status.State == registry.Sealed {
			return fail(nil, terrors.ErrNoActiveDatabase)
		}
		Logger.Debugf("Active database: %s", status.Path)

		passphrase, err := utils.ReadPassphraseWithConfirm("Passphrase: ", "Confirm passphrase: ")
		if err != nil {
			return fail(nil, err)
		}
		defer utils.ZeroBytes(passphrase)

		spinner, cleanup := startSpinner("Sealing database...", verbose)
		defer cleanup()

		result, err := workflows.Seal(cmd.Context(), workflows.SealOptions{Env: env, Passphrase: passphrase})
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Database sealed at %s", result.Path)

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Sealed " + ui.Path.Sprint(result.Path)
		return nil
	},
}
