package cmd

import (
	"bufio"
	"fmt"

	"github.com/PolarWolf314/titan/internal/store"
	"github.com/PolarWolf314/titan/internal/ui"
	"github.com/PolarWolf314/titan/internal/workflows"
	"github.com/spf13/cobra"
)

var addGenerateLength int

func init() {
	addCmd.Flags().IntVarP(&addGenerateLength, "generate", "g", 0, "generate a password of this length when none is entered")
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new entry to the active database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting add command")

		entry, err := promptNewEntry(bufio.NewReader(inputReader))
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read entry: %v", err)
		}

		result, err := workflows.AddEntry(cmd.Context(), workflows.AddEntryOptions{
			Env:            newEnv(),
			Entry:          entry,
			GenerateLength: addGenerateLength,
		})
		if err != nil {
			return fail(nil, err)
		}
		Logger.Infof("Added entry %d", result.ID)

		msg := ui.Success.Sprint("✓") + " Added entry " + ui.Highlight.Sprint(entry.Title) + " " + ui.Muted.Sprintf("id %d", result.ID)
		if result.GeneratedPassword != "" {
			if showPassword {
				msg += "\nGenerated password: " + result.GeneratedPassword
			} else {
				msg += "\n" + ui.Info.Sprint("→") + " A password was generated. Run " +
					ui.Code.Sprintf("titan show -s %d", result.ID) + " to see it"
			}
		}
		fmt.Println(msg)
		return nil
	},
}

func promptNewEntry(r *bufio.Reader) (store.Entry, error) {
	var (
		e   store.Entry
		err error
	)

	if e.Title, err = readField(r, "Title: "); err != nil {
		return e, err
	}
	if e.User, err = readField(r, "Username: "); err != nil {
		return e, err
	}
	if e.URL, err = readField(r, "Url: "); err != nil {
		return e, err
	}
	if e.Notes, err = readField(r, "Notes: "); err != nil {
		return e, err
	}
	if e.Password, err = readHiddenField(r, "Password: "); err != nil {
		return e, err
	}

	return e, nil
}
