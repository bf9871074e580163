package cmd

import (
	"bufio"
	"fmt"

	"github.com/PolarWolf314/titan/internal/store"
	"github.com/PolarWolf314/titan/internal/ui"
	"github.com/PolarWolf314/titan/internal/workflows"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an entry in the active database",
	Long:  `Prompts for new values for each field of the entry. Leave a field empty to keep its current value.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting edit command")

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		env := newEnv()
		current, err := workflows.GetEntry(cmd.Context(), workflows.GetEntryOptions{Env: env, ID: id})
		if err != nil {
			return fail(nil, err)
		}

		changes, err := promptChanges(bufio.NewReader(inputReader), current)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read entry: %v", err)
		}

		updated, err := workflows.EditEntry(cmd.Context(), workflows.EditEntryOptions{Env: env, ID: id, Changes: changes})
		if err != nil {
			return fail(nil, err)
		}
		Logger.Infof("Updated entry %d", updated.ID)

		fmt.Println(ui.Success.Sprint("✓") + " Updated entry " + ui.Highlight.Sprint(updated.Title))
		return nil
	},
}

func promptChanges(r *bufio.Reader, current *store.Entry) (store.Entry, error) {
	var (
		e   store.Entry
		err error
	)

	fmt.Printf("Current title %s\n", current.Title)
	if e.Title, err = readField(r, "New title: "); err != nil {
		return e, err
	}
	fmt.Printf("Current username %s\n", current.User)
	if e.User, err = readField(r, "New username: "); err != nil {
		return e, err
	}
	fmt.Printf("Current url %s\n", current.URL)
	if e.URL, err = readField(r, "New url: "); err != nil {
		return e, err
	}
	fmt.Printf("Current notes %s\n", current.Notes)
	if e.Notes, err = readField(r, "New notes: "); err != nil {
		return e, err
	}
	if showPassword {
		fmt.Printf("Current password %s\n", current.Password)
	}
	if e.Password, err = readHiddenField(r, "New password: "); err != nil {
		return e, err
	}

	return e, nil
}
