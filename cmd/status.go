package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/titan/internal/registry"
	"github.com/PolarWolf314/titan/internal/ui"
	"github.com/PolarWolf314/titan/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	statusJSONOutput bool
	statusRepair     bool
)

func init() {
	statusCmd.Flags().BoolVar(&statusJSONOutput, "json", false, "output in JSON format")
	statusCmd.Flags().BoolVar(&statusRepair, "repair", false, "clear a pointer to a missing or sealed file")
}

// statusJSON is the machine-readable form of a status result.
type statusJSON struct {
	State    string `json:"state"`
	Path     string `json:"path,omitempty"`
	Problem  string `json:"problem,omitempty"`
	Entries  int    `json:"entries"`
	Repaired bool   `json:"repaired,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a database is unsealed",
	Long: `Shows the active database, if any, and checks that the file on disk really is
an unsealed database.

Use --repair to clear the active pointer when its file is missing or already
sealed. Use --json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting status command")

		result, err := workflows.Status(cmd.Context(), workflows.StatusOptions{Env: newEnv(), Repair: statusRepair})
		if err != nil {
			return fail(nil, err)
		}

		if statusJSONOutput {
			return outputStatusJSON(result)
		}

		printStatus(result)
		return nil
	},
}

func outputStatusJSON(result *workflows.StatusResult) error {
	out := statusJSON{
		State:    result.State.String(),
		Path:     result.Path,
		Problem:  string(result.Problem),
		Entries:  result.Entries,
		Repaired: result.Repaired,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return Logger.ErrorfAndReturn("failed to marshal status: %v", err)
	}
	fmt.Println(string(data))
	return nil
}

func printStatus(result *workflows.StatusResult) {
	if result.Repaired {
		fmt.Println(ui.Success.Sprint("✓") + " Cleared stale pointer to " + ui.Path.Sprint(result.Path))
		return
	}

	if result.State == registry.Sealed {
		fmt.Println(ui.Info.Sprint("●") + " No database is unsealed")
		return
	}

	switch result.Problem {
	case workflows.ProblemNone:
		fmt.Printf("%s Unsealed: %s %s\n", ui.Warning.Sprint("●"), ui.Path.Sprint(result.Path),
			ui.Muted.Sprintf("%d entries", result.Entries))
		fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("titan seal") + " when you are done")
	case workflows.ProblemMissing:
		Logger.WarnfAlways("The active database %s does not exist", result.Path)
		fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("titan status --repair") + " to clear it")
	case workflows.ProblemSealed:
		Logger.WarnfAlways("The active database %s is already sealed", result.Path)
		fmt.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("titan status --repair") + " to clear it")
	case workflows.ProblemCorrupt:
		Logger.WarnfAlways("The active database %s is not a valid database", result.Path)
	}
}
