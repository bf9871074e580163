package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/titan/internal/audit"
	"github.com/PolarWolf314/titan/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logLimit     int
	logReverse   bool
	logOperation string
	logPath      string
	logJSON      bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logOperation, "operation", "", "filter by operation type (comma-separated)")
	logCmd.Flags().StringVar(&logPath, "path", "", "filter by database path")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the audit log",
	Long: `Displays the audit log of init, seal and unseal operations.

Examples:
  titan log                       # View full log
  titan log -n 10                 # Last 10 entries
  titan log --reverse             # Most recent first
  titan log --operation unseal    # Filter by operation
  titan log --json                # JSON output`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")

		result, err := workflows.Log(cmd.Context(), workflows.LogOptions{
			Limit:      logLimit,
			Reverse:    logReverse,
			Operations: logOperation,
			Path:       logPath,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read audit log: %v", err)
		}
		Logger.Debugf("Parsed %d entries from %s", result.TotalEntriesBeforeFilter, audit.LogPath())

		if len(result.Entries) == 0 {
			if result.TotalEntriesBeforeFilter == 0 {
				fmt.Println("No audit log entries found.")
			} else {
				fmt.Println("No audit log entries found matching the filters.")
			}
			return nil
		}

		if logJSON {
			data, err := json.MarshalIndent(result.Entries, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal entries to JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		for _, e := range result.Entries {
			fmt.Printf("%-19s  %-12s  %-7s  %s\n", workflows.FormatDateTime(e.Timestamp), e.User, e.Operation, e.Path)
		}
		return nil
	},
}
