package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/titan/internal/configs"
	"github.com/PolarWolf314/titan/internal/ui"
	"github.com/spf13/cobra"
)

var configShowJSON bool

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage titan configuration",
	Long:  `Shows and changes the user configuration stored in config.toml.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config show command")

		if configShowJSON {
			data, err := json.MarshalIndent(map[string]any{
				"config_path":           configs.TitanSettings.ConfigPath,
				"store.default_path":    userConfig.Store.DefaultPath,
				"display.show_password": userConfig.Display.ShowPassword,
				"registry.path":         userConfig.RegistryPath(),
				"audit_log":             configs.TitanSettings.AuditLogPath(),
			}, "", "  ")
			if err != nil {
				return Logger.ErrorfAndReturn("failed to marshal config: %v", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Println(ui.Muted.Sprint(configs.TitanSettings.ConfigPath))
		fmt.Printf("  %-22s %s\n", "store.default_path", orNone(userConfig.Store.DefaultPath))
		fmt.Printf("  %-22s %t\n", "display.show_password", userConfig.Display.ShowPassword)
		fmt.Printf("  %-22s %s\n", "registry.path", ui.Path.Sprint(userConfig.RegistryPath()))
		fmt.Printf("  %-22s %s\n", "audit log", ui.Path.Sprint(configs.TitanSettings.AuditLogPath()))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration value",
	Long: `Changes a configuration value. Valid keys:
  store.default_path       database used when a command is given no path
  display.show_password    print passwords in listings by default
  registry.path            location of the active database pointer`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting config set command")

		if err := userConfig.Set(args[0], args[1]); err != nil {
			return failf("%v", err)
		}
		if err := configs.SaveConfig(userConfig); err != nil {
			return Logger.ErrorfAndReturn("%v", err)
		}

		fmt.Println(ui.Success.Sprint("✓") + " Set " + ui.Highlight.Sprint(args[0]) + " to " + ui.Highlight.Sprint(args[1]))
		return nil
	},
}

func orNone(s string) string {
	if s == "" {
		return ui.Muted.Sprint("none")
	}
	return ui.Path.Sprint(s)
}
