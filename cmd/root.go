package cmd

import (
	"context"

	"github.com/PolarWolf314/titan/internal/configs"
	logger "github.com/PolarWolf314/titan/internal/logging"
	"github.com/PolarWolf314/titan/internal/workflows"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose      bool
	debug        bool
	showPassword bool
	Logger       logger.Logger
	userConfig   *configs.Config

	RootCmd = &cobra.Command{
		Use:   "titan",
		Short: "Titan - a command line password manager.",
		Long: `Titan keeps passwords in a single database file that is encrypted with a
passphrase when not in use.

At most one database is unsealed at a time. Unseal it, work with its entries,
then seal it again:

  titan unseal ~/passwords.db
  titan list
  titan seal

Run 'titan help <command>' for more details on a specific command.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing titan with verbose=%t, debug=%t", verbose, debug)

			config, err := configs.LoadConfig()
			if err != nil {
				Logger.Warnf("Ignoring config file: %v", err)
				config = &configs.Config{}
			}
			userConfig = config

			if !cmd.Flags().Changed("show-password") {
				showPassword = userConfig.Display.ShowPassword
			}
		},
	}
)

// newEnv builds the environment every workflow runs in.
var newEnv = func() workflows.Env {
	return workflows.Env{RegistryPath: userConfig.RegistryPath()}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().BoolVarP(&showPassword, "show-password", "s", false, "print passwords in listings")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(unsealCmd)
	RootCmd.AddCommand(sealCmd)
	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(editCmd)
	RootCmd.AddCommand(removeCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(findCmd)
	RootCmd.AddCommand(generatePasswordCmd)
	RootCmd.AddCommand(logCmd)
	RootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	showPassword = false
	userConfig = nil
	resetCobraFlagState(RootCmd)
}

// resetCobraFlagState restores every flag of c and its subcommands to its
// default to prevent test pollution.
func resetCobraFlagState(c *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetCobraFlagState(sub)
	}
}
