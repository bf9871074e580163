// Package logger provides leveled, colored logging for Titan CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags:
//
//   - --verbose: Shows info messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only warnings and errors are shown.
//
// # Log Methods
//
//	Logger.Infof()          // Shown with --verbose or --debug
//	Logger.Debugf()         // Shown only with --debug
//	Logger.Warnf()          // Always shown
//	Logger.WarnfAlways()    // Always shown, even when output is redirected
//	Logger.Errorf()         // Always shown
//	Logger.ErrorfAndReturn() // Logs and returns the formatted error
//
// The root command creates a logger in its PersistentPreRun and every
// subcommand uses it. Passphrases and entry passwords must never be logged.
package logger
