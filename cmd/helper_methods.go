package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	terrors "github.com/PolarWolf314/titan/internal/errors"
	"github.com/PolarWolf314/titan/internal/ui"
	"github.com/PolarWolf314/titan/internal/utils"
	"github.com/briandowns/spinner"
)

// ErrReported is returned by commands that already printed a failure message.
var ErrReported = errors.New("error already reported")

// inputReader supplies interactive field input. Tests replace it.
var inputReader io.Reader = os.Stdin

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// failureMessage turns a workflow error into the message shown to the user.
// known is false for errors without a dedicated message.
func failureMessage(err error) (msg string, known bool) {
	cross := ui.Error.Sprint("✗")
	arrow := ui.Info.Sprint("→")

	switch {
	case errors.Is(err, terrors.ErrAuthenticationFailed):
		// Shared with corrupted envelopes.
		return cross + " Wrong passphrase or corrupted database", true
	case errors.Is(err, terrors.ErrDatabaseActive):
		return cross + " Existing database is already unsealed\n" +
			arrow + " Run " + ui.Code.Sprint("titan seal") + " first", true
	case errors.Is(err, terrors.ErrNoActiveDatabase):
		return cross + " No unsealed database found\n" +
			arrow + " Run " + ui.Code.Sprint("titan unseal <path>") + " or " + ui.Code.Sprint("titan init <path>") + " first", true
	case errors.Is(err, terrors.ErrStoreExists):
		return cross + " A file already exists at that path", true
	case errors.Is(err, terrors.ErrAlreadySealed):
		return cross + " The active database is already sealed\n" +
			arrow + " Run " + ui.Code.Sprint("titan status --repair") + " to clear the stale pointer", true
	case errors.Is(err, terrors.ErrCorruptDatabase):
		return cross + " Corrupted database. Abort.", true
	case errors.Is(err, terrors.ErrEntryNotFound):
		return cross + " No entry with that id was found", true
	case errors.Is(err, terrors.ErrEmptyPassphrase),
		errors.Is(err, terrors.ErrPassphraseMismatch),
		errors.Is(err, terrors.ErrInvalidLength):
		return cross + " " + err.Error(), true
	case errors.Is(err, terrors.ErrEntropyUnavailable):
		return cross + " Secure random source unavailable", true
	case errors.Is(err, terrors.ErrIO):
		return cross + " File operation failed\n" + ui.Error.Sprint("Error: ") + err.Error(), true
	}
	return "", false
}

// fail reports err through the spinner's final message (or stdout when s is
// nil) and returns ErrReported. Unknown errors are returned as they are.
func fail(s *spinner.Spinner, err error) error {
	msg, known := failureMessage(err)
	if !known {
		return Logger.ErrorfAndReturn("%v", err)
	}

	Logger.Debugf("Command failed: %v", err)
	if s != nil {
		s.FinalMSG = msg
	} else {
		fmt.Println(msg)
	}
	return ErrReported
}

// failf prints a one-off failure message and returns ErrReported.
func failf(format string, args ...any) error {
	fmt.Println(ui.Error.Sprint("✗") + " " + fmt.Sprintf(format, args...))
	return ErrReported
}

// parseID parses an entry id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, failf("Invalid entry id %s", ui.Highlight.Sprint(arg))
	}
	return id, nil
}

// storePathArg returns the path argument or the configured default.
func storePathArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if path := userConfig.DefaultStorePath(); path != "" {
		Logger.Infof("Using default database path %s", path)
		return path, nil
	}
	return "", failf("No database path given and no default configured\n%s Pass a path or run %s",
		ui.Info.Sprint("→"), ui.Code.Sprint("titan config set store.default_path <path>"))
}

// readField prompts for one line of entry input.
func readField(r *bufio.Reader, prompt string) (string, error) {
	return utils.ReadLine(r, os.Stdout, prompt)
}

// readHiddenField prompts for an entry password. Input is hidden when it
// comes from a terminal.
func readHiddenField(r *bufio.Reader, prompt string) (string, error) {
	if inputReader == io.Reader(os.Stdin) && utils.IsTerminal() {
		secret, err := utils.ReadSecret(prompt)
		if err != nil {
			return "", err
		}
		defer utils.ZeroBytes(secret)
		return string(secret), nil
	}
	return readField(r, prompt)
}
