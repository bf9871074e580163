package utils

import (
	"bytes"
	"fmt"
	"os"
	"runtime"

	terrors "github.com/PolarWolf314/titan/internal/errors"
	"golang.org/x/term"
)

// PassphraseEnvVar supplies the passphrase non-interactively.
const PassphraseEnvVar = "TITAN_PASSPHRASE"

// ReadPassphrase prompts for a passphrase without echoing input. The
// environment variable takes precedence. When stdin is not a terminal the
// controlling TTY is used instead.
func ReadPassphrase(prompt string) ([]byte, error) {
	if env, ok := os.LookupEnv(PassphraseEnvVar); ok {
		if env == "" {
			return nil, terrors.ErrEmptyPassphrase
		}
		return []byte(env), nil
	}

	var (
		passphrase []byte
		err        error
	)
	if IsTerminal() {
		passphrase, err = readPassword(int(os.Stdin.Fd()), prompt)
	} else {
		passphrase, err = ReadPassphraseFromTTY(prompt)
	}
	if err != nil {
		return nil, err
	}

	if len(passphrase) == 0 {
		return nil, terrors.ErrEmptyPassphrase
	}
	return passphrase, nil
}

// ReadSecret reads a hidden value from the terminal. Unlike ReadPassphrase
// it ignores the environment and accepts empty input.
func ReadSecret(prompt string) ([]byte, error) {
	if IsTerminal() {
		return readPassword(int(os.Stdin.Fd()), prompt)
	}
	return ReadPassphraseFromTTY(prompt)
}

// ReadPassphraseWithConfirm reads a passphrase twice and fails with
// ErrPassphraseMismatch when the two differ. The environment variable
// skips the confirmation.
func ReadPassphraseWithConfirm(prompt, confirmPrompt string) ([]byte, error) {
	passphrase, err := ReadPassphrase(prompt)
	if err != nil {
		return nil, err
	}
	if _, ok := os.LookupEnv(PassphraseEnvVar); ok {
		return passphrase, nil
	}

	confirm, err := ReadPassphrase(confirmPrompt)
	if err != nil {
		ZeroBytes(passphrase)
		return nil, err
	}
	defer ZeroBytes(confirm)

	if !bytes.Equal(passphrase, confirm) {
		ZeroBytes(passphrase)
		return nil, terrors.ErrPassphraseMismatch
	}

	return passphrase, nil
}

// ReadPassphraseFromTTY prompts the user for a passphrase from /dev/tty (or CON on Windows).
// This is useful when stdin is being used for other input.
func ReadPassphraseFromTTY(prompt string) ([]byte, error) {
	ttyPath := "/dev/tty"
	if runtime.GOOS == "windows" {
		ttyPath = "CON"
	}

	tty, err := os.Open(ttyPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s for passphrase input: %w", ttyPath, err)
	}
	defer tty.Close()

	fd := int(tty.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s is not a terminal", ttyPath)
	}

	return readPassword(fd, prompt)
}

func readPassword(fd int, prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return passphrase, nil
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ZeroBytes overwrites b with zeros.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
