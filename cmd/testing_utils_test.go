package cmd

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/titan/internal/configs"
	"github.com/PolarWolf314/titan/internal/envelope"
	"github.com/PolarWolf314/titan/internal/utils"
	"github.com/PolarWolf314/titan/internal/workflows"
)

const testPassphrase = "correct horse battery staple"

// setupTestEnvironment points every titan location at a temp directory and
// supplies the passphrase through the environment. It returns the temp dir.
func setupTestEnvironment(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	originalSettings := configs.TitanSettings
	originalEnv := newEnv
	originalInput := inputReader
	t.Cleanup(func() {
		configs.TitanSettings = originalSettings
		newEnv = originalEnv
		inputReader = originalInput
		ResetGlobalState()
	})

	configs.TitanSettings = &configs.Settings{
		RegistryPath: filepath.Join(tempDir, "titan.lock"),
		ConfigPath:   filepath.Join(tempDir, "config", "config.toml"),
		DataPath:     filepath.Join(tempDir, "data"),
	}
	t.Setenv(configs.RegistryEnvVar, "")
	t.Setenv(utils.PassphraseEnvVar, testPassphrase)
	t.Setenv("NO_COLOR", "1")

	newEnv = func() workflows.Env {
		return workflows.Env{
			RegistryPath: userConfig.RegistryPath(),
			Codec:        &envelope.Codec{Iterations: 100},
		}
	}

	return tempDir
}

// setInput feeds lines to the interactive prompts of the next command.
func setInput(lines ...string) {
	inputReader = strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// runCommand executes the root command with args and returns everything it
// printed.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()
	RootCmd.SetArgs(args)
	return captureOutput(func() error {
		return RootCmd.ExecuteContext(context.Background())
	})
}

// mustRun is runCommand that fails the test on error.
func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	output, err := runCommand(t, args...)
	if err != nil {
		t.Fatalf("titan %s failed: %v\nOutput: %s", strings.Join(args, " "), err, output)
	}
	return output
}

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	copyInto := func(r io.Reader) {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r); err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}
	go copyInto(stdoutReader)
	go copyInto(stderrReader)

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}
