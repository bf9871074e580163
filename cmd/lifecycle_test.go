package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/titan/internal/envelope"
	"github.com/PolarWolf314/titan/internal/utils"
)

// TestLifecycle walks a database through init, add, seal and unseal.
func TestLifecycle(t *testing.T) {
	tempDir := setupTestEnvironment(t)
	dbPath := filepath.Join(tempDir, "vault.db")

	output := mustRun(t, "init", dbPath)
	if !strings.Contains(output, "Created database") {
		t.Errorf("Expected creation message, got: %s", output)
	}

	setInput("mail", "alice", "https://mail.example.com", "work", "hunter2")
	output = mustRun(t, "add")
	if !strings.Contains(output, "Added entry 'mail'") {
		t.Errorf("Expected add message, got: %s", output)
	}

	output = mustRun(t, "list")
	if !strings.Contains(output, "Title: mail") || !strings.Contains(output, "Password: **********") {
		t.Errorf("Expected masked entry in list, got: %s", output)
	}
	if strings.Contains(output, "hunter2") {
		t.Errorf("Password should be masked, got: %s", output)
	}

	output = mustRun(t, "show", "1", "--show-password")
	if !strings.Contains(output, "Password: hunter2") {
		t.Errorf("Expected visible password, got: %s", output)
	}

	output = mustRun(t, "seal")
	if !strings.Contains(output, "Sealed") {
		t.Errorf("Expected seal message, got: %s", output)
	}
	sealed, err := envelope.IsEnvelope(dbPath)
	if err != nil || !sealed {
		t.Fatalf("Expected %s to be sealed (err=%v)", dbPath, err)
	}

	output = mustRun(t, "status")
	if !strings.Contains(output, "No database is unsealed") {
		t.Errorf("Expected sealed status, got: %s", output)
	}

	output = mustRun(t, "decrypt", dbPath)
	if !strings.Contains(output, "Unsealed") {
		t.Errorf("Expected unseal message, got: %s", output)
	}

	output = mustRun(t, "find", "MAI")
	if !strings.Contains(output, "Title: mail") {
		t.Errorf("Expected find to match, got: %s", output)
	}

	output = mustRun(t, "status")
	if !strings.Contains(output, "Unsealed: "+dbPath) || !strings.Contains(output, "1 entries") {
		t.Errorf("Expected unsealed status, got: %s", output)
	}

	output = mustRun(t, "log")
	for _, op := range []string{"init", "seal", "unseal"} {
		if !strings.Contains(output, op) {
			t.Errorf("Expected %q in audit log output: %s", op, output)
		}
	}
}

func TestUnseal_WrongPassphrase(t *testing.T) {
	tempDir := setupTestEnvironment(t)
	dbPath := filepath.Join(tempDir, "vault.db")

	mustRun(t, "init", dbPath)
	mustRun(t, "seal")
	before, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("Failed to read database: %v", err)
	}

	t.Setenv(utils.PassphraseEnvVar, "wrong")
	output, err := runCommand(t, "unseal", dbPath)
	if !errors.Is(err, ErrReported) {
		t.Errorf("Expected ErrReported, got %v", err)
	}
	if !strings.Contains(output, "Wrong passphrase or corrupted database") {
		t.Errorf("Expected authentication failure message, got: %s", output)
	}

	after, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("Failed to read database: %v", err)
	}
	if string(before) != string(after) {
		t.Error("A failed unseal must leave the file untouched")
	}
}

func TestInit_WhileActive(t *testing.T) {
	tempDir := setupTestEnvironment(t)

	mustRun(t, "init", filepath.Join(tempDir, "a.db"))

	output, err := runCommand(t, "init", filepath.Join(tempDir, "b.db"))
	if !errors.Is(err, ErrReported) {
		t.Errorf("Expected ErrReported, got %v", err)
	}
	if !strings.Contains(output, "already unsealed") || !strings.Contains(output, "`titan seal`") {
		t.Errorf("Expected active database message, got: %s", output)
	}
}

func TestInit_UsesConfiguredDefault(t *testing.T) {
	tempDir := setupTestEnvironment(t)
	dbPath := filepath.Join(tempDir, "default.db")

	mustRun(t, "config", "set", "store.default_path", dbPath)
	mustRun(t, "init")

	if exists, _ := utils.FileExists(dbPath); !exists {
		t.Errorf("Expected database at configured default %s", dbPath)
	}
}

func TestInit_NoPath(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCommand(t, "init")
	if !errors.Is(err, ErrReported) {
		t.Errorf("Expected ErrReported, got %v", err)
	}
	if !strings.Contains(output, "No database path given") {
		t.Errorf("Expected missing path message, got: %s", output)
	}
}

func TestSeal_NothingActive(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCommand(t, "seal")
	if !errors.Is(err, ErrReported) {
		t.Errorf("Expected ErrReported, got %v", err)
	}
	if !strings.Contains(output, "No unsealed database found") {
		t.Errorf("Expected no active database message, got: %s", output)
	}
}

func TestStatus_RepairMissingFile(t *testing.T) {
	tempDir := setupTestEnvironment(t)
	dbPath := filepath.Join(tempDir, "vault.db")

	mustRun(t, "init", dbPath)
	if err := os.Remove(dbPath); err != nil {
		t.Fatalf("Failed to remove database: %v", err)
	}

	output := mustRun(t, "status")
	if !strings.Contains(output, "does not exist") {
		t.Errorf("Expected missing file warning, got: %s", output)
	}

	output = mustRun(t, "status", "--repair")
	if !strings.Contains(output, "Cleared stale pointer") {
		t.Errorf("Expected repair message, got: %s", output)
	}

	output = mustRun(t, "status", "--json")
	if !strings.Contains(output, `"state": "sealed"`) {
		t.Errorf("Expected sealed JSON status, got: %s", output)
	}
}
