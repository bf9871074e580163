package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PolarWolf314/titan/internal/configs"
)

func useTempDataPath(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	original := configs.TitanSettings
	configs.TitanSettings = &configs.Settings{DataPath: filepath.Join(dir, "titan")}
	t.Cleanup(func() { configs.TitanSettings = original })

	return configs.TitanSettings.AuditLogPath()
}

func TestLog_CreatesFile(t *testing.T) {
	logPath := useTempDataPath(t)

	Log(LogWithUser(OpInit, "/tmp/vault.db"))

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Audit log file was not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("Expected mode 0600, got %o", perm)
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	useTempDataPath(t)

	Log(Entry{User: "alice", Operation: OpInit, Path: "/a.db"})
	Log(Entry{User: "alice", Operation: OpUnseal, Path: "/a.db"})
	Log(Entry{User: "alice", Operation: OpSeal, Path: "/a.db"})

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}

	want := []string{OpInit, OpUnseal, OpSeal}
	for i, op := range want {
		if entries[i].Operation != op {
			t.Errorf("Entry %d: expected op %q, got %q", i, op, entries[i].Operation)
		}
	}
	if entries[0].ID == entries[1].ID {
		t.Errorf("Expected distinct entry ids, got %q twice", entries[0].ID)
	}
}

func TestLog_TimestampFormat(t *testing.T) {
	useTempDataPath(t)

	Log(Entry{Operation: OpSeal})

	entries, err := ReadEntries()
	if err != nil || len(entries) != 1 {
		t.Fatalf("Expected one entry, got %d (err=%v)", len(entries), err)
	}

	ts := entries[0].Timestamp
	if !strings.HasSuffix(ts, "Z") {
		t.Errorf("Timestamp should be UTC, got %q", ts)
	}
	if _, err := time.Parse("2006-01-02T15:04:05.000000Z", ts); err != nil {
		t.Errorf("Timestamp %q does not parse: %v", ts, err)
	}
}

func TestLog_OmitsEmptyPath(t *testing.T) {
	logPath := useTempDataPath(t)

	Log(Entry{ID: "fixed", Timestamp: "t", User: "u", Operation: OpSeal})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	if strings.Contains(string(data), `"path"`) {
		t.Errorf("Empty path should be omitted: %s", data)
	}
}

func TestLog_NoDataPath(t *testing.T) {
	original := configs.TitanSettings
	configs.TitanSettings = &configs.Settings{}
	defer func() { configs.TitanSettings = original }()

	// Must not panic or create anything.
	Log(Entry{Operation: OpInit})

	if LogPath() != "" {
		t.Errorf("Expected empty log path, got %q", LogPath())
	}
	entries, err := ReadEntries()
	if err != nil || entries != nil {
		t.Errorf("Expected no entries, got %v (err=%v)", entries, err)
	}
}

func TestReadEntries_MissingLog(t *testing.T) {
	useTempDataPath(t)

	entries, err := ReadEntries()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}

func TestParseEntries(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int
	}{
		{"empty", "", 0},
		{"single", `{"id":"1","ts":"t","user":"u","op":"seal"}`, 1},
		{"trailing newline", "{\"op\":\"seal\"}\n{\"op\":\"unseal\"}\n", 2},
		{"skips malformed", "{\"op\":\"seal\"}\nnot json\n{\"op\":\"init\"}", 2},
		{"blank lines", "\n\n{\"op\":\"seal\"}\n\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := ParseEntries([]byte(tt.data))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(entries) != tt.want {
				t.Errorf("Expected %d entries, got %d", tt.want, len(entries))
			}
		})
	}
}

func TestLogWithUser(t *testing.T) {
	entry := LogWithUser(OpUnseal, "/srv/vault.db")

	if entry.Operation != OpUnseal {
		t.Errorf("Expected op %q, got %q", OpUnseal, entry.Operation)
	}
	if entry.Path != "/srv/vault.db" {
		t.Errorf("Expected path to be kept, got %q", entry.Path)
	}
}
