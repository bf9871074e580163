package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/titan/internal/configs"
	"github.com/PolarWolf314/titan/internal/utils"
	"github.com/google/uuid"
)

// Operation names written to the log.
const (
	OpInit   = "init"
	OpSeal   = "seal"
	OpUnseal = "unseal"
)

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`   // Random UUID.
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // Local account name.
	Operation string `json:"op"`
	Path      string `json:"path,omitempty"` // Database the operation acted on.
}

// Log appends an entry to the audit log.
// If logging fails, the error is dropped.
func Log(entry Entry) {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := LogPath()
	if logPath == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogWithUser returns an entry for op on path with the user field populated.
func LogWithUser(op, path string) Entry {
	entry := Entry{Operation: op, Path: path}

	if name, err := utils.GetUsername(); err == nil {
		entry.User = name
	}

	return entry
}

// LogPath returns the path to the audit log file, or "" when no data
// directory is configured.
func LogPath() string {
	if configs.TitanSettings == nil || configs.TitanSettings.DataPath == "" {
		return ""
	}
	return configs.TitanSettings.AuditLogPath()
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i < len(data) && data[i] != '\n' {
			continue
		}

		line := data[start:i]
		start = i + 1
		if len(line) == 0 {
			continue
		}

		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
