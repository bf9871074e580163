package workflows

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/titan/internal/configs"
	"github.com/PolarWolf314/titan/internal/envelope"
	"github.com/stretchr/testify/require"
)

var passphrase = []byte("correct horse battery staple")

// newTestEnv points the registry and audit log at a temp dir and uses a
// low iteration count.
func newTestEnv(t *testing.T) (Env, string) {
	t.Helper()
	dir := t.TempDir()

	original := configs.TitanSettings
	configs.TitanSettings = &configs.Settings{
		RegistryPath: filepath.Join(dir, "titan.lock"),
		ConfigPath:   filepath.Join(dir, "config.toml"),
		DataPath:     filepath.Join(dir, "data"),
	}
	t.Cleanup(func() { configs.TitanSettings = original })

	env := Env{
		RegistryPath: configs.TitanSettings.RegistryPath,
		Codec:        &envelope.Codec{Iterations: 100},
	}
	return env, dir
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
