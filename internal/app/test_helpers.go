package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/specgraph/internal/config"
	"github.com/specialistvlad/specgraph/internal/testutil"
)

// SetupAppTest creates an app instance with a debug logger writing into the
// returned buffer. Set SPECGRAPH_TEST_LOGS=true to print the log after the
// test.
func SetupAppTest(t *testing.T, cfg *config.Config) (*App, *testutil.SafeBuffer) {
	t.Helper()

	logBuffer := &testutil.SafeBuffer{}
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "text"
	testApp, err := NewApp(logBuffer, cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("SPECGRAPH_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}

// ProjectConfig returns a default configuration rooted at dir with entry as
// the root file.
func ProjectConfig(dir, entry string) *config.Config {
	cfg := config.Default()
	cfg.Project.Root = dir
	cfg.Project.Entry = filepath.Join(dir, entry)
	return cfg
}
