package cli

import (
	"os"
	"testing"

	"github.com/mrz1836/shardfile/internal/config"
	"github.com/mrz1836/shardfile/internal/output"
)

// setupTestEnv creates a temporary home directory and points the package
// globals (cfg, logger, formatter) at it, returning the temp dir and a
// cleanup function that restores the previous globals.
func setupTestEnv(t *testing.T) (string, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "shardfile-cli-test")
	if err != nil {
		t.Fatalf("creating temp dir: %v", err)
	}

	origCfg := cfg
	origLogger := logger
	origFormatter := formatter

	testCfg := config.Defaults()
	testCfg.Home = tmpDir
	cfg = testCfg
	logger = config.NullLogger()
	formatter = output.NewFormatter(output.FormatText, nil)

	return tmpDir, func() {
		cfg = origCfg
		logger = origLogger
		formatter = origFormatter
		_ = os.RemoveAll(tmpDir)
	}
}
