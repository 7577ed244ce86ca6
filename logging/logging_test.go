package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupDisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closer, err := Setup(false, dir, "debug")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer closer.Close()

	logger.Info().Msg("dropped")

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Disabled logging must not create the log directory")
	}
}

func TestSetupEnabled(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closer, err := Setup(true, dir, "info")
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	logger.Info().Str("session", "abc").Msg("Test log message")
	logger.Debug().Msg("below level")
	closer.Close()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "Test log message") || !strings.Contains(content, "session=abc") {
		t.Errorf("Expected message and field in log, got %q", content)
	}
	if strings.Contains(content, "below level") {
		t.Error("Debug entries must be filtered at info level")
	}
}

func TestSetupRotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, FileName)

	if err := os.WriteFile(logPath, make([]byte, MaxSize+1), 0o644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	_, closer, err := Setup(true, dir, "info")
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer closer.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != FileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > MaxSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", MaxSize, info.Size())
	}
}

func TestSetupUnusableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	logger, closer, err := Setup(true, filepath.Join(blocker, "logs"), "info")
	if err == nil {
		t.Fatal("Expected an error for a directory under a regular file")
	}
	defer closer.Close()

	// Must still be usable
	logger.Info().Msg("discarded")
}
