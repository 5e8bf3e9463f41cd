package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "breeds.log")

	logger, err := New(Options{File: path})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("gallery ready")
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"msg":"gallery ready"`) {
		t.Fatalf("log file missing info entry:\n%s", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Fatalf("debug entry written without Verbose:\n%s", out)
	}
}

func TestNew_VerboseEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breeds.log")

	logger, err := New(Options{File: path, Verbose: true})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("search started")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "search started") {
		t.Fatalf("verbose logger dropped debug entry:\n%s", data)
	}
}
