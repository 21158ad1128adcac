package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cavemap.log")

	log, closer, err := New(Options{Level: "debug", Format: "json", File: path})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", log.GetLevel())
	}

	log.WithField("seed", 42).Debug("grid generated")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(content), `"msg":"grid generated"`) {
		t.Errorf("log file = %q, want JSON entry", content)
	}
	if !strings.Contains(string(content), `"seed":42`) {
		t.Errorf("log file = %q, want seed field", content)
	}
}

func TestNewDefaults(t *testing.T) {
	log, closer, err := New(Options{Level: "nonsense"})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer closer.Close()

	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", log.GetLevel())
	}
	if log.Out != os.Stderr {
		t.Error("default output should be stderr")
	}

	restore := Detach(log)
	if log.Out != io.Discard {
		t.Error("Detach() should discard terminal output")
	}
	restore()
	if log.Out != os.Stderr {
		t.Error("restore() should bring back stderr")
	}
}

func TestNewBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "cavemap.log")
	if _, _, err := New(Options{File: path}); err == nil {
		t.Error("New() with unwritable path should fail")
	}
}
