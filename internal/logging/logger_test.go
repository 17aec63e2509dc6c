package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		opts Options
		want zapcore.Level
	}{
		{Options{}, zapcore.InfoLevel},
		{Options{Level: "warn"}, zapcore.WarnLevel},
		{Options{Level: "error", Verbose: true}, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		logger, cleanup, err := New(tt.opts)
		if err != nil {
			t.Fatalf("New(%+v) error = %v", tt.opts, err)
		}
		cleanup()
		if !logger.Core().Enabled(tt.want) {
			t.Errorf("New(%+v): level %s disabled", tt.opts, tt.want)
		}
		if tt.want > zapcore.DebugLevel && logger.Core().Enabled(tt.want-1) {
			t.Errorf("New(%+v): level %s enabled", tt.opts, tt.want-1)
		}
	}

	if _, _, err := New(Options{Level: "chatty"}); err == nil {
		t.Error("New(chatty) error = nil")
	}
}

func TestNewWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "reports.log")

	logger, cleanup, err := New(Options{File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Warn("response ignored: no address")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	for _, want := range []string{`"msg":"response ignored: no address"`, `"logger":"` + Name + `"`, `"level":"warn"`} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %s", line, want)
		}
	}
}

func TestCleanupClosesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.log")

	logger, cleanup, err := New(Options{File: path})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("first")
	cleanup()

	// Writes after cleanup go nowhere; the file keeps what was flushed.
	logger.Info("second")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"msg":"first"`) {
		t.Errorf("log file missing first entry:\n%s", data)
	}
	if strings.Contains(string(data), `"msg":"second"`) {
		t.Errorf("log file written after cleanup:\n%s", data)
	}
}
