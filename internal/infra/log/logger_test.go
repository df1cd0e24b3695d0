package log

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestCustomFileEncoder(t *testing.T) {
	enc := &customFileEncoder{Encoder: zapcore.NewConsoleEncoder(zapcore.EncoderConfig{})}
	entry := zapcore.Entry{
		Level:   zapcore.ErrorLevel,
		Time:    time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC),
		Message: "Chart target not found",
	}

	buf, err := enc.EncodeEntry(entry, []zapcore.Field{
		zap.String("target", "salesChart"),
		zap.Int("points", 3),
		zap.Error(errors.New("boom")),
	})
	if err != nil {
		t.Fatalf("EncodeEntry: %v", err)
	}
	got := buf.String()

	if !strings.HasPrefix(got, "2024-03-01 10:20:30     ERROR Chart target not found\t") {
		t.Fatalf("unexpected prefix: %q", got)
	}
	for _, want := range []string{`"target":"salesChart"`, `"points":3`, `"error":"boom"`} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in %q", want, got)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("entry must end with newline: %q", got)
	}
}

func TestCustomFileEncoderNoFields(t *testing.T) {
	enc := &customFileEncoder{Encoder: zapcore.NewConsoleEncoder(zapcore.EncoderConfig{})}
	buf, err := enc.EncodeEntry(zapcore.Entry{Level: zapcore.InfoLevel, Message: "done"}, nil)
	if err != nil {
		t.Fatalf("EncodeEntry: %v", err)
	}
	if strings.Contains(buf.String(), "\t") {
		t.Errorf("no tab expected without fields: %q", buf.String())
	}
}

func TestSetupWritesFileLog(t *testing.T) {
	dir := t.TempDir()
	if err := Setup(dir, "info"); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	t.Cleanup(func() {
		mu.Lock()
		fileLogger = zap.NewNop()
		Logger = fileLogger
		mu.Unlock()
	})

	LogDebug("hidden below info")
	LogInfo("Chart rendered", zap.String("target", "sales"))
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	if err != nil {
		t.Fatalf("read app.log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "INFO Chart rendered") {
		t.Errorf("info entry missing: %q", content)
	}
	if strings.Contains(content, "hidden below info") {
		t.Errorf("debug entry should be filtered: %q", content)
	}
}

func TestSetupRejectsBadLevel(t *testing.T) {
	if err := Setup(t.TempDir(), "loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestExtractDuration(t *testing.T) {
	if got := extractDuration([]zap.Field{zap.Int64("duration_ms", 42)}); got != 42 {
		t.Errorf("extractDuration = %d, want 42", got)
	}
	if got := extractDuration([]zap.Field{zap.String("duration_ms", "x")}); got != 0 {
		t.Errorf("extractDuration = %d, want 0", got)
	}
}
