package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"langcodes/internal/config"
	"langcodes/internal/logging"
)

func TestNewFromConfigConsole(t *testing.T) {
	cfg := config.Default()
	var buf bytes.Buffer

	logger, err := logging.NewFromConfig(&cfg, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Info("resolved name", logging.String(logging.FieldCode, "en"), logging.Int(logging.FieldCount, 2))
	logger.Debug("hidden at info")

	out := buf.String()
	for _, want := range []string{"INFO", "resolved name", "code=en", "count=2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "hidden at info") {
		t.Fatalf("debug line leaked at info level: %q", out)
	}
}

func TestNewFromConfigWritesLogFile(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.File = filepath.Join(t.TempDir(), "logs", "langcodes.log")
	var buf bytes.Buffer

	logger, err := logging.NewFromConfig(&cfg, &buf)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	logger.Warn("table mismatch", logging.String(logging.FieldAlert, "audit"))

	content, err := os.ReadFile(cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), "table mismatch") {
		t.Fatalf("log file missing message: %q", content)
	}
	if !strings.Contains(buf.String(), "table mismatch") {
		t.Fatalf("stderr missing message: %q", buf.String())
	}
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "info", Stderr: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	if strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", buf.String())
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "debug", Stderr: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message with caller")

	if !strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected caller information in debug logs, got %q", buf.String())
	}
}

func TestComponentAndErrorFormatting(t *testing.T) {
	var buf bytes.Buffer
	base, err := logging.New(logging.Options{Format: "console", Level: "info", Stderr: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger := logging.NewComponentLogger(base, "verify")

	logger.Error("tables inconsistent", logging.Error(errors.New("code listed twice")))

	out := buf.String()
	if !strings.Contains(out, "ERROR [verify] tables inconsistent") {
		t.Fatalf("unexpected header: %q", out)
	}
	if !strings.Contains(out, `error="code listed twice"`) {
		t.Fatalf("expected quoted error, got %q", out)
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Level: "info", Stderr: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("json message", logging.String("k", "v"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode json log %q: %v", buf.String(), err)
	}
	if record["msg"] != "json message" || record["level"] != "info" || record["k"] != "v" {
		t.Fatalf("unexpected record: %v", record)
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key, got %v", record)
	}
}

func TestNewInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Level: "invalid", Stderr: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("dropped")
	logger.Info("kept")
	if strings.Contains(buf.String(), "dropped") || !strings.Contains(buf.String(), "kept") {
		t.Fatalf("unexpected output for invalid level: %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestWithContextAddsSessionID(t *testing.T) {
	ctx := logging.WithSessionID(context.Background(), "sess-123")
	if id, ok := logging.SessionIDFromContext(ctx); !ok || id != "sess-123" {
		t.Fatalf("SessionIDFromContext = (%q, %v)", id, ok)
	}

	var jsonBuf bytes.Buffer
	jsonLogger, err := logging.New(logging.Options{Format: "json", Level: "info", Stderr: &jsonBuf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WithContext(ctx, jsonLogger).Info("contextual log")
	if !strings.Contains(jsonBuf.String(), `"session_id":"sess-123"`) {
		t.Fatalf("expected session id in json, got %q", jsonBuf.String())
	}

	var infoBuf bytes.Buffer
	infoLogger, err := logging.New(logging.Options{Format: "console", Level: "info", Stderr: &infoBuf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WithContext(ctx, infoLogger).Info("contextual log")
	if strings.Contains(infoBuf.String(), "sess-123") {
		t.Fatalf("console info output should omit session id: %q", infoBuf.String())
	}

	var debugBuf bytes.Buffer
	debugLogger, err := logging.New(logging.Options{Format: "console", Level: "debug", Stderr: &debugBuf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logging.WithContext(ctx, debugLogger).Info("contextual log")
	if !strings.Contains(debugBuf.String(), "session_id=sess-123") {
		t.Fatalf("console debug output should include session id: %q", debugBuf.String())
	}
}

func TestWithContextWithoutSession(t *testing.T) {
	logger := logging.NewNop()
	if got := logging.WithContext(context.Background(), logger); got != logger {
		t.Fatal("expected logger to be returned unchanged")
	}
	if _, ok := logging.SessionIDFromContext(context.Background()); ok {
		t.Fatal("expected no session id")
	}
	logging.WithContext(context.Background(), nil).Info("no-op logger does not panic")
}
