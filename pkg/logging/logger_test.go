package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	entrezerrors "github.com/entrezutils/entrez-sdk-go/pkg/errors"
)

// TestLogger tests the basic logger functionality
func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, NewTextFormatter())
	logger.SetLevel(DebugLevel) // Enable debug logging

	logger.Debug("Debug message", String("key", "value"))
	logger.Info("Info message", Int("count", 42))
	logger.Warn("Warning message", Bool("flag", true))
	logger.Error("Error message", ErrorField(errors.New("test error")))

	output := buf.String()

	if !strings.Contains(output, "Debug message") {
		t.Error("Expected debug message in output")
	}
	if !strings.Contains(output, "Info message") {
		t.Error("Expected info message in output")
	}
	if !strings.Contains(output, "Warning message") {
		t.Error("Expected warning message in output")
	}
	if !strings.Contains(output, "Error message") {
		t.Error("Expected error message in output")
	}

	if !strings.Contains(output, "key=value") {
		t.Error("Expected key=value in output")
	}
	if !strings.Contains(output, "count=42") {
		t.Error("Expected count=42 in output")
	}
	if !strings.Contains(output, "flag=true") {
		t.Error("Expected flag=true in output")
	}
	if !strings.Contains(output, "error=test error") {
		t.Error("Expected error=test error in output")
	}
}

// TestLogLevels tests log level filtering
func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, NewTextFormatter())
	logger.SetLevel(WarnLevel)

	logger.Debug("Debug message")
	logger.Info("Info message")
	logger.Warn("Warning message")
	logger.Error("Error message")

	output := buf.String()

	if strings.Contains(output, "Debug message") {
		t.Error("Debug message should be filtered out")
	}
	if strings.Contains(output, "Info message") {
		t.Error("Info message should be filtered out")
	}
	if !strings.Contains(output, "Warning message") {
		t.Error("Expected warning message in output")
	}
	if !strings.Contains(output, "Error message") {
		t.Error("Expected error message in output")
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, NewTextFormatter())

	child := logger.WithFields(String("tool", "esearch"))
	child.Info("ran")
	logger.Info("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "tool=esearch") {
		t.Error("Expected inherited field on the child logger")
	}
	if strings.Contains(lines[1], "tool=esearch") {
		t.Error("Expected parent logger to stay unchanged")
	}
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, NewTextFormatter())

	ctx := ContextWithRequestID(context.Background(), "req-123")
	logger.WithContext(ctx).Info("traced")

	if !strings.Contains(buf.String(), "[req-123]") {
		t.Errorf("Expected request ID in output, got %q", buf.String())
	}
}

func TestWithErrorUnpacksStructuredErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, NewTextFormatter())

	err := entrezerrors.InvalidTool("espell").WithContext(&entrezerrors.Context{
		Tool:      "espell",
		Component: "Client",
	})
	logger.WithError(err).Error("query rejected")

	output := buf.String()
	if !strings.Contains(output, "error_code=InvalidTool") {
		t.Errorf("Expected error_code field, got %q", output)
	}
	if !strings.Contains(output, "error_category=validation") {
		t.Errorf("Expected error_category field, got %q", output)
	}
	if !strings.Contains(output, "tool=espell") {
		t.Errorf("Expected tool from the error context, got %q", output)
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, NewJSONFormatter())

	logger.Info("structured", String("db", "pubmed"), Int("count", 7))

	var record map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, buf.String())
	}
	if record["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", record["level"])
	}
	if record["message"] != "structured" {
		t.Errorf("message = %v, want structured", record["message"])
	}
	if record["db"] != "pubmed" {
		t.Errorf("db = %v, want pubmed", record["db"])
	}
	if record["count"] != float64(7) {
		t.Errorf("count = %v, want 7", record["count"])
	}
	if _, ok := record["timestamp"]; !ok {
		t.Error("Expected a timestamp field")
	}
}

func TestNopLogger(t *testing.T) {
	logger := Nop()
	// Must be safe to call every method.
	logger.Debug("x")
	logger.Info("x")
	logger.Warn("x")
	logger.Error("x")
	logger.WithFields(String("a", "b")).Info("x")
	logger.WithError(errors.New("boom")).Error("x")
	if logger.GetLevel() != InfoLevel {
		t.Errorf("GetLevel() = %v, want InfoLevel", logger.GetLevel())
	}
}
