package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestJSONLogOutput(t *testing.T) {
	// Capture the output
	var buf bytes.Buffer

	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	slog.Info("test message", slog.String("product_id", "AGR001"), slog.Int("count", 3))

	// Verify the output is valid JSON
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	if err != nil {
		t.Fatalf("Failed to parse log output as JSON: %v\nOutput: %s", err, buf.String())
	}

	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg to be 'test message', got '%v'", logEntry["msg"])
	}

	if logEntry["product_id"] != "AGR001" {
		t.Errorf("Expected product_id to be 'AGR001', got '%v'", logEntry["product_id"])
	}

	if logEntry["count"] != float64(3) {
		t.Errorf("Expected count to be 3, got '%v'", logEntry["count"])
	}

	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level to be 'INFO', got '%v'", logEntry["level"])
	}

	if _, ok := logEntry["time"]; !ok {
		t.Error("Expected 'time' field in JSON log output")
	}
}

func TestInitJSONLogger_DebugLevel(t *testing.T) {
	ctx := context.Background()

	InitJSONLogger(true)
	if !slog.Default().Enabled(ctx, slog.LevelDebug) {
		t.Error("Expected debug level to be enabled in debug mode")
	}

	InitJSONLogger(false)
	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		t.Error("Expected debug level to be disabled outside debug mode")
	}
}
