package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestInfoWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "info")
	t.Cleanup(func() { Configure("info") })

	Info("store.loaded", map[string]any{"rows": 3, "source": "file"})

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}
	if payload["msg"] != "store.loaded" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level: %v", payload["level"])
	}
	if payload["rows"] != float64(3) {
		t.Fatalf("unexpected rows: %v", payload["rows"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("missing ts field")
	}
}

func TestLevelFiltersDebugAndInfo(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, "error")
	t.Cleanup(func() { Configure("info") })

	Info("dropped", nil)
	Warn("dropped", nil)
	Error("kept", map[string]any{"error": errors.New("boom")})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"error":"boom"`) {
		t.Fatalf("expected error field, got %s", lines[0])
	}
}
