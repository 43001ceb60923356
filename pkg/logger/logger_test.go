package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestInfoIncludesServiceAndContextFields(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "cart-service", Output: &buf})

	ctx := logg.WithRequestID(context.Background(), "req-123")
	ctx = logg.WithFields(ctx, map[string]any{"cart_id": "abc"})
	logg.Info(ctx, "request.start")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log line: %v", err)
	}
	if entry["service"] != "cart-service" {
		t.Fatalf("expected service field, got %v", entry["service"])
	}
	if entry["request_id"] != "req-123" {
		t.Fatalf("expected request_id field, got %v", entry["request_id"])
	}
	if entry["cart_id"] != "abc" {
		t.Fatalf("expected cart_id field, got %v", entry["cart_id"])
	}
	if entry["message"] != "request.start" {
		t.Fatalf("unexpected message %v", entry["message"])
	}
}

func TestErrorAttachesErrAndStack(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "order-service", Output: &buf})

	logg.Error(context.Background(), "request.error", errors.New("boom"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log line: %v", err)
	}
	if entry["error"] != "boom" {
		t.Fatalf("expected error field, got %v", entry["error"])
	}
	if entry["stack"] == nil {
		t.Fatalf("expected stack field")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logg := New(Options{ServiceName: "product-service", Level: zerolog.WarnLevel, Output: &buf})

	logg.Info(context.Background(), "dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info below warn level to be dropped, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if got := ParseLevel("debug"); got != zerolog.DebugLevel {
		t.Fatalf("expected debug, got %v", got)
	}
	if got := ParseLevel(""); got != zerolog.InfoLevel {
		t.Fatalf("expected info default, got %v", got)
	}
	if got := ParseLevel("nope"); got != zerolog.InfoLevel {
		t.Fatalf("expected info fallback, got %v", got)
	}
}
