package llm

import (
	"io"
	"log/slog"
	"testing"

	"github.com/echocare/echocare/internal/config"
)

func TestNewClientUsesConfig(t *testing.T) {
	cfg := &config.Config{GeneratorAddress: "http://example.com"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	client, err := newClient(clientParams{Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client == nil {
		t.Fatal("expected client instance")
	}
}

func TestNewClientInvalidAddress(t *testing.T) {
	cfg := &config.Config{GeneratorAddress: "not-absolute"}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := newClient(clientParams{Config: cfg, Logger: logger}); err == nil {
		t.Fatal("expected error for invalid generator address")
	}
}
