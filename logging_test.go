package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug, ReplaceAttr: replaceLevel}))

	logger.Log(context.Background(), LevelCritical, "Can't open device 0 (assumed to be TV)")
	assert.Contains(t, buf.String(), "level=CRITICAL")

	buf.Reset()
	logger.Error("Failed to inject key event")
	assert.Contains(t, buf.String(), "level=ERROR")

	buf.Reset()
	logger.Warn("No CEC devices found")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestReplaceLevel_IgnoresGroupedAttrs(t *testing.T) {
	a := slog.Any(slog.LevelKey, LevelCritical)
	got := replaceLevel([]string{"nested"}, a)
	assert.Equal(t, LevelCritical, got.Value.Any())
}
