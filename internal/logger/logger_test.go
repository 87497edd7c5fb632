package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"garbage", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), tt.input)
	}
}

func TestNew_ProductionDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Environment: "production"})

	log.Info("library ready", "shelves", 16)

	out := buf.String()
	assert.Contains(t, out, `"msg":"library ready"`)
	assert.Contains(t, out, `"shelves":16`)
}

func TestNew_DevelopmentUsesPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Environment: "development"})

	log.Info("entry created", "id", "entry-1")

	out := buf.String()
	assert.Contains(t, out, "entry created")
	assert.Contains(t, out, "id=entry-1")
	assert.Contains(t, out, "INF")
}

func TestPrettyHandler_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	level := slog.LevelWarn
	log := New(Config{Writer: &buf, Format: "pretty", Level: level})

	log.Debug("hidden")
	log.Info("also hidden")
	log.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: "pretty"})

	log.WithError(assert.AnError).Error("operation failed")

	assert.True(t, strings.Contains(buf.String(), "error="))
}

func TestWithField(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Writer: &buf, Format: "pretty"})

	log.WithField("shelf_code", "820.20").Info("filed")

	assert.Contains(t, buf.String(), "shelf_code=820.20")
}
