package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/card-price-tracker/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "Warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "trace", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := logger.ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithWriter_Formats(t *testing.T) {
	t.Parallel()

	var text bytes.Buffer
	logger.NewWithWriter(&text, logger.Options{}).Info("graded", "grade", "PSA 9")
	assert.Contains(t, text.String(), "level=INFO")
	assert.Contains(t, text.String(), `grade="PSA 9"`)

	var js bytes.Buffer
	logger.NewWithWriter(&js, logger.Options{Format: "JSON"}).Info("graded")
	assert.Contains(t, js.String(), `"msg":"graded"`)
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, logger.Options{Level: "warn"})
	l.Info("hidden")
	assert.Empty(t, buf.String())
	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	l = logger.NewWithWriter(&buf, logger.Options{Level: "bogus"})
	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestValidFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.ValidFormat("json"))
	assert.True(t, logger.ValidFormat(""))
	assert.False(t, logger.ValidFormat("logfmt"))
}
