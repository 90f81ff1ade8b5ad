package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tapresolver/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without color codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(lg *logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(lg *logger.Logger) { lg.Info("resolved 3 aliases") },
			goldenName: "info_basic",
		},
		{
			name: "warn",
			log: func(lg *logger.Logger) {
				lg.Warn("No tap folder found at /keg/taps/none, using defaults at /keg/base")
			},
			goldenName: "warn_no_tap",
		},
		{
			name:       "debug dropped by default",
			log:        func(lg *logger.Logger) { lg.Debug("probe /keg/base/components") },
			goldenName: "debug_filtered",
		},
		{
			name: "debug when verbose",
			log: func(lg *logger.Logger) {
				lg.SetVerbose(true)
				lg.Debug("probe /keg/base/components")
			},
			goldenName: "debug_verbose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        errors.New("boom"),
			goldenName: "error_standard",
		},
		{
			name:       "wrapped chain",
			err:        zerr.Wrap(errors.New("permission denied"), "failed to write merged config"),
			goldenName: "error_chain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Warn("tap override could not be applied")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "tap override could not be applied", record["msg"])
}

func TestLogger_SetVerboseSurvivesModeSwitch(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetVerbose(true)
	lg.SetJSON(true)
	lg.Debug("cache miss")

	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
}

func TestCollectErrorEntries(t *testing.T) {
	err := zerr.Wrap(
		zerr.Wrap(errors.New("root cause"), "middle layer"),
		"outer layer",
	)

	assert.Equal(t,
		[]string{"outer layer", "middle layer", "root cause"},
		logger.CollectErrorEntries(err),
	)
	assert.Equal(t, []string{"plain"}, logger.CollectErrorEntries(errors.New("plain")))
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     string
	}{
		{
			name:     "single entry",
			messages: []string{"single error"},
			want:     "Error: single error",
		},
		{
			name:     "three entries",
			messages: []string{"first", "second", "third"},
			want:     "Error: first\n\n  Caused by:\n    → second\n    → third",
		},
		{
			name:     "multiline message",
			messages: []string{"line1\nline2"},
			want:     "Error: line1\n       line2",
		},
		{
			name:     "multiline cause",
			messages: []string{"main", "cause line1\ncause line2"},
			want:     "Error: main\n\n  Caused by:\n    → cause line1\n      cause line2",
		},
		{
			name:     "empty",
			messages: nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.messages))
		})
	}
}
