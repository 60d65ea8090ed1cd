package xprop_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WillTong/brave/pkg/propagation/xprop"
)

// =============================================================================
// slog 诊断实现
// =============================================================================

func TestSlogDiagnostics_Report(t *testing.T) {
	tests := []struct {
		name       string
		offset     int
		cause      error
		wantOffset bool
		wantCause  bool
	}{
		{
			name:       "带偏移量",
			offset:     53,
			wantOffset: true,
		},
		{
			name:   "无偏移量",
			offset: xprop.NoOffset,
		},
		{
			name:       "带偏移量和原因",
			offset:     3,
			cause:      errors.New("boom"),
			wantOffset: true,
			wantCause:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

			diag := xprop.NewSlogDiagnostics(logger)
			diag.Report("invalid input: truncated", tt.offset, tt.cause)

			out := buf.String()
			require.Contains(t, out, "invalid input: truncated")
			assert.Contains(t, out, "level=WARN")
			if tt.wantOffset {
				assert.Contains(t, out, "offset=")
			} else {
				assert.NotContains(t, out, "offset=")
			}
			if tt.wantCause {
				assert.Contains(t, out, "cause=")
			} else {
				assert.NotContains(t, out, "cause=")
			}
		})
	}
}

func TestNewSlogDiagnostics_nilLoggerUsesDefault(t *testing.T) {
	assert.NotPanics(t, func() {
		diag := xprop.NewSlogDiagnostics(nil)
		diag.Report("invalid input: empty", xprop.NoOffset, nil)
	})
}

func TestNopDiagnostics(t *testing.T) {
	assert.NotPanics(t, func() {
		xprop.NopDiagnostics{}.Report("invalid input: empty", 0, errors.New("x"))
	})
}
