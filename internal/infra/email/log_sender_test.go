package email

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogSender_BodyOnlyAtDebug(t *testing.T) {
	const body = "<p>Your code is <b>482913</b></p>"

	tests := []struct {
		name     string
		level    slog.Level
		wantBody bool
	}{
		{name: "info", level: slog.LevelInfo, wantBody: false},
		{name: "debug", level: slog.LevelDebug, wantBody: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: tt.level}))

			err := NewLogSender(logger).Send(context.Background(), "ruth@example.org", "Reset your password", body)
			require.NoError(t, err)

			out := buf.String()
			assert.Contains(t, out, "ruth@example.org")
			assert.Contains(t, out, "Reset your password")
			assert.Equal(t, tt.wantBody, bytes.Contains(buf.Bytes(), []byte("482913")))
		})
	}
}
