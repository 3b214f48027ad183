package email

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"flock/config"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSenderParams(mutate func(*config.EmailConfig)) SenderParams {
	cfg := &config.EmailConfig{From: "Flock <no-reply@example.org>"}
	mutate(cfg)

	return SenderParams{Config: &config.Config{Email: cfg}, Logger: newDiscardLogger()}
}

func TestNewEmailSender(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.EmailConfig)
		want    any
		wantErr string
	}{
		{
			name:   "empty provider falls back to log",
			mutate: func(*config.EmailConfig) {},
			want:   &logSender{},
		},
		{
			name:   "log",
			mutate: func(c *config.EmailConfig) { c.Provider = "log" },
			want:   &logSender{},
		},
		{
			name: "resend",
			mutate: func(c *config.EmailConfig) {
				c.Provider = "resend"
				c.Resend.APIKey = "re_test"
			},
			want: &resendSender{},
		},
		{
			name:    "resend without api key",
			mutate:  func(c *config.EmailConfig) { c.Provider = "resend" },
			wantErr: "resend api key is required",
		},
		{
			name: "smtp",
			mutate: func(c *config.EmailConfig) {
				c.Provider = "smtp"
				c.SMTP.Host = "smtp.example.org"
				c.SMTP.Port = 587
			},
			want: &smtpSender{},
		},
		{
			name:    "smtp without host",
			mutate:  func(c *config.EmailConfig) { c.Provider = "smtp" },
			wantErr: "smtp host is required",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *config.EmailConfig) { c.Provider = "carrier-pigeon" },
			wantErr: "unknown email provider: carrier-pigeon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, err := NewEmailSender(newSenderParams(tt.mutate))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, sender)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.want, sender)
		})
	}
}

func TestResendSender_Send(t *testing.T) {
	var got resend.SendEmailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email-1"}`))
	}))
	defer server.Close()

	sender := NewResendSender("re_test", "Flock <no-reply@example.org>", newDiscardLogger())
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	sender.(*resendSender).client.BaseURL = baseURL

	err = sender.Send(context.Background(), "ruth@example.org", "Reset your password", "<p>hi</p>")
	require.NoError(t, err)

	assert.Equal(t, "Flock <no-reply@example.org>", got.From)
	assert.Equal(t, []string{"ruth@example.org"}, got.To)
	assert.Equal(t, "Reset your password", got.Subject)
	assert.Equal(t, "<p>hi</p>", got.Html)
}

func TestResendSender_SendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
	}))
	defer server.Close()

	sender := NewResendSender("re_test", "bad", newDiscardLogger())
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	sender.(*resendSender).client.BaseURL = baseURL

	err = sender.Send(context.Background(), "ruth@example.org", "s", "b")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resend send failed")
}

func TestSMTPSender_CancelledContextSkipsDial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Port 1 on a reserved host would hang or fail if the dial were attempted.
	sender := NewSMTPSender("192.0.2.1", 1, "", "", "no-reply@example.org")

	err := sender.Send(ctx, "ruth@example.org", "s", "b")
	require.ErrorIs(t, err, context.Canceled)
}
