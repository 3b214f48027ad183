package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"passwordReset": map[string]any{
			"otpTtl":         "10m",
			"throttleWindow": "15m",
		},
		"push": map[string]any{
			"expo": map[string]any{
				"accessToken": "",
			},
		},
		"secretKey": map[string]any{
			"reset": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PASSWORDRESET_OTPTTL", want: "passwordReset.otpTtl"},
		{envKey: "PASSWORDRESET_THROTTLEWINDOW", want: "passwordReset.throttleWindow"},
		{envKey: "PUSH_EXPO_ACCESSTOKEN", want: "push.expo.accessToken"},
		{envKey: "SECRETKEY_RESET", want: "secretKey.reset"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 15*time.Minute, cfg.PasswordReset.ThrottleWindow)
	assert.Equal(t, 3, cfg.PasswordReset.MaxAttempts)
	assert.Equal(t, 10*time.Minute, cfg.PasswordReset.OTPTTL)
	assert.Equal(t, 15*time.Minute, cfg.PasswordReset.TokenTTL)
	assert.Equal(t, 50, cfg.Notification.ListLimit)
	assert.Equal(t, 100, cfg.Notification.InsertBatchSize)
	assert.Equal(t, "expo", cfg.Push.Provider)
	assert.Equal(t, "log", cfg.Email.Provider)
	assert.NotNil(t, cfg.PubSub)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		PasswordReset: &PasswordResetConfig{MaxAttempts: 5, OTPTTL: time.Minute},
		Push:          &PushConfig{Provider: "fcm"},
	}

	cfg.applyDefaults()

	assert.Equal(t, 5, cfg.PasswordReset.MaxAttempts)
	assert.Equal(t, time.Minute, cfg.PasswordReset.OTPTTL)
	assert.Equal(t, 15*time.Minute, cfg.PasswordReset.ThrottleWindow)
	assert.Equal(t, "fcm", cfg.Push.Provider)
}
