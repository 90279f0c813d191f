package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent for the
	// defaults to apply.
	for _, key := range []string{"PORT", "CLIENT_APP_URL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.AppPort)
	assert.Equal(t, "http://localhost:5173", cfg.ClientAppURL)
	assert.False(t, cfg.SSLCommerzSandbox)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CLIENT_APP_URL", "https://app.bizpilot.example")
	t.Setenv("RECAPTCHA_SECRET", "rc-secret")
	t.Setenv("SSLCOMMERZ_SANDBOX", "true")
	t.Setenv("SSLCOMMERZ_STORE_ID", "store-1")
	t.Setenv("SSLCOMMERZ_STORE_PASSWORD", "pass-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "https://app.bizpilot.example", cfg.ClientAppURL)
	assert.Equal(t, "rc-secret", cfg.RecaptchaSecret)
	assert.True(t, cfg.SSLCommerzSandbox)
	assert.Equal(t, "store-1", cfg.SSLCommerzStoreID)
	assert.Equal(t, "pass-1", cfg.SSLCommerzStorePassword)
}
