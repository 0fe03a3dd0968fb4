package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultServiceName, cfg.ServiceName)
	assert.Equal(t, DefaultGraphAPIURL, cfg.GraphAPIURL)
	assert.Equal(t, DefaultCountryCode, cfg.DefaultCountryCode)
	assert.Equal(t, DefaultHTTPTimeout, cfg.HTTPClientTimeout)
	assert.Equal(t, DefaultAllowedOrigins, cfg.AllowedOrigins)
	assert.False(t, cfg.HasDefaultCredentials())
	assert.Equal(t, ":8000", cfg.Addr())
}

func TestFromLookupOverrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"PORT":                     "9090",
		"WHATSAPP_PHONE_NUMBER_ID": " 1234567890 ",
		"WHATSAPP_ACCESS_TOKEN":    "EAAG-token",
		"WHATSAPP_API_URL":         "http://localhost:4010/v18.0/",
		"DEFAULT_COUNTRY_CODE":     "55",
		"HTTP_CLIENT_TIMEOUT":      "5s",
		"ALLOWED_ORIGINS":          "https://a.example.com, ,https://b.example.com",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "1234567890", cfg.WhatsAppPhoneNumberID)
	assert.Equal(t, "EAAG-token", cfg.WhatsAppAccessToken)
	assert.True(t, cfg.HasDefaultCredentials())
	assert.Equal(t, "http://localhost:4010/v18.0", cfg.GraphAPIURL)
	assert.Equal(t, "55", cfg.DefaultCountryCode)
	assert.Equal(t, 5*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
}

func TestFromLookupInvalidTimeout(t *testing.T) {
	_, err := FromLookup(lookupFrom(map[string]string{"HTTP_CLIENT_TIMEOUT": "soon"}))
	assert.Error(t, err)

	_, err = FromLookup(lookupFrom(map[string]string{"HTTP_CLIENT_TIMEOUT": "-1s"}))
	assert.Error(t, err)
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SERVICE_NAME=Relay Test\n"), 0o600))

	// godotenv não sobrescreve o que já está no ambiente
	os.Unsetenv("SERVICE_NAME")
	defer os.Unsetenv("SERVICE_NAME")

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "Relay Test", cfg.ServiceName)
}

func TestLoadWithoutEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
