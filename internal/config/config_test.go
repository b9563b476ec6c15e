package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(values map[string]any) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	for key, value := range values {
		v.Set(key, value)
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newTestViper(map[string]any{
		"PAYLOAD_API_URL": "http://localhost:3001/api/",
	}))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3001/api", cfg.Payload.URL)
	assert.Equal(t, 30*time.Second, cfg.Payload.Timeout)
	assert.Equal(t, 1000, cfg.Dashboard.StatsPageSize)
	assert.Equal(t, 10, cfg.Dashboard.RecentOrdersLimit)
	assert.Equal(t, 100, cfg.Dashboard.ListPageSize)
	assert.Equal(t, 30, cfg.Dashboard.AnalyticsDefaultDays)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSAllowedOrigins)
	assert.False(t, cfg.DailyDigest.Enabled)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(newTestViper(map[string]any{
		"PAYLOAD_API_URL":      "https://cms.example.com/api",
		"PAYLOAD_TIMEOUT":      "5s",
		"CORS_ALLOWED_ORIGINS": "https://a.example.com,https://b.example.com",
		"DAILY_DIGEST_ENABLED": "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Payload.Timeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.DailyDigest.Enabled)
}

func TestLoad_FailsFastWithoutPayloadURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr error
	}{
		{name: "vazia", url: "", wantErr: ErrPayloadURLRequired},
		{name: "só espaços", url: "   ", wantErr: ErrPayloadURLRequired},
		{name: "relativa", url: "/api", wantErr: ErrPayloadURLInvalid},
		{name: "esquema inválido", url: "ftp://cms.example.com", wantErr: ErrPayloadURLInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(newTestViper(map[string]any{"PAYLOAD_API_URL": tt.url}))

			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
