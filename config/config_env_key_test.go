package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"linkParser": map[string]any{
			"shortlinkTimeout": "3s",
			"breaker": map[string]any{
				"failureThreshold": 5,
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "LINKPARSER_SHORTLINKTIMEOUT", want: "linkParser.shortlinkTimeout"},
		{envKey: "LINKPARSER_BREAKER_FAILURETHRESHOLD", want: "linkParser.breaker.failureThreshold"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, "2MB", cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "rc_token", cfg.Auth.CookieName)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.TokenTTL)
	require.NotNil(t, cfg.LinkParser)
	assert.Equal(t, "com.ridingcourse.app", cfg.LinkParser.AppName)
	assert.Equal(t, 3*time.Second, cfg.LinkParser.ShortlinkTimeout)
	assert.False(t, cfg.LinkParser.Lenient)
	assert.Equal(t, uint32(5), cfg.LinkParser.Breaker.FailureThreshold)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, 40.0, cfg.Routing.DefaultSpeedKmh)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		LinkParser: &LinkParserConfig{Lenient: true, AppName: "com.example", ShortlinkTimeout: time.Second},
		Auth:       &AuthConfig{CookieName: "session", BcryptCost: 4},
	}
	cfg.ApplyDefaults()

	assert.True(t, cfg.LinkParser.Lenient)
	assert.Equal(t, "com.example", cfg.LinkParser.AppName)
	assert.Equal(t, time.Second, cfg.LinkParser.ShortlinkTimeout)
	assert.Equal(t, "session", cfg.Auth.CookieName)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
}
