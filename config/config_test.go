package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
env:
  env: develop
  serviceName: storefront
http:
  port: 8080
session:
  cookieName: sf
  ttl: 2h
storage:
  bucketUrl: file:///tmp/receipts
pubsub:
  provider: local
  localEndpoint: http://localhost:8081/push
`

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "storefront.yaml"), []byte(sampleYAML), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("SESSION_COOKIENAME", "from_env")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("storefront", rel)
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Session)
	assert.Equal(t, "from_env", cfg.Session.CookieName)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "file:///tmp/receipts", cfg.Storage.BucketURL)
	assert.Equal(t, "local", cfg.PubSub.Provider)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	require.NotNil(t, cfg.Session)
	assert.Equal(t, defaultSessionCookieName, cfg.Session.CookieName)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, defaultPurgeInterval, cfg.Session.PurgeInterval)
	assert.Equal(t, defaultBucketURL, cfg.Storage.BucketURL)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Session: &SessionConfig{CookieName: "custom", TTL: time.Minute},
		Storage: &StorageConfig{BucketURL: "gs://receipts"},
	}
	applyDefaults(cfg)

	assert.Equal(t, "custom", cfg.Session.CookieName)
	assert.Equal(t, time.Minute, cfg.Session.TTL)
	assert.Zero(t, cfg.Session.PurgeInterval)
	assert.Equal(t, "gs://receipts", cfg.Storage.BucketURL)
}

func TestLoadWithEnv_SplitsOriginList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "storefront.yaml"), []byte(sampleYAML), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("HTTP_ALLOWEDORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := LoadWithEnv[Config]("storefront", rel)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.AllowedOrigins)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Env.Env = "production"
		cfg.SecretKey.Access = "secret"
		applyDefaults(cfg)
		cfg.Session.Secure = true

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "develop without secret", mutate: func(cfg *Config) {
			cfg.Env.Env = "develop"
			cfg.SecretKey.Access = ""
		}},
		{name: "missing secret", mutate: func(cfg *Config) { cfg.SecretKey.Access = "" }, wantErr: "secretKey.access"},
		{name: "short session", mutate: func(cfg *Config) { cfg.Session.TTL = time.Second }, wantErr: "session.ttl"},
		{name: "unknown provider", mutate: func(cfg *Config) {
			cfg.PubSub = &PubSubConfig{Provider: "kafka"}
		}, wantErr: "pubsub.provider"},
		{name: "insecure cookie in production", mutate: func(cfg *Config) { cfg.Session.Secure = false }, wantErr: "session.secure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
