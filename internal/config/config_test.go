package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.LogLevel)
				assert.Equal(t, "xsalsa20-poly1305", cfg.EncryptionAlgorithm)
				assert.Equal(t, "keyring", cfg.KeystoreDriver)
				assert.Equal(t, "com.lifenovel.keys", cfg.KeystoreServiceName)
				assert.True(t, cfg.KeystoreRequireUserPresence)
				assert.Equal(t, "", cfg.KeyringBackends)
				assert.Equal(t, "~/.lifenovel/keyring", cfg.KeyringFileDir)
				assert.Equal(t, "file:///var/lib/lifenovel/keys", cfg.SealedStoreBucketURL)
				assert.Equal(t, "127.0.0.1", cfg.ServerHost)
				assert.Equal(t, 8200, cfg.ServerPort)
				assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
				assert.True(t, cfg.RateLimitEnabled)
				assert.Equal(t, 20.0, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 40, cfg.RateLimitBurst)
				assert.False(t, cfg.CORSEnabled)
				assert.False(t, cfg.MetricsEnabled)
				assert.Equal(t, "lifenovel", cfg.MetricsNamespace)
				assert.Equal(t, 8201, cfg.MetricsPort)
			},
		},
		{
			name: "load sealed store configuration",
			envVars: map[string]string{
				"KEYSTORE_DRIVER":         "sealed",
				"SEALED_STORE_BUCKET_URL": "mem://",
				"KMS_KEY_URI":             "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4=",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "sealed", cfg.KeystoreDriver)
				assert.Equal(t, "mem://", cfg.SealedStoreBucketURL)
				assert.Equal(t, "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4=", cfg.KMSKeyURI)
			},
		},
		{
			name: "load keyring configuration",
			envVars: map[string]string{
				"KEYRING_BACKENDS":               "keychain, file",
				"KEYRING_FILE_DIR":               "/tmp/keys",
				"KEYRING_FILE_PASSWORD":          "hunter2",
				"KEYSTORE_REQUIRE_USER_PRESENCE": "false",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"keychain", "file"}, cfg.KeyringBackendList())
				assert.Equal(t, "/tmp/keys", cfg.KeyringFileDir)
				assert.Equal(t, "hunter2", cfg.KeyringFilePassword)
				assert.False(t, cfg.KeystoreRequireUserPresence)
			},
		},
		{
			name: "load custom server and algorithm",
			envVars: map[string]string{
				"SERVER_HOST":              "0.0.0.0",
				"SERVER_PORT":              "9090",
				"SHUTDOWN_TIMEOUT_SECONDS": "3",
				"ENCRYPTION_ALGORITHM":     "xchacha20-poly1305",
				"LOG_LEVEL":                "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0", cfg.ServerHost)
				assert.Equal(t, 9090, cfg.ServerPort)
				assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
				assert.Equal(t, "xchacha20-poly1305", cfg.EncryptionAlgorithm)
				assert.Equal(t, "debug", cfg.GetGinMode())
			},
		},
		{
			name: "load metrics and rate limit configuration",
			envVars: map[string]string{
				"METRICS_ENABLED":             "true",
				"METRICS_NAMESPACE":           "agent",
				"METRICS_PORT":                "9100",
				"RATE_LIMIT_ENABLED":          "false",
				"RATE_LIMIT_REQUESTS_PER_SEC": "2.5",
				"RATE_LIMIT_BURST":            "5",
				"CORS_ENABLED":                "true",
				"CORS_ALLOW_ORIGINS":          "http://localhost:8081",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "agent", cfg.MetricsNamespace)
				assert.Equal(t, 9100, cfg.MetricsPort)
				assert.False(t, cfg.RateLimitEnabled)
				assert.Equal(t, 2.5, cfg.RateLimitRequestsPerSec)
				assert.Equal(t, 5, cfg.RateLimitBurst)
				assert.True(t, cfg.CORSEnabled)
				assert.Equal(t, "http://localhost:8081", cfg.CORSAllowOrigins)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for key, value := range tt.envVars {
				require.NoError(t, os.Setenv(key, value))
			}

			tt.validate(t, Load())
		})
	}
}

func validConfig() *Config {
	return &Config{
		LogLevel:                "info",
		EncryptionAlgorithm:     "xsalsa20-poly1305",
		KeystoreDriver:          "keyring",
		KeystoreServiceName:     "com.lifenovel.keys",
		ServerPort:              8200,
		RateLimitEnabled:        true,
		RateLimitRequestsPerSec: 20,
		RateLimitBurst:          40,
		MetricsPort:             8201,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid defaults", mutate: func(cfg *Config) {}},
		{
			name:    "unknown log level",
			mutate:  func(cfg *Config) { cfg.LogLevel = "trace" },
			wantErr: "LogLevel",
		},
		{
			name:    "short nonce algorithm",
			mutate:  func(cfg *Config) { cfg.EncryptionAlgorithm = "aes-gcm" },
			wantErr: "EncryptionAlgorithm",
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *Config) { cfg.KeystoreDriver = "sqlite" },
			wantErr: "KeystoreDriver",
		},
		{
			name: "sealed without kms key",
			mutate: func(cfg *Config) {
				cfg.KeystoreDriver = "sealed"
				cfg.SealedStoreBucketURL = "mem://"
			},
			wantErr: "KMSKeyURI",
		},
		{
			name: "sealed with kms key",
			mutate: func(cfg *Config) {
				cfg.KeystoreDriver = "sealed"
				cfg.SealedStoreBucketURL = "mem://"
				cfg.KMSKeyURI = "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4="
			},
		},
		{
			name:    "port out of range",
			mutate:  func(cfg *Config) { cfg.ServerPort = 70000 },
			wantErr: "ServerPort",
		},
		{
			name: "metrics port clashes with server",
			mutate: func(cfg *Config) {
				cfg.MetricsEnabled = true
				cfg.MetricsPort = cfg.ServerPort
			},
			wantErr: "MetricsPort",
		},
		{
			name:    "zero burst with rate limit",
			mutate:  func(cfg *Config) { cfg.RateLimitBurst = 0 },
			wantErr: "RateLimitBurst",
		},
		{
			name: "cors webview origin",
			mutate: func(cfg *Config) {
				cfg.CORSEnabled = true
				cfg.CORSAllowOrigins = "capacitor://localhost"
			},
		},
		{
			name: "cors origin without scheme",
			mutate: func(cfg *Config) {
				cfg.CORSEnabled = true
				cfg.CORSAllowOrigins = "localhost:3000"
			},
			wantErr: "CORSAllowOrigins",
		},
		{
			name: "zero burst without rate limit",
			mutate: func(cfg *Config) {
				cfg.RateLimitEnabled = false
				cfg.RateLimitBurst = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
