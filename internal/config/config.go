// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allisson/go-env"
	"github.com/jellydator/validation"
	"github.com/joho/godotenv"

	cryptoDomain "github.com/worachetdee/lifenovelRN/internal/crypto/domain"
	keystoreDomain "github.com/worachetdee/lifenovelRN/internal/keystore/domain"
	customValidation "github.com/worachetdee/lifenovelRN/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level ("debug", "info", "warn", "error").
	LogLevel string

	// EncryptionAlgorithm is the cipher used for new envelopes
	// ("xsalsa20-poly1305" or "xchacha20-poly1305").
	EncryptionAlgorithm string

	// KeystoreDriver selects the secure store ("keyring", "sealed", "memory").
	KeystoreDriver string
	// KeystoreServiceName namespaces every stored entry.
	KeystoreServiceName string
	// KeystoreRequireUserPresence asks the backend to gate reads behind biometry or passcode.
	KeystoreRequireUserPresence bool

	// KeyringBackends restricts the keyring backends, comma separated. Empty allows all.
	KeyringBackends string
	// KeyringFileDir is the directory of the encrypted-file keyring backend.
	KeyringFileDir string
	// KeyringFilePassword unlocks the encrypted-file keyring backend.
	KeyringFilePassword string

	// SealedStoreBucketURL is the gocloud.dev bucket holding sealed secrets.
	SealedStoreBucketURL string
	// KMSKeyURI is the gocloud.dev secrets URL of the wrapping key.
	KMSKeyURI string

	// ServerHost is the host address the agent API binds to.
	ServerHost string
	// ServerPort is the port the agent API listens on.
	ServerPort int
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// RateLimitEnabled indicates whether per-IP rate limiting is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the sustained request rate allowed per client IP.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size per client IP.
	RateLimitBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace prefixes every metric name.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		EncryptionAlgorithm: env.GetString("ENCRYPTION_ALGORITHM", string(cryptoDomain.XSalsa20Poly1305)),

		// Secure store
		KeystoreDriver:              env.GetString("KEYSTORE_DRIVER", string(keystoreDomain.DriverKeyring)),
		KeystoreServiceName:         env.GetString("KEYSTORE_SERVICE_NAME", keystoreDomain.DefaultServiceName),
		KeystoreRequireUserPresence: env.GetBool("KEYSTORE_REQUIRE_USER_PRESENCE", true),
		KeyringBackends:             env.GetString("KEYRING_BACKENDS", ""),
		KeyringFileDir:              env.GetString("KEYRING_FILE_DIR", "~/.lifenovel/keyring"),
		KeyringFilePassword:         env.GetString("KEYRING_FILE_PASSWORD", ""),
		SealedStoreBucketURL:        env.GetString("SEALED_STORE_BUCKET_URL", "file:///var/lib/lifenovel/keys"),
		KMSKeyURI:                   env.GetString("KMS_KEY_URI", ""),

		// Agent API
		ServerHost:      env.GetString("SERVER_HOST", "127.0.0.1"),
		ServerPort:      env.GetInt("SERVER_PORT", 8200),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 20.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 40),

		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "lifenovel"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8201),
	}
}

// Validate checks cross-field constraints that defaults cannot guarantee.
func (c *Config) Validate() error {
	sealed := strings.EqualFold(c.KeystoreDriver, string(keystoreDomain.DriverSealed))

	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.EncryptionAlgorithm, validation.Required, validation.By(func(value any) error {
			_, err := cryptoDomain.ParseAlgorithm(value.(string))
			return err
		})),
		validation.Field(&c.KeystoreDriver, validation.Required, validation.By(func(value any) error {
			_, err := keystoreDomain.ParseDriver(value.(string))
			return err
		})),
		validation.Field(&c.KeystoreServiceName, validation.Required),
		validation.Field(&c.KMSKeyURI, validation.When(sealed, validation.Required)),
		validation.Field(&c.SealedStoreBucketURL, validation.When(sealed, validation.Required)),
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.MetricsPort, validation.When(c.MetricsEnabled,
			validation.Required, validation.Min(1), validation.Max(65535),
			validation.NotIn(c.ServerPort).Error("must differ from the server port"),
		)),
		validation.Field(&c.RateLimitRequestsPerSec, validation.When(c.RateLimitEnabled, validation.Required, validation.Min(0.001))),
		validation.Field(&c.RateLimitBurst, validation.When(c.RateLimitEnabled, validation.Required, validation.Min(1))),
		validation.Field(&c.CORSAllowOrigins, validation.When(c.CORSEnabled, customValidation.OriginList)),
	)
}

// KeyringBackendList splits KeyringBackends on commas.
func (c *Config) KeyringBackendList() []string {
	var backends []string
	for _, b := range strings.Split(c.KeyringBackends, ",") {
		if b = strings.TrimSpace(b); b != "" {
			backends = append(backends, b)
		}
	}
	return backends
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

// loadDotEnv loads the nearest .env file found walking up from the
// working directory.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
