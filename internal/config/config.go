package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// authentication, the scrape runner, and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response.
		// Progress streams hold a response open, so this stays generous.
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"30m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// FrontendOrigin is the origin allowed by CORS. Empty allows any origin.
		FrontendOrigin string `env:"HTTP_FRONTEND_ORIGIN" env-default:"" yaml:"frontendOrigin"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"urs" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT configures verification and minting of access tokens.
	JWT struct {
		// Secret is the shared HS256 signing secret. Must match the one used
		// by the managed auth service so its tokens verify here.
		Secret string `env:"JWT_SECRET" yaml:"secret"`
		// Audience is the expected "aud" claim of accepted tokens.
		Audience string `env:"JWT_AUDIENCE" env-default:"authenticated" yaml:"audience"`
	} `yaml:"jwt"`

	// Auth configures the upstream auth provider and the optional demo mode.
	Auth struct {
		// BaseURL is the root URL of the managed auth deployment.
		BaseURL string `env:"AUTH_BASE_URL" yaml:"baseUrl"`
		// AnonKey is the public API key sent with auth provider requests.
		AnonKey string `env:"AUTH_ANON_KEY" yaml:"anonKey"`
		// DemoEnabled turns on the local demo login that bypasses the
		// provider entirely.
		DemoEnabled bool `env:"AUTH_DEMO_ENABLED" env-default:"false" yaml:"demoEnabled"`
		// DemoEmail is the email accepted by the demo login.
		DemoEmail string `env:"AUTH_DEMO_EMAIL" env-default:"demo@example.com" yaml:"demoEmail"`
		// DemoPassword is the password accepted by the demo login.
		DemoPassword string `env:"AUTH_DEMO_PASSWORD" env-default:"demo1234" yaml:"demoPassword"`
		// TokenTTL is the lifetime of locally minted demo tokens.
		TokenTTL time.Duration `env:"AUTH_TOKEN_TTL" env-default:"24h" yaml:"tokenTtl"`
	} `yaml:"auth"`

	// Secrets configures encryption of stored Reddit credentials.
	Secrets struct {
		// Key is the base64-encoded 32-byte key used to seal credentials at
		// rest.
		Key string `env:"SECRETS_KEY" yaml:"key"`
	} `yaml:"secrets"`

	// Scraper configures the background job runner.
	Scraper struct {
		// MaxWorkers caps how many scrape jobs run concurrently.
		MaxWorkers int `env:"SCRAPER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// JobTimeout bounds the execution time of a single scrape job.
		JobTimeout time.Duration `env:"SCRAPER_JOB_TIMEOUT" env-default:"30m" yaml:"jobTimeout"`
	} `yaml:"scraper"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
