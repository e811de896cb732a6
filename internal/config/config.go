package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the contact relay service.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Redis   RedisConfig   `yaml:"redis"`
	Resend  ResendConfig  `yaml:"resend"`
	SES     SESConfig     `yaml:"ses"`
	Contact ContactConfig `yaml:"contact"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// GetHost returns the server host, listening on all interfaces when running
// in a container environment.
func (c ServerConfig) GetHost() string {
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "0.0.0.0"
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return c.Host
}

// RedisConfig holds the rate-limit store connection settings.
type RedisConfig struct {
	URL string `yaml:"url"`
}

// ResendConfig holds Resend API configuration.
type ResendConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the HTTP client timeout as a duration.
func (c ResendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SESConfig holds AWS SES credentials for the alternative dispatcher.
type SESConfig struct {
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// ContactConfig holds the contact endpoint's own settings.
type ContactConfig struct {
	// Provider selects the email dispatcher: "resend", "ses" or "log".
	Provider string `yaml:"provider"`
	// From is the fixed sender identity, e.g. `Portfolio Contact <onboarding@resend.dev>`.
	From string `yaml:"from"`
	// To is the portfolio owner's address.
	To string `yaml:"to"`
	// RateLimitSalt is the secret salt mixed into identifier hashes. No
	// default: a missing salt is a deployment defect the handler reports.
	RateLimitSalt string `yaml:"rate_limit_salt"`
	// RateLimitWindowSeconds is how long one submission blocks the next.
	RateLimitWindowSeconds int `yaml:"rate_limit_window_seconds"`
	// AllowedOrigins lists browser origins permitted to call the endpoint.
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// RateLimitWindow returns the rate-limit window as a duration.
func (c ContactConfig) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Redis.URL == "" {
		cfg.Redis.URL = "redis://localhost:6379/0"
	}
	if cfg.Resend.BaseURL == "" {
		cfg.Resend.BaseURL = "https://api.resend.com"
	}
	if cfg.Resend.TimeoutSeconds == 0 {
		cfg.Resend.TimeoutSeconds = 30
	}
	if cfg.SES.Region == "" {
		cfg.SES.Region = "us-east-1"
	}
	if cfg.Contact.Provider == "" {
		cfg.Contact.Provider = "resend"
	}
	if cfg.Contact.From == "" {
		cfg.Contact.From = "Portfolio Contact <onboarding@resend.dev>"
	}
	if cfg.Contact.RateLimitWindowSeconds == 0 {
		cfg.Contact.RateLimitWindowSeconds = 24 * 60 * 60
	}
	if len(cfg.Contact.AllowedOrigins) == 0 {
		cfg.Contact.AllowedOrigins = []string{"http://localhost:5173"}
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so secrets can live in .env locally and in real env vars in production.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		cfg.Resend.APIKey = apiKey
	}
	if baseURL := os.Getenv("RESEND_BASE_URL"); baseURL != "" {
		cfg.Resend.BaseURL = baseURL
	}
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}
	// Upstash-style variable name used by some hosting platforms.
	if kvURL := os.Getenv("KV_URL"); kvURL != "" {
		cfg.Redis.URL = kvURL
	}
	if salt := os.Getenv("RATE_LIMIT_SALT"); salt != "" {
		cfg.Contact.RateLimitSalt = salt
	}
	if to := os.Getenv("CONTACT_TO"); to != "" {
		cfg.Contact.To = to
	}
	if from := os.Getenv("CONTACT_FROM"); from != "" {
		cfg.Contact.From = from
	}
	if provider := os.Getenv("CONTACT_PROVIDER"); provider != "" {
		cfg.Contact.Provider = provider
	}
	if accessKey := os.Getenv("AWS_SES_ACCESS_KEY"); accessKey != "" {
		cfg.SES.AccessKey = accessKey
	}
	if secretKey := os.Getenv("AWS_SES_SECRET_KEY"); secretKey != "" {
		cfg.SES.SecretKey = secretKey
	}
	if region := os.Getenv("AWS_SES_REGION"); region != "" {
		cfg.SES.Region = region
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	return cfg, nil
}
