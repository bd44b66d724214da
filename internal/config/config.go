package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Daum      DaumConfig      `yaml:"daum"`
	Format    FormatConfig    `yaml:"format"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	CORS      CORSConfig      `yaml:"cors"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	TrustProxy      bool          `yaml:"trust_proxy"      env:"SERVER_TRUST_PROXY"      env-default:"false"`
}

// DaumConfig holds settings for the upstream Daum dictionary site.
type DaumConfig struct {
	BaseURL      string        `yaml:"base_url"       env:"DAUM_BASE_URL"       env-default:"https://dic.daum.net"`
	DictType     string        `yaml:"dict_type"      env:"DAUM_DICT_TYPE"      env-default:"hanja"`
	SupType      string        `yaml:"sup_type"       env:"DAUM_SUP_TYPE"       env-default:"KUMSUNG_HH"`
	Timeout      time.Duration `yaml:"timeout"        env:"DAUM_TIMEOUT"        env-default:"10s"`
	UserAgent    string        `yaml:"user_agent"     env:"DAUM_USER_AGENT"     env-default:"hanjadic/1.0 (+https://github.com/heartmarshall/hanjadic)"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" env:"DAUM_MAX_BODY_BYTES" env-default:"4194304"`
}

// FormatConfig holds output rendering settings.
type FormatConfig struct {
	ReferMarker string `yaml:"refer_marker" env:"FORMAT_REFER_MARKER" env-default:"※"`
}

// RateLimitConfig holds per-IP limits for the lookup endpoint.
// RequestsPerMinute of 0 disables limiting.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATELIMIT_REQUESTS_PER_MINUTE" env-default:"60"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATELIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Accept,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
