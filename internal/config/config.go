package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Manifest  ManifestConfig  `yaml:"manifest"`
	Playlist  PlaylistConfig  `yaml:"playlist"`
	Session   SessionConfig   `yaml:"session"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// StaticDir is served at "/" when set (pre-built front-end).
	StaticDir string `yaml:"static_dir" env:"SERVER_STATIC_DIR"`
	// ClipsDir is served at "/hls_clips/" when set and no base URL is used.
	ClipsDir string `yaml:"clips_dir" env:"SERVER_CLIPS_DIR"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ManifestConfig locates the clip catalog.
type ManifestConfig struct {
	Path string `yaml:"path" env:"MANIFEST_PATH" env-required:"true"`
	// FixedTextPath optionally overrides the manifest's fixed source text.
	FixedTextPath string `yaml:"fixed_text_path" env:"MANIFEST_FIXED_TEXT_PATH"`
}

// PlaylistConfig holds matching and serialization settings.
type PlaylistConfig struct {
	MaxPhraseLength int     `yaml:"max_phrase_length" env:"PLAYLIST_MAX_PHRASE_LENGTH" env-default:"10"`
	BaseURL         string  `yaml:"base_url"          env:"PLAYLIST_BASE_URL"`
	OpenerFilename  string  `yaml:"opener_filename"   env:"PLAYLIST_OPENER_FILENAME"   env-default:"opener.ts"`
	OpenerDuration  float64 `yaml:"opener_duration"   env:"PLAYLIST_OPENER_DURATION"   env-default:"8.08"`
	TargetDuration  int     `yaml:"target_duration"   env:"PLAYLIST_TARGET_DURATION"   env-default:"10"`
	MaxTextLength   int     `yaml:"max_text_length"   env:"PLAYLIST_MAX_TEXT_LENGTH"   env-default:"20000"`
}

// SessionConfig controls the in-memory session store.
type SessionConfig struct {
	TTL         time.Duration `yaml:"ttl"          env:"SESSION_TTL"          env-default:"1h"`
	MaxSessions int           `yaml:"max_sessions" env:"SESSION_MAX_SESSIONS" env-default:"1000"`
}

// RateLimitConfig limits session creation per client.
type RateLimitConfig struct {
	SessionsPerMinute int           `yaml:"sessions_per_minute" env:"RATE_LIMIT_SESSIONS_PER_MINUTE" env-default:"30"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"1m"`
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
