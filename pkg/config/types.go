package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server       ServerConfig     `mapstructure:"server"`
	Database     DatabaseConfig   `mapstructure:"database"`
	Playback     PlaybackConfig   `mapstructure:"playback"`
	Processing   ProcessingConfig `mapstructure:"processing"`
	Storage      StorageConfig    `mapstructure:"storage"`
	Render       RenderConfig     `mapstructure:"render"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
	Security     SecurityConfig   `mapstructure:"security"`
	Logging      LoggingConfig    `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	EnableWAL             bool          `mapstructure:"enable_wal"`
	EnableForeignKeys     bool          `mapstructure:"enable_foreign_keys"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// PlaybackConfig contains preview playback settings
type PlaybackConfig struct {
	// ImageSegmentDuration is how long a storyboard still holds on
	// screen, in seconds
	ImageSegmentDuration float64 `mapstructure:"image_segment_duration"`
}

// ProcessingConfig contains background job settings
type ProcessingConfig struct {
	Workers          int           `mapstructure:"workers"`
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	JobRetentionDays int           `mapstructure:"job_retention_days"`
}

// StorageConfig contains storage settings
type StorageConfig struct {
	ExportDir string `mapstructure:"export_dir"`
	TempDir   string `mapstructure:"temp_dir"`
}

// RenderConfig contains render output defaults
type RenderConfig struct {
	Resolution string `mapstructure:"resolution"`
	FPS        int    `mapstructure:"fps"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
	Burst             int  `mapstructure:"burst"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS     bool     `mapstructure:"enable_cors"`
	CORSOrigins    []string `mapstructure:"cors_origins"`
	CORSMethods    []string `mapstructure:"cors_methods"`
	CORSHeaders    []string `mapstructure:"cors_headers"`
	EnableRecovery bool     `mapstructure:"enable_recovery"`
	MaxRequestSize int64    `mapstructure:"max_request_size"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
