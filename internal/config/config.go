package config

// Config holds all application configuration.
// It is constructed once at process start by Load and passed to the
// components that need it; nothing reads configuration from ambient
// global state after startup.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port"         validate:"required,gt=0,lt=65536"`
	LogLevel    string `mapstructure:"log_level"    validate:"required,oneof=debug info warn error"`
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains the token-signing settings.
// RegistrationTokenLifetimeMinutes applies to the token issued at signup;
// login session tokens carry a fixed one-hour lifetime.
type AuthConfig struct {
	JWTSecret                        string `mapstructure:"jwt_secret"                          validate:"required,min=32"`
	RegistrationTokenLifetimeMinutes int    `mapstructure:"registration_token_lifetime_minutes" validate:"required,gt=0"`
}
