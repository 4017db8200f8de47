package config

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime settings loaded from an optional config file plus
// environment variables.
type Config struct {
	// Database
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`

	// JWT
	JWTSecret        string        `mapstructure:"JWT_SECRET"`
	JWTAccessExpiry  time.Duration `mapstructure:"JWT_ACCESS_EXPIRY"`
	JWTRefreshExpiry time.Duration `mapstructure:"JWT_REFRESH_EXPIRY"`

	// Operator access. Calls authenticated by the admin token act without
	// a user identity (nil actor on recorded activities).
	AdminEmails  string `mapstructure:"ADMIN_EMAILS"`
	AdminUserIDs string `mapstructure:"ADMIN_USER_IDS"`
	AdminToken   string `mapstructure:"ADMIN_TOKEN"`

	// Server
	Port        string `mapstructure:"PORT"`
	CORSOrigins string `mapstructure:"CORS_ORIGINS"`

	// Redis (optional; empty disables caching)
	RedisAddr string `mapstructure:"REDIS_ADDR"`

	// Feed
	FeedDefaultLimit int `mapstructure:"FEED_DEFAULT_LIMIT"`
	FeedMaxLimit     int `mapstructure:"FEED_MAX_LIMIT"`
}

// Load reads config.yml if present, then environment variables, then defaults.
func Load() *Config {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			slog.Info("config file not found, using environment and defaults")
		} else {
			slog.Error("failed to read config file", "error", err)
		}
	}

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "")
	viper.SetDefault("DB_NAME", "inkle")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_ACCESS_EXPIRY", "15m")
	viper.SetDefault("JWT_REFRESH_EXPIRY", "168h")
	viper.SetDefault("CORS_ORIGINS", "*")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("FEED_DEFAULT_LIMIT", 50)
	viper.SetDefault("FEED_MAX_LIMIT", 100)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		slog.Error("failed to decode config", "error", err)
		return &Config{}
	}
	return &cfg
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}
