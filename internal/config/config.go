// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application.
type Config struct {
	// Server Configuration
	GinMode        string        `mapstructure:"GIN_MODE"`
	ServerHost     string        `mapstructure:"SERVER_HOST"`
	ServerPort     string        `mapstructure:"SERVER_PORT"`
	ServerTimeout  time.Duration `mapstructure:"SERVER_TIMEOUT_SECONDS"`
	SwaggerEnabled bool          `mapstructure:"SWAGGER_ENABLED"`
	CORSOrigins    []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Database Configuration
	DBDriver          string        `mapstructure:"DB_DRIVER"`
	DBHost            string        `mapstructure:"DB_HOST"`
	DBPort            string        `mapstructure:"DB_PORT"`
	DBUser            string        `mapstructure:"DB_USER"`
	DBPassword        string        `mapstructure:"DB_PASSWORD"`
	DBName            string        `mapstructure:"DB_NAME"`
	DBSSLMode         string        `mapstructure:"DB_SSL_MODE"`
	DBTimezone        string        `mapstructure:"DB_TIMEZONE"`
	DBMaxIdleConns    int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBMaxOpenConns    int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBConnMaxLifetime time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME_MINUTES"`
	DBSource          string        `mapstructure:"DB_SOURCE"`
	DBAutoMigrate     bool          `mapstructure:"DB_AUTO_MIGRATE"`

	// Logging Configuration
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Security
	BcryptCost int `mapstructure:"BCRYPT_COST"`

	// Profiles
	DefaultProfileImageURL string `mapstructure:"DEFAULT_PROFILE_IMAGE_URL"`

	// Cron Jobs
	OrphanSweepSchedule   string        `mapstructure:"ORPHAN_SWEEP_SCHEDULE"`
	OrphanCredentialGrace time.Duration `mapstructure:"ORPHAN_CREDENTIAL_GRACE_MINUTES"`

	// Elasticsearch Configuration
	ElasticsearchURL   string `mapstructure:"ELASTICSEARCH_URL"`
	ElasticsearchIndex string `mapstructure:"ELASTICSEARCH_INDEX"`
}

// Load attempts to load configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_TIMEOUT_SECONDS", 30)
	v.SetDefault("SWAGGER_ENABLED", true)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "wedding_directory_db")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MINUTES", 60)
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("BCRYPT_COST", 10)

	v.SetDefault("DEFAULT_PROFILE_IMAGE_URL", "https://placehold.co/400x400?text=Profile")

	v.SetDefault("ORPHAN_SWEEP_SCHEDULE", "@hourly")
	v.SetDefault("ORPHAN_CREDENTIAL_GRACE_MINUTES", 15)

	// Empty URL disables the search index.
	v.SetDefault("ELASTICSEARCH_URL", "")
	v.SetDefault("ELASTICSEARCH_INDEX", "freelancers")
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Convert duration fields
	cfg.ServerTimeout = time.Duration(v.GetInt("SERVER_TIMEOUT_SECONDS")) * time.Second
	cfg.DBConnMaxLifetime = time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME_MINUTES")) * time.Minute
	cfg.OrphanCredentialGrace = time.Duration(v.GetInt("ORPHAN_CREDENTIAL_GRACE_MINUTES")) * time.Minute
	cfg.CORSOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	switch cfg.DBDriver {
	case DriverPostgres:
		// DB_SOURCE wins when set explicitly; otherwise build a DSN from the parts.
		if strings.TrimSpace(cfg.DBSource) == "" {
			cfg.DBSource = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
				cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode, cfg.DBTimezone)
		}
	case DriverSQLite:
		if strings.TrimSpace(cfg.DBSource) == "" {
			cfg.DBSource = "wedding_directory.db"
		}
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (expected %q or %q)", cfg.DBDriver, DriverPostgres, DriverSQLite)
	}

	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", cfg.BcryptCost)
	}

	return &cfg, nil
}

// ServerAddress returns the host:port the HTTP server listens on.
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%s", c.ServerHost, c.ServerPort)
}

// SearchEnabled reports whether an Elasticsearch URL is configured.
func (c *Config) SearchEnabled() bool {
	return strings.TrimSpace(c.ElasticsearchURL) != ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
