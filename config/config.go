package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the configuration for the Conferential server and its dependencies.
type Config struct {
	// Listen is the address the server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// LogLevel is the log level for the server (debug, info, warn, error).
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// AllowedOrigin is the origin allowed to make cross-origin requests.
	AllowedOrigin string `yaml:"allowed_origin" mapstructure:"allowed_origin"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// Auth holds the token signing configuration.
	Auth *AuthConfig `yaml:"auth" mapstructure:"auth"`
	// Admin holds the credentials for the bootstrapped admin account.
	Admin *AdminConfig `yaml:"admin" mapstructure:"admin"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	// Driver selects the database driver ("sqlite" or "postgres").
	Driver string `yaml:"driver" mapstructure:"driver"`
	// Path is the sqlite database file path. Only used with the sqlite driver.
	Path string `yaml:"path" mapstructure:"path"`
	// Host is the postgres server host.
	Host string `yaml:"host" mapstructure:"host"`
	// Port is the postgres server port.
	Port int `yaml:"port" mapstructure:"port"`
	// Name is the database name.
	Name string `yaml:"name" mapstructure:"name"`
	// User is the database user.
	User string `yaml:"user" mapstructure:"user"`
	// Password is the database password.
	Password string `yaml:"password" mapstructure:"password"`
}

// AuthConfig holds the token signing configuration.
type AuthConfig struct {
	// JWTSecret is the secret used to sign access tokens.
	JWTSecret string `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	// TokenTTL is the access token lifetime in minutes.
	TokenTTL int `yaml:"token_ttl" mapstructure:"token_ttl"`
}

// AdminConfig holds the credentials for the bootstrapped admin account.
// If Email is empty, no admin account is created at startup.
type AdminConfig struct {
	Email    string `yaml:"email" mapstructure:"email"`
	Password string `yaml:"password" mapstructure:"password"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it will use default search paths for config files.
// Environment variables with the CONFERENTIAL_ prefix override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("CONFERENTIAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var configFileFound bool
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.conferential")
		v.AddConfigPath("/etc/conferential")
	}

	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileFound = true
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if configFileFound {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
		log.Debug("Environment variables with CONFERENTIAL_ prefix will override config file values")
	}

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:3000")
	v.SetDefault("log_level", "info")
	v.SetDefault("allowed_origin", "http://localhost:5173")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "./data/conferential.db")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "conferential")
	v.SetDefault("database.user", "conferential")
	v.SetDefault("database.password", "")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 60) // 1 hour

	v.SetDefault("admin.email", "")
	v.SetDefault("admin.password", "")
}

// validateConfig checks that the required configuration values are set.
func validateConfig(c *Config) error {
	if c.Auth == nil || c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be positive")
	}
	if c.Database == nil {
		return fmt.Errorf("database configuration is required")
	}
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	case "postgres":
		if c.Database.Host == "" || c.Database.Name == "" || c.Database.User == "" {
			return fmt.Errorf("database.host, database.name and database.user are required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}
	if c.Admin != nil && c.Admin.Email != "" && c.Admin.Password == "" {
		return fmt.Errorf("admin.password is required when admin.email is set")
	}
	return nil
}
