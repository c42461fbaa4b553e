package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config holds application level configuration loaded from an optional
// config file and environment variables.
type Config struct {
	ServerPort       string        `mapstructure:"server_port"`
	CORSAllowOrigins []string      `mapstructure:"cors_allow_origins"`
	DBDriver         string        `mapstructure:"db_driver"`
	DBDSN            string        `mapstructure:"db_dsn"`
	DBMaxOpenConns   int           `mapstructure:"db_max_open_conns"`
	DBMaxIdleConns   int           `mapstructure:"db_max_idle_conns"`
	ResetDB          bool          `mapstructure:"reset_db"`
	RedisAddr        string        `mapstructure:"redis_addr"`
	RedisDB          int           `mapstructure:"redis_db"`
	RedisPass        string        `mapstructure:"redis_password"`
	JWTSecret        string        `mapstructure:"jwt_secret"`
	TokenTTL         time.Duration `mapstructure:"token_ttl"`
	BcryptCost       int           `mapstructure:"bcrypt_cost"`
	AdminEmail       string        `mapstructure:"admin_email"`
	AdminPassword    string        `mapstructure:"admin_password"`
	AdminName        string        `mapstructure:"admin_name"`
	LogLevel         string        `mapstructure:"log_level"`
	LogFormat        string        `mapstructure:"log_format"`
	SwaggerHost      string        `mapstructure:"swagger_host"`
}

// Supported values for DBDriver.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Load builds Config from defaults, config.yaml (if present) and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.DBDriver = strings.ToLower(cfg.DBDriver)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_port", "8000")
	v.SetDefault("cors_allow_origins", []string{"*"})
	v.SetDefault("db_driver", DriverSQLite)
	v.SetDefault("db_dsn", "complaints.db?_pragma=foreign_keys(1)")
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("reset_db", false)
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("redis_password", "")
	v.SetDefault("jwt_secret", "change-me")
	v.SetDefault("token_ttl", "24h")
	v.SetDefault("bcrypt_cost", bcrypt.DefaultCost)
	v.SetDefault("admin_email", "admin@college.edu")
	v.SetDefault("admin_password", "admin123")
	v.SetDefault("admin_name", "Admin")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("swagger_host", "")
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("config: jwt_secret must not be empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("config: token_ttl must be positive, got %s", c.TokenTTL)
	}
	if c.ServerPort == "" {
		return fmt.Errorf("config: server_port must not be empty")
	}
	switch c.DBDriver {
	case DriverSQLite, DriverMySQL, DriverPostgres:
	default:
		return fmt.Errorf("config: unsupported db_driver %q", c.DBDriver)
	}
	if c.DBDSN == "" {
		return fmt.Errorf("config: db_dsn must not be empty")
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("config: bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.AdminEmail == "" || c.AdminPassword == "" {
		return fmt.Errorf("config: admin_email and admin_password must be set")
	}
	return nil
}
