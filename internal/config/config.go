package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Postgres   PostgresConfig   `validate:"required"`
	Auth       AuthConfig       `validate:"required"`
	RBAC       RBACConfig
	Logging    LoggingConfig
}

type DeploymentConfig struct {
	Mode string `validate:"required,oneof=local dev prod"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type PostgresConfig struct {
	Host                   string `validate:"required"`
	Port                   int    `validate:"required"`
	User                   string `validate:"required"`
	Password               string
	DBName                 string `validate:"required"`
	SSLMode                string `validate:"required"`
	MaxOpenConns           int
	MaxIdleConns           int
	ConnMaxLifetimeMinutes int
}

type AuthConfig struct {
	// Secret signs and verifies JWT bearer tokens
	Secret string `validate:"required"`
	// APIKeyHeader is the header carrying machine API keys
	APIKeyHeader string
	// APIKeys maps a SHA-256 key hash to its tenant/user/role binding
	APIKeys map[string]APIKeyBinding
}

type APIKeyBinding struct {
	TenantID string
	UserID   string
	Role     string
}

type RBACConfig struct {
	RolesConfigPath string
}

type LoggingConfig struct {
	Level string
}

// GetDSN returns the postgres connection string
func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func NewConfig() (*Configuration, error) {
	// Local overrides, ignored when the file is absent
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/stayloop")

	v.SetEnvPrefix("STAYLOOP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", "local")
	v.SetDefault("server.address", ":8080")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "stayloop")
	v.SetDefault("postgres.dbname", "stayloop")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.maxopenconns", 10)
	v.SetDefault("postgres.maxidleconns", 5)
	v.SetDefault("postgres.connmaxlifetimeminutes", 30)
	v.SetDefault("auth.secret", "stayloop-local-secret")
	v.SetDefault("auth.apikeyheader", "x-api-key")
	v.SetDefault("rbac.rolesconfigpath", "./config/rbac/roles.json")
	v.SetDefault("logging.level", "info")
}

func (c Configuration) Validate() error {
	return validator.New().Struct(c)
}
