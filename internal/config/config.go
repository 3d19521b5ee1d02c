package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/crypto/bcrypt"
)

// Store backends.
const (
	BackendSQL   = "sql"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// SQL drivers.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// MaxListLimit bounds LIST_LIMIT.
const MaxListLimit = 10000

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	StoreBackend string `envconfig:"STORE_BACKEND" default:"sql"`
	DBDriver     string `envconfig:"DB_DRIVER" default:"sqlite"`
	MySQLDSN     string `envconfig:"MYSQL_DSN" default:"user:password@tcp(localhost:3306)/wedding?charset=utf8mb4&parseTime=True&loc=UTC"`
	SQLitePath   string `envconfig:"SQLITE_PATH" default:"wedding.db"`
	ResetDB      bool   `envconfig:"RESET_DB" default:"false"`

	RedisAddr string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPass string `envconfig:"REDIS_PASSWORD"`
	RedisDB   int    `envconfig:"REDIS_DB" default:"0"`

	MongoURI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"wedding_planner"`

	JWTSecret  string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL   time.Duration `envconfig:"TOKEN_TTL" default:"30m"`
	BcryptCost int           `envconfig:"BCRYPT_COST" default:"10"`
	ListLimit  int           `envconfig:"LIST_LIMIT" default:"1000"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	CORSOrigins []string `envconfig:"CORS_ORIGINS" default:"*"`
	SwaggerHost string   `envconfig:"SWAGGER_HOST"`
}

// Load builds Config from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints envconfig cannot express.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("jwt secret must be provided")
	}
	switch c.StoreBackend {
	case BackendSQL:
		if c.DBDriver != DriverMySQL && c.DBDriver != DriverSQLite {
			return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
		}
	case BackendRedis, BackendMongo:
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.StoreBackend)
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.ListLimit < 1 || c.ListLimit > MaxListLimit {
		return fmt.Errorf("LIST_LIMIT must be between 1 and %d", MaxListLimit)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}
