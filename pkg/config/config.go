package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix namespaces every FoodieExpress environment variable.
	EnvPrefix = "FOODIE"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	Simulation    SimulationConfig
	Pricing       PricingConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"FOODIE_APP_ENV" default:"dev"`
	Port         string `envconfig:"FOODIE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"FOODIE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"FOODIE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// DBConfig selects the storage backend. The default is a local sqlite file,
// which matches the single-writer, device-local persistence model; postgres
// is available for shared deployments.
type DBConfig struct {
	Driver string `envconfig:"FOODIE_DB_DRIVER" default:"sqlite"`
	DSN    string `envconfig:"FOODIE_DB_DSN" default:"foodieexpress.db"`

	MaxOpenConns    int           `envconfig:"FOODIE_DB_MAX_OPEN_CONNS" default:"10"`
	MaxIdleConns    int           `envconfig:"FOODIE_DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"FOODIE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"FOODIE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) validate() error {
	switch db.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported db driver %q", db.Driver)
	}
	if db.DSN == "" {
		return fmt.Errorf("%s_DB_DSN is required", EnvPrefix)
	}
	return nil
}

// RedisConfig is optional; when no URL or address is set the API skips the
// auth rate limiter instead of failing to boot.
type RedisConfig struct {
	URL          string        `envconfig:"FOODIE_REDIS_URL"`
	Address      string        `envconfig:"FOODIE_REDIS_ADDR"`
	Password     string        `envconfig:"FOODIE_REDIS_PASSWORD"`
	DB           int           `envconfig:"FOODIE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"FOODIE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"FOODIE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"FOODIE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"FOODIE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"FOODIE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint was configured at all.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"FOODIE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"FOODIE_JWT_ISSUER" default:"foodieexpress"`
	ExpirationMinutes int    `envconfig:"FOODIE_JWT_EXPIRATION_MINUTES" default:"1440"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"FOODIE_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"FOODIE_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"FOODIE_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"FOODIE_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"FOODIE_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow      time.Duration `envconfig:"FOODIE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit  int           `envconfig:"FOODIE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit     int           `envconfig:"FOODIE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow     time.Duration `envconfig:"FOODIE_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit int           `envconfig:"FOODIE_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit    int           `envconfig:"FOODIE_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

// SimulationConfig controls the artificial latency that stands in for the
// upstream calls the product mocks out. Tests run with both at zero.
type SimulationConfig struct {
	AuthDelay     time.Duration `envconfig:"FOODIE_SIM_AUTH_DELAY" default:"1s"`
	CheckoutDelay time.Duration `envconfig:"FOODIE_SIM_CHECKOUT_DELAY" default:"2s"`
}

// PricingConfig carries the cart pricing constants. Tax rate is a percentage
// expressed as a decimal string so the arithmetic stays exact.
type PricingConfig struct {
	TaxRate     string `envconfig:"FOODIE_TAX_RATE" default:"0.08"`
	DeliveryFee int64  `envconfig:"FOODIE_DELIVERY_FEE" default:"50"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"FOODIE_AUTO_MIGRATE" default:"true"`
}
