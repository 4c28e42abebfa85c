package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Cart     CartConfig
	Checkout CheckoutConfig
	Catalog  CatalogConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"VELORA_APP_ENV" required:"true"`
	Port         string `envconfig:"VELORA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"VELORA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"VELORA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"VELORA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"VELORA_REDIS_ADDR"`
	Password     string        `envconfig:"VELORA_REDIS_PASSWORD"`
	DB           int           `envconfig:"VELORA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"VELORA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"VELORA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"VELORA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"VELORA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"VELORA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CartConfig struct {
	// NotificationTTL controls how long the "item added" banner stays raised.
	NotificationTTL time.Duration `envconfig:"VELORA_CART_NOTIFICATION_TTL" default:"3s"`
}

type CheckoutConfig struct {
	// WalletDispatchTimeout bounds the redirect-wallet payment creation call.
	WalletDispatchTimeout time.Duration `envconfig:"VELORA_CHECKOUT_WALLET_DISPATCH_TIMEOUT" default:"10s"`
	// PendingOrderTTL bounds how long a redirect payment can stay unresolved.
	PendingOrderTTL time.Duration `envconfig:"VELORA_CHECKOUT_PENDING_ORDER_TTL" default:"30m"`
	RedirectBaseURL string        `envconfig:"VELORA_CHECKOUT_REDIRECT_BASE_URL" default:"http://localhost:3000"`
}

type CatalogConfig struct {
	SimulatedLatency time.Duration `envconfig:"VELORA_CATALOG_SIMULATED_LATENCY" default:"300ms"`
}
