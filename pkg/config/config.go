package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Reports  ReportsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHIPDESK_APP_ENV" required:"true"`
	Port         string `envconfig:"SHIPDESK_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SHIPDESK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHIPDESK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// UpstreamConfig points at the platform admin API that serves the raw
// report inputs (users, orders, carrier/platform stats, transactions).
type UpstreamConfig struct {
	BaseURL string        `envconfig:"SHIPDESK_UPSTREAM_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"SHIPDESK_UPSTREAM_TIMEOUT" default:"10s"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SHIPDESK_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SHIPDESK_REDIS_ADDR"`
	Password     string        `envconfig:"SHIPDESK_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHIPDESK_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHIPDESK_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHIPDESK_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHIPDESK_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHIPDESK_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHIPDESK_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type ReportsConfig struct {
	// CacheTTL bounds how stale a cached snapshot may be. Periods anchored
	// at "now" (today, this_week, this_year) move with the wall clock, so
	// the TTL stays short.
	CacheTTL time.Duration `envconfig:"SHIPDESK_REPORTS_CACHE_TTL" default:"60s"`
}
