package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Token    TokenConfig    `mapstructure:"token"`
	Yield    YieldConfig    `mapstructure:"yield"`
	Payment  PaymentConfig  `mapstructure:"payment"`
	Solana   SolanaConfig   `mapstructure:"solana"`
	Sweep    SweepConfig    `mapstructure:"sweep"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// TokenConfig configures session token minting and validation.
type TokenConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"` // session lifetime
	Issuer string        `mapstructure:"issuer"`
}

// YieldConfig parameterises the simulated appreciation model. The model is a
// stand-in for reading a real staking contract's exchange rate; swapping in a
// real source only replaces the balance adapter, not these knobs' consumers.
type YieldConfig struct {
	APY            float64       `mapstructure:"apy"`             // percent, e.g. 8.5
	ReferenceDate  string        `mapstructure:"reference_date"`  // RFC3339; staking epoch start
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`       // freshness window
	CacheRetention time.Duration `mapstructure:"cache_retention"` // stale-if-error window
}

// PaymentConfig configures the two-phase payment protocol.
type PaymentConfig struct {
	Treasury      string        `mapstructure:"treasury"` // recipient address in payment descriptors
	Asset         string        `mapstructure:"asset"`    // settlement asset label
	Currency      string        `mapstructure:"currency"` // receipt currency label
	AllocationTTL time.Duration `mapstructure:"allocation_ttl"`
	NonceTTL      time.Duration `mapstructure:"nonce_ttl"`
	InvokeTimeout time.Duration `mapstructure:"invoke_timeout"`
}

type SolanaConfig struct {
	RPCURL  string        `mapstructure:"rpc_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SweepConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: YSG_ (Yield Spend Gateway).
// Nested keys use underscore: YSG_DATABASE_HOST, YSG_TOKEN_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "yield_gateway")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("token.secret", "")
	v.SetDefault("token.expiry", "24h")
	v.SetDefault("token.issuer", "yield-spend-gateway")
	v.SetDefault("yield.apy", 8.0)
	v.SetDefault("yield.reference_date", "2025-01-01T00:00:00Z")
	v.SetDefault("yield.cache_ttl", "5m")
	v.SetDefault("yield.cache_retention", "24h")
	v.SetDefault("payment.treasury", "")
	v.SetDefault("payment.asset", "USDC")
	v.SetDefault("payment.currency", "USDC")
	v.SetDefault("payment.allocation_ttl", "5m")
	v.SetDefault("payment.nonce_ttl", "10m")
	v.SetDefault("payment.invoke_timeout", "60s")
	v.SetDefault("solana.rpc_url", "https://api.mainnet-beta.solana.com")
	v.SetDefault("solana.timeout", "10s")
	v.SetDefault("sweep.interval", "1m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: YSG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("YSG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
