package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Blob        BlobConfig        `mapstructure:"blob"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	Facilitator FacilitatorConfig `mapstructure:"facilitator"`
	Chain       ChainConfig       `mapstructure:"chain"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // postgres, memory
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
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// BlobConfig locates file content payloads on disk.
type BlobConfig struct {
	Dir string `mapstructure:"dir"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// FacilitatorConfig describes the upstream settlement service. When no URL
// is set the gate runs challenge-only: it issues 402 challenges but cannot
// settle payments.
type FacilitatorConfig struct {
	URL             string        `mapstructure:"url"`
	Network         string        `mapstructure:"network"`
	AssetAddress    string        `mapstructure:"asset_address"`
	AssetDecimals   int           `mapstructure:"asset_decimals"`
	ResourceBaseURL string        `mapstructure:"resource_base_url"`
	SettleTimeout   time.Duration `mapstructure:"settle_timeout"`
}

// Configured reports whether settlement is possible.
func (f FacilitatorConfig) Configured() bool {
	return f.URL != ""
}

// ChainConfig controls the in-process payment-splitting ledger and its
// sweep worker.
type ChainConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	ControllerAddress  string        `mapstructure:"controller_address"`
	PlatformAddress    string        `mapstructure:"platform_address"`
	PlatformFeePercent int64         `mapstructure:"platform_fee_percent"`
	AssetAddress       string        `mapstructure:"asset_address"`
	SweepInterval      time.Duration `mapstructure:"sweep_interval"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CPG_ (Creator PayGate).
// Nested keys use underscore: CPG_DATABASE_HOST, CPG_FACILITATOR_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "creator_paygate")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("blob.dir", "./data/blobs")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "creator-paygate")
	v.SetDefault("facilitator.url", "")
	v.SetDefault("facilitator.network", "base")
	v.SetDefault("facilitator.asset_address", "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913")
	v.SetDefault("facilitator.asset_decimals", 6)
	v.SetDefault("facilitator.resource_base_url", "http://localhost:8080")
	v.SetDefault("facilitator.settle_timeout", "30s")
	v.SetDefault("chain.enabled", false)
	v.SetDefault("chain.controller_address", "")
	v.SetDefault("chain.platform_address", "")
	v.SetDefault("chain.platform_fee_percent", 20)
	v.SetDefault("chain.asset_address", "")
	v.SetDefault("chain.sweep_interval", "15s")
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

	// Environment variables: CPG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("CPG")
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
