package cliparse

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Port          int                `mapstructure:"port"`
	DatabaseURL   string             `mapstructure:"database_url"`
	DatabaseType  string             `mapstructure:"database_type"`
	AdminKeySalt  string             `mapstructure:"admin_key_salt"`
	IPHashSalt    string             `mapstructure:"ip_hash_salt"`
	DataDir       string             `mapstructure:"data_dir"`
	ReferenceYear int                `mapstructure:"reference_year"`
	SiteURL       string             `mapstructure:"site_url"`
	Origins       []string           `mapstructure:"allowed_origins"`
	TrustProxy    bool               `mapstructure:"trust_proxy"`
	Log           LogConfig          `mapstructure:"log"`
	Registration  RegistrationConfig `mapstructure:"registration"`
	RateLimit     RateLimitConfig    `mapstructure:"rate_limit"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type RegistrationConfig struct {
	DefaultHandler      string `mapstructure:"default_handler"`
	VoteAmericaRegister string `mapstructure:"voteamerica_register_url"`
	VoteAmericaVerify   string `mapstructure:"voteamerica_verify_url"`
	RockTheVoteURL      string `mapstructure:"rockthevote_url"`
	RockTheVotePartner  string `mapstructure:"rockthevote_partner"`
}

// RateLimitConfig bounds event submissions per client IP.
type RateLimitConfig struct {
	PerSecond float64 `mapstructure:"per_second"`
	Burst     int     `mapstructure:"burst"`
}

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// RegisterFlags adds the server flags to fs. Flags override env variables,
// which override config.yaml, which overrides defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.IntP("port", "p", 0, "Server port")
	fs.StringP("database-url", "d", "", "Database URL or sqlite path")
	fs.StringP("database-type", "t", "", "Database type (sqlite or postgres)")
	fs.String("admin-salt", "", "Admin key salt (prefer env)")
	fs.String("ip-salt", "", "Client IP hash salt (prefer env)")
	fs.String("data-dir", "", "Directory with election tables (default: embedded)")
	fs.String("log-level", "", "Log level")
	fs.Bool("trust-proxy", false, "Take client IPs from X-Forwarded-For/X-Real-IP")
	fs.String("config", "", "Path to config file")
}

var flagKeys = map[string]string{
	"port":          "port",
	"database-url":  "database_url",
	"database-type": "database_type",
	"admin-salt":    "admin_key_salt",
	"ip-salt":       "ip_hash_salt",
	"data-dir":      "data_dir",
	"log-level":     "log.level",
	"trust-proxy":   "trust_proxy",
}

// Load builds a Config from .env, config.yaml, env variables and the
// already-parsed flags in fs.
func Load(flags *pflag.FlagSet) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, eris.Wrap(err, "config: load .env")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 3318)
	v.SetDefault("database_url", "countmore.db")
	v.SetDefault("database_type", DatabaseSQLite)
	v.SetDefault("admin_key_salt", "")
	v.SetDefault("ip_hash_salt", "")
	v.SetDefault("data_dir", "")
	v.SetDefault("reference_year", 2020)
	v.SetDefault("site_url", "https://countmore.us")
	v.SetDefault("allowed_origins", []string{"https://countmore.us", "http://localhost:4321"})
	v.SetDefault("trust_proxy", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("registration.default_handler", "direct")
	v.SetDefault("registration.voteamerica_register_url", "https://countmore.us/register")
	v.SetDefault("registration.voteamerica_verify_url", "https://countmore.us/verify")
	v.SetDefault("registration.rockthevote_url", "https://register.rockthevote.com/registrants/new")
	v.SetDefault("registration.rockthevote_partner", "")
	v.SetDefault("rate_limit.per_second", 2.0)
	v.SetDefault("rate_limit.burst", 10)

	if flags != nil {
		for flag, key := range flagKeys {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, eris.Wrapf(err, "config: bind flag %s", flag)
				}
			}
		}
		if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
			v.SetConfigFile(f.Value.String())
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks settings that have no safe default.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return eris.Errorf("config: invalid port %d", c.Port)
	}

	switch c.DatabaseType {
	case DatabaseSQLite, DatabasePostgres:
	default:
		return eris.Errorf("config: database type must be sqlite or postgres (got %q)", c.DatabaseType)
	}
	if c.DatabaseURL == "" {
		return eris.New("config: database URL required (use -d or DATABASE_URL env)")
	}

	// Secrets - MUST be provided
	if c.AdminKeySalt == "" {
		return eris.New("config: ADMIN_KEY_SALT required")
	}
	if c.IPHashSalt == "" {
		return eris.New("config: IP_HASH_SALT required")
	}

	if c.RateLimit.PerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return eris.New("config: rate limit must be positive")
	}
	return nil
}
