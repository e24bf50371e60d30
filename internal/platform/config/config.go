package config

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/duasfl8r/vestat/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string `validate:"required_if=Storage postgres"`
	Storage        string `validate:"oneof=postgres memory"`
	Port           string `validate:"required"`
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	LedgerName     string `validate:"required"`

	// Tip split. Nil when not configured; tip accrual then fails fast.
	TipSplitShares *domain.TipSplit

	JWTSecret         string `validate:"required"`
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	AdminUsername     string
	AdminPasswordHash string

	RateLimit          string
	LoginRateLimit     string
	CORSAllowedOrigins []string

	KafkaBrokers []string
	KafkaTopic   string

	LogLevel  string `validate:"oneof=debug info warn warning error"`
	LogFormat string `validate:"oneof=json text"`
}

var validate = validator.New()

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("STORAGE", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("LEDGER_NAME", domain.DefaultLedgerName)
	v.SetDefault("TIP_STAFF_SHARES", "")
	v.SetDefault("TIP_HOUSE_SHARES", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "vestat")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "vestat.ledger")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:        v.GetString("PGSQL_URL"),
		Storage:            strings.ToLower(v.GetString("STORAGE")),
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:     v.GetString("MIGRATIONS_PATH"),
		LedgerName:         v.GetString("LEDGER_NAME"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		JWTIssuer:          v.GetString("JWT_ISSUER"),
		AdminUsername:      v.GetString("ADMIN_USERNAME"),
		AdminPasswordHash:  v.GetString("ADMIN_PASSWORD_HASH"),
		RateLimit:          v.GetString("RATE_LIMIT"),
		LoginRateLimit:     v.GetString("LOGIN_RATE_LIMIT"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		KafkaBrokers:       splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:         v.GetString("KAFKA_TOPIC"),
		LogLevel:           strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:          strings.ToLower(v.GetString("LOG_FORMAT")),
	}

	if cfg.Storage == "" {
		cfg.Storage = StorageMemory
		if cfg.DatabaseURL != "" {
			cfg.Storage = StoragePostgres
		}
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	split, err := parseTipSplit(v.GetString("TIP_STAFF_SHARES"), v.GetString("TIP_HOUSE_SHARES"))
	if err != nil {
		return nil, err
	}
	cfg.TipSplitShares = split
	if split == nil {
		log.Println("Warning: TIP_STAFF_SHARES/TIP_HOUSE_SHARES not set. Closing sales with tips will fail until configured.")
	}

	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Login is disabled.")
	} else if err := utils.ValidatePasswordHash(cfg.AdminPasswordHash); err != nil {
		return nil, fmt.Errorf("invalid configuration: ADMIN_PASSWORD_HASH: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// parseTipSplit returns nil when neither share is set. Setting only one is an error.
func parseTipSplit(staff, house string) (*domain.TipSplit, error) {
	staff, house = strings.TrimSpace(staff), strings.TrimSpace(house)
	if staff == "" && house == "" {
		return nil, nil
	}
	if staff == "" || house == "" {
		return nil, fmt.Errorf("invalid configuration: TIP_STAFF_SHARES and TIP_HOUSE_SHARES must be set together")
	}
	var (
		split domain.TipSplit
		err   error
	)
	// The whole value must be an integer; "2.5" or "3abc" is an error, not 2 or 3.
	if split.StaffShares, err = strconv.Atoi(staff); err != nil {
		return nil, fmt.Errorf("invalid configuration: TIP_STAFF_SHARES %q: %w", staff, err)
	}
	if split.HouseShares, err = strconv.Atoi(house); err != nil {
		return nil, fmt.Errorf("invalid configuration: TIP_HOUSE_SHARES %q: %w", house, err)
	}
	if err := split.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &split, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// TipSplit implements ports.TipSplitProvider.
func (c *Config) TipSplit(_ context.Context) (domain.TipSplit, error) {
	if c == nil || c.TipSplitShares == nil {
		return domain.TipSplit{}, domain.ErrConfigurationMissing
	}
	return *c.TipSplitShares, nil
}
