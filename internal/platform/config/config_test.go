package config

import (
	"context"
	"testing"
	"time"

	"github.com/duasfl8r/vestat/internal/core/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(values map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.Set("JWT_SECRET", "test-secret")
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, domain.DefaultLedgerName, cfg.LedgerName)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Nil(t, cfg.TipSplitShares)
	assert.Empty(t, cfg.KafkaBrokers)

	_, err = cfg.TipSplit(context.Background())
	assert.ErrorIs(t, err, domain.ErrConfigurationMissing)
}

func TestFromViper_PostgresAndSplit(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{
		"PGSQL_URL":           "postgres://localhost/vestat",
		"TIP_STAFF_SHARES":    "3",
		"TIP_HOUSE_SHARES":    "1",
		"KAFKA_BROKERS":       "k1:9092, k2:9092,",
		"JWT_EXPIRY_DURATION": "30m",
	}))
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)

	split, err := cfg.TipSplit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.TipSplit{StaffShares: 3, HouseShares: 1}, split)
}

func TestFromViper_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
	}{
		{"only staff shares", map[string]any{"TIP_STAFF_SHARES": "3"}},
		{"non numeric shares", map[string]any{"TIP_STAFF_SHARES": "x", "TIP_HOUSE_SHARES": "1"}},
		{"fractional shares", map[string]any{"TIP_STAFF_SHARES": "2.5", "TIP_HOUSE_SHARES": "1"}},
		{"trailing garbage in shares", map[string]any{"TIP_STAFF_SHARES": "3abc", "TIP_HOUSE_SHARES": "1"}},
		{"two numbers in shares", map[string]any{"TIP_STAFF_SHARES": "3 1", "TIP_HOUSE_SHARES": "1"}},
		{"zero split", map[string]any{"TIP_STAFF_SHARES": "0", "TIP_HOUSE_SHARES": "0"}},
		{"postgres without url", map[string]any{"STORAGE": "postgres"}},
		{"unknown storage", map[string]any{"STORAGE": "sqlite"}},
		{"missing jwt secret", map[string]any{"JWT_SECRET": ""}},
		{"plaintext admin password", map[string]any{"ADMIN_PASSWORD_HASH": "caixa123"}},
		{"bad log format", map[string]any{"LOG_FORMAT": "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromViper(newTestViper(tt.values))
			assert.Error(t, err)
		})
	}
}
