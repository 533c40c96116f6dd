package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Database.DSN)
	assert.Equal(t, "localhost:8080", cfg.HTTP.HostString)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.Cnpj.Timeout)
	assert.Equal(t, int64(5<<20), cfg.Storage.MaxImageSize)
	assert.Equal(t, 10, cfg.Storage.MaxImages)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, AppModeDevelop, cfg.App.Mode)
}

func TestNewConfig_EnvOverridesFlags(t *testing.T) {
	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("DATABASE_URI", "postgres://env")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := NewConfig([]string{
		"-a", ":8000",
		"-d", "postgres://flag",
		"-kafka-brokers", "flag:9092",
		"-l", "debug",
		"-m", "PROD",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.HostString)
	assert.Equal(t, "postgres://env", cfg.Database.DSN)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, AppModeProduction, cfg.App.Mode)
}

func TestNewConfig_Errors(t *testing.T) {
	_, err := NewConfig([]string{"-m", "STAGE"})
	assert.Error(t, err)

	t.Setenv("TOKEN_TTL", "forever")
	_, err = NewConfig(nil)
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList("a,,b,"))
	assert.Empty(t, splitList(""))
}
