package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "https://api.exchangeratesapi.io", cfg.ExchangeRatesApi.ApiUrl)
	assert.Equal(t, "eur", cfg.ExchangeRatesApi.Base)
	assert.Empty(t, cfg.ExchangeRatesApi.AccessKey)
	assert.Equal(t, 3*time.Hour, cfg.Jwt.Expiry)
	assert.Equal(t, "exchange-api", cfg.Jwt.Issuer)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, "admin@exchange.com", cfg.Admin.Email)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoad_FromEnvFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env.test"), []byte(
		"EXCHANGE_RATES_API_ACCESS_KEY=from-file\nJWT_EXPIRY=90m\nKAFKA_BROKERS=k1:9092,k2:9092\n",
	), 0o600))
	t.Chdir(nested)
	// godotenv never overrides variables that are already set.
	t.Setenv("JWT_SECRET", "from-env")
	t.Cleanup(func() {
		_ = os.Unsetenv("EXCHANGE_RATES_API_ACCESS_KEY")
		_ = os.Unsetenv("JWT_EXPIRY")
		_ = os.Unsetenv("KAFKA_BROKERS")
	})

	cfg, err := Load(".env.missing", ".env.test")
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.ExchangeRatesApi.AccessKey)
	assert.Equal(t, "from-env", cfg.Jwt.Secret)
	assert.Equal(t, 90*time.Minute, cfg.Jwt.Expiry)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "0")
	t.Setenv("LOG_FORMAT", "yaml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server port")
	assert.Contains(t, err.Error(), "log format")
}

func TestFindEnvFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "webapi", "exchange")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), nil, 0o600))
	t.Chdir(nested)

	found, err := FindEnvFile("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".env"), found)

	_, err = FindEnvFile(".env.nowhere")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindEnvFile_StopsAtModuleRoot(t *testing.T) {
	outside := t.TempDir()
	module := filepath.Join(outside, "exchange")
	pkg := filepath.Join(module, "pkg", "config")
	require.NoError(t, os.MkdirAll(pkg, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outside, ".env"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(module, "go.mod"), []byte("module x\n"), 0o600))
	t.Chdir(pkg)

	_, err := FindEnvFile("")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(module, ".env.test"), nil, 0o600))
	found, err := FindEnvFile(".env.test")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(module, ".env.test"), found)
}

func TestFindEnvFile_AbsolutePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exchange.env")
	_, err := FindEnvFile(path)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, nil, 0o600))
	found, err := FindEnvFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "ab****6789", maskValue("abcdef0123456789"))
}
