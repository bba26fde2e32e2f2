package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "reserve"
dbname = "reservations"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "reservations", cfg.Database.DBName)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "UTC", cfg.Restaurant.Timezone)
	assert.Equal(t, 5*time.Minute, cfg.Redis.ConfigTTLDuration())
}

func TestLoad_ReadsSections(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 6543
user = "reserve"
password = "secret"
dbname = "reservations"
sslmode = "require"

[logs]
file = "logs/service.log"
level = "debug"

[metrics]
enabled = true
service_name = "reservations"

[redis]
enabled = true
address = "redis:6379"
config_ttl = 60

[restaurant]
timezone = "Europe/Berlin"

[ratelimit]
enabled = true
rps = 2.5
burst = 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "host=db port=6543 user=reserve password=secret dbname=reservations sslmode=require", cfg.Database.DSN())
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "reservations", cfg.Metrics.ServiceName)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Minute, cfg.Redis.ConfigTTLDuration())
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)

	loc, err := cfg.Restaurant.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "reservations"
password = "from-file"
`)
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "$2a$10$hash", cfg.Admin.PasswordHash)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)

	_, err = Load(writeConfig(t, `[database`))
	assert.ErrorIs(t, err, ErrReadConfig)

	_, err = Load(writeConfig(t, `
[database]
dbname = "reservations"

[restaurant]
timezone = "Mars/Olympus"
`))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, `
[server]
http_port = 70000

[database]
dbname = "reservations"
`))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
