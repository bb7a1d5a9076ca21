package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigs(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfigs(t,
		"jwt_ttl: 1h\nlog_level: debug\nreply_fetch_concurrency: 8\nhttp:\n  addr: ':9000'\n  allowed_origins: ['http://localhost:3000']\n",
		"jwt_key: 'k'\npg:\n  host: localhost\n  port: 5432\n  user: forum\n  password: secret\n  dbname: forum\n",
	)

	cfg := MustLoad(dir)

	assert.Equal(t, time.Hour, cfg.JwtTTL())
	assert.Equal(t, "k", cfg.JwtKey())
	assert.Equal(t, DriverPostgres, cfg.Public.StorageDriver)
	assert.Equal(t, 8, cfg.Public.ReplyFetchConcurrency)
	assert.Equal(t, ":9000", cfg.Public.HTTP.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Public.HTTP.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Public.HTTP.ReadTimeout)
	assert.Equal(t, 5432, cfg.Private.Pg.Port)
}

func TestMustLoad_EnvOverridesPrivate(t *testing.T) {
	dir := writeConfigs(t,
		"jwt_ttl: 1h\nstorage_driver: memory\n",
		"jwt_key: 'from-file'\n",
	)
	t.Setenv("FORUM_JWT_KEY", "from-env")
	t.Setenv("FORUM_PG_PASSWORD", "pg-secret")

	cfg := MustLoad(dir)

	assert.Equal(t, "from-env", cfg.JwtKey())
	assert.Equal(t, "pg-secret", cfg.Private.Pg.Password)
	assert.Equal(t, DriverMemory, cfg.Public.StorageDriver)
}

func TestMustLoad_MemoryUsers(t *testing.T) {
	dir := writeConfigs(t,
		"jwt_ttl: 1h\nstorage_driver: memory\nmemory_users:\n  - id: user-123\n    username: dicoding\n",
		"jwt_key: 'k'\n",
	)

	cfg := MustLoad(dir)

	assert.Equal(t, []MemoryUser{{Id: "user-123", Username: "dicoding"}}, cfg.Public.MemoryUsers)

	bad := writeConfigs(t, "jwt_ttl: 1h\nstorage_driver: memory\nmemory_users:\n  - id: user-123\n", "jwt_key: 'k'\n")
	assert.Panics(t, func() { _ = MustLoad(bad) })
}

func TestMustLoad_RequiredFields(t *testing.T) {
	// jwt_ttl is intentionally missing
	dir := writeConfigs(t, "log_level: info\nstorage_driver: memory\n", "jwt_key: 'k'\n")

	assert.Panics(t, func() { _ = MustLoad(dir) })
}

func TestMustLoad_PostgresNeedsCredentials(t *testing.T) {
	dir := writeConfigs(t, "jwt_ttl: 1h\n", "jwt_key: 'k'\n")

	assert.Panics(t, func() { _ = MustLoad(dir) })
}

func TestMustLoad_UnknownDriver(t *testing.T) {
	dir := writeConfigs(t, "jwt_ttl: 1h\nstorage_driver: mongo\n", "jwt_key: 'k'\n")

	assert.Panics(t, func() { _ = MustLoad(dir) })
}

func TestMustLoad_MissingFile(t *testing.T) {
	assert.Panics(t, func() { _ = MustLoad(t.TempDir()) })
}
