package config

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
	t.Setenv("DEVELOPMENT", "False")
	assert.False(t, Development())
	t.Setenv("DEVELOPMENT", "")
	assert.False(t, Development())
}

func TestHTTPAddr(t *testing.T) {
	t.Setenv("MINES_HTTP_ADDR", "127.0.0.1:9000")
	assert.Equal(t, "127.0.0.1:9000", HTTPAddr())
	t.Setenv("MINES_HTTP_ADDR", "")
	assert.Equal(t, "", HTTPAddr())
}

func TestCorsOrigins(t *testing.T) {
	t.Setenv("MINES_CORS_ORIGINS", " http://a.test, ,http://b.test")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, CorsOrigins())
	t.Setenv("MINES_CORS_ORIGINS", "")
	assert.Nil(t, CorsOrigins())
}

func TestDbURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_USER", "mines")
	t.Setenv("POSTGRES_PASSWORD", "p@ss word")
	t.Setenv("POSTGRES_PORT", "5433")

	url, err := DbURL()
	require.NoError(t, err)
	assert.Equal(t, "postgresql://mines:p%40ss%20word@db:5433/minesweeper?sslmode=disable", url)

	t.Setenv("DATABASE_URL", "postgres://x@y/z")
	url, err = DbURL()
	require.NoError(t, err)
	assert.Equal(t, "postgres://x@y/z", url)
}

func TestDbURLPasswordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "password")
	require.NoError(t, os.WriteFile(path, []byte("secret\n"), 0o600))

	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("POSTGRES_USER", "mines")
	t.Setenv("POSTGRES_PASSWORD_FILE", path)
	t.Setenv("POSTGRES_PASSWORD", "")
	os.Unsetenv("POSTGRES_PASSWORD")

	db, err := NewDatabase()
	require.NoError(t, err)
	assert.Equal(t, "secret", db.Password)
	assert.Equal(t, uint16(5432), db.Port)
}

func TestNoDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("POSTGRES_HOST", "")
	os.Unsetenv("POSTGRES_HOST")

	_, err := DbURL()
	assert.ErrorIs(t, err, ErrNoDatabase)
	_, err = NewPgxpoolConfig()
	assert.ErrorIs(t, err, ErrNoDatabase)
}

func TestPgxpoolMaxConns(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://mines:secret@db:5432/minesweeper")
	t.Setenv("MINES_DB_MAX_CONNS", "")

	cfg, err := NewPgxpoolConfig()
	require.NoError(t, err)
	assert.Equal(t, int32(defaultMaxConns), cfg.MaxConns)

	t.Setenv("MINES_DB_MAX_CONNS", "9")
	cfg, err = NewPgxpoolConfig()
	require.NoError(t, err)
	assert.Equal(t, int32(9), cfg.MaxConns)

	t.Setenv("MINES_DB_MAX_CONNS", "0")
	_, err = NewPgxpoolConfig()
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	t.Setenv("MINES_LOG_FILE", filepath.Join(t.TempDir(), "mines.log"))

	logger, err := NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.Len(t, logger.Hooks[logrus.InfoLevel], 1)

	t.Setenv("DEVELOPMENT", "0")
	t.Setenv("MINES_LOG_FILE", "")
	logger, err = NewLogger()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestWebSocketCheckOrigin(t *testing.T) {
	ws, err := NewWebSocket([]string{"http://a.test"})
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/connect", nil)
	r.Header.Set("Origin", "http://a.test")
	assert.True(t, ws.Upgrader.CheckOrigin(r))
	r.Header.Set("Origin", "http://evil.test")
	assert.False(t, ws.Upgrader.CheckOrigin(r))

	open, err := NewWebSocket(nil)
	require.NoError(t, err)
	assert.True(t, open.Upgrader.CheckOrigin(r))
}
