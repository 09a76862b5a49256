package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoDatabase means neither DATABASE_URL nor POSTGRES_HOST is set; the
// server then runs without an event journal.
var ErrNoDatabase = errors.New("no database configured")

// The journal has a single writer and /stats reads, a small pool is plenty.
const defaultMaxConns = 4

type Database struct {
	Username string
	Password string
	Host     string
	Port     uint16
	DBName   string
	SSLMode  string
}

// secret reads key, falling back to the file named by key_FILE the way
// docker secrets are mounted.
func secret(key string) (string, error) {
	if v, ok := os.LookupEnv(key); ok {
		return v, nil
	}
	path, ok := os.LookupEnv(key + "_FILE")
	if !ok {
		return "", fmt.Errorf("neither %s nor %s_FILE is set", key, key)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to read %s_FILE: %w", key, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func NewDatabase() (*Database, error) {
	host := os.Getenv("POSTGRES_HOST")
	if host == "" {
		return nil, ErrNoDatabase
	}

	username, err := secret("POSTGRES_USER")
	if err != nil {
		return nil, err
	}
	password, err := secret("POSTGRES_PASSWORD")
	if err != nil {
		return nil, err
	}

	port, err := strconv.ParseUint(envOr("POSTGRES_PORT", "5432"), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid POSTGRES_PORT: %w", err)
	}

	return &Database{
		Username: username,
		Password: password,
		Host:     host,
		Port:     uint16(port),
		DBName:   envOr("POSTGRES_DB", "minesweeper"),
		SSLMode:  envOr("POSTGRES_SSLMODE", "disable"),
	}, nil
}

func (c Database) URL() string {
	u := url.URL{
		Scheme:   "postgresql",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port))),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

// DbURL returns DATABASE_URL, or a URL assembled from the POSTGRES_* variables.
func DbURL() (string, error) {
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		return dbURL, nil
	}
	cfg, err := NewDatabase()
	if err != nil {
		return "", err
	}
	return cfg.URL(), nil
}

// NewPgxpoolConfig parses DbURL and caps the pool at MINES_DB_MAX_CONNS.
func NewPgxpoolConfig() (*pgxpool.Config, error) {
	dbURL, err := DbURL()
	if err != nil {
		return nil, err
	}
	cfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	maxConns, err := strconv.ParseInt(envOr("MINES_DB_MAX_CONNS", strconv.Itoa(defaultMaxConns)), 10, 32)
	if err != nil || maxConns < 1 {
		return nil, fmt.Errorf("invalid MINES_DB_MAX_CONNS %q", os.Getenv("MINES_DB_MAX_CONNS"))
	}
	cfg.MaxConns = int32(maxConns)
	return cfg, nil
}
