package database

import (
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The DSN must round-trip through the driver's parser with the session
// pinned to UTC and DATETIME parsing on; the repositories rely on both.
func TestConfigDSN(t *testing.T) {
	cfg := Config{
		User:     "bus",
		Password: "p@ss:word/",
		Host:     "db.internal",
		Port:     "3307",
		Name:     "bus_reservation",
	}

	parsed, err := mysql.ParseDSN(cfg.dsn())
	require.NoError(t, err)

	assert.Equal(t, "bus", parsed.User)
	assert.Equal(t, "p@ss:word/", parsed.Passwd)
	assert.Equal(t, "tcp", parsed.Net)
	assert.Equal(t, "db.internal:3307", parsed.Addr)
	assert.Equal(t, "bus_reservation", parsed.DBName)
	assert.True(t, parsed.ParseTime)
	assert.Equal(t, time.UTC, parsed.Loc)
	assert.Equal(t, "utf8mb4", parsed.Params["charset"])
}

func TestConfigDSNEmptyPassword(t *testing.T) {
	cfg := Config{User: "root", Host: "localhost", Port: "3306", Name: "bus_test"}

	parsed, err := mysql.ParseDSN(cfg.dsn())
	require.NoError(t, err)
	assert.Equal(t, "root", parsed.User)
	assert.Empty(t, parsed.Passwd)
}

func TestConfigPoolDefaults(t *testing.T) {
	got := Config{}.withDefaults()
	assert.Equal(t, 25, got.MaxOpenConns)
	assert.Equal(t, 25, got.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, got.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, got.PingTimeout)

	tuned := Config{MaxOpenConns: 100, PingTimeout: time.Second}.withDefaults()
	assert.Equal(t, 100, tuned.MaxOpenConns)
	assert.Equal(t, time.Second, tuned.PingTimeout)
	assert.Equal(t, 25, tuned.MaxIdleConns)
}
