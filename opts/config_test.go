package opts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratumdb/mysql-lib/opts"
)

func TestConfig_Build(t *testing.T) {
	cacheSize := uint(64)
	level := uint8(9)

	o, err := opts.Config{
		Host:                  "db.internal",
		Port:                  3307,
		User:                  "app",
		Password:              "secret",
		DBName:                "orders",
		PoolMin:               2,
		PoolMax:               8,
		InactiveConnectionTTL: time.Minute,
		TTLCheckInterval:      45 * time.Second,
		ConnTTL:               5 * time.Minute,
		TCPKeepaliveMS:        10000,
		StmtCacheSize:         &cacheSize,
		Compression:           &level,
	}.Build()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", o.IPOrHostname())
	assert.Equal(t, uint16(3307), o.TCPPort())
	assert.Equal(t, "app", o.User())
	assert.Equal(t, "secret", o.Pass())
	assert.Equal(t, "orders", o.DBName())
	assert.Equal(t, uint(2), o.PoolOpts().Constraints().Min())
	assert.Equal(t, uint(8), o.PoolOpts().Constraints().Max())
	assert.Equal(t, time.Minute, o.PoolOpts().InactiveConnectionTTL())
	assert.Equal(t, 45*time.Second, o.PoolOpts().TTLCheckInterval())
	assert.Equal(t, 5*time.Minute, o.ConnTTL())
	assert.Equal(t, uint32(10000), o.TCPKeepalive())
	assert.Equal(t, uint(64), o.StmtCacheSize())
	c, ok := o.Compression()
	require.True(t, ok)
	assert.Equal(t, opts.CompressionBest, c)
}

func TestConfig_ZeroValueEqualsDefaults(t *testing.T) {
	o, err := opts.Config{}.Build()
	require.NoError(t, err)

	def := opts.NewBuilder().Build()
	assert.Equal(t, def.IPOrHostname(), o.IPOrHostname())
	assert.Equal(t, def.TCPPort(), o.TCPPort())
	assert.Equal(t, def.PoolOpts(), o.PoolOpts())
	assert.Equal(t, def.StmtCacheSize(), o.StmtCacheSize())
	assert.Equal(t, def.Capabilities(), o.Capabilities())
}

func TestConfig_TTLCheckIntervalFloor(t *testing.T) {
	o, err := opts.Config{TTLCheckInterval: 500 * time.Millisecond}.Build()
	require.NoError(t, err)

	assert.Equal(t, opts.DefaultTTLCheckInterval, o.PoolOpts().TTLCheckInterval())
}

func TestConfig_CompressionOutOfRange(t *testing.T) {
	level := uint8(10)
	_, err := opts.Config{Compression: &level}.Build()

	var cerr *opts.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "too_large", cerr.Fields["Compression"])
}

func TestConfig_InvalidHost(t *testing.T) {
	_, err := opts.Config{Host: "db internal!"}.Build()

	var cerr *opts.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "invalid_host", cerr.Fields["Host"])
}

func TestConfig_InvalidPoolBounds(t *testing.T) {
	_, err := opts.Config{PoolMin: 5, PoolMax: 1}.Build()

	var perr *opts.InvalidPoolConstraintsError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, uint(5), perr.Min)
	assert.Equal(t, uint(1), perr.Max)
}

func TestConfig_NegativeDuration(t *testing.T) {
	_, err := opts.Config{ConnTTL: -time.Second}.Build()

	var cerr *opts.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "too_small", cerr.Fields["ConnTTL"])
}
