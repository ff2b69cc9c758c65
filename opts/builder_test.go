package opts_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratumdb/mysql-lib/opts"
)

type echoInfileHandler struct{}

func (echoInfileHandler) ReadFile(_ context.Context, name string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(name)), nil
}

func TestBuilder_Defaults(t *testing.T) {
	o := opts.NewBuilder().Build()

	assert.Equal(t, "127.0.0.1", o.IPOrHostname())
	assert.Equal(t, uint16(3306), o.TCPPort())
	assert.True(t, o.AddrIsLoopback())
	assert.Empty(t, o.User())
	assert.Empty(t, o.Pass())
	assert.Empty(t, o.DBName())
	assert.Empty(t, o.Init())
	assert.True(t, o.TCPNodelay())
	assert.Zero(t, o.TCPKeepalive())
	assert.Nil(t, o.LocalInfileHandler())
	assert.Equal(t, opts.DefaultPoolOpts(), o.PoolOpts())
	assert.Zero(t, o.ConnTTL())
	assert.Equal(t, opts.DefaultStmtCacheSize, o.StmtCacheSize())
	assert.Nil(t, o.SSLOpts())
	assert.Empty(t, o.Socket())
	_, ok := o.Compression()
	assert.False(t, ok)
}

// Building with the fields a URL would set must agree with parsing that URL
// on every accessor; only the internal address representation differs.
func TestBuilder_EqualsURL(t *testing.T) {
	const rawURL = "mysql://iq-controller@localhost/iq_controller"

	urlOpts, err := opts.FromURL(rawURL)
	require.NoError(t, err)

	builderOpts := opts.NewBuilder().
		User("iq-controller").
		IPOrHostname("localhost").
		DBName("iq_controller").
		Build()

	assert.Equal(t, urlOpts.AddrIsLoopback(), builderOpts.AddrIsLoopback())
	assert.Equal(t, urlOpts.IPOrHostname(), builderOpts.IPOrHostname())
	assert.Equal(t, urlOpts.TCPPort(), builderOpts.TCPPort())
	assert.Equal(t, urlOpts.User(), builderOpts.User())
	assert.Equal(t, urlOpts.Pass(), builderOpts.Pass())
	assert.Equal(t, urlOpts.DBName(), builderOpts.DBName())
	assert.Equal(t, urlOpts.Init(), builderOpts.Init())
	assert.Equal(t, urlOpts.TCPKeepalive(), builderOpts.TCPKeepalive())
	assert.Equal(t, urlOpts.TCPNodelay(), builderOpts.TCPNodelay())
	assert.Equal(t, urlOpts.PoolOpts(), builderOpts.PoolOpts())
	assert.Equal(t, urlOpts.ConnTTL(), builderOpts.ConnTTL())
	assert.Equal(t, urlOpts.StmtCacheSize(), builderOpts.StmtCacheSize())
	assert.Equal(t, urlOpts.SSLOpts(), builderOpts.SSLOpts())
	assert.Equal(t, urlOpts.PreferSocket(), builderOpts.PreferSocket())
	assert.Equal(t, urlOpts.Socket(), builderOpts.Socket())
	assert.Equal(t, urlOpts.Capabilities(), builderOpts.Capabilities())
}

func TestBuilder_Fields(t *testing.T) {
	cacheSize := uint(64)
	prefer := false
	level := opts.CompressionBest
	ssl := opts.SSLOpts{}.WithRootCertPath("/etc/ssl/root.pem")
	po := opts.DefaultPoolOpts().WithInactiveConnectionTTL(time.Minute)

	o := opts.NewBuilder().
		IPOrHostname("db.internal").
		TCPPort(33306).
		User("app").
		Pass("secret").
		DBName("orders").
		Init([]string{"SET NAMES utf8mb4"}).
		TCPKeepalive(5000).
		TCPNodelay(false).
		LocalInfileHandler(echoInfileHandler{}).
		PoolOpts(&po).
		ConnTTL(2 * time.Minute).
		StmtCacheSize(&cacheSize).
		SSLOpts(&ssl).
		PreferSocket(&prefer).
		Socket("/var/run/mysqld/mysqld.sock").
		Compression(&level).
		Build()

	assert.Equal(t, "db.internal", o.IPOrHostname())
	assert.Equal(t, uint16(33306), o.TCPPort())
	assert.Equal(t, "app", o.User())
	assert.Equal(t, "secret", o.Pass())
	assert.Equal(t, "orders", o.DBName())
	assert.Equal(t, []string{"SET NAMES utf8mb4"}, o.Init())
	assert.Equal(t, uint32(5000), o.TCPKeepalive())
	assert.False(t, o.TCPNodelay())
	assert.Equal(t, echoInfileHandler{}, o.LocalInfileHandler())
	assert.Equal(t, po, o.PoolOpts())
	assert.Equal(t, 2*time.Minute, o.ConnTTL())
	assert.Equal(t, uint(64), o.StmtCacheSize())
	require.NotNil(t, o.SSLOpts())
	assert.Equal(t, "/etc/ssl/root.pem", o.SSLOpts().RootCertPath())
	assert.False(t, o.PreferSocket())
	assert.Equal(t, "/var/run/mysqld/mysqld.sock", o.Socket())
	c, ok := o.Compression()
	require.True(t, ok)
	assert.Equal(t, opts.CompressionBest, c)
}

func TestBuilder_NilResetsToDefaults(t *testing.T) {
	cacheSize := uint(64)
	prefer := false
	po := opts.DefaultPoolOpts().WithInactiveConnectionTTL(time.Minute)

	o := opts.NewBuilder().
		PoolOpts(&po).
		StmtCacheSize(&cacheSize).
		PreferSocket(&prefer).
		PoolOpts(nil).
		StmtCacheSize(nil).
		PreferSocket(nil).
		Build()

	assert.Equal(t, opts.DefaultPoolOpts(), o.PoolOpts())
	assert.Equal(t, opts.DefaultStmtCacheSize, o.StmtCacheSize())
	assert.True(t, o.PreferSocket())
}

func TestNewBuilderFromOpts_Rebuild(t *testing.T) {
	orig, err := opts.FromURL("mysql://usr:pw@example.com:3307/dbname?stmt_cache_size=64")
	require.NoError(t, err)

	rebuilt := opts.NewBuilderFromOpts(orig).
		Pass("rotated").
		Build()

	// Only the password changed.
	assert.Equal(t, "rotated", rebuilt.Pass())
	assert.Equal(t, orig.User(), rebuilt.User())
	assert.Equal(t, orig.IPOrHostname(), rebuilt.IPOrHostname())
	assert.Equal(t, orig.TCPPort(), rebuilt.TCPPort())
	assert.Equal(t, orig.DBName(), rebuilt.DBName())
	assert.Equal(t, orig.StmtCacheSize(), rebuilt.StmtCacheSize())

	// The original is untouched.
	assert.Equal(t, "pw", orig.Pass())
}
