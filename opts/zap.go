package opts

import (
	"go.uber.org/zap/zapcore"

	"github.com/stratumdb/mysql-lib/logutil"
)

// MarshalLogObject implements zapcore.ObjectMarshaler so an *Opts can be
// attached to a log entry as a structured field, e.g.
// zap.Object("mysql", o). The password and SSL archive password are masked.
func (o *Opts) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("addr", o.address.String())
	enc.AddString("host", o.IPOrHostname())
	enc.AddUint16("port", o.TCPPort())
	if o.User() != "" {
		enc.AddString("user", o.User())
	}
	if o.Pass() != "" {
		enc.AddString("pass", logutil.Mask(o.Pass()))
	}
	if o.DBName() != "" {
		enc.AddString("db", o.DBName())
	}
	if o.Socket() != "" {
		enc.AddString("socket", o.Socket())
	}
	po := o.PoolOpts()
	enc.AddUint("pool_min", po.Constraints().Min())
	enc.AddUint("pool_max", po.Constraints().Max())
	enc.AddDuration("inactive_connection_ttl", po.InactiveConnectionTTL())
	enc.AddDuration("ttl_check_interval", po.TTLCheckInterval())
	if o.ConnTTL() > 0 {
		enc.AddDuration("conn_ttl", o.ConnTTL())
	}
	enc.AddUint("stmt_cache_size", o.StmtCacheSize())
	enc.AddBool("tcp_nodelay", o.TCPNodelay())
	if o.TCPKeepalive() > 0 {
		enc.AddUint32("tcp_keepalive_ms", o.TCPKeepalive())
	}
	enc.AddBool("prefer_socket", o.PreferSocket())
	if ssl := o.SSLOpts(); ssl != nil {
		enc.AddBool("ssl", true)
		if ssl.Password() != "" {
			enc.AddString("ssl_password", logutil.Mask(ssl.Password()))
		}
	}
	if c, ok := o.Compression(); ok {
		enc.AddUint8("compression", c.Level())
	}
	enc.AddString("capabilities", o.Capabilities().String())
	return nil
}
