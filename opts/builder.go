package opts

import (
	"time"

	"github.com/stratumdb/mysql-lib/caps"
)

// Builder assembles an *Opts field by field, as the in-process alternative
// to FromURL.
//
//	o := opts.NewBuilder().
//		IPOrHostname("db.internal").
//		User("app").
//		DBName("orders").
//		Build()
//
// Setters never fail: an absent value falls back to the field default. The
// min <= max pool invariant is enforced by NewPoolConstraints alone, so on
// this path the caller constructs constraints explicitly.
type Builder struct {
	opts         mysqlOpts
	ipOrHostname string
	tcpPort      uint16
}

// NewBuilder returns a builder whose state mirrors the default Opts.
func NewBuilder() *Builder {
	addr := defaultAddress()
	return &Builder{
		opts:         defaultMysqlOpts(),
		ipOrHostname: addr.Host,
		tcpPort:      addr.Port,
	}
}

// NewBuilderFromOpts returns a builder seeded from an existing Opts. This is
// the rebuild path for "modifying" a published Opts.
func NewBuilderFromOpts(o *Opts) *Builder {
	return &Builder{
		opts:         o.opts,
		ipOrHostname: o.address.IPOrHostname(),
		tcpPort:      o.address.TCPPort(),
	}
}

// IPOrHostname sets the server host. See Opts.IPOrHostname.
func (b *Builder) IPOrHostname(host string) *Builder {
	b.ipOrHostname = host
	return b
}

// TCPPort sets the server TCP port. See Opts.TCPPort.
func (b *Builder) TCPPort(port uint16) *Builder {
	b.tcpPort = port
	return b
}

// User sets the user name. See Opts.User.
func (b *Builder) User(user string) *Builder {
	b.opts.user = user
	return b
}

// Pass sets the password. See Opts.Pass.
func (b *Builder) Pass(pass string) *Builder {
	b.opts.pass = pass
	return b
}

// DBName sets the database name. See Opts.DBName.
func (b *Builder) DBName(dbName string) *Builder {
	b.opts.dbName = dbName
	return b
}

// Init sets the commands executed on each new connection. See Opts.Init.
func (b *Builder) Init(cmds []string) *Builder {
	b.opts.init = append([]string(nil), cmds...)
	return b
}

// TCPKeepalive sets the keepalive timeout in milliseconds, zero disables it.
// See Opts.TCPKeepalive.
func (b *Builder) TCPKeepalive(ms uint32) *Builder {
	b.opts.tcpKeepalive = ms
	return b
}

// TCPNodelay sets the TCP_NODELAY flag. See Opts.TCPNodelay.
func (b *Builder) TCPNodelay(nodelay bool) *Builder {
	b.opts.tcpNodelay = nodelay
	return b
}

// LocalInfileHandler sets the LOCAL INFILE handler, nil clears it. See
// Opts.LocalInfileHandler.
func (b *Builder) LocalInfileHandler(h LocalInfileHandler) *Builder {
	b.opts.localInfileHandler = h
	return b
}

// PoolOpts sets the pool options; nil resets them to DefaultPoolOpts. See
// Opts.PoolOpts.
func (b *Builder) PoolOpts(po *PoolOpts) *Builder {
	if po == nil {
		b.opts.poolOpts = DefaultPoolOpts()
	} else {
		b.opts.poolOpts = *po
	}
	return b
}

// ConnTTL sets the maximum time since last IO before the pool closes a
// connection; zero defers to the server's wait_timeout. See Opts.ConnTTL.
func (b *Builder) ConnTTL(ttl time.Duration) *Builder {
	b.opts.connTTL = ttl
	return b
}

// StmtCacheSize sets the prepared-statement cache size; nil resets it to
// DefaultStmtCacheSize. See Opts.StmtCacheSize.
func (b *Builder) StmtCacheSize(size *uint) *Builder {
	if size == nil {
		b.opts.stmtCacheSize = DefaultStmtCacheSize
	} else {
		b.opts.stmtCacheSize = *size
	}
	return b
}

// SSLOpts sets the TLS options; nil means plain TCP. See Opts.SSLOpts.
func (b *Builder) SSLOpts(ssl *SSLOpts) *Builder {
	if ssl == nil {
		b.opts.sslOpts = nil
	} else {
		cp := *ssl
		b.opts.sslOpts = &cp
	}
	return b
}

// PreferSocket sets the socket-preference flag; nil resets it to true. See
// Opts.PreferSocket.
func (b *Builder) PreferSocket(prefer *bool) *Builder {
	if prefer == nil {
		b.opts.preferSocket = true
	} else {
		b.opts.preferSocket = *prefer
	}
	return b
}

// Socket sets the unix socket (or named pipe) path. See Opts.Socket.
func (b *Builder) Socket(path string) *Builder {
	b.opts.socket = path
	return b
}

// Compression sets the compression level; nil means no compression. See
// Opts.Compression.
func (b *Builder) Compression(c *Compression) *Builder {
	if c == nil {
		b.opts.compression = nil
	} else {
		cp := *c
		b.opts.compression = &cp
	}
	return b
}

// AddCapability ORs the given bits into the stored capability set. See
// Opts.Capabilities.
func (b *Builder) AddCapability(f caps.Flags) *Builder {
	b.opts.capabilities |= f
	return b
}

// RemoveCapability clears the given bits from the stored capability set.
// The CONNECT_WITH_DB, SSL and COMPRESS bits are re-asserted on read while
// their triggering field is set; see Opts.Capabilities.
func (b *Builder) RemoveCapability(f caps.Flags) *Builder {
	b.opts.capabilities &^= f
	return b
}

// Build seals the builder into an immutable *Opts. The builder must not be
// reused afterwards.
func (b *Builder) Build() *Opts {
	return &Opts{
		opts:    b.opts,
		address: HostPort{Host: b.ipOrHostname, Port: b.tcpPort},
	}
}
