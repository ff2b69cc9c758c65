package opts

import (
	"time"

	"github.com/stratumdb/mysql-lib/validate"
)

// Config is the declarative construction path, for callers that load
// connection settings from a file or the environment and cannot use the
// fluent Builder. Zero values mean "use the default"; pointer fields
// distinguish "absent" from a meaningful zero.
type Config struct {
	Host     string `validate:"omitempty,hostname_rfc1123|ip"`
	Port     uint16
	User     string
	Password string
	DBName   string

	// Pool bounds; both zero means DefaultPoolConstraints.
	PoolMin uint
	PoolMax uint

	InactiveConnectionTTL time.Duration `validate:"min=0"`
	TTLCheckInterval      time.Duration `validate:"min=0"`
	ConnTTL               time.Duration `validate:"min=0"`

	TCPKeepaliveMS uint32
	StmtCacheSize  *uint
	Socket         string
	Compression    *uint8 `validate:"omitempty,max=9"`
	SSL            *SSLOpts
}

// Build validates the config and resolves it through the same Builder the
// fluent path uses. Validation failures surface as a *ConfigError; an
// out-of-order pool bound pair surfaces as *InvalidPoolConstraintsError.
func (c Config) Build() (*Opts, error) {
	if fields := validate.Struct(c); fields != nil {
		return nil, &ConfigError{Fields: fields}
	}

	b := NewBuilder()
	if c.Host != "" {
		b.IPOrHostname(c.Host)
	}
	if c.Port != 0 {
		b.TCPPort(c.Port)
	}
	b.User(c.User).Pass(c.Password).DBName(c.DBName)

	po := DefaultPoolOpts()
	if c.PoolMin != 0 || c.PoolMax != 0 {
		pc, err := NewPoolConstraints(c.PoolMin, c.PoolMax)
		if err != nil {
			return nil, err
		}
		po = po.WithConstraints(pc)
	}
	if c.InactiveConnectionTTL != 0 {
		po = po.WithInactiveConnectionTTL(c.InactiveConnectionTTL)
	}
	if c.TTLCheckInterval != 0 {
		po = po.WithTTLCheckInterval(c.TTLCheckInterval)
	}
	b.PoolOpts(&po)

	if c.ConnTTL != 0 {
		b.ConnTTL(c.ConnTTL)
	}
	if c.TCPKeepaliveMS != 0 {
		b.TCPKeepalive(c.TCPKeepaliveMS)
	}
	b.StmtCacheSize(c.StmtCacheSize)
	if c.Socket != "" {
		b.Socket(c.Socket)
	}
	if c.Compression != nil {
		lvl := Compression(*c.Compression)
		b.Compression(&lvl)
	}
	b.SSLOpts(c.SSL)

	return b.Build(), nil
}
