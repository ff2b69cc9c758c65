package opts

import (
	"net"
	"strconv"

	godriver "github.com/go-sql-driver/mysql"
)

// DriverConfig converts resolved options into a go-sql-driver/mysql config,
// for callers that open a database/sql handle instead of a native
// connection. Only fields both sides model are mapped: identity, address and
// database name. TLS material must be registered with the driver by the
// caller.
func (o *Opts) DriverConfig() *godriver.Config {
	cfg := godriver.NewConfig()
	cfg.User = o.User()
	cfg.Passwd = o.Pass()
	cfg.DBName = o.DBName()
	if o.Socket() != "" {
		cfg.Net = "unix"
		cfg.Addr = o.Socket()
	} else {
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(o.IPOrHostname(), strconv.Itoa(int(o.TCPPort())))
	}
	return cfg
}

// DSN renders the options as a go-sql-driver/mysql data source name.
func (o *Opts) DSN() string {
	return o.DriverConfig().FormatDSN()
}
