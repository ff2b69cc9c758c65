package opts

import (
	"context"
	"net"
	"net/netip"
	"net/url"
	"strconv"

	"github.com/stratumdb/mysql-lib/logutil"
)

const defaultHost = "127.0.0.1"

// DefaultPort is the MySQL server port used when a URL or builder leaves the
// port unset.
const DefaultPort uint16 = 3306

// Address locates the server either as an explicit host/port pair or as the
// connection URL it was parsed from. It is a closed sum: HostPort and the
// URL-backed form produced by FromURL are the only implementations.
type Address interface {
	// IPOrHostname returns the host component, defaulting to 127.0.0.1.
	IPOrHostname() string

	// TCPPort returns the port component, defaulting to DefaultPort.
	TCPPort() uint16

	// IsLoopback reports whether the host is 127.0.0.0/8, ::1 or the
	// literal "localhost".
	IsLoopback() bool

	// ResolveAddrs resolves the address to socket addresses. This is the
	// only operation in the package that may block on DNS; it is meant to
	// be called lazily by the connection layer, not during construction.
	ResolveAddrs(ctx context.Context) ([]net.TCPAddr, error)

	// String renders the address with credentials masked.
	String() string

	sealedAddress()
}

// HostPort is an explicit host and port pair.
type HostPort struct {
	Host string
	Port uint16
}

func defaultAddress() HostPort {
	return HostPort{Host: defaultHost, Port: DefaultPort}
}

func (hp HostPort) sealedAddress() {}

// IPOrHostname returns the stored host.
func (hp HostPort) IPOrHostname() string { return hp.Host }

// TCPPort returns the stored port.
func (hp HostPort) TCPPort() uint16 { return hp.Port }

// IsLoopback parses the host as an IPv4 or IPv6 literal and tests the
// loopback range; a host that is neither is loopback only when it equals
// "localhost".
func (hp HostPort) IsLoopback() bool {
	if ip, err := netip.ParseAddr(hp.Host); err == nil {
		return ip.IsLoopback()
	}
	return hp.Host == "localhost"
}

// ResolveAddrs resolves the host and combines each result with the stored
// port.
func (hp HostPort) ResolveAddrs(ctx context.Context) ([]net.TCPAddr, error) {
	return lookupTCP(ctx, hp.Host, hp.Port)
}

func (hp HostPort) String() string {
	return net.JoinHostPort(hp.Host, strconv.Itoa(int(hp.Port)))
}

// urlAddr is the URL-backed variant retained by FromURL. The URL always has
// an explicit port by the time it gets here.
type urlAddr struct {
	u *url.URL
}

func (a urlAddr) sealedAddress() {}

func (a urlAddr) IPOrHostname() string {
	if h := a.u.Hostname(); h != "" {
		return h
	}
	return defaultHost
}

func (a urlAddr) TCPPort() uint16 {
	if p := a.u.Port(); p != "" {
		if n, err := strconv.ParseUint(p, 10, 16); err == nil {
			return uint16(n)
		}
	}
	return DefaultPort
}

func (a urlAddr) IsLoopback() bool {
	host := a.u.Hostname()
	if ip, err := netip.ParseAddr(host); err == nil {
		return ip.IsLoopback()
	}
	return host == "localhost"
}

func (a urlAddr) ResolveAddrs(ctx context.Context) ([]net.TCPAddr, error) {
	return lookupTCP(ctx, a.IPOrHostname(), a.TCPPort())
}

func (a urlAddr) String() string {
	return logutil.MaskURL(a.u.String())
}

func lookupTCP(ctx context.Context, host string, port uint16) ([]net.TCPAddr, error) {
	ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, err
	}
	addrs := make([]net.TCPAddr, 0, len(ips))
	for _, ip := range ips {
		addrs = append(addrs, net.TCPAddr{IP: ip.IP, Port: int(port), Zone: ip.Zone})
	}
	return addrs, nil
}
