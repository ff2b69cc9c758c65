package opts

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const urlScheme = "mysql"

// FromURL resolves a connection URL of the form
//
//	mysql://[user[:pass]@]host[:port][/dbname][?param=value&...]
//
// into an immutable *Opts. user, pass and dbname are percent-decoded. Every
// query parameter must be in the recognized set: pool_min, pool_max,
// inactive_connection_ttl, ttl_check_interval, conn_ttl, tcp_keepalive,
// tcp_nodelay, stmt_cache_size, prefer_socket, socket, compression. Anything
// else fails with an *UnknownParameterError.
func FromURL(rawURL string) (*Opts, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		// url.Error echoes the full URL, credentials included. Keep it out.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidURL, uerr.Err)
		}
		return nil, ErrInvalidURL
	}
	if u.Scheme != urlScheme {
		return nil, &UnsupportedSchemeError{Scheme: u.Scheme}
	}
	if u.Opaque != "" || u.Host == "" {
		return nil, ErrInvalidURL
	}

	// The URL doubles as the address for socket resolution later, so pin
	// the default port now. url.Parse only checks that an explicit port is
	// numeric, so the 16-bit range has to be enforced here.
	if p := u.Port(); p == "" {
		u.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(int(DefaultPort)))
	} else if _, err := strconv.ParseUint(p, 10, 16); err != nil {
		return nil, fmt.Errorf("%w: port %s out of range", ErrInvalidURL, p)
	}

	mo, err := mysqlOptsFromURL(u)
	if err != nil {
		return nil, err
	}

	return &Opts{opts: mo, address: urlAddr{u: u}}, nil
}

// MustFromURL is FromURL that panics on error, for URLs known at compile
// time.
func MustFromURL(rawURL string) *Opts {
	o, err := FromURL(rawURL)
	if err != nil {
		panic(err)
	}
	return o
}

func dbNameFromURL(u *url.URL) string {
	seg := strings.TrimPrefix(u.EscapedPath(), "/")
	if i := strings.IndexByte(seg, '/'); i >= 0 {
		seg = seg[:i]
	}
	if seg == "" {
		return ""
	}
	name, err := url.PathUnescape(seg)
	if err != nil {
		return seg
	}
	return name
}

type queryParam struct {
	key   string
	value string
}

// queryPairs walks the raw query in order, so diagnostics point at the first
// offending pair and a repeated key keeps last-one-wins semantics. Escapes
// that do not decode are kept raw rather than rejected.
func queryPairs(rawQuery string) []queryParam {
	var pairs []queryParam
	for _, kv := range strings.Split(rawQuery, "&") {
		if kv == "" {
			continue
		}
		k, v, _ := strings.Cut(kv, "=")
		if dk, err := url.QueryUnescape(k); err == nil {
			k = dk
		}
		if dv, err := url.QueryUnescape(v); err == nil {
			v = dv
		}
		pairs = append(pairs, queryParam{key: k, value: v})
	}
	return pairs
}

func mysqlOptsFromURL(u *url.URL) (mysqlOpts, error) {
	mo := defaultMysqlOpts()
	mo.user = u.User.Username()
	mo.pass, _ = u.User.Password()
	mo.dbName = dbNameFromURL(u)

	// Pool bounds are combined and checked only after the whole parameter
	// stream is applied.
	poolMin := DefaultPoolConstraints.min
	poolMax := DefaultPoolConstraints.max

	for _, p := range queryPairs(u.RawQuery) {
		switch p.key {
		case "pool_min":
			n, err := strconv.ParseUint(p.value, 10, 64)
			if err != nil {
				return mysqlOpts{}, &InvalidParamValueError{Param: p.key, Value: p.value}
			}
			poolMin = uint(n)
		case "pool_max":
			n, err := strconv.ParseUint(p.value, 10, 64)
			if err != nil {
				return mysqlOpts{}, &InvalidParamValueError{Param: p.key, Value: p.value}
			}
			poolMax = uint(n)
		case "inactive_connection_ttl":
			n, err := strconv.ParseUint(p.value, 10, 64)
			if err != nil {
				return mysqlOpts{}, &InvalidParamValueError{Param: p.key, Value: p.value}
			}
			mo.poolOpts = mo.poolOpts.WithInactiveConnectionTTL(time.Duration(n) * time.Second)
		case "ttl_check_interval":
			n, err := strconv.ParseUint(p.value, 10, 64)
			if err != nil {
				return mysqlOpts{}, &InvalidParamValueError{Param: p.key, Value: p.value}
			}
			mo.poolOpts = mo.poolOpts.WithTTLCheckInterval(time.Duration(n) * time.Second)
		case "conn_ttl":
			n, err := strconv.ParseUint(p.value, 10, 64)
			if err != nil {
				return mysqlOpts{}, &InvalidParamValueError{Param: p.key, Value: p.value}
			}
			mo.connTTL = time.Duration(n) * time.Second
		case "tcp_keepalive":
			n, err := strconv.ParseUint(p.value, 10, 32)
			if err != nil {
				return mysqlOpts{}, &InvalidParamValueError{Param: p.key, Value: p.value}
			}
			mo.tcpKeepalive = uint32(n)
		case "tcp_nodelay":
			v, err := strconv.ParseBool(p.value)
			if err != nil {
				return mysqlOpts{}, &InvalidParamValueError{Param: p.key, Value: p.value}
			}
			mo.tcpNodelay = v
		case "stmt_cache_size":
			n, err := strconv.ParseUint(p.value, 10, 64)
			if err != nil {
				return mysqlOpts{}, &InvalidParamValueError{Param: p.key, Value: p.value}
			}
			mo.stmtCacheSize = uint(n)
		case "prefer_socket":
			v, err := strconv.ParseBool(p.value)
			if err != nil {
				return mysqlOpts{}, &InvalidParamValueError{Param: p.key, Value: p.value}
			}
			mo.preferSocket = v
		case "socket":
			mo.socket = p.value
		case "compression":
			c, ok := parseCompression(p.value)
			if !ok {
				return mysqlOpts{}, &InvalidParamValueError{Param: p.key, Value: p.value}
			}
			mo.compression = &c
		default:
			return mysqlOpts{}, &UnknownParameterError{Param: p.key}
		}
	}

	constraints, err := NewPoolConstraints(poolMin, poolMax)
	if err != nil {
		return mysqlOpts{}, err
	}
	mo.poolOpts = mo.poolOpts.WithConstraints(constraints)

	return mo, nil
}
