package opts

import "time"

// DefaultPoolConstraints bound the pool to between 10 and 100 connections.
var DefaultPoolConstraints = PoolConstraints{min: 10, max: 100}

const (
	// DefaultInactiveConnectionTTL is zero: a connection outside the pool's
	// lower bound is dropped as soon as it goes idle.
	DefaultInactiveConnectionTTL time.Duration = 0

	// DefaultTTLCheckInterval is how often the pool sweeps idle connections
	// for expiration. Unused while InactiveConnectionTTL is zero.
	DefaultTTLCheckInterval = 30 * time.Second
)

// PoolConstraints stores the lower and upper bound on live connections held
// by a pool and guarantees min <= max.
type PoolConstraints struct {
	min uint
	max uint
}

// NewPoolConstraints builds constraints from the given bounds. It returns an
// *InvalidPoolConstraintsError when min > max.
func NewPoolConstraints(min, max uint) (PoolConstraints, error) {
	if min > max {
		return PoolConstraints{}, &InvalidPoolConstraintsError{Min: min, Max: max}
	}
	return PoolConstraints{min: min, max: max}, nil
}

// Min returns the lower bound.
func (c PoolConstraints) Min() uint { return c.min }

// Max returns the upper bound.
func (c PoolConstraints) Max() uint { return c.max }

// MinMax returns both bounds as a pair.
func (c PoolConstraints) MinMax() (min, max uint) { return c.min, c.max }

// PoolOpts groups the connection-pool tunables.
type PoolOpts struct {
	constraints           PoolConstraints
	inactiveConnectionTTL time.Duration
	ttlCheckInterval      time.Duration
}

// DefaultPoolOpts returns pool options with DefaultPoolConstraints,
// DefaultInactiveConnectionTTL and DefaultTTLCheckInterval.
func DefaultPoolOpts() PoolOpts {
	return PoolOpts{
		constraints:           DefaultPoolConstraints,
		inactiveConnectionTTL: DefaultInactiveConnectionTTL,
		ttlCheckInterval:      DefaultTTLCheckInterval,
	}
}

// WithConstraints returns a copy with the given constraints.
func (p PoolOpts) WithConstraints(c PoolConstraints) PoolOpts {
	p.constraints = c
	return p
}

// Constraints returns the pool constraints.
func (p PoolOpts) Constraints() PoolConstraints { return p.constraints }

// WithInactiveConnectionTTL returns a copy with the given idle TTL. The pool
// recycles a connection above the lower bound once it idles longer than ttl;
// the actual idle time also depends on TTLCheckInterval.
//
// URL parameter: inactive_connection_ttl (seconds).
func (p PoolOpts) WithInactiveConnectionTTL(ttl time.Duration) PoolOpts {
	p.inactiveConnectionTTL = ttl
	return p
}

// InactiveConnectionTTL returns the idle TTL.
func (p PoolOpts) InactiveConnectionTTL() time.Duration {
	return p.inactiveConnectionTTL
}

// WithTTLCheckInterval returns a copy with the given sweep interval.
// Intervals under one second fall back to DefaultTTLCheckInterval.
//
// URL parameter: ttl_check_interval (seconds).
func (p PoolOpts) WithTTLCheckInterval(interval time.Duration) PoolOpts {
	if interval < time.Second {
		p.ttlCheckInterval = DefaultTTLCheckInterval
	} else {
		p.ttlCheckInterval = interval
	}
	return p
}

// TTLCheckInterval returns the sweep interval.
func (p PoolOpts) TTLCheckInterval() time.Duration { return p.ttlCheckInterval }

// ActiveBound is the number of idle connections the pool may keep.
//
// It is the max bound when InactiveConnectionTTL is non-zero (idlers are kept
// and trimmed toward min by the periodic sweep) and the min bound otherwise
// (excess idlers are disconnected immediately).
func (p PoolOpts) ActiveBound() uint {
	if p.inactiveConnectionTTL > 0 {
		return p.constraints.max
	}
	return p.constraints.min
}
