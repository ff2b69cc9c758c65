package opts

// SSLOpts configures the TLS side of a connection. A non-nil *SSLOpts on
// Opts means the client requires TLS; the connection layer performs the
// actual handshake.
//
//	ssl := opts.SSLOpts{}.
//		WithPKCS12Path("/etc/mysql/client.p12").
//		WithPassword("******")
type SSLOpts struct {
	pkcs12Path           string
	password             string
	rootCertPath         string
	skipDomainValidation bool
	acceptInvalidCerts   bool
}

// WithPKCS12Path returns a copy with the path to a pkcs12 archive in der
// format. Empty means no client identity.
func (s SSLOpts) WithPKCS12Path(path string) SSLOpts {
	s.pkcs12Path = path
	return s
}

// WithPassword returns a copy with the pkcs12 archive password.
func (s SSLOpts) WithPassword(password string) SSLOpts {
	s.password = password
	return s
}

// WithRootCertPath returns a copy with the path to a pem or der certificate
// of a root the client will trust. A pem file may hold multiple certs.
func (s SSLOpts) WithRootCertPath(path string) SSLOpts {
	s.rootCertPath = path
	return s
}

// WithDangerSkipDomainValidation returns a copy that skips validation of the
// server's domain name against its certificate (defaults to false).
func (s SSLOpts) WithDangerSkipDomainValidation(v bool) SSLOpts {
	s.skipDomainValidation = v
	return s
}

// WithDangerAcceptInvalidCerts returns a copy that accepts expired or
// untrusted certificates (defaults to false).
func (s SSLOpts) WithDangerAcceptInvalidCerts(v bool) SSLOpts {
	s.acceptInvalidCerts = v
	return s
}

// PKCS12Path returns the pkcs12 archive path, empty when unset.
func (s SSLOpts) PKCS12Path() string { return s.pkcs12Path }

// Password returns the pkcs12 archive password, empty when unset.
func (s SSLOpts) Password() string { return s.password }

// RootCertPath returns the trusted-root certificate path, empty when unset.
func (s SSLOpts) RootCertPath() string { return s.rootCertPath }

// SkipDomainValidation reports whether domain validation is disabled.
func (s SSLOpts) SkipDomainValidation() bool { return s.skipDomainValidation }

// AcceptInvalidCerts reports whether invalid certificates are accepted.
func (s SSLOpts) AcceptInvalidCerts() bool { return s.acceptInvalidCerts }
