// Package logutil keeps connection secrets out of logs and error messages.
package logutil

import "net/url"

const placeholder = "[REDACTED]"

// Mask replaces a secret with a fixed placeholder. The placeholder carries no
// length information. Empty input stays empty so optional fields stay absent.
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	return placeholder
}

// MaskURL strips the password from a URL-form DSN so the rest of it can
// appear in logs. Input that does not parse as a URL is masked entirely.
func MaskURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return placeholder
	}
	if _, has := u.User.Password(); has {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
