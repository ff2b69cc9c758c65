package opts

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidURL reports a connection URL that lacks a host or cannot be
// treated as hierarchical. The URL itself is never echoed: it may carry
// credentials.
var ErrInvalidURL = errors.New("invalid connection URL")

// UnsupportedSchemeError reports a URL whose scheme is not "mysql".
type UnsupportedSchemeError struct {
	Scheme string
}

func (e *UnsupportedSchemeError) Error() string {
	return fmt.Sprintf("URL scheme %q is not supported, expected %q", e.Scheme, urlScheme)
}

// UnknownParameterError reports a query parameter outside the recognized set.
type UnknownParameterError struct {
	Param string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown URL parameter %q", e.Param)
}

// InvalidParamValueError reports a recognized parameter whose value does not
// parse.
type InvalidParamValueError struct {
	Param string
	Value string
}

func (e *InvalidParamValueError) Error() string {
	return fmt.Sprintf("invalid value %q for URL parameter %q", e.Value, e.Param)
}

// InvalidPoolConstraintsError reports pool bounds with min > max.
type InvalidPoolConstraintsError struct {
	Min uint
	Max uint
}

func (e *InvalidPoolConstraintsError) Error() string {
	return fmt.Sprintf("invalid pool constraints: min %d is greater than max %d", e.Min, e.Max)
}

// ConfigError reports declarative Config fields that failed validation.
// Fields maps field name to a stable violation code.
type ConfigError struct {
	Fields map[string]string
}

func (e *ConfigError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, code := range e.Fields {
		parts = append(parts, field+": "+code)
	}
	slices.Sort(parts)
	return "invalid config: " + strings.Join(parts, ", ")
}
