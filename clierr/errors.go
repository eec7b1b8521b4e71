// Package clierr classifies errors reported to command line users.
package clierr

import (
	"errors"
	"fmt"
)

//go:generate stringer -type=Kind -trimprefix=Kind

// Kind is a broad error category.
type Kind int

const (
	KindUnknown Kind = iota
	KindIO
	KindConfig
	KindAuth
	KindNetwork
)

// Error is a categorized error with a human readable message and an
// optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	var prefix string
	switch e.Kind {
	case KindIO:
		prefix = "IO error"
	case KindConfig:
		prefix = "Config error"
	case KindAuth:
		prefix = "Authentication error"
	case KindNetwork:
		prefix = "Network error"
	default:
		prefix = "Unknown error"
	}
	switch {
	case e.Err == nil:
		return prefix + ": " + e.Msg
	case e.Msg == "":
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	default:
		return fmt.Sprintf("%s: %s: %v", prefix, e.Msg, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so errors.Is(err, clierr.Config)
// works with the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	IO      = &Error{Kind: KindIO}
	Config  = &Error{Kind: KindConfig}
	Auth    = &Error{Kind: KindAuth}
	Network = &Error{Kind: KindNetwork}
	Unknown = &Error{Kind: KindUnknown}
)

// New returns an error of given kind.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap returns an error of given kind with err as its cause. Wrap returns
// nil if err is nil.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// IOError wraps err as KindIO. It returns nil if err is nil.
func IOError(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindIO, Err: err}
}

// ConfigError returns a KindConfig error.
func ConfigError(msg string) error { return New(KindConfig, msg) }

// AuthError returns a KindAuth error.
func AuthError(msg string) error { return New(KindAuth, msg) }

// NetworkError returns a KindNetwork error.
func NetworkError(msg string) error { return New(KindNetwork, msg) }

// UnknownError returns a KindUnknown error.
func UnknownError(msg string) error { return New(KindUnknown, msg) }

// KindOf returns kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
