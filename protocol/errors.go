// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"errors"
	"fmt"
)

// Kind classifies a protocol failure. Every error returned by this
// package is a *Error carrying one of these kinds; all of them are
// fatal for the current message.
type Kind int

const (
	// KindTransport is an I/O failure or short read on the byte
	// transport.
	KindTransport Kind = iota + 1
	// KindInvalidData is an unexpected byte, bad escape, malformed
	// number, lone surrogate, unknown envelope key, or mismatched
	// delimiter.
	KindInvalidData
	// KindBadVersion is a version marker mismatch: jsonrpc != "2.0",
	// or a compact envelope version other than 1.
	KindBadVersion
	// KindSizeLimit is a decoded count or field id that exceeds its
	// fixed-width range.
	KindSizeLimit
	// KindNotImplemented is an unknown message type on write or an
	// unknown type tag on read.
	KindNotImplemented
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindInvalidData:
		return "invalid data"
	case KindBadVersion:
		return "bad version"
	case KindSizeLimit:
		return "size limit"
	case KindNotImplemented:
		return "not implemented"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a structured codec failure. Callers can use errors.As to
// extract the kind:
//
//	var perr *protocol.Error
//	if errors.As(err, &perr) && perr.Kind == protocol.KindBadVersion { ... }
type Error struct {
	Kind    Kind
	Message string
	// Err is the underlying cause, if any (transport failures, number
	// parse errors).
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("protocol: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("protocol: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind == kind
	}
	return false
}

func invalidDataf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidData, Message: fmt.Sprintf(format, args...)}
}

func transportErr(err error) *Error {
	return &Error{Kind: KindTransport, Message: "transport failure", Err: err}
}
