// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"errors"
	"fmt"
	"io"
)

// Transport is a blocking byte stream carrying encoded messages. It is
// the only thing the protocol layer knows about the outside world.
//
// Read follows the io.Reader contract and may return fewer bytes than
// requested; codecs that need exact counts use [ReadExactly]. Write
// must accept the full slice or fail. Flush pushes any buffered bytes
// toward the peer and is a no-op for unbuffered transports.
type Transport interface {
	io.Reader
	io.Writer

	// Flush forces any locally buffered bytes out to the underlying
	// stream. The codecs never call it; the caller flushes after a
	// message is written.
	Flush() error

	// Close releases the transport. Whether reads and writes still
	// work after Close depends on the implementation: a MemoryBuffer,
	// for one, stays usable.
	Close() error
}

// Error is a structured transport failure. Callers can use errors.As
// to extract the operation that failed:
//
//	var terr *transport.Error
//	if errors.As(err, &terr) && terr.Op == "read" { ... }
type Error struct {
	// Op is the operation that failed: "read", "write", "flush",
	// "close", or "dial".
	Op string
	// Err is the underlying cause. Short reads carry
	// io.ErrUnexpectedEOF.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsError reports whether err is (or wraps) a transport-level failure.
func IsError(err error) bool {
	var terr *Error
	return errors.As(err, &terr)
}

// ReadExactly fills p from t, blocking until all len(p) bytes have
// arrived. A short read, including a clean EOF mid-fill, is reported
// as an *Error wrapping io.ErrUnexpectedEOF.
func ReadExactly(t io.Reader, p []byte) error {
	if _, err := io.ReadFull(t, p); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return &Error{Op: "read", Err: err}
	}
	return nil
}
