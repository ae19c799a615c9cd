// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"github.com/bureau-foundation/thriftjson/transport"
)

// lookaheadReader provides one byte of lookahead over a transport. A
// single-slot buffer holds the peeked byte: peeking repeatedly is
// idempotent, and read after peek returns the buffered byte without
// touching the transport again.
type lookaheadReader struct {
	trans   transport.Transport
	hasByte bool
	b       byte
}

// read consumes and returns the next byte.
func (r *lookaheadReader) read() (byte, error) {
	if r.hasByte {
		r.hasByte = false
		return r.b, nil
	}
	var buf [1]byte
	if err := transport.ReadExactly(r.trans, buf[:]); err != nil {
		return 0, transportErr(err)
	}
	return buf[0], nil
}

// peek returns the next byte without consuming it.
func (r *lookaheadReader) peek() (byte, error) {
	if !r.hasByte {
		var buf [1]byte
		if err := transport.ReadExactly(r.trans, buf[:]); err != nil {
			return 0, transportErr(err)
		}
		r.b = buf[0]
		r.hasByte = true
	}
	return r.b, nil
}
