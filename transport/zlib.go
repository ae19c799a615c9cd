// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"io"

	"github.com/klauspost/compress/zlib"
)

// Compile-time interface check.
var _ Transport = (*ZlibTransport)(nil)

// ZlibTransport compresses both directions of an inner transport with
// zlib (RFC 1950). This is the wire-compatible compression layer for
// peers that expect a zlib-wrapped codec stream.
//
// The read side is initialized lazily on first Read, because the zlib
// header must be consumed from the inner transport and a
// freshly-dialed connection may not have produced it yet.
type ZlibTransport struct {
	inner  Transport
	writer *zlib.Writer
	reader io.ReadCloser
}

// NewZlibTransport wraps inner with zlib compression at the default
// compression level.
func NewZlibTransport(inner Transport) *ZlibTransport {
	return &ZlibTransport{
		inner:  inner,
		writer: zlib.NewWriter(inner),
	}
}

func (t *ZlibTransport) Read(p []byte) (int, error) {
	if t.reader == nil {
		reader, err := zlib.NewReader(t.inner)
		if err != nil {
			return 0, &Error{Op: "read", Err: err}
		}
		t.reader = reader
	}
	return t.reader.Read(p)
}

func (t *ZlibTransport) Write(p []byte) (int, error) {
	n, err := t.writer.Write(p)
	if err != nil {
		return n, &Error{Op: "write", Err: err}
	}
	return n, nil
}

// Flush emits a sync flush point so all written bytes become readable
// by the peer, then flushes the inner transport.
func (t *ZlibTransport) Flush() error {
	if err := t.writer.Flush(); err != nil {
		return &Error{Op: "flush", Err: err}
	}
	return t.inner.Flush()
}

// Close finishes the compressed stream and closes the inner transport.
func (t *ZlibTransport) Close() error {
	if err := t.writer.Close(); err != nil {
		return &Error{Op: "close", Err: err}
	}
	if t.reader != nil {
		if err := t.reader.Close(); err != nil {
			return &Error{Op: "close", Err: err}
		}
	}
	return t.inner.Close()
}
