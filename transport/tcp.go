// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"context"
	"net"
	"time"
)

// Compile-time interface check.
var _ Transport = (*TCPConn)(nil)

// TCPConn adapts a net.Conn to the Transport contract. TCP is the
// development and same-LAN transport; anything needing NAT traversal
// or multiplexing belongs in a wrapper.
type TCPConn struct {
	conn net.Conn
}

// NewTCPConn wraps an established connection. The caller keeps
// responsibility for any deadlines already set on conn.
func NewTCPConn(conn net.Conn) *TCPConn {
	return &TCPConn{conn: conn}
}

func (c *TCPConn) Read(p []byte) (int, error) {
	return c.conn.Read(p)
}

func (c *TCPConn) Write(p []byte) (int, error) {
	n, err := c.conn.Write(p)
	if err != nil {
		return n, &Error{Op: "write", Err: err}
	}
	return n, nil
}

// Flush is a no-op: TCP writes are handed to the kernel immediately.
func (c *TCPConn) Flush() error {
	return nil
}

func (c *TCPConn) Close() error {
	if err := c.conn.Close(); err != nil {
		return &Error{Op: "close", Err: err}
	}
	return nil
}

// Dialer opens TCP transports to remote peers.
type Dialer struct {
	// Timeout is the maximum time to wait for the TCP connection to be
	// established. Zero means no standalone timeout; only the context
	// deadline applies.
	Timeout time.Duration
}

// DialContext opens a TCP connection to address (host:port) and wraps
// it as a Transport.
func (d *Dialer) DialContext(ctx context.Context, address string) (*TCPConn, error) {
	conn, err := (&net.Dialer{Timeout: d.Timeout}).DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, &Error{Op: "dial", Err: err}
	}
	return NewTCPConn(conn), nil
}
