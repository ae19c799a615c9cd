// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package transport provides the byte-stream contract consumed by the
// protocol codecs, along with a small set of concrete transports.
//
// A [Transport] is a blocking, unframed byte stream: the codec layer
// requires only exact reads (via [ReadExactly]) and writes. The package
// deliberately defines no timeouts and no message framing; both belong
// to the transport an application composes, not to the contract.
//
//   - memory.go: in-memory transport with an independent read cursor,
//     used as the codecs' payload capture buffer and throughout the
//     test suite
//   - tcp.go: adapter for net.Conn streams plus a Dialer
//   - zlib.go: zlib-compressed wrapper around an inner transport
//   - lz4.go: lz4-framed wrapper around an inner transport
//
// All transport failures surface as *[Error] so that callers can
// distinguish transport faults from protocol-level decode errors.
package transport
