// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package protocol implements the textual JSON wire codecs for the
// Thrift value model: a compact array-framed encoding ([JSONProtocol])
// and a JSON-RPC 2.0 object-framed encoding ([JSONRPCProtocol]). Both
// produce byte-for-byte deterministic output and share one value
// grammar:
//
//  1. Integer types are JSON numbers.
//
//  2. Doubles are JSON numbers, except the special values, which are
//     the quoted strings "NaN", "Infinity" and "-Infinity".
//
//  3. Strings are JSON strings with the codec's exact escaping rules
//     ('/' is never escaped; control characters without a short escape
//     use lowercase \u00xx).
//
//  4. Binary values are base64 without padding on the write side;
//     reads accept both padded and unpadded input.
//
//  5. Structs are JSON objects keyed by decimal field id (quoted,
//     because it sits in key position), each value wrapped in a
//     single-pair object keyed by the type tag: {"4":{"str":"hi"}}.
//
//  6. Lists and sets are JSON arrays: element type tag, element count,
//     then the elements.
//
//  7. Maps are JSON arrays: key type tag, value type tag, pair count,
//     then one JSON object holding the pairs. Numeric keys are quoted
//     by the key-position rule.
//
// The package is organized around the codec layering:
//
//   - type.go: value/message type constants and the wire tag table
//   - context.go: lexical contexts (root, object pair, array) and the
//     context stack that manufactures separators and key quoting
//   - reader.go: one-byte lookahead over a transport
//   - stream.go: the lexical layer binding a transport, a lookahead
//     reader and a context stack; string/base64/number grammar and the
//     opaque payload capture
//   - json.go: array-framed message envelope
//   - jsonrpc.go: JSON-RPC 2.0 message envelope
//   - skip.go: generic value skipper over the read surface
//
// Codec instances are bound to one transport and are not safe for
// concurrent use; sharing requires external exclusion.
package protocol
