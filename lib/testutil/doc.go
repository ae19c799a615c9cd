// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for the codec
// packages.
//
// [RequireNoError] and [RequireEqual] encapsulate the fail-fast
// assertion pattern so individual tests do not repeat the
// if-err-Fatalf boilerplate around every codec call.
//
// [RequireBytes] compares wire output byte-for-byte and reports the
// offset of the first difference. Codec tests assert exact bytes, and
// "strings differ" without a position is useless against a 100-byte
// envelope.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since an assertion failure mid-message leaves the codec in an
// unusable state anyway.
//
// This package has no internal dependencies.
package testutil
