// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
)

// failer is the slice of testing.T these helpers need. Accepting the
// interface keeps the package free of a testing import and usable from
// helper processes.
type failer interface {
	Helper()
	Fatalf(format string, args ...any)
}

// RequireNoError fails the test if err is non-nil.
//
//	testutil.RequireNoError(t, err, "writing message envelope")
func RequireNoError(t failer, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v: %s", err, formatMessage(msgAndArgs))
	}
}

// RequireEqual fails the test unless got equals want.
func RequireEqual[T comparable](t failer, got, want T, msgAndArgs ...any) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v: %s", got, want, formatMessage(msgAndArgs))
	}
}

// RequireBytes compares wire output byte-for-byte and reports the
// offset of the first difference on mismatch.
func RequireBytes(t failer, got, want string, msgAndArgs ...any) {
	t.Helper()
	if got == want {
		return
	}
	offset := 0
	for offset < len(got) && offset < len(want) && got[offset] == want[offset] {
		offset++
	}
	t.Fatalf("wire bytes differ at offset %d:\ngot:  %q\nwant: %q\n%s",
		offset, got, want, formatMessage(msgAndArgs))
}

// formatMessage formats optional message arguments into a string.
// Accepts either a single string or a format string followed by args.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs)
}
