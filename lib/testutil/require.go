// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"

	"github.com/bureau-foundation/dds/lib/invariant"
)

// RequireViolation runs fn and fails the test unless it panics with an
// [invariant.Violation] for contract. The violation is returned so the
// caller can inspect its message.
//
//	testutil.RequireViolation(t, "sample.read-only", func() { view.MutableData() })
func RequireViolation(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, contract string, fn func(), msgAndArgs ...any) (violation *invariant.Violation) {
	t.Helper()
	defer func() {
		recovered := recover()
		if recovered == nil {
			t.Fatalf("expected %s violation, call returned normally: %s", contract, formatMessage(msgAndArgs))
			return
		}
		found, ok := recovered.(*invariant.Violation)
		if !ok {
			t.Fatalf("expected %s violation, got panic %v: %s", contract, recovered, formatMessage(msgAndArgs))
			return
		}
		if found.Contract != contract {
			t.Fatalf("expected %s violation, got %s (%s): %s", contract, found.Contract, found.Message, formatMessage(msgAndArgs))
			return
		}
		violation = found
	}()
	fn()
	return nil
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
