// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package invariant

import "fmt"

// Violation is the panic value raised for a broken contract.
type Violation struct {
	// Contract names the contract that was broken, e.g.
	// "sample.read-only" or "sample.type-mismatch". Stable across
	// releases; tests match on it.
	Contract string

	// Message is the human-readable description.
	Message string
}

func (v *Violation) Error() string {
	return "invariant violated (" + v.Contract + "): " + v.Message
}

// Check panics with a Violation for contract when condition is false.
// The message is only formatted on failure.
func Check(condition bool, contract, format string, args ...any) {
	if condition {
		return
	}
	Failf(contract, format, args...)
}

// Failf unconditionally panics with a Violation for contract.
func Failf(contract, format string, args ...any) {
	panic(&Violation{Contract: contract, Message: fmt.Sprintf(format, args...)})
}

// Recover converts a recovered panic value back into a Violation.
// Returns nil for nil. Panics that are not Violations are re-raised
// unchanged: only contract failures are expected to be inspected.
//
//	defer func() { violation = invariant.Recover(recover()) }()
func Recover(recovered any) *Violation {
	if recovered == nil {
		return nil
	}
	if violation, ok := recovered.(*Violation); ok {
		return violation
	}
	panic(recovered)
}
