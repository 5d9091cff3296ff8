// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "fmt"

// ErrorCategory classifies command errors so scripts can tell bad
// input from failures without parsing message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// unknown subcommands, bad flags, unparseable GUIDs.
	CategoryValidation ErrorCategory = "validation"

	// CategoryInternal indicates an unexpected failure while producing
	// output.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by subcommands. It wraps
// the underlying error so errors.Is and errors.As see the full chain.
type ToolError struct {
	Category ErrorCategory
	Err      error
}

func (e *ToolError) Error() string { return e.Err.Error() }

func (e *ToolError) Unwrap() error { return e.Err }

// ExitCode maps the category to the process exit status: 2 for
// validation errors, 1 otherwise.
func (e *ToolError) ExitCode() int {
	if e.Category == CategoryValidation {
		return 2
	}
	return 1
}

// validation creates a validation error.
func validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// internal creates an internal error.
func internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
