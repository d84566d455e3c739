// Package core holds small types shared across the cnf and sat packages,
// kept separate so neither package needs to import the other for error
// handling alone.
package core

import "fmt"

// SolverError represents a malformed-input error raised by the CNF
// reader. Component names the package ("cnf"), Op names the function
// that failed.
type SolverError struct {
	Component string
	Op        string
	Message   string
}

func (e *SolverError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s: %s: %s", e.Component, e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// NewError builds a SolverError.
func NewError(component, operation, message string) *SolverError {
	return &SolverError{Component: component, Op: operation, Message: message}
}

// InvariantError indicates a violated solver invariant: a bug, not a
// malformed-input or unsat condition. Callers are expected to treat it as
// fatal rather than attempt to recover.
type InvariantError struct {
	Op      string
	Message string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated in %s: %s", e.Op, e.Message)
}

// NewInvariantError builds an InvariantError.
func NewInvariantError(operation, message string) *InvariantError {
	return &InvariantError{Op: operation, Message: message}
}
