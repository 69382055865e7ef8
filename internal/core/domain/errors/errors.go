// Package errors holds the programming-error types shared across the service.
// Expected domain outcomes (unknown account, expired token, conflicting
// request) are package-level sentinels declared next to the types they
// concern; the types here signal bugs and are meant to be panicked with.
package errors

import "fmt"

// InvalidStateError reports a value that broke one of its own invariants
// after construction-time validation should have made that impossible.
type InvalidStateError struct {
	msg string
}

func NewInvalidStateError(msg string) *InvalidStateError {
	return &InvalidStateError{msg: msg}
}

func (e *InvalidStateError) Error() string {
	return "invalid state: " + e.msg
}

// NilArgumentError is what service and adapter constructors panic with when
// wiring hands them a nil dependency.
type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument %q must not be nil", e.argument)
}
