// Package guard provides the ConstructorGuard pattern used by commands, queries
// and value objects to reject zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor function. Embedding a guard lets Validate distinguish properly
// constructed instances from zero values.
//
// Example:
//
//	var ErrOpenDisputeCommandIsNotConstructed = errors.New(
//		"OpenDisputeCommand must be created via NewOpenDisputeCommand constructor")
//
//	type OpenDisputeCommand struct {
//		paymentID kernel.UUID
//		guard     guard.ConstructorGuard
//	}
//
//	func (c OpenDisputeCommand) Validate() error {
//		return c.guard.Validate(ErrOpenDisputeCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it inside the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created through its constructor.
// For zero-value objects it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
