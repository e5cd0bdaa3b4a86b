// Package guard provides the ConstructorGuard pattern used by commands,
// queries, and value objects to ensure instances are only created through
// their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects built through their constructor
// from zero-value instances. Embed it in a struct and set it with
// NewConstructorGuard inside the constructor; Validate then rejects any
// zero-value instance.
//
// Example:
//
//	type PlaceOrderCommand struct {
//	    dishIDs []kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewPlaceOrderCommand(...) (PlaceOrderCommand, error) {
//	    ...
//	    return PlaceOrderCommand{dishIDs: ids, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was built through its constructor,
// otherwise the given validationError (or ErrDefaultConstructorGuard when
// validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
