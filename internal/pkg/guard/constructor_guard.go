// Package guard provides the constructor-guard pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable: only objects created through their designated constructor
// carry a constructed guard and pass validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value is "not constructed" and fails validation, which prevents
// accidental use of directly instantiated domain objects.
//
// Example usage:
//
//	type Shift struct {
//	    start, end kernel.TimeOfDay
//	    guard guard.ConstructorGuard
//	}
//
//	func NewShift(start, end kernel.TimeOfDay) (Shift, error) {
//	    // ... validation ...
//	    return Shift{start: start, end: end, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s Shift) Validate() error {
//	    return s.guard.Validate(ErrShiftIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed. Call it in every domain constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was created through its
// constructor. Otherwise it returns validationError, or
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
