package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the embedding value went through its constructor.
//
// Example:
//
//	type AdvanceOrderStatusCommand struct {
//	    orderID kernel.OrderID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c AdvanceOrderStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
