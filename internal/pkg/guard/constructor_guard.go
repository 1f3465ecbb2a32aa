// Package guard provides a small helper for enforcing constructor usage on
// value types. Embedding a ConstructorGuard in a struct makes the zero value
// detectable, so code that receives a struct can verify it went through its
// factory function and not direct literal construction.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error is
// supplied and the guarded object was not created via its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as having been produced by a constructor.
// The zero value is invalid, which is exactly the point: any struct that
// embeds a guard and is built as a literal fails Validate.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard marking its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns notConstructedErr, or ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
