// Package kernel provides core domain primitives shared across the evaluation
// service domain model.
//
// The package includes:
//   - UUID: a value object for time-ordered unique identifiers, used for award
//     ids and evaluation tokens
//   - Money: a value object for a monetary amount with its currency
//
// These primitives are immutable, validated at construction, and safe for
// concurrent use.
package kernel
