// Package services provides domain services that implement business rules
// spanning multiple awards of the same contracting process. Rules that compare
// an award against its siblings (supplier uniqueness on a lot, the lot-awarded
// flag) do not belong to a single aggregate and live here instead.
package services
