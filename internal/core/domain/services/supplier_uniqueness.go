package services

import (
	"errors"

	"evaluation/internal/core/domain/model/award"
)

var (
	// ErrSupplierNotUniqueInAward is returned when a creation request lists the
	// same supplier (by canonical id) more than once.
	ErrSupplierNotUniqueInAward = errors.New("supplier is not unique within the award")

	// ErrSupplierNotUniqueInLot is returned when a requested supplier already
	// appears on a pending award for the same lot.
	ErrSupplierNotUniqueInLot = errors.New("supplier is not unique within the lot")
)

// SupplierUniquenessPolicy enforces the two supplier deduplication rules of
// award creation: no duplicate supplier inside one award, and no supplier
// shared with a pending sibling award on the same lot. Both rules compare
// canonical supplier ids.
type SupplierUniquenessPolicy struct{}

// NewSupplierUniquenessPolicy creates a new SupplierUniquenessPolicy instance.
func NewSupplierUniquenessPolicy() SupplierUniquenessPolicy {
	return SupplierUniquenessPolicy{}
}

// EnsureUniqueInAward fails with ErrSupplierNotUniqueInAward when two
// suppliers of the request resolve to the same canonical id.
func (p SupplierUniquenessPolicy) EnsureUniqueInAward(suppliers []award.Supplier) error {
	seen := make(map[string]struct{}, len(suppliers))
	for _, s := range suppliers {
		id := s.CanonicalID()
		if _, ok := seen[id]; ok {
			return ErrSupplierNotUniqueInAward
		}
		seen[id] = struct{}{}
	}
	return nil
}

// EnsureUniqueInLot collects the canonical supplier ids of every pending
// sibling award referencing the lot and fails with ErrSupplierNotUniqueInLot
// when a requested supplier is among them.
func (p SupplierUniquenessPolicy) EnsureUniqueInLot(
	suppliers []award.Supplier,
	siblings []*award.Award,
	lotID string,
) error {
	taken := make(map[string]struct{})
	for _, sibling := range siblings {
		if sibling.Status() != award.StatusPending || !sibling.HasLot(lotID) {
			continue
		}
		for _, id := range sibling.SupplierIDs() {
			taken[id] = struct{}{}
		}
	}

	for _, s := range suppliers {
		if _, ok := taken[s.CanonicalID()]; ok {
			return ErrSupplierNotUniqueInLot
		}
	}
	return nil
}
