package services

import (
	"evaluation/internal/core/domain/model/award"
)

// LotAwardedDeriver computes the tri-state lot-awarded flag: a signal to the
// caller about whether a lot already has a conclusive award in progress.
//
// The flag is nil ("unknown") whenever no statement is needed: no award
// references the lot, an active award already covers it, or an undecided award
// is still pending. It is false when every award referencing the lot is a
// pending unsuccessful one, telling the caller no award is in flight for the
// lot anymore.
type LotAwardedDeriver struct{}

// NewLotAwardedDeriver creates a new LotAwardedDeriver instance.
func NewLotAwardedDeriver() LotAwardedDeriver {
	return LotAwardedDeriver{}
}

// Derive inspects all awards of a contract against the target lot.
// Returns nil when the flag carries no information, or a pointer to false when
// the lot has only pending unsuccessful awards left.
func (d LotAwardedDeriver) Derive(awards []*award.Award, lotID string) *bool {
	referencing := make([]*award.Award, 0, len(awards))
	for _, a := range awards {
		if a.HasLot(lotID) {
			referencing = append(referencing, a)
		}
	}

	if len(referencing) == 0 {
		return nil
	}

	for _, a := range referencing {
		if a.Status() == award.StatusPending && a.StatusDetails() == award.DetailsActive {
			return nil
		}
	}

	for _, a := range referencing {
		if a.Status() == award.StatusPending && a.StatusDetails() == award.DetailsEmpty {
			return nil
		}
	}

	notAwarded := false
	return &notAwarded
}
