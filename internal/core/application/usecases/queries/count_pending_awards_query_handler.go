package queries

import (
	"context"

	"evaluation/internal/core/domain/model/award"

	"gorm.io/gorm"
)

// CountPendingAwardsQueryHandler counts undecided awards in the database.
type CountPendingAwardsQueryHandler struct {
	db *gorm.DB
}

// NewCountPendingAwardsQueryHandler creates a handler for pending award counts.
// Requires a GORM database connection for query execution.
func NewCountPendingAwardsQueryHandler(db *gorm.DB) CountPendingAwardsQueryHandler {
	return CountPendingAwardsQueryHandler{db: db}
}

// Handle executes the query and returns the number of awards that are pending
// with no recorded decision.
func (h CountPendingAwardsQueryHandler) Handle(
	ctx context.Context,
	query CountPendingAwardsQuery,
) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			count(*)
		FROM awards
		WHERE status = ? AND status_details = ?
	`, award.StatusPending.String(), award.DetailsEmpty.String()).Row()

	if err := row.Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
