package queries

import (
	"context"
	"database/sql"
	"errors"

	"evaluation/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAwardPeriodQueryHandler retrieves the period anchor from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAwardPeriodQueryHandler struct {
	db *gorm.DB
}

// NewGetAwardPeriodQueryHandler creates a handler for period anchor queries.
// Requires a GORM database connection for query execution.
func NewGetAwardPeriodQueryHandler(db *gorm.DB) GetAwardPeriodQueryHandler {
	return GetAwardPeriodQueryHandler{db: db}
}

// Handle executes the query to retrieve the period anchor. Returns an
// ObjectNotFoundError when no award has been created for the contracting
// process and stage yet.
func (h GetAwardPeriodQueryHandler) Handle(
	ctx context.Context,
	query GetAwardPeriodQuery,
) (GetAwardPeriodQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAwardPeriodQueryResponse{}, err
	}

	var response GetAwardPeriodQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			start_date
		FROM award_periods
		WHERE cp_id = ? AND stage = ?
	`, query.ContractID(), query.Stage()).Row()

	if err := row.Scan(&response.StartDate); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetAwardPeriodQueryResponse{}, errs.NewObjectNotFoundError(
				"award period", query.ContractID(),
			)
		}
		return GetAwardPeriodQueryResponse{}, err
	}

	return response, nil
}
