package queries

import (
	"context"

	"evaluation/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetContractAwardsQueryHandler retrieves award states from the database.
// Scans the indexed status columns directly so the serialized aggregate body
// is never decoded on the read path.
type GetContractAwardsQueryHandler struct {
	db *gorm.DB
}

// NewGetContractAwardsQueryHandler creates a handler for award state queries.
// Requires a GORM database connection for query execution.
func NewGetContractAwardsQueryHandler(db *gorm.DB) GetContractAwardsQueryHandler {
	return GetContractAwardsQueryHandler{db: db}
}

// Handle executes the query to retrieve the award states of a contracting
// process stage, oldest award first.
func (h GetContractAwardsQueryHandler) Handle(
	ctx context.Context,
	query GetContractAwardsQuery,
) ([]GetContractAwardsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	awards := make([]GetContractAwardsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			status_details
		FROM awards
		WHERE cp_id = ? AND stage = ?
		ORDER BY id
	`, query.ContractID(), query.Stage()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetContractAwardsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.Status,
			&response.StatusDetails,
		)
		if err != nil {
			return nil, err
		}

		awardID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.AwardID = awardID

		awards = append(awards, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return awards, nil
}
