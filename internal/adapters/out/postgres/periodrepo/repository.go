package periodrepo

import (
	"context"
	"errors"
	"time"

	"evaluation/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAwardPeriodRepository implements AwardPeriodRepository using GORM.
type GormAwardPeriodRepository struct {
	db *gorm.DB
}

// NewGormAwardPeriodRepository creates a new GORM award period repository.
func NewGormAwardPeriodRepository(db *gorm.DB) *GormAwardPeriodRepository {
	return &GormAwardPeriodRepository{db: db}
}

// GetStart retrieves the stored period anchor. Returns an ObjectNotFoundError
// when no anchor exists for the contracting process and stage.
func (r *GormAwardPeriodRepository) GetStart(ctx context.Context, contractID, stage string) (time.Time, error) {
	if contractID == "" {
		return time.Time{}, errs.NewValueIsRequiredError("contract id")
	}
	if stage == "" {
		return time.Time{}, errs.NewValueIsRequiredError("stage")
	}

	var dto AwardPeriodDTO
	err := r.db.WithContext(ctx).First(&dto, "cp_id = ? AND stage = ?", contractID, stage).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, errs.NewObjectNotFoundError("award period", contractID)
		}
		return time.Time{}, err
	}

	return dto.StartDate, nil
}

// SaveStart writes the period anchor if none exists yet. The insert is
// conflict-tolerant: when a concurrent writer got there first the existing
// anchor stays untouched and no error is returned. Callers re-read after
// saving to learn which value won.
func (r *GormAwardPeriodRepository) SaveStart(
	ctx context.Context,
	contractID string,
	stage string,
	start time.Time,
) error {
	if contractID == "" {
		return errs.NewValueIsRequiredError("contract id")
	}
	if stage == "" {
		return errs.NewValueIsRequiredError("stage")
	}
	if start.IsZero() {
		return errs.NewValueIsRequiredError("start date")
	}

	dto := AwardPeriodDTO{
		CpID:      contractID,
		Stage:     stage,
		StartDate: start,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}
