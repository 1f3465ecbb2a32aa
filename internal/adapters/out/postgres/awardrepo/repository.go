package awardrepo

import (
	"context"
	"errors"

	"evaluation/internal/core/domain/model/award"
	"evaluation/internal/core/domain/model/kernel"
	"evaluation/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAwardRepository implements AwardRepository using GORM.
type GormAwardRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAwardRepository creates a new GORM award repository.
func NewGormAwardRepository(db *gorm.DB, tracker aggregateTracker) *GormAwardRepository {
	return &GormAwardRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new award to the database.
func (r *GormAwardRepository) Add(ctx context.Context, aggregate *award.Award) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing award to the database.
func (r *GormAwardRepository) Update(ctx context.Context, aggregate *award.Award) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&AwardDTO{}).Where("token = ?", dto.Token).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByContract retrieves all awards of a contracting process, every stage
// included. The creation and evaluation workflows run their sibling rules over
// this set.
func (r *GormAwardRepository) GetByContract(ctx context.Context, contractID string) ([]*award.Award, error) {
	if contractID == "" {
		return nil, errs.NewValueIsRequiredError("contract id")
	}

	var dtos []AwardDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "cp_id = ?", contractID).Error; err != nil {
		return nil, err
	}

	awards := make([]*award.Award, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		awards = append(awards, a)
	}

	return awards, nil
}

// GetByToken retrieves the award carrying the given evaluation credential
// within a contracting process stage.
func (r *GormAwardRepository) GetByToken(
	ctx context.Context,
	contractID string,
	stage string,
	token kernel.UUID,
) (*award.Award, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}

	var dto AwardDTO
	err := r.db.WithContext(ctx).
		First(&dto, "token = ? AND cp_id = ? AND stage = ?", token.Bytes(), contractID, stage).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("award", token.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
