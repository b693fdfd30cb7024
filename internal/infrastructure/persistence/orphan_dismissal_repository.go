package persistence

import (
	"context"
	"errors"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrphanDismissalRepository implements OrphanDismissalRepository using GORM
type GormOrphanDismissalRepository struct {
	db *gorm.DB
}

// NewGormOrphanDismissalRepository creates a new GormOrphanDismissalRepository
func NewGormOrphanDismissalRepository(db *gorm.DB) *GormOrphanDismissalRepository {
	return &GormOrphanDismissalRepository{db: db}
}

// FindAll returns every recorded dismissal
func (r *GormOrphanDismissalRepository) FindAll(ctx context.Context) ([]partner.OrphanDismissal, error) {
	var dismissalModels []models.OrphanDismissalModel
	if err := r.db.WithContext(ctx).
		Order("dismissed_at DESC").
		Find(&dismissalModels).Error; err != nil {
		return nil, err
	}

	dismissals := make([]partner.OrphanDismissal, len(dismissalModels))
	for i, model := range dismissalModels {
		dismissals[i] = *model.ToDomain()
	}
	return dismissals, nil
}

// Find returns the dismissal for one (LMS user, partner) pair
func (r *GormOrphanDismissalRepository) Find(ctx context.Context, lmsUserID string, partnerID uuid.UUID) (*partner.OrphanDismissal, error) {
	var model models.OrphanDismissalModel
	if err := r.db.WithContext(ctx).
		Where("lms_user_id = ? AND partner_id = ?", lmsUserID, partnerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a dismissal
func (r *GormOrphanDismissalRepository) Save(ctx context.Context, dismissal *partner.OrphanDismissal) error {
	model := models.OrphanDismissalModelFromDomain(dismissal)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteByUserAndPartner removes the dismissal for one (LMS user, partner) pair
func (r *GormOrphanDismissalRepository) DeleteByUserAndPartner(ctx context.Context, lmsUserID string, partnerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.OrphanDismissalModel{}, "lms_user_id = ? AND partner_id = ?", lmsUserID, partnerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormOrphanDismissalRepository implements OrphanDismissalRepository
var _ partner.OrphanDismissalRepository = (*GormOrphanDismissalRepository)(nil)
