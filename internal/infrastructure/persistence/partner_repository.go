package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPartnerRepository implements PartnerRepository using GORM
type GormPartnerRepository struct {
	db *gorm.DB
}

// NewGormPartnerRepository creates a new GormPartnerRepository
func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

// FindByID finds a partner by its ID
func (r *GormPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	var model models.PartnerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByAccountID finds a partner by its CRM account identifier
func (r *GormPartnerRepository) FindByAccountID(ctx context.Context, accountID string) (*partner.Partner, error) {
	if accountID == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_ID", "Account ID cannot be empty")
	}
	var model models.PartnerModel
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all partners matching the filter
func (r *GormPartnerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Partner, error) {
	var partnerModels []models.PartnerModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PartnerModel{}), filter)

	if err := query.Find(&partnerModels).Error; err != nil {
		return nil, err
	}

	partners := make([]partner.Partner, len(partnerModels))
	for i, model := range partnerModels {
		partners[i] = *model.ToDomain()
	}
	return partners, nil
}

// FindActive finds all active partners
func (r *GormPartnerRepository) FindActive(ctx context.Context) ([]partner.Partner, error) {
	var partnerModels []models.PartnerModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("account_name ASC").
		Find(&partnerModels).Error; err != nil {
		return nil, err
	}

	partners := make([]partner.Partner, len(partnerModels))
	for i, model := range partnerModels {
		partners[i] = *model.ToDomain()
	}
	return partners, nil
}

// Save creates or updates a partner
func (r *GormPartnerRepository) Save(ctx context.Context, p *partner.Partner) error {
	model := models.PartnerModelFromDomain(p)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveBatch creates or updates multiple partners
func (r *GormPartnerRepository) SaveBatch(ctx context.Context, partners []*partner.Partner) error {
	if len(partners) == 0 {
		return nil
	}
	partnerModels := make([]*models.PartnerModel, len(partners))
	for i, p := range partners {
		partnerModels[i] = models.PartnerModelFromDomain(p)
	}
	return r.db.WithContext(ctx).Save(partnerModels).Error
}

// Delete deletes a partner
func (r *GormPartnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PartnerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts partners matching the filter
func (r *GormPartnerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.PartnerModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormPartnerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("account_name ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPartnerRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("account_name ILIKE ? OR account_id ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		case "tier":
			query = query.Where("tier = ?", value)
		case "region":
			query = query.Where("region = ?", value)
		}
	}

	return query
}

// Ensure GormPartnerRepository implements PartnerRepository
var _ partner.PartnerRepository = (*GormPartnerRepository)(nil)
