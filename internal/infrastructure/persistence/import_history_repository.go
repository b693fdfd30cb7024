package persistence

import (
	"context"
	"errors"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/bulk"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormImportHistoryRepository implements ImportHistoryRepository using GORM
type GormImportHistoryRepository struct {
	db *gorm.DB
}

// NewGormImportHistoryRepository creates a new GormImportHistoryRepository
func NewGormImportHistoryRepository(db *gorm.DB) *GormImportHistoryRepository {
	return &GormImportHistoryRepository{db: db}
}

// FindByID finds an import history by ID
func (r *GormImportHistoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*bulk.ImportHistory, error) {
	var model models.ImportHistoryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns import histories with pagination and filtering
func (r *GormImportHistoryRepository) FindAll(ctx context.Context, filter bulk.ImportHistoryFilter, page, pageSize int) (*bulk.ImportHistoryListResult, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}

	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.ImportHistoryModel{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var historyModels []models.ImportHistoryModel
	if err := query.
		Order("started_at DESC NULLS LAST, created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&historyModels).Error; err != nil {
		return nil, err
	}

	items := make([]*bulk.ImportHistory, len(historyModels))
	for i := range historyModels {
		items[i] = historyModels[i].ToDomain()
	}

	return &bulk.ImportHistoryListResult{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// FindLatest returns the most recently started import for an entity type,
// or nil when none has run yet
func (r *GormImportHistoryRepository) FindLatest(ctx context.Context, entityType bulk.ImportEntityType) (*bulk.ImportHistory, error) {
	var model models.ImportHistoryModel
	err := r.db.WithContext(ctx).
		Where("entity_type = ?", entityType).
		Order("started_at DESC NULLS LAST, created_at DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save saves an import history (create or update)
func (r *GormImportHistoryRepository) Save(ctx context.Context, history *bulk.ImportHistory) error {
	model := models.ImportHistoryModelFromDomain(history)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an import history by ID
func (r *GormImportHistoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ImportHistoryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormImportHistoryRepository) applyFilter(query *gorm.DB, filter bulk.ImportHistoryFilter) *gorm.DB {
	if filter.EntityType != nil {
		query = query.Where("entity_type = ?", *filter.EntityType)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.StartedFrom != nil {
		query = query.Where("started_at >= ?", *filter.StartedFrom)
	}
	if filter.StartedTo != nil {
		query = query.Where("started_at <= ?", *filter.StartedTo)
	}
	return query
}

// Ensure GormImportHistoryRepository implements ImportHistoryRepository
var _ bulk.ImportHistoryRepository = (*GormImportHistoryRepository)(nil)
