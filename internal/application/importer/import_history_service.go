package importer

import (
	"context"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/bulk"
	"github.com/google/uuid"
)

// ImportHistoryService exposes past sync batches to the console
type ImportHistoryService struct {
	historyRepo bulk.ImportHistoryRepository
}

// NewImportHistoryService creates a new ImportHistoryService
func NewImportHistoryService(historyRepo bulk.ImportHistoryRepository) *ImportHistoryService {
	return &ImportHistoryService{historyRepo: historyRepo}
}

// GetByID retrieves one import history record
func (s *ImportHistoryService) GetByID(ctx context.Context, id uuid.UUID) (*bulk.ImportHistory, error) {
	return s.historyRepo.FindByID(ctx, id)
}

// List retrieves import histories with pagination and filtering
func (s *ImportHistoryService) List(ctx context.Context, filter bulk.ImportHistoryFilter, page, pageSize int) (*bulk.ImportHistoryListResult, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return s.historyRepo.FindAll(ctx, filter, page, pageSize)
}

// Latest returns the most recent import for an entity type, or nil when no
// sync has run yet
func (s *ImportHistoryService) Latest(ctx context.Context, entityType bulk.ImportEntityType) (*bulk.ImportHistory, error) {
	return s.historyRepo.FindLatest(ctx, entityType)
}
