package models

import (
	"time"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/bulk"
)

// ImportHistoryModel is the persistence model for the ImportHistory domain entity.
type ImportHistoryModel struct {
	BaseModel
	EntityType     bulk.ImportEntityType `gorm:"type:varchar(20);not null;index"`
	SourceRef      string                `gorm:"type:varchar(255);not null"`
	TotalRecords   int                   `gorm:"not null;default:0"`
	CreatedRecords int                   `gorm:"not null;default:0"`
	UpdatedRecords int                   `gorm:"not null;default:0"`
	SkippedRecords int                   `gorm:"not null;default:0"`
	ErrorRecords   int                   `gorm:"not null;default:0"`
	ConflictMode   bulk.ConflictMode     `gorm:"type:varchar(20);not null;default:'skip'"`
	Status         bulk.ImportStatus     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ErrorDetails   string                `gorm:"type:jsonb;default:'[]'"`
	StartedAt      *time.Time            `gorm:"type:timestamptz"`
	CompletedAt    *time.Time            `gorm:"type:timestamptz"`
}

// TableName returns the table name for GORM
func (ImportHistoryModel) TableName() string {
	return "import_histories"
}

// ToDomain converts the persistence model to a domain ImportHistory entity.
func (m *ImportHistoryModel) ToDomain() *bulk.ImportHistory {
	history := &bulk.ImportHistory{
		BaseEntity:     m.BaseModel.ToDomain(),
		EntityType:     m.EntityType,
		SourceRef:      m.SourceRef,
		TotalRecords:   m.TotalRecords,
		CreatedRecords: m.CreatedRecords,
		UpdatedRecords: m.UpdatedRecords,
		SkippedRecords: m.SkippedRecords,
		ErrorRecords:   m.ErrorRecords,
		ConflictMode:   m.ConflictMode,
		Status:         m.Status,
		StartedAt:      m.StartedAt,
		CompletedAt:    m.CompletedAt,
	}

	if m.ErrorDetails != "" {
		_ = history.SetErrorDetailsFromJSON(m.ErrorDetails)
	}

	return history
}

// FromDomain populates the persistence model from a domain ImportHistory entity.
func (m *ImportHistoryModel) FromDomain(h *bulk.ImportHistory) {
	m.FromDomainBaseEntity(h.BaseEntity)
	m.EntityType = h.EntityType
	m.SourceRef = h.SourceRef
	m.TotalRecords = h.TotalRecords
	m.CreatedRecords = h.CreatedRecords
	m.UpdatedRecords = h.UpdatedRecords
	m.SkippedRecords = h.SkippedRecords
	m.ErrorRecords = h.ErrorRecords
	m.ConflictMode = h.ConflictMode
	m.Status = h.Status
	m.StartedAt = h.StartedAt
	m.CompletedAt = h.CompletedAt

	if errorJSON, err := h.ErrorDetailsJSON(); err == nil {
		m.ErrorDetails = errorJSON
	} else {
		m.ErrorDetails = "[]"
	}
}

// ImportHistoryModelFromDomain creates a new persistence model from a domain ImportHistory entity.
func ImportHistoryModelFromDomain(h *bulk.ImportHistory) *ImportHistoryModel {
	m := &ImportHistoryModel{}
	m.FromDomain(h)
	return m
}
