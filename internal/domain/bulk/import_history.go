package bulk

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
)

// ImportEntityType represents the kind of CRM records being imported
type ImportEntityType string

const (
	ImportEntityContacts ImportEntityType = "contacts"
	ImportEntityPartners ImportEntityType = "partners"
)

// IsValid checks if the entity type is valid
func (e ImportEntityType) IsValid() bool {
	switch e {
	case ImportEntityContacts, ImportEntityPartners:
		return true
	}
	return false
}

// ImportStatus represents the status of an import operation
type ImportStatus string

const (
	ImportStatusPending    ImportStatus = "pending"
	ImportStatusProcessing ImportStatus = "processing"
	ImportStatusCompleted  ImportStatus = "completed"
	ImportStatusFailed     ImportStatus = "failed"
)

// IsValid checks if the status is valid
func (s ImportStatus) IsValid() bool {
	switch s {
	case ImportStatusPending, ImportStatusProcessing, ImportStatusCompleted, ImportStatusFailed:
		return true
	}
	return false
}

// IsTerminal returns true if this is a terminal state
func (s ImportStatus) IsTerminal() bool {
	return s == ImportStatusCompleted || s == ImportStatusFailed
}

// ConflictMode defines what happens when an imported record already exists
type ConflictMode string

const (
	ConflictModeSkip   ConflictMode = "skip"
	ConflictModeUpdate ConflictMode = "update"
	ConflictModeFail   ConflictMode = "fail"
)

// IsValid checks if the conflict mode is valid
func (c ConflictMode) IsValid() bool {
	switch c {
	case ConflictModeSkip, ConflictModeUpdate, ConflictModeFail:
		return true
	}
	return false
}

// ImportErrorDetail represents a detailed error for a specific record
type ImportErrorDetail struct {
	Record  int    `json:"record"`
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// ImportHistory tracks one CRM snapshot import: where the data came from,
// how many records landed, and what went wrong
type ImportHistory struct {
	shared.BaseEntity
	EntityType     ImportEntityType    `json:"entity_type"`
	SourceRef      string              `json:"source_ref"` // file name or sync batch label
	TotalRecords   int                 `json:"total_records"`
	CreatedRecords int                 `json:"created_records"`
	UpdatedRecords int                 `json:"updated_records"`
	SkippedRecords int                 `json:"skipped_records"`
	ErrorRecords   int                 `json:"error_records"`
	ConflictMode   ConflictMode        `json:"conflict_mode"`
	Status         ImportStatus        `json:"status"`
	ErrorDetails   []ImportErrorDetail `json:"error_details,omitempty"`
	StartedAt      *time.Time          `json:"started_at,omitempty"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
}

// NewImportHistory creates a new import history record
func NewImportHistory(entityType ImportEntityType, sourceRef string, conflictMode ConflictMode) (*ImportHistory, error) {
	if !entityType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ENTITY_TYPE", fmt.Sprintf("Invalid entity type: %s", entityType))
	}
	if sourceRef == "" {
		return nil, shared.NewDomainError("INVALID_SOURCE_REF", "Source reference cannot be empty")
	}
	if !conflictMode.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONFLICT_MODE", fmt.Sprintf("Invalid conflict mode: %s", conflictMode))
	}

	return &ImportHistory{
		BaseEntity:   shared.NewBaseEntity(),
		EntityType:   entityType,
		SourceRef:    sourceRef,
		ConflictMode: conflictMode,
		Status:       ImportStatusPending,
		ErrorDetails: make([]ImportErrorDetail, 0),
	}, nil
}

// StartProcessing marks the import as started
func (h *ImportHistory) StartProcessing(totalRecords int) error {
	if h.Status != ImportStatusPending {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot start processing from state: %s", h.Status))
	}
	if totalRecords < 0 {
		return shared.NewDomainError("INVALID_TOTAL_RECORDS", "Total records cannot be negative")
	}

	h.Status = ImportStatusProcessing
	h.TotalRecords = totalRecords
	now := time.Now()
	h.StartedAt = &now
	h.UpdatedAt = now

	return nil
}

// Complete marks the import as finished. An import with errors on every
// record and nothing written counts as failed.
func (h *ImportHistory) Complete(created, updated, skipped, errored int, errors []ImportErrorDetail) error {
	if h.Status != ImportStatusProcessing {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot complete from state: %s", h.Status))
	}

	status := ImportStatusCompleted
	if errored > 0 && created == 0 && updated == 0 {
		status = ImportStatusFailed
	}

	h.Status = status
	h.CreatedRecords = created
	h.UpdatedRecords = updated
	h.SkippedRecords = skipped
	h.ErrorRecords = errored
	h.ErrorDetails = errors
	now := time.Now()
	h.CompletedAt = &now
	h.UpdatedAt = now

	return nil
}

// Fail marks the import as failed before or during processing
func (h *ImportHistory) Fail(errors []ImportErrorDetail) error {
	if h.Status.IsTerminal() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot fail from terminal state: %s", h.Status))
	}

	h.Status = ImportStatusFailed
	h.ErrorDetails = errors
	now := time.Now()
	h.CompletedAt = &now
	h.UpdatedAt = now

	return nil
}

// IsCompleted returns true if the import finished with at least partial success
func (h *ImportHistory) IsCompleted() bool {
	return h.Status == ImportStatusCompleted
}

// IsFailed returns true if the import failed completely
func (h *ImportHistory) IsFailed() bool {
	return h.Status == ImportStatusFailed
}

// HasErrors returns true if any record was rejected
func (h *ImportHistory) HasErrors() bool {
	return len(h.ErrorDetails) > 0
}

// ErrorDetailsJSON returns the error details as a JSON string for storage
func (h *ImportHistory) ErrorDetailsJSON() (string, error) {
	if len(h.ErrorDetails) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(h.ErrorDetails)
	if err != nil {
		return "", fmt.Errorf("failed to marshal error details: %w", err)
	}
	return string(data), nil
}

// SetErrorDetailsFromJSON parses error details from a stored JSON string
func (h *ImportHistory) SetErrorDetailsFromJSON(jsonStr string) error {
	if jsonStr == "" || jsonStr == "[]" {
		h.ErrorDetails = make([]ImportErrorDetail, 0)
		return nil
	}
	var errors []ImportErrorDetail
	if err := json.Unmarshal([]byte(jsonStr), &errors); err != nil {
		return fmt.Errorf("failed to unmarshal error details: %w", err)
	}
	h.ErrorDetails = errors
	return nil
}

// SuccessRate returns the share of records written, as a percentage
func (h *ImportHistory) SuccessRate() float64 {
	if h.TotalRecords == 0 {
		return 0
	}
	return float64(h.CreatedRecords+h.UpdatedRecords) / float64(h.TotalRecords) * 100
}

// Duration returns how long the import ran, up to now if still running
func (h *ImportHistory) Duration() time.Duration {
	if h.StartedAt == nil {
		return 0
	}
	end := time.Now()
	if h.CompletedAt != nil {
		end = *h.CompletedAt
	}
	return end.Sub(*h.StartedAt)
}
