package partner

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DatabaseStats summarizes the state of the contact store
type DatabaseStats struct {
	ContactCount  int64
	PartnerCount  int64
	LastImportAt  *time.Time
	LastImportRef string
}

// CreateContactInput carries the fields needed to create a contact,
// typically when adopting an orphaned LMS user into the CRM
type CreateContactInput struct {
	CRMID       string
	Email       string
	FirstName   string
	LastName    string
	AccountID   string
	AccountName string
	Tier        string
	Region      string
}

// Store is the contact-store collaborator consumed by the reconciliation
// engine. The reconciliation code depends on this interface only; the GORM
// implementation lives in infrastructure.
type Store interface {
	GetAllContacts(ctx context.Context) ([]Contact, error)
	GetDatabaseStats(ctx context.Context) (*DatabaseStats, error)
	CreateContact(ctx context.Context, input CreateContactInput) (*Contact, error)
	DismissOrphan(ctx context.Context, lmsUserID string, partnerID uuid.UUID, reason string) error
	RestoreOrphan(ctx context.Context, lmsUserID string, partnerID uuid.UUID) error
}
