package partner

import (
	"context"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// ContactRepository defines the persistence interface for contacts
type ContactRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Contact, error)
	FindByCRMID(ctx context.Context, crmID string) (*Contact, error)
	FindByEmail(ctx context.Context, email string) (*Contact, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Contact, error)
	FindByAccountID(ctx context.Context, accountID string) ([]Contact, error)
	Save(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
