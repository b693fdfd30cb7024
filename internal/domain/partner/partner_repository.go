package partner

import (
	"context"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// PartnerRepository defines the persistence interface for partner organizations
type PartnerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Partner, error)
	FindByAccountID(ctx context.Context, accountID string) (*Partner, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Partner, error)
	FindActive(ctx context.Context) ([]Partner, error)
	Save(ctx context.Context, p *Partner) error
	SaveBatch(ctx context.Context, partners []*Partner) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// OrphanDismissalRepository defines the persistence interface for orphan dismissals
type OrphanDismissalRepository interface {
	FindAll(ctx context.Context) ([]OrphanDismissal, error)
	Find(ctx context.Context, lmsUserID string, partnerID uuid.UUID) (*OrphanDismissal, error)
	Save(ctx context.Context, dismissal *OrphanDismissal) error
	DeleteByUserAndPartner(ctx context.Context, lmsUserID string, partnerID uuid.UUID) error
}
