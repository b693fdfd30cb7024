package partner

import (
	"strings"
	"time"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// OrphanDismissal records an operator's decision to stop flagging an LMS user
// whose email domain matched a partner but who has no confirmed link to it.
// This is the only mutable, engine-owned derived state; it is persisted so a
// dismissal survives across analysis runs.
type OrphanDismissal struct {
	shared.BaseEntity
	LmsUserID   string
	PartnerID   uuid.UUID
	Reason      string
	DismissedAt time.Time
}

// NewOrphanDismissal creates a dismissal record for an orphaned LMS user
func NewOrphanDismissal(lmsUserID string, partnerID uuid.UUID, reason string) (*OrphanDismissal, error) {
	if lmsUserID == "" {
		return nil, shared.NewDomainError("INVALID_USER_ID", "LMS user ID cannot be empty")
	}
	if partnerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PARTNER_ID", "Partner ID cannot be empty")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, shared.NewDomainError("INVALID_REASON", "Dismissal reason cannot be empty")
	}
	if len(reason) > 500 {
		return nil, shared.NewDomainError("INVALID_REASON", "Dismissal reason cannot exceed 500 characters")
	}

	return &OrphanDismissal{
		BaseEntity:  shared.NewBaseEntity(),
		LmsUserID:   lmsUserID,
		PartnerID:   partnerID,
		Reason:      reason,
		DismissedAt: time.Now(),
	}, nil
}
