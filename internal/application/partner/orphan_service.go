package partner

import (
	"context"
	"errors"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// OrphanService manages orphan dismissals: operator decisions to stop
// flagging a domain-matched LMS user for a given partner
type OrphanService struct {
	dismissalRepo partner.OrphanDismissalRepository
	partnerRepo   partner.PartnerRepository
}

// NewOrphanService creates a new OrphanService
func NewOrphanService(dismissalRepo partner.OrphanDismissalRepository, partnerRepo partner.PartnerRepository) *OrphanService {
	return &OrphanService{
		dismissalRepo: dismissalRepo,
		partnerRepo:   partnerRepo,
	}
}

// Dismiss records a dismissal for a user/partner pairing. Dismissing an
// already-dismissed pairing is a no-op and returns the existing record.
func (s *OrphanService) Dismiss(ctx context.Context, lmsUserID string, partnerID uuid.UUID, reason string) (*DismissalResponse, error) {
	if _, err := s.partnerRepo.FindByID(ctx, partnerID); err != nil {
		return nil, err
	}

	existing, err := s.dismissalRepo.Find(ctx, lmsUserID, partnerID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		response := ToDismissalResponse(existing)
		return &response, nil
	}

	dismissal, err := partner.NewOrphanDismissal(lmsUserID, partnerID, reason)
	if err != nil {
		return nil, err
	}
	if err := s.dismissalRepo.Save(ctx, dismissal); err != nil {
		return nil, err
	}

	response := ToDismissalResponse(dismissal)
	return &response, nil
}

// Restore removes a dismissal so the pairing shows up as an orphan again
func (s *OrphanService) Restore(ctx context.Context, lmsUserID string, partnerID uuid.UUID) error {
	if _, err := s.dismissalRepo.Find(ctx, lmsUserID, partnerID); err != nil {
		return err
	}
	return s.dismissalRepo.DeleteByUserAndPartner(ctx, lmsUserID, partnerID)
}

// List returns every recorded dismissal
func (s *OrphanService) List(ctx context.Context) ([]DismissalResponse, error) {
	dismissals, err := s.dismissalRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]DismissalResponse, 0, len(dismissals))
	for i := range dismissals {
		out = append(out, ToDismissalResponse(&dismissals[i]))
	}
	return out, nil
}
