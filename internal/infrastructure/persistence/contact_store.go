package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/bulk"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormContactStore implements partner.Store on top of the GORM repositories.
// It is the single persistence facade the reconciliation engine talks to.
type GormContactStore struct {
	contactRepo   partner.ContactRepository
	partnerRepo   partner.PartnerRepository
	dismissalRepo partner.OrphanDismissalRepository
	historyRepo   bulk.ImportHistoryRepository
}

// NewGormContactStore creates a new GormContactStore
func NewGormContactStore(db *gorm.DB) *GormContactStore {
	return &GormContactStore{
		contactRepo:   NewGormContactRepository(db),
		partnerRepo:   NewGormPartnerRepository(db),
		dismissalRepo: NewGormOrphanDismissalRepository(db),
		historyRepo:   NewGormImportHistoryRepository(db),
	}
}

// GetAllContacts returns every contact in the store
func (s *GormContactStore) GetAllContacts(ctx context.Context) ([]partner.Contact, error) {
	return s.contactRepo.FindAll(ctx, shared.Filter{})
}

// GetDatabaseStats summarizes the state of the contact store
func (s *GormContactStore) GetDatabaseStats(ctx context.Context) (*partner.DatabaseStats, error) {
	contactCount, err := s.contactRepo.Count(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}
	partnerCount, err := s.partnerRepo.Count(ctx, shared.Filter{})
	if err != nil {
		return nil, err
	}

	stats := &partner.DatabaseStats{
		ContactCount: contactCount,
		PartnerCount: partnerCount,
	}

	latest, err := s.historyRepo.FindLatest(ctx, bulk.ImportEntityContacts)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		stats.LastImportAt = latest.StartedAt
		stats.LastImportRef = latest.SourceRef
	}

	return stats, nil
}

// CreateContact creates a contact, typically when an operator adopts an
// orphaned LMS user. When the CRM has not assigned an ID yet, a synthetic one
// is generated so the record still satisfies the CRM ID uniqueness key.
func (s *GormContactStore) CreateContact(ctx context.Context, input partner.CreateContactInput) (*partner.Contact, error) {
	exists, err := s.contactRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.ErrAlreadyExists
	}

	crmID := strings.TrimSpace(input.CRMID)
	if crmID == "" {
		crmID = fmt.Sprintf("adopted-%s", uuid.New().String())
	}

	contact, err := partner.NewContact(crmID, input.Email, input.FirstName, input.LastName, input.AccountID, input.AccountName)
	if err != nil {
		return nil, err
	}
	if input.Tier != "" {
		contact.SetTier(input.Tier)
	}
	if input.Region != "" {
		contact.SetRegion(input.Region)
	}

	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// DismissOrphan records an orphan dismissal. Dismissing an already dismissed
// pair is a no-op.
func (s *GormContactStore) DismissOrphan(ctx context.Context, lmsUserID string, partnerID uuid.UUID, reason string) error {
	_, err := s.dismissalRepo.Find(ctx, lmsUserID, partnerID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	dismissal, err := partner.NewOrphanDismissal(lmsUserID, partnerID, reason)
	if err != nil {
		return err
	}
	return s.dismissalRepo.Save(ctx, dismissal)
}

// RestoreOrphan removes a dismissal so the pair is flagged again
func (s *GormContactStore) RestoreOrphan(ctx context.Context, lmsUserID string, partnerID uuid.UUID) error {
	return s.dismissalRepo.DeleteByUserAndPartner(ctx, lmsUserID, partnerID)
}

// Ensure GormContactStore implements the Store interface
var _ partner.Store = (*GormContactStore)(nil)
