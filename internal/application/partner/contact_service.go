package partner

import (
	"context"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// ContactService handles contact-related business operations
type ContactService struct {
	contactRepo partner.ContactRepository
	store       partner.Store
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo partner.ContactRepository, store partner.Store) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		store:       store,
	}
}

// Create creates a new contact
func (s *ContactService) Create(ctx context.Context, req CreateContactRequest) (*ContactResponse, error) {
	exists, err := s.contactRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Contact with this email already exists")
	}

	contact, err := partner.NewContact(req.CRMID, req.Email, req.FirstName, req.LastName, req.AccountID, req.AccountName)
	if err != nil {
		return nil, err
	}
	if req.Tier != "" {
		contact.SetTier(req.Tier)
	}
	if req.Region != "" {
		contact.SetRegion(req.Region)
	}

	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}

	response := ToContactResponse(contact)
	return &response, nil
}

// GetByID retrieves a contact by ID
func (s *ContactService) GetByID(ctx context.Context, id uuid.UUID) (*ContactResponse, error) {
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToContactResponse(contact)
	return &response, nil
}

// List retrieves contacts with filtering and pagination
func (s *ContactService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ContactResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	contacts, err := s.contactRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.contactRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]ContactResponse, 0, len(contacts))
	for i := range contacts {
		items = append(items, ToContactResponse(&contacts[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update refreshes a contact's CRM-sourced fields
func (s *ContactService) Update(ctx context.Context, id uuid.UUID, req UpdateContactRequest) (*ContactResponse, error) {
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := contact.Update(req.Email, req.FirstName, req.LastName, req.AccountID, req.AccountName); err != nil {
		return nil, err
	}
	contact.SetTier(req.Tier)
	contact.SetRegion(req.Region)

	if err := s.contactRepo.Save(ctx, contact); err != nil {
		return nil, err
	}

	response := ToContactResponse(contact)
	return &response, nil
}

// Deactivate marks a contact as inactive in the store
func (s *ContactService) Deactivate(ctx context.Context, id uuid.UUID) error {
	contact, err := s.contactRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	contact.Deactivate()
	return s.contactRepo.Save(ctx, contact)
}

// Delete removes a contact from the store
func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.contactRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.contactRepo.Delete(ctx, id)
}

// Stats returns the contact store summary shown in the console header
func (s *ContactService) Stats(ctx context.Context) (*StatsResponse, error) {
	stats, err := s.store.GetDatabaseStats(ctx)
	if err != nil {
		return nil, err
	}
	return &StatsResponse{
		ContactCount:  stats.ContactCount,
		PartnerCount:  stats.PartnerCount,
		LastImportAt:  stats.LastImportAt,
		LastImportRef: stats.LastImportRef,
	}, nil
}
