package partner

import (
	"context"
	"errors"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/google/uuid"
)

// PartnerService handles partner-organization business operations
type PartnerService struct {
	partnerRepo partner.PartnerRepository
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(partnerRepo partner.PartnerRepository) *PartnerService {
	return &PartnerService{partnerRepo: partnerRepo}
}

// Create creates a new partner organization
func (s *PartnerService) Create(ctx context.Context, req CreatePartnerRequest) (*PartnerResponse, error) {
	existing, err := s.partnerRepo.FindByAccountID(ctx, req.AccountID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Partner with this account ID already exists")
	}

	p, err := partner.NewPartner(req.AccountID, req.AccountName)
	if err != nil {
		return nil, err
	}
	if req.Tier != "" {
		if err := p.SetTier(partner.PartnerTier(req.Tier)); err != nil {
			return nil, err
		}
	}
	if req.Region != "" {
		p.SetRegion(req.Region)
	}

	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPartnerResponse(p)
	return &response, nil
}

// GetByID retrieves a partner by ID
func (s *PartnerService) GetByID(ctx context.Context, id uuid.UUID) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPartnerResponse(p)
	return &response, nil
}

// List retrieves partners with filtering and pagination
func (s *PartnerService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[PartnerResponse], error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 50
	}

	partners, err := s.partnerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.partnerRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]PartnerResponse, 0, len(partners))
	for i := range partners {
		items = append(items, ToPartnerResponse(&partners[i]))
	}

	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

// Update changes a partner's tier, region or active flag
func (s *PartnerService) Update(ctx context.Context, id uuid.UUID, req UpdatePartnerRequest) (*PartnerResponse, error) {
	p, err := s.partnerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Tier != "" {
		if err := p.SetTier(partner.PartnerTier(req.Tier)); err != nil {
			return nil, err
		}
	}
	if req.Region != "" {
		p.SetRegion(req.Region)
	}
	if req.Active != nil {
		if *req.Active {
			p.Activate()
		} else {
			p.Deactivate()
		}
	}

	if err := s.partnerRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPartnerResponse(p)
	return &response, nil
}
