package partner

import (
	"context"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockContactRepository is a mock implementation of partner.ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByCRMID(ctx context.Context, crmID string) (*partner.Contact, error) {
	args := m.Called(ctx, crmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByEmail(ctx context.Context, email string) (*partner.Contact, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Contact), args.Error(1)
}

func (m *MockContactRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Contact, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Contact), args.Error(1)
}

func (m *MockContactRepository) FindByAccountID(ctx context.Context, accountID string) ([]partner.Contact, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Contact), args.Error(1)
}

func (m *MockContactRepository) Save(ctx context.Context, contact *partner.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockPartnerRepository is a mock implementation of partner.PartnerRepository
type MockPartnerRepository struct {
	mock.Mock
}

func (m *MockPartnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindByAccountID(ctx context.Context, accountID string) (*partner.Partner, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Partner, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) FindActive(ctx context.Context) ([]partner.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) Save(ctx context.Context, p *partner.Partner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPartnerRepository) SaveBatch(ctx context.Context, partners []*partner.Partner) error {
	args := m.Called(ctx, partners)
	return args.Error(0)
}

func (m *MockPartnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPartnerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockDismissalRepository is a mock implementation of partner.OrphanDismissalRepository
type MockDismissalRepository struct {
	mock.Mock
}

func (m *MockDismissalRepository) FindAll(ctx context.Context) ([]partner.OrphanDismissal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.OrphanDismissal), args.Error(1)
}

func (m *MockDismissalRepository) Find(ctx context.Context, lmsUserID string, partnerID uuid.UUID) (*partner.OrphanDismissal, error) {
	args := m.Called(ctx, lmsUserID, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.OrphanDismissal), args.Error(1)
}

func (m *MockDismissalRepository) Save(ctx context.Context, dismissal *partner.OrphanDismissal) error {
	args := m.Called(ctx, dismissal)
	return args.Error(0)
}

func (m *MockDismissalRepository) DeleteByUserAndPartner(ctx context.Context, lmsUserID string, partnerID uuid.UUID) error {
	args := m.Called(ctx, lmsUserID, partnerID)
	return args.Error(0)
}

// MockStore is a mock implementation of partner.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetAllContacts(ctx context.Context) ([]partner.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Contact), args.Error(1)
}

func (m *MockStore) GetDatabaseStats(ctx context.Context) (*partner.DatabaseStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.DatabaseStats), args.Error(1)
}

func (m *MockStore) CreateContact(ctx context.Context, input partner.CreateContactInput) (*partner.Contact, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Contact), args.Error(1)
}

func (m *MockStore) DismissOrphan(ctx context.Context, lmsUserID string, partnerID uuid.UUID, reason string) error {
	args := m.Called(ctx, lmsUserID, partnerID, reason)
	return args.Error(0)
}

func (m *MockStore) RestoreOrphan(ctx context.Context, lmsUserID string, partnerID uuid.UUID) error {
	args := m.Called(ctx, lmsUserID, partnerID)
	return args.Error(0)
}
