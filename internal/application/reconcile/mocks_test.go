package reconcile

import (
	"context"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/lms"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLmsClient is a mock implementation of lms.Client
type MockLmsClient struct {
	mock.Mock
}

func (m *MockLmsClient) GetAllUsers(ctx context.Context) ([]lms.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]lms.User), args.Error(1)
}

func (m *MockLmsClient) GetAllGroups(ctx context.Context) ([]lms.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]lms.Group), args.Error(1)
}

func (m *MockLmsClient) CreateGroup(ctx context.Context, name, description string) (*lms.Group, error) {
	args := m.Called(ctx, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lms.Group), args.Error(1)
}

func (m *MockLmsClient) CreatePerson(ctx context.Context, input lms.CreatePersonInput) (*lms.CreatePersonResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lms.CreatePersonResult), args.Error(1)
}

func (m *MockLmsClient) AddUserToGroup(ctx context.Context, groupID, userID string) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *MockLmsClient) RemoveUserFromGroup(ctx context.Context, groupID, userID string) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *MockLmsClient) UpdateGroupName(ctx context.Context, groupID, newName string) error {
	args := m.Called(ctx, groupID, newName)
	return args.Error(0)
}

func (m *MockLmsClient) DeactivateUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
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

// MockSnapshotCache is a mock implementation of lms.SnapshotCache
type MockSnapshotCache struct {
	mock.Mock
}

func (m *MockSnapshotCache) Get(ctx context.Context) (*lms.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lms.Snapshot), args.Error(1)
}

func (m *MockSnapshotCache) Put(ctx context.Context, snapshot *lms.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
