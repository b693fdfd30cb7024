package importer

import (
	"context"
	"testing"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/bulk"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
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

// MockHistoryRepository is a mock implementation of bulk.ImportHistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*bulk.ImportHistory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bulk.ImportHistory), args.Error(1)
}

func (m *MockHistoryRepository) FindAll(ctx context.Context, filter bulk.ImportHistoryFilter, page, pageSize int) (*bulk.ImportHistoryListResult, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bulk.ImportHistoryListResult), args.Error(1)
}

func (m *MockHistoryRepository) FindLatest(ctx context.Context, entityType bulk.ImportEntityType) (*bulk.ImportHistory, error) {
	args := m.Called(ctx, entityType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bulk.ImportHistory), args.Error(1)
}

func (m *MockHistoryRepository) Save(ctx context.Context, history *bulk.ImportHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}

func (m *MockHistoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type importFixture struct {
	contacts *MockContactRepository
	partners *MockPartnerRepository
	history  *MockHistoryRepository
	svc      *ContactImportService
}

func newImportFixture() *importFixture {
	f := &importFixture{
		contacts: new(MockContactRepository),
		partners: new(MockPartnerRepository),
		history:  new(MockHistoryRepository),
	}
	f.svc = NewContactImportService(f.contacts, f.partners, f.history, zap.NewNop())
	return f
}

func TestContactImportService_ImportContacts(t *testing.T) {
	ctx := context.Background()

	t.Run("creates new contacts and partners", func(t *testing.T) {
		f := newImportFixture()
		payload := []byte(`[
			{"crm_id":"c1","email":"jane@acme.com","first_name":"Jane","last_name":"Doe","account_id":"acct-1","account_name":"Acme","tier":"Premier"}
		]`)

		f.history.On("Save", ctx, mock.Anything).Return(nil)
		f.partners.On("FindByAccountID", ctx, "acct-1").Return(nil, shared.ErrNotFound)
		f.partners.On("Save", ctx, mock.MatchedBy(func(p *partner.Partner) bool {
			return p.AccountID == "acct-1" && p.Tier == partner.PartnerTierPremier
		})).Return(nil)
		f.contacts.On("FindByCRMID", ctx, "c1").Return(nil, shared.ErrNotFound)
		f.contacts.On("Save", ctx, mock.MatchedBy(func(c *partner.Contact) bool {
			return c.CRMID == "c1" && c.Email == "jane@acme.com" && c.PartnerTier == "Premier"
		})).Return(nil)

		res, err := f.svc.ImportContacts(ctx, "contacts.json", payload, bulk.ConflictModeUpdate)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Created)
		assert.Equal(t, 0, res.Errored)
		f.contacts.AssertExpectations(t)
		f.partners.AssertExpectations(t)
	})

	t.Run("updates an existing contact", func(t *testing.T) {
		f := newImportFixture()
		existing, err := partner.NewContact("c1", "old@acme.com", "Jane", "Doe", "acct-1", "Acme")
		require.NoError(t, err)
		acme, err := partner.NewPartner("acct-1", "Acme")
		require.NoError(t, err)

		payload := []byte(`[
			{"crm_id":"c1","email":"new@acme.com","first_name":"Jane","last_name":"Doe","account_id":"acct-1","account_name":"Acme"}
		]`)

		f.history.On("Save", ctx, mock.Anything).Return(nil)
		f.partners.On("FindByAccountID", ctx, "acct-1").Return(acme, nil)
		f.contacts.On("FindByCRMID", ctx, "c1").Return(existing, nil)
		f.contacts.On("Save", ctx, mock.MatchedBy(func(c *partner.Contact) bool {
			return c.Email == "new@acme.com"
		})).Return(nil)

		res, err := f.svc.ImportContacts(ctx, "contacts.json", payload, bulk.ConflictModeUpdate)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Updated)
	})

	t.Run("skip mode leaves existing contacts alone", func(t *testing.T) {
		f := newImportFixture()
		existing, err := partner.NewContact("c1", "old@acme.com", "Jane", "Doe", "acct-1", "Acme")
		require.NoError(t, err)
		acme, err := partner.NewPartner("acct-1", "Acme")
		require.NoError(t, err)

		payload := []byte(`[
			{"crm_id":"c1","email":"new@acme.com","account_id":"acct-1","account_name":"Acme"}
		]`)

		f.history.On("Save", ctx, mock.Anything).Return(nil)
		f.partners.On("FindByAccountID", ctx, "acct-1").Return(acme, nil)
		f.contacts.On("FindByCRMID", ctx, "c1").Return(existing, nil)

		res, err := f.svc.ImportContacts(ctx, "contacts.json", payload, bulk.ConflictModeSkip)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Skipped)
		f.contacts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("invalid rows are collected, not fatal", func(t *testing.T) {
		f := newImportFixture()
		acme, err := partner.NewPartner("acct-1", "Acme")
		require.NoError(t, err)

		payload := []byte(`[
			{"crm_id":"","email":"broken","account_id":"","account_name":""},
			{"crm_id":"c2","email":"ok@acme.com","account_id":"acct-1","account_name":"Acme"}
		]`)

		f.history.On("Save", ctx, mock.Anything).Return(nil)
		f.partners.On("FindByAccountID", ctx, "acct-1").Return(acme, nil)
		f.contacts.On("FindByCRMID", ctx, "c2").Return(nil, shared.ErrNotFound)
		f.contacts.On("Save", ctx, mock.Anything).Return(nil)

		res, err := f.svc.ImportContacts(ctx, "contacts.json", payload, bulk.ConflictModeUpdate)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Created)
		assert.Equal(t, 1, res.Errored)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, 0, res.Errors[0].Record)
	})

	t.Run("unparseable payload fails the batch", func(t *testing.T) {
		f := newImportFixture()
		f.history.On("Save", ctx, mock.MatchedBy(func(h *bulk.ImportHistory) bool {
			return h.IsFailed()
		})).Return(nil)

		_, err := f.svc.ImportContacts(ctx, "contacts.json", []byte(`{not json`), bulk.ConflictModeUpdate)

		require.Error(t, err)
		f.history.AssertExpectations(t)
	})
}

func TestImportHistoryService_Latest(t *testing.T) {
	ctx := context.Background()
	repo := new(MockHistoryRepository)
	svc := NewImportHistoryService(repo)

	history, err := bulk.NewImportHistory(bulk.ImportEntityContacts, "contacts.json", bulk.ConflictModeUpdate)
	require.NoError(t, err)
	repo.On("FindLatest", ctx, bulk.ImportEntityContacts).Return(history, nil)

	latest, err := svc.Latest(ctx, bulk.ImportEntityContacts)

	require.NoError(t, err)
	assert.Equal(t, history.ID, latest.ID)
}
