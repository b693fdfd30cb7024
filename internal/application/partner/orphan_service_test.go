package partner

import (
	"context"
	"testing"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrphanService_Dismiss(t *testing.T) {
	ctx := context.Background()
	acme, err := partner.NewPartner("acct-1", "Acme")
	require.NoError(t, err)

	t.Run("records a new dismissal", func(t *testing.T) {
		dismissals := new(MockDismissalRepository)
		partners := new(MockPartnerRepository)
		svc := NewOrphanService(dismissals, partners)

		partners.On("FindByID", ctx, acme.ID).Return(acme, nil)
		dismissals.On("Find", ctx, "u1", acme.ID).Return(nil, shared.ErrNotFound)
		dismissals.On("Save", ctx, mock.MatchedBy(func(d *partner.OrphanDismissal) bool {
			return d.LmsUserID == "u1" && d.PartnerID == acme.ID
		})).Return(nil)

		resp, err := svc.Dismiss(ctx, "u1", acme.ID, "contractor account")

		require.NoError(t, err)
		assert.Equal(t, "u1", resp.LmsUserID)
		dismissals.AssertExpectations(t)
	})

	t.Run("dismissing twice is idempotent", func(t *testing.T) {
		dismissals := new(MockDismissalRepository)
		partners := new(MockPartnerRepository)
		svc := NewOrphanService(dismissals, partners)

		existing, err := partner.NewOrphanDismissal("u1", acme.ID, "contractor account")
		require.NoError(t, err)

		partners.On("FindByID", ctx, acme.ID).Return(acme, nil)
		dismissals.On("Find", ctx, "u1", acme.ID).Return(existing, nil)

		resp, err := svc.Dismiss(ctx, "u1", acme.ID, "another reason")

		require.NoError(t, err)
		assert.Equal(t, "contractor account", resp.Reason)
		dismissals.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("unknown partner is rejected", func(t *testing.T) {
		dismissals := new(MockDismissalRepository)
		partners := new(MockPartnerRepository)
		svc := NewOrphanService(dismissals, partners)

		partners.On("FindByID", ctx, acme.ID).Return(nil, shared.ErrNotFound)

		_, err := svc.Dismiss(ctx, "u1", acme.ID, "contractor account")

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestOrphanService_Restore(t *testing.T) {
	ctx := context.Background()
	acme, err := partner.NewPartner("acct-1", "Acme")
	require.NoError(t, err)

	t.Run("deletes an existing dismissal", func(t *testing.T) {
		dismissals := new(MockDismissalRepository)
		svc := NewOrphanService(dismissals, new(MockPartnerRepository))

		existing, err := partner.NewOrphanDismissal("u1", acme.ID, "contractor account")
		require.NoError(t, err)

		dismissals.On("Find", ctx, "u1", acme.ID).Return(existing, nil)
		dismissals.On("DeleteByUserAndPartner", ctx, "u1", acme.ID).Return(nil)

		require.NoError(t, svc.Restore(ctx, "u1", acme.ID))
		dismissals.AssertExpectations(t)
	})

	t.Run("missing dismissal is not found", func(t *testing.T) {
		dismissals := new(MockDismissalRepository)
		svc := NewOrphanService(dismissals, new(MockPartnerRepository))

		dismissals.On("Find", ctx, "u1", acme.ID).Return(nil, shared.ErrNotFound)

		assert.ErrorIs(t, svc.Restore(ctx, "u1", acme.ID), shared.ErrNotFound)
	})
}

func TestPartnerService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		partners := new(MockPartnerRepository)
		svc := NewPartnerService(partners)

		partners.On("FindByAccountID", ctx, "acct-1").Return(nil, shared.ErrNotFound)
		partners.On("Save", ctx, mock.MatchedBy(func(p *partner.Partner) bool {
			return p.AccountID == "acct-1" && p.Tier == partner.PartnerTierPremier
		})).Return(nil)

		resp, err := svc.Create(ctx, CreatePartnerRequest{
			AccountID:   "acct-1",
			AccountName: "Acme",
			Tier:        "premier",
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme", resp.AccountName)
		assert.Equal(t, "premier", resp.Tier)
	})

	t.Run("duplicate account", func(t *testing.T) {
		partners := new(MockPartnerRepository)
		svc := NewPartnerService(partners)

		acme, err := partner.NewPartner("acct-1", "Acme")
		require.NoError(t, err)
		partners.On("FindByAccountID", ctx, "acct-1").Return(acme, nil)

		_, err = svc.Create(ctx, CreatePartnerRequest{AccountID: "acct-1", AccountName: "Acme"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("invalid tier", func(t *testing.T) {
		partners := new(MockPartnerRepository)
		svc := NewPartnerService(partners)

		partners.On("FindByAccountID", ctx, "acct-1").Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, CreatePartnerRequest{
			AccountID:   "acct-1",
			AccountName: "Acme",
			Tier:        "platinum",
		})

		require.Error(t, err)
	})
}
