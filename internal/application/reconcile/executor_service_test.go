package reconcile

import (
	"context"
	"testing"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/lms"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/reconcile"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/pacing"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
)

// recordSpans installs an in-memory tracer provider for span assertions and
// restores the previous global provider on cleanup.
func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	return sr
}

func spanAttr(t *testing.T, span sdktrace.ReadOnlySpan, key string) attribute.Value {
	t.Helper()
	for _, a := range span.Attributes() {
		if string(a.Key) == key {
			return a.Value
		}
	}
	t.Fatalf("attribute %q not found on span %s", key, span.Name())
	return attribute.Value{}
}

func newTestExecutor(client lms.Client, store partner.Store, repo partner.PartnerRepository) *ExecutorService {
	return NewExecutorService(client, store, repo, pacing.Nop{}, zap.NewNop())
}

func onboardingPlan(t *testing.T, email, accountName string, groups ...lms.Group) []reconcile.UserPlan {
	t.Helper()
	c, err := partner.NewContact("crm-"+email, email, "Test", "User", "acct-1", accountName)
	require.NoError(t, err)

	idx := reconcile.BuildIndices(nil, groups, reconcile.DomainExtraction{})
	plans, err := reconcile.PlanOnboarding([]partner.Contact{*c}, idx)
	require.NoError(t, err)
	return plans
}

func TestExecutorService_OnboardUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and adds to partner group", func(t *testing.T) {
		client := new(MockLmsClient)
		exec := newTestExecutor(client, new(MockStore), new(MockPartnerRepository))
		plans := onboardingPlan(t, "a@acme.com", "Acme", lms.Group{ID: "g1", Name: "ptr_Acme"})

		client.On("CreatePerson", mock.Anything, lms.CreatePersonInput{
			Email: "a@acme.com", FirstName: "Test", LastName: "User",
		}).Return(&lms.CreatePersonResult{UserID: "u1"}, nil)
		client.On("AddUserToGroup", mock.Anything, "g1", "u1").Return(nil)

		res, err := exec.OnboardUsers(ctx, plans, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Created)
		assert.Equal(t, 1, res.AddedToGroup)
		assert.Equal(t, 0, res.Failed)
		assert.Empty(t, res.Errors)
		client.AssertExpectations(t)
	})

	t.Run("adds to the global group after the partner group", func(t *testing.T) {
		client := new(MockLmsClient)
		exec := newTestExecutor(client, new(MockStore), new(MockPartnerRepository))
		plans := onboardingPlan(t, "a@acme.com", "Acme",
			lms.Group{ID: "g1", Name: "ptr_Acme"},
			lms.Group{ID: "global", Name: "All Partners"})

		calls := make([]string, 0, 3)
		client.On("CreatePerson", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
			calls = append(calls, "create")
		}).Return(&lms.CreatePersonResult{UserID: "u1"}, nil)
		client.On("AddUserToGroup", mock.Anything, "g1", "u1").Run(func(mock.Arguments) {
			calls = append(calls, "partner")
		}).Return(nil)
		client.On("AddUserToGroup", mock.Anything, "global", "u1").Run(func(mock.Arguments) {
			calls = append(calls, "global")
		}).Return(nil)

		res, err := exec.OnboardUsers(ctx, plans, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, res.AddedToGroup)
		assert.Equal(t, 1, res.AddedToGlobalGroup)
		assert.Equal(t, []string{"create", "partner", "global"}, calls)
	})

	t.Run("one failed create does not block the rest", func(t *testing.T) {
		client := new(MockLmsClient)
		exec := newTestExecutor(client, new(MockStore), new(MockPartnerRepository))
		group := lms.Group{ID: "g1", Name: "ptr_Acme"}
		plans := append(onboardingPlan(t, "a@acme.com", "Acme", group),
			append(onboardingPlan(t, "b@acme.com", "Acme", group),
				onboardingPlan(t, "c@acme.com", "Acme", group)...)...)

		client.On("CreatePerson", mock.Anything, mock.MatchedBy(func(in lms.CreatePersonInput) bool {
			return in.Email == "b@acme.com"
		})).Return(nil, lms.ErrRequestFailed)
		client.On("CreatePerson", mock.Anything, mock.Anything).Return(&lms.CreatePersonResult{UserID: "u-ok"}, nil)
		client.On("AddUserToGroup", mock.Anything, "g1", "u-ok").Return(nil)

		res, err := exec.OnboardUsers(ctx, plans, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, res.Created)
		assert.Equal(t, 1, res.Failed)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "b@acme.com", res.Errors[0].Entity)
	})

	t.Run("failed create skips every group step for that user", func(t *testing.T) {
		client := new(MockLmsClient)
		exec := newTestExecutor(client, new(MockStore), new(MockPartnerRepository))
		plans := onboardingPlan(t, "a@acme.com", "Acme",
			lms.Group{ID: "g1", Name: "ptr_Acme"},
			lms.Group{ID: "global", Name: "All Partners"})

		client.On("CreatePerson", mock.Anything, mock.Anything).Return(nil, lms.ErrRequestFailed)

		res, err := exec.OnboardUsers(ctx, plans, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Failed)
		assert.Equal(t, 0, res.AddedToGroup)
		assert.Equal(t, 0, res.AddedToGlobalGroup)
		client.AssertNotCalled(t, "AddUserToGroup", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("partner group failure still attempts the global group", func(t *testing.T) {
		client := new(MockLmsClient)
		exec := newTestExecutor(client, new(MockStore), new(MockPartnerRepository))
		plans := onboardingPlan(t, "a@acme.com", "Acme",
			lms.Group{ID: "g1", Name: "ptr_Acme"},
			lms.Group{ID: "global", Name: "All Partners"})

		client.On("CreatePerson", mock.Anything, mock.Anything).Return(&lms.CreatePersonResult{UserID: "u1"}, nil)
		client.On("AddUserToGroup", mock.Anything, "g1", "u1").Return(lms.ErrRequestFailed)
		client.On("AddUserToGroup", mock.Anything, "global", "u1").Return(nil)

		res, err := exec.OnboardUsers(ctx, plans, nil)

		require.NoError(t, err)
		assert.Equal(t, 0, res.AddedToGroup)
		assert.Equal(t, 1, res.AddedToGlobalGroup)
		assert.Equal(t, 0, res.Failed)
		require.Len(t, res.Errors, 1)
	})

	t.Run("existing user counts as already existed", func(t *testing.T) {
		client := new(MockLmsClient)
		exec := newTestExecutor(client, new(MockStore), new(MockPartnerRepository))
		plans := onboardingPlan(t, "a@acme.com", "Acme", lms.Group{ID: "g1", Name: "ptr_Acme"})

		client.On("CreatePerson", mock.Anything, mock.Anything).Return(&lms.CreatePersonResult{UserID: "u1", AlreadyExists: true}, nil)
		client.On("AddUserToGroup", mock.Anything, "g1", "u1").Return(lms.ErrAlreadyMember)

		res, err := exec.OnboardUsers(ctx, plans, nil)

		require.NoError(t, err)
		assert.Equal(t, 0, res.Created)
		assert.Equal(t, 1, res.AlreadyExisted)
		assert.Equal(t, 1, res.AddedToGroup)
	})

	t.Run("reports progress per user", func(t *testing.T) {
		client := new(MockLmsClient)
		exec := newTestExecutor(client, new(MockStore), new(MockPartnerRepository))
		plans := onboardingPlan(t, "a@acme.com", "Acme", lms.Group{ID: "g1", Name: "ptr_Acme"})

		client.On("CreatePerson", mock.Anything, mock.Anything).Return(&lms.CreatePersonResult{UserID: "u1"}, nil)
		client.On("AddUserToGroup", mock.Anything, "g1", "u1").Return(nil)

		var seen []string
		_, err := exec.OnboardUsers(ctx, plans, func(done, total int, entity string) {
			seen = append(seen, entity)
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"a@acme.com", ""}, seen)
	})

	t.Run("cancellation returns the partial result", func(t *testing.T) {
		client := new(MockLmsClient)
		exec := newTestExecutor(client, new(MockStore), new(MockPartnerRepository))
		group := lms.Group{ID: "g1", Name: "ptr_Acme"}
		plans := append(onboardingPlan(t, "a@acme.com", "Acme", group),
			onboardingPlan(t, "b@acme.com", "Acme", group)...)

		ctx, cancel := context.WithCancel(context.Background())
		client.On("CreatePerson", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { cancel() }).
			Return(&lms.CreatePersonResult{UserID: "u1"}, nil).Once()

		res, err := exec.OnboardUsers(ctx, plans, nil)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, res.Created)
		client.AssertNumberOfCalls(t, "CreatePerson", 1)
	})
}

func TestExecutorService_AddUsersToGroup(t *testing.T) {
	ctx := context.Background()
	actions := []reconcile.Action{
		{Kind: reconcile.ActionAddToGroup, UserID: "u1", Email: "a@acme.com", GroupID: "g1"},
		{Kind: reconcile.ActionAddToGroup, UserID: "u2", Email: "b@acme.com", GroupID: "g1"},
		{Kind: reconcile.ActionAddToGroup, UserID: "u3", Email: "c@acme.com", GroupID: "g1"},
	}

	client := new(MockLmsClient)
	exec := newTestExecutor(client, new(MockStore), new(MockPartnerRepository))

	client.On("AddUserToGroup", mock.Anything, "g1", "u1").Return(nil)
	client.On("AddUserToGroup", mock.Anything, "g1", "u2").Return(lms.ErrAlreadyMember)
	client.On("AddUserToGroup", mock.Anything, "g1", "u3").Return(lms.ErrRequestFailed)

	res, err := exec.AddUsersToGroup(ctx, actions, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Success)
	assert.Equal(t, 1, res.AlreadyMember)
	assert.Equal(t, 1, res.Failed)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "c@acme.com", res.Errors[0].Entity)
}

func TestExecutorService_RemoveUsersFromGroup(t *testing.T) {
	ctx := context.Background()
	actions := []reconcile.Action{
		{Kind: reconcile.ActionRemoveFromGroup, UserID: "u1", Email: "a@acme.com", GroupID: "global"},
		{Kind: reconcile.ActionRemoveFromGroup, UserID: "u2", Email: "b@acme.com", GroupID: "global"},
	}

	client := new(MockLmsClient)
	exec := newTestExecutor(client, new(MockStore), new(MockPartnerRepository))

	client.On("RemoveUserFromGroup", mock.Anything, "global", "u1").Return(nil)
	client.On("RemoveUserFromGroup", mock.Anything, "global", "u2").Return(lms.ErrUserNotFound)

	res, err := exec.RemoveUsersFromGroup(ctx, actions, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Removed)
	assert.Equal(t, 1, res.Failed)
}

func TestExecutorService_DeactivateUsers(t *testing.T) {
	ctx := context.Background()
	actions := []reconcile.Action{
		{Kind: reconcile.ActionDeactivateUser, UserID: "u1", Email: "a@acme.com"},
	}

	client := new(MockLmsClient)
	exec := newTestExecutor(client, new(MockStore), new(MockPartnerRepository))
	client.On("DeactivateUser", mock.Anything, "u1").Return(nil)

	res, err := exec.DeactivateUsers(ctx, actions, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Deactivated)
	assert.Equal(t, 0, res.Failed)
}

func TestExecutorService_AdoptOrphans(t *testing.T) {
	ctx := context.Background()
	acme, err := partner.NewPartner("acct-1", "Acme")
	require.NoError(t, err)
	u := lms.User{ID: "u1", Email: "stray@acme.com", FirstName: "Sam", LastName: "Stray"}
	orphans := []reconcile.OrphanRecord{{User: &u, PartnerID: acme.ID, PartnerName: "Acme", Domain: "acme.com"}}

	t.Run("creates a contact for the orphan's partner", func(t *testing.T) {
		client := new(MockLmsClient)
		store := new(MockStore)
		repo := new(MockPartnerRepository)
		exec := newTestExecutor(client, store, repo)

		repo.On("FindByID", mock.Anything, acme.ID).Return(acme, nil)
		store.On("CreateContact", mock.Anything, mock.MatchedBy(func(in partner.CreateContactInput) bool {
			return in.Email == "stray@acme.com" && in.AccountID == "acct-1" && in.AccountName == "Acme"
		})).Return(&partner.Contact{}, nil)

		res, err := exec.AdoptOrphans(ctx, orphans, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Created)
		store.AssertExpectations(t)
	})

	t.Run("existing contact counts as already existed", func(t *testing.T) {
		client := new(MockLmsClient)
		store := new(MockStore)
		repo := new(MockPartnerRepository)
		exec := newTestExecutor(client, store, repo)

		repo.On("FindByID", mock.Anything, acme.ID).Return(acme, nil)
		store.On("CreateContact", mock.Anything, mock.Anything).Return(nil, shared.ErrAlreadyExists)

		res, err := exec.AdoptOrphans(ctx, orphans, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, res.AlreadyExisted)
		assert.Equal(t, 0, res.Failed)
	})

	t.Run("unknown partner is a per-item failure", func(t *testing.T) {
		client := new(MockLmsClient)
		store := new(MockStore)
		repo := new(MockPartnerRepository)
		exec := newTestExecutor(client, store, repo)

		repo.On("FindByID", mock.Anything, acme.ID).Return(nil, shared.ErrNotFound)

		res, err := exec.AdoptOrphans(ctx, orphans, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, res.Failed)
		store.AssertNotCalled(t, "CreateContact", mock.Anything, mock.Anything)
	})
}

func TestExecutorService_CreatePartnerGroups(t *testing.T) {
	ctx := context.Background()
	client := new(MockLmsClient)
	exec := newTestExecutor(client, new(MockStore), new(MockPartnerRepository))

	client.On("CreateGroup", mock.Anything, "ptr_Acme", "").Return(&lms.Group{ID: "g1", Name: "ptr_Acme"}, nil)
	client.On("CreateGroup", mock.Anything, "ptr_Beta Corp", "").Return(nil, lms.ErrGroupExists)

	res, err := exec.CreatePartnerGroups(ctx, []string{"ptr_Acme", "ptr_Beta Corp"}, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 1, res.AlreadyExisted)
}

func TestExecutorService_SingleRunAtATime(t *testing.T) {
	client := new(MockLmsClient)
	exec := newTestExecutor(client, new(MockStore), new(MockPartnerRepository))

	started := make(chan struct{})
	release := make(chan struct{})
	client.On("DeactivateUser", mock.Anything, "u1").Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(nil)

	go func() {
		_, _ = exec.DeactivateUsers(context.Background(), []reconcile.Action{
			{Kind: reconcile.ActionDeactivateUser, UserID: "u1"},
		}, nil)
	}()

	<-started
	_, err := exec.AddUsersToGroup(context.Background(), nil, nil)
	assert.ErrorIs(t, err, shared.ErrRunInProgress)
	close(release)
}

func TestExecutorService_OnboardUsers_EmitsSpan(t *testing.T) {
	sr := recordSpans(t)
	client := new(MockLmsClient)
	exec := newTestExecutor(client, new(MockStore), new(MockPartnerRepository))
	plans := onboardingPlan(t, "a@acme.com", "Acme", lms.Group{ID: "g1", Name: "ptr_Acme"})

	client.On("CreatePerson", mock.Anything, mock.Anything).Return(&lms.CreatePersonResult{UserID: "u1"}, nil)
	client.On("AddUserToGroup", mock.Anything, "g1", "u1").Return(nil)

	_, err := exec.OnboardUsers(context.Background(), plans, nil)
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "sync.onboard", span.Name())
	assert.Equal(t, int64(1), spanAttr(t, span, telemetry.SpanAttrPlannedCount).AsInt64())
	assert.Equal(t, int64(1), spanAttr(t, span, telemetry.SpanAttrCreatedCount).AsInt64())
	assert.Equal(t, int64(0), spanAttr(t, span, telemetry.SpanAttrFailedCount).AsInt64())
}
