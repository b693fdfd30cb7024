package reconcile

import (
	"context"
	"errors"
	"sync"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/lms"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/reconcile"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/pacing"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ExecutorService applies planned reconciliation actions against the LMS and
// the contact store. Exactly one run may be in flight at a time; a second
// call fails fast with ErrRunInProgress instead of queueing.
//
// Every flow processes its items sequentially, paced by the injected Pacer,
// and records per-item failures in the returned result rather than aborting:
// one bad record must not block the rest of the batch. Cancellation is
// honored between items; the partial result accumulated so far is returned
// alongside the context error.
type ExecutorService struct {
	client      lms.Client
	store       partner.Store
	partnerRepo partner.PartnerRepository
	pacer       pacing.Pacer
	logger      *zap.Logger

	runMu sync.Mutex
}

// NewExecutorService creates a new ExecutorService
func NewExecutorService(
	client lms.Client,
	store partner.Store,
	partnerRepo partner.PartnerRepository,
	pacer pacing.Pacer,
	logger *zap.Logger,
) *ExecutorService {
	return &ExecutorService{
		client:      client,
		store:       store,
		partnerRepo: partnerRepo,
		pacer:       pacer,
		logger:      logger,
	}
}

// OnboardUsers executes onboarding plans: create each user, then add it to
// its partner group, then to the global group. A failed create is terminal
// for that user and skips both group steps; a failed group add is logged and
// recorded but does not stop the remaining steps for that user.
func (s *ExecutorService) OnboardUsers(ctx context.Context, plans []reconcile.UserPlan, progress ProgressFunc) (*OnboardResult, error) {
	if !s.runMu.TryLock() {
		return nil, shared.ErrRunInProgress
	}
	defer s.runMu.Unlock()

	ctx, span := telemetry.StartServiceSpan(ctx, "sync", "onboard",
		telemetry.WithAttribute(telemetry.SpanAttrPlannedCount, len(plans)))
	defer span.End()

	res := &OnboardResult{}
	total := len(plans)
	for i, plan := range plans {
		report(progress, i, total, plan.Contact.Email)

		if err := s.pacer.Wait(ctx); err != nil {
			telemetry.RecordError(span, err)
			return res, err
		}
		created, err := s.client.CreatePerson(ctx, lms.CreatePersonInput{
			Email:     plan.Contact.Email,
			FirstName: plan.Contact.FirstName,
			LastName:  plan.Contact.LastName,
		})
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, ActionError{Entity: plan.Contact.Email, Error: err.Error()})
			s.logger.Warn("user create failed",
				zap.String("email", plan.Contact.Email),
				zap.Error(err))
			continue
		}
		if created.AlreadyExists {
			res.AlreadyExisted++
		} else {
			res.Created++
		}

		if plan.PartnerGroupAdd != nil {
			if s.addToGroup(ctx, res, plan.Contact.Email, plan.PartnerGroupAdd.GroupID, created.UserID) {
				res.AddedToGroup++
			}
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
		if plan.GlobalGroupAdd != nil {
			if s.addToGroup(ctx, res, plan.Contact.Email, plan.GlobalGroupAdd.GroupID, created.UserID) {
				res.AddedToGlobalGroup++
			}
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCreatedCount, res.Created,
		telemetry.SpanAttrFailedCount, res.Failed,
	)
	report(progress, total, total, "")
	return res, nil
}

// addToGroup performs one membership add within an onboarding plan. Returns
// true when the user ended up in the group, counting an existing membership
// as success.
func (s *ExecutorService) addToGroup(ctx context.Context, res *OnboardResult, email, groupID, userID string) bool {
	if err := s.pacer.Wait(ctx); err != nil {
		return false
	}
	err := s.client.AddUserToGroup(ctx, groupID, userID)
	if errors.Is(err, lms.ErrAlreadyMember) {
		return true
	}
	if err != nil {
		res.Errors = append(res.Errors, ActionError{Entity: email, Error: err.Error()})
		s.logger.Warn("group add failed",
			zap.String("email", email),
			zap.String("group_id", groupID),
			zap.Error(err))
		return false
	}
	return true
}

// AddUsersToGroup executes a membership-only batch
func (s *ExecutorService) AddUsersToGroup(ctx context.Context, actions []reconcile.Action, progress ProgressFunc) (*GroupAddResult, error) {
	if !s.runMu.TryLock() {
		return nil, shared.ErrRunInProgress
	}
	defer s.runMu.Unlock()

	ctx, span := telemetry.StartServiceSpan(ctx, "sync", "group_adds",
		telemetry.WithAttribute(telemetry.SpanAttrPlannedCount, len(actions)))
	defer span.End()

	res := &GroupAddResult{}
	total := len(actions)
	for i, a := range actions {
		report(progress, i, total, a.Email)

		if err := s.pacer.Wait(ctx); err != nil {
			telemetry.RecordError(span, err)
			return res, err
		}
		err := s.client.AddUserToGroup(ctx, a.GroupID, a.UserID)
		switch {
		case errors.Is(err, lms.ErrAlreadyMember):
			res.AlreadyMember++
		case err != nil:
			res.Failed++
			res.Errors = append(res.Errors, ActionError{Entity: a.Email, Error: err.Error()})
			s.logger.Warn("group add failed",
				zap.String("user_id", a.UserID),
				zap.String("group_id", a.GroupID),
				zap.Error(err))
		default:
			res.Success++
		}
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCreatedCount, res.Success,
		telemetry.SpanAttrFailedCount, res.Failed,
	)
	report(progress, total, total, "")
	return res, nil
}

// RemoveUsersFromGroup executes a removal batch
func (s *ExecutorService) RemoveUsersFromGroup(ctx context.Context, actions []reconcile.Action, progress ProgressFunc) (*RemovalResult, error) {
	if !s.runMu.TryLock() {
		return nil, shared.ErrRunInProgress
	}
	defer s.runMu.Unlock()

	ctx, span := telemetry.StartServiceSpan(ctx, "sync", "removals",
		telemetry.WithAttribute(telemetry.SpanAttrPlannedCount, len(actions)))
	defer span.End()

	res := &RemovalResult{}
	total := len(actions)
	for i, a := range actions {
		report(progress, i, total, a.Email)

		if err := s.pacer.Wait(ctx); err != nil {
			telemetry.RecordError(span, err)
			return res, err
		}
		if err := s.client.RemoveUserFromGroup(ctx, a.GroupID, a.UserID); err != nil {
			res.Failed++
			res.Errors = append(res.Errors, ActionError{Entity: a.Email, Error: err.Error()})
			s.logger.Warn("group removal failed",
				zap.String("user_id", a.UserID),
				zap.String("group_id", a.GroupID),
				zap.Error(err))
			continue
		}
		res.Removed++
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCreatedCount, res.Removed,
		telemetry.SpanAttrFailedCount, res.Failed,
	)
	report(progress, total, total, "")
	return res, nil
}

// DeactivateUsers executes a deactivation batch
func (s *ExecutorService) DeactivateUsers(ctx context.Context, actions []reconcile.Action, progress ProgressFunc) (*DeactivationResult, error) {
	if !s.runMu.TryLock() {
		return nil, shared.ErrRunInProgress
	}
	defer s.runMu.Unlock()

	ctx, span := telemetry.StartServiceSpan(ctx, "sync", "deactivations",
		telemetry.WithAttribute(telemetry.SpanAttrPlannedCount, len(actions)))
	defer span.End()

	res := &DeactivationResult{}
	total := len(actions)
	for i, a := range actions {
		report(progress, i, total, a.Email)

		if err := s.pacer.Wait(ctx); err != nil {
			telemetry.RecordError(span, err)
			return res, err
		}
		if err := s.client.DeactivateUser(ctx, a.UserID); err != nil {
			res.Failed++
			res.Errors = append(res.Errors, ActionError{Entity: a.Email, Error: err.Error()})
			s.logger.Warn("deactivation failed",
				zap.String("user_id", a.UserID),
				zap.Error(err))
			continue
		}
		res.Deactivated++
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCreatedCount, res.Deactivated,
		telemetry.SpanAttrFailedCount, res.Failed,
	)
	report(progress, total, total, "")
	return res, nil
}

// AdoptOrphans creates a CRM contact for each orphaned LMS user, linking the
// user to its domain-matched partner so the next run sees a contact match
func (s *ExecutorService) AdoptOrphans(ctx context.Context, orphans []reconcile.OrphanRecord, progress ProgressFunc) (*AdoptionResult, error) {
	if !s.runMu.TryLock() {
		return nil, shared.ErrRunInProgress
	}
	defer s.runMu.Unlock()

	ctx, span := telemetry.StartServiceSpan(ctx, "sync", "adoptions",
		telemetry.WithAttribute(telemetry.SpanAttrPlannedCount, len(orphans)))
	defer span.End()

	res := &AdoptionResult{}
	total := len(orphans)
	for i, o := range orphans {
		report(progress, i, total, o.User.Email)

		if err := ctx.Err(); err != nil {
			telemetry.RecordError(span, err)
			return res, err
		}
		p, err := s.partnerRepo.FindByID(ctx, o.PartnerID)
		if err != nil {
			res.Failed++
			res.Errors = append(res.Errors, ActionError{Entity: o.User.Email, Error: err.Error()})
			continue
		}

		_, err = s.store.CreateContact(ctx, partner.CreateContactInput{
			Email:       o.User.Email,
			FirstName:   o.User.FirstName,
			LastName:    o.User.LastName,
			AccountID:   p.AccountID,
			AccountName: p.AccountName,
			Tier:        string(p.Tier),
			Region:      p.Region,
		})
		switch {
		case errors.Is(err, shared.ErrAlreadyExists):
			res.AlreadyExisted++
		case err != nil:
			res.Failed++
			res.Errors = append(res.Errors, ActionError{Entity: o.User.Email, Error: err.Error()})
			s.logger.Warn("orphan adoption failed",
				zap.String("email", o.User.Email),
				zap.Error(err))
		default:
			res.Created++
		}
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCreatedCount, res.Created,
		telemetry.SpanAttrFailedCount, res.Failed,
	)
	report(progress, total, total, "")
	return res, nil
}

// CreatePartnerGroups creates the named partner groups in the LMS
func (s *ExecutorService) CreatePartnerGroups(ctx context.Context, names []string, progress ProgressFunc) (*GroupCreateResult, error) {
	if !s.runMu.TryLock() {
		return nil, shared.ErrRunInProgress
	}
	defer s.runMu.Unlock()

	ctx, span := telemetry.StartServiceSpan(ctx, "sync", "create_groups",
		telemetry.WithAttribute(telemetry.SpanAttrPlannedCount, len(names)))
	defer span.End()

	res := &GroupCreateResult{}
	total := len(names)
	for i, name := range names {
		report(progress, i, total, name)

		if err := s.pacer.Wait(ctx); err != nil {
			telemetry.RecordError(span, err)
			return res, err
		}
		_, err := s.client.CreateGroup(ctx, name, "")
		switch {
		case errors.Is(err, lms.ErrGroupExists):
			res.AlreadyExisted++
		case err != nil:
			res.Failed++
			res.Errors = append(res.Errors, ActionError{Entity: name, Error: err.Error()})
			s.logger.Warn("group create failed",
				zap.String("name", name),
				zap.Error(err))
		default:
			res.Created++
		}
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrCreatedCount, res.Created,
		telemetry.SpanAttrFailedCount, res.Failed,
	)
	report(progress, total, total, "")
	return res, nil
}

func report(progress ProgressFunc, done, total int, entity string) {
	if progress != nil {
		progress(done, total, entity)
	}
}
