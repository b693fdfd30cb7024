package reconcile

import (
	"context"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/reconcile"
	"go.uber.org/zap"
)

// SyncService ties analysis and execution together: each flow rebuilds the
// classification, plans the corresponding actions and hands them to the
// executor. Rebuilding first means a sync always acts on the discrepancies
// that exist now, not on a stale view an operator may have been looking at.
type SyncService struct {
	analysis *AnalysisService
	executor *ExecutorService
	logger   *zap.Logger
}

// NewSyncService creates a new SyncService
func NewSyncService(analysis *AnalysisService, executor *ExecutorService, logger *zap.Logger) *SyncService {
	return &SyncService{
		analysis: analysis,
		executor: executor,
		logger:   logger,
	}
}

// OnboardMissingUsers creates every contact absent from the LMS and adds each
// created user to its partner group and, when one exists, the global group
func (s *SyncService) OnboardMissingUsers(ctx context.Context, refresh bool, progress ProgressFunc) (*OnboardResult, error) {
	run, err := s.analysis.BuildRun(ctx, refresh)
	if err != nil {
		return nil, err
	}
	plans, err := reconcile.PlanOnboarding(run.Classification.MissingFromLms, run.Indices)
	if err != nil {
		return nil, err
	}
	return s.executor.OnboardUsers(ctx, plans, progress)
}

// SyncPartnerGroups adds each matched user to its contact's partner group
func (s *SyncService) SyncPartnerGroups(ctx context.Context, refresh bool, progress ProgressFunc) (*GroupAddResult, error) {
	run, err := s.analysis.BuildRun(ctx, refresh)
	if err != nil {
		return nil, err
	}
	actions := reconcile.PlanGroupAdds(run.Classification.MissingFromPartnerGroup)
	return s.executor.AddUsersToGroup(ctx, actions, progress)
}

// SyncGlobalGroup adds every partner-group member missing from the global
// group. Fails when the LMS has no global group.
func (s *SyncService) SyncGlobalGroup(ctx context.Context, refresh bool, progress ProgressFunc) (*GroupAddResult, error) {
	run, err := s.analysis.BuildRun(ctx, refresh)
	if err != nil {
		return nil, err
	}
	actions, err := reconcile.PlanGlobalGroupAdds(run.Classification.MissingFromGlobalGroup, run.Indices)
	if err != nil {
		return nil, err
	}
	return s.executor.AddUsersToGroup(ctx, actions, progress)
}

// RemoveOffboarded removes every offboard candidate from the global group
func (s *SyncService) RemoveOffboarded(ctx context.Context, refresh bool, progress ProgressFunc) (*RemovalResult, error) {
	run, err := s.analysis.BuildRun(ctx, refresh)
	if err != nil {
		return nil, err
	}
	actions, err := reconcile.PlanRemovals(run.Classification.UsersToOffboard, run.Indices)
	if err != nil {
		return nil, err
	}
	return s.executor.RemoveUsersFromGroup(ctx, actions, progress)
}

// DeactivateOffboarded deactivates every offboard candidate's LMS account
func (s *SyncService) DeactivateOffboarded(ctx context.Context, refresh bool, progress ProgressFunc) (*DeactivationResult, error) {
	run, err := s.analysis.BuildRun(ctx, refresh)
	if err != nil {
		return nil, err
	}
	actions := reconcile.PlanDeactivations(run.Classification.UsersToOffboard)
	return s.executor.DeactivateUsers(ctx, actions, progress)
}

// AdoptOrphans creates a CRM contact for every current orphan, so the next
// run links them through an explicit contact match
func (s *SyncService) AdoptOrphans(ctx context.Context, refresh bool, progress ProgressFunc) (*AdoptionResult, error) {
	run, err := s.analysis.BuildRun(ctx, refresh)
	if err != nil {
		return nil, err
	}
	return s.executor.AdoptOrphans(ctx, run.Classification.Orphans, progress)
}

// CreateMissingGroups creates a partner group for every active partner whose
// account has none yet
func (s *SyncService) CreateMissingGroups(ctx context.Context, refresh bool, progress ProgressFunc) (*GroupCreateResult, error) {
	run, err := s.analysis.BuildRun(ctx, refresh)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0)
	for i := range run.Partners {
		p := &run.Partners[i]
		if !p.Active {
			continue
		}
		if a := reconcile.PlanGroupCreation(p.AccountName, run.Indices); a != nil {
			names = append(names, a.GroupName)
		}
	}

	s.logger.Info("planned partner group creation", zap.Int("groups", len(names)))
	return s.executor.CreatePartnerGroups(ctx, names, progress)
}
