package reconcile

import (
	"context"
	"time"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/lms"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/reconcile"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/danstoll/Northpass-PP-sub000/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// Run is the materialized state of one analysis: the CRM and LMS snapshots,
// the lookup indices built from them, and the resulting classification.
// Executor flows plan against a Run so the analysis an operator saw is
// exactly what gets executed.
type Run struct {
	Contacts       []partner.Contact
	Partners       []partner.Partner
	Snapshot       *lms.Snapshot
	Indices        *reconcile.Indices
	Classification *reconcile.Classification
	Extraction     reconcile.DomainExtraction
}

// AnalysisService builds reconciliation runs: it loads both sides, derives
// partner domains, indexes the LMS universe and classifies every discrepancy
type AnalysisService struct {
	store         partner.Store
	partnerRepo   partner.PartnerRepository
	dismissalRepo partner.OrphanDismissalRepository
	client        lms.Client
	cache         lms.SnapshotCache
	logger        *zap.Logger
	maxAge        time.Duration
}

// NewAnalysisService creates a new AnalysisService. maxSnapshotAge bounds how
// stale a cached LMS snapshot may be before it is refetched.
func NewAnalysisService(
	store partner.Store,
	partnerRepo partner.PartnerRepository,
	dismissalRepo partner.OrphanDismissalRepository,
	client lms.Client,
	cache lms.SnapshotCache,
	logger *zap.Logger,
	maxSnapshotAge time.Duration,
) *AnalysisService {
	return &AnalysisService{
		store:         store,
		partnerRepo:   partnerRepo,
		dismissalRepo: dismissalRepo,
		client:        client,
		cache:         cache,
		logger:        logger,
		maxAge:        maxSnapshotAge,
	}
}

// Analyze performs a full classification run and returns the console view
func (s *AnalysisService) Analyze(ctx context.Context, refresh bool) (*AnalysisResponse, error) {
	run, err := s.BuildRun(ctx, refresh)
	if err != nil {
		return nil, err
	}
	return toAnalysisResponse(run), nil
}

// BuildRun loads both sides and classifies them. With refresh set, the LMS
// snapshot cache is bypassed and refetched.
func (s *AnalysisService) BuildRun(ctx context.Context, refresh bool) (*Run, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "reconcile", "build_run",
		telemetry.WithAttribute(telemetry.SpanAttrRefresh, refresh))
	defer span.End()

	contacts, err := s.store.GetAllContacts(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	partners, err := s.partnerRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	snapshot, err := s.Snapshot(ctx, refresh)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	dismissals, err := s.dismissalRepo.FindAll(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	dismissed := make(map[string]struct{}, len(dismissals))
	for _, d := range dismissals {
		dismissed[reconcile.DismissKey(d.LmsUserID, d.PartnerID)] = struct{}{}
	}

	ext := reconcile.ExtractDomains(partners, contacts)
	idx := reconcile.BuildIndices(snapshot.Users, snapshot.Groups, ext)
	cls := reconcile.Classify(reconcile.Context{
		Contacts:  contacts,
		Partners:  partners,
		Indices:   idx,
		Dismissed: dismissed,
	})

	telemetry.SetAttributes(span,
		telemetry.SpanAttrWarningCount, len(idx.Warnings),
		"contacts", len(contacts),
		"lms_users", len(snapshot.Users),
	)

	s.logger.Info("analysis run complete",
		zap.Int("contacts", len(contacts)),
		zap.Int("partners", len(partners)),
		zap.Int("lms_users", len(snapshot.Users)),
		zap.Int("missing_from_lms", len(cls.MissingFromLms)),
		zap.Int("orphans", len(cls.Orphans)),
		zap.Int("warnings", len(idx.Warnings)))

	return &Run{
		Contacts:       contacts,
		Partners:       partners,
		Snapshot:       snapshot,
		Indices:        idx,
		Classification: cls,
		Extraction:     ext,
	}, nil
}

// Snapshot returns the LMS snapshot for a run, served from cache when fresh
// enough. Cache failures degrade to a live fetch, never to a run failure.
func (s *AnalysisService) Snapshot(ctx context.Context, refresh bool) (*lms.Snapshot, error) {
	if !refresh {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("snapshot cache read failed", zap.Error(err))
		} else if cached != nil && (s.maxAge <= 0 || cached.Age() <= s.maxAge) {
			return cached, nil
		}
	}

	snapshot, err := s.fetchSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Put(ctx, snapshot); err != nil {
		s.logger.Warn("snapshot cache write failed", zap.Error(err))
	}
	return snapshot, nil
}

// RefreshSnapshot drops the cached snapshot and fetches a new one
func (s *AnalysisService) RefreshSnapshot(ctx context.Context) (*lms.Snapshot, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "reconcile", "refresh_snapshot")
	defer span.End()

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("snapshot cache invalidation failed", zap.Error(err))
	}
	snapshot, err := s.Snapshot(ctx, true)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	return snapshot, nil
}

// RefreshPartnerDomains re-derives every partner's domain set from the
// current contact snapshot and persists it
func (s *AnalysisService) RefreshPartnerDomains(ctx context.Context) (int, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "reconcile", "refresh_partner_domains")
	defer span.End()

	contacts, err := s.store.GetAllContacts(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		return 0, err
	}
	partners, err := s.partnerRepo.FindAll(ctx, shared.Filter{})
	if err != nil {
		telemetry.RecordError(span, err)
		return 0, err
	}

	ext := reconcile.ExtractDomains(partners, contacts)
	updated := make([]*partner.Partner, 0, len(partners))
	for i := range partners {
		p := &partners[i]
		p.ReplaceDomains(ext.SortedDomains(p.ID))
		updated = append(updated, p)
	}
	if len(updated) > 0 {
		if err := s.partnerRepo.SaveBatch(ctx, updated); err != nil {
			telemetry.RecordError(span, err)
			return 0, err
		}
	}
	telemetry.SetAttribute(span, "partners_updated", len(updated))
	return len(updated), nil
}

func (s *AnalysisService) fetchSnapshot(ctx context.Context) (*lms.Snapshot, error) {
	users, err := s.client.GetAllUsers(ctx)
	if err != nil {
		s.logger.Error("lms user fetch failed", zap.Error(err))
		return nil, shared.ErrSnapshotUnavailable
	}
	groups, err := s.client.GetAllGroups(ctx)
	if err != nil {
		s.logger.Error("lms group fetch failed", zap.Error(err))
		return nil, shared.ErrSnapshotUnavailable
	}
	return &lms.Snapshot{
		Users:     users,
		Groups:    groups,
		FetchedAt: time.Now(),
	}, nil
}
