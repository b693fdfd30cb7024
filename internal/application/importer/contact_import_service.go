package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/bulk"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContactImportRow is one contact record in a CRM sync payload
type ContactImportRow struct {
	CRMID       string `json:"crm_id" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	AccountID   string `json:"account_id" validate:"required"`
	AccountName string `json:"account_name" validate:"required"`
	Tier        string `json:"tier"`
	Region      string `json:"region"`
	Active      *bool  `json:"active"`
}

// ContactImportResult is the outcome of one sync batch
type ContactImportResult struct {
	HistoryID uuid.UUID                `json:"history_id"`
	Total     int                      `json:"total"`
	Created   int                      `json:"created"`
	Updated   int                      `json:"updated"`
	Skipped   int                      `json:"skipped"`
	Errored   int                      `json:"errored"`
	Errors    []bulk.ImportErrorDetail `json:"errors,omitempty"`
}

// ContactImportService ingests CRM contact sync batches. Contacts are
// upserted by CRM id; partner organizations are created on first sight of a
// new account so every contact always has a backing partner.
type ContactImportService struct {
	contactRepo partner.ContactRepository
	partnerRepo partner.PartnerRepository
	historyRepo bulk.ImportHistoryRepository
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewContactImportService creates a new ContactImportService
func NewContactImportService(
	contactRepo partner.ContactRepository,
	partnerRepo partner.PartnerRepository,
	historyRepo bulk.ImportHistoryRepository,
	logger *zap.Logger,
) *ContactImportService {
	return &ContactImportService{
		contactRepo: contactRepo,
		partnerRepo: partnerRepo,
		historyRepo: historyRepo,
		validate:    validator.New(),
		logger:      logger,
	}
}

// ImportContacts runs one sync batch from a JSON array payload. Per-record
// failures are collected into the import history; only payload-level problems
// (unparseable JSON, history persistence) fail the batch as a whole.
func (s *ContactImportService) ImportContacts(ctx context.Context, sourceRef string, payload []byte, mode bulk.ConflictMode) (*ContactImportResult, error) {
	history, err := bulk.NewImportHistory(bulk.ImportEntityContacts, sourceRef, mode)
	if err != nil {
		return nil, err
	}

	var rows []ContactImportRow
	if err := json.Unmarshal(payload, &rows); err != nil {
		_ = history.Fail([]bulk.ImportErrorDetail{{
			Code:    "ERR_PARSE",
			Message: fmt.Sprintf("invalid JSON payload: %v", err),
		}})
		if saveErr := s.historyRepo.Save(ctx, history); saveErr != nil {
			s.logger.Error("import history save failed", zap.Error(saveErr))
		}
		return nil, shared.NewDomainError("INVALID_PAYLOAD", "Import payload is not a valid JSON array")
	}

	if err := history.StartProcessing(len(rows)); err != nil {
		return nil, err
	}
	if err := s.historyRepo.Save(ctx, history); err != nil {
		return nil, err
	}

	var created, updated, skipped, errored int
	var details []bulk.ImportErrorDetail

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.validate.Struct(row); err != nil {
			errored++
			details = append(details, bulk.ImportErrorDetail{
				Record:  i,
				Code:    "ERR_VALIDATION",
				Message: err.Error(),
				Value:   row.Email,
			})
			continue
		}

		if err := s.ensurePartner(ctx, row); err != nil {
			errored++
			details = append(details, bulk.ImportErrorDetail{
				Record:  i,
				Field:   "account_id",
				Code:    "ERR_PARTNER",
				Message: err.Error(),
				Value:   row.AccountID,
			})
			continue
		}

		outcome, err := s.upsertContact(ctx, row, mode)
		if err != nil {
			errored++
			details = append(details, bulk.ImportErrorDetail{
				Record:  i,
				Code:    "ERR_UPSERT",
				Message: err.Error(),
				Value:   row.Email,
			})
			continue
		}
		switch outcome {
		case outcomeCreated:
			created++
		case outcomeUpdated:
			updated++
		case outcomeSkipped:
			skipped++
		}
	}

	if err := history.Complete(created, updated, skipped, errored, details); err != nil {
		return nil, err
	}
	if err := s.historyRepo.Save(ctx, history); err != nil {
		return nil, err
	}

	s.logger.Info("contact import finished",
		zap.String("source_ref", sourceRef),
		zap.Int("total", len(rows)),
		zap.Int("created", created),
		zap.Int("updated", updated),
		zap.Int("errored", errored))

	return &ContactImportResult{
		HistoryID: history.ID,
		Total:     len(rows),
		Created:   created,
		Updated:   updated,
		Skipped:   skipped,
		Errored:   errored,
		Errors:    details,
	}, nil
}

type upsertOutcome int

const (
	outcomeCreated upsertOutcome = iota
	outcomeUpdated
	outcomeSkipped
)

func (s *ContactImportService) upsertContact(ctx context.Context, row ContactImportRow, mode bulk.ConflictMode) (upsertOutcome, error) {
	existing, err := s.contactRepo.FindByCRMID(ctx, row.CRMID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return 0, err
	}

	if existing == nil {
		contact, err := partner.NewContact(row.CRMID, row.Email, row.FirstName, row.LastName, row.AccountID, row.AccountName)
		if err != nil {
			return 0, err
		}
		applyRowExtras(contact, row)
		if err := s.contactRepo.Save(ctx, contact); err != nil {
			return 0, err
		}
		return outcomeCreated, nil
	}

	switch mode {
	case bulk.ConflictModeSkip:
		return outcomeSkipped, nil
	case bulk.ConflictModeFail:
		return 0, shared.NewDomainError("ALREADY_EXISTS", "Contact with this CRM ID already exists")
	}

	if err := existing.Update(row.Email, row.FirstName, row.LastName, row.AccountID, row.AccountName); err != nil {
		return 0, err
	}
	applyRowExtras(existing, row)
	if err := s.contactRepo.Save(ctx, existing); err != nil {
		return 0, err
	}
	return outcomeUpdated, nil
}

// ensurePartner creates the partner organization for an unseen account
func (s *ContactImportService) ensurePartner(ctx context.Context, row ContactImportRow) error {
	_, err := s.partnerRepo.FindByAccountID(ctx, row.AccountID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	p, err := partner.NewPartner(row.AccountID, row.AccountName)
	if err != nil {
		return err
	}
	if tier := normalizeTier(row.Tier); tier != "" {
		if err := p.SetTier(tier); err != nil {
			return err
		}
	}
	if row.Region != "" {
		p.SetRegion(row.Region)
	}
	return s.partnerRepo.Save(ctx, p)
}

func applyRowExtras(c *partner.Contact, row ContactImportRow) {
	if row.Tier != "" {
		c.SetTier(row.Tier)
	}
	if row.Region != "" {
		c.SetRegion(row.Region)
	}
	if row.Active != nil && !*row.Active {
		c.Deactivate()
	}
}

// normalizeTier maps CRM tier labels onto partner tiers, returning "" for
// labels with no counterpart
func normalizeTier(label string) partner.PartnerTier {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "premier":
		return partner.PartnerTierPremier
	case "select":
		return partner.PartnerTierSelect
	case "base":
		return partner.PartnerTierBase
	}
	return ""
}
