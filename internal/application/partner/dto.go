package partner

import (
	"time"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/google/uuid"
)

// CreateContactRequest is the request to create a contact
type CreateContactRequest struct {
	CRMID       string `json:"crm_id" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	AccountID   string `json:"account_id" binding:"required"`
	AccountName string `json:"account_name" binding:"required"`
	Tier        string `json:"tier"`
	Region      string `json:"region"`
}

// UpdateContactRequest is the request to update a contact's CRM fields
type UpdateContactRequest struct {
	Email       string `json:"email" binding:"required,email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	AccountID   string `json:"account_id" binding:"required"`
	AccountName string `json:"account_name" binding:"required"`
	Tier        string `json:"tier"`
	Region      string `json:"region"`
}

// ContactResponse is the API view of a contact
type ContactResponse struct {
	ID            uuid.UUID `json:"id"`
	CRMID         string    `json:"crm_id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	AccountID     string    `json:"account_id"`
	AccountName   string    `json:"account_name"`
	PartnerTier   string    `json:"partner_tier,omitempty"`
	AccountRegion string    `json:"account_region,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToContactResponse converts a contact entity to its API view
func ToContactResponse(c *partner.Contact) ContactResponse {
	return ContactResponse{
		ID:            c.ID,
		CRMID:         c.CRMID,
		Email:         c.Email,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		AccountID:     c.AccountID,
		AccountName:   c.AccountName,
		PartnerTier:   c.PartnerTier,
		AccountRegion: c.AccountRegion,
		Active:        c.Active,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// CreatePartnerRequest is the request to create a partner organization
type CreatePartnerRequest struct {
	AccountID   string `json:"account_id" binding:"required"`
	AccountName string `json:"account_name" binding:"required"`
	Tier        string `json:"tier"`
	Region      string `json:"region"`
}

// UpdatePartnerRequest is the request to update a partner organization
type UpdatePartnerRequest struct {
	Tier   string `json:"tier"`
	Region string `json:"region"`
	Active *bool  `json:"active"`
}

// PartnerResponse is the API view of a partner organization
type PartnerResponse struct {
	ID          uuid.UUID `json:"id"`
	AccountID   string    `json:"account_id"`
	AccountName string    `json:"account_name"`
	Tier        string    `json:"tier"`
	Region      string    `json:"region,omitempty"`
	Active      bool      `json:"active"`
	Domains     []string  `json:"domains"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToPartnerResponse converts a partner entity to its API view
func ToPartnerResponse(p *partner.Partner) PartnerResponse {
	domains := p.Domains
	if domains == nil {
		domains = []string{}
	}
	return PartnerResponse{
		ID:          p.ID,
		AccountID:   p.AccountID,
		AccountName: p.AccountName,
		Tier:        string(p.Tier),
		Region:      p.Region,
		Active:      p.Active,
		Domains:     domains,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// DismissalResponse is the API view of an orphan dismissal
type DismissalResponse struct {
	ID          uuid.UUID `json:"id"`
	LmsUserID   string    `json:"lms_user_id"`
	PartnerID   uuid.UUID `json:"partner_id"`
	Reason      string    `json:"reason"`
	DismissedAt time.Time `json:"dismissed_at"`
}

// ToDismissalResponse converts a dismissal entity to its API view
func ToDismissalResponse(d *partner.OrphanDismissal) DismissalResponse {
	return DismissalResponse{
		ID:          d.ID,
		LmsUserID:   d.LmsUserID,
		PartnerID:   d.PartnerID,
		Reason:      d.Reason,
		DismissedAt: d.DismissedAt,
	}
}

// StatsResponse summarizes the contact store for the console header
type StatsResponse struct {
	ContactCount  int64      `json:"contact_count"`
	PartnerCount  int64      `json:"partner_count"`
	LastImportAt  *time.Time `json:"last_import_at,omitempty"`
	LastImportRef string     `json:"last_import_ref,omitempty"`
}
