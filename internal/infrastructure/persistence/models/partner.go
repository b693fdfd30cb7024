package models

import (
	"time"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ContactModel is the persistence model for the Contact domain entity.
type ContactModel struct {
	BaseModel
	CRMID         string `gorm:"column:crm_id;type:varchar(100);not null;uniqueIndex"`
	Email         string `gorm:"type:varchar(200);not null;index"`
	FirstName     string `gorm:"type:varchar(100)"`
	LastName      string `gorm:"type:varchar(100)"`
	AccountID     string `gorm:"type:varchar(100);not null;index"`
	AccountName   string `gorm:"type:varchar(200);not null"`
	PartnerTier   string `gorm:"type:varchar(50)"`
	AccountRegion string `gorm:"type:varchar(100)"`
	Active        bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// ToDomain converts the persistence model to a domain Contact entity
func (m *ContactModel) ToDomain() *partner.Contact {
	return &partner.Contact{
		BaseEntity:    m.BaseModel.ToDomain(),
		CRMID:         m.CRMID,
		Email:         m.Email,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		AccountID:     m.AccountID,
		AccountName:   m.AccountName,
		PartnerTier:   m.PartnerTier,
		AccountRegion: m.AccountRegion,
		Active:        m.Active,
	}
}

// ContactModelFromDomain creates a persistence model from a domain Contact
func ContactModelFromDomain(c *partner.Contact) *ContactModel {
	m := &ContactModel{
		CRMID:         c.CRMID,
		Email:         c.Email,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		AccountID:     c.AccountID,
		AccountName:   c.AccountName,
		PartnerTier:   c.PartnerTier,
		AccountRegion: c.AccountRegion,
		Active:        c.Active,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// PartnerModel is the persistence model for the Partner domain entity.
// Domains is the derived email-domain set, stored as a Postgres text array.
type PartnerModel struct {
	BaseModel
	AccountID   string         `gorm:"type:varchar(100);not null;uniqueIndex"`
	AccountName string         `gorm:"type:varchar(200);not null"`
	Tier        string         `gorm:"type:varchar(20);not null;default:'base'"`
	Region      string         `gorm:"type:varchar(100)"`
	Active      bool           `gorm:"not null;default:true"`
	Domains     pq.StringArray `gorm:"type:text[]"`
}

// TableName returns the table name for GORM
func (PartnerModel) TableName() string {
	return "partners"
}

// ToDomain converts the persistence model to a domain Partner entity
func (m *PartnerModel) ToDomain() *partner.Partner {
	return &partner.Partner{
		BaseEntity:  m.BaseModel.ToDomain(),
		AccountID:   m.AccountID,
		AccountName: m.AccountName,
		Tier:        partner.PartnerTier(m.Tier),
		Region:      m.Region,
		Active:      m.Active,
		Domains:     []string(m.Domains),
	}
}

// PartnerModelFromDomain creates a persistence model from a domain Partner
func PartnerModelFromDomain(p *partner.Partner) *PartnerModel {
	m := &PartnerModel{
		AccountID:   p.AccountID,
		AccountName: p.AccountName,
		Tier:        string(p.Tier),
		Region:      p.Region,
		Active:      p.Active,
		Domains:     pq.StringArray(p.Domains),
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// OrphanDismissalModel is the persistence model for OrphanDismissal.
// One row per (LMS user, partner) pair.
type OrphanDismissalModel struct {
	BaseModel
	LmsUserID   string    `gorm:"column:lms_user_id;type:varchar(100);not null;uniqueIndex:idx_dismissal_user_partner"`
	PartnerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_dismissal_user_partner"`
	Reason      string    `gorm:"type:varchar(500);not null"`
	DismissedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName returns the table name for GORM
func (OrphanDismissalModel) TableName() string {
	return "orphan_dismissals"
}

// ToDomain converts the persistence model to a domain OrphanDismissal entity
func (m *OrphanDismissalModel) ToDomain() *partner.OrphanDismissal {
	return &partner.OrphanDismissal{
		BaseEntity:  m.BaseModel.ToDomain(),
		LmsUserID:   m.LmsUserID,
		PartnerID:   m.PartnerID,
		Reason:      m.Reason,
		DismissedAt: m.DismissedAt,
	}
}

// OrphanDismissalModelFromDomain creates a persistence model from a domain OrphanDismissal
func OrphanDismissalModelFromDomain(d *partner.OrphanDismissal) *OrphanDismissalModel {
	m := &OrphanDismissalModel{
		LmsUserID:   d.LmsUserID,
		PartnerID:   d.PartnerID,
		Reason:      d.Reason,
		DismissedAt: d.DismissedAt,
	}
	m.FromDomainBaseEntity(d.BaseEntity)
	return m
}
