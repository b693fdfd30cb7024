package partner

import (
	"regexp"
	"strings"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
)

// Contact represents a partner contact imported from the CRM store.
// Contacts are read-mostly: the CRM sync job owns their lifecycle, this
// service only creates them when an operator adopts an orphaned LMS user.
type Contact struct {
	shared.BaseEntity
	CRMID         string // identifier assigned by the CRM, unique per contact
	Email         string
	FirstName     string
	LastName      string
	AccountID     string // CRM account the contact belongs to
	AccountName   string
	PartnerTier   string
	AccountRegion string
	Active        bool
}

// NewContact creates a new contact with required fields
func NewContact(crmID, email, firstName, lastName, accountID, accountName string) (*Contact, error) {
	if crmID == "" {
		return nil, shared.NewDomainError("INVALID_CRM_ID", "Contact CRM ID cannot be empty")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if accountName == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_NAME", "Account name cannot be empty")
	}

	return &Contact{
		BaseEntity:  shared.NewBaseEntity(),
		CRMID:       crmID,
		Email:       NormalizeEmail(email),
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		AccountID:   accountID,
		AccountName: strings.TrimSpace(accountName),
		Active:      true,
	}, nil
}

// Update refreshes the contact's CRM-sourced fields
func (c *Contact) Update(email, firstName, lastName, accountID, accountName string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if accountName == "" {
		return shared.NewDomainError("INVALID_ACCOUNT_NAME", "Account name cannot be empty")
	}

	c.Email = NormalizeEmail(email)
	c.FirstName = strings.TrimSpace(firstName)
	c.LastName = strings.TrimSpace(lastName)
	c.AccountID = accountID
	c.AccountName = strings.TrimSpace(accountName)
	c.Touch()

	return nil
}

// SetTier sets the partner tier label (e.g. "Premier", "Select")
func (c *Contact) SetTier(tier string) {
	c.PartnerTier = strings.TrimSpace(tier)
	c.Touch()
}

// SetRegion sets the account region label
func (c *Contact) SetRegion(region string) {
	c.AccountRegion = strings.TrimSpace(region)
	c.Touch()
}

// Activate marks the contact as active
func (c *Contact) Activate() {
	c.Active = true
	c.Touch()
}

// Deactivate marks the contact as inactive
func (c *Contact) Deactivate() {
	c.Active = false
	c.Touch()
}

// IsActive returns true if the contact is active in the CRM
func (c *Contact) IsActive() bool {
	return c.Active
}

// FullName returns the contact's display name
func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// EmailDomain returns the lower-cased part of the email after '@',
// or "" when the email has no domain part
func (c *Contact) EmailDomain() string {
	return EmailDomain(c.Email)
}

// NormalizeEmail lower-cases and trims an email address.
// Email is the only reliable join key between CRM contacts and LMS users,
// so every comparison goes through this normalization.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailDomain extracts the lower-cased domain part of an email address
func EmailDomain(email string) string {
	normalized := NormalizeEmail(email)
	at := strings.LastIndex(normalized, "@")
	if at < 0 || at == len(normalized)-1 {
		return ""
	}
	return normalized[at+1:]
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
