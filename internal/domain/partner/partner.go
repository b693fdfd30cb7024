package partner

import (
	"sort"
	"strings"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/shared"
)

// PartnerTier represents the partner's program tier
type PartnerTier string

const (
	PartnerTierPremier PartnerTier = "premier"
	PartnerTierSelect  PartnerTier = "select"
	PartnerTierBase    PartnerTier = "base"
)

// Partner represents a partner organization imported from the CRM store.
// Its Domains set is derived from contact email domains, never authoritative:
// the domain extractor rebuilds it and excluded public-provider domains are
// filtered out before they ever reach this entity.
type Partner struct {
	shared.BaseEntity
	AccountID   string // CRM account identifier, unique per partner
	AccountName string
	Tier        PartnerTier
	Region      string
	Active      bool
	Domains     []string // derived, lower-cased, sorted
}

// NewPartner creates a new partner organization
func NewPartner(accountID, accountName string) (*Partner, error) {
	if accountID == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_ID", "Account ID cannot be empty")
	}
	if strings.TrimSpace(accountName) == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_NAME", "Account name cannot be empty")
	}

	return &Partner{
		BaseEntity:  shared.NewBaseEntity(),
		AccountID:   accountID,
		AccountName: strings.TrimSpace(accountName),
		Tier:        PartnerTierBase,
		Active:      true,
	}, nil
}

// SetTier sets the partner's program tier
func (p *Partner) SetTier(tier PartnerTier) error {
	switch tier {
	case PartnerTierPremier, PartnerTierSelect, PartnerTierBase:
	default:
		return shared.NewDomainError("INVALID_TIER", "Invalid partner tier")
	}
	p.Tier = tier
	p.Touch()
	return nil
}

// SetRegion sets the partner's region label
func (p *Partner) SetRegion(region string) {
	p.Region = strings.TrimSpace(region)
	p.Touch()
}

// Activate marks the partner as active
func (p *Partner) Activate() {
	p.Active = true
	p.Touch()
}

// Deactivate marks the partner as inactive
func (p *Partner) Deactivate() {
	p.Active = false
	p.Touch()
}

// IsActive returns true if the partner is active in the CRM
func (p *Partner) IsActive() bool {
	return p.Active
}

// ReplaceDomains replaces the derived domain set. Input is deduplicated,
// lower-cased and sorted so repeated extraction runs produce identical sets.
func (p *Partner) ReplaceDomains(domains []string) {
	seen := make(map[string]struct{}, len(domains))
	out := make([]string, 0, len(domains))
	for _, d := range domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Strings(out)
	p.Domains = out
	p.Touch()
}

// HasDomain returns true if the domain is in the partner's derived set
func (p *Partner) HasDomain(domain string) bool {
	domain = strings.ToLower(strings.TrimSpace(domain))
	for _, d := range p.Domains {
		if d == domain {
			return true
		}
	}
	return false
}
