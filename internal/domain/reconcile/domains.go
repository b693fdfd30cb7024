package reconcile

import (
	"sort"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/google/uuid"
)

// DomainExtraction is the result of deriving candidate email domains per
// partner from a contact snapshot. Partners with contacts but no usable
// domain are reported separately from partners with no contacts at all, so
// the console can tell "extract domains first" apart from "nothing to do".
type DomainExtraction struct {
	DomainsByPartner map[uuid.UUID]map[string]struct{}
	NoUsableDomains  []uuid.UUID
	NoContacts       []uuid.UUID
}

// SortedDomains returns the partner's domain set as a sorted slice
func (e *DomainExtraction) SortedDomains(partnerID uuid.UUID) []string {
	set := e.DomainsByPartner[partnerID]
	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// ExtractDomains derives the candidate email domain set for each partner from
// its contacts. Domains on the excluded public-provider list never enter a
// set. Contacts without an email are skipped silently. The extraction is
// idempotent: the same snapshot always yields the same sets.
func ExtractDomains(partners []partner.Partner, contacts []partner.Contact) DomainExtraction {
	ext := DomainExtraction{
		DomainsByPartner: make(map[uuid.UUID]map[string]struct{}, len(partners)),
	}

	byAccountID := make(map[string]uuid.UUID, len(partners))
	for _, p := range partners {
		byAccountID[p.AccountID] = p.ID
	}

	hasContacts := make(map[uuid.UUID]bool, len(partners))
	for _, c := range contacts {
		partnerID, ok := byAccountID[c.AccountID]
		if !ok {
			continue
		}
		hasContacts[partnerID] = true

		domain := c.EmailDomain()
		if ExcludedDomain(domain) {
			continue
		}
		set, ok := ext.DomainsByPartner[partnerID]
		if !ok {
			set = make(map[string]struct{})
			ext.DomainsByPartner[partnerID] = set
		}
		set[domain] = struct{}{}
	}

	for _, p := range partners {
		if len(ext.DomainsByPartner[p.ID]) > 0 {
			continue
		}
		if hasContacts[p.ID] {
			ext.NoUsableDomains = append(ext.NoUsableDomains, p.ID)
		} else {
			ext.NoContacts = append(ext.NoContacts, p.ID)
		}
	}

	return ext
}
