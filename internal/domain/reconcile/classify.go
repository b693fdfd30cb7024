package reconcile

import (
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/lms"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/google/uuid"
)

// Offboard reasons attached to global-group members whose backing CRM
// record no longer justifies LMS access.
const (
	OffboardPartnerInactive = "partner_inactive"
	OffboardGroupMissing    = "group_missing"
	OffboardContactInactive = "contact_inactive"
)

// MembershipGap is a user that matched a CRM contact but is missing from the
// contact's partner group.
type MembershipGap struct {
	User    *lms.User
	Group   *lms.Group
	Contact partner.Contact
}

// OrphanRecord is an LMS user affiliated with a partner only through its
// email domain: no CRM contact carries the user's email and the user is not
// in the partner's group. Orphans are surfaced for operator review, never
// acted on automatically.
type OrphanRecord struct {
	User        *lms.User
	PartnerID   uuid.UUID
	PartnerName string
	Domain      string
}

// OffboardCandidate is a global-group member whose backing partner, group or
// contact has gone away or inactive.
type OffboardCandidate struct {
	User    *lms.User
	Reason  string
	Contact *partner.Contact
}

// Classification is the complete diff between the CRM side and the LMS side
// for one analysis run. Each user appears in at most one of the user-keyed
// categories per concern; the classification itself performs no writes.
type Classification struct {
	MissingFromLms          []partner.Contact
	MissingFromPartnerGroup []MembershipGap
	MissingFromGlobalGroup  []*lms.User
	Orphans                 []OrphanRecord
	UsersToOffboard         []OffboardCandidate
}

// Context carries the inputs one classification runs against. Indices must
// have been built from the same snapshot the run uses.
type Context struct {
	Contacts  []partner.Contact
	Partners  []partner.Partner
	Indices   *Indices
	Dismissed map[string]struct{}
}

// DismissKey builds the lookup key for a dismissed orphan pairing
func DismissKey(userID string, partnerID uuid.UUID) string {
	return userID + "|" + partnerID.String()
}

// Classify diffs the contact snapshot against the LMS snapshot and buckets
// every discrepancy. The pass is read-only and deterministic: contacts are
// visited in input order, users in snapshot order, so the same inputs always
// yield the same classification.
//
// A direct contact match always outranks a domain inference: a user whose
// email appears on any contact is never reported as an orphan, even when its
// email domain points at a different partner.
func Classify(rc Context) *Classification {
	cls := &Classification{}
	idx := rc.Indices

	partnersByID := make(map[uuid.UUID]*partner.Partner, len(rc.Partners))
	for i := range rc.Partners {
		partnersByID[rc.Partners[i].ID] = &rc.Partners[i]
	}

	contactByEmail := make(map[string]*partner.Contact, len(rc.Contacts))
	contactMatched := make(map[string]struct{})

	for i := range rc.Contacts {
		c := &rc.Contacts[i]
		email := partner.NormalizeEmail(c.Email)
		if c.CRMID == "" || email == "" {
			continue
		}
		if _, ok := contactByEmail[email]; !ok {
			contactByEmail[email] = c
		}

		u := idx.UserByEmail(email)
		if u == nil {
			cls.MissingFromLms = append(cls.MissingFromLms, *c)
			continue
		}
		contactMatched[u.ID] = struct{}{}

		g := idx.GroupForAccount(c.AccountName)
		if g != nil && !u.MemberOf(g.ID) {
			cls.MissingFromPartnerGroup = append(cls.MissingFromPartnerGroup, MembershipGap{
				User:    u,
				Group:   g,
				Contact: *c,
			})
		}
	}

	for _, u := range idx.Users() {
		if idx.GlobalGroup != nil && !u.MemberOf(idx.GlobalGroup.ID) && inAnyPartnerGroup(idx, u) {
			cls.MissingFromGlobalGroup = append(cls.MissingFromGlobalGroup, u)
		}

		if orphan := classifyOrphan(rc, partnersByID, contactMatched, u); orphan != nil {
			cls.Orphans = append(cls.Orphans, *orphan)
		}
	}

	if idx.GlobalGroup != nil {
		for _, u := range idx.Users() {
			if !u.MemberOf(idx.GlobalGroup.ID) {
				continue
			}
			if cand := classifyOffboard(rc, partnersByID, contactByEmail, u); cand != nil {
				cls.UsersToOffboard = append(cls.UsersToOffboard, *cand)
			}
		}
	}

	return cls
}

func inAnyPartnerGroup(idx *Indices, u *lms.User) bool {
	for id := range u.GroupIDs {
		if idx.PartnerGroup(id) {
			return true
		}
	}
	return false
}

// classifyOrphan reports a user as orphaned when its email domain maps to a
// partner, no contact carries the email, the user is outside the partner's
// group, and the pairing has not been dismissed by an operator.
func classifyOrphan(rc Context, partnersByID map[uuid.UUID]*partner.Partner, contactMatched map[string]struct{}, u *lms.User) *OrphanRecord {
	domain := u.EmailDomain()
	partnerID, ok := rc.Indices.DomainToPartner[domain]
	if !ok {
		return nil
	}
	if _, matched := contactMatched[u.ID]; matched {
		return nil
	}
	p, ok := partnersByID[partnerID]
	if !ok {
		return nil
	}
	if g := rc.Indices.GroupForAccount(p.AccountName); g != nil && u.MemberOf(g.ID) {
		return nil
	}
	if _, dismissed := rc.Dismissed[DismissKey(u.ID, partnerID)]; dismissed {
		return nil
	}
	return &OrphanRecord{
		User:        u,
		PartnerID:   partnerID,
		PartnerName: p.AccountName,
		Domain:      domain,
	}
}

// classifyOffboard checks whether a global-group member still has a live
// backing record. The first failing check in partner, group, contact order
// determines the reason.
func classifyOffboard(rc Context, partnersByID map[uuid.UUID]*partner.Partner, contactByEmail map[string]*partner.Contact, u *lms.User) *OffboardCandidate {
	c, hasContact := contactByEmail[u.NormalizedEmail()]
	if hasContact {
		if p := partnerByAccountID(rc.Partners, c.AccountID); p != nil && !p.Active {
			return &OffboardCandidate{User: u, Reason: OffboardPartnerInactive, Contact: c}
		}
		if rc.Indices.GroupForAccount(c.AccountName) == nil {
			return &OffboardCandidate{User: u, Reason: OffboardGroupMissing, Contact: c}
		}
		if !c.Active {
			return &OffboardCandidate{User: u, Reason: OffboardContactInactive, Contact: c}
		}
		return nil
	}

	partnerID, ok := rc.Indices.DomainToPartner[u.EmailDomain()]
	if !ok {
		return nil
	}
	if p, ok := partnersByID[partnerID]; ok && !p.Active {
		return &OffboardCandidate{User: u, Reason: OffboardPartnerInactive}
	}
	return nil
}

func partnerByAccountID(partners []partner.Partner, accountID string) *partner.Partner {
	for i := range partners {
		if partners[i].AccountID == accountID {
			return &partners[i]
		}
	}
	return nil
}
