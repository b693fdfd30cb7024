package reconcile

import (
	"fmt"
	"strings"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/lms"
	"github.com/google/uuid"
)

const (
	// GroupPrefix is the conventional prefix for partner-specific LMS groups
	// derived from account names, e.g. "ptr_Acme" for account "Acme".
	GroupPrefix = "ptr_"

	// GlobalGroupName is the name of the one group intended to contain every
	// partner-affiliated user.
	GlobalGroupName = "All Partners"
)

// Warning flags a data-integrity problem found while indexing. Warnings never
// abort an analysis run; they are surfaced so the operator can fix the data.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	WarnDuplicateGroupName  = "DUPLICATE_GROUP_NAME"
	WarnDuplicateGlobalName = "DUPLICATE_GLOBAL_GROUP"
)

// Indices holds the normalized lookup structures one analysis run works
// against. Build once per run; never mutate while a run is in flight.
type Indices struct {
	EmailToUser     map[string]*lms.User
	DomainToPartner map[string]uuid.UUID
	GlobalGroup     *lms.Group
	Warnings        []Warning

	groupsByKey map[string]*lms.Group
	groupsByID  map[string]*lms.Group
	users       []*lms.User
}

// NormalizeGroupName lower-cases and trims a group name for index keys
func NormalizeGroupName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// StripGroupPrefix removes the conventional prefix from a normalized name,
// or returns the name unchanged when the prefix is absent
func StripGroupPrefix(name string) string {
	return strings.TrimPrefix(name, GroupPrefix)
}

// BuildIndices builds the lookup maps for one reconciliation run: email to
// user, normalized group name to group (keyed under both the literal and the
// prefix-toggled form so lookups succeed with or without the prefix), and
// domain to partner from an extraction result.
//
// When two groups normalize to the same key the later one wins. That
// last-write-wins behavior is deliberate and observable: a Warning is emitted
// per collision so duplicate-group data problems are never hidden.
func BuildIndices(users []lms.User, groups []lms.Group, ext DomainExtraction) *Indices {
	idx := &Indices{
		EmailToUser:     make(map[string]*lms.User, len(users)),
		DomainToPartner: make(map[string]uuid.UUID),
		groupsByKey:     make(map[string]*lms.Group, len(groups)*2),
		groupsByID:      make(map[string]*lms.Group, len(groups)),
	}

	for i := range users {
		u := &users[i]
		if u.ID == "" {
			continue
		}
		email := u.NormalizedEmail()
		if email == "" {
			continue
		}
		idx.EmailToUser[email] = u
		idx.users = append(idx.users, u)
	}

	for i := range groups {
		g := &groups[i]
		if g.ID == "" || strings.TrimSpace(g.Name) == "" {
			continue
		}
		idx.groupsByID[g.ID] = g

		norm := NormalizeGroupName(g.Name)
		if norm == NormalizeGroupName(GlobalGroupName) {
			if idx.GlobalGroup != nil {
				idx.Warnings = append(idx.Warnings, Warning{
					Code: WarnDuplicateGlobalName,
					Message: fmt.Sprintf("more than one %q group exists (%s, %s); keeping the first",
						GlobalGroupName, idx.GlobalGroup.ID, g.ID),
				})
				continue
			}
			idx.GlobalGroup = g
			continue
		}

		idx.indexGroupKey(norm, g)
		if stripped := StripGroupPrefix(norm); stripped != norm {
			idx.indexGroupKey(stripped, g)
		} else {
			idx.indexGroupKey(GroupPrefix+norm, g)
		}
	}

	for partnerID, domains := range ext.DomainsByPartner {
		for domain := range domains {
			idx.DomainToPartner[domain] = partnerID
		}
	}

	return idx
}

// indexGroupKey stores a group under one normalized key, warning when the key
// already points at a different group
func (idx *Indices) indexGroupKey(key string, g *lms.Group) {
	if prev, ok := idx.groupsByKey[key]; ok && prev.ID != g.ID {
		idx.Warnings = append(idx.Warnings, Warning{
			Code: WarnDuplicateGroupName,
			Message: fmt.Sprintf("groups %q (%s) and %q (%s) collide on name key %q; keeping the latter",
				prev.Name, prev.ID, g.Name, g.ID, key),
		})
	}
	idx.groupsByKey[key] = g
}

// GroupByName resolves a group by name, succeeding whether or not the
// conventional prefix is present on either side of the comparison
func (idx *Indices) GroupByName(name string) *lms.Group {
	return idx.groupsByKey[NormalizeGroupName(name)]
}

// GroupByID resolves a group by its LMS id
func (idx *Indices) GroupByID(id string) *lms.Group {
	return idx.groupsByID[id]
}

// GroupForAccount resolves the partner group for a CRM account name
// (prefix + account name, case-insensitive)
func (idx *Indices) GroupForAccount(accountName string) *lms.Group {
	return idx.GroupByName(GroupPrefix + accountName)
}

// UserByEmail resolves a user by email, case-insensitive and trimmed
func (idx *Indices) UserByEmail(email string) *lms.User {
	return idx.EmailToUser[strings.ToLower(strings.TrimSpace(email))]
}

// Users returns the indexed users in snapshot order. Malformed records
// (missing id or email) were skipped at build time.
func (idx *Indices) Users() []*lms.User {
	return idx.users
}

// PartnerGroup reports whether a group id belongs to a partner-specific
// group, i.e. one carrying the conventional name prefix
func (idx *Indices) PartnerGroup(groupID string) bool {
	g, ok := idx.groupsByID[groupID]
	if !ok {
		return false
	}
	return strings.HasPrefix(NormalizeGroupName(g.Name), GroupPrefix)
}
