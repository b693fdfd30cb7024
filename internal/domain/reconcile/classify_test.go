package reconcile

import (
	"testing"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/lms"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMissingFromLms(t *testing.T) {
	acme := testPartner(t, "acct-1", "Acme")
	contacts := []partner.Contact{testContact(t, "c1", "a@acme.com", "acct-1", "Acme")}
	groups := []lms.Group{{ID: "g1", Name: "ptr_Acme"}}

	idx := BuildIndices(nil, groups, DomainExtraction{})
	cls := Classify(Context{Contacts: contacts, Partners: []partner.Partner{acme}, Indices: idx})

	require.Len(t, cls.MissingFromLms, 1)
	assert.Equal(t, "a@acme.com", cls.MissingFromLms[0].Email)
	assert.Empty(t, cls.MissingFromPartnerGroup)
	assert.Empty(t, cls.Orphans)
}

func TestClassifySkipsMalformedContacts(t *testing.T) {
	noID := testContact(t, "c1", "a@acme.com", "acct-1", "Acme")
	noID.CRMID = ""
	noEmail := testContact(t, "c2", "b@acme.com", "acct-1", "Acme")
	noEmail.Email = ""

	idx := BuildIndices(nil, nil, DomainExtraction{})
	cls := Classify(Context{Contacts: []partner.Contact{noID, noEmail}, Indices: idx})

	assert.Empty(t, cls.MissingFromLms)
}

func TestClassifyMissingFromPartnerGroup(t *testing.T) {
	acme := testPartner(t, "acct-1", "Acme")
	contacts := []partner.Contact{testContact(t, "c1", "a@acme.com", "acct-1", "Acme")}
	groups := []lms.Group{{ID: "g1", Name: "ptr_Acme"}}

	t.Run("reports a matched user outside its group", func(t *testing.T) {
		users := []lms.User{testUser("u1", "a@acme.com")}

		idx := BuildIndices(users, groups, DomainExtraction{})
		cls := Classify(Context{Contacts: contacts, Partners: []partner.Partner{acme}, Indices: idx})

		require.Len(t, cls.MissingFromPartnerGroup, 1)
		gap := cls.MissingFromPartnerGroup[0]
		assert.Equal(t, "u1", gap.User.ID)
		assert.Equal(t, "g1", gap.Group.ID)
		assert.Equal(t, "c1", gap.Contact.CRMID)
		assert.Empty(t, cls.MissingFromLms)
	})

	t.Run("silent when the user is already a member", func(t *testing.T) {
		users := []lms.User{testUser("u1", "a@acme.com", "g1")}

		idx := BuildIndices(users, groups, DomainExtraction{})
		cls := Classify(Context{Contacts: contacts, Partners: []partner.Partner{acme}, Indices: idx})

		assert.Empty(t, cls.MissingFromPartnerGroup)
	})

	t.Run("silent when the account has no group", func(t *testing.T) {
		users := []lms.User{testUser("u1", "a@acme.com")}

		idx := BuildIndices(users, nil, DomainExtraction{})
		cls := Classify(Context{Contacts: contacts, Partners: []partner.Partner{acme}, Indices: idx})

		assert.Empty(t, cls.MissingFromPartnerGroup)
	})
}

// A user whose email matches a contact must never be reported as an orphan,
// even when its email domain points at a different partner.
func TestClassifyContactMatchOutranksDomainMatch(t *testing.T) {
	acme := testPartner(t, "acct-1", "Acme")
	beta := testPartner(t, "acct-2", "Beta Corp")
	contacts := []partner.Contact{testContact(t, "c1", "a@betacorp.com", "acct-1", "Acme")}
	users := []lms.User{testUser("u1", "a@betacorp.com")}
	groups := []lms.Group{{ID: "g1", Name: "ptr_Acme"}, {ID: "g2", Name: "ptr_Beta Corp"}}
	ext := DomainExtraction{
		DomainsByPartner: map[uuid.UUID]map[string]struct{}{
			beta.ID: {"betacorp.com": {}},
		},
	}

	idx := BuildIndices(users, groups, ext)
	cls := Classify(Context{Contacts: contacts, Partners: []partner.Partner{acme, beta}, Indices: idx})

	require.Len(t, cls.MissingFromPartnerGroup, 1)
	assert.Equal(t, "g1", cls.MissingFromPartnerGroup[0].Group.ID)
	assert.Empty(t, cls.Orphans)
}

func TestClassifyOrphans(t *testing.T) {
	acme := testPartner(t, "acct-1", "Acme")
	groups := []lms.Group{{ID: "g1", Name: "ptr_Acme"}}
	ext := DomainExtraction{
		DomainsByPartner: map[uuid.UUID]map[string]struct{}{
			acme.ID: {"acme.com": {}},
		},
	}

	t.Run("domain-only match with no links is an orphan", func(t *testing.T) {
		users := []lms.User{testUser("u1", "stray@acme.com")}

		idx := BuildIndices(users, groups, ext)
		cls := Classify(Context{Partners: []partner.Partner{acme}, Indices: idx})

		require.Len(t, cls.Orphans, 1)
		o := cls.Orphans[0]
		assert.Equal(t, "u1", o.User.ID)
		assert.Equal(t, acme.ID, o.PartnerID)
		assert.Equal(t, "Acme", o.PartnerName)
		assert.Equal(t, "acme.com", o.Domain)
	})

	t.Run("group membership clears the orphan", func(t *testing.T) {
		users := []lms.User{testUser("u1", "stray@acme.com", "g1")}

		idx := BuildIndices(users, groups, ext)
		cls := Classify(Context{Partners: []partner.Partner{acme}, Indices: idx})

		assert.Empty(t, cls.Orphans)
	})

	t.Run("dismissed pairings stay hidden", func(t *testing.T) {
		users := []lms.User{testUser("u1", "stray@acme.com")}
		dismissed := map[string]struct{}{DismissKey("u1", acme.ID): {}}

		idx := BuildIndices(users, groups, ext)
		cls := Classify(Context{Partners: []partner.Partner{acme}, Indices: idx, Dismissed: dismissed})

		assert.Empty(t, cls.Orphans)
	})

	t.Run("unknown domains are not orphans", func(t *testing.T) {
		users := []lms.User{testUser("u1", "someone@elsewhere.com")}

		idx := BuildIndices(users, groups, ext)
		cls := Classify(Context{Partners: []partner.Partner{acme}, Indices: idx})

		assert.Empty(t, cls.Orphans)
	})
}

func TestClassifyMissingFromGlobalGroup(t *testing.T) {
	groups := []lms.Group{
		{ID: "g1", Name: "ptr_Acme"},
		{ID: "global", Name: "All Partners"},
	}

	t.Run("partner group member outside the global group", func(t *testing.T) {
		users := []lms.User{
			testUser("u1", "a@acme.com", "g1"),
			testUser("u2", "b@acme.com", "g1", "global"),
			testUser("u3", "c@elsewhere.com"),
		}

		idx := BuildIndices(users, groups, DomainExtraction{})
		cls := Classify(Context{Indices: idx})

		require.Len(t, cls.MissingFromGlobalGroup, 1)
		assert.Equal(t, "u1", cls.MissingFromGlobalGroup[0].ID)
	})

	t.Run("empty when no global group exists", func(t *testing.T) {
		users := []lms.User{testUser("u1", "a@acme.com", "g1")}

		idx := BuildIndices(users, []lms.Group{{ID: "g1", Name: "ptr_Acme"}}, DomainExtraction{})
		cls := Classify(Context{Indices: idx})

		assert.Empty(t, cls.MissingFromGlobalGroup)
	})
}

func TestClassifyUsersToOffboard(t *testing.T) {
	groups := []lms.Group{
		{ID: "g1", Name: "ptr_Acme"},
		{ID: "global", Name: "All Partners"},
	}

	t.Run("inactive contact", func(t *testing.T) {
		acme := testPartner(t, "acct-1", "Acme")
		c := testContact(t, "c1", "a@acme.com", "acct-1", "Acme")
		c.Deactivate()
		users := []lms.User{testUser("u1", "a@acme.com", "g1", "global")}

		idx := BuildIndices(users, groups, DomainExtraction{})
		cls := Classify(Context{Contacts: []partner.Contact{c}, Partners: []partner.Partner{acme}, Indices: idx})

		require.Len(t, cls.UsersToOffboard, 1)
		cand := cls.UsersToOffboard[0]
		assert.Equal(t, "u1", cand.User.ID)
		assert.Equal(t, OffboardContactInactive, cand.Reason)
		require.NotNil(t, cand.Contact)
		assert.Equal(t, "c1", cand.Contact.CRMID)
	})

	t.Run("inactive partner outranks inactive contact", func(t *testing.T) {
		acme := testPartner(t, "acct-1", "Acme")
		acme.Deactivate()
		c := testContact(t, "c1", "a@acme.com", "acct-1", "Acme")
		c.Deactivate()
		users := []lms.User{testUser("u1", "a@acme.com", "g1", "global")}

		idx := BuildIndices(users, groups, DomainExtraction{})
		cls := Classify(Context{Contacts: []partner.Contact{c}, Partners: []partner.Partner{acme}, Indices: idx})

		require.Len(t, cls.UsersToOffboard, 1)
		assert.Equal(t, OffboardPartnerInactive, cls.UsersToOffboard[0].Reason)
	})

	t.Run("backing group no longer exists", func(t *testing.T) {
		acme := testPartner(t, "acct-1", "Acme")
		c := testContact(t, "c1", "a@vanished.com", "acct-1", "Vanished Inc")
		users := []lms.User{testUser("u1", "a@vanished.com", "global")}

		idx := BuildIndices(users, groups, DomainExtraction{})
		cls := Classify(Context{Contacts: []partner.Contact{c}, Partners: []partner.Partner{acme}, Indices: idx})

		require.Len(t, cls.UsersToOffboard, 1)
		assert.Equal(t, OffboardGroupMissing, cls.UsersToOffboard[0].Reason)
	})

	t.Run("domain-matched member of an inactive partner", func(t *testing.T) {
		acme := testPartner(t, "acct-1", "Acme")
		acme.Deactivate()
		users := []lms.User{testUser("u1", "stray@acme.com", "global")}
		ext := DomainExtraction{
			DomainsByPartner: map[uuid.UUID]map[string]struct{}{
				acme.ID: {"acme.com": {}},
			},
		}

		idx := BuildIndices(users, groups, ext)
		cls := Classify(Context{Partners: []partner.Partner{acme}, Indices: idx})

		require.Len(t, cls.UsersToOffboard, 1)
		assert.Equal(t, OffboardPartnerInactive, cls.UsersToOffboard[0].Reason)
	})

	t.Run("healthy members stay", func(t *testing.T) {
		acme := testPartner(t, "acct-1", "Acme")
		c := testContact(t, "c1", "a@acme.com", "acct-1", "Acme")
		users := []lms.User{testUser("u1", "a@acme.com", "g1", "global")}

		idx := BuildIndices(users, groups, DomainExtraction{})
		cls := Classify(Context{Contacts: []partner.Contact{c}, Partners: []partner.Partner{acme}, Indices: idx})

		assert.Empty(t, cls.UsersToOffboard)
	})

	t.Run("non-members are never offboard candidates", func(t *testing.T) {
		acme := testPartner(t, "acct-1", "Acme")
		acme.Deactivate()
		c := testContact(t, "c1", "a@acme.com", "acct-1", "Acme")
		users := []lms.User{testUser("u1", "a@acme.com", "g1")}

		idx := BuildIndices(users, groups, DomainExtraction{})
		cls := Classify(Context{Contacts: []partner.Contact{c}, Partners: []partner.Partner{acme}, Indices: idx})

		assert.Empty(t, cls.UsersToOffboard)
	})
}
