package reconcile

import (
	"testing"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDomains(t *testing.T) {
	acme := testPartner(t, "acct-1", "Acme")
	beta := testPartner(t, "acct-2", "Beta Corp")

	t.Run("maps contact domains to their partner", func(t *testing.T) {
		contacts := []partner.Contact{
			testContact(t, "c1", "jane@acme.com", "acct-1", "Acme"),
			testContact(t, "c2", "joe@acme.io", "acct-1", "Acme"),
			testContact(t, "c3", "kim@betacorp.com", "acct-2", "Beta Corp"),
		}

		ext := ExtractDomains([]partner.Partner{acme, beta}, contacts)

		assert.Equal(t, []string{"acme.com", "acme.io"}, ext.SortedDomains(acme.ID))
		assert.Equal(t, []string{"betacorp.com"}, ext.SortedDomains(beta.ID))
		assert.Empty(t, ext.NoUsableDomains)
		assert.Empty(t, ext.NoContacts)
	})

	t.Run("is idempotent on an unchanged snapshot", func(t *testing.T) {
		contacts := []partner.Contact{
			testContact(t, "c1", "jane@acme.com", "acct-1", "Acme"),
			testContact(t, "c2", "joe@acme.io", "acct-1", "Acme"),
			testContact(t, "c3", "dupe@acme.com", "acct-1", "Acme"),
		}

		first := ExtractDomains([]partner.Partner{acme}, contacts)
		second := ExtractDomains([]partner.Partner{acme}, contacts)

		assert.Equal(t, first.SortedDomains(acme.ID), second.SortedDomains(acme.ID))
		assert.Equal(t, first.NoUsableDomains, second.NoUsableDomains)
		assert.Equal(t, first.NoContacts, second.NoContacts)
	})

	t.Run("public provider domains never enter a partner set", func(t *testing.T) {
		contacts := []partner.Contact{
			testContact(t, "c1", "b@gmail.com", "acct-1", "Acme"),
			testContact(t, "c2", "jane@acme.com", "acct-1", "Acme"),
		}

		ext := ExtractDomains([]partner.Partner{acme}, contacts)

		assert.Equal(t, []string{"acme.com"}, ext.SortedDomains(acme.ID))
		_, found := ext.DomainsByPartner[acme.ID]["gmail.com"]
		assert.False(t, found)
	})

	t.Run("distinguishes no usable domains from no contacts", func(t *testing.T) {
		contacts := []partner.Contact{
			testContact(t, "c1", "b@gmail.com", "acct-1", "Acme"),
		}

		ext := ExtractDomains([]partner.Partner{acme, beta}, contacts)

		require.Len(t, ext.NoUsableDomains, 1)
		assert.Equal(t, acme.ID, ext.NoUsableDomains[0])
		require.Len(t, ext.NoContacts, 1)
		assert.Equal(t, beta.ID, ext.NoContacts[0])
	})

	t.Run("ignores contacts of unknown accounts", func(t *testing.T) {
		contacts := []partner.Contact{
			testContact(t, "c1", "jane@stranger.com", "acct-99", "Stranger"),
		}

		ext := ExtractDomains([]partner.Partner{acme}, contacts)

		assert.Empty(t, ext.DomainsByPartner)
		require.Len(t, ext.NoContacts, 1)
		assert.Equal(t, acme.ID, ext.NoContacts[0])
	})
}

func TestExcludedDomain(t *testing.T) {
	assert.True(t, ExcludedDomain(""))
	assert.True(t, ExcludedDomain("gmail.com"))
	assert.True(t, ExcludedDomain("yahoo.co.uk"))
	assert.False(t, ExcludedDomain("acme.com"))
}
