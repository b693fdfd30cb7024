package reconcile

import (
	"testing"

	"github.com/danstoll/Northpass-PP-sub000/internal/domain/lms"
	"github.com/danstoll/Northpass-PP-sub000/internal/domain/partner"
	"github.com/stretchr/testify/require"
)

func testPartner(t *testing.T, accountID, accountName string) partner.Partner {
	t.Helper()
	p, err := partner.NewPartner(accountID, accountName)
	require.NoError(t, err)
	return *p
}

func testContact(t *testing.T, crmID, email, accountID, accountName string) partner.Contact {
	t.Helper()
	c, err := partner.NewContact(crmID, email, "Jane", "Doe", accountID, accountName)
	require.NoError(t, err)
	return *c
}

func testUser(id, email string, groupIDs ...string) lms.User {
	u := lms.User{ID: id, Email: email, Active: true}
	for _, g := range groupIDs {
		u.AddGroup(g)
	}
	return u
}
