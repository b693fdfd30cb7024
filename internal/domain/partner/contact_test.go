package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContact(t *testing.T) {
	t.Run("creates contact with valid fields", func(t *testing.T) {
		contact, err := NewContact("003xx01", "Jane.Doe@Acme.com ", "Jane", "Doe", "001xx01", "Acme")

		assert.NoError(t, err)
		assert.NotNil(t, contact)
		assert.Equal(t, "jane.doe@acme.com", contact.Email)
		assert.Equal(t, "Acme", contact.AccountName)
		assert.True(t, contact.IsActive())
	})

	t.Run("rejects empty CRM ID", func(t *testing.T) {
		_, err := NewContact("", "jane@acme.com", "Jane", "Doe", "001xx01", "Acme")
		assert.Error(t, err)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		_, err := NewContact("003xx01", "not-an-email", "Jane", "Doe", "001xx01", "Acme")
		assert.Error(t, err)
	})

	t.Run("rejects empty account name", func(t *testing.T) {
		_, err := NewContact("003xx01", "jane@acme.com", "Jane", "Doe", "001xx01", "")
		assert.Error(t, err)
	})
}

func TestContactUpdate(t *testing.T) {
	contact, err := NewContact("003xx01", "jane@acme.com", "Jane", "Doe", "001xx01", "Acme")
	assert.NoError(t, err)

	err = contact.Update("JANE@ACME.COM", "Jane", "Smith", "001xx01", "Acme Corp")
	assert.NoError(t, err)
	assert.Equal(t, "jane@acme.com", contact.Email)
	assert.Equal(t, "Jane Smith", contact.FullName())
	assert.Equal(t, "Acme Corp", contact.AccountName)
}

func TestContactLifecycle(t *testing.T) {
	contact, err := NewContact("003xx01", "jane@acme.com", "Jane", "Doe", "001xx01", "Acme")
	assert.NoError(t, err)

	contact.Deactivate()
	assert.False(t, contact.IsActive())

	contact.Activate()
	assert.True(t, contact.IsActive())
}

func TestEmailDomain(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"jane@acme.com", "acme.com"},
		{"  Jane@ACME.COM  ", "acme.com"},
		{"weird@name@acme.com", "acme.com"},
		{"no-at-sign", ""},
		{"trailing@", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EmailDomain(tt.email), "email %q", tt.email)
	}
}
