package lms

import "strings"

// User is a snapshot of an LMS user as returned by the LMS API.
// IDs are opaque strings assigned by the LMS; email is the only reliable
// join key back to CRM contacts.
type User struct {
	ID        string
	Email     string
	FirstName string
	LastName  string
	Active    bool
	GroupIDs  map[string]struct{}
}

// MemberOf returns true if the user belongs to the given group
func (u *User) MemberOf(groupID string) bool {
	if u.GroupIDs == nil {
		return false
	}
	_, ok := u.GroupIDs[groupID]
	return ok
}

// AddGroup records group membership on the snapshot
func (u *User) AddGroup(groupID string) {
	if u.GroupIDs == nil {
		u.GroupIDs = make(map[string]struct{})
	}
	u.GroupIDs[groupID] = struct{}{}
}

// NormalizedEmail returns the user's email lower-cased and trimmed
func (u *User) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(u.Email))
}

// EmailDomain returns the lower-cased domain part of the user's email,
// or "" when the email has no domain part
func (u *User) EmailDomain() string {
	email := u.NormalizedEmail()
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

// Group is a snapshot of an LMS group
type Group struct {
	ID          string
	Name        string
	MemberCount int
}
