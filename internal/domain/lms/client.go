package lms

import (
	"context"
	"errors"
)

var (
	ErrUnavailable     = errors.New("lms: service temporarily unavailable")
	ErrRequestFailed   = errors.New("lms: request failed")
	ErrInvalidResponse = errors.New("lms: invalid response")
	ErrAuthFailed      = errors.New("lms: authentication failed")
	ErrRateLimited     = errors.New("lms: rate limited")

	ErrUserNotFound  = errors.New("lms: user not found")
	ErrGroupNotFound = errors.New("lms: group not found")
	ErrGroupExists   = errors.New("lms: group already exists")
	ErrAlreadyMember = errors.New("lms: user already in group")
	ErrInvalidPerson = errors.New("lms: invalid person input")
)

// CreatePersonInput carries the fields needed to provision an LMS user
type CreatePersonInput struct {
	Email     string
	FirstName string
	LastName  string
}

// CreatePersonResult reports the outcome of a person-creation call.
// AlreadyExists is not an error: the LMS treats a duplicate email as a
// conflict and the reconciliation flow continues with the existing user.
type CreatePersonResult struct {
	UserID        string
	AlreadyExists bool
}

// Client is the LMS collaborator consumed by the reconciliation engine.
// The concrete HTTP implementation lives in infrastructure; tests use mocks.
type Client interface {
	GetAllUsers(ctx context.Context) ([]User, error)
	GetAllGroups(ctx context.Context) ([]Group, error)
	CreateGroup(ctx context.Context, name, description string) (*Group, error)
	CreatePerson(ctx context.Context, input CreatePersonInput) (*CreatePersonResult, error)
	AddUserToGroup(ctx context.Context, groupID, userID string) error
	RemoveUserFromGroup(ctx context.Context, groupID, userID string) error
	UpdateGroupName(ctx context.Context, groupID, newName string) error
	DeactivateUser(ctx context.Context, userID string) error
}
