package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrRunInProgress       = NewDomainError("RUN_IN_PROGRESS", "Another reconciliation run is already in progress")
	ErrNoGlobalGroup       = NewDomainError("NO_GLOBAL_GROUP", "No global group found in the LMS")
	ErrNoPartnerGroup      = NewDomainError("NO_PARTNER_GROUP", "No partner group exists for this account")
	ErrSnapshotUnavailable = NewDomainError("SNAPSHOT_UNAVAILABLE", "LMS snapshot could not be loaded")
)
