package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON  = "INVALID_JSON"
	ErrCodeUnauthorised = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeValidation   = "VALIDATION"
	ErrCodeStorage      = "STORAGE_ERROR"
	ErrCodeGateway      = "GATEWAY_ERROR"
)

// DomainError is a business-rule failure with a stable code and the exact
// message shown to clients.
type DomainError struct {
	Code    string
	Message string
}

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

// Client-visible domain errors. The message strings are part of the wire
// contract: existing frontends match on them verbatim, including the two
// different admin-rejection spellings.
var (
	ErrNotAuthorized      = NewDomainError(ErrCodeUnauthorised, "Not Authorized Login Again")
	ErrNotAdmin           = NewDomainError(ErrCodeForbidden, "You are not admin")
	ErrNotAnAdmin         = NewDomainError(ErrCodeForbidden, "You are not an admin")
	ErrUserNotFound       = NewDomainError(ErrCodeNotFound, "User Doesn't exist")
	ErrOrderNotFound      = NewDomainError(ErrCodeNotFound, "Order not found")
	ErrInvalidCredentials = NewDomainError(ErrCodeValidation, "Invalid Credentials")
	ErrUserExists         = NewDomainError(ErrCodeValidation, "User already exists")
	ErrInvalidEmail       = NewDomainError(ErrCodeValidation, "Please enter valid email")
	ErrWeakPassword       = NewDomainError(ErrCodeValidation, "Please enter strong password")
	ErrInvalidStatus      = NewDomainError(ErrCodeValidation, "Invalid status")
)
