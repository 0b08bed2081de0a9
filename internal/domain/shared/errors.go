package shared

import "fmt"

// DomainError carries a stable code the HTTP layer maps to a status
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches on code, so errors.Is(NotFound("car", id), ErrNotFound) holds
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// NotFound names the missing record
func NotFound(kind, id string) *DomainError {
	return NewDomainError(ErrNotFound.Code, fmt.Sprintf("%s %q not found", kind, id))
}

var (
	ErrNotFound     = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidState = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)
