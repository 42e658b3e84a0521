package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// InvalidValueError indicates a numeric argument or result violates a
// non-negativity or range constraint
type InvalidValueError struct {
	*DomainError
	Field string
	Value int
}

func NewInvalidValueError(field string, value int, reason string) *InvalidValueError {
	return &InvalidValueError{
		DomainError: &DomainError{Message: fmt.Sprintf("invalid %s %d: %s", field, value, reason)},
		Field:       field,
		Value:       value,
	}
}

// MissingAssociationError indicates an operation requiring a bound player
// state was invoked without one
type MissingAssociationError struct {
	*DomainError
	Operation string
}

func NewMissingAssociationError(operation string) *MissingAssociationError {
	return &MissingAssociationError{
		DomainError: &DomainError{Message: fmt.Sprintf("no player state bound for %s", operation)},
		Operation:   operation,
	}
}
