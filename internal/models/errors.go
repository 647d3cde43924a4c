package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound             = errors.New("there is no resource with this ID")
	ErrDuplicateEmail       = errors.New("a user with this email address already exists")
	ErrDuplicateBudget      = errors.New("a budget for this category and month already exists")
	ErrIncomeCategoryBudget = errors.New("budgets cannot be set for income categories")
)

// ValidationError is returned when a field of a resource has an invalid value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return ValidationError{Field: field, Message: message}
}
