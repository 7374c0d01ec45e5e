package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ValidationError marks malformed or out-of-range input. Nothing is
// persisted when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// InsufficientStockError is returned by stock decrements when the
// remaining stock cannot cover the requested quantity. The counter is
// left untouched.
type InsufficientStockError struct {
	Name      string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %d, requested %d",
		e.Name, e.Available, e.Requested)
}

// NotFoundError is an id lookup miss.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// AuthenticationError never says whether the username, the password or
// the account state was wrong.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string { return "invalid credentials" }

// notFound converts gorm's record-not-found into the domain error and
// passes everything else through.
func notFound(err error, entity string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return err
}
