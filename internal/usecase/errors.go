package usecase

import (
	"errors"
	"fmt"

	"tour-booking/pkg/utils"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrLocked       = errors.New("locked")

	ErrMissingPrice = fmt.Errorf("%w: priceNU or priceCents required", ErrInvalidInput)
)

// ValidationError carries per-field messages and matches ErrInvalidInput
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// validate runs struct tags on req and wraps failures as *ValidationError
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
