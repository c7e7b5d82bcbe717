package usecase

import (
	"errors"
	"fmt"

	"bistro-boss/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidID       = errors.New("invalid id")
	ErrNothingToUpdate = errors.New("no fields to update")
	// ErrNotOwner is returned when a caller asks about an identity other than its own.
	ErrNotOwner = errors.New("identity does not match caller")
)

// ValidationError carries the per-field messages of a rejected request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
