// Package schemas defines the request and response envelopes for every API
// operation together with the validators that turn raw JSON fields into
// typed, constrained values. Validation always runs to completion before any
// repository method is called.
package schemas

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/swoleapp/swole-api/internal/errors"
)

// Field ceilings for exercise sets.
const (
	MaxRepCount = 500
	MaxWeight   = 10000
)

// NonEmptyString trims value and fails when nothing remains.
func NonEmptyString(field, value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", apperrors.NewBusinessError(apperrors.FieldCannotBeEmpty, field)
	}
	return value, nil
}

// PositiveBoundedInt coerces value to an integer in (0, max].
func PositiveBoundedInt(field string, value json.Number, max int) (int, error) {
	n, err := value.Int64()
	if err != nil {
		return 0, apperrors.NewBusinessError(apperrors.MustBeAValidPositiveInt)
	}
	if n <= 0 {
		return 0, apperrors.NewBusinessError(apperrors.MustBePositive, field)
	}
	if n > int64(max) {
		return 0, apperrors.NewBusinessError(apperrors.CannotBeGreaterThan, max)
	}
	return int(n), nil
}

// ParseID parses an opaque identifier.
func ParseID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apperrors.NewBusinessError(apperrors.InvalidID)
	}
	return id, nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, apperrors.NewBusinessError(apperrors.IncorrectDateFormat)
	}
	return t, nil
}
