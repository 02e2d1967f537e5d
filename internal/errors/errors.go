// Package errors defines the closed set of domain error messages and the
// single carrier type repositories raise for expected business failures.
package errors

import (
	"errors"
	"fmt"
)

// Fixed domain error messages. Repositories and validators must only raise
// business errors built from these.
const (
	NoWorkoutFound              = "No workout found"
	NoExerciseFound             = "No exercise found"
	NoSetFound                  = "No set was found with the given ids"
	NameAndDateMustBeUnique     = "Another workout already exists with the same name and date"
	ExerciseWithNameExists      = "Exercise with the given name already exists"
	IDsMustBeUnique             = "All IDs in the given data must be unique."
	InvalidID                   = "Invalid ID"
	FieldCannotBeEmpty          = "Field %s cannot be empty"
	MustBePositive              = "Field %s must be greater than 0"
	MustBeAValidPositiveInt     = "Field must be a valid positive integer"
	CannotBeGreaterThan         = "Field cannot be greater than %d"
	IncorrectDateFormat         = "Incorrect date format, should be YYYY-MM-DD"
	IncorrectUsernameOrPassword = "Incorrect username or password"
	CouldNotValidateCredentials = "Could not validate credentials"
	InactiveUser                = "Inactive user"
	UserAlreadyExists           = "User with username already exists"
)

// BusinessError signals an expected, user-facing rule violation. It is
// distinct from infrastructure failures, which are surfaced generically.
type BusinessError struct {
	Message string
}

// NewBusinessError builds a BusinessError from one of the taxonomy messages,
// formatting any arguments into it.
func NewBusinessError(message string, args ...any) *BusinessError {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return &BusinessError{Message: message}
}

func (e *BusinessError) Error() string {
	return e.Message
}

// IsBusiness reports whether err is (or wraps) a BusinessError.
func IsBusiness(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}
