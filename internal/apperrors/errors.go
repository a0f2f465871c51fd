package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrRateNotFound indicates that neither a billing role nor a personal rate card
// resolves an hourly rate for a time charge.
var ErrRateNotFound = errors.New("no hourly rate found")

// ErrInvalidWriteoff indicates a write-off with a non-positive magnitude or a missing reason.
var ErrInvalidWriteoff = errors.New("invalid write-off")

// ErrConflict indicates that a scoped write lost a race with a concurrent writer.
// Callers treat this as a benign no-op rather than surfacing it to the user.
var ErrConflict = errors.New("concurrent write conflict")
