package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller does not own the resource or carries no valid identity.
var ErrUnauthorized = errors.New("not authorized")

// ErrConflict indicates that the operation is blocked by the current state of the data,
// e.g. deleting a category that entries still reference.
var ErrConflict = errors.New("operation conflicts with existing data")
