package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrSecurityCheck indicates an anti-forgery or human-verification failure.
// Callers surface it with a generic message only.
var ErrSecurityCheck = errors.New("security check failed")

// ErrStateRestart indicates the wizard was entered mid-flow without the
// earlier step's data; the flow must restart at step 1.
var ErrStateRestart = errors.New("wizard state missing, restart required")

// ErrDuplicateSubmission indicates a finalization attempt for a wizard run
// that already produced an application.
var ErrDuplicateSubmission = errors.New("application already submitted")

// ErrDuplicateReference indicates a reference number collision on insert.
var ErrDuplicateReference = errors.New("reference number already taken")

// ErrPersistence indicates the finalization write failed; the draft is
// retained and the user may retry.
var ErrPersistence = errors.New("persistence failure")
