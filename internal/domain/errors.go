package domain

import "errors"

var (
	// ErrStoreUnavailable is returned when no database URL is configured or the pool is unusable.
	ErrStoreUnavailable = errors.New("store not configured or unreachable")
	// ErrSessionNotFound is returned when an evaluation session ID is unknown.
	ErrSessionNotFound = errors.New("evaluation session not found")
	// ErrSessionCompleted is returned for operations on an already-submitted session.
	ErrSessionCompleted = errors.New("evaluation session already completed")
	// ErrInvalidOption is returned when a selected option is outside a..d.
	ErrInvalidOption = errors.New("answer option must be one of a, b, c, d")
	// ErrQuestionOutOfRange is returned when navigating outside the question set.
	ErrQuestionOutOfRange = errors.New("question index out of range")
)

// ValidationError marks a malformed or incomplete submission. It is
// user-correctable and is rejected before any store interaction.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid submission: " + e.Reason
}

// Validationf builds a ValidationError from a plain reason string.
func Validationf(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConstraintError marks a duplicate key or invalid reference reported by
// the store. It is never retried.
type ConstraintError struct {
	Code string // SQLSTATE
	Err  error
}

func (e *ConstraintError) Error() string {
	return "constraint violation (" + e.Code + "): " + e.Err.Error()
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// TransientError marks a connection-level store failure that is safe to
// retry: the transaction never committed.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return "transient store failure: " + e.Err.Error()
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err is (or wraps) a TransientError.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
