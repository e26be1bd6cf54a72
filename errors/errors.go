// Package errors defines the error taxonomy shared across the deployment
// pipeline. Sentinel errors are checked with errors.Is; StageError records
// which pipeline stage an error escaped from.
//
// This package must not import any other package from this module.
package errors

import "errors"

var (
	// ErrMalformedRequest indicates a request with missing or mis-shaped fields.
	ErrMalformedRequest = errors.New("malformed request")

	// ErrAuthenticationFailed indicates the shared secret did not match.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrAttachmentDecode indicates an attachment that is not valid base64.
	// The attachment is dropped; the pipeline continues.
	ErrAttachmentDecode = errors.New("attachment decode failed")

	// ErrGenerationProvider indicates the generative text provider failed.
	// Recovered via the template fallback, never propagated out of generation.
	ErrGenerationProvider = errors.New("generation provider failed")

	// ErrRepositoryCreate indicates the repository could not be created,
	// including name collisions.
	ErrRepositoryCreate = errors.New("repository creation failed")

	// ErrPublish indicates the artifact commit could not be pushed.
	ErrPublish = errors.New("publish failed")

	// ErrHostingEnable indicates static hosting could not be activated within
	// the polling budget.
	ErrHostingEnable = errors.New("hosting enable failed")

	// ErrRepositoryNotFound indicates a round-2 request for a task whose
	// round 1 never published.
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrConflict indicates a concurrent update won the race for the same
	// task's branch head.
	ErrConflict = errors.New("concurrent update conflict")

	// ErrNotificationDelivery indicates the evaluation callback could not be
	// delivered within the retry budget. Never escalated to the caller's
	// deployment result.
	ErrNotificationDelivery = errors.New("notification delivery failed")
)

// StageError wraps an error with the pipeline stage it originated from, so
// responses can name the failing stage without losing the underlying cause.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return e.Stage + ": " + e.Err.Error() }

func (e *StageError) Unwrap() error { return e.Err }

// Stage wraps err with the named pipeline stage. Returns nil for a nil err.
func Stage(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, Err: err}
}

// StageOf returns the stage recorded on err, or "internal" when none is.
func StageOf(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return "internal"
}
