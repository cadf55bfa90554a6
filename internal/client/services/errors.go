package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUploadFailed is fatal to the current attempt; the caller must not
	// substitute a partial reference list and continue.
	ErrUploadFailed = errors.New("upload failed")

	// ErrResolution marks a profile lookup that failed for a reason other
	// than the profile being absent.
	ErrResolution = errors.New("profile resolution failed")

	// ErrSubmitInFlight rejects a duplicate submission of the same draft
	// while the first one is still running.
	ErrSubmitInFlight = errors.New("submission already in flight")
)

// ValidationError reports client-side form problems. It blocks submission
// before any network call is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// RegistrationError names which phase of a registration attempt failed.
// Partial marks the inconsistent state where the account exists but its
// role-specific profile does not; the caller must not re-run account
// creation, since that would mint a duplicate account.
type RegistrationError struct {
	Message string
	Partial bool
	Err     error
}

func (e *RegistrationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}
