package workflow

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAuthenticationRequired gates actions that need a signed-in user:
// draft save/load/delete and final submission.
var ErrAuthenticationRequired = errors.New("authentication required")

// ValidationError reports missing required fields. All missing fields
// are collected into one error so the message can name each of them.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field(s): %s", strings.Join(e.Fields, ", "))
}

// DuplicateError blocks submission when the candidate collides with an
// existing record, or when the required duplicate check has not been
// run since the last name/URL edit.
type DuplicateError struct {
	Reason     string
	ExistingID string
	Claimable  bool
}

func (e *DuplicateError) Error() string {
	return e.Reason
}

// PaymentRequiredError blocks sponsor-plan submission without a
// completed payment confirmation.
type PaymentRequiredError struct {
	Reason string
}

func (e *PaymentRequiredError) Error() string {
	return e.Reason
}

// BacklinkRequiredError blocks free-plan submission without a verified
// backlink to the directory.
type BacklinkRequiredError struct{}

func (e *BacklinkRequiredError) Error() string {
	return "free plan requires a verified backlink before submission"
}

// NetworkError wraps a failed remote call. The workflow stays in its
// pre-call state so the user can retry.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
