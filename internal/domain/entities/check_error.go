package entities

import (
	"errors"
	"fmt"
)

// ErrCheckFailed is returned by controllers once a failing check has been reported.
// The process entry point maps it to exit status 1 without printing anything else.
var ErrCheckFailed = errors.New("check failed")

// CheckErrorKind classifies why a check did not pass.
type CheckErrorKind int

const (
	// KindResolution means a required input could not be determined (e.g. the current branch).
	KindResolution CheckErrorKind = iota
	// KindRejection means the input is well-formed but violates a rule.
	KindRejection
	// KindMalformed means the input document could not be parsed.
	KindMalformed
	// KindUnexpected covers every other fault while processing the input.
	KindUnexpected
)

func (k CheckErrorKind) String() string {
	switch k {
	case KindResolution:
		return "resolution"
	case KindRejection:
		return "rejection"
	case KindMalformed:
		return "malformed"
	case KindUnexpected:
		return "unexpected"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// CheckError is the failing outcome of a check. Message is the user-facing diagnostic.
type CheckError struct {
	Kind    CheckErrorKind
	Message string
	Err     error
}

func (e *CheckError) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *CheckError) Unwrap() error { return e.Err }

// NewResolutionError builds a KindResolution error.
func NewResolutionError(message string, err error) *CheckError {
	return &CheckError{Kind: KindResolution, Message: message, Err: err}
}

// NewRejectionError builds a KindRejection error.
func NewRejectionError(message string) *CheckError {
	return &CheckError{Kind: KindRejection, Message: message}
}

// NewMalformedError builds a KindMalformed error.
func NewMalformedError(message string, err error) *CheckError {
	return &CheckError{Kind: KindMalformed, Message: message, Err: err}
}

// NewUnexpectedError builds a KindUnexpected error.
func NewUnexpectedError(message string, err error) *CheckError {
	return &CheckError{Kind: KindUnexpected, Message: message, Err: err}
}

// ParseError reports that a manifest file could not be parsed.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
