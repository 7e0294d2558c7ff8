package pipeline

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindConfigInvalid Kind = iota + 1
	KindCredentialsMissing
	KindSearchFailed
	KindDecodeFailed
	KindCompletionFailed
)

func (k Kind) String() string {
	switch k {
	case KindConfigInvalid:
		return "config_invalid"
	case KindCredentialsMissing:
		return "credentials_missing"
	case KindSearchFailed:
		return "search_failed"
	case KindDecodeFailed:
		return "decode_failed"
	case KindCompletionFailed:
		return "completion_failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

var ErrCredentialsMissing = errors.New("search and completion api keys are both required")

// Error is the only error type Run returns.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// UserMessage is the text shown to the user for this failure. Only search
// failures echo the underlying cause; completion failures stay generic.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindConfigInvalid:
		return "The service configuration is invalid."
	case KindCredentialsMissing:
		return "Both SERPAPI_API_KEY and OPENAI_API_KEY are required. Please provide them to search."
	case KindSearchFailed:
		return "Flight search failed: " + e.Err.Error()
	case KindDecodeFailed:
		return "Failed to decode the result as JSON."
	case KindCompletionFailed:
		return "An error occurred while analyzing the flight data. Please try again later."
	default:
		return "An unexpected error occurred."
	}
}

// KindOf extracts the pipeline error kind from err, if any.
func KindOf(err error) (Kind, bool) {
	var perr *Error
	if errors.As(err, &perr) {
		return perr.Kind, true
	}
	return 0, false
}
