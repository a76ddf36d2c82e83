package apierr

import (
	"errors"
	"net/http"
)

// Kind is the closed set of error classes handled at the request boundary.
type Kind int

const (
	KindUnclassified Kind = iota
	KindValidation
	KindApplication
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindApplication:
		return "application"
	default:
		return "unclassified"
	}
}

const (
	// ValidationMessage is the envelope message of every validation error.
	ValidationMessage = "Validation Error"
	// InternalMessage replaces an empty message on unclassified errors.
	InternalMessage = "Internal Server Error"
)

// Classification is the resolved outcome of [Classify].
type Classification struct {
	Kind       Kind
	StatusCode int
	Message    string
	Issues     []ValidationIssue
}

// Classify resolves err into exactly one [Kind]. The first matching rule
// wins:
//  1. a [ValidationError] anywhere in the chain → 400 "Validation Error";
//  2. an [ApplicationError] with a non-zero status → its status and message;
//  3. anything else → 500 with err's message, or "Internal Server Error"
//     when that message is empty.
func Classify(err error) Classification {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return Classification{
			Kind:       KindValidation,
			StatusCode: http.StatusBadRequest,
			Message:    ValidationMessage,
			Issues:     validationErr.Issues,
		}
	}

	var appErr *ApplicationError
	if errors.As(err, &appErr) && appErr.StatusCode != 0 {
		return Classification{
			Kind:       KindApplication,
			StatusCode: appErr.StatusCode,
			Message:    appErr.Message,
		}
	}

	message := InternalMessage
	if err != nil && err.Error() != "" {
		message = err.Error()
	}

	return Classification{
		Kind:       KindUnclassified,
		StatusCode: http.StatusInternalServerError,
		Message:    message,
	}
}
